package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kassabook-dev/kassabook/internal/model"
)

// document is the persisted form of the ledger: one pretty-printed JSON
// file holding all three collections plus the schema version tag.
type document struct {
	DBVersion  string            `json:"db_version"`
	Accounts   []model.Account   `json:"accounts"`
	Operations []model.Operation `json:"operations"`
	Receipts   []model.Receipt   `json:"receipts"`
}

// Load reads and parses an entire ledger file. Any failure - unreadable
// file, malformed JSON, unknown enum tag, missing id, duplicate id - is
// a StorageError; no partial ledger is returned.
func Load(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &StorageError{Op: "load", Path: path, Err: err}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &StorageError{Op: "load", Path: path, Err: err}
	}

	svc, err := fromDocument(doc)
	if err != nil {
		return nil, &StorageError{Op: "load", Path: path, Err: err}
	}
	return svc, nil
}

// Save serializes the whole ledger to path, overwriting any existing
// file. The document is written to a temporary file in the same
// directory and renamed into place, so a mid-write failure cannot
// truncate a previous ledger.
func (s *Service) Save(path string) error {
	doc := document{
		DBVersion:  DBVersion,
		Accounts:   s.accounts,
		Operations: s.operations,
		Receipts:   s.receipts,
	}
	if doc.Accounts == nil {
		doc.Accounts = []model.Account{}
	}
	if doc.Operations == nil {
		doc.Operations = []model.Operation{}
	}
	if doc.Receipts == nil {
		doc.Receipts = []model.Receipt{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".kassabook-*.json")
	if err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// fromDocument validates a parsed document and builds the in-memory
// ledger. Operation.account_id is deliberately not resolved here: the
// reference is enforced at commit time only, so a file edited by hand
// loads even when operations point at removed accounts.
func fromDocument(doc document) (*Service, error) {
	if doc.DBVersion == "" {
		return nil, fmt.Errorf("missing db_version")
	}

	s := New()
	s.version = doc.DBVersion

	for i, a := range doc.Accounts {
		if a.ID == (model.ID{}) {
			return nil, fmt.Errorf("accounts[%d]: missing id", i)
		}
		if !a.Type.Valid() {
			return nil, fmt.Errorf("accounts[%d]: unknown account_type %q", i, a.Type)
		}
		if _, dup := s.accountIdx[a.ID]; dup {
			return nil, fmt.Errorf("accounts[%d]: duplicate id %s", i, a.ID)
		}
		s.accountIdx[a.ID] = len(s.accounts)
		s.accounts = append(s.accounts, a)
	}

	for i, op := range doc.Operations {
		if op.ID == (model.ID{}) {
			return nil, fmt.Errorf("operations[%d]: missing id", i)
		}
		if op.AccountID == (model.ID{}) {
			return nil, fmt.Errorf("operations[%d]: missing account_id", i)
		}
		if op.DateTime.IsZero() {
			return nil, fmt.Errorf("operations[%d]: missing date_time", i)
		}
		if !op.Type.Valid() {
			return nil, fmt.Errorf("operations[%d]: unknown operation_type %q", i, op.Type)
		}
		if !op.Direction.Valid() {
			return nil, fmt.Errorf("operations[%d]: unknown direction %q", i, op.Direction)
		}
		if _, dup := s.operationIdx[op.ID]; dup {
			return nil, fmt.Errorf("operations[%d]: duplicate id %s", i, op.ID)
		}
		s.operationIdx[op.ID] = len(s.operations)
		s.operations = append(s.operations, op)
	}

	for i, r := range doc.Receipts {
		if r.ID == (model.ID{}) {
			return nil, fmt.Errorf("receipts[%d]: missing id", i)
		}
		if r.DateTime.IsZero() {
			return nil, fmt.Errorf("receipts[%d]: missing date_time", i)
		}
		if !r.CalculationType.Valid() {
			return nil, fmt.Errorf("receipts[%d]: unknown calculation_type %q", i, r.CalculationType)
		}
		for j, sub := range r.Subjects {
			if !sub.UnitType.Valid() {
				return nil, fmt.Errorf("receipts[%d].subjects[%d]: unknown unit_type %q", i, j, sub.UnitType)
			}
			if !sub.VatType.Valid() {
				return nil, fmt.Errorf("receipts[%d].subjects[%d]: unknown vat_type %q", i, j, sub.VatType)
			}
		}
		if slip := r.Slip; slip != nil {
			if !slip.Type.Valid() {
				return nil, fmt.Errorf("receipts[%d].slip: unknown op_type %q", i, slip.Type)
			}
			if !slip.Currency.Valid() {
				return nil, fmt.Errorf("receipts[%d].slip: unknown currency %q", i, slip.Currency)
			}
		}
		if _, dup := s.receiptIdx[r.ID]; dup {
			return nil, fmt.Errorf("receipts[%d]: duplicate id %s", i, r.ID)
		}
		s.receiptIdx[r.ID] = len(s.receipts)
		s.receipts = append(s.receipts, r)
	}

	return s, nil
}
