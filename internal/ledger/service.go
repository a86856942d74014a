package ledger

import "github.com/kassabook-dev/kassabook/internal/model"

// DBVersion is the schema tag written on every save.
const DBVersion = "0.0.1"

// Service is the aggregate root: every account, operation and receipt,
// held in insertion order with id indexes. It is a plain in-memory
// structure owned by a single goroutine; durability comes only from an
// explicit Save.
type Service struct {
	version    string
	accounts   []model.Account
	operations []model.Operation
	receipts   []model.Receipt

	accountIdx   map[model.ID]int
	operationIdx map[model.ID]int
	receiptIdx   map[model.ID]int
}

// New returns an empty ledger at the current schema version.
func New() *Service {
	return &Service{
		version:      DBVersion,
		accountIdx:   make(map[model.ID]int),
		operationIdx: make(map[model.ID]int),
		receiptIdx:   make(map[model.ID]int),
	}
}

// Version returns the schema tag the ledger was created or loaded with.
func (s *Service) Version() string {
	return s.version
}

// Accounts returns all accounts in insertion order.
func (s *Service) Accounts() []model.Account {
	out := make([]model.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// Operations returns all operations in insertion order.
func (s *Service) Operations() []model.Operation {
	out := make([]model.Operation, len(s.operations))
	copy(out, s.operations)
	return out
}

// Receipts returns all receipts in insertion order.
func (s *Service) Receipts() []model.Receipt {
	out := make([]model.Receipt, len(s.receipts))
	copy(out, s.receipts)
	return out
}

// Account returns an account by id.
func (s *Service) Account(id model.ID) (model.Account, bool) {
	i, ok := s.accountIdx[id]
	if !ok {
		return model.Account{}, false
	}
	return s.accounts[i], true
}

// Operation returns an operation by id.
func (s *Service) Operation(id model.ID) (model.Operation, bool) {
	i, ok := s.operationIdx[id]
	if !ok {
		return model.Operation{}, false
	}
	return s.operations[i], true
}

// Receipt returns a receipt by id.
func (s *Service) Receipt(id model.ID) (model.Receipt, bool) {
	i, ok := s.receiptIdx[id]
	if !ok {
		return model.Receipt{}, false
	}
	return s.receipts[i], true
}

// HasAccount reports whether an account id exists.
func (s *Service) HasAccount(id model.ID) bool {
	_, ok := s.accountIdx[id]
	return ok
}

// AddAccount creates an account with a fresh id and zero balance and
// returns the new id.
func (s *Service) AddAccount(name string, accountType model.AccountType, number string, bankCode uint32) model.ID {
	return s.PutAccount(model.Account{
		Name:     name,
		Type:     accountType,
		Number:   number,
		BankCode: bankCode,
	})
}

// PutAccount commits an account by id: replace when the id exists,
// append otherwise. A zero id gets a fresh one. Returns the id.
func (s *Service) PutAccount(acct model.Account) model.ID {
	if acct.ID == (model.ID{}) {
		acct.ID = model.NewID()
	}
	if i, ok := s.accountIdx[acct.ID]; ok {
		s.accounts[i] = acct
		return acct.ID
	}
	s.accountIdx[acct.ID] = len(s.accounts)
	s.accounts = append(s.accounts, acct)
	return acct.ID
}

// AddOperation commits an operation, defaulting a zero date_time to the
// current local time. The account reference is checked before any
// mutation.
func (s *Service) AddOperation(op model.Operation) (model.ID, error) {
	if op.DateTime.IsZero() {
		op.DateTime = model.Now()
	}
	return s.PutOperation(op)
}

// PutOperation commits an operation by id: replace when the id exists,
// append otherwise. A zero id gets a fresh one. An operation whose
// account_id does not resolve is rejected with
// ReferentialIntegrityError and the ledger stays unchanged. ReceiptID
// is not validated: a dangling receipt reference is legal.
func (s *Service) PutOperation(op model.Operation) (model.ID, error) {
	if op.ID == (model.ID{}) {
		op.ID = model.NewID()
	}
	if !s.HasAccount(op.AccountID) {
		return model.ID{}, &ReferentialIntegrityError{OperationID: op.ID, AccountID: op.AccountID}
	}
	if i, ok := s.operationIdx[op.ID]; ok {
		s.operations[i] = op
		return op.ID, nil
	}
	s.operationIdx[op.ID] = len(s.operations)
	s.operations = append(s.operations, op)
	return op.ID, nil
}

// PutReceipt commits a receipt by id: replace when the id exists,
// append otherwise. A zero id gets a fresh one. Returns the id.
func (s *Service) PutReceipt(r model.Receipt) model.ID {
	if r.ID == (model.ID{}) {
		r.ID = model.NewID()
	}
	if i, ok := s.receiptIdx[r.ID]; ok {
		s.receipts[i] = r
		return r.ID
	}
	s.receiptIdx[r.ID] = len(s.receipts)
	s.receipts = append(s.receipts, r)
	return r.ID
}

// SetBalance overwrites an account's stored balance, in minor units.
func (s *Service) SetBalance(accountID model.ID, balance uint64) error {
	i, ok := s.accountIdx[accountID]
	if !ok {
		return &ReferentialIntegrityError{AccountID: accountID}
	}
	s.accounts[i].Balance = balance
	return nil
}
