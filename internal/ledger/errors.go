package ledger

import (
	"fmt"

	"github.com/kassabook-dev/kassabook/internal/model"
)

// StorageError reports a failure to load or save the ledger file. Load
// failures are total: no partially parsed ledger is ever returned.
type StorageError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ReferentialIntegrityError reports a commit that references an account
// the ledger does not contain. The ledger is unchanged when it is
// returned.
type ReferentialIntegrityError struct {
	OperationID model.ID
	AccountID   model.ID
}

func (e *ReferentialIntegrityError) Error() string {
	if e.OperationID == (model.ID{}) {
		return fmt.Sprintf("unknown account %s", e.AccountID)
	}
	return fmt.Sprintf("operation %s references unknown account %s", e.OperationID, e.AccountID)
}
