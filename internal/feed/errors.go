package feed

import (
	"errors"
	"fmt"
)

// ErrWalletRequired is returned when a mutation is attempted without a
// connected wallet. Unauthenticated viewers may read but not vote, tip
// or post.
var ErrWalletRequired = errors.New("wallet not connected")

// NotFoundError is returned by operations referencing a post or
// notification that does not exist. No state is mutated.
type NotFoundError struct {
	Kind string
	ID   string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// InvalidAmountError is returned when a tip amount fails validation
// (non-positive, NaN or infinite). The action is rejected and no state
// is mutated.
type InvalidAmountError struct {
	Amount float64
}

// Error implements the error interface
func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid tip amount: %v", e.Amount)
}
