package account

import (
	"context"
	"fxledger/internal/domain"
)

// Operation is a ledger request. DepositOperation and TransferOperation are
// the only implementations.
type Operation interface {
	isOperation()
}

type DepositOperation struct {
	Username string
	Currency string
	Amount   float64
}

type TransferOperation struct {
	Username string
	Amount   float64
	From     string
	To       string
}

func (DepositOperation) isOperation()  {}
func (TransferOperation) isOperation() {}

// OperationResult carries the result of whichever variant was executed.
type OperationResult struct {
	Deposit  *domain.DepositResult
	Transfer *domain.TransferResult
}

// Execute dispatches op to Deposit or Transfer.
func (s *Service) Execute(ctx context.Context, op Operation) (OperationResult, error) {
	switch o := op.(type) {
	case *DepositOperation:
		if o == nil {
			return OperationResult{}, domain.ErrInvalidRequestShape
		}
		return s.Execute(ctx, *o)
	case *TransferOperation:
		if o == nil {
			return OperationResult{}, domain.ErrInvalidRequestShape
		}
		return s.Execute(ctx, *o)
	case DepositOperation:
		res, err := s.Deposit(ctx, o.Username, o.Currency, o.Amount)
		if err != nil {
			return OperationResult{}, err
		}
		return OperationResult{Deposit: &res}, nil
	case TransferOperation:
		res, err := s.Transfer(ctx, o.Username, o.Amount, o.From, o.To)
		if err != nil {
			return OperationResult{}, err
		}
		return OperationResult{Transfer: &res}, nil
	default:
		return OperationResult{}, domain.ErrInvalidRequestShape
	}
}
