package ledger

import (
	"errors"
)

// ledger errors
var (
	ErrRateCannotIncrease  = errors.New("global rate cannot increase")
	ErrRateCannotBeZero    = errors.New("rate cannot be zero")
	ErrMintToZeroAddress   = errors.New("mint to zero address")
	ErrAmountCannotBeZero  = errors.New("amount cannot be zero")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNotAuthorized       = errors.New("caller has no required capability")
)
