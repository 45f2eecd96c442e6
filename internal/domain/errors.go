package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user already exists")
	ErrInvalidUsername     = errors.New("username is required")
	ErrAccountNotFound     = errors.New("currency account not found")
	ErrInsufficientFunds   = errors.New("insufficient funds or invalid from account")
	ErrInvalidCurrencyPair = errors.New("invalid currency pair")
	ErrRateFetchFailed     = errors.New("rate fetch failed")
	ErrInvalidRequestShape = errors.New("invalid request shape")
)
