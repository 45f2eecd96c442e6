package rate

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrFromRequired  = errors.New("from currency is required")
	ErrToRequired    = errors.New("to currency is required")
	ErrCodeMalformed = errors.New("currency code must be 2 to 10 letters or digits")
)

// codeRule matches what the provider publishes: short lower-case alphanumerics.
const codeRule = "alphanum,min=2,max=10"

// CurrencyValidator checks currency code format only. Whether a code is
// actually quoted is decided against the day's rate set.
type CurrencyValidator struct {
	validate *validator.Validate
}

func (v *CurrencyValidator) ValidateCode(code string) error {
	if err := v.validate.Var(code, codeRule); err != nil {
		return fmt.Errorf("%w: %q", ErrCodeMalformed, code)
	}
	return nil
}

func (v *CurrencyValidator) ValidateCodes(from, to string) error {
	if from == "" {
		return ErrFromRequired
	}
	if to == "" {
		return ErrToRequired
	}
	if err := v.ValidateCode(from); err != nil {
		return err
	}
	return v.ValidateCode(to)
}

func NewValidator() *CurrencyValidator {
	return &CurrencyValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}
