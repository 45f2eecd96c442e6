package rate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurrencyValidator_ValidateCodes_Errors(t *testing.T) {
	v := NewValidator()

	require.Equal(t, ErrFromRequired, v.ValidateCodes("", "eur"))
	require.Equal(t, ErrToRequired, v.ValidateCodes("usd", ""))
	require.ErrorIs(t, v.ValidateCodes("u$d", "eur"), ErrCodeMalformed)
	require.ErrorIs(t, v.ValidateCodes("usd", "e"), ErrCodeMalformed)
	require.ErrorIs(t, v.ValidateCodes("usd", "abcdefghijk"), ErrCodeMalformed)
}

func TestCurrencyValidator_ValidateCodes_Success(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.ValidateCodes("usd", "eur"))
	// same code is a valid pair, the rate is 1
	require.NoError(t, v.ValidateCodes("usd", "usd"))
	// provider also quotes crypto and metals
	require.NoError(t, v.ValidateCodes("1inch", "xau"))
}

func TestCurrencyValidator_ValidateCode(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.ValidateCode("gbp"))
	require.ErrorIs(t, v.ValidateCode(""), ErrCodeMalformed)
	require.ErrorIs(t, v.ValidateCode("eu r"), ErrCodeMalformed)
}
