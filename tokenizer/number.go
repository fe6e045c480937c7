package tokenizer

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// NumberParser converts the text of a numeric literal into the literal type T.
type NumberParser[T any] func(text string) (T, error)

// ParseInt64 parses literals as 64-bit integers. Float literals are rejected.
func ParseInt64(text string) (int64, error) {
	return strconv.ParseInt(text, 10, 64)
}

// ParseFloat64 parses literals as 64-bit floats.
func ParseFloat64(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}

// ParseDecimal parses literals as arbitrary-precision decimals.
func ParseDecimal(text string) (decimal.Decimal, error) {
	return decimal.NewFromString(text)
}
