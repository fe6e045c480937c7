package calf

import (
	"fmt"
	"strings"
)

// LiteralType selects the Go type numeric literals are parsed into
type LiteralType string

const (
	LiteralInt     LiteralType = "int"     // int64
	LiteralFloat   LiteralType = "float"   // float64
	LiteralDecimal LiteralType = "decimal" // decimal.Decimal
)

// ParseLiteralType accepts int, float or decimal in any case
func ParseLiteralType(s string) (LiteralType, error) {
	switch t := LiteralType(strings.ToLower(strings.TrimSpace(s))); t {
	case LiteralInt, LiteralFloat, LiteralDecimal:
		return t, nil
	default:
		return "", fmt.Errorf("%w '%s': must be one of int, float, decimal", ErrUnknownLiteralType, s)
	}
}
