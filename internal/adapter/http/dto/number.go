package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"ppocha-economy/internal/core/domain"
)

// LooseNumber decodes a JSON number or a numeric string. Anything else
// (null, booleans, words, objects, NaN) decodes to 0 rather than failing,
// so clients that send "1200" or omit a field still get a defined result.
type LooseNumber float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *LooseNumber) UnmarshalJSON(b []byte) error {
	*n = 0
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}

	var raw string
	switch b[0] {
	case '"':
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil
		}
		raw = strings.TrimSpace(raw)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		raw = string(b)
	default:
		return nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = LooseNumber(f)
	return nil
}

// Float64 returns the value.
func (n LooseNumber) Float64() float64 { return float64(n) }

// Int64 truncates toward zero, saturating at ±MaxSafeInteger so that sums
// of client numbers stay well inside the int64 range.
func (n LooseNumber) Int64() int64 {
	f := math.Trunc(float64(n))
	limit := float64(domain.MaxSafeInteger)
	switch {
	case f >= limit:
		return domain.MaxSafeInteger
	case f <= -limit:
		return -domain.MaxSafeInteger
	default:
		return int64(f)
	}
}
