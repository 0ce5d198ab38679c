package domain

import (
	"encoding/json"
	"math"
)

const infinityLiteral = "Infinity"

// Unbounded is a float64 that may legitimately be +Inf, such as a payback
// period when cash flow is not positive. It encodes +Inf as "Infinity" in JSON.
type Unbounded float64

func (u Unbounded) IsInf() bool {
	return math.IsInf(float64(u), 1)
}

func (u Unbounded) MarshalJSON() ([]byte, error) {
	if u.IsInf() {
		return json.Marshal(infinityLiteral)
	}
	if math.IsNaN(float64(u)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(u))
}

func (u *Unbounded) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == infinityLiteral {
			*u = Unbounded(math.Inf(1))
			return nil
		}
	}
	if string(data) == "null" {
		*u = Unbounded(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*u = Unbounded(f)
	return nil
}
