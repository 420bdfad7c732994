package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// refusalCount is the blow count substituted for a refusal reading.
const refusalCount = 50

// NValue is an SPT blow count that may also record a refusal ("R"). A refusal
// behaves as 50 blows in arithmetic and sorts above every numeric count.
// Encoded in JSON as a number or the string "R".
type NValue struct {
	refusal bool
	value   int
}

// NewNValue builds a numeric blow count. Counts must be positive.
func NewNValue(n int) (NValue, error) {
	if n <= 0 {
		return NValue{}, Invalidf("n value must be greater than 0, got %d", n)
	}
	return NValue{value: n}, nil
}

// MustNValue builds a numeric blow count and panics on an invalid one.
func MustNValue(n int) NValue {
	v, err := NewNValue(n)
	if err != nil {
		panic(err)
	}
	return v
}

// Refusal is the refusal blow count reading.
func Refusal() NValue { return NValue{refusal: true} }

// IsRefusal reports whether the reading is a refusal.
func (n NValue) IsRefusal() bool { return n.refusal }

// Int returns the effective blow count, 50 for refusals.
func (n NValue) Int() int {
	if n.refusal {
		return refusalCount
	}
	return n.value
}

// MulF64 scales the count by factor, rounding up. Refusals stay refusals.
func (n NValue) MulF64(factor float64) NValue {
	if n.refusal {
		return n
	}
	return NValue{value: int(math.Ceil(float64(n.value) * factor))}
}

// AddF64 adds a float to the count, rounding up. Refusals stay refusals.
func (n NValue) AddF64(x float64) NValue {
	if n.refusal {
		return n
	}
	return NValue{value: int(math.Ceil(float64(n.value) + x))}
}

// Sum adds two counts; any refusal operand makes the result a refusal.
func (n NValue) Sum(other NValue) NValue {
	if n.refusal || other.refusal {
		return Refusal()
	}
	return NValue{value: n.value + other.value}
}

// Less orders counts with refusal as the greatest value.
func (n NValue) Less(other NValue) bool {
	if n.refusal {
		return false
	}
	if other.refusal {
		return true
	}
	return n.value < other.value
}

func (n NValue) String() string {
	if n.refusal {
		return "R"
	}
	return strconv.Itoa(n.value)
}

func (n NValue) MarshalJSON() ([]byte, error) {
	if n.refusal {
		return json.Marshal("R")
	}
	return json.Marshal(n.value)
}

func (n *NValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if strings.EqualFold(s, "R") {
			*n = Refusal()
			return nil
		}
		return Invalidf("invalid n value %q", s)
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return Invalidf("invalid n value %s", string(data))
	}
	nv, err := NewNValue(v)
	if err != nil {
		return err
	}
	*n = nv
	return nil
}
