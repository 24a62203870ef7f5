package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// RawNumber is a single drawn value as it appears in source data: either a JSON
// number or a decimal string such as "08".
type RawNumber struct {
	text     string
	isString bool
}

// NumberValue creates a RawNumber holding a numeric value
func NumberValue(n int) RawNumber {
	return RawNumber{text: strconv.Itoa(n)}
}

// StringValue creates a RawNumber holding a string value
func StringValue(s string) RawNumber {
	return RawNumber{text: s, isString: true}
}

// Text returns the value exactly as it was supplied
func (n RawNumber) Text() string {
	return n.text
}

// IsString reports whether the value was supplied as a string
func (n RawNumber) IsString() bool {
	return n.isString
}

// UnmarshalJSON accepts numbers and strings. Any other JSON value becomes an
// empty string, which normalization drops.
func (n *RawNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty draw value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to decode draw value %s: %w", data, err)
		}
		*n = StringValue(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*n = RawNumber{text: string(data)}
	default:
		*n = StringValue("")
	}
	return nil
}

// MarshalJSON writes the value back in the form it was supplied
func (n RawNumber) MarshalJSON() ([]byte, error) {
	if n.isString {
		return json.Marshal(n.text)
	}
	if n.text == "" {
		return []byte("null"), nil
	}
	return []byte(n.text), nil
}

// RawDraw is a historical draw record as supplied by a data source. Values have
// not been validated.
type RawDraw struct {
	Date        string      `json:"date,omitempty"`
	Numbers     []RawNumber `json:"numbers"`
	StarNumbers []RawNumber `json:"starNumbers"`
}

// NewRawDraw builds a RawDraw from already-parsed integers
func NewRawDraw(date string, numbers, starNumbers []int) RawDraw {
	draw := RawDraw{
		Date:        date,
		Numbers:     make([]RawNumber, 0, len(numbers)),
		StarNumbers: make([]RawNumber, 0, len(starNumbers)),
	}
	for _, v := range numbers {
		draw.Numbers = append(draw.Numbers, NumberValue(v))
	}
	for _, v := range starNumbers {
		draw.StarNumbers = append(draw.StarNumbers, NumberValue(v))
	}
	return draw
}

// Draw is a normalized draw: every value is within its game bounds and no value
// repeats within a list.
type Draw struct {
	Date        string `json:"date,omitempty"`
	Numbers     []int  `json:"numbers"`
	StarNumbers []int  `json:"starNumbers"`
}

// Raw converts a normalized draw back into a RawDraw
func (d Draw) Raw() RawDraw {
	return NewRawDraw(d.Date, d.Numbers, d.StarNumbers)
}
