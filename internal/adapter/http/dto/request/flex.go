package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidValue = errors.New("invalid value")

var jsonNull = []byte("null")

// FlexFloat decodes a JSON number or a numeric string. Set is false for a
// missing, null or blank value.
type FlexFloat struct {
	Value float64
	Set   bool
}

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	*f = FlexFloat{}
	if bytes.Equal(b, jsonNull) {
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexFloat{Value: n, Set: true}
		return nil
	}
	s, err := decodeString(b)
	if err != nil || s == "" {
		return err
	}
	n, err = strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return fmt.Errorf("%w: %q is not a number", ErrInvalidValue, s)
	}
	*f = FlexFloat{Value: n, Set: true}
	return nil
}

// FlexInt decodes a JSON number or an integer string. Fractional numbers are
// truncated toward zero.
type FlexInt struct {
	Value int
	Set   bool
}

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	*f = FlexInt{}
	if bytes.Equal(b, jsonNull) {
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		if math.Abs(n) > math.MaxInt32 {
			return fmt.Errorf("%w: %v is out of range", ErrInvalidValue, n)
		}
		*f = FlexInt{Value: int(n), Set: true}
		return nil
	}
	s, err := decodeString(b)
	if err != nil || s == "" {
		return err
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, s)
	}
	*f = FlexInt{Value: i, Set: true}
	return nil
}

// FlexString decodes a JSON string or number into its string form, so a
// ceiling height may be sent as 12 or "12".
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	*f = ""
	if bytes.Equal(b, jsonNull) {
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}
	s, err := decodeString(b)
	if err != nil {
		return err
	}
	*f = FlexString(s)
	return nil
}

// FlexBool decodes a JSON boolean or one of "Yes"/"No" (any case). Other
// strings decode as false.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	*f = false
	if bytes.Equal(b, jsonNull) {
		return nil
	}
	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		*f = FlexBool(v)
		return nil
	}
	s, err := decodeString(b)
	if err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "yes", "true":
		*f = true
	}
	return nil
}

func decodeString(b []byte) (string, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidValue, b)
	}
	return strings.TrimSpace(s), nil
}
