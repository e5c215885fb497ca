package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"reflect"
	"time"
)

// Scalar holds a single JSON scalar exactly as a client sent it: a number,
// a boolean, a string or null. It is bound to SQL unchanged, so column
// affinity decides how it is stored, and whatever the column holds is read
// back as-is.
type Scalar struct {
	v any
}

// Number returns a numeric Scalar.
func Number(f float64) Scalar { return Scalar{v: f} }

// Bool returns a boolean Scalar.
func Bool(b bool) Scalar { return Scalar{v: b} }

// Text returns a string Scalar.
func Text(s string) Scalar { return Scalar{v: s} }

// Interface returns the held value: nil, float64, int64, bool or string.
func (s Scalar) Interface() any { return s.v }

// IsNull reports whether no value is held.
func (s Scalar) IsNull() bool { return s.v == nil }

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return &json.UnmarshalTypeError{Value: "empty", Type: reflect.TypeOf(*s)}
	}
	switch data[0] {
	case 'n':
		s.v = nil
		return nil
	case '{':
		return &json.UnmarshalTypeError{Value: "object", Type: reflect.TypeOf(*s)}
	case '[':
		return &json.UnmarshalTypeError{Value: "array", Type: reflect.TypeOf(*s)}
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s.v = str
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		s.v = b
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		s.v = f
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.v)
}

// Value implements driver.Valuer.
func (s Scalar) Value() (driver.Value, error) {
	return s.v, nil
}

// Scan implements sql.Scanner.
func (s *Scalar) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		s.v = nil
	case float64, int64, bool, string:
		s.v = v
	case float32:
		s.v = float64(v)
	case int32:
		s.v = int64(v)
	case []byte:
		s.v = string(v)
	case time.Time:
		s.v = v.Format(time.RFC3339Nano)
	default:
		return fmt.Errorf("scalar: unsupported column type %T", src)
	}
	return nil
}
