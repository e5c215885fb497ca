package models

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Appliance is a single row of the eletronicos table.
type Appliance struct {
	ID          int64     `json:"id"`
	Name        string    `json:"eletronico"`
	Consumption Scalar    `json:"consumo"`
	Active      Scalar    `json:"status"`
	Cost        LooseText `json:"gasto"`
	Description string    `json:"descricao"`
}

// LooseText is free-form text that also accepts bare JSON scalars.
// A number or boolean sent by a client is kept as its literal text.
type LooseText string

// UnmarshalJSON implements json.Unmarshaler.
func (t *LooseText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = LooseText(s)
		return nil
	case len(data) > 0 && data[0] == '{':
		return &json.UnmarshalTypeError{Value: "object", Type: reflect.TypeOf(*t)}
	case len(data) > 0 && data[0] == '[':
		return &json.UnmarshalTypeError{Value: "array", Type: reflect.TypeOf(*t)}
	default:
		*t = LooseText(data)
		return nil
	}
}
