package validation

import (
	"bytes"
	"encoding/json"
)

// FieldErrors maps field names to the ordered list of messages recorded
// for that field. Fields appear in the order they were first added, which
// for profile evaluation is the profile's declaration order; JSON output
// preserves that order so error payloads are stable for clients and tests.
//
// A nil *FieldErrors signals valid input.
type FieldErrors struct {
	order   []string
	byField map[string][]string
}

// Add appends a message to the named field's list, registering the field
// on first use.
func (e *FieldErrors) Add(field, message string) {
	if e.byField == nil {
		e.byField = make(map[string][]string)
	}
	if _, seen := e.byField[field]; !seen {
		e.order = append(e.order, field)
	}
	e.byField[field] = append(e.byField[field], message)
}

// Len returns the number of fields with at least one message.
func (e *FieldErrors) Len() int {
	if e == nil {
		return 0
	}
	return len(e.order)
}

// Fields returns the field names in first-added order.
func (e *FieldErrors) Fields() []string {
	if e == nil {
		return nil
	}
	return e.order
}

// Messages returns the messages recorded for the named field, in the
// order they were added.
func (e *FieldErrors) Messages(field string) []string {
	if e == nil {
		return nil
	}
	return e.byField[field]
}

// MarshalJSON emits the fields as a JSON object in first-added order.
// encoding/json sorts map keys, so the object is written by hand.
func (e *FieldErrors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range e.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		messages, err := json.Marshal(e.byField[field])
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(messages)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
