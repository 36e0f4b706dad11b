package domain

import "encoding/json"

// Optional is a tri-state JSON field for partial updates. It
// distinguishes a key that is absent (Set=false) from one that is
// present but null (Set=true, Valid=false) from one that carries a
// value (Set=true, Valid=true).
//
// Partial updates only touch fields whose key was present, and fields
// where null is legal (e.g. an order's actual_end_date) can be cleared
// explicitly. Unknown keys are never applied: each update payload is an
// explicit struct of Optional fields, not an open map.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON is only invoked for keys present in the payload, which
// is what makes Set reliable.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr returns the value as a pointer, nil when absent or null.
func (o Optional[T]) Ptr() *T {
	if !o.Set || !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
