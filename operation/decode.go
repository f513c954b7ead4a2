package operation

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// check accepts only the canonical lower-case kinds; ParseKind normalizes.
func (k Kind) check() error {
	switch k {
	case Insert, Delete, Search, Modify:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
}

// Validate checks the kind and, for Modify, the presence of Target.
func (op KeyOp) Validate() error {
	if err := op.Kind.check(); err != nil {
		return err
	}
	if op.Kind == Modify && op.Target == nil {
		return ErrMissingTarget
	}
	return nil
}

// Validate checks the kind and the key. The map offers no Modify; an
// Insert on an existing key updates its value instead.
func (op EntryOp) Validate() error {
	if err := op.Kind.check(); err != nil {
		return err
	}
	if op.Kind == Modify {
		return fmt.Errorf("%w: %s on map", ErrUnsupportedKind, op.Kind)
	}
	if op.Key == "" {
		return ErrEmptyKey
	}
	return nil
}

// DecodeKeyOp decodes a loosely typed payload such as
// {"kind": "Insert", "value": "42"} into a validated KeyOp.
func DecodeKeyOp(payload map[string]any) (*KeyOp, error) {
	var op KeyOp
	if err := decode(payload, &op); err != nil {
		return nil, err
	}
	if err := normalize(&op.Kind); err != nil {
		return nil, err
	}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return &op, nil
}

// DecodeEntryOp decodes a loosely typed payload such as
// {"kind": "insert", "key": "a", "value": 1} into a validated EntryOp.
func DecodeEntryOp(payload map[string]any) (*EntryOp, error) {
	var op EntryOp
	if err := decode(payload, &op); err != nil {
		return nil, err
	}
	if err := normalize(&op.Kind); err != nil {
		return nil, err
	}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return &op, nil
}

func decode(payload map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       exactInt,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(payload); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return nil
}

// exactInt refuses to narrow a float into an int field unless the value is
// a whole number within the int range. JSON numbers arrive as float64.
func exactInt(from, to reflect.Kind, data any) (any, error) {
	if to != reflect.Int || (from != reflect.Float64 && from != reflect.Float32) {
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, fmt.Errorf("%v is not an integer key", data)
	}
	return int(f), nil
}

func normalize(k *Kind) error {
	parsed, err := ParseKind(string(*k))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
