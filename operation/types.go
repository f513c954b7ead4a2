package operation

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for operation parsing and validation.
var (
	// ErrUnknownKind indicates an operation name outside insert, delete, search, modify.
	ErrUnknownKind = errors.New("operation: unknown kind")

	// ErrMissingTarget indicates a modify operation without a replacement key.
	ErrMissingTarget = errors.New("operation: modify requires a target")

	// ErrUnsupportedKind indicates a kind the receiving structure does not offer.
	ErrUnsupportedKind = errors.New("operation: kind not supported")

	// ErrEmptyKey indicates a map operation without a key.
	ErrEmptyKey = errors.New("operation: empty key")

	// ErrBadPayload indicates a payload that could not be decoded.
	ErrBadPayload = errors.New("operation: malformed payload")
)

// Kind names what an operation does.
type Kind string

const (
	Insert Kind = "insert"
	Delete Kind = "delete"
	Search Kind = "search"
	Modify Kind = "modify"
)

// ParseKind is case-insensitive.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case Insert, Delete, Search, Modify:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// KeyOp is an operation on an integer-keyed tree.
//
// For Modify, Value is the key to replace and Target the key that takes its
// place. Target is ignored by every other kind.
type KeyOp struct {
	Kind   Kind `json:"kind" yaml:"kind" mapstructure:"kind"`
	Value  int  `json:"value" yaml:"value" mapstructure:"value"`
	Target *int `json:"target,omitempty" yaml:"target,omitempty" mapstructure:"target"`
}

// EntryOp is an operation on the string map. Value is used by Insert only.
type EntryOp struct {
	Kind  Kind   `json:"kind" yaml:"kind" mapstructure:"kind"`
	Key   string `json:"key" yaml:"key" mapstructure:"key"`
	Value string `json:"value,omitempty" yaml:"value,omitempty" mapstructure:"value"`
}

// NewKeyOp builds a non-modify KeyOp.
func NewKeyOp(kind Kind, value int) *KeyOp {
	return &KeyOp{Kind: kind, Value: value}
}

// NewModify builds a KeyOp replacing from with to.
func NewModify(from, to int) *KeyOp {
	return &KeyOp{Kind: Modify, Value: from, Target: &to}
}

func (op KeyOp) String() string {
	if op.Kind == Modify && op.Target != nil {
		return fmt.Sprintf("modify %d -> %d", op.Value, *op.Target)
	}
	return fmt.Sprintf("%s %d", op.Kind, op.Value)
}

func (op EntryOp) String() string {
	if op.Kind == Insert {
		return fmt.Sprintf("insert %q=%q", op.Key, op.Value)
	}
	return fmt.Sprintf("%s %q", op.Kind, op.Key)
}
