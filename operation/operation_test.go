package operation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoscope/operation"
)

func TestParseKind(t *testing.T) {
	for _, s := range []string{"insert", "DELETE", " Search ", "modify"} {
		_, err := operation.ParseKind(s)
		assert.NoError(t, err, s)
	}
	_, err := operation.ParseKind("upsert")
	assert.ErrorIs(t, err, operation.ErrUnknownKind)
}

func TestDecodeKeyOp(t *testing.T) {
	op, err := operation.DecodeKeyOp(map[string]any{"kind": "Insert", "value": "42"})
	require.NoError(t, err)
	assert.Equal(t, operation.Insert, op.Kind)
	assert.Equal(t, 42, op.Value)
	assert.Nil(t, op.Target)

	op, err = operation.DecodeKeyOp(map[string]any{"kind": "modify", "value": 3, "target": 9.0})
	require.NoError(t, err)
	require.NotNil(t, op.Target)
	assert.Equal(t, 9, *op.Target)
	assert.Equal(t, "modify 3 -> 9", op.String())

	op, err = operation.DecodeKeyOp(map[string]any{"kind": "delete", "value": -7.0})
	require.NoError(t, err)
	assert.Equal(t, -7, op.Value)
}

func TestDecodeKeyOp_Errors(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]any
		want    error
	}{
		{"unknown kind", map[string]any{"kind": "upsert", "value": 1}, operation.ErrUnknownKind},
		{"modify without target", map[string]any{"kind": "modify", "value": 1}, operation.ErrMissingTarget},
		{"non-numeric value", map[string]any{"kind": "insert", "value": "ten"}, operation.ErrBadPayload},
		{"unknown field", map[string]any{"kind": "insert", "value": 1, "color": "red"}, operation.ErrBadPayload},
		{"fractional value", map[string]any{"kind": "insert", "value": 42.9}, operation.ErrBadPayload},
		{"fractional target", map[string]any{"kind": "modify", "value": 1, "target": 2.5}, operation.ErrBadPayload},
		{"value beyond int", map[string]any{"kind": "delete", "value": 1e19}, operation.ErrBadPayload},
		{"fractional string", map[string]any{"kind": "insert", "value": "42.9"}, operation.ErrBadPayload},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := operation.DecodeKeyOp(tc.payload)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecodeEntryOp(t *testing.T) {
	op, err := operation.DecodeEntryOp(map[string]any{"kind": "insert", "key": "apple", "value": 5})
	require.NoError(t, err)
	assert.Equal(t, operation.EntryOp{Kind: operation.Insert, Key: "apple", Value: "5"}, *op)

	_, err = operation.DecodeEntryOp(map[string]any{"kind": "modify", "key": "a"})
	assert.ErrorIs(t, err, operation.ErrUnsupportedKind)

	_, err = operation.DecodeEntryOp(map[string]any{"kind": "search"})
	assert.ErrorIs(t, err, operation.ErrEmptyKey)
}

func TestNewModify(t *testing.T) {
	op := operation.NewModify(1, 2)
	require.NoError(t, op.Validate())
	assert.Equal(t, 2, *op.Target)
	assert.Equal(t, "delete 7", operation.NewKeyOp(operation.Delete, 7).String())
}

func TestValidate_RequiresCanonicalKind(t *testing.T) {
	assert.ErrorIs(t, operation.KeyOp{Kind: "INSERT"}.Validate(), operation.ErrUnknownKind)
	assert.ErrorIs(t, operation.EntryOp{Kind: "Search", Key: "k"}.Validate(), operation.ErrUnknownKind)
	assert.NoError(t, operation.EntryOp{Kind: operation.Search, Key: "k"}.Validate())
}
