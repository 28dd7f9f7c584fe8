package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testDescriptor = EntityDescriptor{
	Name:      "widget",
	Component: "WIDGET",
	Fields: []FieldDescriptor{
		{Column: "name", Kind: KindString},
		{Column: "count", Kind: KindInt},
		{Column: "enabled", Kind: KindBool},
		{Column: "due_date", Kind: KindTime},
		{Column: "amount", Kind: KindDecimal},
		{Column: "parent_id", Kind: KindRelation},
	},
}

func TestFieldKind_Scalar(t *testing.T) {
	assert.True(t, KindString.Scalar())
	assert.True(t, KindInt.Scalar())
	assert.True(t, KindBool.Scalar())
	assert.False(t, KindTime.Scalar())
	assert.False(t, KindDecimal.Scalar())
	assert.False(t, KindRelation.Scalar())
}

func TestEntityDescriptor_ApplyPatch(t *testing.T) {
	t.Run("copies present non-null values", func(t *testing.T) {
		updates := testDescriptor.ApplyPatch(map[string]any{
			"name":      "new name",
			"parent_id": float64(7),
		})

		assert.Equal(t, map[string]any{"name": "new name", "parent_id": float64(7)}, updates)
	})

	t.Run("omitted fields are not touched", func(t *testing.T) {
		updates := testDescriptor.ApplyPatch(map[string]any{"name": "only this"})

		_, present := updates["count"]
		assert.False(t, present)
		assert.Len(t, updates, 1)
	})

	t.Run("explicit null clears scalar fields", func(t *testing.T) {
		updates := testDescriptor.ApplyPatch(map[string]any{
			"name":    nil,
			"count":   nil,
			"enabled": nil,
		})

		assert.Len(t, updates, 3)
		for _, column := range []string{"name", "count", "enabled"} {
			value, present := updates[column]
			assert.True(t, present, column)
			assert.Nil(t, value, column)
		}
	})

	t.Run("explicit null on dates, amounts and relations is skipped", func(t *testing.T) {
		updates := testDescriptor.ApplyPatch(map[string]any{
			"due_date":  nil,
			"amount":    nil,
			"parent_id": nil,
		})

		assert.Empty(t, updates)
	})

	t.Run("protected columns never pass through", func(t *testing.T) {
		updates := testDescriptor.ApplyPatch(map[string]any{
			"id":           99,
			"created":      "2020-01-01",
			"modified":     "2020-01-01",
			"is_deleted":   true,
			"deleted_date": "2020-01-01",
			"name":         "kept",
		})

		assert.Equal(t, map[string]any{"name": "kept"}, updates)
	})

	t.Run("unknown columns are ignored", func(t *testing.T) {
		updates := testDescriptor.ApplyPatch(map[string]any{
			"no_such_column": "x",
		})

		assert.Empty(t, updates)
	})
}

func TestEntityDescriptor_Field(t *testing.T) {
	f, ok := testDescriptor.Field("amount")
	assert.True(t, ok)
	assert.Equal(t, KindDecimal, f.Kind)

	_, ok = testDescriptor.Field("missing")
	assert.False(t, ok)
}
