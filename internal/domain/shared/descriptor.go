package shared

// FieldKind classifies an entity field for the partial-update rule.
type FieldKind int

// Field kinds
const (
	KindString FieldKind = iota
	KindInt
	KindBool
	KindTime
	KindDecimal
	KindRelation
)

// Scalar reports whether an explicit null clears the field on update.
// Only string, integer and boolean fields may be nulled by a client; dates,
// amounts and relationship keys are left untouched when null so a partial
// payload can never cascade-null them.
func (k FieldKind) Scalar() bool {
	switch k {
	case KindString, KindInt, KindBool:
		return true
	}
	return false
}

// FieldDescriptor describes one updatable column of an entity.
type FieldDescriptor struct {
	Column    string
	Kind      FieldKind
	Protected bool
}

// EntityDescriptor is the data-driven description of an entity type used by
// the generic persistence engine: its display name, component tag for status
// lookups, and the per-field update rules.
type EntityDescriptor struct {
	Name      string
	Component string
	Fields    []FieldDescriptor
}

// Protected columns common to every entity. They are stamped by the engine
// and never writable through an update payload.
var protectedColumns = map[string]bool{
	"id":           true,
	"created":      true,
	"modified":     true,
	"is_deleted":   true,
	"deleted_date": true,
}

// ProtectedColumn reports whether the column is engine-managed.
func ProtectedColumn(column string) bool {
	return protectedColumns[column]
}

// ApplyPatch filters a raw update payload down to the columns the update is
// allowed to touch. Key presence in the patch means the field appeared in the
// payload; a nil value means it was an explicit null. A present non-nil value
// is always copied; a present null is copied only for scalar fields (clearing
// them); nulls on time, decimal and relation fields are skipped. Protected
// and unknown columns are ignored.
func (d EntityDescriptor) ApplyPatch(patch map[string]any) map[string]any {
	updates := make(map[string]any, len(patch))
	for _, f := range d.Fields {
		if f.Protected || ProtectedColumn(f.Column) {
			continue
		}
		value, present := patch[f.Column]
		if !present {
			continue
		}
		if value != nil {
			updates[f.Column] = value
			continue
		}
		if f.Kind.Scalar() {
			updates[f.Column] = nil
		}
	}
	return updates
}

// Field returns the descriptor for a column, if declared.
func (d EntityDescriptor) Field(column string) (FieldDescriptor, bool) {
	for _, f := range d.Fields {
		if f.Column == column {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}
