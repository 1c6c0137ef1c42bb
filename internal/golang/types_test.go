package golang

import (
	"testing"

	"github.com/kolah/flatapi/internal/model"
	"github.com/kolah/flatapi/internal/native"
	"github.com/stretchr/testify/require"
)

func TestGoType(t *testing.T) {
	withProps := &model.Schema{
		Properties: map[string]*model.MaybeRef[model.Schema]{"name": nil},
	}

	tests := []struct {
		name     string
		typ      native.Type
		expected string
	}{
		{"i32", native.I32, "int32"},
		{"i64", native.I64, "int64"},
		{"f32", native.F32, "float32"},
		{"f64", native.F64, "float64"},
		{"bool", native.Bool, "bool"},
		{"string", native.String, "string"},
		{"date", native.Date, "time.Time"},
		{"date-time", native.DateTime, "time.Time"},
		{"named", native.Named("Pet"), "Pet"},
		{"named snake", native.Named("my_pet"), "MyPet"},
		{"array of strings", native.Array(native.String), "[]string"},
		{"array of named", native.Array(native.Named("Pet")), "[]Pet"},
		{"array of several", native.Array(native.String, native.I64), "[]any"},
		{"optional int", native.Optional(native.I64), "*int64"},
		{"optional named", native.Optional(native.Named("Pet")), "*Pet"},
		{"optional array", native.Optional(native.Array(native.Optional(native.I32))), "[]*int32"},
		{"empty object", native.Anonymous(&model.Schema{}), "map[string]any"},
		{"object with properties", native.Anonymous(withProps), "any"},
		{"optional object", native.Optional(native.Anonymous(nil)), "map[string]any"},
	}

	n := NewNamer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, n.GoType(tt.typ))
		})
	}
}
