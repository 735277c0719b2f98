package common

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorRules(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		rules   []ValidationRule
		wantErr bool
	}{
		{"required passes", "receipt.txt", []ValidationRule{Required()}, false},
		{"required rejects empty", "", []ValidationRule{Required()}, true},
		{"required rejects whitespace", "   ", []ValidationRule{Required()}, true},
		{"required rejects nil", nil, []ValidationRule{Required()}, true},
		{"maxlen passes", "short", []ValidationRule{MaxLen(10)}, false},
		{"maxlen rejects long", "this value is far too long", []ValidationRule{MaxLen(10)}, true},
		{"uuid passes", uuid.NewString(), []ValidationRule{IsUUID()}, false},
		{"uuid rejects garbage", "not-a-uuid", []ValidationRule{IsUUID()}, true},
		{"oneof passes", "csv", []ValidationRule{OneOf("xlsx", "csv")}, false},
		{"oneof rejects other", "pdf", []ValidationRule{OneOf("xlsx", "csv")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator()
			v.Field("field", tt.value, tt.rules...)
			if tt.wantErr {
				assert.True(t, v.HasErrors())
				assert.Error(t, v.Error())
			} else {
				assert.False(t, v.HasErrors())
				assert.NoError(t, v.Error())
			}
		})
	}
}

func TestValidatorCollectsAllErrors(t *testing.T) {
	v := NewValidator()
	v.Field("filename", "", Required())
	v.Field("format", "pdf", OneOf("xlsx", "csv"))

	require.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 2)
	err := v.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filename")
	assert.Contains(t, err.Error(), "format")
}
