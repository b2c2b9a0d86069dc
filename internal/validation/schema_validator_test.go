package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidator_Items(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name: "valid",
			data: `{"version":"1.0","items":[{"material":"diamond_sword","rarity":"COMMON","attack_speed":1.6,"max_stack":1}]}`,
		},
		{
			name:    "unknown rarity",
			data:    `{"version":"1.0","items":[{"material":"nether_star","rarity":"LEGENDARY"}]}`,
			wantErr: "/items/0/rarity",
		},
		{
			name:    "missing items",
			data:    `{"version":"1.0"}`,
			wantErr: "required",
		},
		{
			name:    "bad material",
			data:    `{"version":"1.0","items":[{"material":"Diamond Sword","rarity":"RARE"}]}`,
			wantErr: "/items/0/material",
		},
		{
			name:    "non-positive attack speed",
			data:    `{"version":"1.0","items":[{"material":"stick","rarity":"COMMON","attack_speed":0}]}`,
			wantErr: "/items/0/attack_speed",
		},
		{
			name:    "not json",
			data:    `{nope`,
			wantErr: "failed to parse JSON data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), SchemaItems)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{}`), "missing.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}
