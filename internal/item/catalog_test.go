package item

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PaperAPI_Go/internal/domain"
)

const testCatalog = `{
	"version": "1.0",
	"description": "Test items",
	"items": [
		{"material": "diamond_sword", "rarity": "COMMON", "max_stack": 1, "attack_speed": 1.6},
		{"material": "dragon_egg", "rarity": "EPIC", "display_name": "Dragon Egg"},
		{"material": "golden_apple", "rarity": "RARE"}
	]
}`

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("valid JSON file", func(t *testing.T) {
		config, err := loader.Load(createTempFile(t, testCatalog))
		require.NoError(t, err)
		assert.Equal(t, "1.0", config.Version)
		require.Len(t, config.Items, 3)
		assert.Equal(t, domain.RarityEpic, config.Items[1].Rarity)
		assert.InDelta(t, 1.6, config.Items[0].AttackSpeed, 1e-9)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/path.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read item catalog file")
	})

	t.Run("schema violation", func(t *testing.T) {
		_, err := loader.Load(createTempFile(t, `{"version":"1.0","items":[{"material":"x","rarity":"MYTHIC"}]}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})
}

func TestLoader_Validate(t *testing.T) {
	loader := NewLoader()

	tests := []struct {
		name    string
		config  *Config
		wantErr error
	}{
		{"nil config", nil, ErrInvalidConfig},
		{"empty items", &Config{Version: "1.0"}, ErrInvalidConfig},
		{"empty material", &Config{Items: []Def{{Material: ""}}}, ErrInvalidConfig},
		{"duplicate", &Config{Items: []Def{{Material: "stick"}, {Material: "stick"}}}, ErrDuplicateMaterial},
		{"bad rarity", &Config{Items: []Def{{Material: "stick", Rarity: domain.ItemRarity(7)}}}, ErrInvalidConfig},
		{"bad max stack", &Config{Items: []Def{{Material: "stick", MaxStack: 100}}}, ErrInvalidConfig},
		{"negative speed", &Config{Items: []Def{{Material: "stick", AttackSpeed: -1}}}, ErrInvalidConfig},
		{"valid", &Config{Items: []Def{{Material: "stick", MaxStack: 64}}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loader.Validate(tt.config)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestCatalog(t *testing.T) {
	catalog, err := LoadCatalog(createTempFile(t, testCatalog))
	require.NoError(t, err)

	assert.Equal(t, []string{"diamond_sword", "dragon_egg", "golden_apple"}, catalog.Materials())
	assert.Equal(t, map[string]float64{"diamond_sword": 1.6}, catalog.AttackSpeeds())

	def, ok := catalog.Lookup("golden_apple")
	require.True(t, ok)
	assert.Equal(t, DefaultMaxStack, def.MaxStack)

	stack, err := catalog.NewStack("dragon_egg", 1)
	require.NoError(t, err)
	assert.Equal(t, "Dragon Egg", stack.DisplayName())
	assert.Equal(t, domain.RarityEpic, stack.Rarity)

	_, err = catalog.NewStack("diamond_sword", 2)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = catalog.NewStack("bedrock", 1)
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestCatalog_ShippedConfig(t *testing.T) {
	catalog, err := LoadCatalog(filepath.Join("..", "..", ConfigPathCatalog))
	require.NoError(t, err)

	def, ok := catalog.Lookup("dragon_egg")
	require.True(t, ok)
	assert.Equal(t, domain.RarityEpic, def.Rarity)
}
