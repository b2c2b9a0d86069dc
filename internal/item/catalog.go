package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/osse101/PaperAPI_Go/internal/domain"
	"github.com/osse101/PaperAPI_Go/internal/logger"
	"github.com/osse101/PaperAPI_Go/internal/validation"
)

// Sentinel errors for the item catalog
var (
	ErrDuplicateMaterial = errors.New("duplicate material")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrUnknownItem       = errors.New(ErrMsgUnknownItem)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)
)

// Config represents the JSON item catalog
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`

	Items []Def `json:"items"`
}

// Def represents a single item definition in the JSON
type Def struct {
	Material    string            `json:"material"`
	DisplayName string            `json:"display_name,omitempty"`
	Rarity      domain.ItemRarity `json:"rarity"`
	MaxStack    int               `json:"max_stack,omitempty"`
	// AttackSpeed in swings per second; zero means the item does not change it
	AttackSpeed float64 `json:"attack_speed,omitempty"`
}

// Loader handles loading and validating the item catalog
type Loader interface {
	Load(path string) (*Config, error)
	Parse(data []byte, source string) (*Config, error)
	Validate(config *Config) error
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads, schema-checks and parses a catalog file
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}
	return l.Parse(data, path)
}

// Parse schema-checks and parses catalog JSON
func (l *catalogLoader) Parse(data []byte, source string) (*Config, error) {
	if err := l.schemaValidator.ValidateBytes(data, validation.SchemaItems); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, source, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	return &config, nil
}

// Validate checks rules the schema cannot express, like duplicate materials
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	seen := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		def := &config.Items[i]

		if def.Material == "" {
			return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, i)
		}
		if seen[def.Material] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateMaterial, def.Material)
		}
		seen[def.Material] = true

		if !def.Rarity.Valid() {
			return fmt.Errorf(ErrFmtItemInvalidRarity, ErrInvalidConfig, def.Material)
		}
		if def.MaxStack != 0 && (def.MaxStack < MinStack || def.MaxStack > MaxStackLimit) {
			return fmt.Errorf(ErrFmtItemBadMaxStack, ErrInvalidConfig, def.Material)
		}
		if def.AttackSpeed < 0 {
			return fmt.Errorf(ErrFmtItemBadAttackSpeed, ErrInvalidConfig, def.Material)
		}
	}
	return nil
}

// Catalog is a validated, read-only index of item definitions
type Catalog struct {
	defs map[string]Def
}

// NewCatalog validates config and indexes it by material
func NewCatalog(loader Loader, config *Config) (*Catalog, error) {
	if err := loader.Validate(config); err != nil {
		return nil, err
	}

	defs := make(map[string]Def, len(config.Items))
	for _, def := range config.Items {
		if def.MaxStack == 0 {
			def.MaxStack = DefaultMaxStack
		}
		defs[def.Material] = def
	}

	logger.Info(LogMsgCatalogLoaded, "items", len(defs), "version", config.Version)
	return &Catalog{defs: defs}, nil
}

// LoadCatalog loads, validates and indexes a catalog file
func LoadCatalog(path string) (*Catalog, error) {
	loader := NewLoader()
	config, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	return NewCatalog(loader, config)
}

// Lookup returns the definition for material
func (c *Catalog) Lookup(material string) (Def, bool) {
	def, ok := c.defs[material]
	return def, ok
}

// Materials returns every material, sorted
func (c *Catalog) Materials() []string {
	out := make([]string, 0, len(c.defs))
	for m := range c.defs {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// AttackSpeeds returns the attack speed of every weapon in the catalog,
// suitable for cooldown.Config.AttackSpeeds
func (c *Catalog) AttackSpeeds() map[string]float64 {
	out := make(map[string]float64)
	for m, def := range c.defs {
		if def.AttackSpeed > 0 {
			out[m] = def.AttackSpeed
		}
	}
	return out
}

// NewStack creates a stack of a catalogued item with its default rarity
func (c *Catalog) NewStack(material string, amount int) (Stack, error) {
	def, ok := c.defs[material]
	if !ok {
		return Stack{}, fmt.Errorf("%w: %q", ErrUnknownItem, material)
	}
	if amount < MinStack || amount > def.MaxStack {
		return Stack{}, fmt.Errorf("%w: %d (max %d)", ErrInvalidAmount, amount, def.MaxStack)
	}
	return Stack{
		Material:   def.Material,
		Amount:     amount,
		CustomName: def.DisplayName,
		Rarity:     def.Rarity,
	}, nil
}
