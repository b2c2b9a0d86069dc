package item

// ==================== Configuration File Names ====================

const (
	// ConfigPathCatalog is the default item catalog location
	ConfigPathCatalog = "configs/items.json"
)

// ==================== Stack Limits ====================

const (
	DefaultMaxStack = 64
	MinStack        = 1
	MaxStackLimit   = 99
)

// ==================== Error Messages ====================

const (
	ErrMsgReadConfigFileFailed = "failed to read item catalog file: %w"
	ErrMsgParseConfigFailed    = "failed to parse item catalog: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"

	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
	ErrMsgUnknownItem    = "unknown item material"
	ErrMsgInvalidAmount  = "invalid stack amount"
)

// These format strings are used with fmt.Errorf for detailed error messages
const (
	ErrFmtItemAtIndexEmpty   = "%w: item at index %d has empty material"
	ErrFmtItemInvalidRarity  = "%w: item '%s' has invalid rarity"
	ErrFmtItemBadMaxStack    = "%w: item '%s' has max_stack outside 1..99"
	ErrFmtItemBadAttackSpeed = "%w: item '%s' has negative attack_speed"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded = "Item catalog loaded"
)

// ==================== Tooltip Layout ====================

const (
	// TooltipPadding is the number of blank cells around tooltip text
	TooltipPadding = 1
)
