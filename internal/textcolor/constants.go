package textcolor

// Nearest-colour cache defaults
const (
	// DefaultNearestCacheSize bounds the memoised Nearest lookups
	DefaultNearestCacheSize = 256
)

// Error message constants
const (
	ErrMsgInvalidHex = "invalid hex colour"
)
