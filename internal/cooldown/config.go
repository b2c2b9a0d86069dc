package cooldown

import (
	"math"
	"strings"

	"github.com/osse101/PaperAPI_Go/internal/domain"
)

// Config holds attack cooldown configuration
type Config struct {
	// DevMode keeps every player at full attack strength when true
	DevMode bool

	// DefaultAttackSpeed is used for unknown weapons; zero means the bare-hand speed
	DefaultAttackSpeed float64

	// AttackSpeeds maps weapon materials to swings per second.
	// If not specified, vanilla defaults are used
	AttackSpeeds map[string]float64
}

// AttackSpeedFor returns the attack speed for a held weapon material
func (c *Config) AttackSpeedFor(material string) float64 {
	material = strings.ToLower(material)

	// Check custom overrides first
	if c.AttackSpeeds != nil {
		if speed, ok := c.AttackSpeeds[material]; ok && ValidAttackSpeed(speed) {
			return speed
		}
	}

	if speed, ok := defaultAttackSpeeds[material]; ok {
		return speed
	}

	if ValidAttackSpeed(c.DefaultAttackSpeed) {
		return c.DefaultAttackSpeed
	}
	return domain.DefaultAttackSpeed
}

// ValidAttackSpeed reports whether speed is a finite, positive number of swings per second
func ValidAttackSpeed(speed float64) bool {
	return speed > 0 && !math.IsInf(speed, 0) && !math.IsNaN(speed)
}
