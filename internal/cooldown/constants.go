package cooldown

// =============================================================================
// Strength Constants
// =============================================================================

const (
	// AttackAdjustTicks is added to the ticker when sampling strength for an attack
	AttackAdjustTicks float32 = 0.5

	// FullStrength is the maximum attack strength scale
	FullStrength float32 = 1.0
)

// =============================================================================
// Weapon Material Keys
// =============================================================================

const (
	MaterialHand           = "hand"
	MaterialWoodenSword    = "wooden_sword"
	MaterialStoneSword     = "stone_sword"
	MaterialIronSword      = "iron_sword"
	MaterialDiamondSword   = "diamond_sword"
	MaterialNetheriteSword = "netherite_sword"
	MaterialWoodenAxe      = "wooden_axe"
	MaterialIronAxe        = "iron_axe"
	MaterialDiamondAxe     = "diamond_axe"
	MaterialTrident        = "trident"
)

// defaultAttackSpeeds are vanilla attack speeds in swings per second
var defaultAttackSpeeds = map[string]float64{
	MaterialHand:           4.0,
	MaterialWoodenSword:    1.6,
	MaterialStoneSword:     1.6,
	MaterialIronSword:      1.6,
	MaterialDiamondSword:   1.6,
	MaterialNetheriteSword: 1.6,
	MaterialWoodenAxe:      0.8,
	MaterialIronAxe:        0.9,
	MaterialDiamondAxe:     1.0,
	MaterialTrident:        1.1,
}

// =============================================================================
// Error & Log Message Constants
// =============================================================================

const (
	ErrMsgUnknownPlayer      = "player is not tracked"
	ErrMsgInvalidAttackSpeed = "attack speed must be finite and positive"

	LogMsgDispatchFailed  = "Attack cooldown reset handlers failed"
	LogMsgResetSuppressed = "Attack cooldown reset suppressed by listener"
	LogMsgPlayerTracked   = "Tracking attack cooldown"
	LogMsgPlayerForgotten = "Stopped tracking attack cooldown"
)
