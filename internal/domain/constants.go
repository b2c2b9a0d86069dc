package domain

// Entity type constants - stable identifiers matching the host's registry keys
const (
	EntityTypePlayer      EntityType = "player"
	EntityTypeZombie      EntityType = "zombie"
	EntityTypeSkeleton    EntityType = "skeleton"
	EntityTypeCreeper     EntityType = "creeper"
	EntityTypeArmorStand  EntityType = "armor_stand"
	EntityTypeVillager    EntityType = "villager"
	EntityTypeIronGolem   EntityType = "iron_golem"
	EntityTypeEnderDragon EntityType = "ender_dragon"
)

// Game timing constants
const (
	// TicksPerSecond is the fixed game tick rate
	TicksPerSecond = 20

	// DefaultAttackSpeed is the bare-hand attack speed (swings per second)
	DefaultAttackSpeed = 4.0
)
