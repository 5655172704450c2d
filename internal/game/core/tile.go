package core

const (
	// DefaultSpeed is the movement speed granted by ordinary tiles
	DefaultSpeed uint32 = 1
	// DefaultBoostSpeed is the speed granted by boost tiles
	DefaultBoostSpeed uint32 = 3
)

// TileProperties describe how a cell affects an agent that lands on it.
// Damage is carried for track authors but has no effect during a race.
type TileProperties struct {
	SpeedModifier  uint32 `json:"speed_modifier" yaml:"speed_modifier"`
	BlocksMovement bool   `json:"blocks_movement" yaml:"blocks_movement"`
	SkipNextTurn   bool   `json:"skip_next_turn" yaml:"skip_next_turn"`
	Damage         int32  `json:"damage" yaml:"damage"`
	IsFinish       bool   `json:"is_finish" yaml:"is_finish"`
	IsStart        bool   `json:"is_start" yaml:"is_start"`
}

func NormalTile() TileProperties {
	return TileProperties{SpeedModifier: DefaultSpeed}
}

func WallTile() TileProperties {
	return TileProperties{SpeedModifier: DefaultSpeed, BlocksMovement: true}
}

func StickyTile() TileProperties {
	return TileProperties{SpeedModifier: DefaultSpeed, SkipNextTurn: true}
}

func BoostTile(speed uint32) TileProperties {
	return TileProperties{SpeedModifier: speed}
}

func FinishTile() TileProperties {
	return TileProperties{SpeedModifier: DefaultSpeed, IsFinish: true}
}

func StartTile() TileProperties {
	return TileProperties{SpeedModifier: DefaultSpeed, IsStart: true}
}

func DamageTile(damage int32) TileProperties {
	return TileProperties{SpeedModifier: DefaultSpeed, Damage: damage}
}

// HealingTile is a damage tile with negative damage
func HealingTile(amount int32) TileProperties {
	return TileProperties{SpeedModifier: DefaultSpeed, Damage: -amount}
}

// IsBoost reports whether landing on the tile raises speed above the default
func (p TileProperties) IsBoost() bool {
	return p.SpeedModifier > DefaultSpeed
}

// IsSlow reports whether landing on the tile drops speed below the default
func (p TileProperties) IsSlow() bool {
	return p.SpeedModifier < DefaultSpeed
}
