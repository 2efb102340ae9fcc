package component

// PickupKind identifies what a pickup grants on collection.
type PickupKind int

const (
	PickupXP PickupKind = iota
	PickupCoin
	PickupHeal
	PickupChest
	PickupMagnet
	PickupPortal
)

func (k PickupKind) String() string {
	switch k {
	case PickupXP:
		return "xp"
	case PickupCoin:
		return "coin"
	case PickupHeal:
		return "heal"
	case PickupChest:
		return "chest"
	case PickupMagnet:
		return "magnet"
	case PickupPortal:
		return "portal"
	}
	return "unknown"
}

// Pickup is a collectible dropped in the world.
type Pickup struct {
	Body
	Kind      PickupKind
	Value     float64
	Homing    bool
	Collected bool
}

func (p *Pickup) Alive() bool { return !p.Collected }
