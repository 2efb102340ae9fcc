package app

import "github.com/trouvaiilx/arcane-survivors/internal/component"

// EntityView is the read-only picture of one entity in a snapshot.
type EntityView struct {
	ID   int64   `msgpack:"id" json:"id"`
	Kind string  `msgpack:"kind" json:"kind"`
	X    float64 `msgpack:"x" json:"x"`
	Y    float64 `msgpack:"y" json:"y"`
	R    float64 `msgpack:"r" json:"r"`
	HP   float64 `msgpack:"hp,omitempty" json:"hp,omitempty"`
}

type PlayerView struct {
	X        float64  `msgpack:"x" json:"x"`
	Y        float64  `msgpack:"y" json:"y"`
	HP       float64  `msgpack:"hp" json:"hp"`
	MaxHP    float64  `msgpack:"max_hp" json:"max_hp"`
	Level    int      `msgpack:"level" json:"level"`
	XP       float64  `msgpack:"xp" json:"xp"`
	XPToNext float64  `msgpack:"xp_to_next" json:"xp_to_next"`
	Coins    float64  `msgpack:"coins" json:"coins"`
	Weapons  []string `msgpack:"weapons" json:"weapons"`
}

// Snapshot is a deep copy of the world after a tick. It shares nothing with
// the live simulation and may be handed to other goroutines.
type Snapshot struct {
	RunID       string       `msgpack:"run_id" json:"run_id"`
	Tick        uint64       `msgpack:"tick" json:"tick"`
	Elapsed     float64      `msgpack:"elapsed" json:"elapsed"`
	State       string       `msgpack:"state" json:"state"`
	Tier        int          `msgpack:"tier" json:"tier"`
	Kills       int          `msgpack:"kills" json:"kills"`
	Player      PlayerView   `msgpack:"player" json:"player"`
	Enemies     []EntityView `msgpack:"enemies" json:"enemies"`
	Projectiles []EntityView `msgpack:"projectiles" json:"projectiles"`
	Pickups     []EntityView `msgpack:"pickups" json:"pickups"`
}

// Snapshot copies the live entities of the world.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		RunID:   g.RunID,
		Tick:    g.tick,
		Elapsed: g.Clock.Elapsed(),
		State:   g.state.String(),
		Tier:    g.Clock.Tier(),
		Kills:   g.EnemySystem.Kills,
	}
	if pl := g.ECS.Player; pl != nil {
		s.Player = PlayerView{
			X: pl.Pos.X, Y: pl.Pos.Y,
			HP: pl.HP, MaxHP: pl.MaxHP,
			Level: pl.Level, XP: pl.XP, XPToNext: pl.XPToNext,
			Coins: pl.Coins,
		}
		for _, w := range g.ECS.Weapons {
			s.Player.Weapons = append(s.Player.Weapons, w.Def.ID)
		}
	}
	s.Enemies = make([]EntityView, 0, g.ECS.Enemies.Len())
	for _, e := range g.ECS.Enemies.All() {
		if e.Dead {
			continue
		}
		s.Enemies = append(s.Enemies, EntityView{ID: int64(e.ID), Kind: e.DefID, X: e.Pos.X, Y: e.Pos.Y, R: e.Radius, HP: e.HP})
	}
	s.Projectiles = make([]EntityView, 0, g.ECS.Projectiles.Len())
	for _, p := range g.ECS.Projectiles.All() {
		if p.Expired || p.Invisible {
			continue
		}
		s.Projectiles = append(s.Projectiles, EntityView{ID: int64(p.ID), Kind: p.Pattern.String(), X: p.Pos.X, Y: p.Pos.Y, R: p.Radius})
	}
	s.Pickups = make([]EntityView, 0, g.ECS.Pickups.Len())
	for _, p := range g.ECS.Pickups.All() {
		if p.Collected {
			continue
		}
		s.Pickups = append(s.Pickups, EntityView{ID: int64(p.ID), Kind: p.Kind.String(), X: p.Pos.X, Y: p.Pos.Y, R: p.Radius})
	}
	return s
}

func hasKind(views []EntityView, kind string) bool {
	for _, v := range views {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

// HasPortal reports whether the snapshot shows an open portal.
func (s Snapshot) HasPortal() bool {
	return hasKind(s.Pickups, component.PickupPortal.String())
}
