// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/defs"
	"github.com/trouvaiilx/arcane-survivors/internal/entity"
	"github.com/trouvaiilx/arcane-survivors/internal/event"
	"github.com/trouvaiilx/arcane-survivors/internal/interfaces"
	"github.com/trouvaiilx/arcane-survivors/internal/spatial"
	"github.com/trouvaiilx/arcane-survivors/internal/system"
	"github.com/trouvaiilx/arcane-survivors/internal/types"
	"github.com/trouvaiilx/arcane-survivors/internal/utils"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

var (
	ErrUnknownCharacter = errors.New("unknown character")
	ErrCharacterLocked  = errors.New("character locked")
)

// State is the run outcome as seen by the caller.
type State int

const (
	StatePlaying State = iota
	StateDefeat
	StateVictory
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateDefeat:
		return "defeat"
	case StateVictory:
		return "victory"
	}
	return "unknown"
}

// Options configures a run. Zero fields fall back to the embedded catalog,
// the default tuning and the default entity limits.
type Options struct {
	Catalog   *defs.Catalog
	Config    *config.SimConfig
	Services  system.Services
	Limits    entity.Limits
	Seed      int64
	Character string
}

// Game is one run of the simulation. It is driven from a single goroutine.
type Game struct {
	RunID   string
	Catalog *defs.Catalog
	Config  config.SimConfig
	ECS     *entity.ECS
	Grid    *spatial.Grid[*component.Enemy]
	Clock   *Clock

	Scheduler          *system.Scheduler
	EnemySystem        *system.EnemySystem
	PlayerSystem       *system.PlayerSystem
	WeaponSystem       *system.WeaponSystem
	UpgradeSystem      *system.UpgradeSystem
	PickupSystem       *system.PickupSystem
	ProjectileSystem   *system.ProjectileSystem
	StatusEffectSystem *system.StatusEffectSystem
	WaveSystem         *system.WaveSystem
	CollisionSystem    *system.CollisionSystem
	Effects            *system.EffectRunner

	svc         *system.Services
	accumulator *Accumulator
	character   string
	tick        uint64
	state       State
	outcome     State // set by events during a tick, applied after it
	stats       interfaces.RunStats
}

// NewGame builds a run with the player standing at the world center holding
// the character's starting weapon.
func NewGame(opts Options) (*Game, error) {
	catalog := opts.Catalog
	if catalog == nil {
		var err error
		if catalog, err = defs.DefaultCatalog(); err != nil {
			return nil, fmt.Errorf("failed to load default catalog: %w", err)
		}
	}
	cfg := config.DefaultSimConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	limits := opts.Limits
	if limits == (entity.Limits{}) {
		limits = entity.DefaultLimits()
	}
	if opts.Services.RNG == nil {
		opts.Services.RNG = utils.NewPRNGService(opts.Seed)
	}
	svc := opts.Services.WithDefaults()

	charID := opts.Character
	if charID == "" {
		charID = cfg.Character
	}
	character, ok := catalog.Character(charID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCharacter, charID)
	}
	if !CharacterAvailable(catalog, svc.Persistence, charID) {
		return nil, fmt.Errorf("%w: %s", ErrCharacterLocked, charID)
	}

	ecs := entity.NewECS(limits, svc.Log)
	g := &Game{
		RunID:       uuid.NewString(),
		Catalog:     catalog,
		Config:      cfg,
		ECS:         ecs,
		Grid:        spatial.NewGrid[*component.Enemy](config.SpatialCellSize),
		Clock:       NewClock(cfg.DifficultyPerMinute),
		svc:         svc,
		accumulator: NewAccumulator(config.FixedStep, config.MaxFrameDelta),
		character:   charID,
	}
	g.svc.Log = g.svc.Log.With().Str("run", g.RunID).Logger()

	g.Scheduler = system.NewScheduler(g.weaponActive)
	g.EnemySystem = system.NewEnemySystem(ecs, svc, catalog, cfg, g.Clock)
	g.Effects = system.NewEffectRunner(ecs, svc, g.Grid, g.EnemySystem)
	g.PlayerSystem = system.NewPlayerSystem(ecs, svc, catalog, cfg)
	g.WeaponSystem = system.NewWeaponSystem(ecs, svc, catalog, g.Grid, g.Scheduler, g.EnemySystem, g.Effects)
	g.UpgradeSystem = system.NewUpgradeSystem(ecs, svc, catalog, cfg, g.PlayerSystem, g.WeaponSystem)
	g.PickupSystem = system.NewPickupSystem(ecs, svc, cfg, g.PlayerSystem, g.UpgradeSystem)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, svc, g.Effects)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs)
	g.WaveSystem = system.NewWaveSystem(ecs, svc, catalog, cfg, g.EnemySystem, g.Clock)
	g.CollisionSystem = system.NewCollisionSystem(ecs, g.Grid, g.EnemySystem, g.PlayerSystem, g.PickupSystem, g.Effects)

	listener := &GameEventListener{game: g}
	svc.Events.Subscribe(event.PlayerDied, listener)
	svc.Events.Subscribe(event.Victory, listener)

	g.PlayerSystem.NewPlayer(character, svc.Persistence.PowerupBonuses())
	weapon := character.StartingWeapon
	if weapon == "" {
		weapon = cfg.StartingWeapon
	}
	if weapon != "" {
		if _, err := g.WeaponSystem.Equip(weapon); err != nil {
			return nil, fmt.Errorf("failed to equip starting weapon: %w", err)
		}
	}
	g.svc.Log.Info().Str("character", charID).Str("weapon", weapon).Msg("run started")
	return g, nil
}

// weaponActive decides whether a deferred weapon action may still run.
func (g *Game) weaponActive(id types.EntityID) bool {
	if !g.ECS.PlayerAlive() {
		return false
	}
	_, ok := g.ECS.Weapon(id)
	return ok
}

// GameEventListener turns terminal events into a pending outcome.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDied:
		l.game.outcome = StateDefeat
	case event.Victory:
		if l.game.outcome == StatePlaying {
			l.game.outcome = StateVictory
		}
	}
}

// Update consumes a frame of wall time as whole fixed steps.
func (g *Game) Update(frame time.Duration) int {
	n := g.accumulator.Add(frame)
	for i := 0; i < n && g.state == StatePlaying; i++ {
		g.Advance(g.accumulator.Step())
	}
	return n
}

// Advance runs exactly one simulation tick. It does nothing once the run
// has ended.
func (g *Game) Advance(step time.Duration) {
	if g.state != StatePlaying {
		return
	}
	dt := step.Seconds()
	g.tick++

	g.ECS.GameTime = g.Clock.Advance(dt)
	if _, abandoned := g.Scheduler.RunDue(g.ECS.GameTime); abandoned > 0 {
		g.svc.Log.Debug().Int("abandoned", abandoned).Msg("deferred weapon actions dropped")
	}

	g.WaveSystem.Update(dt)
	g.rebuildGrid()

	g.PlayerSystem.Update(dt)
	g.WeaponSystem.Update(dt)

	g.StatusEffectSystem.Update(dt)
	g.EnemySystem.Update(dt)
	g.rebuildGrid()

	g.ProjectileSystem.Update(dt)
	g.PickupSystem.Update(dt)
	g.CollisionSystem.Update(dt)

	g.ECS.Prune()

	if g.outcome != StatePlaying {
		g.finish(g.outcome)
	}
}

func (g *Game) rebuildGrid() {
	g.Grid.Rebuild(g.ECS.Enemies.All())
}

// finish records the run with the persistence collaborator.
func (g *Game) finish(outcome State) {
	g.state = outcome
	g.Scheduler.Clear()
	pl := g.ECS.Player
	g.stats = interfaces.RunStats{
		RunID:        g.RunID,
		Character:    g.character,
		Kills:        g.EnemySystem.Kills,
		BossKills:    g.EnemySystem.BossKills,
		DamageDealt:  g.EnemySystem.DamageDealt,
		DamageTaken:  g.PlayerSystem.DamageTaken,
		TimeSurvived: g.Clock.Elapsed(),
		Level:        pl.Level,
		Coins:        pl.Coins,
		Victory:      outcome == StateVictory,
	}
	if pl.Coins > 0 {
		g.svc.Persistence.AddCoins(pl.Coins)
	}
	g.svc.Persistence.UpdateStats(g.stats)
	g.svc.Log.Info().
		Str("outcome", outcome.String()).
		Int("kills", g.stats.Kills).
		Int("level", g.stats.Level).
		Float64("survived", g.stats.TimeSurvived).
		Msg("run finished")
}

// SetMoveIntent forwards the desired heading to the player.
func (g *Game) SetMoveIntent(v geom.Vec2) { g.PlayerSystem.SetMoveIntent(v) }

func (g *Game) State() State { return g.state }

func (g *Game) Player() *component.Player { return g.ECS.Player }

func (g *Game) Tick() uint64 { return g.tick }

// Stats returns the run summary. It is filled once the run ends.
func (g *Game) Stats() interfaces.RunStats { return g.stats }

// Services exposes the collaborators the run was built with.
func (g *Game) Services() *system.Services { return g.svc }

// PendingLevelUps reports how many upgrade choices are waiting.
func (g *Game) PendingLevelUps() int {
	if g.ECS.Player == nil {
		return 0
	}
	return g.ECS.Player.PendingLevelUps
}

// Elapsed is the simulated time in seconds.
func (g *Game) Elapsed() float64 { return g.Clock.Elapsed() }

func (g *Game) Tier() int { return g.Clock.Tier() }

func (g *Game) Kills() int { return g.EnemySystem.Kills }
