// cmd/game/main.go
package main

import (
	"flag"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/trouvaiilx/arcane-survivors/internal/app"
	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/interfaces"
	"github.com/trouvaiilx/arcane-survivors/internal/logging"
	"github.com/trouvaiilx/arcane-survivors/internal/state"
)

const maxDeltaTime = 0.1

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := min(now.Sub(a.lastUpdateTime).Seconds(), maxDeltaTime)
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	catalogPath := flag.String("catalog", "", "catalog file (.json or .yaml); empty uses the embedded catalog")
	configPath := flag.String("config", "", "sim tuning YAML; empty uses defaults")
	seed := flag.Int64("seed", 0, "random seed; 0 picks one per run")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	log := logging.Console("game", logging.ParseLevel(*level))

	catalog, cfg, err := app.LoadResources(*catalogPath, *configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load resources")
	}

	session := &state.Session{
		Catalog:     catalog,
		Config:      cfg,
		Persistence: interfaces.NewMemoryPersistence(nil),
		Log:         log,
		Seed:        *seed,
	}
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, session))

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Arcane Survivors")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
