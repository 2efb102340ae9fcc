// internal/state/game_state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/trouvaiilx/arcane-survivors/internal/app"
	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/ui"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
	"github.com/trouvaiilx/arcane-survivors/pkg/render"
)

// GameState plays a run. The simulation stops while a level-up choice is open.
type GameState struct {
	sm       *StateMachine
	session  *Session
	game     *app.Game
	renderer *render.WorldRenderer
	hud      *ui.HUD
	panel    *ui.UpgradePanel
	choosing bool
}

func NewGameState(sm *StateMachine, session *Session, game *app.Game) *GameState {
	return &GameState{
		sm:       sm,
		session:  session,
		game:     game,
		renderer: render.NewWorldRenderer(render.DefaultPalette(), config.ScreenWidth, config.ScreenHeight),
		hud:      ui.NewHUD(),
		panel:    ui.NewUpgradePanel(),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	if g.choosing {
		g.updateChoice()
		return
	}
	g.panel.Animate()
	if g.game.PendingLevelUps() > 0 {
		g.openChoice()
		return
	}

	g.game.SetMoveIntent(readMoveIntent())
	g.game.Update(time.Duration(deltaTime * float64(time.Second)))

	if g.game.State() != app.StatePlaying {
		g.sm.SetState(NewGameOverState(g.sm, g.session, g.game))
	}
}

func (g *GameState) openChoice() {
	opts := g.game.UpgradeSystem.Options(g.game.Config.UpgradeChoices)
	if len(opts) == 0 {
		g.game.UpgradeSystem.SkipLevelUp()
		return
	}
	g.panel.Show(opts)
	g.choosing = true
}

func (g *GameState) updateChoice() {
	i := g.panel.Update()
	opt, ok := g.panel.Option(i)
	if !ok {
		return
	}
	if err := g.game.UpgradeSystem.ChooseLevelUp(opt); err != nil {
		g.game.Services().Log.Warn().Err(err).Msg("upgrade choice rejected")
		g.game.UpgradeSystem.SkipLevelUp()
	}
	g.panel.Hide()
	g.choosing = false
}

// readMoveIntent maps WASD and the arrow keys to a heading.
func readMoveIntent() geom.Vec2 {
	var v geom.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.Y++
	}
	return v
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game)
	g.hud.Draw(screen, g.game)
	g.panel.Draw(screen)
}

func (g *GameState) Exit() {}
