package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/trouvaiilx/arcane-survivors/internal/app"
	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/ui"
)

// GameOverState shows the run summary over the final frame.
type GameOverState struct {
	sm      *StateMachine
	session *Session
	game    *app.Game
	final   *GameState
}

func NewGameOverState(sm *StateMachine, session *Session, game *app.Game) *GameOverState {
	return &GameOverState{sm: sm, session: session, game: game, final: NewGameState(sm, session, game)}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.sm.SetState(NewMenuState(s.sm, s.session))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.final.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 160}, false)

	stats := s.game.Stats()
	title, clr := "DEFEAT", color.Color(config.HealthBarColor)
	if stats.Victory {
		title, clr = "VICTORY", color.Color(config.PickupColors[5])
	}
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	ui.DrawCentered(screen, title, ui.Face, cx, cy-60, clr)
	lines := []string{
		"survived " + ui.FormatClock(stats.TimeSurvived),
		fmt.Sprintf("level %d  kills %d  bosses %d", stats.Level, stats.Kills, stats.BossKills),
		fmt.Sprintf("coins %.0f", stats.Coins),
		"space to continue",
	}
	for i, l := range lines {
		ui.DrawCentered(screen, l, ui.Face, cx, cy-20+i*20, color.White)
	}
}

func (s *GameOverState) Exit() {}
