// internal/state/menu_state.go
package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/ui"
)

// MenuState picks a character and starts a run.
type MenuState struct {
	sm       *StateMachine
	session  *Session
	selected int
	message  string
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	n := len(m.session.Catalog.Characters)
	if n == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		m.selected = (m.selected + 1) % n
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		m.selected = (m.selected + n - 1) % n
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		c := m.session.Catalog.Characters[m.selected]
		if !m.session.Available(c.ID) {
			// first press buys the character, the next one starts the run
			if err := m.session.Unlock(c.ID); err != nil {
				m.message = err.Error()
			} else {
				m.message = c.Name + " unlocked"
			}
			return
		}
		game, err := m.session.NewRun(c.ID)
		if err != nil {
			m.message = err.Error()
			return
		}
		m.sm.SetState(NewGameState(m.sm, m.session, game))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := config.ScreenWidth / 2
	ui.DrawCentered(screen, "ARCANE SURVIVORS", ui.Face, cx, 160, color.White)
	ui.DrawCentered(screen, fmt.Sprintf("coins: %.0f", m.session.Persistence.Coins()), ui.Face, cx, 186, config.PickupColors[1])
	for i, c := range m.session.Catalog.Characters {
		label := c.Name
		if !m.session.Available(c.ID) {
			label += fmt.Sprintf(" (locked, %.0f coins)", c.UnlockCost)
		}
		clr := color.Color(color.Gray{Y: 160})
		if i == m.selected {
			label = "> " + label + " <"
			clr = color.White
		}
		ui.DrawCentered(screen, label, ui.Face, cx, 240+i*22, clr)
	}
	if m.message != "" {
		ui.DrawCentered(screen, m.message, ui.Face, cx, config.ScreenHeight-80, config.HealthBarColor)
	}
	ui.DrawCentered(screen, "arrows to choose, space to unlock or start", ui.Face, cx, config.ScreenHeight-48, color.Gray{Y: 160})
}

func (m *MenuState) Exit() {}
