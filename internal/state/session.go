package state

import (
	"github.com/rs/zerolog"

	"github.com/trouvaiilx/arcane-survivors/internal/app"
	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/defs"
	"github.com/trouvaiilx/arcane-survivors/internal/interfaces"
	"github.com/trouvaiilx/arcane-survivors/internal/system"
)

// Session carries what outlives a single run: static data, tuning and the
// persistence collaborator.
type Session struct {
	Catalog     *defs.Catalog
	Config      *config.SimConfig
	Persistence interfaces.Persistence
	Log         zerolog.Logger
	// Seed is reused for every run; 0 draws a fresh one each time.
	Seed int64
}

// NewRun starts a run with character.
func (s *Session) NewRun(character string) (*app.Game, error) {
	return app.NewGame(app.Options{
		Catalog:   s.Catalog,
		Config:    s.Config,
		Character: character,
		Seed:      s.Seed,
		Services: system.Services{
			Persistence: s.Persistence,
			Log:         s.Log,
		},
	})
}

// Available reports whether character can be played.
func (s *Session) Available(character string) bool {
	return app.CharacterAvailable(s.Catalog, s.Persistence, character)
}

// Unlock spends saved coins on a locked character.
func (s *Session) Unlock(character string) error {
	if err := app.UnlockCharacter(s.Catalog, s.Persistence, character); err != nil {
		return err
	}
	s.Log.Info().Str("character", character).Float64("coins_left", s.Persistence.Coins()).Msg("character unlocked")
	return nil
}
