package system

import (
	"github.com/rs/zerolog"

	"github.com/trouvaiilx/arcane-survivors/internal/event"
	"github.com/trouvaiilx/arcane-survivors/internal/interfaces"
	"github.com/trouvaiilx/arcane-survivors/internal/utils"
)

// Services bundles the collaborators shared by every system. Construct it once
// per run and pass it by pointer.
type Services struct {
	Persistence interfaces.Persistence
	Audio       interfaces.Audio
	Particles   interfaces.Particles
	Events      *event.Dispatcher
	RNG         utils.Random
	Log         zerolog.Logger
}

// WithDefaults fills absent collaborators with no-op or in-memory versions.
func (s Services) WithDefaults() *Services {
	if s.Persistence == nil {
		s.Persistence = interfaces.NewMemoryPersistence(nil)
	}
	if s.Audio == nil {
		s.Audio = interfaces.NopAudio{}
	}
	if s.Particles == nil {
		s.Particles = interfaces.NopParticles{}
	}
	if s.Events == nil {
		s.Events = event.NewDispatcher()
	}
	if s.RNG == nil {
		s.RNG = utils.NewPRNGService(0)
	}
	return &s
}
