package app

import (
	"errors"
	"fmt"

	"github.com/trouvaiilx/arcane-survivors/internal/defs"
	"github.com/trouvaiilx/arcane-survivors/internal/interfaces"
)

var ErrNotEnoughCoins = errors.New("not enough coins")

// CharacterAvailable reports whether id may start a run.
func CharacterAvailable(catalog *defs.Catalog, store interfaces.Persistence, id string) bool {
	ch, ok := catalog.Character(id)
	return ok && (ch.Unlocked || store.IsCharacterUnlocked(id))
}

// UnlockCharacter buys a locked character with saved coins. It does nothing
// for a character that is already available.
func UnlockCharacter(catalog *defs.Catalog, store interfaces.Persistence, id string) error {
	ch, ok := catalog.Character(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCharacter, id)
	}
	if ch.Unlocked || store.IsCharacterUnlocked(id) {
		return nil
	}
	if !store.SpendCoins(ch.UnlockCost) {
		return fmt.Errorf("%w: %s costs %.0f", ErrNotEnoughCoins, ch.Name, ch.UnlockCost)
	}
	store.UnlockCharacter(id)
	return nil
}
