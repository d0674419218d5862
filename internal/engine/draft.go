package engine

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/theo/arena-forge/internal/domain"
)

// draftSlots is the type of each of the three cards offered per round.
var draftSlots = []domain.ChoiceType{
	domain.ChoiceTypeTrait,
	domain.ChoiceTypeUnit,
	domain.ChoiceTypeModifier,
}

// hashUint32 reduces a salted string to a stable small integer. The digest
// is sha256 with the first four bytes read little-endian; the client replays
// drafts with the same construction, so both sides must stay bit-identical.
func hashUint32(input string) uint32 {
	sum := sha256.Sum256([]byte(input))
	return binary.LittleEndian.Uint32(sum[:4])
}

func seededRange(seed, salt string, max int) int {
	return int(hashUint32(seed+":"+salt) % uint32(max))
}

// RoundChoices returns the three cards offered for a round: one trait, one
// unit, one modifier. Identical (seed, round) always yields identical draws.
func RoundChoices(seed string, round int) []domain.Choice {
	choices := make([]domain.Choice, len(draftSlots))
	for i, t := range draftSlots {
		pool := catalogFor(t)
		idx := seededRange(seed, fmt.Sprintf("round:%d:choice:%d", round, i), len(pool))
		item := pool[idx]
		choices[i] = domain.Choice{
			ChoiceID: fmt.Sprintf("%s:%s", t, item.ID),
			Type:     t,
			Item:     item,
		}
	}
	return choices
}
