package engine_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theo/arena-forge/internal/domain"
	"github.com/theo/arena-forge/internal/engine"
)

func TestRoundChoices_Shape(t *testing.T) {
	choices := engine.RoundChoices("seed-a", 1)
	require.Len(t, choices, 3)

	assert.Equal(t, domain.ChoiceTypeTrait, choices[0].Type)
	assert.Equal(t, domain.ChoiceTypeUnit, choices[1].Type)
	assert.Equal(t, domain.ChoiceTypeModifier, choices[2].Type)

	for _, c := range choices {
		assert.NotEmpty(t, c.Item.ID)
		assert.NotEmpty(t, c.Item.Label)
		assert.Equal(t, fmt.Sprintf("%s:%s", c.Type, c.Item.ID), c.ChoiceID)
	}
}

func TestRoundChoices_Deterministic(t *testing.T) {
	for round := 1; round <= 10; round++ {
		a := engine.RoundChoices("stable-seed", round)
		b := engine.RoundChoices("stable-seed", round)
		assert.Equal(t, a, b, "round %d should draft identically for the same seed", round)
	}
}

func TestRoundChoices_SeedChangesDraw(t *testing.T) {
	// Across enough rounds two different seeds must diverge somewhere;
	// identical drafts for all ten rounds would mean the seed is ignored.
	same := true
	for round := 1; round <= 10; round++ {
		a := engine.RoundChoices("seed-one", round)
		b := engine.RoundChoices("seed-two", round)
		if !assert.ObjectsAreEqual(a, b) {
			same = false
		}
	}
	assert.False(t, same)
}
