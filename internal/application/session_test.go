package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/pyme-segmenter/internal/domain"
)

func TestToggleSelectionKeepsBufferUniqueAndOrdered(t *testing.T) {
	t.Parallel()

	a := domain.Resource{ID: "a"}
	b := domain.Resource{ID: "b"}

	state := NewSessionState().
		ToggleSelection(domain.PoolResidential, a, true).
		ToggleSelection(domain.PoolResidential, b, true).
		ToggleSelection(domain.PoolResidential, a, true)

	assert.Equal(t, []domain.ResourceID{"a", "b"}, resourceIDs(state.SelectedResidential))
	assert.Empty(t, state.SelectedPyme)

	state = state.ToggleSelection(domain.PoolResidential, a, false)
	assert.Equal(t, []domain.ResourceID{"b"}, resourceIDs(state.SelectedResidential))

	state = state.ToggleSelection(domain.PoolResidential, a, false)
	assert.Equal(t, []domain.ResourceID{"b"}, resourceIDs(state.SelectedResidential))
}

func TestToggleSelectionDoesNotAliasPreviousState(t *testing.T) {
	t.Parallel()

	before := NewSessionState().ToggleSelection(domain.PoolPyme, domain.Resource{ID: "a"}, true)
	after := before.ToggleSelection(domain.PoolPyme, domain.Resource{ID: "b"}, true)
	_ = after.ToggleSelection(domain.PoolPyme, domain.Resource{ID: "a"}, false)

	assert.Equal(t, []domain.ResourceID{"a"}, resourceIDs(before.SelectedPyme))
	assert.Equal(t, []domain.ResourceID{"a", "b"}, resourceIDs(after.SelectedPyme))
}

func TestClearedResetsBuffersAndRange(t *testing.T) {
	t.Parallel()

	state := NewSessionState().
		WithRange(domain.DateRange{From: "2024-06-10", To: "2024-06-11", Valid: true}).
		ToggleSelection(domain.PoolPyme, domain.Resource{ID: "a"}, true).
		ToggleSelection(domain.PoolResidential, domain.Resource{ID: "b"}, true).
		WithTargetSkill(domain.SkillPymeHospitality).
		Cleared()

	assert.Empty(t, state.SelectedPyme)
	assert.Empty(t, state.SelectedResidential)
	assert.False(t, state.Range.Valid)
	assert.Equal(t, domain.SkillPymeHospitality, state.TargetSkill)
}

func TestMessagesAreCountAware(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "¿Seguro que deseas mover 1 recurso a PYME?", ConfirmMessage(domain.DirectionToPyme, 1))
	assert.Equal(t, "¿Seguro que deseas mover 2 recursos a Residencial?", ConfirmMessage(domain.DirectionToResidential, 2))
	assert.Equal(t, "Recursos movidos exitosamente a PYME : 3", SuccessMessage(domain.DirectionToPyme, 3))
}

func TestViewModelDoesNotShareSkillsWithState(t *testing.T) {
	t.Parallel()

	skills := func() []domain.SkillAssignment {
		return []domain.SkillAssignment{{Skill: "INSTALL", Ratio: 100}}
	}
	pyme := []domain.Resource{{ID: "p1", Skills: []domain.SkillAssignment{{Skill: "PYME", Ratio: 100}}}}
	residential := []domain.Resource{{ID: "root", Skills: skills()}, {ID: "a", ParentID: "root", Skills: skills()}}
	active := append(append([]domain.Resource{}, pyme...), residential...)
	state := NewSessionState().WithLoaded(active, pyme, residential, domain.BuildTree(residential))

	vm := projectViewModel(state, "2024-06-05")
	vm.Pyme[0].Skills[0].Skill = "MUTATED"
	vm.Active[0].Skills[0].Skill = "MUTATED"
	vm.ResidentialTree.Children[0].Skills[0].Skill = "MUTATED"

	assert.Equal(t, "PYME", state.Pyme[0].Skills[0].Skill)
	assert.Equal(t, "PYME", state.Active[0].Skills[0].Skill)
	assert.Equal(t, "INSTALL", state.ResidentialTree.Children[0].Skills[0].Skill)
}
