package application

import (
	"github.com/bnema/pyme-segmenter/internal/domain"
)

// ViewModel is a read-only snapshot of the session for presentation. It
// shares no memory with the engine.
type ViewModel struct {
	Loading             bool
	Phase               Phase
	Today               domain.Date
	Range               domain.DateRange
	TargetSkill         string
	ResidentialTree     *domain.Resource
	Pyme                []domain.Resource
	Active              []domain.Resource
	SelectedResidential []domain.ResourceID
	SelectedPyme        []domain.ResourceID
}

func (v ViewModel) IsSelected(pool domain.Pool, id domain.ResourceID) bool {
	selection := v.SelectedResidential
	if pool == domain.PoolPyme {
		selection = v.SelectedPyme
	}
	for _, selected := range selection {
		if selected == id {
			return true
		}
	}
	return false
}

func projectViewModel(state SessionState, today domain.Date) ViewModel {
	return ViewModel{
		Loading:             state.Loading,
		Phase:               state.Phase,
		Today:               today,
		Range:               state.Range,
		TargetSkill:         state.TargetSkill,
		ResidentialTree:     domain.CloneTree(state.ResidentialTree),
		Pyme:                domain.CloneResources(state.Pyme),
		Active:              domain.CloneResources(state.Active),
		SelectedResidential: resourceIDs(state.SelectedResidential),
		SelectedPyme:        resourceIDs(state.SelectedPyme),
	}
}

func resourceIDs(resources []domain.Resource) []domain.ResourceID {
	ids := make([]domain.ResourceID, 0, len(resources))
	for _, resource := range resources {
		ids = append(ids, resource.ID)
	}
	return ids
}
