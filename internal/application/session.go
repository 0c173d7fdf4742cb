package application

import (
	"github.com/bnema/pyme-segmenter/internal/domain"
)

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseLoading    Phase = "loading"
	PhaseReady      Phase = "ready"
	PhaseConfirming Phase = "confirming"
	PhaseApplying   Phase = "applying"
	PhaseHalted     Phase = "halted"
)

// SessionState is the engine's whole mutable state. Reducers return a new
// value and never touch the receiver's slices.
type SessionState struct {
	Loading         bool
	Phase           Phase
	Range           domain.DateRange
	ResidentialTree *domain.Resource
	Residential     []domain.Resource
	Pyme            []domain.Resource

	// Active holds every segmentable resource from the last load.
	Active              []domain.Resource
	SelectedResidential []domain.Resource
	SelectedPyme        []domain.Resource
	TargetSkill         string
}

func NewSessionState() SessionState {
	return SessionState{Phase: PhaseIdle, TargetSkill: domain.SkillPyme}
}

func (s SessionState) WithLoading(loading bool) SessionState {
	s.Loading = loading
	return s
}

func (s SessionState) WithPhase(phase Phase) SessionState {
	s.Phase = phase
	return s
}

func (s SessionState) WithRange(rng domain.DateRange) SessionState {
	s.Range = rng
	return s
}

func (s SessionState) WithTargetSkill(skill string) SessionState {
	s.TargetSkill = skill
	return s
}

// WithLoaded replaces the derived views with a fresh classification.
func (s SessionState) WithLoaded(active, pyme, residential []domain.Resource, tree *domain.Resource) SessionState {
	s.Active = active
	s.Pyme = pyme
	s.Residential = residential
	s.ResidentialTree = tree
	return s
}

// ToggleSelection adds or removes resource from the pool's buffer. Adding a
// resource already present is a no-op; order of first selection is kept.
func (s SessionState) ToggleSelection(pool domain.Pool, resource domain.Resource, selected bool) SessionState {
	switch pool {
	case domain.PoolResidential:
		s.SelectedResidential = toggle(s.SelectedResidential, resource, selected)
	case domain.PoolPyme:
		s.SelectedPyme = toggle(s.SelectedPyme, resource, selected)
	}
	return s
}

func (s SessionState) Selection(pool domain.Pool) []domain.Resource {
	if pool == domain.PoolPyme {
		return s.SelectedPyme
	}
	return s.SelectedResidential
}

// Cleared empties both selection buffers and the active range.
func (s SessionState) Cleared() SessionState {
	s.SelectedResidential = nil
	s.SelectedPyme = nil
	s.Range = domain.DateRange{}
	return s
}

func toggle(buffer []domain.Resource, resource domain.Resource, selected bool) []domain.Resource {
	index := -1
	for i, existing := range buffer {
		if existing.ID == resource.ID {
			index = i
			break
		}
	}

	if selected {
		if index >= 0 {
			return buffer
		}
		next := make([]domain.Resource, 0, len(buffer)+1)
		next = append(next, buffer...)
		return append(next, resource)
	}

	if index < 0 {
		return buffer
	}
	next := make([]domain.Resource, 0, len(buffer)-1)
	next = append(next, buffer[:index]...)
	return append(next, buffer[index+1:]...)
}
