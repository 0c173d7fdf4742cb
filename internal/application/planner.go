package application

import (
	"strings"

	"github.com/bnema/pyme-segmenter/internal/domain"
)

// SkillDelta is the full skill list to submit for one resource.
type SkillDelta struct {
	ResourceID domain.ResourceID
	Skills     []domain.SkillAssignment
}

func (d SkillDelta) Empty() bool {
	return len(d.Skills) == 0
}

// ToPymeDelta keeps every open non-pool skill alive after the range, up to
// its own end date, and grants targetSkill at full ratio for the range
// itself.
func ToPymeDelta(resource domain.Resource, rng domain.DateRange, targetSkill string, today domain.Date) SkillDelta {
	delta := SkillDelta{ResourceID: resource.ID, Skills: []domain.SkillAssignment{}}
	if len(resource.Skills) == 0 {
		return delta
	}

	continuationStart := rng.To.AddDays(1)
	for _, skill := range restorableSkills(resource, today) {
		// A bounded skill keeps its end date and is dropped when it ends
		// inside the range.
		if !skill.EndDate.IsZero() && skill.EndDate.Before(continuationStart) {
			continue
		}
		delta.Skills = append(delta.Skills, domain.SkillAssignment{
			Skill:     skill.Skill,
			Ratio:     skill.Ratio,
			StartDate: continuationStart,
			EndDate:   skill.EndDate,
		})
	}

	delta.Skills = append(delta.Skills, domain.SkillAssignment{
		Skill:     strings.ToUpper(strings.TrimSpace(targetSkill)),
		Ratio:     100,
		StartDate: rng.From,
		EndDate:   rng.To,
	})

	return delta
}

// ToResidentialDelta restarts every open non-pool skill from today. Pool
// markers are left out so they lapse. An empty delta cannot be applied.
func ToResidentialDelta(resource domain.Resource, today domain.Date) SkillDelta {
	delta := SkillDelta{ResourceID: resource.ID, Skills: []domain.SkillAssignment{}}
	for _, skill := range restorableSkills(resource, today) {
		delta.Skills = append(delta.Skills, domain.SkillAssignment{
			Skill:     skill.Skill,
			Ratio:     skill.Ratio,
			StartDate: today,
			EndDate:   skill.EndDate,
		})
	}
	return delta
}

// PlanToPyme builds one delta per resource and drops resources without any
// skill history.
func PlanToPyme(resources []domain.Resource, rng domain.DateRange, targetSkill string, today domain.Date) []SkillDelta {
	deltas := make([]SkillDelta, 0, len(resources))
	for _, resource := range resources {
		delta := ToPymeDelta(resource, rng, targetSkill, today)
		if delta.Empty() {
			continue
		}
		deltas = append(deltas, delta)
	}
	return deltas
}

// PlanToResidential returns one delta per resource, in order. The error
// wraps domain.ErrNoRestorableSkills and names the first resource that
// has nothing to restore.
func PlanToResidential(resources []domain.Resource, today domain.Date) ([]SkillDelta, error) {
	deltas := make([]SkillDelta, 0, len(resources))
	for _, resource := range resources {
		delta := ToResidentialDelta(resource, today)
		if delta.Empty() {
			return nil, &NoRestorableSkillsError{ResourceID: resource.ID}
		}
		deltas = append(deltas, delta)
	}
	return deltas, nil
}

type NoRestorableSkillsError struct {
	ResourceID domain.ResourceID
}

func (e *NoRestorableSkillsError) Error() string {
	return "resource " + string(e.ResourceID) + ": " + domain.ErrNoRestorableSkills.Error()
}

func (e *NoRestorableSkillsError) Unwrap() error {
	return domain.ErrNoRestorableSkills
}

// restorableSkills returns the open non-pool skills, one per skill code.
// A later row for the same code replaces the earlier one in place.
func restorableSkills(resource domain.Resource, today domain.Date) []domain.SkillAssignment {
	index := map[string]int{}
	kept := make([]domain.SkillAssignment, 0, len(resource.Skills))
	for _, skill := range resource.OpenSkills(today) {
		if domain.IsPoolMarker(skill.Skill) {
			continue
		}
		if i, ok := index[skill.Skill]; ok {
			kept[i] = skill
			continue
		}
		index[skill.Skill] = len(kept)
		kept = append(kept, skill)
	}
	return kept
}
