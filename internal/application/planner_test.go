package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pyme-segmenter/internal/domain"
)

func TestToPymeDeltaContinuesSkillsAfterRange(t *testing.T) {
	t.Parallel()

	resource := domain.Resource{ID: "r1", Skills: []domain.SkillAssignment{
		{Skill: "INSTALL", Ratio: 80, StartDate: "2024-01-01"},
	}}
	rng := domain.DateRange{From: "2024-06-10", To: "2024-06-20", Valid: true}

	delta := ToPymeDelta(resource, rng, "pyme", "2024-06-01")

	assert.Equal(t, SkillDelta{ResourceID: "r1", Skills: []domain.SkillAssignment{
		{Skill: "INSTALL", Ratio: 80, StartDate: "2024-06-21"},
		{Skill: "PYME", Ratio: 100, StartDate: "2024-06-10", EndDate: "2024-06-20"},
	}}, delta)
}

func TestToPymeDeltaSkipsClosedPoolAndDuplicateSkills(t *testing.T) {
	t.Parallel()

	resource := domain.Resource{ID: "r1", Skills: []domain.SkillAssignment{
		{Skill: "INSTALL", Ratio: 50, StartDate: "2024-01-01"},
		{Skill: "REPAIR", Ratio: 30, StartDate: "2023-01-01", EndDate: "2024-02-01"},
		{Skill: "PYME_HOSP", Ratio: 100, StartDate: "2024-01-01"},
		{Skill: "INSTALL", Ratio: 70, StartDate: "2024-03-01"},
	}}
	rng := domain.DateRange{From: "2024-06-10", To: "2024-06-12", Valid: true}

	delta := ToPymeDelta(resource, rng, domain.SkillPymeHospitality, "2024-06-01")

	require.Len(t, delta.Skills, 2)
	assert.Equal(t, domain.SkillAssignment{Skill: "INSTALL", Ratio: 70, StartDate: "2024-06-13"}, delta.Skills[0])
	assert.Equal(t, "PYME_HOSP", delta.Skills[1].Skill)
}

func TestToPymeDeltaKeepsEndDateOfBoundedSkills(t *testing.T) {
	t.Parallel()

	resource := domain.Resource{ID: "r1", Skills: []domain.SkillAssignment{
		{Skill: "INSTALL", Ratio: 80, StartDate: "2024-01-01"},
		{Skill: "TRAINING", Ratio: 50, StartDate: "2024-05-01", EndDate: "2024-06-15"},
		{Skill: "REPAIR", Ratio: 40, StartDate: "2024-05-01", EndDate: "2024-06-20"},
		{Skill: "AUDIT", Ratio: 20, StartDate: "2024-05-01", EndDate: "2024-07-31"},
	}}
	rng := domain.DateRange{From: "2024-06-10", To: "2024-06-20", Valid: true}

	delta := ToPymeDelta(resource, rng, domain.SkillPyme, "2024-06-05")

	assert.Equal(t, []domain.SkillAssignment{
		{Skill: "INSTALL", Ratio: 80, StartDate: "2024-06-21"},
		{Skill: "AUDIT", Ratio: 20, StartDate: "2024-06-21", EndDate: "2024-07-31"},
		{Skill: "PYME", Ratio: 100, StartDate: "2024-06-10", EndDate: "2024-06-20"},
	}, delta.Skills)
}

func TestPlanToPymeDropsResourcesWithoutHistory(t *testing.T) {
	t.Parallel()

	rng := domain.DateRange{From: "2024-06-10", To: "2024-06-20", Valid: true}
	deltas := PlanToPyme([]domain.Resource{
		{ID: "empty"},
		{ID: "r2", Skills: []domain.SkillAssignment{{Skill: "INSTALL", Ratio: 100}}},
	}, rng, domain.SkillPyme, "2024-06-01")

	require.Len(t, deltas, 1)
	assert.Equal(t, domain.ResourceID("r2"), deltas[0].ResourceID)
}

func TestToResidentialDeltaRestartsNonPoolSkillsToday(t *testing.T) {
	t.Parallel()

	resource := domain.Resource{ID: "r1", Skills: []domain.SkillAssignment{
		{Skill: "INSTALL", Ratio: 60, StartDate: "2024-06-21"},
		{Skill: "PYME", Ratio: 100, StartDate: "2024-06-10", EndDate: "2024-06-20"},
	}}

	delta := ToResidentialDelta(resource, "2024-06-12")

	assert.Equal(t, []domain.SkillAssignment{
		{Skill: "INSTALL", Ratio: 60, StartDate: "2024-06-12"},
	}, delta.Skills)
}

func TestPlanToResidentialFlagsResourceWithOnlyPoolSkills(t *testing.T) {
	t.Parallel()

	resources := []domain.Resource{
		{ID: "ok", Skills: []domain.SkillAssignment{{Skill: "INSTALL", Ratio: 100}}},
		{ID: "pool-only", Skills: []domain.SkillAssignment{{Skill: "PYME", Ratio: 100}}},
	}

	deltas, err := PlanToResidential(resources, "2024-06-12")

	require.Error(t, err)
	assert.Nil(t, deltas)
	assert.True(t, errors.Is(err, domain.ErrNoRestorableSkills))

	var planErr *NoRestorableSkillsError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, domain.ResourceID("pool-only"), planErr.ResourceID)
}

func TestToResidentialDeltaKeepsEndDateOfBoundedSkills(t *testing.T) {
	t.Parallel()

	resource := domain.Resource{ID: "r1", Skills: []domain.SkillAssignment{
		{Skill: "TRAINING", Ratio: 50, StartDate: "2024-05-01", EndDate: "2024-06-30"},
		{Skill: "PYME", Ratio: 100, StartDate: "2024-06-10"},
	}}

	delta := ToResidentialDelta(resource, "2024-06-12")

	assert.Equal(t, []domain.SkillAssignment{
		{Skill: "TRAINING", Ratio: 50, StartDate: "2024-06-12", EndDate: "2024-06-30"},
	}, delta.Skills)
}
