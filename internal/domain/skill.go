package domain

import "strings"

const (
	SkillPyme            = "PYME"
	SkillPymeHospitality = "PYME_HOSP"
)

// SkillAssignment is one row of a resource's skill history. A zero EndDate
// means the assignment is open-ended.
type SkillAssignment struct {
	Skill     string
	Ratio     int
	StartDate Date
	EndDate   Date
}

// IsOpen reports whether the assignment still applies on today. An assignment
// ending today is still open.
func (a SkillAssignment) IsOpen(today Date) bool {
	return a.EndDate.IsZero() || !a.EndDate.Before(today)
}

func PoolMarkers() []string {
	return []string{SkillPyme, SkillPymeHospitality}
}

func IsPoolMarker(skill string) bool {
	switch strings.ToUpper(strings.TrimSpace(skill)) {
	case SkillPyme, SkillPymeHospitality:
		return true
	default:
		return false
	}
}

// NormalizePoolMarker upper-cases skill and checks it is a pool marker.
func NormalizePoolMarker(skill string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(skill))
	if !IsPoolMarker(normalized) {
		return "", ErrNotPoolMarker
	}
	return normalized, nil
}
