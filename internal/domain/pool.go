package domain

import (
	"fmt"
	"strings"
)

type Pool string

const (
	PoolResidential Pool = "residential"
	PoolPyme        Pool = "pyme"
)

func ParsePool(raw string) (Pool, error) {
	pool := Pool(strings.ToLower(strings.TrimSpace(raw)))
	if !pool.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPool, raw)
	}
	return pool, nil
}

func (p Pool) Valid() bool {
	switch p {
	case PoolResidential, PoolPyme:
		return true
	default:
		return false
	}
}

func (p Pool) Label() string {
	switch p {
	case PoolResidential:
		return "Residencial"
	case PoolPyme:
		return "PYME"
	default:
		return string(p)
	}
}

type Direction string

const (
	DirectionToPyme        Direction = "to_pyme"
	DirectionToResidential Direction = "to_residential"
)

func (d Direction) Source() Pool {
	if d == DirectionToPyme {
		return PoolResidential
	}
	return PoolPyme
}

func (d Direction) Target() Pool {
	if d == DirectionToPyme {
		return PoolPyme
	}
	return PoolResidential
}

func (d Direction) Valid() bool {
	return d == DirectionToPyme || d == DirectionToResidential
}

// IsPyme reports whether the resource holds an open pool-marker assignment.
func IsPyme(resource Resource, today Date) bool {
	for _, skill := range resource.Skills {
		if IsPoolMarker(skill.Skill) && skill.IsOpen(today) {
			return true
		}
	}
	return false
}

func Classify(resources []Resource, today Date) (pyme []Resource, residential []Resource) {
	pyme = make([]Resource, 0)
	residential = make([]Resource, 0, len(resources))
	for _, resource := range resources {
		if IsPyme(resource, today) {
			pyme = append(pyme, resource)
			continue
		}
		residential = append(residential, resource)
	}
	return pyme, residential
}

type Badge struct {
	Skill string
	Label string
}

func SkillBadges(resource Resource, today Date) []Badge {
	open := map[string]bool{}
	for _, skill := range resource.OpenSkills(today) {
		open[strings.ToUpper(skill.Skill)] = true
	}

	badges := make([]Badge, 0, 2)
	if open[SkillPyme] {
		badges = append(badges, Badge{Skill: SkillPyme, Label: "PyME Multiskill"})
	}
	if open[SkillPymeHospitality] {
		badges = append(badges, Badge{Skill: SkillPymeHospitality, Label: "PyME Hospitalidad"})
	}
	return badges
}
