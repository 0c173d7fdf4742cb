package domain

type ResourceID string

const (
	StatusActive        = "active"
	OrganizationDefault = "default"

	ResourceTypeGroup  = "GR"
	ResourceTypeBucket = "BK"
)

type Resource struct {
	ID           ResourceID
	Name         string
	Status       string
	Organization string
	ParentID     ResourceID
	ResourceType string
	Skills       []SkillAssignment
	// Children is only populated by the tree builders.
	Children []*Resource
}

// Segmentable reports whether the resource takes part in pool segmentation.
func (r Resource) Segmentable() bool {
	return r.Status == StatusActive && r.Organization == OrganizationDefault
}

func (r Resource) OpenSkills(today Date) []SkillAssignment {
	open := make([]SkillAssignment, 0, len(r.Skills))
	for _, skill := range r.Skills {
		if skill.IsOpen(today) {
			open = append(open, skill)
		}
	}
	return open
}

func (r Resource) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return string(r.ID)
}

func FilterSegmentable(resources []Resource) []Resource {
	kept := make([]Resource, 0, len(resources))
	for _, resource := range resources {
		if resource.Segmentable() {
			kept = append(kept, resource)
		}
	}
	return kept
}
