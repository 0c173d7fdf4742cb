package ofs

import (
	"github.com/sirupsen/logrus"

	"github.com/bnema/pyme-segmenter/internal/domain"
)

// closedEndDate stands in for an end date the API sent but that could not be
// read. It lies before any real day so the assignment counts as ended.
const closedEndDate domain.Date = "0001-01-01"

type resourcesPage struct {
	Items        []resourceJSON `json:"items"`
	TotalResults int            `json:"totalResults"`
	HasMore      bool           `json:"hasMore"`
	Offset       int            `json:"offset"`
	Limit        int            `json:"limit"`
}

type resourceJSON struct {
	ResourceID       string          `json:"resourceId"`
	Name             string          `json:"name"`
	Status           string          `json:"status"`
	Organization     string          `json:"organization"`
	ParentResourceID string          `json:"parentResourceId"`
	ResourceType     string          `json:"resourceType"`
	WorkSkills       *workSkillsJSON `json:"workSkills,omitempty"`
}

type workSkillsJSON struct {
	Items []workSkillJSON `json:"items"`
}

type workSkillJSON struct {
	WorkSkill string `json:"workSkill"`
	Ratio     int    `json:"ratio"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

type calendarEntryJSON struct {
	RecordType       string          `json:"recordType"`
	ShiftLabel       string          `json:"shiftLabel,omitempty"`
	ShiftType        string          `json:"shiftType,omitempty"`
	Comments         string          `json:"comments,omitempty"`
	NonWorkingReason string          `json:"nonWorkingReason,omitempty"`
	Recurrence       *recurrenceJSON `json:"recurrence,omitempty"`
}

type recurrenceJSON struct {
	RecurrenceType string `json:"recurrenceType"`
	RecurEvery     int    `json:"recurEvery"`
}

type schedulePatchJSON struct {
	StartDate        string          `json:"startDate"`
	EndDate          string          `json:"endDate"`
	Comments         string          `json:"comments,omitempty"`
	IsWorking        bool            `json:"isWorking"`
	RecordType       string          `json:"recordType"`
	ShiftLabel       string          `json:"shiftLabel,omitempty"`
	ShiftType        string          `json:"shiftType,omitempty"`
	NonWorkingReason string          `json:"nonWorkingReason,omitempty"`
	Recurrence       *recurrenceJSON `json:"recurrence,omitempty"`
}

type problemJSON struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status string `json:"status"`
}

func fromResourceJSON(raw resourceJSON, log *logrus.Entry) domain.Resource {
	resource := domain.Resource{
		ID:           domain.ResourceID(raw.ResourceID),
		Name:         raw.Name,
		Status:       raw.Status,
		Organization: raw.Organization,
		ParentID:     domain.ResourceID(raw.ParentResourceID),
		ResourceType: raw.ResourceType,
	}
	if raw.WorkSkills == nil {
		return resource
	}

	resource.Skills = make([]domain.SkillAssignment, 0, len(raw.WorkSkills.Items))
	for _, item := range raw.WorkSkills.Items {
		resource.Skills = append(resource.Skills, domain.SkillAssignment{
			Skill:     item.WorkSkill,
			Ratio:     item.Ratio,
			StartDate: parseOptionalDate(item.StartDate),
			EndDate:   parseEndDate(item.EndDate, raw.ResourceID, item.WorkSkill, log),
		})
	}
	return resource
}

func toWorkSkillsJSON(skills []domain.SkillAssignment) []workSkillJSON {
	items := make([]workSkillJSON, 0, len(skills))
	for _, skill := range skills {
		items = append(items, workSkillJSON{
			WorkSkill: skill.Skill,
			Ratio:     skill.Ratio,
			StartDate: skill.StartDate.String(),
			EndDate:   skill.EndDate.String(),
		})
	}
	return items
}

func fromCalendarJSON(raw map[string]map[string]calendarEntryJSON) domain.Calendar {
	calendar := make(domain.Calendar, len(raw))
	for rawDate, periods := range raw {
		date := parseOptionalDate(rawDate)
		if date.IsZero() {
			continue
		}
		entries := make(map[string]domain.CalendarEntry, len(periods))
		for key, period := range periods {
			entry := domain.CalendarEntry{
				Date:             date,
				PeriodKey:        key,
				RecordType:       period.RecordType,
				ShiftLabel:       period.ShiftLabel,
				ShiftType:        period.ShiftType,
				Comments:         period.Comments,
				NonWorkingReason: period.NonWorkingReason,
			}
			if period.Recurrence != nil {
				entry.Recurrence = domain.Recurrence{Type: period.Recurrence.RecurrenceType, Every: period.Recurrence.RecurEvery}
			}
			entries[key] = entry
		}
		calendar[date] = entries
	}
	return calendar
}

func toSchedulePatchJSON(patch domain.SchedulePatch) schedulePatchJSON {
	encoded := schedulePatchJSON{
		StartDate:        patch.StartDate.String(),
		EndDate:          patch.EndDate.String(),
		Comments:         patch.Comments,
		IsWorking:        patch.IsWorking,
		RecordType:       patch.RecordType,
		ShiftLabel:       patch.ShiftLabel,
		ShiftType:        patch.ShiftType,
		NonWorkingReason: patch.NonWorkingReason,
	}
	if patch.Recurrence.Type != "" {
		encoded.Recurrence = &recurrenceJSON{RecurrenceType: patch.Recurrence.Type, RecurEvery: patch.Recurrence.Every}
	}
	return encoded
}

// parseEndDate treats an unreadable end date as already passed, so a garbled
// row never reopens an assignment.
func parseEndDate(raw, resourceID, skill string, log *logrus.Entry) domain.Date {
	if raw == "" {
		return ""
	}
	date, err := domain.ParseDate(raw)
	if err != nil {
		if log != nil {
			log.WithError(err).WithFields(logrus.Fields{"resource": resourceID, "skill": skill}).Warn("unreadable skill end date, treating assignment as closed")
		}
		return closedEndDate
	}
	return date
}

// parseOptionalDate drops values the API sends that are not dates.
func parseOptionalDate(raw string) domain.Date {
	if raw == "" {
		return ""
	}
	date, err := domain.ParseDate(raw)
	if err != nil {
		return ""
	}
	return date
}
