package segments

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/pyme-segmenter/internal/application"
	"github.com/bnema/pyme-segmenter/internal/domain"
)

const selectionBarWidth = 20

// Section is one pool as presented to the user. Root wins over List.
type Section struct {
	Title    string
	Pool     domain.Pool
	Root     *domain.Resource
	List     []domain.Resource
	Selected []domain.ResourceID
}

type RenderOptions struct {
	Today domain.Date
	Range domain.DateRange
	// TargetSkill is shown next to the range when set.
	TargetSkill string
}

// ResidentialSection builds the Residential tree view, keeping only nodes
// matching search and their ancestors.
func ResidentialSection(vm application.ViewModel, search string) Section {
	return Section{
		Title:    domain.PoolResidential.Label(),
		Pool:     domain.PoolResidential,
		Root:     domain.FilterTree(vm.ResidentialTree, search),
		Selected: vm.SelectedResidential,
	}
}

// PymeSection builds the PYME view, either flat or grouped by parent.
func PymeSection(vm application.ViewModel, group bool) Section {
	section := Section{
		Title:    domain.PoolPyme.Label(),
		Pool:     domain.PoolPyme,
		List:     vm.Pyme,
		Selected: vm.SelectedPyme,
	}
	if group {
		section.Root = domain.GroupForestByParentID(domain.BuildForest(vm.Pyme), vm.Active, "")
	}
	return section
}

func OptionsFrom(vm application.ViewModel) RenderOptions {
	return RenderOptions{Today: vm.Today, Range: vm.Range, TargetSkill: vm.TargetSkill}
}

func renderView(sections []Section, opts RenderOptions, s styles) string {
	lines := []string{s.title.Render("Segmentación de recursos")}
	header := fmt.Sprintf("range: %s", opts.Range)
	if opts.TargetSkill != "" {
		header += fmt.Sprintf(" | skill: %s", opts.TargetSkill)
	}
	lines = append(lines, s.header.Render(header))

	for _, section := range sections {
		lines = append(lines, s.section.Render(renderSection(section, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSection(section Section, opts RenderOptions, s styles) string {
	selected := make(map[domain.ResourceID]bool, len(section.Selected))
	for _, id := range section.Selected {
		selected[id] = true
	}

	total := sectionSize(section)
	parts := []string{
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.group.Render(fmt.Sprintf("%s (%d)", section.Title, total)),
			" ",
			renderSelectionBar(len(section.Selected), total, selectionBarWidth, s),
			" ",
			s.header.Render(fmt.Sprintf("%d selected", len(section.Selected))),
		),
	}

	switch {
	case section.Root != nil:
		parts = append(parts, treeLines(section.Root, selected, opts.Today, s)...)
	case len(section.List) > 0:
		for _, resource := range section.List {
			parts = append(parts, resourceLine("", resource, selected[resource.ID], opts.Today, s))
		}
	default:
		parts = append(parts, s.empty.Render("No resources."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func sectionSize(section Section) int {
	if section.Root == nil {
		return len(section.List)
	}
	count := 0
	domain.Walk(section.Root, func(node *domain.Resource, _ int) bool {
		if !isSynthetic(node) {
			count++
		}
		return true
	})
	return count
}

func treeLines(root *domain.Resource, selected map[domain.ResourceID]bool, today domain.Date, s styles) []string {
	lines := []string{nodeLine("", root, selected, today, s)}
	lines = append(lines, childLines(root, "", selected, today, s, 1)...)
	return lines
}

func childLines(node *domain.Resource, prefix string, selected map[domain.ResourceID]bool, today domain.Date, s styles, depth int) []string {
	if depth >= domain.MaxTreeDepth {
		return nil
	}

	lines := make([]string, 0, len(node.Children))
	for i, child := range node.Children {
		last := i == len(node.Children)-1
		connector, nextPrefix := "├─ ", "│  "
		if last {
			connector, nextPrefix = "└─ ", "   "
		}
		lines = append(lines, nodeLine(s.branch.Render(prefix+connector), child, selected, today, s))
		lines = append(lines, childLines(child, prefix+nextPrefix, selected, today, s, depth+1)...)
	}
	return lines
}

func nodeLine(branch string, node *domain.Resource, selected map[domain.ResourceID]bool, today domain.Date, s styles) string {
	if isSynthetic(node) {
		return branch + s.group.Render(node.DisplayName())
	}
	return resourceLine(branch, *node, selected[node.ID], today, s)
}

func resourceLine(branch string, resource domain.Resource, selected bool, today domain.Date, s styles) string {
	mark := "[ ]"
	nameStyle := s.resource
	if selected {
		mark = "[x]"
		nameStyle = s.selected
	}

	line := branch + nameStyle.Render(mark+" "+resource.DisplayName())
	if resource.Name != "" {
		line += " " + s.resourceID.Render("("+string(resource.ID)+")")
	}
	for _, badge := range domain.SkillBadges(resource, today) {
		line += " " + s.badge.Render("<"+badge.Label+">")
	}
	return line
}

// isSynthetic reports display-only nodes: the virtual root and bucket nodes.
func isSynthetic(node *domain.Resource) bool {
	return node.ID == domain.VirtualRootID || node.ResourceType == domain.ResourceTypeBucket
}

func renderSelectionBar(selected, total, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := 0.0
	if total > 0 {
		fraction = float64(selected) / float64(total)
	}
	filled := int(math.Round(float64(width) * fraction))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}
