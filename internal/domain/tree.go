package domain

import "strings"

const (
	VirtualRootID       ResourceID = "virtual-root-node"
	DefaultGroupName               = "Recursos agrupados"
	UnassignedBucketKey ResourceID = "Sin agrupar"

	// MaxTreeDepth bounds every recursive walk so malformed parent chains
	// cannot recurse forever.
	MaxTreeDepth = 64
)

// BuildTree links a flat resource list into a single tree. The resource
// without a parent is the root; resources whose parent is unknown are dropped.
// It returns nil for an empty list or when no root exists.
func BuildTree(resources []Resource) *Resource {
	nodes, order := indexNodes(resources)

	var root *Resource
	for _, id := range order {
		node := nodes[id]
		if node.ParentID == "" {
			root = node
			continue
		}
		if parent, ok := resolveParent(nodes, node); ok {
			parent.Children = append(parent.Children, node)
		}
	}

	return root
}

// BuildForest links a flat resource list like BuildTree, but every resource
// without a resolvable parent becomes a root.
func BuildForest(resources []Resource) []*Resource {
	nodes, order := indexNodes(resources)

	roots := make([]*Resource, 0)
	for _, id := range order {
		node := nodes[id]
		if parent, ok := resolveParent(nodes, node); ok {
			parent.Children = append(parent.Children, node)
			continue
		}
		roots = append(roots, node)
	}

	return roots
}

// GroupForestUnderVirtualRoot wraps forest under a display-only node that is
// never sent to the workforce API.
func GroupForestUnderVirtualRoot(forest []*Resource, rootName string) *Resource {
	if rootName == "" {
		rootName = DefaultGroupName
	}

	return &Resource{
		ID:           VirtualRootID,
		Name:         rootName,
		Organization: OrganizationDefault,
		Status:       StatusActive,
		ResourceType: ResourceTypeGroup,
		Children:     forest,
	}
}

// GroupForestByParentID buckets forest roots by their parent id, names each
// bucket from allResources and wraps the buckets under a virtual root.
func GroupForestByParentID(forest []*Resource, allResources []Resource, rootName string) *Resource {
	if len(forest) == 0 {
		return nil
	}

	names := make(map[ResourceID]string, len(allResources))
	for _, resource := range allResources {
		names[resource.ID] = resource.Name
	}

	groups := map[ResourceID][]*Resource{}
	keys := make([]ResourceID, 0)
	for _, node := range forest {
		key := node.ParentID
		if key == "" {
			key = UnassignedBucketKey
		}
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], node)
	}

	categories := make([]*Resource, 0, len(keys))
	for _, key := range keys {
		name := names[key]
		if name == "" {
			name = string(key)
		}
		categories = append(categories, &Resource{
			ID:           key,
			Name:         name,
			Organization: OrganizationDefault,
			Status:       StatusActive,
			ResourceType: ResourceTypeBucket,
			Children:     groups[key],
		})
	}

	return GroupForestUnderVirtualRoot(categories, rootName)
}

// FilterTree keeps nodes whose id or name contains term (case-insensitive)
// plus the ancestors of those nodes. An empty term returns root unchanged.
func FilterTree(root *Resource, term string) *Resource {
	term = strings.ToLower(strings.TrimSpace(term))
	if root == nil || term == "" {
		return root
	}
	return filterNode(root, term, 0)
}

func filterNode(node *Resource, term string, depth int) *Resource {
	if depth >= MaxTreeDepth {
		return nil
	}

	matched := strings.Contains(strings.ToLower(string(node.ID)), term) ||
		strings.Contains(strings.ToLower(node.Name), term)

	var children []*Resource
	for _, child := range node.Children {
		if kept := filterNode(child, term, depth+1); kept != nil {
			children = append(children, kept)
		}
	}

	if !matched && len(children) == 0 {
		return nil
	}

	clone := *node
	clone.Children = children
	return &clone
}

// Walk visits root and its descendants depth-first. Returning false from
// visit skips the node's children.
func Walk(root *Resource, visit func(node *Resource, depth int) bool) {
	if root == nil {
		return
	}
	walk(root, 0, visit)
}

func walk(node *Resource, depth int, visit func(*Resource, int) bool) {
	if depth >= MaxTreeDepth || !visit(node, depth) {
		return
	}
	for _, child := range node.Children {
		walk(child, depth+1, visit)
	}
}

func CountNodes(root *Resource) int {
	count := 0
	Walk(root, func(*Resource, int) bool {
		count++
		return true
	})
	return count
}

func FindNode(root *Resource, id ResourceID) (*Resource, bool) {
	var found *Resource
	Walk(root, func(node *Resource, _ int) bool {
		if found != nil {
			return false
		}
		if node.ID == id {
			found = node
			return false
		}
		return true
	})
	return found, found != nil
}

// CloneTree deep-copies the node structure and every skill slice.
func CloneTree(root *Resource) *Resource {
	if root == nil {
		return nil
	}
	return cloneNode(root, 0)
}

func cloneNode(node *Resource, depth int) *Resource {
	clone := *node
	clone.Skills = cloneSkills(node.Skills)
	clone.Children = nil
	if depth >= MaxTreeDepth {
		return &clone
	}
	if node.Children != nil {
		clone.Children = make([]*Resource, 0, len(node.Children))
		for _, child := range node.Children {
			clone.Children = append(clone.Children, cloneNode(child, depth+1))
		}
	}
	return &clone
}

// CloneResources copies resources with their skill slices. Children are
// dropped.
func CloneResources(resources []Resource) []Resource {
	if resources == nil {
		return nil
	}
	clones := make([]Resource, len(resources))
	for i, resource := range resources {
		resource.Skills = cloneSkills(resource.Skills)
		resource.Children = nil
		clones[i] = resource
	}
	return clones
}

func cloneSkills(skills []SkillAssignment) []SkillAssignment {
	if skills == nil {
		return nil
	}
	return append(make([]SkillAssignment, 0, len(skills)), skills...)
}

// indexNodes copies every resource into a fresh node with an empty child
// list. Duplicate ids keep their first occurrence.
func indexNodes(resources []Resource) (map[ResourceID]*Resource, []ResourceID) {
	nodes := make(map[ResourceID]*Resource, len(resources))
	order := make([]ResourceID, 0, len(resources))
	for _, resource := range resources {
		if _, ok := nodes[resource.ID]; ok {
			continue
		}
		node := resource
		node.Children = []*Resource{}
		nodes[resource.ID] = &node
		order = append(order, resource.ID)
	}
	return nodes, order
}

func resolveParent(nodes map[ResourceID]*Resource, node *Resource) (*Resource, bool) {
	if node.ParentID == "" || node.ParentID == node.ID {
		return nil, false
	}
	parent, ok := nodes[node.ParentID]
	return parent, ok
}
