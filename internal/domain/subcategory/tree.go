package subcategory

import (
	"sort"

	"github.com/oklog/ulid/v2"
)

type Node struct {
	*SubCategory
	Children []*Node `json:"children"`
}

// BuildTree monta a árvore de uma categoria. Nós cujo pai não está na lista sobem para a raiz.
func BuildTree(subCategories []*SubCategory) []*Node {
	nodes := make(map[ulid.ULID]*Node, len(subCategories))
	for _, s := range subCategories {
		nodes[s.Id] = &Node{SubCategory: s, Children: []*Node{}}
	}

	roots := make([]*Node, 0)
	for _, s := range subCategories {
		node := nodes[s.Id]
		if s.ParentId != nil {
			if parent, ok := nodes[*s.ParentId]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	sortNodes(roots)
	return roots
}

func sortNodes(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].SortOrder != nodes[j].SortOrder {
			return nodes[i].SortOrder < nodes[j].SortOrder
		}
		return nodes[i].Name < nodes[j].Name
	})
	for _, n := range nodes {
		sortNodes(n.Children)
	}
}

// Descendants devolve os ids abaixo de rootID, em largura.
func Descendants(subCategories []*SubCategory, rootID ulid.ULID) []ulid.ULID {
	children := make(map[ulid.ULID][]ulid.ULID)
	for _, s := range subCategories {
		if s.ParentId != nil {
			children[*s.ParentId] = append(children[*s.ParentId], s.Id)
		}
	}

	out := make([]ulid.ULID, 0)
	visited := map[ulid.ULID]bool{rootID: true}
	queue := []ulid.ULID{rootID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range children[current] {
			if visited[child] {
				continue
			}
			visited[child] = true
			out = append(out, child)
			queue = append(queue, child)
		}
	}
	return out
}
