package semantic

// FlatNode is a node with a path breadcrumb instead of children, used for
// reporting where in the tree a node sits.
type FlatNode struct {
	Role        string `yaml:"role"                  json:"role"`
	Text        string `yaml:"text,omitempty"        json:"text,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Bounds      Rect   `yaml:"bounds"                json:"bounds"`
	Clickable   bool   `yaml:"clickable,omitempty"   json:"clickable,omitempty"`
	Path        string `yaml:"path,omitempty"        json:"path,omitempty"`
}

// Flatten converts a tree into a pre-order flat list. Each node gets a path
// string showing its location in the tree using role names joined with " > ".
func Flatten(root *Node) []FlatNode {
	var result []FlatNode
	if root == nil {
		return result
	}
	flattenRecursive(root, "", &result)
	return result
}

func flattenRecursive(n *Node, parentPath string, result *[]FlatNode) {
	currentPath := n.Role
	if parentPath != "" {
		currentPath = parentPath + " > " + n.Role
	}

	*result = append(*result, FlatNode{
		Role:        n.Role,
		Text:        n.Text,
		Description: n.Description,
		Bounds:      n.Bounds,
		Clickable:   n.Clickable,
		Path:        currentPath,
	})

	for i := range n.Children {
		flattenRecursive(&n.Children[i], currentPath, result)
	}
}
