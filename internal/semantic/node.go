// Package semantic models the accessibility-oriented description of a
// rendered UI: a tree of nodes with bounds, role, text, and description.
// The tree is produced fresh by each capture and discarded after
// verification; it is never persisted by the engine (fixtures for tests and
// the CLI are the one exception, see fixture.go).
package semantic

import "fmt"

// Rect is a screen region in integer pixel coordinates.
// Invariant: Right >= Left and Bottom >= Top.
type Rect struct {
	Left   int `yaml:"left"   json:"left"`
	Top    int `yaml:"top"    json:"top"`
	Right  int `yaml:"right"  json:"right"`
	Bottom int `yaml:"bottom" json:"bottom"`
}

// Width returns the horizontal extent of the rect.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the vertical extent of the rect.
func (r Rect) Height() int { return r.Bottom - r.Top }

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Node is one element of the semantic tree. Children are in rendering order.
type Node struct {
	Role        string `yaml:"role,omitempty"        json:"role,omitempty"`
	Text        string `yaml:"text,omitempty"        json:"text,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Bounds      Rect   `yaml:"bounds"                json:"bounds"`
	Clickable   bool   `yaml:"clickable,omitempty"   json:"clickable,omitempty"`
	Children    []Node `yaml:"children,omitempty"    json:"children,omitempty"`
}

// interactiveRoles are roles that imply the node accepts user activation
// even without an explicit click handler.
var interactiveRoles = map[string]bool{
	"button":   true,
	"link":     true,
	"checkbox": true,
	"switch":   true,
	"radio":    true,
	"input":    true,
	"menuitem": true,
	"tab":      true,
}

// Actionable reports whether the node is expected to respond to user
// activation: it has a click handler or an interactive role.
func (n *Node) Actionable() bool {
	return n.Clickable || interactiveRoles[n.Role]
}

// HasVisibleText reports whether the node carries any user-visible text.
func (n *Node) HasVisibleText() bool { return n.Text != "" }

// Walk visits every node in pre-order (parent before children, children in
// rendering order) and calls fn for each. The traversal is iterative with an
// explicit stack so deeply nested trees cannot overflow the goroutine stack.
func Walk(root *Node, fn func(*Node)) {
	if root == nil {
		return
	}
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(n)
		// Push children in reverse so the first child is visited next.
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, &n.Children[i])
		}
	}
}

// Count returns the number of nodes in the tree rooted at root.
func Count(root *Node) int {
	total := 0
	Walk(root, func(*Node) { total++ })
	return total
}
