package semantic

import (
	"path/filepath"
	"reflect"
	"testing"
)

// buildSettingsTree creates a small settings-screen tree:
//
//	window
//	├── toolbar
//	│   ├── button "Back"
//	│   └── button "Save"
//	└── group
//	    ├── text "Font size"
//	    └── switch (clickable, no text)
func buildSettingsTree() *Node {
	return &Node{
		Role: "window", Bounds: Rect{0, 0, 360, 640},
		Children: []Node{
			{
				Role: "toolbar", Bounds: Rect{0, 0, 360, 56},
				Children: []Node{
					{Role: "button", Text: "Back", Bounds: Rect{0, 0, 56, 56}},
					{Role: "button", Text: "Save", Bounds: Rect{304, 0, 360, 56}},
				},
			},
			{
				Role: "group", Bounds: Rect{0, 56, 360, 640},
				Children: []Node{
					{Role: "text", Text: "Font size", Bounds: Rect{16, 72, 200, 96}},
					{Role: "switch", Clickable: true, Bounds: Rect{300, 72, 348, 120}},
				},
			},
		},
	}
}

func TestRect_Derived(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Right: 110, Bottom: 70}
	if r.Width() != 100 {
		t.Errorf("Width() = %d, want 100", r.Width())
	}
	if r.Height() != 50 {
		t.Errorf("Height() = %d, want 50", r.Height())
	}
}

func TestWalk_PreOrder(t *testing.T) {
	var order []string
	Walk(buildSettingsTree(), func(n *Node) {
		label := n.Role
		if n.Text != "" {
			label += ":" + n.Text
		}
		order = append(order, label)
	})
	want := []string{
		"window",
		"toolbar", "button:Back", "button:Save",
		"group", "text:Font size", "switch",
	}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("traversal order = %v, want %v", order, want)
	}
}

func TestWalk_NilRoot(t *testing.T) {
	called := false
	Walk(nil, func(*Node) { called = true })
	if called {
		t.Error("Walk(nil) must not visit anything")
	}
}

func TestCount(t *testing.T) {
	if got := Count(buildSettingsTree()); got != 7 {
		t.Errorf("Count() = %d, want 7", got)
	}
}

func TestActionable(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want bool
	}{
		{"button role", Node{Role: "button"}, true},
		{"clickable group", Node{Role: "group", Clickable: true}, true},
		{"plain text", Node{Role: "text"}, false},
		{"switch role", Node{Role: "switch"}, true},
		{"plain group", Node{Role: "group"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Actionable(); got != tt.want {
				t.Errorf("Actionable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlatten_Paths(t *testing.T) {
	flat := Flatten(buildSettingsTree())
	if len(flat) != 7 {
		t.Fatalf("Flatten() returned %d nodes, want 7", len(flat))
	}
	if flat[0].Path != "window" {
		t.Errorf("root path = %q, want %q", flat[0].Path, "window")
	}
	if flat[2].Path != "window > toolbar > button" {
		t.Errorf("nested path = %q, want %q", flat[2].Path, "window > toolbar > button")
	}
	if flat[6].Path != "window > group > switch" {
		t.Errorf("last path = %q, want %q", flat[6].Path, "window > group > switch")
	}
}

func TestTreeFixture_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	tree := buildSettingsTree()

	if err := SaveTree(path, tree); err != nil {
		t.Fatalf("SaveTree: %v", err)
	}
	loaded, err := LoadTree(path)
	if err != nil {
		t.Fatalf("LoadTree: %v", err)
	}
	if !reflect.DeepEqual(loaded, tree) {
		t.Errorf("round-tripped tree differs:\ngot  %+v\nwant %+v", loaded, tree)
	}
}

func TestLoadTree_Missing(t *testing.T) {
	if _, err := LoadTree(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadTree must fail for a missing file")
	}
}
