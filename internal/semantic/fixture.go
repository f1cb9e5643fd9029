package semantic

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTree reads a semantic tree from a YAML fixture file. Fixtures let the
// CLI and tests replay a previously captured tree without a live renderer.
func LoadTree(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load tree: %w", err)
	}
	var root Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("unmarshal tree %s: %w", path, err)
	}
	return &root, nil
}

// SaveTree writes a semantic tree to a YAML fixture file.
func SaveTree(path string, root *Node) error {
	data, err := yaml.Marshal(root)
	if err != nil {
		return fmt.Errorf("marshal tree: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
