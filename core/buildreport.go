package core

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// BuildReport is returned by the BVH/scene build step alongside any fatal
// error. It never carries control flow itself (spec.md §9: "diagnostics
// are returned from the build step as a result value", not globals); a
// caller that wants to log or persist it can marshal it as YAML via
// gopkg.in/yaml.v3 (see scene.Build).
type BuildReport struct {
	PrimitiveCount int      `yaml:"primitive_count"`
	SkippedCount   int      `yaml:"skipped_count"`
	Skipped        []string `yaml:"skipped,omitempty"`
	BVHNodes       int      `yaml:"bvh_nodes"`
	BVHLeaves      int      `yaml:"bvh_leaves"`
	BVHMaxDepth    int      `yaml:"bvh_max_depth"`
}

func (r BuildReport) String() string {
	return fmt.Sprintf("primitives=%d skipped=%d bvh(nodes=%d leaves=%d depth=%d)",
		r.PrimitiveCount, r.SkippedCount, r.BVHNodes, r.BVHLeaves, r.BVHMaxDepth)
}

// YAML marshals the report for a caller that wants to log or persist build
// diagnostics rather than just print the one-line String() summary.
func (r BuildReport) YAML() (string, error) {
	b, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("marshal build report: %w", err)
	}
	return string(b), nil
}
