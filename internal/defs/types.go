// internal/defs/types.go
package defs

import "image/color"

// TargetingMode defines how a tower ranks the enemies it can reach.
type TargetingMode string

const (
	// TargetFirst prefers the enemy furthest along the path.
	TargetFirst TargetingMode = "first"
	// TargetClosest prefers the enemy nearest to the tower.
	TargetClosest TargetingMode = "closest"
)

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color        color.RGBA `yaml:"color"`
	RadiusFactor float64    `yaml:"radius_factor"`
	StrokeWidth  float64    `yaml:"stroke_width"`
}
