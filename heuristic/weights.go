package heuristic

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights are the coefficients of the linear scoring function. They are
// always injected; the evaluator carries no compiled-in tuning of its own.
type Weights struct {
	HeightSum        float64 `yaml:"height_sum"`
	Holes            float64 `yaml:"holes"`
	Bumpiness        float64 `yaml:"bumpiness"`
	Wells            float64 `yaml:"wells"`
	MaxHeightSquared float64 `yaml:"max_height_squared"`
	LinesCleared     float64 `yaml:"lines_cleared"`
}

// DefaultWeights returns the standard tuning, values from well-known strong
// falling-block heuristics.
func DefaultWeights() Weights {
	return Weights{
		HeightSum:        -0.510066,
		Holes:            -0.76066,
		Bumpiness:        -0.35663,
		Wells:            -0.05,
		MaxHeightSquared: -0.01,
		LinesCleared:     0.9,
	}
}

// LoadWeights reads an alternative tuning from a YAML file, so weight sets
// can be swapped without a code change.
func LoadWeights(path string) (Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Weights{}, err
	}
	var w Weights
	if err := yaml.Unmarshal(data, &w); err != nil {
		return Weights{}, fmt.Errorf("parsing weights file %s: %w", path, err)
	}
	return w, nil
}
