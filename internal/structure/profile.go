package structure

import (
	"github.com/alexiusacademia/gostress/internal/geometry"
	"github.com/alexiusacademia/gostress/internal/stress"
)

// Profile evaluates the cost of a single structure of behavior b for each
// remote stress orientation in thetas at stress ratio k.
// With k = 0 the S3 axis lies along (cos θ, sin θ), so the profile shows how
// the misfit of a fixed structure grows as the stress rotates away from it.
func Profile(b Behavior, direction geometry.Vector, k float64, thetas []float64) ([]float64, error) {
	d, err := NewDatum(direction, b.Kind, b)
	if err != nil {
		return nil, err
	}
	costs := make([]float64, len(thetas))
	for i, theta := range thetas {
		costs[i] = d.Cost(stress.Principal(theta, k))
	}
	return costs, nil
}
