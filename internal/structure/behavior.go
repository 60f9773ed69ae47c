package structure

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gostress/internal/geometry"
	"github.com/alexiusacademia/gostress/internal/stress"
)

// Axis selects one of the two principal directions
type Axis int

const (
	// S1 is the maximum principal direction
	S1 Axis = 1
	// S3 is the minimum principal direction
	S3 Axis = 3
)

// ParseAxis accepts "S1"/"S3" (case insensitive) or "1"/"3"
func ParseAxis(s string) (Axis, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "S1", "1":
		return S1, nil
	case "S3", "3":
		return S3, nil
	}
	return 0, fmt.Errorf("structure: unknown principal axis %q (want S1 or S3)", s)
}

// Of returns the principal direction selected by a
func (a Axis) Of(eigen stress.PrincipalDirections) geometry.Vector {
	if a == S3 {
		return eigen.S3
	}
	return eigen.S1
}

func (a Axis) String() string {
	if a == S3 {
		return "S3"
	}
	return "S1"
}

// CostFunc measures the misfit between an observed direction and a stress state
type CostFunc func(direction geometry.Vector, eigen stress.PrincipalDirections) float64

// PredictFunc returns the orientation a stress state predicts for a structure
type PredictFunc func(eigen stress.PrincipalDirections) geometry.Vector

// Behavior is the cost/predict pair shared by every datum of a structure type
type Behavior struct {
	Kind    string
	Cost    CostFunc
	Predict PredictFunc
}

// AlignedWith returns a behavior for structures expected to be parallel to the
// given principal axis: cost = 1 - |direction · axis|, predict = axis.
// For a unit direction the cost lies in [0,1]: 0 when parallel or antiparallel,
// 1 when perpendicular.
func AlignedWith(kind string, axis Axis) Behavior {
	return Behavior{
		Kind: kind,
		Cost: func(direction geometry.Vector, eigen stress.PrincipalDirections) float64 {
			return 1 - math.Abs(geometry.Dot(direction, axis.Of(eigen)))
		},
		Predict: axis.Of,
	}
}

// Built-in behaviors
var (
	// Joint covers opening fractures (joints, dikes) aligned with S1
	Joint = AlignedWith("joint", S1)
	// Stylolite covers compaction structures aligned with S3
	Stylolite = AlignedWith("stylolite", S3)
)

// builtins lists the structure type names known at startup
var builtins = map[string]Behavior{
	"joint":     Joint,
	"dike":      Joint,
	"dyke":      Joint,
	"stylolite": Stylolite,
	"stylo":     Stylolite,
}
