package structure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gostress/internal/geometry"
	"github.com/alexiusacademia/gostress/internal/stress"
)

// Datum is one observed structure orientation bound to its type behavior.
// Datum values are immutable once created.
type Datum struct {
	direction geometry.Vector
	typeName  string
	behavior  Behavior
}

// NewDatum binds a direction to b. The direction is normalized.
func NewDatum(direction geometry.Vector, typeName string, b Behavior) (Datum, error) {
	n, err := geometry.Normalize(direction)
	if err != nil {
		return Datum{}, err
	}
	return Datum{direction: n, typeName: typeName, behavior: b}, nil
}

// Direction returns the unit direction of the structure
func (d Datum) Direction() geometry.Vector { return d.direction }

// Type returns the name the datum was registered under
func (d Datum) Type() string { return d.typeName }

// Cost returns the misfit of this datum for the given stress state
func (d Datum) Cost(eigen stress.PrincipalDirections) float64 {
	return d.behavior.Cost(d.direction, eigen)
}

// Predict returns the orientation the stress state predicts for this datum
func (d Datum) Predict(eigen stress.PrincipalDirections) geometry.Vector {
	return d.behavior.Predict(eigen)
}

// Dataset is an in-memory collection of structure data.
// It is not safe for concurrent mutation; solvers only read it.
type Dataset struct {
	registry *Registry
	data     []Datum
}

// NewDataset creates an empty dataset resolving types in reg (Default if nil)
func NewDataset(reg *Registry) *Dataset {
	if reg == nil {
		reg = Default
	}
	return &Dataset{registry: reg}
}

// Add appends one datum of the named type
func (s *Dataset) Add(direction geometry.Vector, typeName string) error {
	b, err := s.registry.Lookup(typeName)
	if err != nil {
		return err
	}
	d, err := NewDatum(direction, typeName, b)
	if err != nil {
		return err
	}
	s.data = append(s.data, d)
	return nil
}

// Load reads one datum per line from r, all of type typeName.
// Each non-blank line must hold exactly two numbers. Loading stops at the
// first malformed line and the dataset is left unchanged.
// It returns the number of data added.
func (s *Dataset) Load(r io.Reader, source, typeName string) (int, error) {
	b, err := s.registry.Lookup(typeName)
	if err != nil {
		return 0, err
	}

	var staged []Datum
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		d, err := parseDatum(text, typeName, b)
		if err != nil {
			return 0, &ParseError{Source: source, Line: line, Text: text, Err: err}
		}
		staged = append(staged, d)
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("structure: reading %s: %w", source, err)
	}

	s.data = append(s.data, staged...)
	return len(staged), nil
}

// LoadFile loads a structure data file, see Load
func (s *Dataset) LoadFile(path, typeName string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return s.Load(f, path, typeName)
}

// Len returns the number of data
func (s *Dataset) Len() int {
	return len(s.data)
}

// Data returns a copy of the data in insertion order
func (s *Dataset) Data() []Datum {
	out := make([]Datum, len(s.data))
	copy(out, s.data)
	return out
}

// Counts returns the number of data per type name
func (s *Dataset) Counts() map[string]int {
	counts := make(map[string]int)
	for _, d := range s.data {
		counts[d.typeName]++
	}
	return counts
}

var errFieldCount = errors.New("expected two numeric fields")

// parseDatum parses one source line into a datum of behavior b
func parseDatum(text, typeName string, b Behavior) (Datum, error) {
	v, err := parseVector(text)
	if err != nil {
		return Datum{}, err
	}
	return NewDatum(v, typeName, b)
}

// parseVector parses "x y" with arbitrary surrounding whitespace
func parseVector(text string) (geometry.Vector, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return geometry.Vector{}, fmt.Errorf("%w, got %d", errFieldCount, len(fields))
	}

	var v [2]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector{}, err
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return geometry.Vector{}, fmt.Errorf("non-finite component %q", f)
		}
		v[i] = x
	}
	return geometry.Vector{X: v[0], Y: v[1]}, nil
}
