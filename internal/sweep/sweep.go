// Package sweep varies one matrix coefficient across a range and records
// how the spectrum and the invariant objects respond, one decomposition
// per step. Steps are independent pure computations and run concurrently.
package sweep

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/san-kum/eigenlab/internal/linalg"
	"github.com/san-kum/eigenlab/internal/spectral"
)

// ErrEntryRange indicates a swept row/column index outside the matrix.
var ErrEntryRange = errors.New("sweep: entry index out of range")

// Spec selects the swept entry and its parameter range.
type Spec struct {
	Row   int
	Col   int
	Min   float64
	Max   float64
	Steps int
}

// Point is the decomposition outcome at one parameter value.
type Point struct {
	Param  float64
	Roots  []spectral.Root
	Reals  int
	Lines  int
	Planes int
}

func (s Spec) steps() int {
	if s.Steps < 2 {
		return 2
	}
	return s.Steps
}

func (s Spec) param(i int) float64 {
	return s.Min + (s.Max-s.Min)*float64(i)/float64(s.steps()-1)
}

// Run3 sweeps entry (Row, Col) of a 3×3 matrix.
func Run3(m linalg.Mat3, s Spec) ([]Point, error) {
	if s.Row < 0 || s.Row > 2 || s.Col < 0 || s.Col > 2 {
		return nil, fmt.Errorf("%w: (%d,%d) for dim 3", ErrEntryRange, s.Row, s.Col)
	}

	points := make([]Point, s.steps())
	var wg sync.WaitGroup
	for i := range points {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			mc := m
			mc[s.Row*3+s.Col] = s.param(idx)
			points[idx] = observe(s.param(idx), spectral.Analyze3(mc))
		}(i)
	}
	wg.Wait()
	return points, nil
}

// Run2 sweeps entry (Row, Col) of a 2×2 matrix.
func Run2(m linalg.Mat2, s Spec) ([]Point, error) {
	if s.Row < 0 || s.Row > 1 || s.Col < 0 || s.Col > 1 {
		return nil, fmt.Errorf("%w: (%d,%d) for dim 2", ErrEntryRange, s.Row, s.Col)
	}

	points := make([]Point, s.steps())
	var wg sync.WaitGroup
	for i := range points {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			mc := m
			mc[s.Row*2+s.Col] = s.param(idx)
			points[idx] = observe(s.param(idx), spectral.Analyze2(mc))
		}(i)
	}
	wg.Wait()
	return points, nil
}

// observe reduces one analysis to the values a sweep tracks. Roots are
// sorted by real part so per-index traces stay continuous across steps.
func observe(param float64, a spectral.Analysis) Point {
	roots := append([]spectral.Root(nil), a.Roots...)
	sort.Slice(roots, func(i, j int) bool { return roots[i].Re < roots[j].Re })

	p := Point{
		Param:  param,
		Roots:  roots,
		Lines:  a.CountKind(spectral.Line),
		Planes: a.CountKind(spectral.Plane),
	}
	for _, r := range roots {
		if r.IsReal() {
			p.Reals++
		}
	}
	return p
}

// Traces transposes sweep points into one series per root index, suitable
// for plotting real parts against the swept parameter.
func Traces(points []Point) [][]float64 {
	if len(points) == 0 {
		return nil
	}
	n := len(points[0].Roots)
	traces := make([][]float64, n)
	for i := range traces {
		traces[i] = make([]float64, len(points))
		for j, p := range points {
			traces[i][j] = p.Roots[i].Re
		}
	}
	return traces
}
