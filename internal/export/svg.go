// Package export serializes invariant-space scenes to SVG and object
// lists to JSON and CSV.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/eigenlab/internal/linalg"
	"github.com/san-kum/eigenlab/internal/spectral"
)

const (
	lineColor  = "#00ff88"
	planeColor = "#ffaa00"
	axisColor  = "#444466"
	lineReach  = 1.3 // how far invariant lines extend past the unit cube
	planeReach = 1.0
)

// project maps a 3D point to isometric screen coordinates in [-1, 1]-ish
// range; the caller scales to the viewport.
func project(v linalg.Vec3) (float64, float64) {
	x := (v[0] - v[1]) * 0.8660
	y := (v[0]+v[1])*0.5 - v[2]
	return x, y
}

// SceneToSVG renders invariant lines and planes in an isometric view.
// Lines become strokes through the origin, planes become filled
// parallelograms spanned by an in-plane basis.
func SceneToSVG(objs []spectral.Object, size int) string {
	if size <= 0 {
		size = 480
	}
	half := float64(size) / 2
	scale := half / 2.2

	toView := func(v linalg.Vec3) (float64, float64) {
		x, y := project(v)
		return half + x*scale, half + y*scale
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, size, size, size, size))

	// Coordinate axes for orientation.
	for _, axis := range []linalg.Vec3{{1.6, 0, 0}, {0, 1.6, 0}, {0, 0, 1.6}} {
		x1, y1 := toView(axis.Scale(-1))
		x2, y2 := toView(axis)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>
`, x1, y1, x2, y2, axisColor))
	}

	for _, o := range objs {
		switch o.Kind {
		case spectral.Line:
			x1, y1 := toView(o.Axis.Scale(-lineReach))
			x2, y2 := toView(o.Axis.Scale(lineReach))
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2.5"/>
`, x1, y1, x2, y2, lineColor))
			lx, ly := toView(o.Axis.Scale(lineReach * 1.08))
			sb.WriteString(label(lx, ly, o.Eigenvalue, lineColor))

		case spectral.Plane:
			u, w := planeBasis(o.Axis)
			corners := [4]linalg.Vec3{
				u.Add(w).Scale(planeReach),
				u.Sub(w).Scale(planeReach),
				u.Add(w).Scale(-planeReach),
				w.Sub(u).Scale(planeReach),
			}
			sb.WriteString(`<polygon points="`)
			for i, c := range corners {
				x, y := toView(c)
				if i > 0 {
					sb.WriteString(" ")
				}
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			}
			sb.WriteString(fmt.Sprintf(`" fill="%s" fill-opacity="0.25" stroke="%s" stroke-width="1.5"/>
`, planeColor, planeColor))
			lx, ly := toView(u.Scale(planeReach * 1.1))
			sb.WriteString(label(lx, ly, o.Eigenvalue, planeColor))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func label(x, y, eigenvalue float64, color string) string {
	return fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-size="12" font-family="monospace">λ=%.3g</text>
`, x, y, color, eigenvalue)
}

// planeBasis returns two orthonormal vectors spanning the plane with the
// given unit normal.
func planeBasis(normal linalg.Vec3) (linalg.Vec3, linalg.Vec3) {
	seed := linalg.Vec3{1, 0, 0}
	if math.Abs(normal[0]) > 0.9 {
		seed = linalg.Vec3{0, 1, 0}
	}
	u := normal.Cross(seed).Normalize()
	w := normal.Cross(u).Normalize()
	return u, w
}
