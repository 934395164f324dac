// Package viz renders analyses for the terminal: styled matrix grids,
// eigenvalue listings, invariant-object tables, a sweep plot, and an
// interactive matrix editor.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/eigenlab/internal/spectral"
	"github.com/san-kum/eigenlab/internal/sweep"
)

// RenderMatrix lays out a coefficient grid. With cursor enabled the cell
// at (curRow, curCol) is highlighted.
func RenderMatrix(rows [][]float64, curRow, curCol int, cursor bool) string {
	var sb strings.Builder
	for r, row := range rows {
		sb.WriteString("  │")
		for c, v := range row {
			cell := fmt.Sprintf("%8.3f", v)
			if cursor && r == curRow && c == curCol {
				sb.WriteString(SelectedCellStyle.Render(cell))
			} else {
				sb.WriteString(CellStyle.Render(cell))
			}
		}
		sb.WriteString(" │\n")
	}
	return sb.String()
}

// RenderRoots lists the characteristic roots, tagging conjugate pairs.
func RenderRoots(roots []spectral.Root) string {
	var sb strings.Builder
	for _, r := range roots {
		if r.IsReal() {
			sb.WriteString(LabelStyle.Render("λ"))
			sb.WriteString(ValueStyle.Render(fmt.Sprintf("%.6f", r.Re)))
		} else {
			sb.WriteString(LabelStyle.Render("λ"))
			sb.WriteString(ComplexStyle.Render(fmt.Sprintf("%.6f %+.6fi (complex)", r.Re, r.Im)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderObjects lists invariant lines and planes with their axes.
func RenderObjects(objs []spectral.Object, uniformScaling bool) string {
	if uniformScaling {
		return EmptyStyle.Render("uniform scaling: every line is invariant, nothing to draw") + "\n"
	}
	if len(objs) == 0 {
		return EmptyStyle.Render("no invariant lines or planes") + "\n"
	}

	var sb strings.Builder
	for _, o := range objs {
		var badge, axisLabel string
		switch o.Kind {
		case spectral.Line:
			badge = LineBadge.Render("line ")
			axisLabel = "direction"
		case spectral.Plane:
			badge = PlaneBadge.Render("plane")
			axisLabel = "normal"
		}
		sb.WriteString(fmt.Sprintf("%s  λ=%-10.4f %s (%.4f, %.4f, %.4f)\n",
			badge, o.Eigenvalue, ValueStyle.Render(axisLabel),
			o.Axis[0], o.Axis[1], o.Axis[2]))
	}
	return sb.String()
}

// RenderAnalysis combines the root listing and the object table into one
// report.
func RenderAnalysis(a spectral.Analysis) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("%d×%d eigen-decomposition", a.Dim, a.Dim)))
	sb.WriteString("\n")
	sb.WriteString(RenderRoots(a.Roots))
	sb.WriteString("\n")
	sb.WriteString(RenderObjects(a.Objects, a.UniformScaling))
	return sb.String()
}

// PlotSweep draws the real parts of every root trace against the swept
// parameter.
func PlotSweep(points []sweep.Point, caption string) string {
	traces := sweep.Traces(points)
	if len(traces) == 0 {
		return ""
	}
	return asciigraph.PlotMany(traces,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}
