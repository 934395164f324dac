package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/eigenlab/internal/config"
	"github.com/san-kum/eigenlab/internal/linalg"
	"github.com/san-kum/eigenlab/internal/spectral"
)

var editSteps = []float64{1, 0.1, 0.01}

// Model is the interactive matrix editor: a cursor over the coefficient
// grid, recomputing the full decomposition on every edit.
type Model struct {
	dim      int
	cells    [3][3]float64
	initial  [3][3]float64
	row, col int
	stepIdx  int
	preset   int
	analysis spectral.Analysis
	showHelp bool
}

// NewModel starts the editor on the matrix from cfg.
func NewModel(cfg *config.Config) Model {
	m := Model{dim: cfg.Dim}
	for r := 0; r < cfg.Dim; r++ {
		for c := 0; c < cfg.Dim; c++ {
			m.cells[r][c] = cfg.Matrix[r][c]
		}
	}
	m.initial = m.cells
	m.recompute()
	return m
}

// RunInteractive launches the editor as a Bubble Tea program.
func RunInteractive(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key events; every matrix edit triggers a fresh
// decomposition (the engine is closed-form, so this is instant).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < m.dim-1 {
			m.row++
		}
	case "left", "h":
		if m.col > 0 {
			m.col--
		}
	case "right", "l":
		if m.col < m.dim-1 {
			m.col++
		}
	case "+", "=":
		m.cells[m.row][m.col] += editSteps[m.stepIdx]
		m.recompute()
	case "-", "_":
		m.cells[m.row][m.col] -= editSteps[m.stepIdx]
		m.recompute()
	case "0":
		m.cells[m.row][m.col] = 0
		m.recompute()
	case "n":
		m.cells[m.row][m.col] = -m.cells[m.row][m.col]
		m.recompute()
	case "s":
		m.stepIdx = (m.stepIdx + 1) % len(editSteps)
	case "d":
		if m.dim == 3 {
			m.dim = 2
		} else {
			m.dim = 3
		}
		m.clampCursor()
		m.recompute()
	case "p":
		m.loadNextPreset()
	case "r":
		m.cells = m.initial
		m.recompute()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) clampCursor() {
	if m.row >= m.dim {
		m.row = m.dim - 1
	}
	if m.col >= m.dim {
		m.col = m.dim - 1
	}
}

func (m *Model) loadNextPreset() {
	names := config.ListPresets()
	if len(names) == 0 {
		return
	}
	m.preset = (m.preset + 1) % len(names)
	cfg := config.GetPreset(names[m.preset])
	m.dim = cfg.Dim
	m.cells = [3][3]float64{}
	for r := 0; r < cfg.Dim; r++ {
		for c := 0; c < cfg.Dim; c++ {
			m.cells[r][c] = cfg.Matrix[r][c]
		}
	}
	m.initial = m.cells
	m.clampCursor()
	m.recompute()
}

func (m *Model) recompute() {
	if m.dim == 2 {
		m.analysis = spectral.Analyze2(linalg.Mat2{
			m.cells[0][0], m.cells[0][1],
			m.cells[1][0], m.cells[1][1],
		})
		return
	}
	var mat linalg.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			mat[r*3+c] = m.cells[r][c]
		}
	}
	m.analysis = spectral.Analyze3(mat)
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("eigenlab: %d×%d matrix", m.dim, m.dim)))
	sb.WriteString("\n\n")

	rows := make([][]float64, m.dim)
	for r := 0; r < m.dim; r++ {
		rows[r] = m.cells[r][:m.dim]
	}
	sb.WriteString(RenderMatrix(rows, m.row, m.col, true))
	sb.WriteString("\n")

	sb.WriteString(PanelStyle.Render(strings.TrimRight(
		RenderRoots(m.analysis.Roots)+"\n"+
			RenderObjects(m.analysis.Objects, m.analysis.UniformScaling), "\n")))
	sb.WriteString("\n")

	if m.showHelp {
		sb.WriteString(HelpStyle.Render(
			"arrows/hjkl: move  +/-: adjust  0: clear  n: negate  s: step (" +
				fmt.Sprintf("%g", editSteps[m.stepIdx]) + ")\n" +
				"d: 2×2/3×3  p: preset  r: reset  ?: help  q: quit"))
	} else {
		sb.WriteString(HelpStyle.Render("? for help  q to quit"))
	}
	sb.WriteString("\n")
	return sb.String()
}
