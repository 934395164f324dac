package config

import "sort"

// Presets holds named example matrices covering the interesting spectral
// cases: distinct real eigenvalues, repeated defective ones, invariant
// planes, and complex spectra.
var Presets = map[string]*Config{
	"identity": {
		Dim:    3,
		Matrix: [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	},
	"diag123": {
		Dim:    3,
		Matrix: [][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}},
	},
	"plane_scale": {
		Dim:    3,
		Matrix: [][]float64{{2, 0, 0}, {0, 2, 0}, {0, 0, 5}},
	},
	"defective": {
		Dim:    3,
		Matrix: [][]float64{{2, 1, 0}, {0, 2, 1}, {0, 0, 2}},
	},
	"rotation_z": {
		Dim: 3,
		Matrix: [][]float64{
			{0.8660254037844387, -0.5, 0},
			{0.5, 0.8660254037844387, 0},
			{0, 0, 1},
		},
	},
	"projection_xy": {
		Dim:    3,
		Matrix: [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 0}},
	},
	"shear": {
		Dim:    2,
		Matrix: [][]float64{{1, 0.5}, {0, 1}},
	},
	"rotation45": {
		Dim: 2,
		Matrix: [][]float64{
			{0.7071067811865476, -0.7071067811865476},
			{0.7071067811865476, 0.7071067811865476},
		},
	},
	"saddle": {
		Dim:    2,
		Matrix: [][]float64{{3, 0}, {0, -2}},
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	cp.Matrix = make([][]float64, len(p.Matrix))
	for i, row := range p.Matrix {
		cp.Matrix[i] = append([]float64(nil), row...)
	}
	if cp.Sweep.Steps == 0 {
		cp.Sweep = DefaultConfig().Sweep
	}
	return &cp
}

// ListPresets returns all preset names sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
