package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/eigenlab/internal/linalg"
)

const (
	DefaultDim        = 3
	DefaultSweepMin   = -3.0
	DefaultSweepMax   = 3.0
	DefaultSweepSteps = 61
)

var (
	// ErrBadDim indicates a matrix dimension other than 2 or 3.
	ErrBadDim = errors.New("config: dimension must be 2 or 3")

	// ErrBadMatrix indicates a coefficient grid whose shape does not match
	// the declared dimension.
	ErrBadMatrix = errors.New("config: matrix shape does not match dimension")

	// ErrNotFinite indicates a NaN or Inf coefficient.
	ErrNotFinite = errors.New("config: matrix coefficients must be finite")
)

// Config describes one analysis: the matrix under study and optional
// sweep settings.
type Config struct {
	Dim    int         `yaml:"dim"`
	Matrix [][]float64 `yaml:"matrix"`
	Sweep  SweepConfig `yaml:"sweep"`
}

// SweepConfig selects a single matrix entry and the range it is swept
// across.
type SweepConfig struct {
	Row   int     `yaml:"row"`
	Col   int     `yaml:"col"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Steps int     `yaml:"steps"`
}

func DefaultConfig() *Config {
	return &Config{
		Dim: DefaultDim,
		Matrix: [][]float64{
			{1, 0, 0},
			{0, 2, 0},
			{0, 0, 3},
		},
		Sweep: SweepConfig{
			Row:   0,
			Col:   0,
			Min:   DefaultSweepMin,
			Max:   DefaultSweepMax,
			Steps: DefaultSweepSteps,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks dimension, shape, and finiteness of the coefficients.
func (c *Config) Validate() error {
	if c.Dim != 2 && c.Dim != 3 {
		return fmt.Errorf("%w: got %d", ErrBadDim, c.Dim)
	}
	if len(c.Matrix) != c.Dim {
		return fmt.Errorf("%w: %d rows for dim %d", ErrBadMatrix, len(c.Matrix), c.Dim)
	}
	for r, row := range c.Matrix {
		if len(row) != c.Dim {
			return fmt.Errorf("%w: row %d has %d entries", ErrBadMatrix, r, len(row))
		}
	}
	switch c.Dim {
	case 2:
		m, _ := c.Mat2()
		if !m.IsFinite() {
			return ErrNotFinite
		}
	case 3:
		m, _ := c.Mat3()
		if !m.IsFinite() {
			return ErrNotFinite
		}
	}
	return nil
}

// Mat2 converts the coefficient grid to a Mat2.
func (c *Config) Mat2() (linalg.Mat2, error) {
	if c.Dim != 2 || len(c.Matrix) != 2 || len(c.Matrix[0]) != 2 || len(c.Matrix[1]) != 2 {
		return linalg.Mat2{}, ErrBadMatrix
	}
	return linalg.Mat2{
		c.Matrix[0][0], c.Matrix[0][1],
		c.Matrix[1][0], c.Matrix[1][1],
	}, nil
}

// Mat3 converts the coefficient grid to a Mat3.
func (c *Config) Mat3() (linalg.Mat3, error) {
	if c.Dim != 3 || len(c.Matrix) != 3 {
		return linalg.Mat3{}, ErrBadMatrix
	}
	var m linalg.Mat3
	for r := 0; r < 3; r++ {
		if len(c.Matrix[r]) != 3 {
			return linalg.Mat3{}, ErrBadMatrix
		}
		for col := 0; col < 3; col++ {
			m[r*3+col] = c.Matrix[r][col]
		}
	}
	return m, nil
}
