// Package storage persists analysis runs under a data directory, one
// subdirectory per run holding metadata.json and objects.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/eigenlab/internal/linalg"
	"github.com/san-kum/eigenlab/internal/spectral"
)

// ErrRunNotFound indicates an unknown run id.
var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata summarizes one saved analysis.
type RunMetadata struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Timestamp       time.Time   `json:"timestamp"`
	Dim             int         `json:"dim"`
	Matrix          [][]float64 `json:"matrix"`
	RealEigenvalues []float64   `json:"real_eigenvalues"`
	Lines           int         `json:"lines"`
	Planes          int         `json:"planes"`
	UniformScaling  bool        `json:"uniform_scaling"`
}

// Save stores one analysis and returns its run id.
func (s *Store) Save(name string, matrix [][]float64, a spectral.Analysis) (string, error) {
	runID := fmt.Sprintf("%s_%d", name, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:              runID,
		Name:            name,
		Timestamp:       time.Now(),
		Dim:             a.Dim,
		Matrix:          matrix,
		RealEigenvalues: a.RealEigenvalues(),
		Lines:           a.CountKind(spectral.Line),
		Planes:          a.CountKind(spectral.Plane),
		UniformScaling:  a.UniformScaling,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "objects.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"kind", "x", "y", "z", "eigenvalue"}); err != nil {
		return "", err
	}
	for _, o := range a.Objects {
		row := []string{
			o.Kind.String(),
			strconv.FormatFloat(o.Axis[0], 'f', 9, 64),
			strconv.FormatFloat(o.Axis[1], 'f', 9, 64),
			strconv.FormatFloat(o.Axis[2], 'f', 9, 64),
			strconv.FormatFloat(o.Eigenvalue, 'f', 9, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for every saved run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue // skip corrupt entries
		}
		runs = append(runs, meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

// Load reads the metadata of one run.
func (s *Store) Load(runID string) (RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return RunMetadata{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return RunMetadata{}, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return RunMetadata{}, err
	}
	return meta, nil
}

// LoadObjects reads the invariant objects of one run.
func (s *Store) LoadObjects(runID string) ([]spectral.Object, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "objects.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	var objs []spectral.Object
	for i, row := range rows {
		if i == 0 || len(row) != 5 {
			continue
		}
		var o spectral.Object
		if row[0] == "plane" {
			o.Kind = spectral.Plane
		}
		var axis linalg.Vec3
		for j := 0; j < 3; j++ {
			axis[j], err = strconv.ParseFloat(row[j+1], 64)
			if err != nil {
				return nil, err
			}
		}
		o.Axis = axis
		o.Eigenvalue, err = strconv.ParseFloat(row[4], 64)
		if err != nil {
			return nil, err
		}
		objs = append(objs, o)
	}
	return objs, nil
}
