package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/eigenlab/internal/spectral"
	"github.com/san-kum/eigenlab/internal/storage"
)

// Document is the JSON export shape for one saved run.
type Document struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Dim             int            `json:"dim"`
	Matrix          [][]float64    `json:"matrix"`
	RealEigenvalues []float64      `json:"real_eigenvalues"`
	UniformScaling  bool           `json:"uniform_scaling"`
	Objects         []ObjectRecord `json:"objects"`
}

// ObjectRecord is one invariant object in export form.
type ObjectRecord struct {
	Kind       string     `json:"kind"`
	Axis       [3]float64 `json:"axis"`
	Eigenvalue float64    `json:"eigenvalue"`
}

func toRecords(objs []spectral.Object) []ObjectRecord {
	records := make([]ObjectRecord, 0, len(objs))
	for _, o := range objs {
		records = append(records, ObjectRecord{
			Kind:       o.Kind.String(),
			Axis:       [3]float64(o.Axis),
			Eigenvalue: o.Eigenvalue,
		})
	}
	return records
}

// WriteJSON emits a run with its objects as indented JSON.
func WriteJSON(w io.Writer, meta storage.RunMetadata, objs []spectral.Object) error {
	doc := Document{
		ID:              meta.ID,
		Name:            meta.Name,
		Dim:             meta.Dim,
		Matrix:          meta.Matrix,
		RealEigenvalues: meta.RealEigenvalues,
		UniformScaling:  meta.UniformScaling,
		Objects:         toRecords(objs),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteCSV emits the object list as CSV with a header row.
func WriteCSV(w io.Writer, objs []spectral.Object) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"kind", "x", "y", "z", "eigenvalue"}); err != nil {
		return err
	}
	for _, o := range objs {
		row := []string{
			o.Kind.String(),
			strconv.FormatFloat(o.Axis[0], 'f', 6, 64),
			strconv.FormatFloat(o.Axis[1], 'f', 6, 64),
			strconv.FormatFloat(o.Axis[2], 'f', 6, 64),
			strconv.FormatFloat(o.Eigenvalue, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
