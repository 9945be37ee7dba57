package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/akathpalia/kmrsim/internal/config"
)

// ExportData is the full-run JSON shape consumed by external plotting
// tools: the config alongside the aligned mass/strain columns.
type ExportData struct {
	ID        string        `json:"id"`
	Config    config.Config `json:"config"`
	Points    int           `json:"points"`
	Masses    []float64     `json:"masses"`
	Strains   []float64     `json:"strains"`
	MinStrain float64       `json:"min_strain"`
	MaxStrain float64       `json:"max_strain"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, masses, strains []float64) error {
	data := ExportData{
		ID:        meta.ID,
		Config:    meta.Config,
		Points:    len(masses),
		Masses:    masses,
		Strains:   strains,
		MinStrain: meta.MinStrain,
		MaxStrain: meta.MaxStrain,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func ExportJSONFile(path string, meta *RunMetadata, masses, strains []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ExportJSON(file, meta, masses, strains)
}
