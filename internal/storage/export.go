package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	ID          string             `json:"id"`
	Width       int                `json:"width"`
	Height      int                `json:"height"`
	Pattern     string             `json:"pattern,omitempty"`
	Seed        int64              `json:"seed"`
	Epochs      int                `json:"epochs"`
	Stable      bool               `json:"stable"`
	Populations []int              `json:"populations"`
	Metrics     map[string]float64 `json:"metrics,omitempty"`
	FinalField  string             `json:"final_field,omitempty"`
}

// ExportJSON writes a full run export to w.
func ExportJSON(w io.Writer, meta *RunMetadata, populations []int, finalField string) error {
	data := ExportData{
		ID:          meta.ID,
		Width:       meta.Width,
		Height:      meta.Height,
		Pattern:     meta.Pattern,
		Seed:        meta.Seed,
		Epochs:      meta.Epochs,
		Stable:      meta.Stable,
		Populations: populations,
		Metrics:     meta.Metrics,
		FinalField:  finalField,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
