// Package storage persists completed runs: one directory per run with
// metadata, the population history, and a snapshot of the final field.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/lifelab/internal/config"
	"github.com/san-kum/lifelab/internal/life"
	"github.com/san-kum/lifelab/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Timestamp   time.Time          `json:"timestamp"`
	Width       int                `json:"width"`
	Height      int                `json:"height"`
	Pattern     string             `json:"pattern,omitempty"`
	Probability float64            `json:"probability,omitempty"`
	Seed        int64              `json:"seed"`
	Epochs      int                `json:"epochs"`
	Stable      bool               `json:"stable"`
	Population  int                `json:"population"`
	Metrics     map[string]float64 `json:"metrics,omitempty"`
}

// Save writes a run directory: metadata.json, population.csv with one
// row per epoch, and final.txt holding the last field state.
func (s *Store) Save(cfg *config.Config, f *life.Field, result *sim.Result) (string, error) {
	if err := s.Init(); err != nil {
		return "", err
	}

	name := cfg.Pattern
	if name == "" {
		name = "soup"
	}

	// Batch runs save back to back, so a timestamp alone can collide;
	// claim the directory with Mkdir and suffix until it is ours.
	base := fmt.Sprintf("%s_%d", name, time.Now().UnixNano())
	runID := base
	runDir := filepath.Join(s.baseDir, runID)
	for i := 1; ; i++ {
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			break
		}
		if !os.IsExist(err) {
			return "", err
		}
		runID = fmt.Sprintf("%s_%d", base, i)
		runDir = filepath.Join(s.baseDir, runID)
	}

	meta := RunMetadata{
		ID:          runID,
		Timestamp:   time.Now(),
		Width:       cfg.Width,
		Height:      cfg.Height,
		Pattern:     cfg.Pattern,
		Probability: cfg.Probability,
		Seed:        cfg.Seed,
		Epochs:      result.Epochs,
		Stable:      result.Stable,
		Population:  f.Population(),
		Metrics:     result.Metrics,
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

	csvFile, err := os.Create(filepath.Join(runDir, "population.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"epoch", "population"}); err != nil {
		return "", err
	}
	for epoch, pop := range result.Populations {
		row := []string{strconv.Itoa(epoch), strconv.Itoa(pop)}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	if err := os.WriteFile(filepath.Join(runDir, "final.txt"), []byte(f.String()), 0644); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadPopulations reads the per-epoch population history of a run.
func (s *Store) LoadPopulations(runID string) ([]int, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "population.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	pops := make([]int, 0, len(records))
	for i := 1; i < len(records); i++ {
		if len(records[i]) < 2 {
			continue
		}
		pop, err := strconv.Atoi(records[i][1])
		if err != nil {
			continue
		}
		pops = append(pops, pop)
	}
	return pops, nil
}

// LoadFinalField reads the stored snapshot of a run's last field state.
func (s *Store) LoadFinalField(runID string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "final.txt"))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
