package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/modsentry/modsentry/internal/domain"
)

const historyFile = ".modsentry/history/analyses.json"

// FileHistory implements domain.AnalysisHistory using JSON file storage.
type FileHistory struct{}

// New creates a FileHistory.
func New() *FileHistory {
	return &FileHistory{}
}

// Save appends an analysis entry to the history under dir.
func (h *FileHistory) Save(dir string, entry domain.AnalysisEntry) error {
	entries, err := h.Load(dir)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := filepath.Join(dir, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

// Load reads the analysis history under dir. No history is not an error.
func (h *FileHistory) Load(dir string) ([]domain.AnalysisEntry, error) {
	fp := filepath.Join(dir, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.AnalysisEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
