package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// DefaultBestFile is the best-ever score file name.
const DefaultBestFile = "high_score.txt"

// BestFile keeps the best-ever score as a single integer in a text file.
// It is safe for concurrent use within one process; separate processes
// only get the re-read-before-write check.
type BestFile struct {
	mu   sync.Mutex
	path string
}

// OpenBestFile opens the score file at path, creating it with "0" if it
// does not exist yet.
func OpenBestFile(path string) (*BestFile, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("0"), 0o644); err != nil {
			return nil, fmt.Errorf("storage: cannot create %s: %w", path, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("storage: cannot stat %s: %w", path, err)
	}

	return &BestFile{path: path}, nil
}

// Path returns the file location.
func (b *BestFile) Path() string {
	return b.path
}

// Load returns the stored best. Missing, unreadable, corrupt or negative
// content counts as 0.
func (b *BestFile) Load() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.read()
}

// SaveIfHigher writes best if it is higher than the value currently on
// disk, re-reading the file first so a higher value written by another run
// is not clobbered.
func (b *BestFile) SaveIfHigher(best int) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if best <= b.read() {
		return false, nil
	}

	// Write to a temp file and rename so readers never see a partial value.
	tmp, err := os.CreateTemp(filepath.Dir(b.path), ".high_score-*")
	if err != nil {
		return false, fmt.Errorf("storage: cannot save best score: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(best)); err != nil {
		tmp.Close()
		return false, fmt.Errorf("storage: cannot save best score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("storage: cannot save best score: %w", err)
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return false, fmt.Errorf("storage: cannot save best score: %w", err)
	}

	return true, nil
}

func (b *BestFile) read() int {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
