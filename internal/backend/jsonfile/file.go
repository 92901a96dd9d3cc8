package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"todo/internal/service"
)

// ErrCorrupt is returned when the task file exists but is not a JSON array of tasks.
var ErrCorrupt = errors.New("task file is not valid JSON")

const filePerm = 0o644

// Load reads the task list from path.
// A missing file is an empty list, not an error.
func Load(path string) ([]service.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []service.Task{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var tasks []service.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	if tasks == nil {
		tasks = []service.Task{}
	}
	return tasks, nil
}

// Save overwrites path with the whole list, indented by two spaces.
// The file is replaced atomically.
func Save(path string, tasks []service.Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Encode renders tasks in the on-disk format. A nil list encodes as [].
func Encode(tasks []service.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []service.Task{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return nil, fmt.Errorf("failed to encode tasks: %w", err)
	}
	return buf.Bytes(), nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
