package schedulefile

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"herald/internal/ports/output"
)

// Ensure Store implements the output.ScheduleStore port.
var _ output.ScheduleStore = (*Store)(nil)

// Store reads schedule files from a directory. A file that does not exist
// yields empty content; optional categories may have no file at all.
type Store struct {
	fs  afero.Fs
	dir string
}

func NewStore(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

func (s *Store) Read(_ context.Context, name string) (string, error) {
	b, err := afero.ReadFile(s.fs, filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(b), nil
}

// Path returns the on-disk location of a named schedule file, for watching.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}
