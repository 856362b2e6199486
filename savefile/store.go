package savefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kasuganosora/charsheet/model"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	tempPattern             = ".charsheet-*.tmp"
	defaultMode os.FileMode = 0o644
)

// Store saves and loads character files on a filesystem.
type Store struct {
	fs     afero.Fs
	opts   Options
	logger *zap.Logger
}

// NewStore creates a Store on fs.
func NewStore(fs afero.Fs, logger *zap.Logger, opts Options) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{fs: fs, opts: opts, logger: logger}
}

// NewOSStore creates a Store on the host filesystem.
func NewOSStore(logger *zap.Logger, opts Options) *Store {
	return NewStore(afero.NewOsFs(), logger, opts)
}

// Save writes c to path, replacing any existing file.
// The directory containing path (the working directory if path has none)
// must be writable; otherwise ErrNotWritable is returned and nothing is written.
func (s *Store) Save(c *model.Character, path string) error {
	if c == nil {
		return ErrNilCharacter
	}
	if path == "" {
		return ErrEmptyPath
	}

	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(s.fs, dir, tempPattern)
	if err != nil {
		s.logger.Debug("save target not writable", zap.String("dir", dir), zap.Error(err))
		return fmt.Errorf("%w: %s: %w", ErrNotWritable, dir, err)
	}
	tmpName := tmp.Name()

	if err := Encode(tmp, c); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return fmt.Errorf("savefile: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("savefile: close %s: %w", path, err)
	}
	// TempFile creates 0600 files; keep the target's mode or use the usual default.
	mode := defaultMode
	if fi, err := s.fs.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := s.fs.Chmod(tmpName, mode); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("savefile: chmod %s: %w", path, err)
	}
	if err := s.fs.Rename(tmpName, path); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("savefile: rename %s: %w", path, err)
	}

	s.logger.Debug("character saved",
		zap.String("path", path),
		zap.String("name", c.Name),
		zap.Int("level", c.Level))
	return nil
}

// Load reads the character stored at path.
// It returns ErrNotFound when path does not exist and ErrIncomplete when the
// file lacks required labels. A malformed numeric field yields a *FieldError.
func (s *Store) Load(path string) (*model.Character, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("savefile: open %s: %w", path, err)
	}
	defer f.Close()

	c, err := Decode(f, s.opts)
	if err != nil {
		s.logger.Debug("character load failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	s.logger.Debug("character loaded",
		zap.String("path", path),
		zap.String("name", c.Name),
		zap.Int("level", c.Level))
	return c, nil
}
