package testutil

import (
	"testing"

	"github.com/kasuganosora/charsheet/game/player"
	"github.com/kasuganosora/charsheet/model"
	"github.com/kasuganosora/charsheet/savefile"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// NewMemStore creates a Store on an in-memory filesystem.
// The filesystem is returned so tests can inspect what was written.
func NewMemStore(t *testing.T, opts savefile.Options) (*savefile.Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return savefile.NewStore(fs, zaptest.NewLogger(t), opts), fs
}

// NewOSStore creates a Store on the host filesystem rooted at a fresh temp
// directory, which is returned alongside it.
func NewOSStore(t *testing.T, opts savefile.Options) (*savefile.Store, string) {
	t.Helper()
	return savefile.NewOSStore(zaptest.NewLogger(t), opts), t.TempDir()
}

// NewCharacter creates a character via the factory and fails the test on error.
func NewCharacter(t *testing.T, name, class string) *model.Character {
	t.Helper()
	c, err := player.NewCharacter(name, class)
	require.NoError(t, err, "NewCharacter(%q, %q)", name, class)
	return c
}
