package main

import (
	"testing"

	"github.com/kasuganosora/charsheet/config"
	"github.com/kasuganosora/charsheet/game/player"
	"github.com/kasuganosora/charsheet/savefile"
	"github.com/kasuganosora/charsheet/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRun_SavesLevelOneCharacter(t *testing.T) {
	store, _ := testutil.NewMemStore(t, savefile.Options{})
	cfg := &config.Config{
		Save: config.SaveConfig{Path: "/saves/aria.txt"},
		Demo: config.DemoConfig{Name: "Aria", Class: "mage"},
	}

	require.NoError(t, run(cfg, store, zaptest.NewLogger(t)))

	// The level-up happens after the save.
	saved, err := store.Load(cfg.Save.Path)
	require.NoError(t, err)
	assert.Equal(t, testutil.NewCharacter(t, "Aria", "mage"), saved)
}

func TestRun_UnknownClass(t *testing.T) {
	store, _ := testutil.NewMemStore(t, savefile.Options{})
	cfg := &config.Config{
		Save: config.SaveConfig{Path: "/saves/x.txt"},
		Demo: config.DemoConfig{Name: "X", Class: "bard"},
	}
	assert.ErrorIs(t, run(cfg, store, zaptest.NewLogger(t)), player.ErrUnknownClass)
}

func TestRun_EmptySavePath(t *testing.T) {
	store, _ := testutil.NewMemStore(t, savefile.Options{})
	cfg := &config.Config{Demo: config.DemoConfig{Name: "Aria", Class: "mage"}}
	assert.ErrorIs(t, run(cfg, store, zaptest.NewLogger(t)), savefile.ErrEmptyPath)
}
