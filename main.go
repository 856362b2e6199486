package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kasuganosora/charsheet/config"
	"github.com/kasuganosora/charsheet/game/player"
	"github.com/kasuganosora/charsheet/logging"
	"github.com/kasuganosora/charsheet/savefile"
	"github.com/kasuganosora/charsheet/sheet"
	"go.uber.org/zap"
)

const cfgPath = "config/config.yaml"

func main() {
	// .env is optional; it only feeds CHARSHEET_* overrides.
	envErr := godotenv.Load()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// ---- Logger ----
	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Debug(".env not loaded", zap.Error(envErr))
	}

	store := savefile.NewOSStore(logger, savefile.Options{
		LegacyIncompleteCheck: cfg.Save.LegacyIncompleteCheck,
	})

	if err := run(cfg, store, logger); err != nil {
		logger.Error("demo failed", zap.Error(err))
		logger.Sync()
		log.Fatal(err)
	}
}

// run creates, shows, saves, reloads, and levels up the demo character.
func run(cfg *config.Config, store *savefile.Store, logger *zap.Logger) error {
	char, err := player.NewCharacter(cfg.Demo.Name, cfg.Demo.Class)
	if err != nil {
		return err
	}
	logger.Info("character created",
		zap.String("name", char.Name),
		zap.Stringer("class", char.Class))
	sheet.Print(char)

	if err := store.Save(char, cfg.Save.Path); err != nil {
		return err
	}
	logger.Info("character saved", zap.String("path", cfg.Save.Path))

	loaded, err := store.Load(cfg.Save.Path)
	if err != nil {
		return err
	}
	sheet.Print(loaded)

	player.LevelUp(loaded)
	logger.Info("level up", zap.Int("level", loaded.Level))
	sheet.Print(loaded)
	return nil
}
