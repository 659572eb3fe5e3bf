package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/desert-nomad/internal/platform/tui"
	"github.com/vovakirdan/desert-nomad/internal/registry"
)

const defaultVariant = "nomad"

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Start a run",
	Long: `Start a run of the given variant, nomad by default.

Controls:
  Space/W/Up   - Jump (press again in the air to double jump)
  S/Down       - Duck
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Wider gaps and a slower weather ramp
  normal - The config as loaded
  hard   - Faster tiers and a quicker weather ramp
  fixed  - No progression, stays in the first tier

Examples:
  nomad play
  nomad play nomad_calm
  nomad play --difficulty hard
  nomad play --config ./my-nomad.yaml --log-file ./nomad.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultVariant
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if the variant exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'nomad list' to see available variants", gameID)
	}

	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog := interactiveLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sound := startAudio(gameCfg.Audio, logger)
	defer sound.Cleanup()

	wireGame(gameID, store, sound, logger)
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	cfg := runtimeConfig()
	logger.Info("starting run", "variant", gameID, "seed", cfg.Seed, "difficulty", flagDifficulty)
	if err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
