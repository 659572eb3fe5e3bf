package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/desert-nomad/internal/config"
	"github.com/vovakirdan/desert-nomad/internal/games/nomad"
)

var (
	flagSimRuns    int
	flagSimMinutes float64
	flagSimCols    int
	flagSimRows    int
	flagSimCalm    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot sessions",
	Long: `Run sessions without a terminal, driven by a simple autopilot that
jumps ground obstacles and ducks tumbleweeds. Useful for checking how a
config plays before trying it by hand. Logs go to stderr, results to
stdout.

Examples:
  nomad sim
  nomad sim --runs 20 --seed 7
  nomad sim --difficulty hard --log-level debug
  nomad sim --config ./my-nomad.yaml --minutes 10`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 5, "Number of sessions")
	simCmd.Flags().Float64Var(&flagSimMinutes, "minutes", 5, "Simulated time limit per session")
	simCmd.Flags().IntVar(&flagSimCols, "cols", 80, "Viewport width in terminal cells")
	simCmd.Flags().IntVar(&flagSimRows, "rows", 24, "Viewport height in terminal cells")
	simCmd.Flags().BoolVar(&flagSimCalm, "calm", false, "Disable weather")
}

// autopilot is a simple bot. It looks ahead a number of ticks scaled by
// the scroll speed.
type autopilot struct {
	jumpLead float64 // Ticks ahead at which a ground obstacle is jumped
	duckLead float64 // Ticks ahead at which a tumbleweed is ducked
}

func newAutopilot() autopilot {
	return autopilot{jumpLead: 8, duckLead: 20}
}

// decide returns the inputs for the next tick.
func (a autopilot) decide(snap nomad.Snapshot) (jump, duck bool) {
	p := snap.Player
	if p.InHazard {
		return true, false
	}

	speed := snap.Speed * snap.Effects.SpeedMod
	front := p.X + p.Width
	for _, o := range snap.Obstacles {
		if !o.Active || o.X+o.Width < p.X {
			continue
		}
		dist := o.X - front
		if o.Kind == nomad.KindTumbleweed {
			if dist <= speed*a.duckLead {
				duck = true
			}
			continue
		}
		if p.Grounded && dist >= 0 && dist <= speed*a.jumpLead {
			jump = true
		}
	}
	if duck {
		jump = false
	}
	return jump, duck
}

// simResult summarizes one headless session.
type simResult struct {
	Seed     int64
	Score    int
	Elapsed  float64 // Milliseconds
	GameOver bool
	HitKind  nomad.ObstacleKind
	Weather  nomad.WeatherKind
	Tier     string
	Jumps    int
}

// simulate plays one session with the autopilot until the run ends or
// limitMs of simulated time have passed.
func simulate(cfg config.NomadConfig, seed int64, dtMs, limitMs float64, cols, rows int, logger *log.Logger) simResult {
	s := nomad.NewSession(nomad.Options{
		Config:  cfg,
		Seed:    seed,
		Width:   float64(cols) * cfg.Viewport.CellWidth,
		Height:  float64(rows) * cfg.Viewport.CellHeight,
		Records: &nomad.MemoryRecords{Tutorial: true},
		Logger:  logger,
	})

	pilot := newAutopilot()
	jumps := 0
	for !s.GameOver() && s.Elapsed() < limitMs {
		jump, duck := pilot.decide(s.Snapshot())
		if jump && s.Jump() != nomad.JumpNone {
			jumps++
		}
		s.Duck(duck)
		s.Tick(dtMs)
	}

	snap := s.Snapshot()
	return simResult{
		Seed:     seed,
		Score:    snap.Score,
		Elapsed:  snap.Elapsed,
		GameOver: snap.GameOver,
		HitKind:  snap.HitKind,
		Weather:  snap.Weather.Kind,
		Tier:     snap.Tier.Label,
		Jumps:    jumps,
	}
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, flagLogLevel)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSimCalm {
		cfg.Weather.Enabled = false
	}
	if flagSimRuns < 1 {
		return fmt.Errorf("--runs must be at least 1")
	}
	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	dt := 1000.0 / float64(fps)
	limit := flagSimMinutes * float64(time.Minute/time.Millisecond)

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	results := make([]simResult, 0, flagSimRuns)
	for i := 0; i < flagSimRuns; i++ {
		seed := base + int64(i)
		res := simulate(cfg, seed, dt, limit, flagSimCols, flagSimRows, logger.With("run", i+1))
		logger.Info("run finished", "run", i+1, "seed", seed, "score", res.Score, "over", res.GameOver)
		results = append(results, res)
	}

	printSimResults(cmd.OutOrStdout(), results)
	return nil
}

// printSimResults writes one row per session and a summary line.
func printSimResults(out io.Writer, results []simResult) {
	fmt.Fprintf(out, "  %-4s  %-20s  %-8s  %-8s  %-10s  %-10s  %s\n", "Run", "Seed", "Score", "Time", "Tier", "Weather", "Ended by")
	fmt.Fprintf(out, "  %-4s  %-20s  %-8s  %-8s  %-10s  %-10s  %s\n", "---", "----", "-----", "----", "----", "-------", "--------")

	total, best, deaths := 0, 0, 0
	for i, r := range results {
		ended := "time limit"
		if r.GameOver {
			ended = r.HitKind.String()
			deaths++
		}
		secs := fmt.Sprintf("%.1fs", r.Elapsed/1000)
		fmt.Fprintf(out, "  %-4d  %-20d  %-8d  %-8s  %-10s  %-10s  %s\n", i+1, r.Seed, r.Score, secs, r.Tier, r.Weather, ended)

		total += r.Score
		best = max(best, r.Score)
	}

	fmt.Fprintln(out)
	if len(results) > 0 {
		fmt.Fprintf(out, "Average: %d  Best: %d  Deaths: %d/%d\n", total/len(results), best, deaths, len(results))
	}
}
