// Command ls-orrery is a terminal UI rendering an animated solar-system
// orrery: the Sun, nine planets, a handful of moons, and a starfield.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
	"golang.org/x/time/rate"

	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/orrery"
	"github.com/litescript/ls-orrery/internal/state"
	"github.com/litescript/ls-orrery/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	watchInterval time.Duration
	snapshotPath  string
	frameCount    int
)

const (
	defaultFPS = 30
	minFPS     = 5
	maxFPS     = 60
)

func main() {
	seed := flag.Uint64("seed", 0, "Scene seed (0 = derive from current time)")
	stars := flag.Int("stars", orrery.DefaultStarCount, "Starfield size (0-500)")
	fps := flag.Int("fps", defaultFPS, "Frame cadence for the TUI (5-60)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Write logs to file (required for TUI debug logs)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.IntVar(&frameCount, "frames", 0, "Advance N frames before headless output (alone, implies -summary)")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON snapshot to file (use - for stdout)")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat headless output at interval (e.g., 2s)")
	flag.Parse()

	if *fps < minFPS {
		*fps = minFPS
	} else if *fps > maxFPS {
		*fps = maxFPS
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	summaryMode = resolveSummary(summaryMode, snapshotPath, frameCount)

	// Set up logging. The TUI owns the terminal, so stderr logging is
	// only safe in headless modes; with no -log-file the TUI discards.
	headless := summaryMode || snapshotPath != ""
	var logger *logging.Logger
	if *logFile != "" {
		l, err := logging.NewFile(logging.ParseLevel(*logLevel), *logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer l.Close()
		logger = l
	} else if headless {
		logger = logging.New(logging.ParseLevel(*logLevel))
	} else {
		logger = logging.Discard()
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Initialize components
	stateCfg := state.DefaultConfig()
	stateCfg.StarCount = *stars
	stateMgr := state.NewManager(stateCfg)

	scene := orrery.Build(orrery.Config{
		StarCount: stateMgr.StarCount(),
		Seed:      *seed,
	})
	logger.Debug("Scene built: %d bodies, %d stars, seed %d", scene.Len(), scene.StarCount(), *seed)

	if headless {
		runHeadless(ctx, scene, stateMgr, logger.With("headless"))
		return
	}

	frameInterval := time.Second / time.Duration(*fps)
	model := ui.New(scene, stateMgr, frameInterval)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// resolveSummary decides whether the summary table prints. -frames with
// no output flag would otherwise advance the scene and exit silently,
// so it defaults to the summary unless a snapshot was asked for.
func resolveSummary(summary bool, snapshotPath string, frames int) bool {
	return summary || (frames > 0 && snapshotPath == "")
}

// runHeadless handles the summary and snapshot modes without a TUI. With
// -watch the output repeats at the given interval, each round advancing
// the scene by the configured frame count.
func runHeadless(ctx context.Context, scene *orrery.Scene, stateMgr *state.Manager, logger *logging.Logger) {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	outputOnce := func() error {
		if frameCount > 0 {
			motion := stateMgr.Motion()
			start := time.Now()
			for i := 0; i < frameCount; i++ {
				scene.Advance(motion)
			}
			if motion.Enabled {
				stateMgr.RecordAdvance(time.Since(start))
			}
			logger.Debug("Advanced %d frames in %v", frameCount, time.Since(start))
		}

		now := time.Now()

		if snapshotPath != "" {
			snap := stateMgr.Snapshot()
			export := orrery.ExportScene(scene, orrery.PropertiesExport{
				MovementEnabled: snap.MovementEnabled,
				PlanetSpeed:     snap.PlanetSpeed,
				MoonSpeed:       snap.MoonSpeed,
				StarCount:       scene.StarCount(),
			}, now)

			if snapshotPath == "-" {
				if err := export.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(snapshotPath)
				if err != nil {
					return fmt.Errorf("create snapshot file: %w", err)
				}
				defer f.Close()
				if err := export.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
			}
		}

		if summaryMode {
			orrery.WriteSummaryTable(os.Stdout, scene, now)
		}

		return nil
	}

	// Single run
	if watchInterval == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: a rate limiter paces the rounds so slow output never
	// compounds the interval.
	limiter := rate.NewLimiter(rate.Every(watchInterval), 1)
	first := true
	for {
		if err := limiter.Wait(ctx); err != nil {
			return
		}
		if !first && isTTY {
			fmt.Println() // Blank line between rounds on a terminal
		}
		first = false
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}
