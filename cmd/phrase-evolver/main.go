package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/phrase-evolver/audio"
	"github.com/lixenwraith/phrase-evolver/config"
	"github.com/lixenwraith/phrase-evolver/genetic"
	"github.com/lixenwraith/phrase-evolver/genetic/persistence"
	"github.com/lixenwraith/phrase-evolver/metrics"
	"github.com/lixenwraith/phrase-evolver/parameter"
	"github.com/lixenwraith/phrase-evolver/render"
	"github.com/lixenwraith/phrase-evolver/status"
)

const (
	viewAuto   = "auto"
	viewText   = "text"
	viewScreen = "screen"
)

// options holds command-line flags
type options struct {
	fs *flag.FlagSet

	configPath     string
	target         string
	size           int
	rate           float64
	maxGenerations int
	seed           uint64
	selection      string
	crossover      string
	view           string
	metricsAddr    string
	chime          bool
	save           string
	resume         string
	debug          bool
}

func newOptions(fs *flag.FlagSet) *options {
	o := &options{fs: fs}
	fs.StringVar(&o.configPath, "config", "", "Path to a TOML configuration file")
	fs.StringVar(&o.target, "target", "", "Phrase to evolve toward")
	fs.IntVar(&o.size, "size", 0, "Population size")
	fs.Float64Var(&o.rate, "rate", 0, "Per-gene mutation rate (0-1)")
	fs.IntVar(&o.maxGenerations, "max-generations", 0, "Stop after N generations, 0 runs until convergence")
	fs.Uint64Var(&o.seed, "seed", 0, "Random seed, 0 for a random seed")
	fs.StringVar(&o.selection, "selection", "", "Parent selection: biased, tournament, roulette")
	fs.StringVar(&o.crossover, "crossover", "", "Crossover: single-point, uniform")
	fs.StringVar(&o.view, "view", viewAuto, "Output: auto, text, screen")
	fs.StringVar(&o.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	fs.BoolVar(&o.chime, "chime", false, "Play a chime on convergence")
	fs.StringVar(&o.save, "save", "", "Save the final population under this snapshot name")
	fs.StringVar(&o.resume, "resume", "", "Resume from the named snapshot")
	fs.BoolVar(&o.debug, "debug", false, "Write debug logs to "+filepath.Join(parameter.LogDir, parameter.LogFileName))
	return o
}

// loadConfig reads the config file when given, then applies flags that were set explicitly
func (o *options) loadConfig() (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}

	o.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "target":
			cfg.Target = o.target
		case "size":
			cfg.PopulationSize = o.size
		case "rate":
			cfg.MutationRate = o.rate
		case "max-generations":
			cfg.MaxGenerations = o.maxGenerations
		case "seed":
			cfg.Seed = o.seed
		case "selection":
			cfg.Selection = o.selection
		case "crossover":
			cfg.Crossover = o.crossover
		}
	})

	return cfg, cfg.Validate()
}

// useScreen resolves the view flag; auto picks the screen only on an interactive terminal
func useScreen(view string, interactive bool) (bool, error) {
	switch view {
	case viewAuto:
		return interactive, nil
	case viewText:
		return false, nil
	case viewScreen:
		return true, nil
	default:
		return false, fmt.Errorf("unknown view %q", view)
	}
}

// setupLogging routes the standard logger to a file in debug mode and discards it otherwise
// Returns the opened file, or nil when logging is disabled or the file cannot be created
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(parameter.LogDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(filepath.Join(parameter.LogDir, parameter.LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("phrase-evolver", flag.ContinueOnError)
	opts := newOptions(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	screenMode, err := useScreen(opts.view, term.IsTerminal(int(os.Stdout.Fd())))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	pop, err := genetic.NewPopulation(cfg.Population(), cfg.RNG())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create population: %v\n", err)
		return 1
	}
	pop.SetSelector(cfg.Selector())
	pop.SetCombiner(cfg.Combiner())

	manager := persistence.NewManager(cfg.SnapshotDir)
	if opts.resume != "" {
		dto, err := manager.Load(opts.resume)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load snapshot %s: %v\n", opts.resume, err)
			return 1
		}
		if err := dto.Restore(pop); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to restore snapshot %s: %v\n", opts.resume, err)
			return 1
		}
		log.Printf("resumed snapshot %s at generation %d", manager.FilePath(opts.resume), pop.Generation())
	}

	log.Printf("run %s: target=%q size=%d rate=%v max_generations=%d seed=%d selection=%s crossover=%s",
		pop.RunID(), cfg.Target, cfg.PopulationSize, cfg.MutationRate, cfg.MaxGenerations, cfg.Seed, cfg.Selection, cfg.Crossover)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sinks genetic.Sinks

	if opts.metricsAddr != "" {
		collector := metrics.NewCollector()
		sinks = append(sinks, collector)
		shutdown := serveMetrics(opts.metricsAddr, collector)
		defer shutdown()
	}

	if opts.chime {
		if player, err := audio.NewPlayer(); err == nil {
			sinks = append(sinks, player)
			defer func() {
				player.Wait(parameter.AudioDrainTimeout)
				player.Close()
			}()
		} else {
			// Non-fatal, evolution runs without sound
			log.Printf("audio initialization failed: %v", err)
		}
	}

	var result genetic.Result
	if screenMode {
		result, err = runScreen(ctx, pop, sinks)
	} else {
		text := render.NewTextSink(os.Stdout)
		pop.SetSink(append(sinks, text))
		result, err = pop.Run(ctx)
		if werr := text.Err(); werr != nil {
			log.Printf("output error: %v", werr)
		}
	}

	if opts.save != "" {
		if serr := manager.Save(opts.save, persistence.FromPopulation(pop)); serr != nil {
			fmt.Fprintf(os.Stderr, "Failed to save snapshot: %v\n", serr)
		} else {
			log.Printf("saved snapshot %s", manager.FilePath(opts.save))
		}
	}

	log.Printf("run %s finished: generation=%d converged=%t err=%v", result.RunID, result.Generation, result.Converged, err)

	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled), errors.Is(err, render.ErrQuit):
		fmt.Fprintf(os.Stderr, "Interrupted at generation %d\n", result.Generation)
		return 130
	default:
		fmt.Fprintf(os.Stderr, "Stopped: %v (best %q)\n", err, result.Best)
		return 1
	}
}

// runScreen evolves on a goroutine while the tcell view polls the status board
func runScreen(ctx context.Context, pop *genetic.Population, sinks genetic.Sinks) (genetic.Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return genetic.Result{}, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return genetic.Result{}, fmt.Errorf("init screen: %w", err)
	}

	board := status.NewBoard()
	pop.SetSink(append(sinks, board))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		result genetic.Result
		runErr error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		result, runErr = pop.Run(runCtx)
	}()

	viewErr := render.NewScreen(screen, board, pop.Target()).Run(runCtx, done)
	cancel()
	<-done
	screen.Fini()

	if errors.Is(viewErr, render.ErrQuit) {
		return result, viewErr
	}

	fmt.Println(render.FormatEvent(genetic.Event{
		Generation: result.Generation,
		Phrase:     result.Best,
		Final:      result.Converged,
	}))
	return result, runErr
}

// serveMetrics starts the metrics endpoint and returns its shutdown function
func serveMetrics(addr string, collector *metrics.Collector) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Printf("metrics listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server: %v", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}
}
