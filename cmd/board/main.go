package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/savanna-tactics/boardcore/internal/config"
	"github.com/savanna-tactics/boardcore/internal/game/core"
	"github.com/savanna-tactics/boardcore/internal/game/events/subscribers"
	"github.com/savanna-tactics/boardcore/internal/game/session"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	showDistances := flag.Bool("distances", true, "Print the distance field after the board")
	watch := flag.Bool("watch", false, "Rebuild the board whenever the config file changes")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("APP_ENV")); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}

	cfg := config.Get()
	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}
	setupLogging(*logLevel, cfg.Log.Format)

	if err := run(cfg, os.Stdout, *showDistances); err != nil {
		log.Fatal().Err(err).Msg("Failed to build board")
	}
	if !*watch {
		return
	}

	reload := make(chan *config.Config, 1)
	config.WatchConfig(func(c *config.Config, err error) {
		if err != nil {
			log.Error().Err(err).Msg("Ignoring invalid config change")
			return
		}
		select {
		case reload <- c:
		default:
		}
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	log.Info().Str("file", config.ConfigFilePath()).Msg("Watching config for changes")

	for {
		select {
		case c := <-reload:
			if err := run(c, os.Stdout, *showDistances); err != nil {
				log.Error().Err(err).Msg("Failed to rebuild board")
			}
		case sig := <-sigCh:
			log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			return
		}
	}
}

// run builds a session from cfg, starts it and writes the board summary.
func run(cfg *config.Config, out io.Writer, showDistances bool) error {
	src, err := boardSource(cfg.Board)
	if err != nil {
		return err
	}

	routine := zerolog.DebugLevel
	if cfg.Development.VerboseEvents {
		routine = zerolog.InfoLevel
	}
	eventLog := subscribers.NewLoggerSubscriber("cli-event-logger", log.Logger, routine)
	eventLog.SetDevMode(cfg.Development.VerboseEvents)

	s, err := session.Open(src, log.Logger, eventLog)
	if err != nil {
		return err
	}
	if err := s.Start(headquarters(cfg.Board.Headquarters)); err != nil {
		return err
	}

	printSummary(out, s, cfg.Board.Render, showDistances)
	return nil
}

func printSummary(out io.Writer, s *session.Session, render config.RenderConfig, showDistances bool) {
	b := s.Board()

	passable, farthest := 0, 0
	for i := range b.C {
		cell := &b.C[i]
		if cell.IsVoid() {
			continue
		}
		passable++
		if cell.IsReached() && cell.MinDistToHQ > farthest {
			farthest = cell.MinDistToHQ
		}
	}

	fmt.Fprintf(out, "Session %s\n\n", s.ID())
	fmt.Fprint(out, b.String())
	if showDistances {
		fmt.Fprintln(out)
		fmt.Fprint(out, b.DistanceString())
	}
	fmt.Fprintln(out)

	hq := s.HQ()
	wx, wy := b.Mapper().CellCenter(hq, render.CellSize, render.OffsetX, render.OffsetY)
	fmt.Fprintf(out, "Board: %d x %d, %s passable cells\n", b.W, b.H, humanize.Comma(int64(passable)))
	fmt.Fprintf(out, "HQ: %s, external %s, world (%.2f, %.2f)\n", hq, b.ToExternalSpace(hq), wx, wy)
	fmt.Fprintf(out, "Farthest reachable cell: %s steps\n", humanize.Comma(int64(farthest)))

	summary := b.OwnershipSummary()
	for _, f := range []core.Faction{core.FactionNone, core.FactionCats, core.FactionHyenas} {
		stats := summary[f]
		fmt.Fprintf(out, "  %-7s %s cells, %s resources\n",
			f, humanize.Comma(int64(stats.Cells)), humanize.Comma(int64(stats.Resources)))
	}
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "json" || os.Getenv("APP_ENV") == "production" {
		// JSON output for production
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
