// Command spectate runs an unattended simulation and streams snapshots to
// websocket viewers.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/trouvaiilx/arcane-survivors/internal/app"
	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/logging"
	"github.com/trouvaiilx/arcane-survivors/internal/spectate"
	"github.com/trouvaiilx/arcane-survivors/internal/system"
)

const broadcastRate = 20 // snapshots per second

func main() {
	addr := flag.String("addr", ":8090", "listen address for the websocket feed")
	catalogPath := flag.String("catalog", "", "catalog file (.json or .yaml); empty uses the embedded catalog")
	configPath := flag.String("config", "", "sim tuning YAML; empty uses defaults")
	seed := flag.Int64("seed", 0, "random seed; 0 picks one from the clock")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	log := logging.New("spectate", os.Stdout, logging.ParseLevel(*level))

	catalog, cfg, err := app.LoadResources(*catalogPath, *configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load resources")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := spectate.NewHub(log)
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{Addr: *addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", *addr).Msg("feed listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return simulate(ctx, log, hub, app.Options{
			Catalog:  catalog,
			Config:   cfg,
			Seed:     *seed,
			Services: system.Services{Log: log},
		})
	})
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("spectate failed")
	}
}

// simulate runs back-to-back runs in real time until ctx ends.
func simulate(ctx context.Context, log zerolog.Logger, hub *spectate.Hub, opts app.Options) error {
	tick := time.NewTicker(config.FixedStep)
	defer tick.Stop()
	every := max(1, config.TickRate/broadcastRate)
	bot := spectate.NewBot()

	for {
		game, err := app.NewGame(opts)
		if err != nil {
			return err
		}
		for game.State() == app.StatePlaying {
			select {
			case <-ctx.Done():
				return nil
			case <-tick.C:
			}
			bot.Drive(game, config.FixedStep.Seconds())
			game.Advance(config.FixedStep)
			if game.Tick()%uint64(every) == 0 {
				if err := hub.Publish(game.Snapshot()); err != nil {
					log.Warn().Err(err).Msg("snapshot dropped")
				}
			}
		}
		if err := hub.Publish(game.Snapshot()); err != nil {
			log.Warn().Err(err).Msg("final snapshot dropped")
		}
		stats := game.Stats()
		log.Info().Str("run", stats.RunID).Bool("victory", stats.Victory).Int("kills", stats.Kills).Msg("run over, restarting")
		if opts.Seed != 0 {
			opts.Seed++
		}
	}
}
