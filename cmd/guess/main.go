package main

import (
	"math/rand"
	"os"
	"time"

	"trendquest/internal/config"
	"trendquest/internal/game"
	"trendquest/internal/metrics"
	"trendquest/internal/util"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		boot := util.NewLogger("info")
		boot.Fatal().Err(err).Msg("load config")
	}
	log := util.NewLogger(cfg.App.LogLevel)

	if cfg.App.MetricsAddr != "" {
		_ = metrics.Serve(cfg.App.MetricsAddr)
		log.Info().Str("addr", cfg.App.MetricsAddr).Msg("metrics up")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := game.New(os.Stdin, os.Stdout, log, rng, game.Bounds{Min: cfg.Game.Min, Max: cfg.Game.Max})
	g.Play()

	rounds := g.History().Snapshot()
	guesses := 0
	for _, r := range rounds {
		guesses += r.Guesses
	}
	log.Info().Int("rounds", len(rounds)).Int("guesses", guesses).Msg("session finished")
}
