package main

import (
	"fmt"
	"os"
	"time"

	"trendquest/internal/advisor"
	"trendquest/internal/config"
	"trendquest/internal/metrics"
	"trendquest/internal/policy"
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

	fmt.Println("ARC-Style Novel Reasoner - Teaser (v0)")
	fmt.Println("Learning in public. Be kind; commit often.")
	time.Sleep(300 * time.Millisecond)

	band := policy.Thresholds{TauPos: cfg.Advisor.TauPos, TauNeg: cfg.Advisor.TauNeg}
	adv := advisor.New(os.Stdin, os.Stdout, log, band)

	if !adv.ConsentGate() {
		// Declined consent exits quietly without running the demo.
		return
	}
	adv.RevealHint()
	time.Sleep(200 * time.Millisecond)
	adv.Demo()
}
