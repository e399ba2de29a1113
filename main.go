package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"checkersbot/agent"
	"checkersbot/game"
	"checkersbot/ledger"
)

func main() {
	configPath := pflag.String("config", "checkersbot.yaml", "path to the YAML config file")
	url := pflag.String("ledger", "", "ledger RPC endpoint (overrides config)")
	poll := pflag.Duration("poll", 0, "delay between board polls (overrides config)")
	moveTimeout := pflag.Duration("move-timeout", 0, "how long to wait for an opponent move (overrides config)")
	start := pflag.Uint64("start", 0, "slot index to begin discovery from")
	backward := pflag.Bool("allow-backward-men", false, "let uncrowned pieces move backward")
	verbose := pflag.Bool("verbose", false, "enable debug logging")
	pflag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := loadConfig(*configPath, flagSet("config"))
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	if flagSet("ledger") {
		cfg.LedgerURL = *url
	}
	if flagSet("poll") {
		cfg.PollInterval = duration{*poll}
	}
	if flagSet("move-timeout") {
		cfg.MoveTimeout = duration{*moveTimeout}
	}
	if flagSet("start") {
		cfg.StartIndex = *start
	}
	if flagSet("allow-backward-men") {
		cfg.AllowBackwardMen = *backward
	}
	if *verbose || cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	rules := game.StandardRules()
	rules.AllowBackwardMen = cfg.AllowBackwardMen

	a := agent.New(ledger.NewHTTPClient(cfg.LedgerURL),
		agent.WithPollInterval(cfg.PollInterval.Duration),
		agent.WithMoveTimeout(cfg.MoveTimeout.Duration),
		agent.WithRegisterRetries(cfg.RegisterRetries),
		agent.WithStartIndex(cfg.StartIndex),
		agent.WithRules(rules),
	)

	log.Info().Str("ledger", cfg.LedgerURL).Uint64("start", cfg.StartIndex).
		Msg("starting checkers agent")
	if err := a.Run(); err != nil {
		log.Fatal().Err(err).Msg("session ended")
	}
}

func flagSet(name string) bool {
	f := pflag.Lookup(name)
	return f != nil && f.Changed
}
