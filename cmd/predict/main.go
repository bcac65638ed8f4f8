package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"soilindex/config"
	"soilindex/form"
	"soilindex/logging"
	"soilindex/ml"
	"soilindex/soil"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	eo := flag.String("eo", "", "initial void ratio")
	wn := flag.String("wn", "", "natural water content (%)")
	ll := flag.String("ll", "", "liquid limit (%)")
	pl := flag.String("pl", "", "plastic limit (%)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// validation runs before the models are touched
	providerCfg := cfg.Provider()
	if providerCfg.Mode == ml.LoadOnce {
		providerCfg.Mode = ml.LoadLazy
	}
	provider, err := ml.NewProvider(providerCfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	raw := soil.RawInput{*eo, *wn, *ll, *pl}
	code := run(context.Background(), raw, soil.NewRunner(provider), logger, os.Stdout, os.Stderr)
	provider.Close()
	logger.Sync()
	os.Exit(code)
}

func run(ctx context.Context, raw soil.RawInput, runner *soil.Runner, logger *zap.Logger, stdout, stderr io.Writer) int {
	state := form.New()
	for _, f := range soil.Fields() {
		state = form.SetField(state, f, raw[f])
	}
	state = form.Submit(ctx, state, runner)

	if n := state.Notice; n != nil {
		logger.Warn("prediction rejected", zap.String("kind", n.Kind.String()), zap.String("message", n.Message))
		fmt.Fprintf(stderr, "%s: %s\n", n.Title, n.Message)
		return 1
	}
	logger.Info("prediction", zap.Strings("input", raw[:]), zap.String("result", state.Result))
	fmt.Fprintf(stdout, "Plasticity Index (PI): %s\n%s\n", state.PI(), state.Result)
	return 0
}
