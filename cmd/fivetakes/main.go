package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/fivetakes/fivetakes/internal/config"
	"github.com/fivetakes/fivetakes/internal/ui"
)

func main() {
	cfgPath := flag.String("config", "fivetakes.yaml", "path to optional game config file")
	seed := flag.Int64("seed", 0, "RNG seed for reproducible games (0 = random)")
	target := flag.Int("target", 0, "game-end score threshold (0 = standard 50)")
	flag.Parse()

	cfg, err := config.LoadOptional(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags win over the config file.
	if *seed == 0 {
		*seed = cfg.Seed
	}
	if *target == 0 {
		*target = cfg.TargetScore
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	ctrl := &ui.Controller{
		Names:       cfg.Players,
		Rand:        rng,
		TargetScore: *target,
	}
	if err := ctrl.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
