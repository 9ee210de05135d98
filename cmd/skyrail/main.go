package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/oliverbestmann/skyrail"
	"github.com/oliverbestmann/skyrail/skybiten"
	"github.com/pkg/profile"
)

func main() {
	win := skybiten.DefaultWindowConfig()
	config := skyrail.DefaultConfig()

	profiling := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.BoolVar(&config.Targets.Randomize, "random-targets", config.Targets.Randomize, "place targets randomly")
	flag.Uint64Var(&config.Targets.Seed, "seed", config.Targets.Seed, "seed for random target placement")
	flag.IntVar(&config.Targets.Count, "targets", config.Targets.Count, "number of targets")
	flag.IntVar(&win.Width, "width", win.Width, "window width")
	flag.IntVar(&win.Height, "height", win.Height, "window height")
	flag.Parse()

	if *debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	switch *profiling {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.MemProfileRate(512), profile.ProfilePath(".")).Stop()
	default:
		fmt.Fprintf(os.Stderr, "unknown profile mode %q\n", *profiling)
		os.Exit(2)
	}

	if err := run(config, win); err != nil {
		slog.Error("Game failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(config skyrail.Config, win skybiten.WindowConfig) error {
	game, err := skybiten.NewGame(config, win)
	if err != nil {
		return err
	}

	return skybiten.Run(game, win)
}
