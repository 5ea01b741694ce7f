package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/gridsparse/internal/gridsparse"
)

func main() {
	gridsparse.Debug = os.Getenv("DEBUG") != ""
	gridsparse.CountOnly = os.Getenv("COUNT_ONLY") != ""
	gridsparse.Prune = os.Getenv("PRUNE") != ""

	level := slog.LevelInfo
	if gridsparse.Debug {
		level = slog.LevelDebug
	}
	gridsparse.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := gridsparse.DefaultConfig
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := gridsparse.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
