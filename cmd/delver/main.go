// Delver is a small seeded roguelike: one procedurally generated dungeon
// level, chasing monsters and bump-to-attack melee.
// Usage: delver [--version] [--plain] [--script <file>] [--trace] [--seed <n>] [--log <file>] [--config <path>]
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/nathoo/delver/cli"
	"github.com/nathoo/delver/engine"
	"github.com/nathoo/delver/engine/state"
	"github.com/nathoo/delver/loader"
	"github.com/nathoo/delver/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: delver [--version] [--plain] [--script <file>] [--trace] [--seed <n>] [--log <file>] [--config <path>]\n"

func main() {
	plain := false
	trace := false
	seed := time.Now().UnixNano()
	var configPath, scriptFile, logFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("delver %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--script", "--seed", "--log", "--config":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "%s requires a value\n", args[i])
				os.Exit(1)
			}
			i++
			switch args[i-1] {
			case "--script":
				scriptFile = args[i]
			case "--log":
				logFile = args[i]
			case "--config":
				configPath = args[i]
			case "--seed":
				n, err := strconv.ParseInt(args[i], 10, 64)
				if err != nil {
					fmt.Fprintf(os.Stderr, "--seed must be an integer: %v\n", err)
					os.Exit(1)
				}
				seed = n
			}
		case "-h", "--help":
			fmt.Print(usage)
			return
		default:
			if configPath == "" {
				configPath = args[i]
			}
		}
	}

	logger, err := newLogger(logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	defs := state.DefaultDefs()
	if configPath != "" {
		defs, err = loader.Load(configPath, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	eng, err := engine.New(defs, engine.Options{Seed: seed, Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating dungeon: %v\n", err)
		os.Exit(1)
	}

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		fmt.Printf("delver %s, seed %d\n\n", version, seed)
		c := cli.New(eng)
		c.In = f
		c.EchoInput = true
		c.Trace = trace
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		fmt.Printf("delver %s, seed %d\n\n", version, seed)
		c := cli.New(eng)
		c.Trace = trace
		c.Run()
		return
	}

	if err := tui.Run(eng); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes development-format logs to path, or discards them when
// path is empty; the terminal belongs to the game.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
