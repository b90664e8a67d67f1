package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"liftsim/src/config"
	"liftsim/src/dispatcher"
	"liftsim/src/elev"
	"liftsim/src/executor"
	"liftsim/src/roster"
)

func main() {
	configPath := flag.String("config", "", "Path to the YAML config (default "+config.DefaultConfigPath+")")
	envPath := flag.String("env", config.DefaultEnvPath, "Optional dotenv file with LIFTSIM_* overrides")
	rosterPath := flag.String("roster", "", "JSON roster file, overrides rosterFile from the config")
	verbose := flag.Bool("v", false, "Log at debug level")
	flag.Parse()

	env, err := config.ReadEnv(*envPath)
	if err != nil {
		fatal("Could not read environment", err)
	}
	path := firstNonEmpty(*configPath, env[config.EnvConfig], config.DefaultConfigPath)
	cfg, err := config.Load(path)
	if err != nil {
		fatal("Could not load config", err)
	}
	cfg.ApplyEnv(env)
	if *rosterPath != "" {
		cfg.RosterFile = *rosterPath
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		fatal("Invalid log level", err)
	}
	if *verbose {
		level = slog.LevelDebug
	}
	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatal("Could not open log file", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stderr, logFile)
	}
	elev.InitLogger(logOut, level)
	slog.Info("Starting simulator", "config", path)

	floors, err := cfg.FloorRange()
	if err != nil {
		fatal("Invalid floor range", err)
	}
	service := elev.NewService(floors)

	var elevators []*elev.Elevator
	if cfg.RosterFile != "" {
		elevators, err = roster.LoadFile(cfg.RosterFile, service, cfg.NumberOfElevators)
		if err != nil {
			fatal("Could not load roster", err)
		}
	} else {
		elevators = roster.Default(cfg.NumberOfElevators, floors)
	}

	d := dispatcher.New(service, elevators)
	if err := executor.New(d, os.Stdout).Run(os.Stdin); err != nil {
		fatal("Command loop stopped", err)
	}
	slog.Info("Simulator stopped", "ticks", d.Ticks())
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
