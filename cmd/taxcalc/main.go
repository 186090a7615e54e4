// Package main is the entry point for taxcalc.
//
// taxcalc asks for a month, a year and the total collected for that month,
// then prints how much of it was sales and how much was county and state
// sales tax. Misspelled months get a suggestion.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/homier/blobtable"
	"github.com/homier/blobtable/internal/months"
	"github.com/homier/blobtable/internal/tax"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "taxcalc: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	configPath := flag.String("config", "", "YAML file with county_rate, state_rate and width (optional)")
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	hashName := flag.String("hash", "poly", "Hash used by the month table (poly, xxhash)")
	flag.Parse()
	if len(flag.Args()) > 0 {
		return fmt.Errorf("unknown arguments: %v", flag.Args())
	}

	logger := initLogger(*logLevel)
	slog.SetDefault(logger)

	cfg := tax.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = tax.LoadConfig(*configPath); err != nil {
			return err
		}
		slog.Debug("Loaded config", "path", *configPath, "county", cfg.CountyRate, "state", cfg.StateRate, "width", cfg.Width)
	}

	hash, err := hashFunc(*hashName)
	if err != nil {
		return err
	}

	validator, err := months.New(blobtable.WithHashFunc(hash), blobtable.WithLogger(logger))
	if err != nil {
		return err
	}
	defer validator.Close()

	stats := validator.Stats()
	slog.Info("Month table ready", "hash", *hashName, "size", stats.Size, "capacity", stats.Capacity)

	return newSession(os.Stdin, os.Stdout, validator, cfg).run()
}

func hashFunc(name string) (blobtable.HashFunc, error) {
	switch name {
	case "poly":
		return blobtable.PolynomialHash, nil
	case "xxhash":
		return blobtable.XXHash, nil
	}

	return nil, errors.New("unknown hash " + name + ", want poly or xxhash")
}

func initLogger(level string) *slog.Logger {
	ll := &slog.LevelVar{}
	switch level {
	case "debug":
		ll.Set(slog.LevelDebug)
	case "info":
		ll.Set(slog.LevelInfo)
	case "error":
		ll.Set(slog.LevelError)
	default:
		ll.Set(slog.LevelWarn)
	}

	return slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
}
