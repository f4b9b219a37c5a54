// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package main implements the nmea-report command.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/wneessen/nmea-report/internal/config"
	"github.com/wneessen/nmea-report/internal/i18n"
	"github.com/wneessen/nmea-report/internal/logger"
	"github.com/wneessen/nmea-report/internal/service"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGABRT, os.Interrupt)
	defer cancel()

	// Initialize Logger
	log := logger.New(slog.LevelError)

	confPath := flag.String("config", "", "path to the config file")
	inputPath := flag.String("input", "", "NMEA input file (default: stdin)")
	outputPath := flag.String("output", "", "report output file (default: stdout)")
	format := flag.String("format", "", "output format: table, template, json or yaml")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("nmea-report %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}

	conf, err := loadConfig(*confPath)
	if err != nil {
		log.Error("failed to load config", logger.Err(err))
		os.Exit(1)
	}

	// Command line flags take precedence over the config file
	if *inputPath != "" {
		conf.Input.File = *inputPath
	}
	if *outputPath != "" {
		conf.Output.File = *outputPath
	}
	if *format != "" {
		conf.Output.Format = *format
	}
	if err = conf.Validate(); err != nil {
		log.Error("invalid configuration", logger.Err(err))
		os.Exit(1)
	}

	log = logger.New(conf.LogLevel)
	t, err := i18n.New(conf.Locale)
	if err != nil {
		log.Error("failed to initialize localizer", logger.Err(err))
		os.Exit(1)
	}

	serv, err := service.New(conf, log, t)
	if err != nil {
		log.Error("failed to initialize nmea-report service", logger.Err(err))
		os.Exit(1)
	}

	log.Debug("starting nmea-report", slog.String("version", version),
		slog.String("commit", commit), slog.String("date", date))
	if err = serv.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("processing interrupted")
			return
		}
		log.Error("failed to process NMEA input", logger.Err(err))
		os.Exit(1)
	}
}

// loadConfig reads the config from the given path, the default location or, if neither
// exists, from defaults and the environment.
func loadConfig(confPath string) (*config.Config, error) {
	if confPath != "" {
		return config.NewFromFile(filepath.Dir(confPath), filepath.Base(confPath))
	}
	if path, file := findConfigFile(); path != "" && file != "" {
		return config.NewFromFile(path, file)
	}
	return config.New()
}

func findConfigFile() (string, string) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}
	exts := []string{"toml", "yaml", "yml", "json"}
	for _, ext := range exts {
		path := filepath.Join(homedir, ".config", "nmea-report", "config."+ext)
		if _, err = os.Stat(path); err == nil {
			return filepath.Dir(path), filepath.Base(path)
		}
	}
	return "", ""
}
