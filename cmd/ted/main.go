// cmd/ted/main.go
package main

import (
	"fmt"
	"io"
	stlog "log"
	"os"

	"github.com/quelltext/ted/internal/app"
	"github.com/quelltext/ted/internal/config"
	"github.com/quelltext/ted/internal/logger"
)

const version = "0.1.0"

func main() {
	flags := &config.Flags{}
	paths := flags.ParseFlags()

	if flags.Version != nil && *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		os.Exit(0)
	}

	cfg, err := config.Load(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// The TUI owns the terminal, so logging goes to a file or nowhere.
	var logOutput io.Writer
	var logFile *os.File
	switch cfg.Logger.LogFilePath {
	case "":
		logOutput = nil
	case "-":
		logOutput = os.Stderr
	default:
		logFile, err = os.OpenFile(cfg.Logger.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.LogFilePath, err)
		}
		defer logFile.Close()
		logOutput = logFile
	}
	logger.Init(cfg.Logger.Level(), logOutput)

	logger.Infof("Starting %s...", config.AppName)
	if len(paths) > 0 {
		logger.Debugf("Opening files: %v", paths)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	tedApp, err := app.New(cfg, paths)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "ted: %v\n", err)
		os.Exit(1)
	}
	defer tedApp.Close()

	if err := tedApp.Run(); err != nil {
		tedApp.Close()
		logger.Errorf("Application exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "ted: %v\n", err)
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
