// grubgrab is a terminal client for the Grab a Grub recipe community.
//
// Usage:
//
//	grubgrab [-verbose] [-quiet] [-base-url URL]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/Anisah23/grubgrab/internal/api"
	"github.com/Anisah23/grubgrab/internal/display"
	"github.com/Anisah23/grubgrab/internal/logger"
	"github.com/Anisah23/grubgrab/internal/refresh"
	"github.com/Anisah23/grubgrab/internal/session"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".grubgrab/grubgrab.log", "file to write logs to (use \"stderr\" to log to console)")
	baseURL := flag.String("base-url", "", "backend base URL (defaults to "+api.EnvBaseURL+" env var, then the hosted backend)")
	timeout := flag.Duration("timeout", 15*time.Second, "per-request HTTP timeout")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the TUI stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Redirect Go's default log package to the same output so stray
	// third-party logging doesn't corrupt the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	// Resolve the backend: flag wins, then env, then the default.
	base := *baseURL
	if base == "" {
		base = os.Getenv(api.EnvBaseURL)
	}
	if base == "" {
		base = api.DefaultBaseURL
	}

	// Set up context — cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	client := api.New(base, log, api.WithHTTPTimeout(*timeout))
	store := session.NewStore(client, log)
	signal := &refresh.Signal{}

	log.Info("backend: %s", client.BaseURL())

	app := display.NewApp(ctx, client, store, signal, log)

	// Bubble Tea owns the terminal — blocks until quit.
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		log.Error("display: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
