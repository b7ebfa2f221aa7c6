package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/halcyon-studio/landing/internal/analytics"
	"github.com/halcyon-studio/landing/internal/config"
	"github.com/halcyon-studio/landing/internal/form"
)

func main() {
	selfcheck := flag.Bool("selfcheck", false, "run a non-interactive startup check and exit")
	flag.Parse()

	if *selfcheck {
		if err := runSelfCheck(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "selfcheck failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The terminal owns stdout; logs go to a file when requested.
	var logger *log.Logger
	if os.Getenv("LANDING_DEBUG") != "" {
		f, err := tea.LogToFile("landing.log", "landing")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = log.New(f, "", log.LstdFlags)
	} else {
		logger = log.New(os.Stderr, "", 0)
	}

	sinks := []analytics.Sink{analytics.LogSink{Logger: logger}}
	sub := form.HTTPSubmitter{Client: &http.Client{}}

	s := newSession(cfg, sinks, sub, logger)
	p := tea.NewProgram(newModel(s), tea.WithAltScreen())

	// Hand the model its way back into the loop; the debounced
	// live-validation action delivers through Send.
	go p.Send(wireMsg{send: p.Send})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
