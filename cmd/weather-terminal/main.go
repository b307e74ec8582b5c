package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/places"
	"github.com/ngmaloney/weather-terminal/internal/ui"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	place := flag.String("place", "", "Place to load at start-up (default from config, then Bengaluru)")
	configPath := flag.String("config", "", "Path to config file (default "+config.ConfigPath()+")")
	debug := flag.Bool("debug", false, "Write debug logs to the configured log file")
	once := flag.Bool("once", false, "Print a one-shot weather report and exit")
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if *debug {
		cfg.Debug = true
	}
	if *place != "" {
		cfg.DefaultPlace = *place
	}

	if cfg.Debug {
		f, err := tea.LogToFile(cfg.LogFile, "weather")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	timeout, _ := cfg.RequestTimeout()
	client := newClient(cfg)

	if *once || !term.IsTerminal(int(os.Stdout.Fd())) {
		return printReport(client, cfg.DefaultPlace, timeout)
	}

	model := ui.NewModel(ui.Options{
		Client:         client,
		Places:         places.NewRepository(cfg.Database.Path),
		DefaultPlace:   cfg.DefaultPlace,
		RequestTimeout: timeout,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		return 1
	}
	return 0
}

// newClient builds the weatherapi.com client, throttling place searches when configured
func newClient(cfg *config.Config) weatherapi.Client {
	timeout, _ := cfg.RequestTimeout()
	base := weatherapi.NewClient(config.APIKey,
		weatherapi.WithBaseURL(cfg.API.BaseURL),
		weatherapi.WithTimeout(timeout),
	)

	if cfg.API.SearchRate <= 0 {
		return base
	}
	return weatherapi.NewRateLimitedClient(base, cfg.API.SearchRate, cfg.API.SearchBurst)
}

// printReport fetches place once and writes the report to stdout
func printReport(client weatherapi.Client, place string, timeout time.Duration) int {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	snapshot, err := client.FetchForecast(ctx, place)
	if err != nil {
		log.Printf("forecast for %q failed: %v", place, err)
		fmt.Fprintln(os.Stderr, ui.RenderFailure(ui.FailureFrom(err)))
		if weatherapi.IsConfig(err) {
			return 2
		}
		return 1
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 60
	}
	fmt.Println(ui.RenderReport(snapshot, width))
	return 0
}
