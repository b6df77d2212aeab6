// Package main implements the squire-dash interactive dashboard. It tails
// the bot event stream and renders active games and recent events; it
// never writes anything back to the server.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"squire/internal/config"
)

func main() {
	cfgPath := flag.String("config", "", "config file (default ~/.config/squire/config.toml)")
	flag.Parse()

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "squire-dash: stdout is not a terminal")
		os.Exit(1)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "squire-dash: %v\n", err)
		os.Exit(1)
	}
	c, err := cfg.Client()
	if err != nil {
		fmt.Fprintf(os.Stderr, "squire-dash: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(c), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running dashboard: %v\n", err)
		os.Exit(1)
	}
}
