package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/lattice/internal/showcase"
	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
)

// errNotTerminal is returned when the showcase is started without a TTY.
var errNotTerminal = errors.New("the showcase needs an interactive terminal")

// Fallback size when the terminal cannot report one.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive overlay showcase",
		Long: `Launch a full-screen page with a dialog, stacked drawers and a menu popover.
Tab and Shift+Tab move focus, Enter activates, Escape closes the top surface
and the mouse can click anything on screen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags)
		},
	}

	return cmd
}

func runDemo(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := loadSettings(flags)
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		width, height = fallbackWidth, fallbackHeight
	}

	log, closer, err := openLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	demo, err := showcase.Build(cfg, log, dom.Size{Width: width, Height: height})
	if err != nil {
		return err
	}
	log.Info("showcase started")

	p := tea.NewProgram(demo.Model(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		log.Error(err, "showcase failed")
		return fmt.Errorf("failed to run showcase: %w", err)
	}

	log.Info("showcase closed")
	return nil
}
