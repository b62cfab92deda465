// floorplan is a terminal viewer for the office floor plan. It renders the
// built-in desk layout and supports the same pan and zoom interactions as
// the web dashboard.
package main

import (
	"fmt"
	"os"

	"github.com/Domenick1991/deskbuddy/internal/deskstore"
	"github.com/Domenick1991/deskbuddy/internal/seed"
	"github.com/Domenick1991/deskbuddy/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var filter deskstore.Filter

	flagSet := pflag.NewFlagSet("floorplan", pflag.ContinueOnError)
	flagSet.StringVar(&filter.Area, "area", deskstore.AllOption, "only show desks in this area")
	flagSet.StringVar(&filter.Team, "team", deskstore.AllOption, "only show desks of this team")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	model := tui.NewModel(seed.Desks(), filter)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := program.Run()
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Office floor plan viewer.

Drag with the left mouse button to pan, use the wheel or +/- to zoom,
0 to reset the view and click a desk to see who sits there.

Usage:
  floorplan [flags]

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
