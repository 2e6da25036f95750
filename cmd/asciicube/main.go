// asciicube - Rotating ASCII Cube
// A shaded, outlined cube spinning in your terminal.
//
// Controls:
//
//	Esc / q / Ctrl+C - Quit
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/asciicube/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = ""

// app carries what every command shares.
type app struct {
	flags config.Flags
	plain bool
}

func main() {
	cmd := newRootCommand(&app{})

	// fang prints the error itself
	if err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion())); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asciicube",
		Short: "Rotating ASCII cube",
		Long: `asciicube - Rotating ASCII Cube

A flat-shaded cube drawn with characters, outlined and spinning in place.

Controls:
  Esc, q, Ctrl+C  - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAnimation(cmd.Context())
		},
	}

	a.flags.Register(cmd.PersistentFlags())
	cmd.Flags().BoolVar(&a.plain, "plain", false, "Print frames to stdout instead of using the alternate screen")

	cmd.AddCommand(
		a.frameCommand(),
		a.exportCommand(),
		a.infoCommand(),
		a.configCommand(),
		versionCommand(),
	)
	return cmd
}
