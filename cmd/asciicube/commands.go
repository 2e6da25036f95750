package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/asciicube/internal/config"
	"github.com/taigrr/asciicube/pkg/anim"
	"github.com/taigrr/asciicube/pkg/models"
	"github.com/taigrr/asciicube/pkg/render"
)

// frameCommand renders a single frame after a number of ticks.
func (a *app) frameCommand() *cobra.Command {
	var (
		ticks   int
		pngPath string
	)
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Render one frame and exit",
		Long: `Render the cube as it looks after the given number of ticks.

The frame is printed as text, or written as a PNG when --png is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ticks < 0 {
				return errors.New("--ticks must not be negative")
			}
			cfg, log, err := a.setup(true)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			rot := advanced(cfg, ticks)
			buf := render.NewScreenBuffer(cfg.Viewport.Width, cfg.Viewport.Height)
			stats := newComposer(cfg, log).Render(buf, rot.Angles)
			log.Debug("frame rendered",
				zap.Int("ticks", ticks),
				zap.Float64s("angles", rot.Angles[:]),
				zap.Int("drawn", stats.Drawn),
				zap.Int("culled", stats.Culled),
			)

			if pngPath == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), buf.String())
				return err
			}
			palette := render.Palette{}
			if p := cfg.Palette(); p != nil {
				palette = *p
			}
			if err := buf.SavePNG(pngPath, palette); err != nil {
				return fmt.Errorf("save png: %w", err)
			}
			log.Info("wrote frame", zap.String("path", pngPath))
			return nil
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", 0, "Number of ticks to advance before rendering")
	cmd.Flags().StringVar(&pngPath, "png", "", "Write the frame to a PNG file")
	return cmd
}

// exportCommand writes the rotated cube as binary glTF.
func (a *app) exportCommand() *cobra.Command {
	var ticks int
	cmd := &cobra.Command{
		Use:   "export <out.glb>",
		Short: "Export the cube as a GLB model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ticks < 0 {
				return errors.New("--ticks must not be negative")
			}
			cfg, log, err := a.setup(true)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			rot := advanced(cfg, ticks)
			ax, ay, az := rot.Radians()
			if err := models.ExportGLB(args[0], models.Cube(), ax, ay, az); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			log.Info("exported model",
				zap.String("path", args[0]),
				zap.Float64s("angles", rot.Angles[:]),
			)
			return nil
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", 0, "Number of ticks to advance before exporting")
	return cmd
}

// infoCommand describes the cube mesh.
func (a *app) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show mesh statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := models.Cube()
			lo, hi := m.Bounds()
			size := hi.Sub(lo)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Model: %s\n", m.Name)
			fmt.Fprintf(out, "Vertices: %d\n", m.VertexCount())
			fmt.Fprintf(out, "Faces: %d\n", m.FaceCount())
			fmt.Fprintf(out, "Edges: %d\n", m.EdgeCount())
			fmt.Fprintf(out, "Bounds: (%.2f, %.2f, %.2f) to (%.2f, %.2f, %.2f)\n",
				lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)
			fmt.Fprintf(out, "Size: %.2f x %.2f x %.2f\n", size.X, size.Y, size.Z)
			return nil
		},
	}
}

// configCommand prints the effective configuration or saves it.
func (a *app) configCommand() *cobra.Command {
	var (
		save bool
		path string
	)
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print or save the effective configuration",
		Long: `Print the configuration that results from the config file and flags.

With --save it is written to the user config directory, or to --path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := a.setup(true)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if !save {
				data, err := cfg.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if path == "" {
				path, err = cfg.Save()
			} else {
				err = cfg.SaveTo(path)
			}
			if err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "Write the configuration to disk")
	cmd.Flags().StringVar(&path, "path", "", "Save to this file instead of "+config.FileName+" in the config directory")
	return cmd
}

// advanced returns the configured rotation after n ticks.
func advanced(cfg *config.Config, n int) anim.RotationState {
	rot := cfg.RotationState()
	rot.AdvanceN(n, newSpinUp(cfg))
	return rot
}
