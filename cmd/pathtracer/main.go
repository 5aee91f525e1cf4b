// Command pathtracer renders one of the built-in named scenes to a PPM or
// PNG image.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbrandt/pathtracer/pkg/encode"
	"github.com/kbrandt/pathtracer/pkg/renderer"
	"github.com/kbrandt/pathtracer/pkg/rtlog"
	"github.com/kbrandt/pathtracer/pkg/scene"
)

// Config holds all the configuration for a single render invocation.
type Config struct {
	SceneType       string
	Width           int
	AspectRatio     float64
	SamplesPerPixel int
	MaxDepth        int
	Workers         int
	Output          string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := Config{}

	cmd := &cobra.Command{
		Use:   "pathtracer",
		Short: "Offline physically-based path tracer",
		Long: "pathtracer renders one of the built-in scenes (" +
			fmt.Sprint(scene.Names()) + ") to a PPM or PNG image.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.SceneType, "scene", "", fmt.Sprintf("scene to render, one of %v (required)", scene.Names()))
	flags.IntVarP(&cfg.Width, "width", "w", 1024, "image width in pixels")
	flags.Float64VarP(&cfg.AspectRatio, "aspect-ratio", "a", 16.0/9.0, "aspect ratio (height = width/aspect-ratio); must be > 1")
	flags.IntVarP(&cfg.SamplesPerPixel, "samples-per-pixel", "s", 500, "Monte-Carlo samples per pixel")
	flags.IntVar(&cfg.MaxDepth, "max-depth", 0, "maximum ray recursion depth (0 = use the integrator default)")
	flags.IntVar(&cfg.Workers, "workers", 0, "number of parallel scanline workers (0 = use all CPUs)")
	flags.StringVarP(&cfg.Output, "output", "o", "output.ppm", "output file path; a .png extension selects the PNG encoder")
	cmd.MarkFlagRequired("scene")

	return cmd
}

func run(ctx context.Context, cfg Config) error {
	log := rtlog.NewDefault()

	if err := validate(cfg); err != nil {
		log.Error(err).Msg("invalid configuration")
		return err
	}

	start := time.Now()
	log.Printf("building scene %q at %dx%d, %d samples/pixel", cfg.SceneType, cfg.Width, cfg.height(), cfg.SamplesPerPixel)

	s, err := scene.Build(cfg.SceneType, cfg.Width, cfg.AspectRatio)
	if err != nil {
		log.Error(err).Msg("failed to build scene")
		return fmt.Errorf("pathtracer: %w", err)
	}

	rcfg := renderer.Config{
		Width:           cfg.Width,
		Height:          cfg.height(),
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        cfg.MaxDepth,
		Workers:         cfg.Workers,
	}

	img, err := renderer.Render(ctx, s.World, s.Camera, s.Background, rcfg)
	if err != nil {
		log.Error(err).Msg("render failed")
		return fmt.Errorf("pathtracer: %w", err)
	}

	if err := encode.WriteFile(cfg.Output, img); err != nil {
		log.Error(err).Msg("failed to write output")
		return fmt.Errorf("pathtracer: %w", err)
	}

	log.Printf("render of %q completed in %v, saved to %s", cfg.SceneType, time.Since(start), cfg.Output)
	return nil
}

// height derives the image height from width and aspect ratio, matching
// the camera's own derivation.
func (c Config) height() int {
	return int(float64(c.Width) / c.AspectRatio)
}

func validate(cfg Config) error {
	if cfg.Width <= 0 {
		return fmt.Errorf("pathtracer: width must be positive, got %d", cfg.Width)
	}
	if cfg.AspectRatio <= 1 {
		return fmt.Errorf("pathtracer: aspect-ratio must be > 1, got %v", cfg.AspectRatio)
	}
	if cfg.SamplesPerPixel < 1 {
		return fmt.Errorf("pathtracer: samples-per-pixel must be >= 1, got %d", cfg.SamplesPerPixel)
	}
	if cfg.height() < 1 {
		return fmt.Errorf("pathtracer: derived height must be positive, got %d", cfg.height())
	}
	valid := false
	for _, name := range scene.Names() {
		if cfg.SceneType == name {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("pathtracer: unknown scene %q (want one of %v)", cfg.SceneType, scene.Names())
	}
	return nil
}
