// Package renderer turns a scene and a set of sampling parameters into a
// raster image: a per-pixel Monte-Carlo sampler and gamma tonemap, driven
// by a scanline task queue and an errgroup-managed worker pool.
package renderer

import (
	"context"
	"image"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/kbrandt/pathtracer/pkg/camera"
	"github.com/kbrandt/pathtracer/pkg/core"
	"github.com/kbrandt/pathtracer/pkg/integrator"
	"github.com/kbrandt/pathtracer/pkg/primitive"
)

// Config holds the per-invocation parameters a render needs beyond the
// scene itself.
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int   // 0 means runtime.NumCPU()
	Seed            int64 // base seed for per-worker generators; workers use Seed+index+1
}

// row is one scanline worth of RGB samples prior to tonemapping, paired
// with its index so the assembler can place it regardless of completion
// order.
type row struct {
	index  int
	pixels []core.Color
}

// Render samples cfg.SamplesPerPixel rays per pixel of an image
// cfg.Width x cfg.Height against world, tonemaps each sum, and returns the
// assembled image. Rows are computed in parallel by a worker pool sized to
// cfg.Workers, or when that is 0 or less to runtime.NumCPU(), which counts
// logical CPUs rather than physical cores; pixels within a row and
// samples within a pixel are computed sequentially by a single worker,
// each with its own independently seeded RNG.
func Render(ctx context.Context, world primitive.Hittable, cam *camera.Camera, bg integrator.Background, cfg Config) (*image.RGBA, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = integrator.DefaultMaxDepth
	}

	rows := make(chan int)
	results := make(chan row, cfg.Height)

	g, gctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		seed := cfg.Seed + int64(w) + 1
		g.Go(func() error {
			rnd := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case r, ok := <-rows:
					if !ok {
						return nil
					}
					results <- row{index: r, pixels: renderRow(r, world, cam, bg, cfg, maxDepth, rnd)}
				}
			}
		})
	}

	g.Go(func() error {
		defer close(rows)
		for r := 0; r < cfg.Height; r++ {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case rows <- r:
			}
		}
		return nil
	})

	go func() {
		g.Wait()
		close(results)
	}()

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	for result := range results {
		for col, c := range result.pixels {
			r8, g8, b8 := Tonemap(c, cfg.SamplesPerPixel)
			img.Set(col, result.index, rgbaColor(r8, g8, b8))
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return img, nil
}

func renderRow(rowIndex int, world primitive.Hittable, cam *camera.Camera, bg integrator.Background, cfg Config, maxDepth int, rnd *rand.Rand) []core.Color {
	pixels := make([]core.Color, cfg.Width)

	for col := 0; col < cfg.Width; col++ {
		var sum core.Color
		for k := 0; k < cfg.SamplesPerPixel; k++ {
			s := (float64(col) + rnd.Float64()) / float64(cfg.Width-1)
			// row 0 is the top of the image, but the camera's viewport
			// parameterizes t from the bottom; flip here so row-major
			// image order matches the spec's top-down convention.
			t := (float64(cfg.Height-1-rowIndex) + rnd.Float64()) / float64(cfg.Height-1)
			r := cam.GetRay(s, t, rnd)
			sum = sum.Add(integrator.RayColor(r, world, bg, maxDepth, rnd))
		}
		pixels[col] = sum
	}

	return pixels
}
