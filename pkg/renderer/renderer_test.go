package renderer

import (
	"testing"

	"github.com/jsheldrick/go-scatter/pkg/integrator"
	"github.com/jsheldrick/go-scatter/pkg/scene"
)

func TestRenderSmallFrame(t *testing.T) {
	opts := Options{
		Width:           32,
		Height:          18,
		SamplesPerPixel: 4,
		Seed:            42,
		Workers:         2,
	}

	r := New(opts, integrator.NewPathTracer(integrator.DefaultConfig()))
	sc := scene.Default(float64(opts.Width) / float64(opts.Height))

	img, stats := r.Render(sc)

	bounds := img.Bounds()
	if bounds.Dx() != opts.Width || bounds.Dy() != opts.Height {
		t.Errorf("image size: got %dx%d, expected %dx%d",
			bounds.Dx(), bounds.Dy(), opts.Width, opts.Height)
	}

	if stats.RaysTraced != int64(opts.Width*opts.Height*opts.SamplesPerPixel) {
		t.Errorf("rays traced: got %d, expected %d",
			stats.RaysTraced, opts.Width*opts.Height*opts.SamplesPerPixel)
	}
	if stats.Duration <= 0 {
		t.Error("render duration should be positive")
	}
	if stats.Workers != 2 {
		t.Errorf("workers: got %d, expected 2", stats.Workers)
	}

	// Every pixel must be opaque and at least one should be non-black
	nonBlack := false
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			c := img.RGBAAt(x, y)
			if c.A != 255 {
				t.Fatalf("pixel (%d,%d) is not opaque", x, y)
			}
			if c.R != 0 || c.G != 0 || c.B != 0 {
				nonBlack = true
			}
		}
	}
	if !nonBlack {
		t.Error("rendered frame is entirely black")
	}
}

func TestDefaultWorkerCount(t *testing.T) {
	r := New(Options{Width: 1, Height: 1, SamplesPerPixel: 1}, integrator.NewPathTracer(integrator.DefaultConfig()))
	if r.opts.Workers <= 0 {
		t.Error("worker count should default to a positive value")
	}
}

func TestStatsRaysPerSecond(t *testing.T) {
	var s RenderStats
	if s.RaysPerSecond() != 0 {
		t.Error("zero-duration stats should report 0 rays/sec")
	}
}
