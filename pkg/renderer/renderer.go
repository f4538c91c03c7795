package renderer

import (
	"image"
	"image/color"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jsheldrick/go-scatter/log"
	"github.com/jsheldrick/go-scatter/pkg/core"
	"github.com/jsheldrick/go-scatter/pkg/integrator"
	"github.com/jsheldrick/go-scatter/pkg/scene"
)

var logger = log.New("renderer")

// Options controls a render
type Options struct {
	Width           int
	Height          int
	SamplesPerPixel int
	Seed            int64
	Workers         int // 0 means runtime.NumCPU()
}

// Renderer renders a scene with a path tracer across a pool of workers
// pulling scanlines from a shared channel
type Renderer struct {
	opts   Options
	tracer *integrator.PathTracer
}

// New creates a renderer
func New(opts Options, tracer *integrator.PathTracer) *Renderer {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Renderer{opts: opts, tracer: tracer}
}

// Render traces the scene and returns the image along with render statistics
func (r *Renderer) Render(sc *scene.Scene) (*image.RGBA, RenderStats) {
	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))

	var raysTraced int64
	rows := make(chan int)

	logger.Infof("rendering %dx%d at %d spp with %d workers",
		r.opts.Width, r.opts.Height, r.opts.SamplesPerPixel, r.opts.Workers)

	var wg sync.WaitGroup
	for w := 0; w < r.opts.Workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			sampler := core.NewRandomSampler(rand.New(rand.NewSource(r.opts.Seed + int64(worker))))

			for y := range rows {
				atomic.AddInt64(&raysTraced, r.renderRow(img, sc, sampler, y))
			}
		}(w)
	}

	for y := 0; y < r.opts.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	stats := RenderStats{
		Width:           r.opts.Width,
		Height:          r.opts.Height,
		SamplesPerPixel: r.opts.SamplesPerPixel,
		Workers:         r.opts.Workers,
		RaysTraced:      raysTraced,
		Duration:        time.Since(start),
	}

	logger.Noticef("render finished in %s", stats.Duration)
	return img, stats
}

// renderRow traces all samples for one scanline and returns the ray count
func (r *Renderer) renderRow(img *image.RGBA, sc *scene.Scene, sampler core.Sampler, y int) int64 {
	invSamples := 1.0 / float64(r.opts.SamplesPerPixel)

	for x := 0; x < r.opts.Width; x++ {
		accum := core.Black

		for s := 0; s < r.opts.SamplesPerPixel; s++ {
			jitter := sampler.Get2D()
			u := (float64(x) + jitter.X) / float64(r.opts.Width-1)
			v := (float64(r.opts.Height-1-y) + jitter.Y) / float64(r.opts.Height-1)

			sample := r.tracer.RayColor(sc.Camera.GetRay(u, v), sc, sampler)
			if sample.IsFinite() {
				accum = accum.Add(sample)
			}
		}

		img.Set(x, y, toRGBA(accum.Scale(invSamples)))
	}

	return int64(r.opts.Width * r.opts.SamplesPerPixel)
}

// toRGBA gamma-corrects and quantizes a radiance value for output
func toRGBA(c core.Color) color.RGBA {
	c = c.Clamp(0, 1).GammaCorrect(2.0)
	return color.RGBA{
		R: uint8(c.R * 255.999),
		G: uint8(c.G * 255.999),
		B: uint8(c.B * 255.999),
		A: 255,
	}
}
