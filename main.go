package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/profile"
	"github.com/urfave/cli"

	"github.com/jsheldrick/go-scatter/log"
	"github.com/jsheldrick/go-scatter/pkg/config"
	"github.com/jsheldrick/go-scatter/pkg/integrator"
	"github.com/jsheldrick/go-scatter/pkg/renderer"
	"github.com/jsheldrick/go-scatter/pkg/scene"
)

var logger = log.New("go-scatter")

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-scatter"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render the demo scene",
			Description: `
Render the built-in demo scene (diffuse, mirror and glass spheres over a
ground plane) with the path tracer and write the result as a PNG.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config, c",
					Usage: "hjson settings file",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width (overrides config)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height (overrides config)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (overrides config)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output PNG path (overrides config)",
				},
				cli.BoolFlag{
					Name:  "profile",
					Usage: "write a cpu profile for this render",
				},
			},
			Action: renderScene,
		},
	}

	app.Run(os.Args)
}

func renderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	conf := config.Default()
	if path := ctx.String("config"); path != "" {
		var err error
		if conf, err = config.Load(path); err != nil {
			return fmt.Errorf("could not load config %q: %w", path, err)
		}
	}
	applyFlagOverrides(ctx, &conf)

	if ctx.Bool("profile") {
		defer profile.Start().Stop()
	}

	aspect := float64(conf.Width) / float64(conf.Height)

	var sc *scene.Scene
	var err error
	if conf.GroundTexture != "" {
		if sc, err = scene.WithGroundTexture(aspect, conf.GroundTexture); err != nil {
			return err
		}
	} else {
		sc = scene.Default(aspect)
	}

	tracer := integrator.NewPathTracer(integrator.Config{
		MaxDepth:             conf.MaxDepth,
		RussianRouletteDepth: integrator.DefaultConfig().RussianRouletteDepth,
	})

	r := renderer.New(renderer.Options{
		Width:           conf.Width,
		Height:          conf.Height,
		SamplesPerPixel: conf.SamplesPerPixel,
		Seed:            conf.Seed,
	}, tracer)

	img, stats := r.Render(sc)

	out, err := os.Create(conf.Output)
	if err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("could not encode output image: %w", err)
	}

	logger.Noticef("wrote %s", conf.Output)
	displayRenderStats(stats)
	return nil
}

func applyFlagOverrides(ctx *cli.Context, conf *config.Config) {
	if w := ctx.Int("width"); w > 0 {
		conf.Width = w
	}
	if h := ctx.Int("height"); h > 0 {
		conf.Height = h
	}
	if spp := ctx.Int("spp"); spp > 0 {
		conf.SamplesPerPixel = spp
	}
	if out := ctx.String("out"); out != "" {
		conf.Output = out
	}
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Samples", "Workers", "Rays", "Rays/sec", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.RaysTraced),
		fmt.Sprintf("%.0f", stats.RaysPerSecond()),
		fmt.Sprintf("%s", stats.Duration),
	})
	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}

func setupLogging(ctx *cli.Context) {
	log.SetSink(os.Stderr)
	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	} else if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	} else {
		log.SetLevel(log.Notice)
	}
}
