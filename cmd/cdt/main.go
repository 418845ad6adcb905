package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/cdt"
)

// Triangulate a water surface from the command line. Input is a boundary
// followed by any number of islands, either as "x y" lines with a blank line
// between polygons, or as the <polygon> elements of an SVG file. Triangles are
// written to stdout one per line as "x0 y0 x1 y1 x2 y2".
func main() {
	app := kingpin.New("cdt", "Constrained Delaunay triangulation of a boundary with islands.")
	var (
		flags      = DefaultConfig()
		set        = make(map[string]bool)
		configPath string
		inputPath  string
	)
	track := func(name string) kingpin.Action {
		return func(*kingpin.ParseContext) error {
			set[name] = true
			return nil
		}
	}
	app.Flag("config", "TOML file with defaults for any of the flags below.").Short('c').StringVar(&configPath)
	app.Flag("svg", "Read <polygon> elements from SVG input.").Action(track("svg")).BoolVar(&flags.SVG)
	app.Flag("parallel", "Triangulate up to this many monotone regions concurrently.").Short('j').Action(track("parallel")).IntVar(&flags.Parallel)
	app.Flag("max-flips", "Stop legalizing after this many flips. 0 picks a bound from the point count.").Action(track("max-flips")).IntVar(&flags.MaxFlips)
	app.Flag("no-legalize", "Skip Delaunay legalization.").Action(track("no-legalize")).BoolVar(&flags.NoLegalize)
	app.Flag("world", "Print world coordinates instead of the local frame.").Action(track("world")).BoolVar(&flags.World)
	app.Flag("png", "Draw the mesh to this PNG file.").Action(track("png")).StringVar(&flags.PNG)
	app.Flag("size", "Size of the drawing in pixels.").Action(track("size")).IntVar(&flags.Size)
	app.Flag("labels", "Label points with their index in the drawing.").Action(track("labels")).BoolVar(&flags.Labels)
	app.Flag("imgcat", "Print the drawing to an iTerm compatible terminal.").Action(track("imgcat")).BoolVar(&flags.Imgcat)
	app.Flag("verbose", "Debug logging on stderr.").Short('v').Action(track("verbose")).BoolVar(&flags.Verbose)
	app.Flag("no-color", "Plain summary output.").Action(track("no-color")).BoolVar(&flags.NoColor)
	app.Arg("input", "Input file. Reads stdin when omitted.").StringVar(&inputPath)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg := flags
	if configPath != "" {
		var err error
		cfg, err = LoadConfig(configPath)
		app.FatalIfError(err, "")
		cfg.Overlay(flags, set)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	app.FatalIfError(run(cfg, inputPath, out, os.Stderr), "")
}

func run(cfg Config, inputPath string, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var in io.Reader = os.Stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}

	read := readPolygons
	if cfg.SVG {
		read = readSVGPolygons
	}
	polygons, err := read(in)
	if err != nil {
		return err
	}
	if len(polygons) == 0 {
		return errors.New("no polygons in input")
	}
	logger.Debug("read input", "polygons", len(polygons))

	options := []cdt.Option{cdt.WithParallelism(cfg.Parallel), cdt.WithMaxFlips(cfg.MaxFlips), cdt.WithLogger(logger)}
	if cfg.NoLegalize {
		options = append(options, cdt.WithoutLegalization())
	}
	result, err := cdt.Process(polygons[0], polygons[1:], options...)
	if err != nil {
		return err
	}

	triangles := result.Triangles
	if cfg.World {
		triangles = result.World
	}
	for i := 0; i+2 < len(triangles); i += 3 {
		a, b, c := triangles[i], triangles[i+1], triangles[i+2]
		if _, err := fmt.Fprintf(stdout, "%g %g %g %g %g %g\n", a.X, a.Y, b.X, b.Y, c.X, c.Y); err != nil {
			return errors.Wrap(err, "writing triangles")
		}
	}

	if cfg.PNG != "" {
		if err := result.SavePNG(cfg.PNG, cfg.Size, cfg.Labels); err != nil {
			return errors.Wrap(err, "drawing mesh")
		}
	}
	if cfg.Imgcat {
		if err := result.PrintPNG(stderr, cfg.Size); err != nil {
			return errors.Wrap(err, "printing mesh")
		}
	}

	au := aurora.NewAurora(!cfg.NoColor)
	summary := fmt.Sprintf("%s triangles from %s regions, %s flips",
		au.Bold(au.Green(result.TriangleCount())),
		au.Cyan(result.Stats.Regions),
		au.Cyan(result.Stats.Flips),
	)
	if result.Stats.FlipCapHit {
		summary += au.Yellow(" (flip cap reached)").String()
	}
	_, err = fmt.Fprintln(stderr, summary)
	return err
}
