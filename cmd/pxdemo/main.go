// Command pxdemo draws pictures with the px software rasterizer.
//
// Usage:
//
//	pxdemo render -o out.png [--scale N] scene.yaml
//	pxdemo demo -o out.ppm [--size N] tree|sun|shapes|polygons
//	pxdemo colors
//
// Flags come before the positional argument. With -o - the image is written
// to stdout in the format given by --format, which is refused when stdout is
// a terminal.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/gogpu/px"
	pximage "github.com/gogpu/px/internal/image"
	"github.com/gogpu/px/scene"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr, isTerminal(os.Stdout)).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds the streams and logger shared by all commands.
type app struct {
	stdout    io.Writer
	stderr    io.Writer
	stdoutTTY bool
	log       *slog.Logger
}

func newApp(stdout, stderr io.Writer, stdoutTTY bool) *cli.App {
	a := &app{stdout: stdout, stderr: stderr, stdoutTTY: stdoutTTY, log: slog.Default()}

	return &cli.App{
		Name:      "pxdemo",
		Usage:     l10n.T("Draw pictures with the px software rasterizer"),
		Version:   px.Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
				EnvVars: []string{"PXDEMO_LOG_LEVEL"},
			},
		},
		Before: a.setup,
		Commands: []*cli.Command{
			{
				Name:      "render",
				Usage:     l10n.T("Render a YAML scene to an image"),
				ArgsUsage: "<scene.yaml>",
				Flags: []cli.Flag{
					outputFlag(),
					formatFlag(),
					&cli.IntFlag{
						Name:  "scale",
						Usage: l10n.T("Integer magnification (overrides the scene)"),
					},
				},
				Action: a.render,
			},
			{
				Name:      "demo",
				Usage:     l10n.T("Draw a built-in demo picture"),
				ArgsUsage: "<tree|sun|shapes|polygons>",
				Flags: []cli.Flag{
					outputFlag(),
					formatFlag(),
					&cli.IntFlag{
						Name:  "size",
						Value: 512,
						Usage: l10n.T("Canvas size in pixels"),
					},
				},
				Action: a.demo,
			},
			{
				Name:   "colors",
				Usage:  l10n.T("List the named colors"),
				Action: a.colors,
			},
			{
				Name:  "version",
				Usage: l10n.T("Show version information"),
				Action: func(*cli.Context) error {
					fmt.Fprintln(a.stdout, l10n.F("pxdemo version %s", px.Version))
					return nil
				},
			},
		},
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "output",
		Aliases:  []string{"o"},
		Usage:    l10n.T("Output file (.ppm, .png, .bmp, .tif), - for stdout"),
		Required: true,
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "format",
		Value: "ppm",
		Usage: l10n.T("Format used when writing to stdout"),
	}
}

// setup installs the logger selected by --log-level for the CLI and the
// px library.
func (a *app) setup(cctx *cli.Context) error {
	level, err := parseLevel(cctx.String("log-level"))
	if err != nil {
		return err
	}
	color := false
	if f, ok := a.stderr.(*os.File); ok {
		color = isTerminal(f)
	}
	a.log = newLogger(a.stderr, level, color)
	px.SetLogger(a.log)
	return nil
}

func (a *app) render(cctx *cli.Context) error {
	path := cctx.Args().First()
	if path == "" {
		return errors.New(l10n.T("scene file is required"))
	}

	s, err := scene.LoadFile(path)
	if err != nil {
		return err
	}
	if n := cctx.Int("scale"); n > 0 {
		s.Scale = n
	}
	c, err := s.Render()
	if err != nil {
		return err
	}

	factor := s.ScaleFactor()
	a.log.Debug("scene loaded", "path", path, "width", s.Width, "height", s.Height, "scale", factor)

	img, err := pximage.Scale(c, factor)
	if err != nil {
		return err
	}
	return a.write(cctx.String("output"), cctx.String("format"), img)
}

func (a *app) demo(cctx *cli.Context) error {
	name := cctx.Args().First()
	if name == "" {
		return errors.New(l10n.T("demo name is required"))
	}
	size := cctx.Int("size")
	if size < 1 || size > scene.MaxDimension {
		return errors.New(l10n.F("size must be between 1 and %d", scene.MaxDimension))
	}

	c, err := renderDemo(name, size)
	if err != nil {
		return err
	}
	a.log.Debug(l10n.F("Demo %s drawn at %dx%d", name, size, size))

	return a.write(cctx.String("output"), cctx.String("format"), c)
}

func (a *app) colors(*cli.Context) error {
	w := bufio.NewWriter(a.stdout)
	for _, name := range px.ColorNames() {
		c, _ := px.Named(name)
		fmt.Fprintf(w, "%-22s %s\n", name, c)
	}
	return w.Flush()
}

// write saves img to out, or encodes it to stdout when out is "-".
func (a *app) write(out, format string, img image.Image) error {
	b := img.Bounds()
	if out != "-" {
		if err := pximage.Save(out, img); err != nil {
			return err
		}
		a.log.Info(l10n.F("Saved %s", out), "width", b.Dx(), "height", b.Dy())
		return nil
	}

	if a.stdoutTTY {
		return errors.New(l10n.T("refusing to write a binary image to a terminal; redirect stdout or use -o FILE"))
	}
	f, err := pximage.ParseFormat(format)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(a.stdout)
	if err := pximage.Encode(w, f, img); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	a.log.Debug("image written to stdout", "format", f, "width", b.Dx(), "height", b.Dy())
	return nil
}
