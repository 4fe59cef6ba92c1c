// Command gl2ddemo renders a gl2d scene to a PNG file.
//
// The scene (text, shapes and a list of input steps) is read from a YAML
// file, tessellated frame by frame and executed by a registered backend.
// The last frame is written to the output file.
//
//	gl2ddemo -scene scene.yaml -output demo.png -v
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gl2d"
	"github.com/gogpu/gl2d/backend"
	"github.com/gogpu/gl2d/backend/software"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	scene       string
	output      string
	backend     string
	supersample int
	verbose     bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("gl2ddemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.scene, "scene", "", "YAML scene file (default: built-in scene)")
	fs.StringVar(&o.output, "output", "gl2ddemo.png", "output PNG file")
	fs.StringVar(&o.backend, "backend", software.Name, "executor name")
	fs.IntVar(&o.supersample, "supersample", software.DefaultSupersample, "samples per pixel along each axis (software backend)")
	fs.BoolVar(&o.verbose, "v", false, "log debug records")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, nil
}

func run(args []string, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	gl2d.SetLogger(logger)
	defer gl2d.SetLogger(nil)

	scene := DefaultScene()
	if o.scene != "" {
		if scene, err = LoadScene(o.scene); err != nil {
			return err
		}
	}

	exec, err := newExecutor(o)
	if err != nil {
		return err
	}

	d, err := newDemo(&scene)
	if err != nil {
		return err
	}

	var f backend.Frame
	for i, step := range scene.Steps {
		d.frame(&f, step)
		if err := exec.Execute(&f); err != nil {
			return fmt.Errorf("gl2ddemo: frame %d: %w", i, err)
		}
		logger.Info("frame rendered",
			"frame", i,
			"calls", len(f.Calls),
			"scale", d.viewer.Camera().Scale)
	}

	snap, ok := exec.(backend.Snapshotter)
	if !ok {
		return fmt.Errorf("gl2ddemo: backend %q cannot read back frames", exec.Name())
	}
	if err := writePNG(o.output, snap); err != nil {
		return err
	}
	logger.Info("saved", "path", o.output, "width", f.Viewport[0], "height", f.Viewport[1])
	return nil
}

func newExecutor(o options) (backend.Executor, error) {
	if o.backend == software.Name {
		return software.New(software.Config{Supersample: o.supersample}), nil
	}
	exec, err := backend.Get(o.backend)
	if err != nil {
		return nil, fmt.Errorf("gl2ddemo: %w: %q (available: %v)", err, o.backend, backend.Available())
	}
	return exec, nil
}

func writePNG(path string, snap backend.Snapshotter) (err error) {
	img := snap.Snapshot()
	if img == nil {
		return errors.New("gl2ddemo: no frame rendered")
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(out, img)
}
