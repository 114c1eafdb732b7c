// Command mazegen carves a maze and prints it as text.
//
//	mazegen -rows 10 -cols 20 -algorithm wilson -seed 42 -longest -heat -style box
//
// Configuration may also come from MAZE_* environment variables or a .env file;
// see package config.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/distances"
	"github.com/katalvlaran/lvmaze/generator"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/render"
)

var log = logrus.New()

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one mazegen invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cfg, err := config.Load(args)
	if errors.Is(err, flag.ErrHelp) {
		config.Usage(stderr)
		return 0
	}
	if err != nil {
		log.WithError(err).Error("bad configuration")
		return 2
	}
	log.SetLevel(cfg.LogLevel)

	out, err := build(cfg)
	if err != nil {
		log.WithError(err).Error("mazegen failed")
		return 1
	}

	if width, ok := terminalWidth(stdout); ok && 4*cfg.Cols+1 > width {
		log.WithFields(logrus.Fields{"needed": 4*cfg.Cols + 1, "available": width}).
			Warn("maze is wider than the terminal")
	}
	if cfg.Heat && !color.SupportColor() {
		log.Warn("terminal does not support color, heat map disabled")
	}

	fmt.Fprint(stdout, out)
	return 0
}

// build carves the maze described by cfg and renders it.
func build(cfg config.Config) (string, error) {
	g, err := grid.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return "", err
	}

	start := time.Now()
	if err = generator.Generate(g, cfg.GeneratorOptions()); err != nil {
		return "", err
	}
	log.WithFields(logrus.Fields{
		"algorithm": cfg.Algorithm,
		"rows":      cfg.Rows,
		"cols":      cfg.Cols,
		"seed":      cfg.Seed,
		"braid":     cfg.Braid,
		"links":     g.LinkCount(),
		"deadEnds":  len(g.DeadEnds()),
		"elapsed":   time.Since(start),
	}).Info("maze generated")

	opts := []render.Option{render.WithStyle(cfg.Style)}
	overlay, err := chooseOverlay(g, cfg)
	if err != nil {
		return "", err
	}
	if overlay != nil {
		opts = append(opts, render.WithOverlay(overlay), render.WithHeatMap(cfg.Heat))
	}

	return render.Render(g, opts...)
}

// chooseOverlay returns the distance field requested by cfg, or nil.
// -longest wins over -path, which wins over -distances.
func chooseOverlay(g *grid.Grid, cfg config.Config) (*distances.Distances, error) {
	switch {
	case cfg.Longest:
		path, err := distances.Diameter(g)
		if err != nil {
			return nil, err
		}
		from, err := distances.Build(g, path[0])
		if err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{"from": path[0], "to": path[len(path)-1], "length": len(path) - 1}).
			Debug("longest path")
		return from.Breadcrumbs(path[len(path)-1])

	case cfg.Path:
		d, err := distances.Build(g, cfg.Root)
		if err != nil {
			return nil, err
		}
		goal := grid.Cell{Row: cfg.Rows - 1, Col: cfg.Cols - 1}
		return d.Breadcrumbs(goal)

	case cfg.Distances || cfg.Heat:
		d, err := distances.Build(g, cfg.Root)
		if err != nil {
			return nil, err
		}
		far, dist := d.Max()
		log.WithFields(logrus.Fields{"root": cfg.Root, "farthest": far, "distance": dist}).Debug("distances built")
		return d, nil
	}
	return nil, nil
}

// terminalWidth reports the column count when w is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, false
	}
	return width, true
}
