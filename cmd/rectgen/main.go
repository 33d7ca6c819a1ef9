// Command rectgen rasterizes a rounded rectangle skin from a YAML description
// and writes it as a PNG, plus a sliced sprite atlas when slices are listed.
//
//	rectgen -config skin.yaml -out build -name panel
//
// RECTGEN_OUT and RECTGEN_NAME, read from the environment or a .env file in
// the working directory, provide defaults for -out and -name.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/tooltip"
)

// skinConfig is the YAML layout of a skin description.
type skinConfig struct {
	tooltip.RoundedRectConfig `yaml:",inline"`

	Background []string    `yaml:"background"`
	Border     []string    `yaml:"border"`
	Slices     []sliceRect `yaml:"slices"`
}

type sliceRect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "rectgen: .env: %v\n", err)
	}

	fs := flag.NewFlagSet("rectgen", flag.ContinueOnError)
	configPath := fs.String("config", "skin.yaml", "YAML skin description")
	outDir := fs.String("out", envOr("RECTGEN_OUT", "."), "output directory")
	name := fs.String("name", envOr("RECTGEN_NAME", "rectangle"), "output base name")
	verbose := fs.Bool("v", false, "log generation details")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	tooltip.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, rects, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rectgen: %v\n", err)
		return 1
	}

	canvas, err := tooltip.GenerateRoundedRect(cfg)
	if err != nil {
		var pe *tooltip.ParamError
		if errors.As(err, &pe) {
			fmt.Fprintf(os.Stderr, "rectgen: invalid parameters: %s\n", pe.Constraint)
		} else {
			fmt.Fprintf(os.Stderr, "rectgen: %v\n", err)
		}
		return 1
	}

	files, err := tooltip.ExportSkin(*outDir, *name, canvas, rects)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rectgen: %v\n", err)
		return 1
	}
	fmt.Println(files.PNG)
	if files.Atlas != "" {
		fmt.Println(files.Atlas)
	}
	return 0
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func loadConfig(path string) (tooltip.RoundedRectConfig, []tooltip.Rect, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tooltip.RoundedRectConfig{}, nil, err
	}
	var sc skinConfig
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return tooltip.RoundedRectConfig{}, nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := sc.RoundedRectConfig
	if cfg.Background, err = parseColors(sc.Background); err != nil {
		return cfg, nil, fmt.Errorf("background: %w", err)
	}
	if cfg.Border, err = parseColors(sc.Border); err != nil {
		return cfg, nil, fmt.Errorf("border: %w", err)
	}

	rects := make([]tooltip.Rect, 0, len(sc.Slices))
	for _, s := range sc.Slices {
		rects = append(rects, tooltip.Rect{
			X: float64(s.X), Y: float64(s.Y),
			Width: float64(s.W), Height: float64(s.H),
		})
	}
	return cfg, rects, nil
}

func parseColors(hex []string) ([]color.NRGBA, error) {
	out := make([]color.NRGBA, 0, len(hex))
	for _, h := range hex {
		c, err := parseHexColor(h)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// parseHexColor accepts #rrggbb and #rrggbbaa.
func parseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("bad color %q", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
