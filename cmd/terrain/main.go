package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/StoreStation/terrain/pkg/export"
	"github.com/StoreStation/terrain/pkg/world"
)

func main() {
	size := flag.Int("size", world.DefaultSize, "Grid side, must be 2^k+1")
	roughness := flag.Float64("roughness", world.DefaultRoughness, "Displacement roughness in [0, 1]")
	seaLevel := flag.Float64("sea-level", world.DefaultSeaLevel, "Height at or below which cells are ocean")
	maxHeight := flag.Float64("max-height", world.DefaultMaxHeight, "Highest normalised height")
	seed := flag.Int64("seed", 0, "World seed (0 = random)")
	out := flag.String("out", "terrain.png", "Band raster output path")
	heightmap := flag.String("heightmap", "", "Optional elevation gradient output path")
	raw := flag.String("raw", "", "Optional 16-bit RAW heightmap output path")
	preview := flag.Bool("preview", false, "Print an ASCII preview to stdout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	cfg := world.Config{
		Size:      *size,
		Roughness: *roughness,
		SeaLevel:  *seaLevel,
		MaxHeight: *maxHeight,
	}
	gen, err := world.NewGenerator(cfg)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	start := time.Now()
	grid, err := gen.Generate(world.NewSource(uint64(*seed)))
	if err != nil {
		if errors.Is(err, world.ErrDegenerateHeightmap) {
			slog.Error("generated terrain is flat, try another seed", "seed", *seed, "error", err)
		} else {
			slog.Error("failed to generate terrain", "error", err)
		}
		os.Exit(1)
	}
	slog.Info("generated heightmap",
		"size", gen.Size(),
		"roughness", cfg.Roughness,
		"seed", *seed,
		"elapsed", time.Since(start))

	bands := cfg.Classifier().Render(grid)
	counts := bands.Counts()
	attrs := make([]any, 0, 2*len(world.Bands))
	for _, b := range world.Bands {
		attrs = append(attrs, b.String(), counts[b])
	}
	slog.Info("classified terrain", attrs...)

	centre := world.Point{X: cfg.Size / 2, Y: cfg.Size / 2}
	if coast, ok := bands.Nearest(centre, world.Ocean); ok {
		slog.Info("nearest ocean to centre", "at", coast.String(), "distance", centre.Distance(coast))
	}

	if err := export.SavePNG(*out, bands); err != nil {
		slog.Error("failed to save band raster", "error", err)
		os.Exit(1)
	}
	slog.Info("saved band raster", "path", *out)

	if *heightmap != "" {
		if err := export.SaveGradientPNG(*heightmap, grid, cfg.MaxHeight); err != nil {
			slog.Error("failed to save heightmap", "error", err)
			os.Exit(1)
		}
		slog.Info("saved heightmap", "path", *heightmap)
	}

	if *raw != "" {
		if err := export.SaveRaw16(*raw, grid, cfg.MaxHeight); err != nil {
			slog.Error("failed to save raw heightmap", "error", err)
			os.Exit(1)
		}
		slog.Info("saved raw heightmap", "path", *raw, "bytes", cfg.Size*cfg.Size*export.RawBytesPerCell)
	}

	if *preview {
		if err := export.WritePreview(os.Stdout, bands); err != nil {
			slog.Error("failed to print preview", "error", err)
			os.Exit(1)
		}
	}
}
