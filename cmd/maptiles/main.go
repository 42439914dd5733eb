// Command maptiles builds vector and raster tile pyramids from a game-map
// data bundle: a DEM, a set of vector GeoJSON layers, and a preview image.
package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tilecraft/maptiles/internal/config"
	"github.com/tilecraft/maptiles/internal/demsource"
	"github.com/tilecraft/maptiles/internal/logging"
	"github.com/tilecraft/maptiles/internal/pipeline"
	"github.com/tilecraft/maptiles/internal/previewpipeline"
	"github.com/tilecraft/maptiles/internal/satpipeline"
	"github.com/tilecraft/maptiles/internal/terrainrgb"
)

var (
	configPath string
	inputDir   string
	outputDir  string
)

func main() {
	root := &cobra.Command{
		Use:   "maptiles",
		Short: "Build vector and raster tile pyramids from a map data bundle",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to an optional maptiles.yaml")
	root.PersistentFlags().StringVarP(&inputDir, "input", "i", ".", "input bundle directory")
	root.PersistentFlags().StringVarP(&outputDir, "output", "o", "./out", "output directory")

	root.AddCommand(mvtCmd())
	root.AddCommand(previewCmd())
	root.AddCommand(satCmd())
	root.AddCommand(terrainRGBCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func mvtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mvt",
		Short: "Build the vector tile pyramid (contours, mounts, ingested layers)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			log := logging.New(cfg.LogLevel)
			logrus.SetLevel(log.GetLevel())

			opts := pipeline.Options{
				InputDir:          inputDir,
				OutputDir:         outputDir,
				TileSize:          cfg.TileSize,
				WorldSize:         cfg.WorldSize,
				LayerSettingsPath: cfg.LayerSettingsPath,
				MountMinDistance:  cfg.MountMinDistance,
				Concurrency:       cfg.Concurrency,
			}

			bus := pipeline.NewBus()
			events := bus.Subscribe()
			defer bus.Unsubscribe(events)
			go func() {
				for e := range events {
					log.WithFields(logrus.Fields{"phase": e.Phase, "action": e.Action}).Info(e.Detail)
				}
			}()

			return pipeline.Run(context.Background(), opts, bus)
		},
	}
}

func previewCmd() *cobra.Command {
	var tileSize, maxLOD int
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Resample the bundle's preview image into a per-LOD pyramid",
		RunE: func(cmd *cobra.Command, args []string) error {
			src := inputDir + "/preview.png"
			return previewpipeline.Run(src, outputDir, tileSize, maxLOD)
		},
	}
	cmd.Flags().IntVar(&tileSize, "tile-size", 256, "base tile size in pixels")
	cmd.Flags().IntVar(&maxLOD, "max-lod", 3, "maximum LOD to generate")
	return cmd
}

func satCmd() *cobra.Command {
	var tileSize, lod int
	cmd := &cobra.Command{
		Use:   "sat",
		Short: "Slice the bundle's satellite image into a tile quad-tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			src := inputDir + "/satellite.png"
			return satpipeline.Run(src, outputDir, tileSize, lod)
		},
	}
	cmd.Flags().IntVar(&tileSize, "tile-size", 256, "tile size in pixels")
	cmd.Flags().IntVar(&lod, "lod", 0, "LOD to slice")
	return cmd
}

func terrainRGBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "terrain_rgb",
		Short: "Encode the DEM as a Terrarium-scheme RGB raster",
		RunE: func(cmd *cobra.Command, args []string) error {
			raster, err := demsource.Load(inputDir + "/dem.asc.gz")
			if err != nil {
				raster, err = demsource.Load(inputDir + "/dem.asc")
			}
			if err != nil {
				return fmt.Errorf("terrain_rgb: load dem: %w", err)
			}

			cols, rows := raster.Cols(), raster.Rows()
			elevations := make([]float64, 0, cols*rows)
			for row := 0; row < rows; row++ {
				for col := 0; col < cols; col++ {
					elevations = append(elevations, raster.Z(col, row))
				}
			}
			pixels := terrainrgb.EncodeRaster(cols, rows, elevations)

			img := image.NewRGBA(image.Rect(0, 0, cols, rows))
			for i, px := range pixels {
				img.SetRGBA(i%cols, i/cols, px)
			}

			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("terrain_rgb: mkdir %s: %w", outputDir, err)
			}
			path := outputDir + "/terrain_rgb.png"
			out, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("terrain_rgb: create %s: %w", path, err)
			}
			defer out.Close()
			return png.Encode(out, img)
		},
	}
}
