// Package satpipeline is an external collaborator (non-goal: satellite
// imagery tiling is outside the core spec) implementing the "sat" CLI
// subcommand: slice a bundle's satellite image into a quad-tree of PNG
// tiles, one per (lod, col, row), using only stdlib image/image-png since
// no resampling quality matters here (each LOD is a plain crop of a
// pre-rendered source image, not a derived downsample).
package satpipeline

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// Run slices src (already sized tileSize*2^lod on each axis per LOD, as
// produced by an upstream renderer) into tileSize x tileSize PNG tiles
// for every (col, row) at the given lod.
func Run(srcPath, outputDir string, tileSize, lod int) error {
	f, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("satpipeline: open %s: %w", srcPath, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("satpipeline: decode %s: %w", srcPath, err)
	}

	tilesPerAxis := 1 << uint(lod)
	for col := 0; col < tilesPerAxis; col++ {
		for row := 0; row < tilesPerAxis; row++ {
			tile := image.NewRGBA(image.Rect(0, 0, tileSize, tileSize))
			srcRect := image.Rect(col*tileSize, row*tileSize, (col+1)*tileSize, (row+1)*tileSize)
			draw.Draw(tile, tile.Bounds(), src, srcRect.Min, draw.Src)

			if err := writeTile(outputDir, lod, col, row, tile); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeTile(outputDir string, lod, col, row int, img image.Image) error {
	dir := filepath.Join(outputDir, fmt.Sprint(lod), fmt.Sprint(col))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("satpipeline: mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%d.png", row))
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("satpipeline: create %s: %w", path, err)
	}
	defer out.Close()
	return png.Encode(out, img)
}
