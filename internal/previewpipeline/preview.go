// Package previewpipeline is an external collaborator (non-goal: the
// preview-image resampler is outside the core spec) implementing the
// "preview" CLI subcommand: resample a bundle's preview image down to
// each LOD's pixel footprint using github.com/disintegration/imaging,
// grounded on MartinMeyer1-bike-map's dependency on the same library.
package previewpipeline

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Run reads the source image at srcPath and writes a Lanczos-resampled
// copy for each LOD from 0 through maxLOD into outputDir/<lod>/preview.png,
// each a square of tileSize*2^lod pixels (LOD 0 is the whole map in one
// tileSize x tileSize tile, matching the vector pipeline's own tile sizing).
func Run(srcPath, outputDir string, tileSize int, maxLOD int) error {
	src, err := imaging.Open(srcPath)
	if err != nil {
		return fmt.Errorf("previewpipeline: open %s: %w", srcPath, err)
	}

	for lod := 0; lod <= maxLOD; lod++ {
		side := tileSize << uint(lod)
		resized := imaging.Resize(src, side, side, imaging.Lanczos)
		if err := writeLOD(outputDir, lod, resized); err != nil {
			return err
		}
	}
	return nil
}

func writeLOD(outputDir string, lod int, img image.Image) error {
	dir := filepath.Join(outputDir, fmt.Sprint(lod))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("previewpipeline: mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, "preview.png")
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("previewpipeline: save %s: %w", path, err)
	}
	return nil
}
