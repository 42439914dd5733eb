// Package terrainrgb is an external collaborator (non-goal: no satellite
// or terrain-RGB pipeline is part of the core spec) implementing the
// Terrarium elevation<->RGB encoding, ported from
// pspoerri-geotiff2pmtiles/internal/encode/terrarium.go, so the
// "terrain_rgb" CLI subcommand has something real to call.
package terrainrgb

import "image/color"

// ElevationToTerrarium encodes an elevation in meters into the Terrarium
// RGB scheme: elevation = R*256 + G + B/256 - 32768.
func ElevationToTerrarium(elevation float64) color.RGBA {
	value := (elevation + 32768) * 256
	if value < 0 {
		value = 0
	}
	total := uint32(value)

	r := uint8((total >> 16) & 0xFF)
	g := uint8((total >> 8) & 0xFF)
	b := uint8(total & 0xFF)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// TerrariumToElevation decodes a Terrarium-encoded pixel back to meters.
func TerrariumToElevation(c color.RGBA) float64 {
	return float64(c.R)*256 + float64(c.G) + float64(c.B)/256 - 32768
}

// EncodeRaster renders every sample of a row-major elevation grid into a
// Terrarium-encoded RGBA buffer of the same dimensions.
func EncodeRaster(cols, rows int, elevations []float64) []color.RGBA {
	out := make([]color.RGBA, len(elevations))
	for i, z := range elevations {
		out[i] = ElevationToTerrarium(z)
	}
	return out
}
