// Package demsource is an external collaborator (not part of the spec's
// core): it loads an ESRI ASCII grid (.asc), optionally gzip-compressed,
// into a *dem.Raster.
package demsource

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/tilecraft/maptiles/internal/dem"
)

// Load reads an ESRI ASCII grid from path, transparently gunzipping when
// the file ends in ".gz".
func Load(path string) (*dem.Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("demsource: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("demsource: gunzip %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	return Parse(r)
}

// Parse reads the ESRI ASCII grid header (ncols, nrows, xllcorner,
// yllcorner, cellsize, NODATA_value) followed by nrows*ncols whitespace
// separated elevation samples, in row-major order starting at the
// northernmost row.
func Parse(r io.Reader) (*dem.Raster, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	header := map[string]float64{}
	required := []string{"ncols", "nrows", "cellsize"}

	var firstDataLine string
	haveFirstDataLine := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		key := strings.ToLower(fields[0])
		if len(fields) != 2 || !isHeaderKey(key) {
			firstDataLine = line
			haveFirstDataLine = true
			break
		}
		val, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("demsource: header field %q: %w", key, err)
		}
		header[key] = val
	}

	for _, k := range required {
		if _, ok := header[k]; !ok {
			return nil, fmt.Errorf("demsource: missing required header field %q", k)
		}
	}
	if _, ok := header["xllcorner"]; !ok {
		header["xllcorner"] = header["xllcenter"]
	}
	if _, ok := header["yllcorner"]; !ok {
		header["yllcorner"] = header["yllcenter"]
	}

	cols := int(header["ncols"])
	rows := int(header["nrows"])
	cellSize := header["cellsize"]
	left := header["xllcorner"]
	bottom := header["yllcorner"]

	values := make([]float64, 0, cols*rows)
	if haveFirstDataLine {
		for _, tok := range strings.Fields(firstDataLine) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("demsource: sample %q: %w", tok, err)
			}
			values = append(values, v)
		}
	}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		for _, tok := range strings.Fields(line) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("demsource: sample %q: %w", tok, err)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("demsource: scan: %w", err)
	}
	if len(values) != cols*rows {
		return nil, fmt.Errorf("demsource: expected %d samples, got %d", cols*rows, len(values))
	}

	// The grid is stored north-to-south, row 0 first: that is already the
	// Raster's row-0-is-top convention, so the samples need no reordering.
	return dem.NewRaster(cols, rows, cellSize, left, bottom, values)
}

func isHeaderKey(k string) bool {
	switch k {
	case "ncols", "nrows", "xllcorner", "yllcorner", "xllcenter", "yllcenter", "cellsize", "nodata_value":
		return true
	default:
		return false
	}
}
