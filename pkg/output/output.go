package output

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Format is an image file encoding
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// ParseFormat accepts "ppm" or "png" in any case
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatPPM:
		return FormatPPM, nil
	case FormatPNG:
		return FormatPNG, nil
	}
	return "", fmt.Errorf("unknown output format %q (expected ppm or png)", name)
}

// FormatFromPath picks the format from the file extension, defaulting to PPM
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return FormatPNG
	}
	return FormatPPM
}

// ChannelByte converts a color channel to 8 bits: clamp(c*255, 0, 255), truncated.
// NaN maps to 0.
func ChannelByte(c float32) uint8 {
	v := c * 255
	if !(v > 0) {
		return 0
	}
	return uint8(core.Clamp(v, 0, 255))
}

// ToImage converts a rendered grid to an 8-bit RGBA image with row 0 at the top
func ToImage(grid renderer.Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, grid.Width(), grid.Height()))
	for row, pixels := range grid {
		for col, c := range pixels {
			img.SetRGBA(col, row, color.RGBA{
				R: ChannelByte(c.X),
				G: ChannelByte(c.Y),
				B: ChannelByte(c.Z),
				A: 255,
			})
		}
	}
	return img
}

// WritePPM encodes the grid as a plain-text (P3) PPM, rows top to bottom
func WritePPM(w io.Writer, grid renderer.Grid) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "P3\n%d %d\n255\n", grid.Width(), grid.Height())
	for _, pixels := range grid {
		for _, c := range pixels {
			fmt.Fprintf(bw, "%d %d %d\n", ChannelByte(c.X), ChannelByte(c.Y), ChannelByte(c.Z))
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing ppm: %w", err)
	}
	return nil
}

// SavePPM writes the grid to a PPM file
func SavePPM(path string, grid renderer.Grid) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	return WritePPM(file, grid)
}

// SavePNG writes the grid to a PNG file
func SavePNG(path string, grid renderer.Grid) error {
	if err := gg.SavePNG(path, ToImage(grid)); err != nil {
		return fmt.Errorf("saving png %s: %w", path, err)
	}
	return nil
}

// Save writes the grid in the given format, creating the parent directory if needed
func Save(path string, format Format, grid renderer.Grid) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	switch format {
	case FormatPNG:
		return SavePNG(path, grid)
	case FormatPPM:
		return SavePPM(path, grid)
	}
	return fmt.Errorf("unknown output format %q", format)
}
