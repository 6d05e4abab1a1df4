package output

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"
	"github.com/fogleman/gg"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// testGrid is 2 wide, 2 tall: red/green on top, blue/overexposed white below
func testGrid() renderer.Grid {
	grid := renderer.NewGrid(2, 2)
	grid[0][0] = core.NewVec3(1, 0, 0)
	grid[0][1] = core.NewVec3(0, 1, 0)
	grid[1][0] = core.NewVec3(0, 0, 1)
	grid[1][1] = core.NewVec3(2, 1.5, 1)
	return grid
}

func TestChannelByte(t *testing.T) {
	tests := []struct {
		name     string
		input    float32
		expected uint8
	}{
		{"black", 0, 0},
		{"white", 1, 255},
		{"overexposed", 3.7, 255},
		{"negative", -0.5, 0},
		{"truncates", 0.5, 127},
		{"nan", math32.NaN(), 0},
		{"inf", math32.Inf(1), 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChannelByte(tt.input); got != tt.expected {
				t.Errorf("ChannelByte(%f) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, testGrid()); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n2 2\n255\n" +
		"255 0 0\n" +
		"0 255 0\n" +
		"0 0 255\n" +
		"255 255 255\n"
	if buf.String() != expected {
		t.Errorf("Unexpected PPM output:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

func TestToImage(t *testing.T) {
	img := ToImage(testGrid())

	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected 2x2 image, got %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("Expected red at top-left, got %v", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("Expected blue at bottom-left, got %v", got)
	}
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	t.Run("png", func(t *testing.T) {
		path := filepath.Join(dir, "render.png")
		if err := Save(path, FormatPNG, testGrid()); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		img, err := gg.LoadPNG(path)
		if err != nil {
			t.Fatalf("Failed to read back PNG: %v", err)
		}
		r, g, b, _ := img.At(1, 0).RGBA()
		if r != 0 || g != 0xffff || b != 0 {
			t.Errorf("Expected green at top-right, got %d %d %d", r, g, b)
		}
	})

	t.Run("ppm", func(t *testing.T) {
		path := filepath.Join(dir, "render.ppm")
		if err := Save(path, FormatPPM, testGrid()); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read back PPM: %v", err)
		}
		if !bytes.HasPrefix(data, []byte("P3\n2 2\n255\n")) {
			t.Errorf("Unexpected PPM header: %q", data)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if err := Save(filepath.Join(dir, "render.bmp"), Format("bmp"), testGrid()); err == nil {
			t.Error("Expected error for unknown format")
		}
	})
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"ppm", "PNG", "Png"} {
		if _, err := ParseFormat(name); err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", name, err)
		}
	}
	if _, err := ParseFormat("jpeg"); err == nil {
		t.Error("Expected error for jpeg")
	}

	if FormatFromPath("out/render.PNG") != FormatPNG {
		t.Error("Expected png from .PNG extension")
	}
	if FormatFromPath("render.ppm") != FormatPPM || FormatFromPath("render") != FormatPPM {
		t.Error("Expected ppm by default")
	}
}
