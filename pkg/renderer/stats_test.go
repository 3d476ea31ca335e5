package renderer

import (
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/google/uuid"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Red 0.2126, green 0.7152, blue 0.0722 and black average to 0.25
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_Edges(t *testing.T) {
	white := image.NewRGBA(image.Rect(0, 0, 1, 1))
	white.Set(0, 0, color.RGBA{255, 255, 255, 255})
	if lum := CalculateAverageLuminance(white); lum < 0.9999 || lum > 1.0001 {
		t.Errorf("Expected white luminance 1, got %f", lum)
	}

	if lum := CalculateAverageLuminance(image.NewRGBA(image.Rect(0, 0, 0, 0))); lum != 0 {
		t.Errorf("Expected empty image luminance 0, got %f", lum)
	}
}

func TestRenderStats_Table(t *testing.T) {
	id := uuid.New()
	stats := RenderStats{
		ID:          id,
		Scene:       "default",
		Width:       40,
		Height:      20,
		Supersample: 2,
		PrimaryRays: 3200,
		Hits:        1600,
		Duration:    1500 * time.Millisecond,
	}

	if ratio := stats.HitRatio(); ratio != 0.5 {
		t.Errorf("Expected hit ratio 0.5, got %f", ratio)
	}
	if ratio := (RenderStats{}).HitRatio(); ratio != 0 {
		t.Errorf("Expected zero hit ratio without rays, got %f", ratio)
	}

	table := stats.Table()
	for _, want := range []string{id.String(), "default", "40x20", "3200", "50.0 %", "1.5s"} {
		if !strings.Contains(table, want) {
			t.Errorf("Expected table to contain %q:\n%s", want, table)
		}
	}
}

func TestBVHTable(t *testing.T) {
	table := BVHTable(core.BVHStats{TotalNodes: 7, LeafNodes: 4, MaxDepth: 2, AvgDepth: 2, TotalObjects: 13, MaxLeafSize: 4})
	for _, want := range []string{"Objects", "13", "Leaves", "Average leaf depth", "2.00"} {
		if !strings.Contains(table, want) {
			t.Errorf("Expected table to contain %q:\n%s", want, table)
		}
	}
}
