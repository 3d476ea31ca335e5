package renderer

import (
	"bytes"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	ID               uuid.UUID     // Identifies one render in logs
	Scene            string        // Name of the rendered scene
	Width, Height    int           // Output size in pixels
	Supersample      int           // Samples per pixel along each axis
	Primitives       int           // Shaded primitives in the scene
	Lights           int           // Point lights in the scene
	PrimaryRays      int           // Camera rays traced
	Hits             int           // Camera rays that hit a primitive
	Duration         time.Duration // Wall time of tracing and downscaling
	AverageLuminance float64       // Mean luminance of the output image
}

// HitRatio returns the fraction of primary rays that hit something
func (s RenderStats) HitRatio() float64 {
	if s.PrimaryRays == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.PrimaryRays)
}

// Table formats the statistics as a two-column text table
func (s RenderStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Statistic", "Value"})
	table.AppendBulk([][]string{
		{"Render", s.ID.String()},
		{"Scene", s.Scene},
		{"Size", fmt.Sprintf("%dx%d", s.Width, s.Height)},
		{"Supersample", fmt.Sprintf("%d", s.Supersample)},
		{"Primitives", fmt.Sprintf("%d", s.Primitives)},
		{"Lights", fmt.Sprintf("%d", s.Lights)},
		{"Primary rays", fmt.Sprintf("%d", s.PrimaryRays)},
		{"Hits", fmt.Sprintf("%d (%02.1f %%)", s.Hits, 100*s.HitRatio())},
		{"Average luminance", fmt.Sprintf("%.4f", s.AverageLuminance)},
	})
	table.SetFooter([]string{"Render time", s.Duration.String()})
	table.Render()
	return buf.String()
}

// BVHTable formats BVH statistics as a text table
func BVHTable(stats core.BVHStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"BVH", "Value"})
	table.AppendBulk([][]string{
		{"Objects", fmt.Sprintf("%d", stats.TotalObjects)},
		{"Nodes", fmt.Sprintf("%d", stats.TotalNodes)},
		{"Leaves", fmt.Sprintf("%d", stats.LeafNodes)},
		{"Max depth", fmt.Sprintf("%d", stats.MaxDepth)},
		{"Average leaf depth", fmt.Sprintf("%.2f", stats.AvgDepth)},
		{"Max leaf size", fmt.Sprintf("%d", stats.MaxLeafSize)},
	})
	table.Render()
	return buf.String()
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 0xffff
		}
	}
	return total / float64(pixels)
}
