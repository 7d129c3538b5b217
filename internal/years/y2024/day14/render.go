package day14

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/advent-go/advent/internal/grid"
)

// Render draws a frame as a scatter plot and saves it to path. The image
// format follows the file extension (png, svg, pdf, ...).
func Render(frame []grid.Point[int], room grid.Point[int], seconds int, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Robots after %d seconds", seconds)
	p.X.Min, p.X.Max = 0, float64(room.X)
	p.Y.Min, p.Y.Max = 0, float64(room.Y)

	// The room's y axis grows downwards.
	pts := make(plotter.XYs, len(frame))
	for i, pos := range frame {
		pts[i] = plotter.XY{X: float64(pos.X), Y: float64(room.Y - 1 - pos.Y)}
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("failed to build scatter: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(scatter)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
