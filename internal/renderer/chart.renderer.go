package renderer

import (
	"context"
	"fmt"

	"portfoliochart/internal/domain"
	"portfoliochart/internal/logger"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ChartRenderer draws a projected series to an image file, one line per
// symbol over the shared date axis.
type ChartRenderer interface {
	Render(ctx context.Context, series *domain.ProjectedSeries, outputPath string) error
}

func NewChartRenderer(title string, widthInches, heightInches float64) ChartRenderer {
	return chartRendererHandler{
		Title:  title,
		Width:  vg.Length(widthInches) * vg.Inch,
		Height: vg.Length(heightInches) * vg.Inch,
	}
}

type chartRendererHandler struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

// Render saves the chart to outputPath; the format follows the file
// extension (.png, .svg, .pdf, ...). A projection with no observed values
// still renders, as an empty chart.
func (h chartRendererHandler) Render(ctx context.Context, series *domain.ProjectedSeries, outputPath string) error {
	log := logger.FromContext(ctx)

	p := plot.New()
	p.Title.Text = h.Title
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Value"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Legend.Top = true

	for i, symbol := range series.Symbols {
		points := symbolPoints(series, symbol)
		if len(points) == 0 {
			log.Warnf("no observed values for %s, drawing an empty line", symbol)
		}

		line, err := plotter.NewLine(points)
		if err != nil {
			return fmt.Errorf("failed to build line for %s: %w", symbol, err)
		}
		line.Color = plotutil.Color(i)

		p.Add(line)
		p.Legend.Add(symbol, line)
	}

	if err := p.Save(h.Width, h.Height, outputPath); err != nil {
		return fmt.Errorf("failed to save chart to %s: %w", outputPath, err)
	}

	return nil
}

// symbolPoints drops absent values from the line; the date axis itself
// still spans every observed date.
func symbolPoints(series *domain.ProjectedSeries, symbol string) plotter.XYs {
	points := plotter.XYs{}
	for i, value := range series.Series[symbol] {
		if value == nil {
			continue
		}
		points = append(points, plotter.XY{
			X: float64(series.Dates[i].Unix()),
			Y: value.InexactFloat64(),
		})
	}
	return points
}
