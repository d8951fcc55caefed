package gui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"biorhythm-studio/internal/biorhythm"
)

// Chart geometry. The vertical scale divides by 2.5 rather than 2 so
// the curves keep a margin inside the plot area.
const (
	chartWidth  = float32(700)
	chartHeight = float32(300)
	chartDays   = biorhythm.DefaultSampleCount
	pointSize   = float32(4)
)

func cycleColor(c biorhythm.Cycle) color.Color {
	switch c {
	case biorhythm.Physical:
		return color.NRGBA{R: 0xFF, A: 0xFF}
	case biorhythm.Emotional:
		return color.NRGBA{G: 0xAA, A: 0xFF}
	default:
		return color.NRGBA{B: 0xFF, A: 0xFF}
	}
}

// Chart is the hand-drawn biorhythm panel: a fixed-size plot of the
// three cycles over a rolling 33-day window, with point markers,
// connecting segments, a caption, and a legend.
type Chart struct {
	daysSinceBirth int

	caption *widget.Label
	plot    *fyne.Container
	root    *fyne.Container
}

// NewChart builds an empty chart; call SetDaysSinceBirth to populate it.
func NewChart() *Chart {
	chart := &Chart{
		caption: widget.NewLabel(""),
		plot:    container.New(&fixedPlotLayout{width: chartWidth, height: chartHeight}),
	}

	legend := container.NewHBox(
		legendItem("Physical (23 days)", cycleColor(biorhythm.Physical)),
		legendItem("Emotional (28 days)", cycleColor(biorhythm.Emotional)),
		legendItem("Intellectual (33 days)", cycleColor(biorhythm.Intellectual)),
	)

	chart.root = container.NewVBox(
		chart.caption,
		container.NewCenter(chart.plot),
		container.NewCenter(legend),
	)
	return chart
}

// Container returns the chart's root container.
func (c *Chart) Container() *fyne.Container {
	return c.root
}

// SetDaysSinceBirth redraws the chart window starting at the given day
// offset.
func (c *Chart) SetDaysSinceBirth(days int) {
	c.daysSinceBirth = days
	c.caption.SetText(fmt.Sprintf("Days since birth: %d (showing next %d days)", days, chartDays))
	c.redraw()
}

func (c *Chart) redraw() {
	objects := make([]fyne.CanvasObject, 0, 1+len(biorhythm.Cycles)*chartDays*2)

	background := canvas.NewRectangle(color.NRGBA{R: 0xF8, G: 0xF8, B: 0xF8, A: 0xFF})
	background.Resize(fyne.NewSize(chartWidth, chartHeight))
	objects = append(objects, background)

	center := canvas.NewLine(color.NRGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF})
	center.Position1 = fyne.NewPos(0, chartHeight/2)
	center.Position2 = fyne.NewPos(chartWidth, chartHeight/2)
	objects = append(objects, center)

	for _, cycle := range biorhythm.Cycles {
		series := cycle.Series(c.daysSinceBirth, chartDays)
		objects = append(objects, cycleSegments(series, cycleColor(cycle))...)
		objects = append(objects, cyclePoints(series, cycleColor(cycle))...)
	}

	c.plot.Objects = objects
	c.plot.Refresh()
}

// plotPosition maps a sample onto plot coordinates: offsets spread
// across the width, values in [-1,1] around the center line.
func plotPosition(sample biorhythm.SamplePoint) fyne.Position {
	xStep := chartWidth / float32(chartDays)
	x := float32(sample.Offset) * xStep
	y := chartHeight/2 - float32(sample.Value)*chartHeight/2.5
	return fyne.NewPos(x, y)
}

func cycleSegments(series []biorhythm.SamplePoint, clr color.Color) []fyne.CanvasObject {
	if len(series) < 2 {
		return nil
	}
	segments := make([]fyne.CanvasObject, 0, len(series)-1)
	for i := 0; i+1 < len(series); i++ {
		line := canvas.NewLine(clr)
		line.StrokeWidth = 2
		line.Position1 = plotPosition(series[i])
		line.Position2 = plotPosition(series[i+1])
		segments = append(segments, line)
	}
	return segments
}

func cyclePoints(series []biorhythm.SamplePoint, clr color.Color) []fyne.CanvasObject {
	points := make([]fyne.CanvasObject, 0, len(series))
	for _, sample := range series {
		dot := canvas.NewCircle(clr)
		pos := plotPosition(sample)
		dot.Move(fyne.NewPos(pos.X-pointSize/2, pos.Y-pointSize/2))
		dot.Resize(fyne.NewSize(pointSize, pointSize))
		points = append(points, dot)
	}
	return points
}

func legendItem(label string, clr color.Color) fyne.CanvasObject {
	swatch := canvas.NewRectangle(clr)
	swatch.SetMinSize(fyne.NewSize(20, 3))
	return container.NewHBox(container.NewCenter(swatch), widget.NewLabel(label))
}

// fixedPlotLayout pins the plot container to a fixed size and leaves
// canvas objects where redraw placed them; lines and circles carry
// their own positions.
type fixedPlotLayout struct {
	width  float32
	height float32
}

func (l *fixedPlotLayout) Layout(_ []fyne.CanvasObject, _ fyne.Size) {}

func (l *fixedPlotLayout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(l.width, l.height)
}
