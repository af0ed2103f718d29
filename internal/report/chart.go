package report

import (
	"fmt"
	"strconv"

	"github.com/fadilmartias/interview-report/internal/model"
)

const (
	chartWidth  = 496
	chartHeight = 120

	// plot area inside the drawing
	plotInsetX     = 20
	plotInsetY     = 20
	plotHeight     = 80
	barGroupSpace  = 5.0
	axisLabelSize  = 8
	valueAxisStep  = 2
	categoryOffset = 5
)

type Bar struct {
	Label string
	Value int
	Band  Band
}

// Chart is a vertical bar chart of scores over a fixed value domain.
type Chart struct {
	Width, Height float64
	Min, Max      int
	Bars          []Bar
}

// BuildChart returns one bar per record, labeled Q1..Qn, or nil when there are no records.
func BuildChart(records []model.Record) *Chart {
	if len(records) == 0 {
		return nil
	}
	bars := make([]Bar, len(records))
	for i, r := range records {
		bars[i] = Bar{
			Label: fmt.Sprintf("Q%d", i+1),
			Value: r.Score,
			Band:  ColorFor(r.Score),
		}
	}
	return &Chart{
		Width:  chartWidth,
		Height: chartHeight,
		Min:    0,
		Max:    10,
		Bars:   bars,
	}
}

type chartFlowable struct {
	chart *Chart
}

func (f chartFlowable) Draw(l *Layout) error {
	c := f.chart
	l.Reserve(c.Height)

	pdf := l.PDF()
	x0, y0 := l.Frame().X, pdf.GetY()

	plotLeft := x0 + plotInsetX
	plotWidth := c.Width - 2*plotInsetX
	plotBottom := y0 + c.Height - plotInsetY
	span := float64(c.Max - c.Min)

	scaleY := func(v int) float64 {
		if v < c.Min {
			v = c.Min
		}
		if v > c.Max {
			v = c.Max
		}
		return plotBottom - float64(v-c.Min)/span*plotHeight
	}

	pdf.SetFont("Helvetica", "", axisLabelSize)
	setText(pdf, black)
	setDraw(pdf, axisGrey)
	pdf.SetLineWidth(0.5)

	// value axis with ticks
	pdf.Line(plotLeft, plotBottom, plotLeft, plotBottom-plotHeight)
	for v := c.Min; v <= c.Max; v += valueAxisStep {
		y := scaleY(v)
		pdf.Line(plotLeft-3, y, plotLeft, y)
		label := strconv.Itoa(v)
		pdf.Text(plotLeft-5-pdf.GetStringWidth(label), y+axisLabelSize*0.35, label)
	}

	// category axis
	pdf.Line(plotLeft, plotBottom, plotLeft+plotWidth, plotBottom)

	slot := plotWidth / float64(len(c.Bars))
	for i, b := range c.Bars {
		left := plotLeft + float64(i)*slot
		top := scaleY(b.Value)
		if h := plotBottom - top; h > 0 {
			setFill(pdf, b.Band.ChartColor())
			pdf.Rect(left+barGroupSpace/2, top, slot-barGroupSpace, h, "F")
		}
		pdf.Text(left+(slot-pdf.GetStringWidth(b.Label))/2, plotBottom+categoryOffset+axisLabelSize, b.Label)
	}

	pdf.SetY(y0 + c.Height)
	return nil
}
