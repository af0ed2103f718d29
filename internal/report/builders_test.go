package report

import (
	"testing"

	"github.com/fadilmartias/interview-report/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRecords = []model.Record{
	{Question: "communication skills", Score: 8, Comment: "Excellent clarity"},
	{Question: "problem solving", Score: 3, Comment: "Missed the edge cases"},
	{Question: "teamwork", Score: 6, Comment: "Adequate"},
}

func TestBuildChart(t *testing.T) {
	assert.Nil(t, BuildChart(nil))
	assert.Nil(t, BuildChart([]model.Record{}))

	chart := BuildChart(sampleRecords)
	require.NotNil(t, chart)
	assert.Equal(t, 0, chart.Min)
	assert.Equal(t, 10, chart.Max)
	assert.Equal(t, float64(chartWidth), chart.Width)
	assert.Equal(t, []Bar{
		{Label: "Q1", Value: 8, Band: BandHigh},
		{Label: "Q2", Value: 3, Band: BandLow},
		{Label: "Q3", Value: 6, Band: BandMid},
	}, chart.Bars)
}

func TestBuildTable(t *testing.T) {
	assert.Nil(t, BuildTable(nil))

	table := BuildTable(sampleRecords)
	require.NotNil(t, table)
	assert.True(t, table.RepeatHeader)

	headers := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		headers[i] = c.Header
	}
	assert.Equal(t, []string{"Question", "Analysis / Feedback", "Score"}, headers)
	assert.Equal(t, AlignLeft, table.Columns[0].Align)
	assert.Equal(t, AlignLeft, table.Columns[1].Align)
	assert.Equal(t, AlignCenter, table.Columns[2].Align)
	assert.LessOrEqual(t, table.Width(), float64(chartWidth))

	require.Len(t, table.Rows, 3)
	assert.Equal(t, "communication skills", table.Rows[0][0].Text)
	assert.Equal(t, "Excellent clarity", table.Rows[0][1].Text)

	score := table.Rows[1][2]
	assert.Equal(t, "3/10", score.Text)
	assert.True(t, score.Bold)
	assert.Equal(t, BandLow.TextColor(), score.Color)
}

func TestChartAndTableShareBands(t *testing.T) {
	chart := BuildChart(sampleRecords)
	table := BuildTable(sampleRecords)
	for i, bar := range chart.Bars {
		assert.Equal(t, bar.Band.TextColor(), table.Rows[i][2].Color)
	}
}

func TestSplitRow(t *testing.T) {
	line := []byte("text")
	row := tableRow{
		fonts: []cellFont{tableBodyFont, tableBodyFont},
		lines: [][][]byte{{line}, {line, line, line, line, line}},
	}
	row.height = rowHeight(row)

	tests := []struct {
		name      string
		available float64
		ok        bool
		headLines int
	}{
		{"two lines fit", 2*tablePadding + 2*tableBodyFont.leading + 1, true, 2},
		{"whole row fits", row.height + 10, false, 0},
		{"no line fits", 2*tablePadding + tableBodyFont.leading - 1, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			head, tail, ok := splitRow(row, tt.available)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Len(t, head.lines[1], tt.headLines)
			assert.Len(t, tail.lines[1], 5-tt.headLines)
			assert.Len(t, head.lines[0], 1)
			assert.Empty(t, tail.lines[0])
			assert.LessOrEqual(t, head.height, tt.available)
			assert.InDelta(t, row.height, head.height+tail.height-2*tablePadding, 0.001)
		})
	}
}
