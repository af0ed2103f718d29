package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFor_Boundaries(t *testing.T) {
	tests := []struct {
		score    int
		expected Band
	}{
		{0, BandLow},
		{3, BandLow},
		{4, BandMid},
		{6, BandMid},
		{7, BandHigh},
		{10, BandHigh},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, ColorFor(tt.score), "score %d", tt.score)
		})
	}
}

func TestBandColors(t *testing.T) {
	assert.Equal(t, RGB{0xe7, 0x4c, 0x3c}, BandLow.ChartColor())
	assert.Equal(t, RGB{255, 0, 0}, BandLow.TextColor())
	assert.Equal(t, RGB{255, 165, 0}, BandMid.TextColor())
	assert.Equal(t, RGB{0, 128, 0}, BandHigh.TextColor())
}
