package report

// Band is the severity band of a score.
type Band int

const (
	BandLow Band = iota
	BandMid
	BandHigh
)

type RGB struct {
	R, G, B int
}

var (
	white     = RGB{255, 255, 255}
	black     = RGB{0, 0, 0}
	navy      = RGB{0x1F, 0x2A, 0x3C}
	lightGrey = RGB{211, 211, 211}
	axisGrey  = RGB{80, 80, 80}
)

// ColorFor maps a score to its band: <=3 low, <=6 mid, above that high.
// Chart and table both color through this function.
func ColorFor(score int) Band {
	switch {
	case score <= 3:
		return BandLow
	case score <= 6:
		return BandMid
	default:
		return BandHigh
	}
}

func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandMid:
		return "mid"
	default:
		return "high"
	}
}

// ChartColor is the bar fill for the band.
func (b Band) ChartColor() RGB {
	switch b {
	case BandLow:
		return RGB{0xe7, 0x4c, 0x3c}
	case BandMid:
		return RGB{0xf1, 0xc4, 0x0f}
	default:
		return RGB{0x2e, 0xcc, 0x71}
	}
}

// TextColor is the score text color in the table.
func (b Band) TextColor() RGB {
	switch b {
	case BandLow:
		return RGB{255, 0, 0}
	case BandMid:
		return RGB{255, 165, 0}
	default:
		return RGB{0, 128, 0}
	}
}
