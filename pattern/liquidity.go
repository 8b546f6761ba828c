package pattern

import (
	"sort"

	"scanner/model"
)

const (
	DefaultSwingLeft       = 2
	DefaultSwingRight      = 2
	DefaultMinDepthPercent = 0.05
	DefaultLookbackBars    = 50

	// A series shorter than this has too little swing structure to score.
	minSeriesLength = 20
)

// Classifier applies the liquidity-grab rule set over a series and its
// swing-low annotations. The zero value is not useful; use NewClassifier
// or fill every field.
type Classifier struct {
	SwingLeft       int
	SwingRight      int
	MinDepthPercent float64
	LookbackBars    int
}

func NewClassifier() Classifier {
	return Classifier{
		SwingLeft:       DefaultSwingLeft,
		SwingRight:      DefaultSwingRight,
		MinDepthPercent: DefaultMinDepthPercent,
		LookbackBars:    DefaultLookbackBars,
	}
}

// Classify scans the series for bars whose low pierces a prior swing low
// while the close recovers above it. Swing lows are tried in ascending
// index order within the trailing lookback window, and the first one whose
// depth clears the threshold wins, so a bar emits at most one event and it
// references the oldest eligible support level. Events come out ordered by
// bar index ascending.
func (c Classifier) Classify(series []model.Candle, swings map[int]float64) []model.GrabEvent {
	if len(series) < minSeriesLength || len(swings) == 0 {
		return nil
	}

	swingIdx := make([]int, 0, len(swings))
	for s := range swings {
		swingIdx = append(swingIdx, s)
	}
	sort.Ints(swingIdx)

	var events []model.GrabEvent
	for idx := c.SwingLeft + c.SwingRight; idx < len(series); idx++ {
		low := series[idx].Low
		close := series[idx].Close

		for _, s := range swingIdx {
			if s >= idx {
				break
			}
			if idx-s > c.LookbackBars {
				continue
			}
			swingLow := swings[s]
			if low < swingLow && close > swingLow {
				depth := (swingLow - low) / swingLow * 100
				if depth > c.MinDepthPercent {
					events = append(events, model.GrabEvent{
						BarIndex:   idx,
						Timestamp:  series[idx].Timestamp,
						SwingIndex: s,
						SwingLow:   swingLow,
						Depth:      depth,
						Close:      close,
					})
					break
				}
			}
		}
	}
	return events
}
