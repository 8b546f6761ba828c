package pattern

import "scanner/model"

// FindSwingLows marks every bar whose low sits strictly below the lows of
// the left preceding and right following bars. A neighbor with an equal low
// disqualifies the candidate. Bars within left/right of either edge of the
// series have no full comparison window and are never marked.
//
// Returns bar index -> low price for every swing low found.
func FindSwingLows(series []model.Candle, left, right int) map[int]float64 {
	swings := make(map[int]float64)
	if len(series) < left+right+1 {
		return swings
	}

	for i := left; i < len(series)-right; i++ {
		current := series[i].Low
		qualified := true
		for j := i - left; j <= i+right; j++ {
			if j == i {
				continue
			}
			if series[j].Low <= current {
				qualified = false
				break
			}
		}
		if qualified {
			swings[i] = current
		}
	}
	return swings
}
