package pattern_test

import (
	"testing"
	"time"

	"scanner/model"
	"scanner/pattern"
)

// flatSeries builds n daily bars with the given low, high low+5 and close
// low+1, starting 2026-01-02.
func flatSeries(n int, low float64) []model.Candle {
	t0 := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Candle, n)
	for i := range bars {
		bars[i] = model.Candle{
			Symbol:    "TEST",
			Open:      low + 1,
			High:      low + 5,
			Low:       low,
			Close:     low + 1,
			Volume:    1000,
			Timestamp: t0.AddDate(0, 0, i),
		}
	}
	return bars
}

func setBar(bars []model.Candle, i int, low, close float64) {
	bars[i].Low = low
	bars[i].Close = close
	bars[i].Open = close
}

func TestFindSwingLows_Basic(t *testing.T) {
	bars := flatSeries(9, 100)
	setBar(bars, 4, 95, 96)

	swings := pattern.FindSwingLows(bars, 2, 2)
	if len(swings) != 1 {
		t.Fatalf("expected 1 swing low, got %d (%v)", len(swings), swings)
	}
	if v, ok := swings[4]; !ok || v != 95 {
		t.Fatalf("expected swing low 95 at index 4, got %v", swings)
	}
}

func TestFindSwingLows_EdgesNeverQualify(t *testing.T) {
	bars := flatSeries(10, 100)
	// deepest lows of the whole series, but inside the edge windows
	setBar(bars, 1, 90, 91)
	setBar(bars, 8, 89, 90)

	swings := pattern.FindSwingLows(bars, 2, 2)
	for _, i := range []int{0, 1, 8, 9} {
		if _, ok := swings[i]; ok {
			t.Errorf("bar %d is within the edge window and must not be a swing low", i)
		}
	}
}

func TestFindSwingLows_TieDisqualifies(t *testing.T) {
	bars := flatSeries(9, 100)
	setBar(bars, 3, 95, 96)
	setBar(bars, 4, 95, 96)

	swings := pattern.FindSwingLows(bars, 2, 2)
	if len(swings) != 0 {
		t.Fatalf("equal neighboring lows must not produce swing lows, got %v", swings)
	}
}

func TestFindSwingLows_ShortSeries(t *testing.T) {
	bars := flatSeries(4, 100)
	setBar(bars, 2, 90, 91)

	if swings := pattern.FindSwingLows(bars, 2, 2); len(swings) != 0 {
		t.Fatalf("series shorter than left+right+1 must yield no swings, got %v", swings)
	}
}

func TestFindSwingLows_AsymmetricWindow(t *testing.T) {
	bars := flatSeries(8, 100)
	setBar(bars, 3, 95, 96)

	swings := pattern.FindSwingLows(bars, 3, 1)
	if v, ok := swings[3]; !ok || v != 95 {
		t.Fatalf("expected swing low at index 3 with left=3 right=1, got %v", swings)
	}
}
