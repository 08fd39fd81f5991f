package store

import (
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	history := []GameRecord{
		{Score: 10, StartTime: start, EndTime: start.Add(10 * time.Second)},
		{Score: 40, StartTime: start, EndTime: start.Add(30 * time.Second)},
		{Score: 20, StartTime: start, EndTime: start.Add(20 * time.Second)},
		{Score: 50, StartTime: start, EndTime: start.Add(40 * time.Second)},
	}

	sum := Summarize(history)
	if sum.Games != 4 || sum.MaxScore != 50 {
		t.Errorf("games = %d max = %d, want 4 50", sum.Games, sum.MaxScore)
	}
	if sum.AverageScore != 30 {
		t.Errorf("average = %v, want 30", sum.AverageScore)
	}
	if sum.MedianScore != 30 {
		t.Errorf("median = %v, want 30", sum.MedianScore)
	}
	if sum.AverageDuration != 25*time.Second {
		t.Errorf("average duration = %v, want 25s", sum.AverageDuration)
	}

	if odd := Summarize(history[:3]); odd.MedianScore != 20 {
		t.Errorf("odd median = %v, want 20", odd.MedianScore)
	}
	if empty := Summarize(nil); empty != (Summary{}) {
		t.Errorf("empty summary = %+v", empty)
	}
}
