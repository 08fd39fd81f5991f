package store

import (
	"sort"
	"time"
)

// Summary aggregates a game history.
type Summary struct {
	Games           int
	AverageScore    float64
	MedianScore     float64
	MaxScore        int
	AverageDuration time.Duration
}

// Summarize computes the aggregates of history. An empty history yields the
// zero Summary.
func Summarize(history []GameRecord) Summary {
	if len(history) == 0 {
		return Summary{}
	}

	scores := make([]int, 0, len(history))
	var total int
	var duration time.Duration
	sum := Summary{Games: len(history), MaxScore: history[0].Score}
	for _, rec := range history {
		scores = append(scores, rec.Score)
		total += rec.Score
		duration += rec.Duration()
		if rec.Score > sum.MaxScore {
			sum.MaxScore = rec.Score
		}
	}

	sort.Ints(scores)
	if len(scores)%2 == 0 {
		sum.MedianScore = float64(scores[len(scores)/2-1]+scores[len(scores)/2]) / 2
	} else {
		sum.MedianScore = float64(scores[len(scores)/2])
	}
	sum.AverageScore = float64(total) / float64(len(history))
	sum.AverageDuration = duration / time.Duration(len(history))
	return sum
}
