package review

import (
	"math"

	"sevagram/models"
)

// Summarize averages ratings rounded to one decimal place.
func Summarize(ratings []int) models.RatingSummary {
	if len(ratings) == 0 {
		return models.RatingSummary{}
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return models.RatingSummary{
		Average: math.Round(avg*10) / 10,
		Total:   len(ratings),
	}
}
