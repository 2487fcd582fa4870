package usecase

import (
	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/github-profile-explorer/internal/domain"
)

// Summary holds totals over a result set, shown alongside the table.
type Summary struct {
	Repositories int
	TotalStars   int
	MedianStars  float64
	TotalForks   int
}

// Summarize computes the Summary of repos. An empty set yields a zero Summary.
func Summarize(repos []domain.Repository) Summary {
	if len(repos) == 0 {
		return Summary{}
	}

	starData := make(stats.Float64Data, 0, len(repos))
	forkData := make(stats.Float64Data, 0, len(repos))
	for _, r := range repos {
		starData = append(starData, float64(r.StargazersCount))
		forkData = append(forkData, float64(r.ForksCount))
	}

	// The stats functions only fail on empty input, which is excluded above.
	totalStars, _ := starData.Sum()
	medianStars, _ := starData.Median()
	totalForks, _ := forkData.Sum()

	return Summary{
		Repositories: len(repos),
		TotalStars:   int(totalStars),
		MedianStars:  medianStars,
		TotalForks:   int(totalForks),
	}
}
