package statistics

import (
	"fmt"

	models "achievement-portal/app/models/postgresql"
)

func attemptLabel(n int) string {
	return fmt.Sprintf("attempt #%d", n)
}

func emptyTrend() models.ScoreTrend {
	return models.ScoreTrend{Labels: []string{}, Scores: []float64{}}
}

func emptyBandSeries() models.StudentBandSeries {
	return models.StudentBandSeries{
		Labels:    []string{},
		Excellent: []int{},
		Good:      []int{},
		Average:   []int{},
		Pass:      []int{},
	}
}

func defaultLabels() []string {
	return append([]string(nil), models.DefaultAchievementTypeNames...)
}

// studentFallback is the placeholder the student dashboard renders when its
// rows cannot be retrieved: the default type labels with zero counts, three
// blank trend slots, and zeroed totals.
func studentFallback() models.StatisticsResult {
	labels := defaultLabels()
	return models.StatisticsResult{
		PublicationByType:   models.ChartSeries{Labels: labels, Data: make([]int, len(labels))},
		ScoreTrend:          models.ScoreTrend{Labels: []string{"", "", ""}, Scores: []float64{0, 0, 0}},
		StudentPublications: emptyBandSeries(),
		StudentStats:        models.StudentTotals{},
	}
}

// teacherFallback mirrors the teacher result shape on the same default label
// set, with a zeroed band series aligned to it.
func teacherFallback() models.StatisticsResult {
	labels := defaultLabels()
	n := len(labels)
	return models.StatisticsResult{
		PublicationByType: models.ChartSeries{Labels: labels, Data: make([]int, n)},
		ScoreTrend:        emptyTrend(),
		StudentPublications: models.StudentBandSeries{
			Labels:    labels,
			Excellent: make([]int, n),
			Good:      make([]int, n),
			Average:   make([]int, n),
			Pass:      make([]int, n),
		},
		StudentStats: models.StudentTotals{},
	}
}
