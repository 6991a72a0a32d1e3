package models

// ChartSeries is a label-aligned count series for a bar or doughnut chart.
type ChartSeries struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// ScoreTrend is the student's approved scores in chronological order.
type ScoreTrend struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// StudentBandSeries groups scored achievements into grade bands per
// achievement type. The four count slices are aligned to Labels.
type StudentBandSeries struct {
	Labels    []string `json:"labels"`
	Excellent []int    `json:"excellent"`
	Good      []int    `json:"good"`
	Average   []int    `json:"average"`
	Pass      []int    `json:"pass"`
}

type StudentTotals struct {
	TotalProjects  int     `json:"totalProjects"`
	PassedProjects int     `json:"passedProjects"`
	AverageScore   float64 `json:"averageScore"`
	CompletionRate float64 `json:"completionRate"`
}

// StatisticsResult is the fixed shape both dashboards render. Every field is
// always populated; callers never need an error branch.
type StatisticsResult struct {
	PublicationByType   ChartSeries       `json:"publicationByType"`
	ScoreTrend          ScoreTrend        `json:"scoreTrend"`
	StudentPublications StudentBandSeries `json:"studentPublications"`
	StudentStats        StudentTotals     `json:"studentStats"`
}

// TeacherDashboardStats holds the four counters on the teacher landing page.
type TeacherDashboardStats struct {
	PendingCount   int `json:"pendingCount"`
	PublishedCount int `json:"publishedCount"`
	StudentCount   int `json:"studentCount"`
	ProjectCount   int `json:"projectCount"`
}

// DefaultAchievementTypeNames is the fixed reference list the dashboards fall
// back to when the achievement_types table cannot be read or is empty.
var DefaultAchievementTypeNames = []string{"Report", "Paper", "Project", "Competition"}

// UnclassifiedTypeLabel buckets achievements whose type row no longer exists.
const UnclassifiedTypeLabel = "unclassified"
