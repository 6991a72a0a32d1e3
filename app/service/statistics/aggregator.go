// Package statistics computes the dashboard metrics behind the student and
// teacher views. Every entry point reads through the query gateway, never
// writes, and never fails: a retrieval error is logged and mapped to a fixed
// fallback result so the dashboards always have something renderable.
package statistics

import (
	"context"
	"log"
	"math"
	"sort"
	"time"

	"achievement-portal/app/gateway"
	models "achievement-portal/app/models/postgresql"

	"github.com/google/uuid"
)

const (
	tableAchievements     = "achievements"
	tableAchievementTypes = "achievement_types"
	tableUsers            = "users"
)

// Aggregator reduces achievement rows into dashboard metrics. It keeps no
// state between calls; each method is one read-then-compute pass.
type Aggregator struct {
	gw gateway.QueryGateway
}

func NewAggregator(gw gateway.QueryGateway) *Aggregator {
	return &Aggregator{gw: gw}
}

// StudentStatistics builds the student dashboard for the given user: totals,
// average approved score, completion rate, a per-type breakdown of everything
// the student has filed, and the chronological trend of approved scores.
func (a *Aggregator) StudentStatistics(ctx context.Context, studentID uuid.UUID) models.StatisticsResult {
	if studentID == uuid.Nil {
		log.Println("statistics: student dashboard requested without a resolved user")
		return studentFallback()
	}

	rows, err := a.gw.Select(ctx, tableAchievements,
		gateway.Eq("publisher_id", studentID.String()),
	)
	if err != nil {
		log.Printf("statistics: student achievements query failed: %v", err)
		return studentFallback()
	}

	typeNames, err := a.typeNamesByID(ctx)
	if err != nil {
		log.Printf("statistics: achievement types query failed: %v", err)
		return studentFallback()
	}

	type trendPoint struct {
		created time.Time
		score   float64
	}

	total := len(rows)
	passed := 0
	scored := 0
	scoreSum := 0.0
	var trend []trendPoint

	byType := models.ChartSeries{Labels: []string{}, Data: []int{}}
	indexByLabel := make(map[string]int)

	for _, r := range rows {
		// Every record counts toward the breakdown, whatever its status.
		name := typeNames[r.String("type_id")]
		if name == "" {
			name = models.UnclassifiedTypeLabel
		}
		i, seen := indexByLabel[name]
		if !seen {
			i = len(byType.Labels)
			indexByLabel[name] = i
			byType.Labels = append(byType.Labels, name)
			byType.Data = append(byType.Data, 0)
		}
		byType.Data[i]++

		if !models.IsApproved(r["status"]) {
			continue
		}
		passed++

		score, ok := r.Float("score")
		if !ok {
			// Approved but never graded; keep it out of the average.
			continue
		}
		scored++
		scoreSum += score
		trend = append(trend, trendPoint{created: r.Time("created_at"), score: score})
	}

	average := 0.0
	if scored > 0 {
		average = round2(scoreSum / float64(scored))
	}
	completion := 0.0
	if total > 0 {
		completion = round2(float64(passed) / float64(total) * 100)
	}

	sort.SliceStable(trend, func(i, j int) bool {
		return trend[i].created.Before(trend[j].created)
	})
	scoreTrend := emptyTrend()
	for i, p := range trend {
		scoreTrend.Labels = append(scoreTrend.Labels, attemptLabel(i+1))
		scoreTrend.Scores = append(scoreTrend.Scores, p.score)
	}

	return models.StatisticsResult{
		PublicationByType:   byType,
		ScoreTrend:          scoreTrend,
		StudentPublications: emptyBandSeries(),
		StudentStats: models.StudentTotals{
			TotalProjects:  total,
			PassedProjects: passed,
			AverageScore:   average,
			CompletionRate: completion,
		},
	}
}

// TeacherStatistics builds the teacher dashboard. Unlike the student view,
// the per-type breakdown is bucketed on the full achievement-type table in
// creation order, so types with no publications still chart as zero.
func (a *Aggregator) TeacherStatistics(ctx context.Context, teacherID uuid.UUID) models.StatisticsResult {
	if teacherID == uuid.Nil {
		log.Println("statistics: teacher dashboard requested without a resolved user")
		return teacherFallback()
	}

	typeRows, err := a.gw.Select(ctx, tableAchievementTypes,
		gateway.OrderAsc("created_at"),
	)
	if err != nil {
		log.Printf("statistics: achievement types query failed: %v", err)
		return teacherFallback()
	}
	if len(typeRows) == 0 {
		log.Println("statistics: achievement type table is empty, serving defaults")
		return teacherFallback()
	}

	labels := make([]string, len(typeRows))
	indexByTypeID := make(map[string]int, len(typeRows))
	for i, r := range typeRows {
		labels[i] = r.String("name")
		indexByTypeID[r.String("id")] = i
	}

	achRows, err := a.gw.Select(ctx, tableAchievements,
		gateway.Eq("publisher_id", teacherID.String()),
	)
	if err != nil {
		log.Printf("statistics: teacher publications query failed: %v", err)
		return teacherFallback()
	}

	counts := make([]int, len(labels))
	for _, r := range achRows {
		if !models.IsApproved(r["status"]) {
			continue
		}
		if i, ok := indexByTypeID[r.String("type_id")]; ok {
			counts[i]++
		}
	}

	return models.StatisticsResult{
		PublicationByType:   models.ChartSeries{Labels: labels, Data: counts},
		ScoreTrend:          emptyTrend(), // teachers read trends off the activity table page
		StudentPublications: a.TeacherStudentStats(ctx, teacherID),
		StudentStats:        models.StudentTotals{},
	}
}

// TeacherStudentStats tallies scored achievements into grade bands per type.
// The tally spans every student in the system, not only those supervised by
// teacherID; product has not decided whether to narrow it, so the behavior is
// kept as shipped. Status is deliberately not filtered here: a scored record
// still in review counts.
func (a *Aggregator) TeacherStudentStats(ctx context.Context, teacherID uuid.UUID) models.StudentBandSeries {
	userRows, err := a.gw.Select(ctx, tableUsers,
		gateway.Columns("id"),
		gateway.Eq("role", models.RoleStudent),
	)
	if err != nil {
		log.Printf("statistics: student roster query failed: %v", err)
		return emptyBandSeries()
	}
	if len(userRows) == 0 {
		return emptyBandSeries()
	}

	studentIDs := make([]any, 0, len(userRows))
	for _, r := range userRows {
		studentIDs = append(studentIDs, r.String("id"))
	}

	achRows, err := a.gw.Select(ctx, tableAchievements,
		gateway.In("publisher_id", studentIDs...),
		gateway.NotNull("score"),
	)
	if err != nil {
		log.Printf("statistics: scored achievements query failed: %v", err)
		return emptyBandSeries()
	}

	typeNames, err := a.typeNamesByID(ctx)
	if err != nil {
		log.Printf("statistics: achievement types query failed: %v", err)
		return emptyBandSeries()
	}

	out := emptyBandSeries()
	indexByLabel := make(map[string]int)
	for _, r := range achRows {
		score, ok := r.Float("score")
		if !ok {
			continue
		}

		name := typeNames[r.String("type_id")]
		if name == "" {
			name = models.UnclassifiedTypeLabel
		}
		i, seen := indexByLabel[name]
		if !seen {
			i = len(out.Labels)
			indexByLabel[name] = i
			out.Labels = append(out.Labels, name)
			out.Excellent = append(out.Excellent, 0)
			out.Good = append(out.Good, 0)
			out.Average = append(out.Average, 0)
			out.Pass = append(out.Pass, 0)
		}

		switch {
		case score >= 90:
			out.Excellent[i]++
		case score >= 80:
			out.Good[i]++
		case score >= 70:
			out.Average[i]++
		case score >= 60:
			out.Pass[i]++
		}
		// Below 60 lands in no band.
	}
	return out
}

// TeacherDashboard returns the four landing-page counters. The four reads are
// independent; if any of them fails the whole result falls back to zeros so
// the page never mixes real and default numbers. Note the asymmetry carried
// over from the approval flow: pending is counted by instructor, published by
// publisher.
func (a *Aggregator) TeacherDashboard(ctx context.Context, teacherID uuid.UUID) models.TeacherDashboardStats {
	if teacherID == uuid.Nil {
		log.Println("statistics: teacher counters requested without a resolved user")
		return models.TeacherDashboardStats{}
	}
	id := teacherID.String()

	reviewQueue, err := a.gw.Select(ctx, tableAchievements,
		gateway.Columns("status"),
		gateway.Eq("instructor_id", id),
	)
	if err != nil {
		log.Printf("statistics: pending counter query failed: %v", err)
		return models.TeacherDashboardStats{}
	}
	pending := 0
	for _, r := range reviewQueue {
		if models.IsPending(r["status"]) {
			pending++
		}
	}

	ownWork, err := a.gw.Select(ctx, tableAchievements,
		gateway.Columns("status"),
		gateway.Eq("publisher_id", id),
	)
	if err != nil {
		log.Printf("statistics: published counter query failed: %v", err)
		return models.TeacherDashboardStats{}
	}
	published := 0
	for _, r := range ownWork {
		if models.IsApproved(r["status"]) {
			published++
		}
	}

	publisherRows, err := a.gw.Select(ctx, tableAchievements,
		gateway.Columns("publisher_id"),
		gateway.Eq("instructor_id", id),
	)
	if err != nil {
		log.Printf("statistics: student counter query failed: %v", err)
		return models.TeacherDashboardStats{}
	}
	distinct := make(map[string]struct{})
	for _, r := range publisherRows {
		distinct[r.String("publisher_id")] = struct{}{}
	}

	supervised, err := a.gw.Select(ctx, tableAchievements,
		gateway.Columns("id"),
		gateway.Eq("instructor_id", id),
	)
	if err != nil {
		log.Printf("statistics: project counter query failed: %v", err)
		return models.TeacherDashboardStats{}
	}

	return models.TeacherDashboardStats{
		PendingCount:   pending,
		PublishedCount: published,
		StudentCount:   len(distinct),
		ProjectCount:   len(supervised),
	}
}

func (a *Aggregator) typeNamesByID(ctx context.Context) (map[string]string, error) {
	rows, err := a.gw.Select(ctx, tableAchievementTypes,
		gateway.Columns("id", "name"),
	)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(rows))
	for _, r := range rows {
		names[r.String("id")] = r.String("name")
	}
	return names, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
