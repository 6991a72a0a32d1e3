package statistics_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	models "achievement-portal/app/models/postgresql"
	"achievement-portal/app/service/statistics"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func dashboardApp(svc *statistics.StatisticsService, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if userID != uuid.Nil {
			c.Locals("user_id", userID)
		}
		return c.Next()
	})
	app.Get("/dashboard/student", svc.GetStudentDashboard)
	app.Get("/dashboard/teacher", svc.GetTeacherDashboard)
	app.Get("/dashboard/teacher/summary", svc.GetTeacherSummary)
	return app
}

func TestGetStudentDashboard(t *testing.T) {
	studentID := uuid.New()
	typeID := uuid.NewString()

	t.Run("Success: returns the aggregated result", func(t *testing.T) {
		gw := newFakeGateway()
		gw.add("achievement_types", typeRow(typeID, "Report", time.Now()))
		gw.add("achievements",
			achievementRow(studentID.String(), "", typeID, 2, 90.0, time.Now()))

		svc := statistics.NewStatisticsService(statistics.NewAggregator(gw))
		app := dashboardApp(svc, studentID)

		resp, err := app.Test(httptest.NewRequest("GET", "/dashboard/student", nil))
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var res models.StatisticsResult
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, 1, res.StudentStats.TotalProjects)
		assert.Equal(t, 90.0, res.StudentStats.AverageScore)
	})

	t.Run("Success: still renders when the store is down", func(t *testing.T) {
		gw := newFakeGateway()
		gw.fail["achievements"] = assert.AnError

		svc := statistics.NewStatisticsService(statistics.NewAggregator(gw))
		app := dashboardApp(svc, studentID)

		resp, err := app.Test(httptest.NewRequest("GET", "/dashboard/student", nil))
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var res models.StatisticsResult
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, models.DefaultAchievementTypeNames, res.PublicationByType.Labels)
	})

	t.Run("Error: no resolved user", func(t *testing.T) {
		svc := statistics.NewStatisticsService(statistics.NewAggregator(newFakeGateway()))
		app := dashboardApp(svc, uuid.Nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/dashboard/student", nil))
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})
}

func TestGetTeacherSummary(t *testing.T) {
	teacherID := uuid.New()
	typeID := uuid.NewString()

	gw := newFakeGateway()
	gw.add("achievements",
		achievementRow(uuid.NewString(), teacherID.String(), typeID, 1, nil, time.Now()),
		achievementRow(teacherID.String(), "", typeID, 2, 91.0, time.Now()),
	)

	svc := statistics.NewStatisticsService(statistics.NewAggregator(gw))
	app := dashboardApp(svc, teacherID)

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard/teacher/summary", nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var res models.TeacherDashboardStats
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, 1, res.PendingCount)
	assert.Equal(t, 1, res.PublishedCount)
	assert.Equal(t, 1, res.StudentCount)
	assert.Equal(t, 1, res.ProjectCount)
}
