package statistics

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// StatisticsService exposes the aggregator to the dashboard views. The
// aggregator never errors, so every handler is a straight JSON response once
// the caller's identity is resolved.
type StatisticsService struct {
	agg *Aggregator
}

func NewStatisticsService(agg *Aggregator) *StatisticsService {
	return &StatisticsService{agg: agg}
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals("user_id")
	if raw == nil {
		return uuid.Nil, errors.New("unauthorized: user_id missing in context")
	}
	if uid, ok := raw.(uuid.UUID); ok {
		return uid, nil
	}
	if s, ok := raw.(string); ok {
		return uuid.Parse(s)
	}
	return uuid.Nil, errors.New("user_id has an unexpected type")
}

// GetStudentDashboard serves GET /dashboard/student.
func (s *StatisticsService) GetStudentDashboard(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(s.agg.StudentStatistics(c.Context(), userID))
}

// GetTeacherDashboard serves GET /dashboard/teacher.
func (s *StatisticsService) GetTeacherDashboard(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(s.agg.TeacherStatistics(c.Context(), userID))
}

// GetTeacherSummary serves GET /dashboard/teacher/summary, the four landing
// page counters.
func (s *StatisticsService) GetTeacherSummary(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(s.agg.TeacherDashboard(c.Context(), userID))
}
