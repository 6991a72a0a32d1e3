package service_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	models "achievement-portal/app/models/postgresql"
	"achievement-portal/app/repository/mocks"
	service "achievement-portal/app/service/mongodb"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAchievementServiceTest() (*service.AchievementService, *mocks.MockAchievementDetailRepository, *mocks.MockAchievementRepository, *mocks.MockAchievementTypeRepository) {
	mockDetails := new(mocks.MockAchievementDetailRepository)
	mockRefs := new(mocks.MockAchievementRepository)
	mockTypes := new(mocks.MockAchievementTypeRepository)

	svc := service.NewAchievementService(mockDetails, mockRefs, mockTypes)
	return svc, mockDetails, mockRefs, mockTypes
}

// authApp registers routes with the caller identity already resolved, the way
// the auth middleware leaves it.
func authApp(userID uuid.UUID, role int, register func(app *fiber.App)) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		c.Locals("role", role)
		return c.Next()
	})
	register(app)
	return app
}

func TestSubmitAchievement(t *testing.T) {
	t.Run("Success: draft submitted by its owner", func(t *testing.T) {
		svc, _, mockRefs, _ := setupAchievementServiceTest()
		studentID := uuid.New()
		achID := uuid.New()

		mockRefs.On("GetByID", mock.Anything, achID).Return(models.AchievementReference{
			ID:          achID,
			PublisherID: studentID,
			Status:      models.StatusDraft,
		}, nil)
		mockRefs.On("Submit", mock.Anything, achID).Return(nil)

		app := authApp(studentID, models.RoleStudent, func(app *fiber.App) {
			app.Post("/achievements/:id/submit", svc.SubmitAchievement)
		})

		resp, _ := app.Test(httptest.NewRequest("POST", "/achievements/"+achID.String()+"/submit", nil))

		assert.Equal(t, 200, resp.StatusCode)
		mockRefs.AssertExpectations(t)
	})

	t.Run("Error: only drafts can be submitted", func(t *testing.T) {
		svc, _, mockRefs, _ := setupAchievementServiceTest()
		studentID := uuid.New()
		achID := uuid.New()

		mockRefs.On("GetByID", mock.Anything, achID).Return(models.AchievementReference{
			ID:          achID,
			PublisherID: studentID,
			Status:      models.StatusPending,
		}, nil)

		app := authApp(studentID, models.RoleStudent, func(app *fiber.App) {
			app.Post("/achievements/:id/submit", svc.SubmitAchievement)
		})

		resp, _ := app.Test(httptest.NewRequest("POST", "/achievements/"+achID.String()+"/submit", nil))

		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("Error: not the owner", func(t *testing.T) {
		svc, _, mockRefs, _ := setupAchievementServiceTest()
		achID := uuid.New()

		mockRefs.On("GetByID", mock.Anything, achID).Return(models.AchievementReference{
			ID:          achID,
			PublisherID: uuid.New(),
			Status:      models.StatusDraft,
		}, nil)

		app := authApp(uuid.New(), models.RoleStudent, func(app *fiber.App) {
			app.Post("/achievements/:id/submit", svc.SubmitAchievement)
		})

		resp, _ := app.Test(httptest.NewRequest("POST", "/achievements/"+achID.String()+"/submit", nil))

		assert.Equal(t, 403, resp.StatusCode)
	})
}

func TestApproveAchievement(t *testing.T) {
	t.Run("Success: pending work approved by its instructor with a score", func(t *testing.T) {
		svc, _, mockRefs, _ := setupAchievementServiceTest()
		teacherID := uuid.New()
		achID := uuid.New()

		mockRefs.On("GetByID", mock.Anything, achID).Return(models.AchievementReference{
			ID:           achID,
			PublisherID:  uuid.New(),
			InstructorID: teacherID,
			Status:       models.StatusPending,
		}, nil)
		mockRefs.On("Approve", mock.Anything, achID, teacherID, 88.0).Return(nil)

		app := authApp(teacherID, models.RoleTeacher, func(app *fiber.App) {
			app.Post("/achievements/:id/approve", svc.ApproveAchievement)
		})

		body, _ := json.Marshal(map[string]float64{"score": 88})
		req := httptest.NewRequest("POST", "/achievements/"+achID.String()+"/approve", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, 200, resp.StatusCode)
		mockRefs.AssertExpectations(t)
	})

	t.Run("Error: score outside 0-100", func(t *testing.T) {
		svc, _, _, _ := setupAchievementServiceTest()
		teacherID := uuid.New()

		app := authApp(teacherID, models.RoleTeacher, func(app *fiber.App) {
			app.Post("/achievements/:id/approve", svc.ApproveAchievement)
		})

		body, _ := json.Marshal(map[string]float64{"score": 120})
		req := httptest.NewRequest("POST", "/achievements/"+uuid.NewString()+"/approve", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestRejectAchievement(t *testing.T) {
	t.Run("Error: rejection note required", func(t *testing.T) {
		svc, _, _, _ := setupAchievementServiceTest()
		teacherID := uuid.New()

		app := authApp(teacherID, models.RoleTeacher, func(app *fiber.App) {
			app.Post("/achievements/:id/reject", svc.RejectAchievement)
		})

		body, _ := json.Marshal(map[string]string{"note": ""})
		req := httptest.NewRequest("POST", "/achievements/"+uuid.NewString()+"/reject", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestGetAchievementTypes(t *testing.T) {
	t.Run("Success: lists types", func(t *testing.T) {
		svc, _, _, mockTypes := setupAchievementServiceTest()

		mockTypes.On("GetAll", mock.Anything).Return([]models.AchievementType{
			{ID: uuid.New(), Name: "Report"},
			{ID: uuid.New(), Name: "Paper"},
		}, nil)

		app := authApp(uuid.New(), models.RoleStudent, func(app *fiber.App) {
			app.Get("/achievement-types", svc.GetAchievementTypes)
		})

		resp, _ := app.Test(httptest.NewRequest("GET", "/achievement-types", nil))

		assert.Equal(t, 200, resp.StatusCode)
		mockTypes.AssertExpectations(t)
	})

	t.Run("Error: repository failure", func(t *testing.T) {
		svc, _, _, mockTypes := setupAchievementServiceTest()

		mockTypes.On("GetAll", mock.Anything).Return(nil, errors.New("db error"))

		app := authApp(uuid.New(), models.RoleStudent, func(app *fiber.App) {
			app.Get("/achievement-types", svc.GetAchievementTypes)
		})

		resp, _ := app.Test(httptest.NewRequest("GET", "/achievement-types", nil))

		assert.Equal(t, 500, resp.StatusCode)
	})
}
