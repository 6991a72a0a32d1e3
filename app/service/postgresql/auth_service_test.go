package service_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	models "achievement-portal/app/models/postgresql"
	"achievement-portal/app/repository/mocks"
	service "achievement-portal/app/service/postgresql"
	"achievement-portal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	doLogin := func(svc *service.AuthService, email, password string) int {
		app := fiber.New()
		app.Post("/login", svc.Login)

		body, _ := json.Marshal(map[string]string{"email": email, "password": password})
		req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		return resp.StatusCode
	}

	t.Run("Success: valid credentials", func(t *testing.T) {
		mockUsers := new(mocks.MockUserRepository)
		svc := service.NewAuthService(mockUsers)

		hash, err := utils.HashPassword("correct-horse")
		assert.NoError(t, err)

		mockUsers.On("GetByEmail", mock.Anything, "ana@uni.edu").Return(&models.User{
			ID:           uuid.New(),
			Email:        "ana@uni.edu",
			PasswordHash: hash,
			Role:         models.RoleStudent,
		}, nil)

		assert.Equal(t, 200, doLogin(svc, "ana@uni.edu", "correct-horse"))
		mockUsers.AssertExpectations(t)
	})

	t.Run("Error: wrong password", func(t *testing.T) {
		mockUsers := new(mocks.MockUserRepository)
		svc := service.NewAuthService(mockUsers)

		hash, _ := utils.HashPassword("correct-horse")
		mockUsers.On("GetByEmail", mock.Anything, "ana@uni.edu").Return(&models.User{
			PasswordHash: hash,
		}, nil)

		assert.Equal(t, 401, doLogin(svc, "ana@uni.edu", "battery-staple"))
	})

	t.Run("Error: unknown email", func(t *testing.T) {
		mockUsers := new(mocks.MockUserRepository)
		svc := service.NewAuthService(mockUsers)

		mockUsers.On("GetByEmail", mock.Anything, "ghost@uni.edu").Return(nil, errors.New("no rows"))

		assert.Equal(t, 401, doLogin(svc, "ghost@uni.edu", "whatever"))
	})

	t.Run("Error: missing fields", func(t *testing.T) {
		svc := service.NewAuthService(new(mocks.MockUserRepository))

		assert.Equal(t, 400, doLogin(svc, "", ""))
	})
}

func TestProfile(t *testing.T) {
	t.Run("Success: returns the resolved user", func(t *testing.T) {
		mockUsers := new(mocks.MockUserRepository)
		svc := service.NewAuthService(mockUsers)

		userID := uuid.New()
		mockUsers.On("GetByID", mock.Anything, userID).Return(&models.User{
			ID:   userID,
			Name: "Ana",
			Role: models.RoleStudent,
		}, nil)

		app := fiber.New()
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("user_id", userID)
			return c.Next()
		})
		app.Get("/profile", svc.Profile)

		resp, _ := app.Test(httptest.NewRequest("GET", "/profile", nil))
		assert.Equal(t, 200, resp.StatusCode)
		mockUsers.AssertExpectations(t)
	})

	t.Run("Error: identity missing", func(t *testing.T) {
		svc := service.NewAuthService(new(mocks.MockUserRepository))

		app := fiber.New()
		app.Get("/profile", svc.Profile)

		resp, _ := app.Test(httptest.NewRequest("GET", "/profile", nil))
		assert.Equal(t, 401, resp.StatusCode)
	})
}
