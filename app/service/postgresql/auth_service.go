package service

import (
	"errors"

	repo "achievement-portal/app/repository/postgresql"
	"achievement-portal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthService struct {
	users repo.UserRepository
}

func NewAuthService(users repo.UserRepository) *AuthService {
	return &AuthService{users: users}
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

func (s *AuthService) Login(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "email and password are required"})
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		// Same answer for unknown email and wrong password.
		return c.Status(401).JSON(fiber.Map{"error": "invalid credentials"})
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to issue token"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (s *AuthService) Profile(c *fiber.Ctx) error {
	ctx := c.Context()

	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "user not found"})
	}
	return c.JSON(user)
}
