package service

import (
	models "achievement-portal/app/models/postgresql"
	repo "achievement-portal/app/repository/postgresql"
	"achievement-portal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminService covers the user-administration pages and achievement-type
// maintenance.
type AdminService struct {
	users repo.UserRepository
	types repo.AchievementTypeRepository
}

func NewAdminService(users repo.UserRepository, types repo.AchievementTypeRepository) *AdminService {
	return &AdminService{users: users, types: types}
}

func (s *AdminService) GetAllUsers(c *fiber.Ctx) error {
	users, err := s.users.GetAll(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to list users"})
	}
	return c.JSON(users)
}

func (s *AdminService) GetUserByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid user ID"})
	}

	user, err := s.users.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "user not found"})
	}
	return c.JSON(user)
}

func (s *AdminService) CreateUser(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     int    `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name, email and password are required"})
	}
	if req.Role < models.RoleStudent || req.Role > models.RoleAdmin {
		return c.Status(400).JSON(fiber.Map{"error": "unknown role"})
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to hash password"})
	}

	newID, err := s.users.Create(c.Context(), &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to create user"})
	}

	return c.Status(201).JSON(fiber.Map{"id": newID})
}

func (s *AdminService) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid user ID"})
	}

	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  int    `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Role < models.RoleStudent || req.Role > models.RoleAdmin {
		return c.Status(400).JSON(fiber.Map{"error": "unknown role"})
	}

	err = s.users.Update(c.Context(), &models.User{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to update user"})
	}
	return c.JSON(fiber.Map{"message": "user updated"})
}

func (s *AdminService) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid user ID"})
	}

	if err := s.users.Delete(c.Context(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete user"})
	}
	return c.JSON(fiber.Map{"message": "user deleted"})
}

func (s *AdminService) CreateAchievementType(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}

	newID, err := s.types.Create(c.Context(), req.Name)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to create achievement type"})
	}
	return c.Status(201).JSON(fiber.Map{"id": newID})
}
