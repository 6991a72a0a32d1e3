package service

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	modelMongo "achievement-portal/app/models/mongodb"
	modelPg "achievement-portal/app/models/postgresql"
	repoMongo "achievement-portal/app/repository/mongodb"
	repoPg "achievement-portal/app/repository/postgresql"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AchievementService drives the publishing workflow: students file drafts and
// submit them, instructors approve with a score or reject with a note.
type AchievementService struct {
	details repoMongo.AchievementDetailRepository
	refs    repoPg.AchievementRepository
	types   repoPg.AchievementTypeRepository
}

func NewAchievementService(
	details repoMongo.AchievementDetailRepository,
	refs repoPg.AchievementRepository,
	types repoPg.AchievementTypeRepository,
) *AchievementService {
	return &AchievementService{details: details, refs: refs, types: types}
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

func currentRole(c *fiber.Ctx) int {
	if role, ok := c.Locals("role").(int); ok {
		return role
	}
	return 0
}

func (s *AchievementService) CreateAchievement(c *fiber.Ctx) error {
	ctx := c.Context()

	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req struct {
		Title        string   `json:"title"`
		Description  string   `json:"description"`
		TypeID       string   `json:"typeId"`
		InstructorID string   `json:"instructorId"`
		Tags         []string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil || req.Title == "" {
		return c.Status(400).JSON(fiber.Map{"error": "title is required"})
	}

	typeID, err := uuid.Parse(req.TypeID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid typeId"})
	}
	instructorID, err := uuid.Parse(req.InstructorID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid instructorId"})
	}

	now := time.Now()
	detail := modelMongo.AchievementDetail{
		PublisherID: userID.String(),
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		// Stored as [] rather than null so attachment pushes always work.
		Attachments: make([]modelMongo.Attachment, 0),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	detailID, err := s.details.InsertOne(ctx, detail)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to save achievement details"})
	}

	newID, err := s.refs.Create(ctx, modelPg.AchievementReference{
		Title:         req.Title,
		PublisherID:   userID,
		InstructorID:  instructorID,
		TypeID:        typeID,
		MongoDetailID: detailID,
		Status:        modelPg.StatusDraft,
	})
	if err != nil {
		// Best-effort cleanup of the orphaned detail document.
		_ = s.details.Delete(ctx, detailID)
		return c.Status(500).JSON(fiber.Map{"error": "failed to save achievement"})
	}

	return c.Status(201).JSON(fiber.Map{
		"id":     newID,
		"status": modelPg.StatusDraft.String(),
	})
}

func (s *AchievementService) GetAllAchievements(c *fiber.Ctx) error {
	ctx := c.Context()

	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}
	role := currentRole(c)

	var query modelPg.PaginationQuery
	if err := c.QueryParser(&query); err != nil {
		query.Page = 1
		query.Limit = 10
	}
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}
	offset := (query.Page - 1) * query.Limit

	filters := make(map[string]interface{})
	switch role {
	case modelPg.RoleStudent:
		filters["publisher_id"] = userID
		if st, ok := modelPg.ParseStatus(query.Status); ok && query.Status != "" {
			filters["status"] = st
		}
	case modelPg.RoleTeacher:
		filters["instructor_id"] = userID
		if st, ok := modelPg.ParseStatus(query.Status); ok && query.Status != "" {
			filters["status"] = st
		} else {
			// Review queue default: work waiting on or already past review.
			filters["status"] = []modelPg.Status{modelPg.StatusPending, modelPg.StatusApproved}
		}
	}
	// Admins see everything.

	refs, totalData, err := s.refs.GetAll(ctx, filters, query.Limit, offset, query.Sort)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "database error"})
	}

	data := make([]interface{}, 0, len(refs))
	for _, ref := range refs {
		data = append(data, fiber.Map{
			"id":          ref.ID,
			"title":       ref.Title,
			"status":      ref.Status.String(),
			"score":       ref.Score,
			"typeId":      ref.TypeID,
			"publisherId": ref.PublisherID,
			"submittedAt": ref.SubmittedAt,
			"createdAt":   ref.CreatedAt,
		})
	}

	return c.JSON(modelPg.PaginatedResponse{
		Data: data,
		Meta: modelPg.PaginationMeta{
			CurrentPage: query.Page,
			TotalPage:   int(math.Ceil(float64(totalData) / float64(query.Limit))),
			TotalData:   int(totalData),
			Limit:       query.Limit,
		},
	})
}

func (s *AchievementService) GetAchievementDetail(c *fiber.Ctx) error {
	ctx := c.Context()

	achievementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid achievement ID"})
	}

	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}
	role := currentRole(c)

	ref, err := s.refs.GetByID(ctx, achievementID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "achievement not found"})
	}

	switch role {
	case modelPg.RoleStudent:
		if ref.PublisherID != userID {
			return c.Status(403).JSON(fiber.Map{"error": "forbidden"})
		}
	case modelPg.RoleTeacher:
		if ref.InstructorID != userID {
			return c.Status(403).JSON(fiber.Map{"error": "forbidden: not the supervising instructor"})
		}
		if ref.Status == modelPg.StatusDraft {
			return c.Status(403).JSON(fiber.Map{"error": "drafts are not visible to instructors"})
		}
	}

	detail, err := s.details.FindOne(ctx, ref.MongoDetailID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch achievement details"})
	}

	return c.JSON(fiber.Map{
		"id":            ref.ID,
		"status":        ref.Status.String(),
		"score":         ref.Score,
		"rejectionNote": ref.RejectionNote,
		"details":       detail,
		"createdAt":     ref.CreatedAt,
	})
}

func (s *AchievementService) SubmitAchievement(c *fiber.Ctx) error {
	ctx := c.Context()

	achievementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid achievement ID"})
	}

	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	ref, err := s.refs.GetByID(ctx, achievementID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "achievement not found"})
	}
	if ref.PublisherID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "forbidden"})
	}
	if ref.Status != modelPg.StatusDraft {
		return c.Status(400).JSON(fiber.Map{"error": "only draft achievements can be submitted"})
	}

	if err := s.refs.Submit(ctx, achievementID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to submit achievement"})
	}
	return c.JSON(fiber.Map{"status": "success", "message": "achievement submitted for review"})
}

func (s *AchievementService) ApproveAchievement(c *fiber.Ctx) error {
	ctx := c.Context()

	achievementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid achievement ID"})
	}

	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req struct {
		Score float64 `json:"score"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Score < 0 || req.Score > 100 {
		return c.Status(400).JSON(fiber.Map{"error": "score must be between 0 and 100"})
	}

	ref, err := s.refs.GetByID(ctx, achievementID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "achievement not found"})
	}
	if ref.InstructorID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "forbidden: not the supervising instructor"})
	}
	if ref.Status != modelPg.StatusPending {
		return c.Status(400).JSON(fiber.Map{"error": "achievement must be pending to be approved"})
	}

	if err := s.refs.Approve(ctx, achievementID, userID, req.Score); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to approve achievement"})
	}
	return c.JSON(fiber.Map{"status": "success", "message": "achievement approved"})
}

func (s *AchievementService) RejectAchievement(c *fiber.Ctx) error {
	ctx := c.Context()

	achievementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid achievement ID"})
	}

	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req struct {
		Note string `json:"note"`
	}
	if err := c.BodyParser(&req); err != nil || req.Note == "" {
		return c.Status(400).JSON(fiber.Map{"error": "rejection note is required"})
	}

	ref, err := s.refs.GetByID(ctx, achievementID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "achievement not found"})
	}
	if ref.InstructorID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "forbidden: not the supervising instructor"})
	}
	if ref.Status != modelPg.StatusPending {
		return c.Status(400).JSON(fiber.Map{"error": "achievement must be pending to be rejected"})
	}

	if err := s.refs.Reject(ctx, achievementID, userID, req.Note); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to reject achievement"})
	}
	return c.JSON(fiber.Map{"status": "success", "message": "achievement rejected"})
}

func (s *AchievementService) UploadAttachment(c *fiber.Ctx) error {
	ctx := c.Context()

	achievementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid achievement ID"})
	}

	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	ref, err := s.refs.GetByID(ctx, achievementID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "achievement not found"})
	}
	if ref.PublisherID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "forbidden"})
	}
	if ref.Status != modelPg.StatusDraft {
		return c.Status(400).JSON(fiber.Map{"error": "attachments can only be added to drafts"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "no file uploaded"})
	}

	uploadDir := "./uploads"
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		os.Mkdir(uploadDir, 0755)
	}

	filename := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, fmt.Sprintf("%s/%s", uploadDir, filename)); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to save file"})
	}

	attachment := modelMongo.Attachment{
		FileName:   file.Filename,
		FileURL:    fmt.Sprintf("/uploads/%s", filename),
		FileType:   file.Header.Get("Content-Type"),
		UploadedAt: time.Now(),
	}
	if err := s.details.AddAttachment(ctx, ref.MongoDetailID, attachment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to record attachment"})
	}

	return c.JSON(fiber.Map{
		"message": "file uploaded",
		"data":    attachment,
	})
}

func (s *AchievementService) GetAchievementTypes(c *fiber.Ctx) error {
	types, err := s.types.GetAll(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to list achievement types"})
	}
	if types == nil {
		types = []modelPg.AchievementType{}
	}
	return c.JSON(types)
}
