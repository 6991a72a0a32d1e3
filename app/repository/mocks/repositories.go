// Package mocks holds testify doubles for the repository and gateway
// interfaces, shared by the service tests.
package mocks

import (
	"context"

	modelsMongo "achievement-portal/app/models/mongodb"
	models "achievement-portal/app/models/postgresql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (uuid.UUID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockAchievementRepository struct {
	mock.Mock
}

func (m *MockAchievementRepository) Create(ctx context.Context, ref models.AchievementReference) (uuid.UUID, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockAchievementRepository) GetByID(ctx context.Context, id uuid.UUID) (models.AchievementReference, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.AchievementReference), args.Error(1)
}

func (m *MockAchievementRepository) GetAll(ctx context.Context, filter map[string]interface{}, limit, offset int, sort string) ([]models.AchievementReference, int64, error) {
	args := m.Called(ctx, filter, limit, offset, sort)
	if refs := args.Get(0); refs != nil {
		return refs.([]models.AchievementReference), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockAchievementRepository) Submit(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAchievementRepository) Approve(ctx context.Context, id, reviewerID uuid.UUID, score float64) error {
	return m.Called(ctx, id, reviewerID, score).Error(0)
}

func (m *MockAchievementRepository) Reject(ctx context.Context, id, reviewerID uuid.UUID, note string) error {
	return m.Called(ctx, id, reviewerID, note).Error(0)
}

type MockAchievementTypeRepository struct {
	mock.Mock
}

func (m *MockAchievementTypeRepository) GetAll(ctx context.Context) ([]models.AchievementType, error) {
	args := m.Called(ctx)
	if t := args.Get(0); t != nil {
		return t.([]models.AchievementType), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAchievementTypeRepository) Create(ctx context.Context, name string) (uuid.UUID, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type MockAchievementDetailRepository struct {
	mock.Mock
}

func (m *MockAchievementDetailRepository) InsertOne(ctx context.Context, detail modelsMongo.AchievementDetail) (string, error) {
	args := m.Called(ctx, detail)
	return args.String(0), args.Error(1)
}

func (m *MockAchievementDetailRepository) FindOne(ctx context.Context, hexID string) (*modelsMongo.AchievementDetail, error) {
	args := m.Called(ctx, hexID)
	if d := args.Get(0); d != nil {
		return d.(*modelsMongo.AchievementDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAchievementDetailRepository) FindAll(ctx context.Context, hexIDs []string) ([]modelsMongo.AchievementDetail, error) {
	args := m.Called(ctx, hexIDs)
	if d := args.Get(0); d != nil {
		return d.([]modelsMongo.AchievementDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAchievementDetailRepository) UpdateOne(ctx context.Context, hexID string, detail modelsMongo.AchievementDetail) error {
	return m.Called(ctx, hexID, detail).Error(0)
}

func (m *MockAchievementDetailRepository) Delete(ctx context.Context, hexID string) error {
	return m.Called(ctx, hexID).Error(0)
}

func (m *MockAchievementDetailRepository) AddAttachment(ctx context.Context, hexID string, att modelsMongo.Attachment) error {
	return m.Called(ctx, hexID, att).Error(0)
}
