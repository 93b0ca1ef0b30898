package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"club-roster/internal/data/entity"
	"club-roster/internal/data/repository"
	"club-roster/internal/dto/request"
	"club-roster/internal/dto/response"
	"club-roster/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PositionService interface {
	Create(ctx context.Context, req *request.PositionRequest) (*response.PositionResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.PositionResponse, error)
	GetAll(ctx context.Context) ([]response.PositionResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *request.PositionRequest) (*response.PositionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// shortNameOverrides maps well-known position names to their conventional
// abbreviations. Anything else falls back to an initialism.
var shortNameOverrides = map[string]string{
	"GOALKEEPER":           "GK",
	"CENTRE BACK":          "CB",
	"CENTER BACK":          "CB",
	"LEFT BACK":            "LB",
	"RIGHT BACK":           "RB",
	"WING BACK":            "WB",
	"DEFENSIVE MIDFIELDER": "DM",
	"ATTACKING MIDFIELDER": "AM",
	"CENTRAL MIDFIELDER":   "CM",
	"LEFT WINGER":          "LW",
	"RIGHT WINGER":         "RW",
	"STRIKER":              "ST",
	"CENTRE FORWARD":       "CF",
	"FORWARD":              "FW",
	"MIDFIELDER":           "MF",
	"DEFENDER":             "DF",
}

// NormalizePositionName title-cases a free-text position name. Idempotent.
func NormalizePositionName(name string) string {
	return utils.TitleCase(name)
}

// DeriveShortName produces the 2-4 letter code for a normalized position name.
func DeriveShortName(name string) string {
	if short, ok := shortNameOverrides[strings.ToUpper(name)]; ok {
		return short
	}
	return utils.Initialism(name, 3)
}

type positionService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPositionService(repo *repository.Repository, log *zap.Logger) PositionService {
	return &positionService{
		repo: repo,
		log:  log,
	}
}

func (s *positionService) Create(ctx context.Context, req *request.PositionRequest) (*response.PositionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Position validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	name := NormalizePositionName(req.Name)
	if name == "" {
		return nil, fmt.Errorf("validation failed: Name: This field is required")
	}

	existing, err := s.repo.Position.FindByName(ctx, name)
	if err != nil {
		s.log.Error("Failed to check duplicate position", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("failed to check position")
	}
	if existing != nil {
		return nil, fmt.Errorf("position already exists")
	}

	now := time.Now()
	position := &entity.Position{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:      name,
		ShortName: DeriveShortName(name),
	}

	if err := s.repo.Position.Create(ctx, position); err != nil {
		s.log.Error("Failed to create position", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("failed to create position")
	}

	s.log.Info("Position created",
		zap.String("position_id", position.ID.String()),
		zap.String("name", position.Name),
		zap.String("short_name", position.ShortName))

	resp := response.PositionToResponse(position)
	return &resp, nil
}

func (s *positionService) GetByID(ctx context.Context, id uuid.UUID) (*response.PositionResponse, error) {
	position, err := s.repo.Position.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get position", zap.Error(err), zap.String("position_id", id.String()))
		return nil, fmt.Errorf("failed to get position")
	}
	if position == nil {
		return nil, fmt.Errorf("position not found")
	}

	resp := response.PositionToResponse(position)
	return &resp, nil
}

func (s *positionService) GetAll(ctx context.Context) ([]response.PositionResponse, error) {
	positions, err := s.repo.Position.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list positions", zap.Error(err))
		return nil, fmt.Errorf("failed to list positions")
	}

	responses := make([]response.PositionResponse, 0, len(positions))
	for _, position := range positions {
		responses = append(responses, response.PositionToResponse(position))
	}

	return responses, nil
}

func (s *positionService) Update(ctx context.Context, id uuid.UUID, req *request.PositionRequest) (*response.PositionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Position update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	position, err := s.repo.Position.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get position", zap.Error(err), zap.String("position_id", id.String()))
		return nil, fmt.Errorf("failed to get position")
	}
	if position == nil {
		return nil, fmt.Errorf("position not found")
	}

	name := NormalizePositionName(req.Name)

	existing, err := s.repo.Position.FindByName(ctx, name)
	if err != nil {
		s.log.Error("Failed to check duplicate position", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("failed to check position")
	}
	if existing != nil && existing.ID != position.ID {
		return nil, fmt.Errorf("position already exists")
	}

	position.Name = name
	position.ShortName = DeriveShortName(name)
	position.UpdatedAt = time.Now()

	if err := s.repo.Position.Update(ctx, position); err != nil {
		s.log.Error("Failed to update position", zap.Error(err), zap.String("position_id", id.String()))
		return nil, fmt.Errorf("failed to update position")
	}

	resp := response.PositionToResponse(position)
	return &resp, nil
}

func (s *positionService) Delete(ctx context.Context, id uuid.UUID) error {
	position, err := s.repo.Position.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get position", zap.Error(err), zap.String("position_id", id.String()))
		return fmt.Errorf("failed to get position")
	}
	if position == nil {
		return fmt.Errorf("position not found")
	}

	if err := s.repo.Position.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete position", zap.Error(err), zap.String("position_id", id.String()))
		return fmt.Errorf("failed to delete position")
	}

	return nil
}
