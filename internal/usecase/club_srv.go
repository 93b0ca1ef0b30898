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

type ClubService interface {
	Create(ctx context.Context, req *request.ClubRequest) (*response.ClubResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.ClubDetailResponse, error)
	GetAll(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.ClubResponse], error)
	Update(ctx context.Context, id uuid.UUID, req *request.ClubUpdateRequest) (*response.ClubResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clubService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewClubService(repo *repository.Repository, log *zap.Logger) ClubService {
	return &clubService{
		repo: repo,
		log:  log,
	}
}

func (s *clubService) Create(ctx context.Context, req *request.ClubRequest) (*response.ClubResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Club validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	name := strings.TrimSpace(req.Name)

	// (name, country) is soft-unique: enforced by this check, not the schema
	existing, err := s.repo.Club.FindByNameCountry(ctx, name, req.Country)
	if err != nil {
		s.log.Error("Failed to check duplicate club", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("failed to check club")
	}
	if existing != nil {
		return nil, fmt.Errorf("club already exists in this country")
	}

	shortName := req.ShortName
	if shortName == nil || strings.TrimSpace(*shortName) == "" {
		abbr := utils.Initialism(name, 4)
		shortName = &abbr
	}

	level := req.Level
	now := time.Now()
	club := &entity.Club{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        name,
		ShortName:   shortName,
		Country:     req.Country,
		Level:       &level,
		Logo:        req.Logo,
		Badge:       req.Badge,
		City:        req.City,
		FoundedYear: req.FoundedYear,
		PlayerIDs:   []uuid.UUID{},
	}

	if err := s.repo.Club.Create(ctx, club); err != nil {
		s.log.Error("Failed to create club", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("failed to create club")
	}

	s.log.Info("Club created",
		zap.String("club_id", club.ID.String()),
		zap.String("name", club.Name))

	resp := response.ClubToResponse(club)
	return &resp, nil
}

// GetByID resolves the club's player index into full player records, each
// with its position populated.
func (s *clubService) GetByID(ctx context.Context, id uuid.UUID) (*response.ClubDetailResponse, error) {
	club, err := s.repo.Club.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get club", zap.Error(err), zap.String("club_id", id.String()))
		return nil, fmt.Errorf("failed to get club")
	}
	if club == nil {
		return nil, fmt.Errorf("club not found")
	}

	players, err := s.repo.Player.FindByIDs(ctx, club.PlayerIDs)
	if err != nil {
		s.log.Error("Failed to get club players", zap.Error(err), zap.String("club_id", id.String()))
		return nil, fmt.Errorf("failed to get club players")
	}

	positions := make(map[uuid.UUID]*entity.Position)
	playerResponses := make([]response.PlayerResponse, 0, len(players))
	for _, player := range players {
		var position *entity.Position
		if player.PositionID != nil {
			position = positions[*player.PositionID]
			if position == nil {
				position, err = s.repo.Position.FindByID(ctx, *player.PositionID)
				if err != nil {
					s.log.Error("Failed to get player position", zap.Error(err),
						zap.String("position_id", player.PositionID.String()))
					return nil, fmt.Errorf("failed to get club players")
				}
				positions[*player.PositionID] = position
			}
		}
		playerResponses = append(playerResponses, response.PlayerToResponse(player, club, position))
	}

	return &response.ClubDetailResponse{
		ClubResponse: response.ClubToResponse(club),
		Players:      playerResponses,
	}, nil
}

func (s *clubService) GetAll(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.ClubResponse], error) {
	pagination := request.PaginatedRequest{Page: page, PerPage: perPage}

	clubs, err := s.repo.Club.FindAll(ctx, pagination.Limit(), pagination.Offset())
	if err != nil {
		s.log.Error("Failed to list clubs", zap.Error(err))
		return nil, fmt.Errorf("failed to list clubs")
	}

	total, err := s.repo.Club.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count clubs", zap.Error(err))
		return nil, fmt.Errorf("failed to list clubs")
	}

	responses := make([]response.ClubResponse, 0, len(clubs))
	for _, club := range clubs {
		responses = append(responses, response.ClubToResponse(club))
	}

	return response.NewPaginatedResponse(responses, page, pagination.Limit(), total), nil
}

func (s *clubService) Update(ctx context.Context, id uuid.UUID, req *request.ClubUpdateRequest) (*response.ClubResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Club update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	club, err := s.repo.Club.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get club", zap.Error(err), zap.String("club_id", id.String()))
		return nil, fmt.Errorf("failed to get club")
	}
	if club == nil {
		return nil, fmt.Errorf("club not found")
	}

	oldName, oldCountry := club.Name, club.Country
	if req.Name != nil {
		club.Name = strings.TrimSpace(*req.Name)
	}
	if req.Country != nil {
		club.Country = strings.TrimSpace(*req.Country)
	}

	// Renames re-run the (name, country) soft-unique check so a collision
	// answers as a conflict instead of a failed update. Case-only changes to
	// the club's own identity pass through.
	if !strings.EqualFold(club.Name, oldName) || !strings.EqualFold(club.Country, oldCountry) {
		existing, err := s.repo.Club.FindByNameCountry(ctx, club.Name, club.Country)
		if err != nil {
			s.log.Error("Failed to check duplicate club", zap.Error(err), zap.String("name", club.Name))
			return nil, fmt.Errorf("failed to check club")
		}
		if existing != nil && existing.ID != club.ID {
			return nil, fmt.Errorf("club already exists in this country")
		}
	}
	if req.Level != nil {
		club.Level = req.Level
	}
	if req.ShortName != nil {
		club.ShortName = req.ShortName
	}
	if req.Logo != nil {
		club.Logo = req.Logo
	}
	if req.Badge != nil {
		club.Badge = req.Badge
	}
	if req.City != nil {
		club.City = req.City
	}
	if req.FoundedYear != nil {
		club.FoundedYear = req.FoundedYear
	}

	club.UpdatedAt = time.Now()

	if err := s.repo.Club.Update(ctx, club); err != nil {
		s.log.Error("Failed to update club", zap.Error(err), zap.String("club_id", id.String()))
		return nil, fmt.Errorf("failed to update club")
	}

	s.log.Info("Club updated", zap.String("club_id", id.String()))

	resp := response.ClubToResponse(club)
	return &resp, nil
}

// Delete refuses while the player index is non-empty; deleting the club first
// would orphan every player's club reference.
func (s *clubService) Delete(ctx context.Context, id uuid.UUID) error {
	club, err := s.repo.Club.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get club", zap.Error(err), zap.String("club_id", id.String()))
		return fmt.Errorf("failed to get club")
	}
	if club == nil {
		return fmt.Errorf("club not found")
	}

	if len(club.PlayerIDs) > 0 {
		return fmt.Errorf("club has players; remove or transfer them first")
	}

	if err := s.repo.Club.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete club", zap.Error(err), zap.String("club_id", id.String()))
		return fmt.Errorf("failed to delete club")
	}

	return nil
}
