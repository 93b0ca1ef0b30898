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

type PlayerService interface {
	Create(ctx context.Context, req *request.PlayerRequest) (*response.PlayerResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.PlayerResponse, error)
	GetAll(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.PlayerResponse], error)
	Update(ctx context.Context, id uuid.UUID, req *request.PlayerUpdateRequest) (*response.PlayerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type playerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPlayerService(repo *repository.Repository, log *zap.Logger) PlayerService {
	return &playerService{
		repo: repo,
		log:  log,
	}
}

// Create persists the player, then appends its id to the club's player index.
// The two writes are not atomic; a crash in between leaves the index missing
// one entry (accepted limitation, no two-phase commit).
func (s *playerService) Create(ctx context.Context, req *request.PlayerRequest) (*response.PlayerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Player validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	clubID, err := uuid.Parse(req.Club)
	if err != nil {
		return nil, fmt.Errorf("validation failed: club: Must be a valid UUID")
	}

	club, err := s.repo.Club.FindByID(ctx, clubID)
	if err != nil {
		s.log.Error("Failed to check club", zap.Error(err), zap.String("club_id", clubID.String()))
		return nil, fmt.Errorf("failed to check club")
	}
	if club == nil {
		return nil, fmt.Errorf("club not found")
	}

	var positionID *uuid.UUID
	var position *entity.Position
	if req.Position != nil {
		id, err := uuid.Parse(*req.Position)
		if err != nil {
			return nil, fmt.Errorf("validation failed: position: Must be a valid UUID")
		}
		position, err = s.repo.Position.FindByID(ctx, id)
		if err != nil {
			s.log.Error("Failed to check position", zap.Error(err), zap.String("position_id", id.String()))
			return nil, fmt.Errorf("failed to check position")
		}
		if position == nil {
			return nil, fmt.Errorf("position not found")
		}
		positionID = &id
	}

	name := strings.TrimSpace(req.Name)

	// Duplicate scope is per-club: the same name and age in another club is
	// a different person until proven otherwise.
	existing, err := s.repo.Player.FindDuplicate(ctx, name, req.Age, clubID)
	if err != nil {
		s.log.Error("Failed to check duplicate player", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("failed to check player")
	}
	if existing != nil {
		return nil, fmt.Errorf("player already exists in this club")
	}

	var gender *entity.PlayerGender
	if req.Gender != nil {
		g := entity.PlayerGender(*req.Gender)
		gender = &g
	}

	now := time.Now()
	player := &entity.Player{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         name,
		Age:          req.Age,
		Country:      req.Country,
		Gender:       gender,
		Phone:        req.Phone,
		Email:        req.Email,
		Photo:        req.Photo,
		JerseyNumber: req.JerseyNumber,
		PositionID:   positionID,
		ClubID:       &clubID,
	}

	if err := s.repo.Player.Create(ctx, player); err != nil {
		s.log.Error("Failed to create player", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("failed to create player")
	}

	if err := s.repo.Club.AddPlayer(ctx, clubID, player.ID); err != nil {
		s.log.Error("Failed to index player on club",
			zap.Error(err),
			zap.String("player_id", player.ID.String()),
			zap.String("club_id", clubID.String()))
		return nil, fmt.Errorf("failed to create player")
	}

	s.log.Info("Player created",
		zap.String("player_id", player.ID.String()),
		zap.String("club_id", clubID.String()),
		zap.String("name", player.Name))

	resp := response.PlayerToResponse(player, club, position)
	return &resp, nil
}

func (s *playerService) GetByID(ctx context.Context, id uuid.UUID) (*response.PlayerResponse, error) {
	player, err := s.repo.Player.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get player", zap.Error(err), zap.String("player_id", id.String()))
		return nil, fmt.Errorf("failed to get player")
	}
	if player == nil {
		return nil, fmt.Errorf("player not found")
	}

	club, position, err := s.populateRefs(ctx, player)
	if err != nil {
		return nil, err
	}

	resp := response.PlayerToResponse(player, club, position)
	return &resp, nil
}

func (s *playerService) GetAll(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.PlayerResponse], error) {
	pagination := request.PaginatedRequest{Page: page, PerPage: perPage}

	players, err := s.repo.Player.FindAll(ctx, pagination.Limit(), pagination.Offset())
	if err != nil {
		s.log.Error("Failed to list players", zap.Error(err))
		return nil, fmt.Errorf("failed to list players")
	}

	total, err := s.repo.Player.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count players", zap.Error(err))
		return nil, fmt.Errorf("failed to list players")
	}

	clubs := make(map[uuid.UUID]*entity.Club)
	positions := make(map[uuid.UUID]*entity.Position)

	responses := make([]response.PlayerResponse, 0, len(players))
	for _, player := range players {
		var club *entity.Club
		if player.ClubID != nil {
			club = clubs[*player.ClubID]
			if club == nil {
				club, err = s.repo.Club.FindByID(ctx, *player.ClubID)
				if err != nil {
					s.log.Error("Failed to get player club", zap.Error(err))
					return nil, fmt.Errorf("failed to list players")
				}
				clubs[*player.ClubID] = club
			}
		}

		var position *entity.Position
		if player.PositionID != nil {
			position = positions[*player.PositionID]
			if position == nil {
				position, err = s.repo.Position.FindByID(ctx, *player.PositionID)
				if err != nil {
					s.log.Error("Failed to get player position", zap.Error(err))
					return nil, fmt.Errorf("failed to list players")
				}
				positions[*player.PositionID] = position
			}
		}

		responses = append(responses, response.PlayerToResponse(player, club, position))
	}

	return response.NewPaginatedResponse(responses, page, pagination.Limit(), total), nil
}

// Update reassigns club membership before touching anything else: the id is
// pulled from the old club's index, then pushed to the new one, then the
// player record itself is saved. The pull-before-push order means a player
// never shows up in two clubs' lists at once, though a crash between the two
// index writes still leaves the player listed nowhere (accepted limitation).
func (s *playerService) Update(ctx context.Context, id uuid.UUID, req *request.PlayerUpdateRequest) (*response.PlayerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Player update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	player, err := s.repo.Player.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get player", zap.Error(err), zap.String("player_id", id.String()))
		return nil, fmt.Errorf("failed to get player")
	}
	if player == nil {
		return nil, fmt.Errorf("player not found")
	}

	if req.Club != nil {
		newClubID, err := uuid.Parse(*req.Club)
		if err != nil {
			return nil, fmt.Errorf("validation failed: club: Must be a valid UUID")
		}

		if player.ClubID == nil || *player.ClubID != newClubID {
			newClub, err := s.repo.Club.FindByID(ctx, newClubID)
			if err != nil {
				s.log.Error("Failed to check club", zap.Error(err), zap.String("club_id", newClubID.String()))
				return nil, fmt.Errorf("failed to check club")
			}
			if newClub == nil {
				return nil, fmt.Errorf("club not found")
			}

			if player.ClubID != nil {
				if err := s.repo.Club.RemovePlayer(ctx, *player.ClubID, player.ID); err != nil {
					s.log.Error("Failed to remove player from old club",
						zap.Error(err),
						zap.String("player_id", player.ID.String()),
						zap.String("club_id", player.ClubID.String()))
					return nil, fmt.Errorf("failed to update player")
				}
			}

			if err := s.repo.Club.AddPlayer(ctx, newClubID, player.ID); err != nil {
				s.log.Error("Failed to add player to new club",
					zap.Error(err),
					zap.String("player_id", player.ID.String()),
					zap.String("club_id", newClubID.String()))
				return nil, fmt.Errorf("failed to update player")
			}

			s.log.Info("Player transferred",
				zap.String("player_id", player.ID.String()),
				zap.String("club_id", newClubID.String()))

			player.ClubID = &newClubID
		}
	}

	if req.Position != nil {
		positionID, err := uuid.Parse(*req.Position)
		if err != nil {
			return nil, fmt.Errorf("validation failed: position: Must be a valid UUID")
		}
		position, err := s.repo.Position.FindByID(ctx, positionID)
		if err != nil {
			s.log.Error("Failed to check position", zap.Error(err), zap.String("position_id", positionID.String()))
			return nil, fmt.Errorf("failed to check position")
		}
		if position == nil {
			return nil, fmt.Errorf("position not found")
		}
		player.PositionID = &positionID
	}

	if req.Name != nil {
		player.Name = strings.TrimSpace(*req.Name)
	}
	if req.Age != nil {
		player.Age = *req.Age
	}
	if req.Country != nil {
		player.Country = *req.Country
	}
	if req.Gender != nil {
		g := entity.PlayerGender(*req.Gender)
		player.Gender = &g
	}
	if req.Phone != nil {
		player.Phone = req.Phone
	}
	if req.Email != nil {
		player.Email = req.Email
	}
	if req.Photo != nil {
		player.Photo = req.Photo
	}
	if req.JerseyNumber != nil {
		player.JerseyNumber = req.JerseyNumber
	}

	player.UpdatedAt = time.Now()

	if err := s.repo.Player.Update(ctx, player); err != nil {
		s.log.Error("Failed to update player", zap.Error(err), zap.String("player_id", id.String()))
		return nil, fmt.Errorf("failed to update player")
	}

	club, position, err := s.populateRefs(ctx, player)
	if err != nil {
		return nil, err
	}

	resp := response.PlayerToResponse(player, club, position)
	return &resp, nil
}

// Delete removes the player record, then pulls its id from the club index.
func (s *playerService) Delete(ctx context.Context, id uuid.UUID) error {
	player, err := s.repo.Player.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get player", zap.Error(err), zap.String("player_id", id.String()))
		return fmt.Errorf("failed to get player")
	}
	if player == nil {
		return fmt.Errorf("player not found")
	}

	if err := s.repo.Player.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete player", zap.Error(err), zap.String("player_id", id.String()))
		return fmt.Errorf("failed to delete player")
	}

	if player.ClubID != nil {
		if err := s.repo.Club.RemovePlayer(ctx, *player.ClubID, player.ID); err != nil {
			s.log.Error("Failed to remove deleted player from club index",
				zap.Error(err),
				zap.String("player_id", player.ID.String()),
				zap.String("club_id", player.ClubID.String()))
			return fmt.Errorf("failed to delete player")
		}
	}

	return nil
}

func (s *playerService) populateRefs(ctx context.Context, player *entity.Player) (*entity.Club, *entity.Position, error) {
	var club *entity.Club
	var err error
	if player.ClubID != nil {
		club, err = s.repo.Club.FindByID(ctx, *player.ClubID)
		if err != nil {
			s.log.Error("Failed to get player club", zap.Error(err),
				zap.String("club_id", player.ClubID.String()))
			return nil, nil, fmt.Errorf("failed to get player")
		}
	}

	var position *entity.Position
	if player.PositionID != nil {
		position, err = s.repo.Position.FindByID(ctx, *player.PositionID)
		if err != nil {
			s.log.Error("Failed to get player position", zap.Error(err),
				zap.String("position_id", player.PositionID.String()))
			return nil, nil, fmt.Errorf("failed to get player")
		}
	}

	return club, position, nil
}
