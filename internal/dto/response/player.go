package response

import (
	"time"

	"club-roster/internal/data/entity"
)

type PlayerResponse struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Age          int          `json:"age"`
	Country      string       `json:"country"`
	Gender       *string      `json:"gender,omitempty"`
	Phone        *string      `json:"phone,omitempty"`
	Email        *string      `json:"email,omitempty"`
	Photo        *string      `json:"photo,omitempty"`
	JerseyNumber *int         `json:"jerseyNumber,omitempty"`
	Position     *PositionRef `json:"position,omitempty"`
	Club         *ClubRef     `json:"club,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// PositionRef is the compact position summary embedded in player responses.
type PositionRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

func PositionToRef(position *entity.Position) *PositionRef {
	if position == nil {
		return nil
	}
	return &PositionRef{
		ID:        position.ID.String(),
		Name:      position.Name,
		ShortName: position.ShortName,
	}
}

// PlayerToResponse embeds the resolved club and position when the caller
// populated them; either may be nil.
func PlayerToResponse(player *entity.Player, club *entity.Club, position *entity.Position) PlayerResponse {
	var gender *string
	if player.Gender != nil {
		g := string(*player.Gender)
		gender = &g
	}

	return PlayerResponse{
		ID:           player.ID.String(),
		Name:         player.Name,
		Age:          player.Age,
		Country:      player.Country,
		Gender:       gender,
		Phone:        player.Phone,
		Email:        player.Email,
		Photo:        player.Photo,
		JerseyNumber: player.JerseyNumber,
		Position:     PositionToRef(position),
		Club:         ClubToRef(club),
		CreatedAt:    player.CreatedAt,
		UpdatedAt:    player.UpdatedAt,
	}
}
