package response

import (
	"time"

	"club-roster/internal/data/entity"
)

type ClubResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ShortName    *string   `json:"shortName,omitempty"`
	Country      string    `json:"country"`
	Level        *string   `json:"level,omitempty"`
	Logo         *string   `json:"logo,omitempty"`
	Badge        *string   `json:"badge,omitempty"`
	City         *string   `json:"city,omitempty"`
	FoundedYear  *int      `json:"foundedYear,omitempty"`
	PlayersCount int       `json:"playersCount"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ClubDetailResponse struct {
	ClubResponse
	Players []PlayerResponse `json:"players"`
}

// ClubRef is the compact club summary embedded in player responses.
type ClubRef struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ShortName *string `json:"shortName,omitempty"`
}

func ClubToResponse(club *entity.Club) ClubResponse {
	return ClubResponse{
		ID:           club.ID.String(),
		Name:         club.Name,
		ShortName:    club.ShortName,
		Country:      club.Country,
		Level:        club.Level,
		Logo:         club.Logo,
		Badge:        club.Badge,
		City:         club.City,
		FoundedYear:  club.FoundedYear,
		PlayersCount: len(club.PlayerIDs),
		CreatedAt:    club.CreatedAt,
		UpdatedAt:    club.UpdatedAt,
	}
}

func ClubToRef(club *entity.Club) *ClubRef {
	if club == nil {
		return nil
	}
	return &ClubRef{
		ID:        club.ID.String(),
		Name:      club.Name,
		ShortName: club.ShortName,
	}
}
