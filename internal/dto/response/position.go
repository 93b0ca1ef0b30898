package response

import (
	"time"

	"club-roster/internal/data/entity"
)

type PositionResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ShortName string    `json:"shortName"`
	CreatedAt time.Time `json:"created_at"`
}

func PositionToResponse(position *entity.Position) PositionResponse {
	return PositionResponse{
		ID:        position.ID.String(),
		Name:      position.Name,
		ShortName: position.ShortName,
		CreatedAt: position.CreatedAt,
	}
}
