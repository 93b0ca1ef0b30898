package repository

import (
	"context"
	"fmt"

	"club-roster/internal/data/entity"
	"club-roster/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PlayerRepository interface {
	Create(ctx context.Context, player *entity.Player) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Player, error)
	FindDuplicate(ctx context.Context, name string, age int, clubID uuid.UUID) (*entity.Player, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Player, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Player, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, player *entity.Player) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type playerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlayerRepository(db database.PgxIface, log *zap.Logger) PlayerRepository {
	return &playerRepository{
		db:  db,
		log: log,
	}
}

const playerColumns = `id, name, age, country, gender, phone, email, photo,
		       jersey_number, position_id, club_id, created_at, updated_at`

func scanPlayer(row pgx.Row) (*entity.Player, error) {
	var player entity.Player
	err := row.Scan(
		&player.ID,
		&player.Name,
		&player.Age,
		&player.Country,
		&player.Gender,
		&player.Phone,
		&player.Email,
		&player.Photo,
		&player.JerseyNumber,
		&player.PositionID,
		&player.ClubID,
		&player.CreatedAt,
		&player.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (pr *playerRepository) Create(ctx context.Context, player *entity.Player) error {
	query := `
		INSERT INTO players (id, name, age, country, gender, phone, email,
		                  photo, jersey_number, position_id, club_id,
		                  created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := pr.db.Exec(ctx, query,
		player.ID,
		player.Name,
		player.Age,
		player.Country,
		player.Gender,
		player.Phone,
		player.Email,
		player.Photo,
		player.JerseyNumber,
		player.PositionID,
		player.ClubID,
		player.CreatedAt,
		player.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to create player",
			zap.Error(err),
			zap.String("name", player.Name),
		)
		return fmt.Errorf("create player %s: %w", player.Name, err)
	}

	return nil
}

func (pr *playerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players
		WHERE id = $1
	`

	player, err := scanPlayer(pr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find player by ID",
			zap.Error(err),
			zap.String("player_id", id.String()),
		)
		return nil, fmt.Errorf("find player by ID %s: %w", id.String(), err)
	}

	return player, nil
}

// FindDuplicate backs the duplicate check: same trimmed name
// (case-insensitive), same age, same club.
func (pr *playerRepository) FindDuplicate(ctx context.Context, name string, age int, clubID uuid.UUID) (*entity.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players
		WHERE LOWER(name) = LOWER(TRIM($1)) AND age = $2 AND club_id = $3
	`

	player, err := scanPlayer(pr.db.QueryRow(ctx, query, name, age, clubID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to check duplicate player",
			zap.Error(err),
			zap.String("name", name),
			zap.Int("age", age),
		)
		return nil, fmt.Errorf("find duplicate player %s: %w", name, err)
	}

	return player, nil
}

// FindByIDs resolves a club's player index into player records.
func (pr *playerRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Player, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT ` + playerColumns + `
		FROM players
		WHERE id = ANY($1)
		ORDER BY name
	`

	rows, err := pr.db.Query(ctx, query, ids)
	if err != nil {
		pr.log.Error("Failed to get players by IDs", zap.Error(err))
		return nil, fmt.Errorf("find players by IDs: %w", err)
	}
	defer rows.Close()

	var players []*entity.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			pr.log.Error("Failed to scan player row", zap.Error(err))
			return nil, fmt.Errorf("scan player row: %w", err)
		}
		players = append(players, player)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate players rows: %w", err)
	}

	return players, nil
}

func (pr *playerRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := pr.db.Query(ctx, query, limit, offset)
	if err != nil {
		pr.log.Error("Failed to get all players",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all players limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var players []*entity.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			pr.log.Error("Failed to scan player row", zap.Error(err))
			return nil, fmt.Errorf("scan player row: %w", err)
		}
		players = append(players, player)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate players rows: %w", err)
	}

	return players, nil
}

func (pr *playerRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM players`

	var count int64
	err := pr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		pr.log.Error("Database error counting players", zap.Error(err))
		return 0, fmt.Errorf("count all players: %w", err)
	}

	return count, nil
}

func (pr *playerRepository) Update(ctx context.Context, player *entity.Player) error {
	query := `
		UPDATE players
		SET name = $2, age = $3, country = $4, gender = $5, phone = $6,
		    email = $7, photo = $8, jersey_number = $9, position_id = $10,
		    club_id = $11, updated_at = $12
		WHERE id = $1
	`

	result, err := pr.db.Exec(ctx, query,
		player.ID,
		player.Name,
		player.Age,
		player.Country,
		player.Gender,
		player.Phone,
		player.Email,
		player.Photo,
		player.JerseyNumber,
		player.PositionID,
		player.ClubID,
		player.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to update player",
			zap.Error(err),
			zap.String("player_id", player.ID.String()),
		)
		return fmt.Errorf("update player %s: %w", player.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("player %s not found", player.ID.String())
	}

	return nil
}

func (pr *playerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM players WHERE id = $1`

	result, err := pr.db.Exec(ctx, query, id)
	if err != nil {
		pr.log.Error("Failed to delete player",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete player %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("player %s not found", id.String())
	}

	pr.log.Info("Player deleted", zap.String("id", id.String()))
	return nil
}
