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

type ClubRepository interface {
	Create(ctx context.Context, club *entity.Club) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Club, error)
	FindByNameCountry(ctx context.Context, name, country string) (*entity.Club, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Club, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, club *entity.Club) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddPlayer(ctx context.Context, clubID, playerID uuid.UUID) error
	RemovePlayer(ctx context.Context, clubID, playerID uuid.UUID) error
}

type clubRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClubRepository(db database.PgxIface, log *zap.Logger) ClubRepository {
	return &clubRepository{
		db:  db,
		log: log,
	}
}

const clubColumns = `id, name, short_name, country, level, logo, badge, city,
		       founded_year, player_ids, created_at, updated_at`

func scanClub(row pgx.Row) (*entity.Club, error) {
	var club entity.Club
	err := row.Scan(
		&club.ID,
		&club.Name,
		&club.ShortName,
		&club.Country,
		&club.Level,
		&club.Logo,
		&club.Badge,
		&club.City,
		&club.FoundedYear,
		&club.PlayerIDs,
		&club.CreatedAt,
		&club.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &club, nil
}

func (cr *clubRepository) Create(ctx context.Context, club *entity.Club) error {
	query := `
		INSERT INTO clubs (id, name, short_name, country, level, logo, badge,
		                  city, founded_year, player_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := cr.db.Exec(ctx, query,
		club.ID,
		club.Name,
		club.ShortName,
		club.Country,
		club.Level,
		club.Logo,
		club.Badge,
		club.City,
		club.FoundedYear,
		club.PlayerIDs,
		club.CreatedAt,
		club.UpdatedAt,
	)

	if err != nil {
		cr.log.Error("Failed to create club",
			zap.Error(err),
			zap.String("name", club.Name),
			zap.String("country", club.Country),
		)
		return fmt.Errorf("create club %s: %w", club.Name, err)
	}

	return nil
}

func (cr *clubRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Club, error) {
	query := `
		SELECT ` + clubColumns + `
		FROM clubs
		WHERE id = $1
	`

	club, err := scanClub(cr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find club by ID",
			zap.Error(err),
			zap.String("club_id", id.String()),
		)
		return nil, fmt.Errorf("find club by ID %s: %w", id.String(), err)
	}

	return club, nil
}

// FindByNameCountry backs the soft-uniqueness check on (name, country),
// compared case-insensitively.
func (cr *clubRepository) FindByNameCountry(ctx context.Context, name, country string) (*entity.Club, error) {
	query := `
		SELECT ` + clubColumns + `
		FROM clubs
		WHERE LOWER(name) = LOWER($1) AND LOWER(country) = LOWER($2)
	`

	club, err := scanClub(cr.db.QueryRow(ctx, query, name, country))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find club by name and country",
			zap.Error(err),
			zap.String("name", name),
			zap.String("country", country),
		)
		return nil, fmt.Errorf("find club by name %s: %w", name, err)
	}

	return club, nil
}

func (cr *clubRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Club, error) {
	query := `
		SELECT ` + clubColumns + `
		FROM clubs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := cr.db.Query(ctx, query, limit, offset)
	if err != nil {
		cr.log.Error("Failed to get all clubs",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all clubs limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var clubs []*entity.Club
	for rows.Next() {
		club, err := scanClub(rows)
		if err != nil {
			cr.log.Error("Failed to scan club row", zap.Error(err))
			return nil, fmt.Errorf("scan club row: %w", err)
		}
		clubs = append(clubs, club)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate clubs rows: %w", err)
	}

	return clubs, nil
}

func (cr *clubRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM clubs`

	var count int64
	err := cr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		cr.log.Error("Database error counting clubs", zap.Error(err))
		return 0, fmt.Errorf("count all clubs: %w", err)
	}

	return count, nil
}

// Update never touches player_ids; the index is mutated only through
// AddPlayer and RemovePlayer.
func (cr *clubRepository) Update(ctx context.Context, club *entity.Club) error {
	query := `
		UPDATE clubs
		SET name = $2, short_name = $3, country = $4, level = $5, logo = $6,
		    badge = $7, city = $8, founded_year = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := cr.db.Exec(ctx, query,
		club.ID,
		club.Name,
		club.ShortName,
		club.Country,
		club.Level,
		club.Logo,
		club.Badge,
		club.City,
		club.FoundedYear,
		club.UpdatedAt,
	)

	if err != nil {
		cr.log.Error("Failed to update club",
			zap.Error(err),
			zap.String("club_id", club.ID.String()),
		)
		return fmt.Errorf("update club %s: %w", club.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("club %s not found", club.ID.String())
	}

	return nil
}

func (cr *clubRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM clubs WHERE id = $1`

	result, err := cr.db.Exec(ctx, query, id)
	if err != nil {
		cr.log.Error("Failed to delete club",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete club %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("club %s not found", id.String())
	}

	cr.log.Info("Club deleted", zap.String("id", id.String()))
	return nil
}

// AddPlayer appends the player id to the club's index. The containment guard
// keeps the id in the array at most once, so a replayed append is a no-op.
func (cr *clubRepository) AddPlayer(ctx context.Context, clubID, playerID uuid.UUID) error {
	query := `
		UPDATE clubs
		SET player_ids = array_append(player_ids, $2), updated_at = NOW()
		WHERE id = $1 AND NOT (player_ids @> ARRAY[$2]::uuid[])
	`

	_, err := cr.db.Exec(ctx, query, clubID, playerID)
	if err != nil {
		cr.log.Error("Failed to add player to club",
			zap.Error(err),
			zap.String("club_id", clubID.String()),
			zap.String("player_id", playerID.String()),
		)
		return fmt.Errorf("add player %s to club %s: %w", playerID.String(), clubID.String(), err)
	}

	return nil
}

// RemovePlayer pulls the player id from the club's index. Removing an id that
// is not present is a no-op.
func (cr *clubRepository) RemovePlayer(ctx context.Context, clubID, playerID uuid.UUID) error {
	query := `
		UPDATE clubs
		SET player_ids = array_remove(player_ids, $2), updated_at = NOW()
		WHERE id = $1
	`

	_, err := cr.db.Exec(ctx, query, clubID, playerID)
	if err != nil {
		cr.log.Error("Failed to remove player from club",
			zap.Error(err),
			zap.String("club_id", clubID.String()),
			zap.String("player_id", playerID.String()),
		)
		return fmt.Errorf("remove player %s from club %s: %w", playerID.String(), clubID.String(), err)
	}

	return nil
}
