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

type PositionRepository interface {
	Create(ctx context.Context, position *entity.Position) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Position, error)
	FindByName(ctx context.Context, name string) (*entity.Position, error)
	FindAll(ctx context.Context) ([]*entity.Position, error)
	Update(ctx context.Context, position *entity.Position) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type positionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPositionRepository(db database.PgxIface, log *zap.Logger) PositionRepository {
	return &positionRepository{
		db:  db,
		log: log,
	}
}

func scanPosition(row pgx.Row) (*entity.Position, error) {
	var position entity.Position
	err := row.Scan(
		&position.ID,
		&position.Name,
		&position.ShortName,
		&position.CreatedAt,
		&position.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &position, nil
}

func (pr *positionRepository) Create(ctx context.Context, position *entity.Position) error {
	query := `
		INSERT INTO positions (id, name, short_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := pr.db.Exec(ctx, query,
		position.ID,
		position.Name,
		position.ShortName,
		position.CreatedAt,
		position.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to create position",
			zap.Error(err),
			zap.String("name", position.Name),
		)
		return fmt.Errorf("create position %s: %w", position.Name, err)
	}

	return nil
}

func (pr *positionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Position, error) {
	query := `
		SELECT id, name, short_name, created_at, updated_at
		FROM positions
		WHERE id = $1
	`

	position, err := scanPosition(pr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find position by ID",
			zap.Error(err),
			zap.String("position_id", id.String()),
		)
		return nil, fmt.Errorf("find position by ID %s: %w", id.String(), err)
	}

	return position, nil
}

func (pr *positionRepository) FindByName(ctx context.Context, name string) (*entity.Position, error) {
	query := `
		SELECT id, name, short_name, created_at, updated_at
		FROM positions
		WHERE LOWER(name) = LOWER($1)
	`

	position, err := scanPosition(pr.db.QueryRow(ctx, query, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find position by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find position by name %s: %w", name, err)
	}

	return position, nil
}

// FindAll returns every position; the set is small enough that pagination
// is not worth it.
func (pr *positionRepository) FindAll(ctx context.Context) ([]*entity.Position, error) {
	query := `
		SELECT id, name, short_name, created_at, updated_at
		FROM positions
		ORDER BY name
	`

	rows, err := pr.db.Query(ctx, query)
	if err != nil {
		pr.log.Error("Failed to get all positions", zap.Error(err))
		return nil, fmt.Errorf("find all positions: %w", err)
	}
	defer rows.Close()

	var positions []*entity.Position
	for rows.Next() {
		position, err := scanPosition(rows)
		if err != nil {
			pr.log.Error("Failed to scan position row", zap.Error(err))
			return nil, fmt.Errorf("scan position row: %w", err)
		}
		positions = append(positions, position)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate positions rows: %w", err)
	}

	return positions, nil
}

func (pr *positionRepository) Update(ctx context.Context, position *entity.Position) error {
	query := `
		UPDATE positions
		SET name = $2, short_name = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := pr.db.Exec(ctx, query,
		position.ID,
		position.Name,
		position.ShortName,
		position.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to update position",
			zap.Error(err),
			zap.String("position_id", position.ID.String()),
		)
		return fmt.Errorf("update position %s: %w", position.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("position %s not found", position.ID.String())
	}

	return nil
}

func (pr *positionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM positions WHERE id = $1`

	result, err := pr.db.Exec(ctx, query, id)
	if err != nil {
		pr.log.Error("Failed to delete position",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete position %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("position %s not found", id.String())
	}

	pr.log.Info("Position deleted", zap.String("id", id.String()))
	return nil
}
