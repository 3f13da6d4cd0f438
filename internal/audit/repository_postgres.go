package audit

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, s Submission) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_submissions (
			id,
			canteen_id,
			menu_id,
			user_id,
			user_email,
			menu_type,
			item_count,
			payload,
			status,
			error,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		s.ID,
		s.CanteenID,
		s.MenuID,
		s.UserID,
		s.UserEmail,
		s.MenuType,
		s.ItemCount,
		s.Payload,
		string(s.Status),
		s.Error,
		s.CreatedAt,
	)

	return err
}

// Newest first.
func (r *PostgresRepository) ListByCanteen(
	ctx context.Context,
	canteenID int,
	limit int,
) ([]Submission, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			canteen_id,
			menu_id,
			user_id,
			user_email,
			menu_type,
			item_count,
			payload,
			status,
			error,
			created_at
		FROM menu_submissions
		WHERE canteen_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, canteenID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		var s Submission
		var status string
		if err := rows.Scan(
			&s.ID,
			&s.CanteenID,
			&s.MenuID,
			&s.UserID,
			&s.UserEmail,
			&s.MenuType,
			&s.ItemCount,
			&s.Payload,
			&status,
			&s.Error,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		s.Status = Status(status)
		out = append(out, s)
	}

	return out, rows.Err()
}
