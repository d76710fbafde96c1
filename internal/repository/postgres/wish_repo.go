package postgres

import (
	"context"

	"github.com/dafibh/wishgrab/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WishRepository implements domain.WishRepository using PostgreSQL
type WishRepository struct {
	pool *pgxpool.Pool
}

// NewWishRepository creates a new WishRepository
func NewWishRepository(pool *pgxpool.Pool) *WishRepository {
	return &WishRepository{pool: pool}
}

// Create inserts a new wish. The database assigns the id and timestamps;
// taken defaults to false and quantity to 1 unless set by the caller.
func (r *WishRepository) Create(wish *domain.Wish) (*domain.Wish, error) {
	ctx := context.Background()
	quantity := wish.Quantity
	if quantity < 1 {
		quantity = 1
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO wishes (title, description, category, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, category, taken, quantity, taken_by, created_at, updated_at`,
		wish.Title, wish.Description, wish.Category, quantity)
	return scanWish(row)
}

// GetByID retrieves a wish by its id
func (r *WishRepository) GetByID(id uuid.UUID) (*domain.Wish, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description, category, taken, quantity, taken_by, created_at, updated_at
		FROM wishes
		WHERE id = $1`, id)
	wish, err := scanWish(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrWishNotFound
		}
		return nil, err
	}
	return wish, nil
}

// GetAll retrieves every wish, newest first
func (r *WishRepository) GetAll() ([]*domain.Wish, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, category, taken, quantity, taken_by, created_at, updated_at
		FROM wishes
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wishes []*domain.Wish
	for rows.Next() {
		wish, err := scanWish(rows)
		if err != nil {
			return nil, err
		}
		wishes = append(wishes, wish)
	}
	return wishes, rows.Err()
}

// Update overwrites the mutable fields of a wish and refreshes updated_at
func (r *WishRepository) Update(wish *domain.Wish) (*domain.Wish, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		UPDATE wishes
		SET title = $2, description = $3, category = $4, taken = $5, quantity = $6, taken_by = $7, updated_at = now()
		WHERE id = $1
		RETURNING id, title, description, category, taken, quantity, taken_by, created_at, updated_at`,
		wish.ID, wish.Title, wish.Description, wish.Category, wish.Taken, wish.Quantity, wish.TakenBy)
	updated, err := scanWish(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrWishNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a wish. Deleting an absent id is a no-op.
func (r *WishRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `DELETE FROM wishes WHERE id = $1`, id)
	return err
}

// scanWish reads one wishes row into a domain.Wish
func scanWish(row pgx.Row) (*domain.Wish, error) {
	var wish domain.Wish
	err := row.Scan(
		&wish.ID,
		&wish.Title,
		&wish.Description,
		&wish.Category,
		&wish.Taken,
		&wish.Quantity,
		&wish.TakenBy,
		&wish.CreatedAt,
		&wish.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &wish, nil
}
