package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrWishNotFound        = errors.New("wish not found")
	ErrWishTitleEmpty      = errors.New("wish title is required")
	ErrWishTitleLong       = errors.New("wish title must be 255 characters or less")
	ErrWishCategoryEmpty   = errors.New("wish category is required")
	ErrWishClaimantEmpty   = errors.New("claimant name is required")
	ErrWishQuantityInvalid = errors.New("quantity must be at least 1")
)

// Wish is a single desired item. Quantity holds the desired amount until the
// wish is claimed, after which it holds the claimed amount.
type Wish struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Category    string    `json:"category"`
	Taken       bool      `json:"taken"`
	Quantity    int       `json:"quantity"`
	TakenBy     *string   `json:"takenBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (w *Wish) Validate() error {
	if w.Title == "" {
		return ErrWishTitleEmpty
	}
	if len(w.Title) > 255 {
		return ErrWishTitleLong
	}
	if w.Category == "" {
		return ErrWishCategoryEmpty
	}
	if w.Quantity < 1 {
		return ErrWishQuantityInvalid
	}
	return nil
}

type WishRepository interface {
	Create(wish *Wish) (*Wish, error)
	GetByID(id uuid.UUID) (*Wish, error)
	GetAll() ([]*Wish, error)
	Update(wish *Wish) (*Wish, error)
	Delete(id uuid.UUID) error
}
