package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/dafibh/wishgrab/internal/domain"
	"github.com/dafibh/wishgrab/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// WishHandler handles wish-related HTTP requests.
// The collection endpoint mirrors the original API: a single /api/wishes
// path where the method selects the operation and PUT/DELETE carry the id
// in the request body rather than the path.
type WishHandler struct {
	wishService *service.WishService
}

// NewWishHandler creates a new WishHandler
func NewWishHandler(wishService *service.WishService) *WishHandler {
	return &WishHandler{wishService: wishService}
}

// CreateWishRequest represents the create wish request body
type CreateWishRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    string  `json:"category"`
}

// ClaimWishRequest represents the claim (PUT) request body.
// Taken is accepted for wire compatibility but a claim always marks the
// wish taken; there is no un-claim.
type ClaimWishRequest struct {
	ID       string `json:"id"`
	Taken    bool   `json:"taken"`
	TakenBy  string `json:"takenBy"`
	Quantity int    `json:"quantity"`
}

// DeleteWishRequest represents the delete request body
type DeleteWishRequest struct {
	ID string `json:"id"`
}

// WishResponse represents a wish in API responses
type WishResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category"`
	Taken       bool    `json:"taken"`
	Quantity    int     `json:"quantity"`
	TakenBy     *string `json:"takenBy,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// CategoryGroupResponse represents one category bucket in the grouped listing
type CategoryGroupResponse struct {
	Category string         `json:"category"`
	Wishes   []WishResponse `json:"wishes"`
}

// ListWishes handles GET /api/wishes
func (h *WishHandler) ListWishes(c echo.Context) error {
	wishes, err := h.wishService.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list wishes")
		return NewInternalError(c, "Failed to list wishes")
	}

	response := make([]WishResponse, len(wishes))
	for i, wish := range wishes {
		response[i] = toWishResponse(wish)
	}

	return c.JSON(http.StatusOK, response)
}

// ListGrouped handles GET /api/wishes/grouped
func (h *WishHandler) ListGrouped(c echo.Context) error {
	groups, err := h.wishService.ListGrouped()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list grouped wishes")
		return NewInternalError(c, "Failed to list wishes")
	}

	response := make([]CategoryGroupResponse, len(groups))
	for i, group := range groups {
		wishes := make([]WishResponse, len(group.Wishes))
		for j, wish := range group.Wishes {
			wishes[j] = toWishResponse(wish)
		}
		response[i] = CategoryGroupResponse{Category: group.Category, Wishes: wishes}
	}

	return c.JSON(http.StatusOK, response)
}

// CreateWish handles POST /api/wishes
func (h *WishHandler) CreateWish(c echo.Context) error {
	var req CreateWishRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input := service.CreateWishInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}

	wish, err := h.wishService.Create(input)
	if err != nil {
		if errors.Is(err, domain.ErrWishTitleEmpty) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "title", Message: "Title is required"},
			})
		}
		if errors.Is(err, domain.ErrWishTitleLong) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "title", Message: "Title must be 255 characters or less"},
			})
		}
		if errors.Is(err, domain.ErrWishCategoryEmpty) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "category", Message: "Category is required"},
			})
		}
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create wish")
		return NewInternalError(c, "Failed to create wish")
	}

	log.Info().Str("wish_id", wish.ID.String()).Str("title", wish.Title).Str("category", wish.Category).Msg("Wish created")

	return c.JSON(http.StatusOK, toWishResponse(wish))
}

// ClaimWish handles PUT /api/wishes
func (h *WishHandler) ClaimWish(c echo.Context) error {
	var req ClaimWishRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return NewValidationError(c, "Invalid wish ID", nil)
	}

	input := service.ClaimWishInput{
		TakenBy:  req.TakenBy,
		Quantity: req.Quantity,
	}

	wish, err := h.wishService.Claim(id, input)
	if err != nil {
		if errors.Is(err, domain.ErrWishNotFound) {
			return NewNotFoundError(c, "Wish not found")
		}
		if errors.Is(err, domain.ErrWishClaimantEmpty) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "takenBy", Message: "Claimant name is required"},
			})
		}
		if errors.Is(err, domain.ErrWishQuantityInvalid) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "quantity", Message: "Quantity must be at least 1"},
			})
		}
		log.Error().Err(err).Str("wish_id", req.ID).Msg("Failed to claim wish")
		return NewInternalError(c, "Failed to update wish")
	}

	log.Info().Str("wish_id", wish.ID.String()).Str("taken_by", req.TakenBy).Int("quantity", wish.Quantity).Msg("Wish claimed")

	return c.JSON(http.StatusOK, toWishResponse(wish))
}

// DeleteWish handles DELETE /api/wishes.
// Deleting an unknown or unparseable id still reports success, matching the
// idempotent-by-absence contract.
func (h *WishHandler) DeleteWish(c echo.Context) error {
	var req DeleteWishRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return c.JSON(http.StatusOK, map[string]string{"message": "Wish deleted"})
	}

	if err := h.wishService.Delete(id); err != nil {
		log.Error().Err(err).Str("wish_id", req.ID).Msg("Failed to delete wish")
		return NewInternalError(c, "Failed to delete wish")
	}

	log.Info().Str("wish_id", req.ID).Msg("Wish deleted")

	return c.JSON(http.StatusOK, map[string]string{"message": "Wish deleted"})
}

// Helper function to convert domain.Wish to WishResponse
func toWishResponse(wish *domain.Wish) WishResponse {
	return WishResponse{
		ID:          wish.ID.String(),
		Title:       wish.Title,
		Description: wish.Description,
		Category:    wish.Category,
		Taken:       wish.Taken,
		Quantity:    wish.Quantity,
		TakenBy:     wish.TakenBy,
		CreatedAt:   wish.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   wish.UpdatedAt.Format(time.RFC3339),
	}
}
