package service

import (
	"sort"
	"strings"

	"github.com/dafibh/wishgrab/internal/domain"
	"github.com/dafibh/wishgrab/internal/websocket"
	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// UncategorizedLabel is the bucket for wishes without a category label.
// Category is required on create, so this only shows up for legacy rows.
const UncategorizedLabel = "Uncategorized"

// WishService handles wishlist business logic
type WishService struct {
	wishRepo       domain.WishRepository
	eventPublisher websocket.EventPublisher
}

// NewWishService creates a new WishService
func NewWishService(wishRepo domain.WishRepository) *WishService {
	return &WishService{wishRepo: wishRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *WishService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// publishEvent publishes a WebSocket event if a publisher is configured
func (s *WishService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// CreateWishInput contains input for creating a wish
type CreateWishInput struct {
	Title       string
	Description *string
	Category    string
}

// Create creates a new wish. New wishes start unclaimed with quantity 1.
func (s *WishService) Create(input CreateWishInput) (*domain.Wish, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrWishTitleEmpty
	}
	if len(title) > 255 {
		return nil, domain.ErrWishTitleLong
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, domain.ErrWishCategoryEmpty
	}

	wish := &domain.Wish{
		Title:       title,
		Description: input.Description,
		Category:    category,
		Quantity:    1,
	}

	created, err := s.wishRepo.Create(wish)
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.WishCreated(created))

	return created, nil
}

// List returns every wish, newest first
func (s *WishService) List() ([]*domain.Wish, error) {
	return s.wishRepo.GetAll()
}

// CategoryGroup is one category bucket of the grouped listing
type CategoryGroup struct {
	Category string         `json:"category"`
	Wishes   []*domain.Wish `json:"wishes"`
}

// ListGrouped returns wishes grouped by category. Categories and titles are
// both ordered ascending with a case-insensitive locale-aware comparison, so
// the result is deterministic for identical input sets.
func (s *WishService) ListGrouped() ([]CategoryGroup, error) {
	wishes, err := s.wishRepo.GetAll()
	if err != nil {
		return nil, err
	}

	buckets := make(map[string][]*domain.Wish)
	for _, wish := range wishes {
		category := wish.Category
		if category == "" {
			category = UncategorizedLabel
		}
		buckets[category] = append(buckets[category], wish)
	}

	// Collators are not safe for concurrent use, so build one per call
	collator := collate.New(language.English, collate.IgnoreCase)

	categories := make([]string, 0, len(buckets))
	for category := range buckets {
		categories = append(categories, category)
	}
	collator.SortStrings(categories)

	groups := make([]CategoryGroup, 0, len(categories))
	for _, category := range categories {
		group := buckets[category]
		sort.SliceStable(group, func(i, j int) bool {
			return collator.CompareString(group[i].Title, group[j].Title) < 0
		})
		groups = append(groups, CategoryGroup{Category: category, Wishes: group})
	}
	return groups, nil
}

// ClaimWishInput contains input for claiming a wish
type ClaimWishInput struct {
	TakenBy  string
	Quantity int
}

// Claim marks a wish as taken by the given claimant. The claimed quantity
// overwrites the desired quantity; there is no partial-fulfillment tracking.
// A second claim on the same wish silently overwrites the first, and the
// later of two concurrent claims wins.
func (s *WishService) Claim(id uuid.UUID, input ClaimWishInput) (*domain.Wish, error) {
	takenBy := strings.TrimSpace(input.TakenBy)
	if takenBy == "" {
		return nil, domain.ErrWishClaimantEmpty
	}
	if input.Quantity < 1 {
		return nil, domain.ErrWishQuantityInvalid
	}

	wish, err := s.wishRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	wish.Taken = true
	wish.TakenBy = &takenBy
	wish.Quantity = input.Quantity

	updated, err := s.wishRepo.Update(wish)
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.WishClaimed(updated))

	return updated, nil
}

// Delete removes a wish. Deleting an unknown id is a silent no-op.
func (s *WishService) Delete(id uuid.UUID) error {
	if err := s.wishRepo.Delete(id); err != nil {
		return err
	}

	s.publishEvent(websocket.WishDeleted(map[string]string{"id": id.String()}))

	return nil
}
