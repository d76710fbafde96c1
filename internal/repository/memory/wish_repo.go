package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/dafibh/wishgrab/internal/domain"
	"github.com/google/uuid"
)

// WishRepository is a map-backed implementation of domain.WishRepository.
// It backs the unit tests and local runs without a database.
type WishRepository struct {
	mu     sync.RWMutex
	wishes map[uuid.UUID]*domain.Wish
	seq    map[uuid.UUID]int
	nextID int
}

// NewWishRepository creates a new in-memory WishRepository
func NewWishRepository() *WishRepository {
	return &WishRepository{
		wishes: make(map[uuid.UUID]*domain.Wish),
		seq:    make(map[uuid.UUID]int),
	}
}

// Create assigns an id and timestamps and stores the wish
func (r *WishRepository) Create(wish *domain.Wish) (*domain.Wish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *wish
	stored.ID = uuid.New()
	if stored.Quantity < 1 {
		stored.Quantity = 1
	}
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.nextID++
	r.seq[stored.ID] = r.nextID
	r.wishes[stored.ID] = &stored

	out := stored
	return &out, nil
}

// GetByID retrieves a wish by id
func (r *WishRepository) GetByID(id uuid.UUID) (*domain.Wish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wish, ok := r.wishes[id]
	if !ok {
		return nil, domain.ErrWishNotFound
	}
	out := *wish
	return &out, nil
}

// GetAll returns every wish, newest first. Insertion order breaks
// creation-time ties so the order stays deterministic in tests.
func (r *WishRepository) GetAll() ([]*domain.Wish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wishes := make([]*domain.Wish, 0, len(r.wishes))
	for _, wish := range r.wishes {
		out := *wish
		wishes = append(wishes, &out)
	}
	sort.Slice(wishes, func(i, j int) bool {
		if !wishes[i].CreatedAt.Equal(wishes[j].CreatedAt) {
			return wishes[i].CreatedAt.After(wishes[j].CreatedAt)
		}
		return r.seq[wishes[i].ID] > r.seq[wishes[j].ID]
	})
	return wishes, nil
}

// Update overwrites a stored wish and refreshes updated_at
func (r *WishRepository) Update(wish *domain.Wish) (*domain.Wish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.wishes[wish.ID]
	if !ok {
		return nil, domain.ErrWishNotFound
	}

	stored := *wish
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now().UTC()
	r.wishes[stored.ID] = &stored

	out := stored
	return &out, nil
}

// Delete removes a wish if present
func (r *WishRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.wishes, id)
	delete(r.seq, id)
	return nil
}
