package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ims-io/ims/internal/models"
)

// defaultProducts is the fixed dataset the application boots with and that
// POST /api/reset restores.
func defaultProducts() []models.Product {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	return []models.Product{
		{
			ID:                "1",
			SKU:               "LAP-001",
			Name:              `Laptop Pro 15"`,
			Description:       "High-performance laptop with 16GB RAM and 512GB SSD",
			Price:             1299.99,
			Stock:             15,
			Category:          models.CategoryElectronics,
			LowStockThreshold: 5,
			CreatedAt:         day("2024-01-15"),
			UpdatedAt:         day("2024-01-15"),
		},
		{
			ID:                "2",
			SKU:               "MOU-002",
			Name:              "Wireless Mouse",
			Description:       "Ergonomic wireless mouse with precision tracking",
			Price:             29.99,
			Stock:             45,
			Category:          models.CategoryAccessories,
			LowStockThreshold: 10,
			CreatedAt:         day("2024-01-16"),
			UpdatedAt:         day("2024-01-16"),
		},
		{
			ID:                "3",
			SKU:               "KEY-003",
			Name:              "Mechanical Keyboard",
			Description:       "RGB backlit mechanical keyboard with blue switches",
			Price:             89.99,
			Stock:             3,
			Category:          models.CategoryAccessories,
			LowStockThreshold: 5,
			CreatedAt:         day("2024-01-17"),
			UpdatedAt:         day("2024-01-17"),
		},
		{
			ID:                "4",
			SKU:               "MON-004",
			Name:              `27" 4K Monitor`,
			Description:       "Ultra HD monitor with HDR support",
			Price:             449.99,
			Stock:             8,
			Category:          models.CategoryElectronics,
			LowStockThreshold: 3,
			CreatedAt:         day("2024-01-18"),
			UpdatedAt:         day("2024-01-18"),
		},
		{
			ID:                "5",
			SKU:               "CAB-005",
			Name:              "USB-C Cable",
			Description:       "High-speed USB-C to USB-C cable, 2m",
			Price:             19.99,
			Stock:             2,
			Category:          models.CategoryAccessories,
			LowStockThreshold: 10,
			CreatedAt:         day("2024-01-19"),
			UpdatedAt:         day("2024-01-19"),
		},
	}
}

// MemoryStore is the in-memory Store implementation. Safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	products []models.Product
	activity []models.Activity
	epoch    int64
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: defaultProducts(),
		epoch:    1,
		now:      time.Now,
	}
}

func (s *MemoryStore) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *MemoryStore) Get(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (s *MemoryStore) GetBySKU(sku string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if strings.EqualFold(p.SKU, sku) {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// Create assigns the ID and timestamps. A SKU collision is rejected so the
// uniqueness rule the UI promises actually holds.
func (s *MemoryStore) Create(p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.products {
		if strings.EqualFold(existing.SKU, p.SKU) {
			return models.Product{}, ErrDuplicateSKU
		}
	}
	now := s.now()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.products = append(s.products, p)
	s.record(models.ActivityProductAdded, p.Name)
	return p, nil
}

func (s *MemoryStore) Update(id string, upd models.ProductUpdate) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, p := range s.products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Product{}, ErrNotFound
	}
	if upd.SKU != nil {
		for i, other := range s.products {
			if i != idx && strings.EqualFold(other.SKU, *upd.SKU) {
				return models.Product{}, ErrDuplicateSKU
			}
		}
	}

	p := &s.products[idx]
	if upd.SKU != nil {
		p.SKU = *upd.SKU
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Stock != nil {
		if *upd.Stock < 0 {
			return models.Product{}, ErrNegativeStock
		}
		p.Stock = *upd.Stock
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.LowStockThreshold != nil {
		p.LowStockThreshold = *upd.LowStockThreshold
	}
	p.UpdatedAt = s.now()
	s.record(models.ActivityProductUpdated, p.Name)
	return *p, nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.record(models.ActivityProductDeleted, p.Name)
			return nil
		}
	}
	return ErrNotFound
}

// AdjustStock applies a signed delta. An adjustment that would drive stock
// below zero is rejected and the product is left untouched.
func (s *MemoryStore) AdjustStock(id string, delta int) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		p := &s.products[i]
		if p.ID != id {
			continue
		}
		if p.Stock+delta < 0 {
			return models.Product{}, ErrNegativeStock
		}
		p.Stock += delta
		p.UpdatedAt = s.now()
		s.record(models.ActivityStockUpdated, p.Name)
		return *p, nil
	}
	return models.Product{}, ErrNotFound
}

// Search matches a case-insensitive substring against name, SKU and
// description.
func (s *MemoryStore) Search(query string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q := strings.ToLower(query)
	var out []models.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.SKU), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

func (s *MemoryStore) LowStock() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Product
	for _, p := range s.products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}

func (s *MemoryStore) RecentActivity(limit int) []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Activity, len(s.activity))
	copy(out, s.activity)
	sort.SliceStable(out, func(i, j int) bool { return out[i].At.After(out[j].At) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *MemoryStore) Epoch() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// Reset restores the default dataset, drops the activity log and bumps the
// session epoch. Calling it on an already-clean store yields the same state.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = defaultProducts()
	s.activity = nil
	s.epoch++
}

// record appends an activity entry; callers hold the write lock.
func (s *MemoryStore) record(action, product string) {
	s.activity = append(s.activity, models.Activity{
		ID:      uuid.NewString(),
		Action:  action,
		Product: product,
		At:      s.now(),
	})
}
