package repository

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/John2013/phone-book/model"
)

// MemoryRepository keeps records in a map. It backs unit tests and local runs
// that have no store at hand.
type MemoryRepository struct {
	mu      sync.Mutex
	records map[string]model.PhoneAddressRecord
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: map[string]model.PhoneAddressRecord{}}
}

func (r *MemoryRepository) Create(ctx context.Context, record model.PhoneAddressRecord) (*model.PhoneAddressRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[record.Phone]; exists {
		return nil, ErrConflict
	}
	r.records[record.Phone] = record
	return &record, nil
}

func (r *MemoryRepository) Get(ctx context.Context, phone string) (*model.PhoneAddressRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, exists := r.records[phone]
	if !exists {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (r *MemoryRepository) Update(ctx context.Context, phone string, address string) (*model.PhoneAddressRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, exists := r.records[phone]
	if !exists {
		return nil, ErrNotFound
	}
	record.Address = address
	record.UpdatedAt = time.Now().UTC()
	r.records[phone] = record
	return &record, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, phone string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[phone]; !exists {
		return ErrNotFound
	}
	delete(r.records, phone)
	return nil
}

// List pages over phones in sorted order; the cursor token is the offset into
// that ordering in decimal.
func (r *MemoryRepository) List(ctx context.Context, cursor string, limit int) (*model.RecordPage, error) {
	limit = clampLimit(limit)

	start := 0
	if cursor != "" {
		parsed, err := strconv.Atoi(cursor)
		if err != nil || parsed < 0 {
			return nil, ErrBadCursor
		}
		start = parsed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	phones := make([]string, 0, len(r.records))
	for phone := range r.records {
		phones = append(phones, phone)
	}
	sort.Strings(phones)

	page := model.RecordPage{Items: []model.PhoneAddressRecord{}}
	if start >= len(phones) {
		return &page, nil
	}

	end := start + limit
	if end > len(phones) {
		end = len(phones)
	}
	for _, phone := range phones[start:end] {
		page.Items = append(page.Items, r.records[phone])
	}
	if end < len(phones) {
		page.NextCursor = strconv.Itoa(end)
	}
	return &page, nil
}
