package repository

import (
	"context"
	"errors"

	"github.com/John2013/phone-book/constant"
	"github.com/John2013/phone-book/model"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrConflict  = errors.New("record already exists")
	ErrBadCursor = errors.New("invalid cursor")
)

// RecordRepository describes the storage interface for phone address records
type RecordRepository interface {
	Create(ctx context.Context, record model.PhoneAddressRecord) (*model.PhoneAddressRecord, error)
	Get(ctx context.Context, phone string) (*model.PhoneAddressRecord, error)
	Update(ctx context.Context, phone string, address string) (*model.PhoneAddressRecord, error)
	Delete(ctx context.Context, phone string) error
	List(ctx context.Context, cursor string, limit int) (*model.RecordPage, error)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return constant.DEFAULT_PAGE_LIMIT
	}
	if limit > constant.MAX_PAGE_LIMIT {
		return constant.MAX_PAGE_LIMIT
	}
	return limit
}
