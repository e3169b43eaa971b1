package services

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/John2013/phone-book/model"
	"github.com/John2013/phone-book/repository"
	"github.com/John2013/phone-book/validator"
)

// ValidationError carries per-field messages for rejected input.
type ValidationError struct {
	Fields url.Values
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Fields.Encode()
}

// RecordService applies the business rules in front of the repository:
// input validation, timestamps, and the error taxonomy.
type RecordService struct {
	repo repository.RecordRepository
}

func NewRecordService(repo repository.RecordRepository) *RecordService {
	return &RecordService{repo: repo}
}

func (s *RecordService) Create(ctx context.Context, request model.CreateRecordRequest) (*model.PhoneAddressRecord, error) {
	if errs := validator.CreateRecordValidator(&request); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	now := time.Now().UTC()
	record := model.PhoneAddressRecord{
		Phone:     request.Phone,
		Address:   request.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.repo.Create(ctx, record)
}

func (s *RecordService) Get(ctx context.Context, phone string) (*model.PhoneAddressRecord, error) {
	phone = strings.TrimSpace(phone)
	if errs := validator.PhoneValidator(phone); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	return s.repo.Get(ctx, phone)
}

func (s *RecordService) Update(ctx context.Context, phone string, request model.UpdateAddressRequest) (*model.PhoneAddressRecord, error) {
	phone = strings.TrimSpace(phone)
	if errs := validator.PhoneValidator(phone); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if errs := validator.UpdateAddressValidator(&request); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	return s.repo.Update(ctx, phone, request.Address)
}

func (s *RecordService) Delete(ctx context.Context, phone string) error {
	phone = strings.TrimSpace(phone)
	if errs := validator.PhoneValidator(phone); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return s.repo.Delete(ctx, phone)
}

func (s *RecordService) List(ctx context.Context, cursor string, limit int) (*model.RecordPage, error) {
	page, err := s.repo.List(ctx, cursor, limit)
	if errors.Is(err, repository.ErrBadCursor) {
		return nil, &ValidationError{Fields: url.Values{
			"cursor": []string{"The cursor is invalid!"},
		}}
	}
	return page, err
}
