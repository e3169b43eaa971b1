package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/John2013/phone-book/constant"
	"github.com/John2013/phone-book/model"
	"github.com/John2013/phone-book/store"
)

// RedisRepository stores records as JSON values under phone-prefixed keys.
type RedisRepository struct{}

func NewRedisRepository() *RedisRepository {
	return &RedisRepository{}
}

func recordKey(phone string) string {
	return constant.RECORD_KEY_PREFIX + phone
}

func encodeRecord(record *model.PhoneAddressRecord) (string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encode record %s: %w", record.Phone, err)
	}
	return string(data), nil
}

func decodeRecord(data string) (*model.PhoneAddressRecord, error) {
	record := model.PhoneAddressRecord{}
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("decode stored record: %w", err)
	}
	return &record, nil
}

func (r *RedisRepository) Create(ctx context.Context, record model.PhoneAddressRecord) (*model.PhoneAddressRecord, error) {
	data, err := encodeRecord(&record)
	if err != nil {
		return nil, err
	}
	// SETNX keeps create-if-absent a single atomic round trip
	stored, err := store.SetIfAbsent(ctx, recordKey(record.Phone), data)
	if err != nil {
		return nil, err
	}
	if !stored {
		return nil, ErrConflict
	}
	return &record, nil
}

func (r *RedisRepository) Get(ctx context.Context, phone string) (*model.PhoneAddressRecord, error) {
	data, found, err := store.Get(ctx, recordKey(phone))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return decodeRecord(data)
}

func (r *RedisRepository) Update(ctx context.Context, phone string, address string) (*model.PhoneAddressRecord, error) {
	record, err := r.Get(ctx, phone)
	if err != nil {
		return nil, err
	}

	record.Address = address
	record.UpdatedAt = time.Now().UTC()

	data, err := encodeRecord(record)
	if err != nil {
		return nil, err
	}
	// last write wins on concurrent updates to the same key
	if err := store.Set(ctx, recordKey(phone), data); err != nil {
		return nil, err
	}
	return record, nil
}

func (r *RedisRepository) Delete(ctx context.Context, phone string) error {
	deleted, err := store.Del(ctx, recordKey(phone))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// List walks the keyspace with SCAN. The cursor token is the SCAN cursor in
// decimal; page sizes follow the store's enumeration and may vary around limit.
func (r *RedisRepository) List(ctx context.Context, cursor string, limit int) (*model.RecordPage, error) {
	limit = clampLimit(limit)

	var start uint64
	if cursor != "" {
		parsed, err := strconv.ParseUint(cursor, 10, 64)
		if err != nil {
			return nil, ErrBadCursor
		}
		start = parsed
	}

	keys, next, err := store.ScanKeys(ctx, start, constant.RECORD_KEY_PATTERN, int64(limit))
	if err != nil {
		return nil, err
	}

	page := model.RecordPage{Items: []model.PhoneAddressRecord{}}
	if len(keys) > 0 {
		values, err := store.GetMany(ctx, keys...)
		if err != nil {
			return nil, err
		}
		for _, value := range values {
			data, ok := value.(string)
			if !ok {
				// key deleted between SCAN and MGET
				continue
			}
			record, err := decodeRecord(data)
			if err != nil {
				return nil, err
			}
			page.Items = append(page.Items, *record)
		}
	}

	if next != 0 {
		page.NextCursor = strconv.FormatUint(next, 10)
	}
	return &page, nil
}
