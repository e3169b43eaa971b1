package model

import (
	"time"
)

// PhoneAddressRecord is a phone/address pair stored under the phone key.
type PhoneAddressRecord struct {
	Phone     string    `json:"phone" form:"phone" validate:"required,phone"`
	Address   string    `json:"address" form:"address" validate:"required,address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateRecordRequest struct {
	Phone   string `json:"phone" form:"phone" validate:"required,phone"`
	Address string `json:"address" form:"address" validate:"required,address"`
}

type UpdateAddressRequest struct {
	Address string `json:"address" form:"address" validate:"required,address"`
}

// RecordPage is one page of a listing. NextCursor is empty once the
// listing is exhausted; the token is opaque to callers.
type RecordPage struct {
	Items      []PhoneAddressRecord `json:"items"`
	NextCursor string               `json:"next_cursor"`
}

type HealthStatus struct {
	Status         string    `json:"status"`
	StoreConnected bool      `json:"store_connected"`
	Timestamp      time.Time `json:"timestamp"`
}
