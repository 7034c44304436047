package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	// Handle empty or null JSON
	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// Product is an affiliate-promotable product
type Product struct {
	ID                  uuid.UUID       `db:"id" json:"id"`
	Name                string          `db:"name" json:"name"`
	URL                 string          `db:"url" json:"url"`
	PayoutPerConversion decimal.Decimal `db:"payout_per_conversion" json:"payout_per_conversion"`
	IsAffiliateEnabled  bool            `db:"is_affiliate_enabled" json:"is_affiliate_enabled"`
	CreatedAt           time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at" json:"updated_at"`
}

// AffiliateLink is the per-(affiliate, product) short link
type AffiliateLink struct {
	ID          uuid.UUID `db:"id" json:"id"`
	AffiliateID uuid.UUID `db:"affiliate_id" json:"affiliate_id"`
	ProductID   uuid.UUID `db:"product_id" json:"product_id"`
	UniqueCode  string    `db:"unique_code" json:"unique_code"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// LinkDestination is an affiliate link joined with the product URL it redirects to
type LinkDestination struct {
	LinkID      uuid.UUID `db:"link_id" json:"link_id"`
	AffiliateID uuid.UUID `db:"affiliate_id" json:"affiliate_id"`
	ProductID   uuid.UUID `db:"product_id" json:"product_id"`
	ProductURL  string    `db:"product_url" json:"product_url"`
}

// LinkAttribution is an affiliate link joined with the data needed to credit a conversion
type LinkAttribution struct {
	LinkID              uuid.UUID       `db:"link_id"`
	AffiliateID         uuid.UUID       `db:"affiliate_id"`
	ProductID           uuid.UUID       `db:"product_id"`
	PayoutPerConversion decimal.Decimal `db:"payout_per_conversion"`
	AffiliateEmail      *string         `db:"affiliate_email"`
}

// Click is one recorded visit through an affiliate link
type Click struct {
	ID              uuid.UUID `db:"id"`
	AffiliateLinkID uuid.UUID `db:"affiliate_link_id"`
	IPAddress       string    `db:"ip_address"`
	UserAgent       string    `db:"user_agent"`
	Referer         string    `db:"referer"`
	CreatedAt       time.Time `db:"created_at"`
}

// Conversion is a credited commission for a (link, end user) pair
type Conversion struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	AffiliateLinkID   uuid.UUID       `db:"affiliate_link_id" json:"affiliate_link_id"`
	ProductID         uuid.UUID       `db:"product_id" json:"product_id"`
	EndUserIdentifier string          `db:"end_user_identifier" json:"end_user_identifier"`
	PayoutAmount      decimal.Decimal `db:"payout_amount" json:"payout_amount"`
	Status            string          `db:"status" json:"status"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

// WithdrawalRequest is an affiliate payout request
type WithdrawalRequest struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	AffiliateID    uuid.UUID       `db:"affiliate_id" json:"affiliate_id"`
	Amount         decimal.Decimal `db:"amount" json:"amount"`
	PaymentMethod  string          `db:"payment_method" json:"payment_method"`
	PaymentDetails JSONB           `db:"payment_details" json:"payment_details"`
	Status         string          `db:"status" json:"status"`
	RequestedAt    time.Time       `db:"requested_at" json:"requested_at"`
	ProcessedAt    *time.Time      `db:"processed_at" json:"processed_at,omitempty"`
}
