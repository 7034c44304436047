package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// Profile is the slice of the external profiles table the fixtures need.
type Profile struct {
	ID    uuid.UUID `db:"id"`
	Email string    `db:"email"`
}

// CreateProfile creates an affiliate profile with a unique email.
func (f *Fixtures) CreateProfile(email ...string) Profile {
	f.t.Helper()
	address := fmt.Sprintf("affiliate-%s@example.com", uuid.New().String()[:8])
	if len(email) > 0 {
		address = email[0]
	}

	var profile Profile
	err := f.testDB.GetDB().GetContext(f.ctx, &profile,
		`INSERT INTO profiles (email) VALUES ($1) RETURNING id, email`, address)
	require.NoError(f.t, err, "failed to create test profile")
	return profile
}

// ProductOpts customizes product creation.
type ProductOpts struct {
	Name    string
	URL     string
	Payout  decimal.Decimal
	Enabled bool
}

// CreateProduct creates a test product with optional customization.
func (f *Fixtures) CreateProduct(opts ...func(*ProductOpts)) Product {
	f.t.Helper()
	o := ProductOpts{Name: "Test Product", URL: "https://shop.example.com/p", Payout: decimal.RequireFromString("12.5"), Enabled: true}
	for _, fn := range opts {
		fn(&o)
	}

	var product Product
	err := f.testDB.GetDB().GetContext(f.ctx, &product, `
		INSERT INTO products (name, url, payout_per_conversion, is_affiliate_enabled)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, url, payout_per_conversion, is_affiliate_enabled, created_at, updated_at`,
		o.Name, o.URL, o.Payout, o.Enabled)
	require.NoError(f.t, err, "failed to create test product")
	return product
}

// CreateLink creates an affiliate link for a fresh profile and product.
func (f *Fixtures) CreateLink() (AffiliateLink, Profile, Product) {
	f.t.Helper()
	profile := f.CreateProfile()
	product := f.CreateProduct()

	link, err := f.testDB.Store.CreateAffiliateLink(f.ctx, CreateAffiliateLinkParams{
		AffiliateID: profile.ID,
		ProductID:   product.ID,
		UniqueCode:  uuid.New().String()[:8],
	})
	require.NoError(f.t, err, "failed to create test link")
	return link, profile, product
}

// CountClicks returns the number of clicks recorded for a link.
func (f *Fixtures) CountClicks(linkID uuid.UUID) int {
	f.t.Helper()
	var count int
	err := f.testDB.GetDB().GetContext(f.ctx, &count,
		`SELECT COUNT(*) FROM affiliate_clicks WHERE affiliate_link_id = $1`, linkID)
	require.NoError(f.t, err, "failed to count clicks")
	return count
}

// ConversionsFor returns the conversions stored for a link and end user.
func (f *Fixtures) ConversionsFor(linkID uuid.UUID, endUser string) []Conversion {
	f.t.Helper()
	var conversions []Conversion
	err := f.testDB.GetDB().SelectContext(f.ctx, &conversions, `
		SELECT id, affiliate_link_id, product_id, end_user_identifier, payout_amount, status, created_at, updated_at
		FROM conversions
		WHERE affiliate_link_id = $1 AND end_user_identifier = $2
		ORDER BY created_at`, linkID, endUser)
	require.NoError(f.t, err, "failed to load conversions")
	return conversions
}
