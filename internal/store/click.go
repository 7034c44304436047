package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateClickParams represents parameters for recording a click
type CreateClickParams struct {
	AffiliateLinkID uuid.UUID
	IPAddress       string
	UserAgent       string
	Referer         string
}

const sqlCreateClick = `
INSERT INTO affiliate_clicks (affiliate_link_id, ip_address, user_agent, referer)
VALUES ($1, $2, $3, $4)
`

// CreateClick appends a click row. Clicks are never updated or deleted.
func (s *Store) CreateClick(ctx context.Context, params CreateClickParams) error {
	_, err := s.db.ExecContext(ctx, sqlCreateClick,
		params.AffiliateLinkID,
		params.IPAddress,
		params.UserAgent,
		params.Referer)
	if err != nil {
		return fmt.Errorf("failed to create click: %w", err)
	}
	return nil
}
