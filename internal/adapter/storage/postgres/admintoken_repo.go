package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AdminTokenRepo implements ports.AdminTokenRepository.
type AdminTokenRepo struct {
	pool Pool
}

// NewAdminTokenRepo creates a new AdminTokenRepo.
func NewAdminTokenRepo(pool Pool) *AdminTokenRepo {
	return &AdminTokenRepo{pool: pool}
}

// Create inserts a capability token. The token value is the primary key.
func (r *AdminTokenRepo) Create(ctx context.Context, t *domain.AdminLinkToken) error {
	query := `INSERT INTO admin_link_tokens (token, admin_id, resource_type, resource_id, expires_at, used_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		t.Token, t.AdminID, t.ResourceType, t.ResourceID, t.ExpiresAt, t.UsedAt, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert admin token: %w", err)
	}
	return nil
}

// GetByToken fetches a capability token by its opaque value.
func (r *AdminTokenRepo) GetByToken(ctx context.Context, token string) (*domain.AdminLinkToken, error) {
	query := `SELECT token, admin_id, resource_type, resource_id, expires_at, used_at, created_at
		FROM admin_link_tokens WHERE token = $1`

	t := &domain.AdminLinkToken{}
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&t.Token, &t.AdminID, &t.ResourceType, &t.ResourceID, &t.ExpiresAt, &t.UsedAt, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin token: %w", err)
	}
	return t, nil
}

// Consume marks a token used. The WHERE used_at IS NULL guard makes
// consumption atomic: of two concurrent resolutions carrying the same token,
// exactly one sees a row affected. Returns false when the token was already
// consumed or does not exist.
func (r *AdminTokenRepo) Consume(ctx context.Context, tx pgx.Tx, token string, usedAt time.Time) (bool, error) {
	query := `UPDATE admin_link_tokens SET used_at = $2 WHERE token = $1 AND used_at IS NULL`

	tag, err := tx.Exec(ctx, query, token, usedAt)
	if err != nil {
		return false, fmt.Errorf("consume admin token: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
