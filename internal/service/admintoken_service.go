package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"
	"github.com/androidmobilestore/mnw-wallet/internal/core/ports"
	"github.com/androidmobilestore/mnw-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const tokenBytes = 32

// AdminTokenServiceImpl implements ports.AdminTokenService. Tokens are
// random, resource-scoped and single-use: Validate checks the binding and
// lifetime, Consume burns the token atomically with the privileged mutation.
type AdminTokenServiceImpl struct {
	tokenRepo    ports.AdminTokenRepository
	replayGuard  ports.TokenReplayGuard
	panelBaseURL string
	log          zerolog.Logger
}

// NewAdminTokenService creates a new AdminTokenServiceImpl.
func NewAdminTokenService(
	tokenRepo ports.AdminTokenRepository,
	replayGuard ports.TokenReplayGuard,
	panelBaseURL string,
	log zerolog.Logger,
) *AdminTokenServiceImpl {
	return &AdminTokenServiceImpl{
		tokenRepo:    tokenRepo,
		replayGuard:  replayGuard,
		panelBaseURL: panelBaseURL,
		log:          log,
	}
}

// Issue mints a fresh capability token bound to one resource.
func (s *AdminTokenServiceImpl) Issue(ctx context.Context, adminID uuid.UUID, resourceType domain.ResourceType, resourceID uuid.UUID) (*domain.AdminLinkToken, error) {
	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	now := time.Now().UTC()
	token := &domain.AdminLinkToken{
		Token:        hex.EncodeToString(raw),
		AdminID:      adminID,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		ExpiresAt:    now.Add(domain.AdminTokenTTL),
		CreatedAt:    now,
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("store token: %w", err))
	}

	s.log.Info().
		Str("admin_id", adminID.String()).
		Str("resource_type", string(resourceType)).
		Str("resource_id", resourceID.String()).
		Msg("capability token issued")
	return token, nil
}

// Validate checks the token against the resource the caller is trying to
// mutate. The failure order matters: an unknown token reveals nothing, a
// known token bound elsewhere is a mismatch, then lifetime, then reuse.
func (s *AdminTokenServiceImpl) Validate(ctx context.Context, token string, resourceType domain.ResourceType, resourceID uuid.UUID) (uuid.UUID, error) {
	record, err := s.tokenRepo.GetByToken(ctx, token)
	if err != nil {
		return uuid.Nil, apperror.InternalError(fmt.Errorf("lookup token: %w", err))
	}
	if record == nil {
		return uuid.Nil, apperror.ErrTokenInvalid()
	}
	if record.ResourceType != resourceType || record.ResourceID != resourceID {
		return uuid.Nil, apperror.ErrTokenMismatch()
	}
	if record.IsExpired(time.Now().UTC()) {
		return uuid.Nil, apperror.ErrTokenExpired()
	}
	if record.UsedAt != nil {
		return uuid.Nil, apperror.ErrTokenUsed()
	}
	return record.AdminID, nil
}

// Consume burns the token inside the caller's transaction. The Redis guard
// short-circuits replays before they reach the database; the database
// check-and-set is the source of truth.
func (s *AdminTokenServiceImpl) Consume(ctx context.Context, tx pgx.Tx, token string) error {
	fresh, err := s.replayGuard.CheckAndSet(ctx, token, domain.AdminTokenTTL)
	if err != nil {
		// Redis being down must not make valid tokens unusable.
		s.log.Warn().Err(err).Msg("replay guard unavailable, falling through to database")
	} else if !fresh {
		return apperror.ErrTokenUsed()
	}

	consumed, err := s.tokenRepo.Consume(ctx, tx, token, time.Now().UTC())
	if err != nil {
		return apperror.InternalError(fmt.Errorf("consume token: %w", err))
	}
	if !consumed {
		return apperror.ErrTokenUsed()
	}
	return nil
}

// Release clears the fast-path guard for a token whose transaction rolled
// back. Without it a failed resolution would leave the key set and the
// still-unconsumed token rejected for the guard's TTL.
func (s *AdminTokenServiceImpl) Release(ctx context.Context, token string) {
	if err := s.replayGuard.Release(ctx, token); err != nil {
		s.log.Warn().Err(err).Msg("replay guard release failed")
	}
}

// BuildLink renders the one-shot admin panel URL for a token.
func (s *AdminTokenServiceImpl) BuildLink(token *domain.AdminLinkToken) string {
	resource := "exchanges"
	if token.ResourceType == domain.ResourceTypeWithdrawal {
		resource = "withdrawals"
	}
	return fmt.Sprintf("%s/admin/%s/%s?t=%s", s.panelBaseURL, resource, token.ResourceID, token.Token)
}
