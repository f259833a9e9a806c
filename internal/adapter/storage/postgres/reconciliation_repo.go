package postgres

import (
	"context"
	"fmt"

	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ReconciliationRepo implements ports.ReconciliationRepository.
type ReconciliationRepo struct {
	pool Pool
}

// NewReconciliationRepo creates a new ReconciliationRepo.
func NewReconciliationRepo(pool Pool) *ReconciliationRepo {
	return &ReconciliationRepo{pool: pool}
}

// Create writes an audit row in the same transaction as the balance
// replacement it documents.
func (r *ReconciliationRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.Reconciliation) error {
	query := `INSERT INTO reconciliations (id, wallet_id, currency, previous, observed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query,
		rec.ID, rec.WalletID, rec.Currency, rec.Previous, rec.Observed, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reconciliation: %w", err)
	}
	return nil
}
