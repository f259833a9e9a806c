package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExchange() *domain.Exchange {
	return &domain.Exchange{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		FromCurrency: domain.CurrencyRUB,
		ToCurrency:   domain.CurrencyUSDT,
		FromAmount:   decimal.RequireFromString("500"),
		ToAmount:     decimal.RequireFromString("6.25"),
		Rate:         decimal.RequireFromString("0.0125"),
		Status:       domain.ExchangeStatusCompleted,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
}

func exchangeRows() []string {
	return []string{"id", "user_id", "from_currency", "to_currency", "from_amount", "to_amount",
		"rate", "status", "movement_id", "txid", "destination_address", "admin_id", "completed_at", "created_at"}
}

func exchangeRow(e *domain.Exchange) *pgxmock.Rows {
	return pgxmock.NewRows(exchangeRows()).AddRow(
		e.ID, e.UserID, e.FromCurrency, e.ToCurrency, e.FromAmount, e.ToAmount,
		e.Rate, e.Status, e.MovementID, e.TxID, e.DestinationAddress, e.AdminID, e.CompletedAt, e.CreatedAt,
	)
}

func TestExchangeRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewExchangeRepo(mock)
	e := newTestExchange()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO exchanges").
		WithArgs(e.ID, e.UserID, e.FromCurrency, e.ToCurrency, e.FromAmount, e.ToAmount,
			e.Rate, e.Status, e.MovementID, e.TxID, e.DestinationAddress, e.AdminID, e.CompletedAt, e.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, e)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExchangeRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewExchangeRepo(mock)
	e := newTestExchange()

	mock.ExpectQuery("SELECT .+ FROM exchanges WHERE id").
		WithArgs(e.ID).
		WillReturnRows(exchangeRow(e))

	result, err := repo.GetByID(context.Background(), e.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, e.ID, result.ID)
	assert.True(t, e.Rate.Equal(result.Rate))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExchangeRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewExchangeRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM exchanges WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(exchangeRows()))

	result, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExchangeRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewExchangeRepo(mock)
	e := newTestExchange()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM exchanges WHERE id .+ FOR UPDATE").
		WithArgs(e.ID).
		WillReturnRows(exchangeRow(e))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByIDForUpdate(context.Background(), tx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, e.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExchangeRepo_Resolve(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewExchangeRepo(mock)
	e := newTestExchange()
	txid := "a1b2c3"
	adminID := uuid.New()
	now := time.Now().UTC()
	e.Status = domain.ExchangeStatusCompleted
	e.TxID = &txid
	e.AdminID = &adminID
	e.CompletedAt = &now

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE exchanges SET status").
		WithArgs(e.Status, e.TxID, e.DestinationAddress, e.AdminID, e.CompletedAt, e.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Resolve(context.Background(), tx, e)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
