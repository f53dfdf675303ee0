package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/bizzy/pkg/business"
	"github.com/ghuser/bizzy/pkg/database"
	transactiondomain "github.com/ghuser/bizzy/services/transaction/domain"
	"github.com/ghuser/bizzy/services/transaction/domain/models"
	"github.com/ghuser/bizzy/services/transaction/domain/repositories"
	"github.com/ghuser/bizzy/services/transaction/infrastructure/persistence/postgres/db"
)

// TransactionRepository implements repositories.TransactionRepository against PostgreSQL.
type TransactionRepository struct {
	db *database.Database
}

// NewTransactionRepository returns a TransactionRepository backed by the given pool.
func NewTransactionRepository(database *database.Database) *TransactionRepository {
	return &TransactionRepository{db: database}
}

func (r *TransactionRepository) Save(ctx context.Context, t *models.Transaction) error {
	quantity, age, err := intColumns(t)
	if err != nil {
		return err
	}
	err = db.New(r.db.DB()).InsertTransaction(ctx, db.InsertTransactionParams{
		ID:               t.ID,
		UserID:           t.UserID,
		Sector:           string(t.Sector),
		Type:             t.Type,
		Category:         string(t.Category),
		ItemID:           nullUUID(t.ItemID),
		ItemName:         t.ItemName,
		Amount:           t.Amount,
		Quantity:         quantity,
		CustomerName:     t.Customer.Name,
		CustomerPhone:    t.Customer.Phone,
		CustomerAge:      age,
		CustomerGender:   t.Customer.Gender,
		CustomerLocation: t.Customer.Location,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID returns ErrTransactionNotFound when the transaction does not exist for userID.
func (r *TransactionRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	row, err := db.New(r.db.DB()).GetTransaction(ctx, db.GetTransactionParams{ID: id, UserID: userID})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, transactiondomain.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query transaction: %w", err)
	}
	return rowToTransaction(row), nil
}

func (r *TransactionRepository) FindByUserID(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.Transaction, int, error) {
	q := db.New(r.db.DB())
	limit, offset := database.PageArgs(opts.Limit, opts.Offset)
	rows, err := q.ListTransactions(ctx, db.ListTransactionsParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query transactions: %w", err)
	}
	total, err := q.CountTransactions(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}
	return rowsToTransactions(rows), int(total), nil
}

func (r *TransactionRepository) FindSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*models.Transaction, error) {
	rows, err := db.New(r.db.DB()).ListTransactionsSince(ctx, db.ListTransactionsSinceParams{
		UserID:    userID,
		CreatedAt: since,
	})
	if err != nil {
		return nil, fmt.Errorf("query transactions since %s: %w", since.Format(time.RFC3339), err)
	}
	return rowsToTransactions(rows), nil
}

func (r *TransactionRepository) Totals(ctx context.Context, userID uuid.UUID) (map[models.Category]decimal.Decimal, error) {
	rows, err := db.New(r.db.DB()).SumTransactionsByCategory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sum transactions: %w", err)
	}
	totals := make(map[models.Category]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[models.Category(row.Category)] = row.Total
	}
	return totals, nil
}

func (r *TransactionRepository) Update(ctx context.Context, t *models.Transaction) error {
	quantity, age, err := intColumns(t)
	if err != nil {
		return err
	}
	n, err := db.New(r.db.DB()).UpdateTransaction(ctx, db.UpdateTransactionParams{
		ID:               t.ID,
		UserID:           t.UserID,
		Type:             t.Type,
		Category:         string(t.Category),
		ItemID:           nullUUID(t.ItemID),
		ItemName:         t.ItemName,
		Amount:           t.Amount,
		Quantity:         quantity,
		CustomerName:     t.Customer.Name,
		CustomerPhone:    t.Customer.Phone,
		CustomerAge:      age,
		CustomerGender:   t.Customer.Gender,
		CustomerLocation: t.Customer.Location,
		UpdatedAt:        t.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if n == 0 {
		return transactiondomain.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	n, err := db.New(r.db.DB()).DeleteTransaction(ctx, db.DeleteTransactionParams{ID: id, UserID: userID})
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if n == 0 {
		return transactiondomain.ErrTransactionNotFound
	}
	return nil
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

// intColumns converts the integer fields, refusing values an INTEGER cannot hold.
func intColumns(t *models.Transaction) (int32, sql.NullInt32, error) {
	quantity, err := database.Int32(t.Quantity)
	if err != nil {
		return 0, sql.NullInt32{}, fmt.Errorf("%w: quantity: %w", transactiondomain.ErrInvalidTransaction, err)
	}
	age, err := database.NullInt32(t.Customer.Age)
	if err != nil {
		return 0, sql.NullInt32{}, fmt.Errorf("%w: customer_age: %w", transactiondomain.ErrInvalidTransaction, err)
	}
	return quantity, age, nil
}

func rowsToTransactions(rows []db.Transaction) []*models.Transaction {
	txns := make([]*models.Transaction, len(rows))
	for i, row := range rows {
		txns[i] = rowToTransaction(row)
	}
	return txns
}

func rowToTransaction(row db.Transaction) *models.Transaction {
	t := &models.Transaction{
		ID:       row.ID,
		UserID:   row.UserID,
		Sector:   business.Sector(row.Sector),
		Type:     row.Type,
		Category: models.Category(row.Category),
		ItemName: row.ItemName,
		Amount:   row.Amount,
		Quantity: int(row.Quantity),
		Customer: models.Customer{
			Name:     row.CustomerName,
			Phone:    row.CustomerPhone,
			Gender:   row.CustomerGender,
			Location: row.CustomerLocation,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.ItemID.Valid {
		id := row.ItemID.UUID
		t.ItemID = &id
	}
	if row.CustomerAge.Valid {
		age := int(row.CustomerAge.Int32)
		t.Customer.Age = &age
	}
	return t
}
