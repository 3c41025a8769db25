package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/synnex-gateway/infrastructure/database/postgres"
	"github.com/vfg2006/synnex-gateway/internal/domain"
)

const (
	purchaseOrdersTable = "purchase_orders"

	uniqueViolationCode = "23505"
)

var (
	ErrDuplicatePurchaseOrder = errors.New("purchase order already submitted")
	ErrPurchaseOrderNotFound  = errors.New("purchase order not found")
)

var purchaseOrderColumns = []string{
	"id",
	"po_number",
	"customer_number",
	"country",
	"state",
	"status_code",
	"order_numbers",
	"tracking_numbers",
	"item_count",
	"submitted_at",
	"last_checked_at",
	"created_at",
	"updated_at",
}

//go:generate mockgen -source=purchase_order.go -destination=mocks/mock_purchase_order.go -package=mocks
type PurchaseOrderRepository interface {
	Create(ctx context.Context, record *domain.PurchaseOrderRecord) error
	GetByPONumber(ctx context.Context, poNumber string) (*domain.PurchaseOrderRecord, error)
	ListOpen(ctx context.Context, filter domain.ListPurchaseOrdersFilter) ([]*domain.PurchaseOrderRecord, error)
	UpdateStatus(ctx context.Context, update domain.PurchaseOrderStatusUpdate) error
}

type purchaseOrderRepository struct {
	db postgres.Queryer
}

func NewPurchaseOrderRepository(db postgres.Queryer) PurchaseOrderRepository {
	return &purchaseOrderRepository{
		db: db,
	}
}

func (r *purchaseOrderRepository) Create(ctx context.Context, record *domain.PurchaseOrderRecord) error {
	queryBuilder := squirrel.
		Insert(purchaseOrdersTable).
		Columns("id", "po_number", "customer_number", "country", "state", "status_code",
			"order_numbers", "tracking_numbers", "item_count", "submitted_at").
		Values(
			record.ID,
			record.PONumber,
			record.CustomerNumber,
			record.Country,
			record.State,
			record.StatusCode,
			pq.Array(nonNil(record.OrderNumbers)),
			pq.Array(nonNil(record.TrackingNumbers)),
			record.ItemCount,
			record.SubmittedAt,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: %s", ErrDuplicatePurchaseOrder, record.PONumber)
		}
		return fmt.Errorf("erro ao registrar pedido: %w", err)
	}

	return nil
}

func (r *purchaseOrderRepository) GetByPONumber(ctx context.Context, poNumber string) (*domain.PurchaseOrderRecord, error) {
	query, args, err := squirrel.
		Select(purchaseOrderColumns...).
		From(purchaseOrdersTable).
		Where(squirrel.Eq{"po_number": poNumber}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	record, err := scanPurchaseOrder(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar pedido: %w", err)
	}

	return record, nil
}

// ListOpen lista os pedidos ainda em acompanhamento, do mais antigo para o mais recente
func (r *purchaseOrderRepository) ListOpen(ctx context.Context, filter domain.ListPurchaseOrdersFilter) ([]*domain.PurchaseOrderRecord, error) {
	queryBuilder := squirrel.
		Select(purchaseOrderColumns...).
		From(purchaseOrdersTable).
		Where(squirrel.Eq{"state": domain.PurchaseOrderStateOpen}).
		OrderBy("submitted_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if !filter.Since.IsZero() {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"submitted_at": filter.Since})
	}

	if filter.Limit > 0 {
		queryBuilder = queryBuilder.Limit(filter.Limit)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos abertos: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.PurchaseOrderRecord, 0)
	for rows.Next() {
		record, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return records, nil
}

func (r *purchaseOrderRepository) UpdateStatus(ctx context.Context, update domain.PurchaseOrderStatusUpdate) error {
	query, args, err := squirrel.
		Update(purchaseOrdersTable).
		Set("state", update.State).
		Set("status_code", update.StatusCode).
		Set("order_numbers", pq.Array(nonNil(update.OrderNumbers))).
		Set("tracking_numbers", pq.Array(nonNil(update.TrackingNumbers))).
		Set("last_checked_at", update.CheckedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"po_number": update.PONumber}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do pedido: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do pedido: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrPurchaseOrderNotFound, update.PONumber)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPurchaseOrder(row rowScanner) (*domain.PurchaseOrderRecord, error) {
	var (
		record        domain.PurchaseOrderRecord
		lastCheckedAt sql.NullTime
	)

	err := row.Scan(
		&record.ID,
		&record.PONumber,
		&record.CustomerNumber,
		&record.Country,
		&record.State,
		&record.StatusCode,
		pq.Array(&record.OrderNumbers),
		pq.Array(&record.TrackingNumbers),
		&record.ItemCount,
		&record.SubmittedAt,
		&lastCheckedAt,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastCheckedAt.Valid {
		record.LastCheckedAt = &lastCheckedAt.Time
	}

	record.OrderNumbers = nonNil(record.OrderNumbers)
	record.TrackingNumbers = nonNil(record.TrackingNumbers)

	return &record, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
