package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/clinica-api/internal/domain"
	"github.com/jhoicas/clinica-api/internal/domain/entity"
	"github.com/jhoicas/clinica-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

const batchColumns = `id, medicine_id, supplier, quantity, purchase_date, expiry_date, purchase_price, setting_price, deleted_at, created_at, updated_at`

// BatchRepo implementación del puerto BatchRepository sobre PostgreSQL (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador de persistencia para lotes. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste un nuevo lote.
func (r *BatchRepo) Create(batch *entity.Batch) error {
	query := `
		INSERT INTO batches (id, medicine_id, supplier, quantity, purchase_date, expiry_date, purchase_price, setting_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.MedicineID, batch.Supplier, batch.Quantity,
		batch.PurchaseDate, batch.ExpiryDate, batch.PurchasePrice, batch.SettingPrice,
		batch.CreatedAt, batch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote activo por ID.
func (r *BatchRepo) GetByID(id string) (*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1 AND deleted_at IS NULL`
	b, err := scanBatch(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return b, nil
}

// ListActive lista todos los lotes activos ordenados por vencimiento.
func (r *BatchRepo) ListActive() ([]*entity.Batch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM batches WHERE deleted_at IS NULL
		ORDER BY expiry_date ASC, created_at ASC, id ASC`
	return r.queryBatches(query)
}

// ListActiveByMedicine lista los lotes activos de un medicamento en orden FEFO.
func (r *BatchRepo) ListActiveByMedicine(medicineID string) ([]*entity.Batch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM batches WHERE medicine_id = $1 AND deleted_at IS NULL
		ORDER BY expiry_date ASC, created_at ASC, id ASC`
	return r.queryBatches(query, medicineID)
}

// ListActiveByMedicineForUpdate igual que ListActiveByMedicine pero bloquea
// las filas (FOR UPDATE) y omite lotes vacíos. El orden estable del índice
// hace determinista la asignación y evita deadlocks entre ventas concurrentes.
func (r *BatchRepo) ListActiveByMedicineForUpdate(medicineID string) ([]*entity.Batch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM batches WHERE medicine_id = $1 AND deleted_at IS NULL AND quantity > 0
		ORDER BY expiry_date ASC, created_at ASC, id ASC
		FOR UPDATE`
	return r.queryBatches(query, medicineID)
}

// Update actualiza los campos editables de un lote.
func (r *BatchRepo) Update(batch *entity.Batch) error {
	query := `
		UPDATE batches
		SET supplier = $2, quantity = $3, purchase_date = $4, expiry_date = $5,
		    purchase_price = $6, setting_price = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.Supplier, batch.Quantity, batch.PurchaseDate, batch.ExpiryDate,
		batch.PurchasePrice, batch.SettingPrice, batch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update batch: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deduct descuenta qty unidades de forma atómica. La condición quantity >= $2
// garantiza en la propia sentencia que un lote nunca queda en negativo.
func (r *BatchRepo) Deduct(id string, qty int64) error {
	query := `
		UPDATE batches
		SET quantity = quantity - $2, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL AND quantity >= $2`
	cmd, err := r.q.Exec(context.Background(), query, id, qty)
	if err != nil {
		return fmt.Errorf("deduct batch: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInsufficientAdjustment
	}
	return nil
}

// SoftDelete marca deleted_at; los lotes nunca se borran físicamente.
func (r *BatchRepo) SoftDelete(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE batches SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete batch: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// StockByMedicine agregado calculado: suma y conteo de lotes activos.
func (r *BatchRepo) StockByMedicine(medicineID string) (*entity.MedicineStock, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0), COUNT(*)
		FROM batches WHERE medicine_id = $1 AND deleted_at IS NULL`
	var stock entity.MedicineStock
	err := r.q.QueryRow(context.Background(), query, medicineID).Scan(&stock.Total, &stock.Batches)
	if err != nil {
		return nil, fmt.Errorf("stock by medicine: %w", err)
	}
	return &stock, nil
}

func (r *BatchRepo) queryBatches(query string, args ...any) ([]*entity.Batch, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query batches: %w", err)
	}
	defer rows.Close()

	var batches []*entity.Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

func scanBatch(row pgx.Row) (*entity.Batch, error) {
	var b entity.Batch
	err := row.Scan(
		&b.ID, &b.MedicineID, &b.Supplier, &b.Quantity,
		&b.PurchaseDate, &b.ExpiryDate, &b.PurchasePrice, &b.SettingPrice,
		&b.DeletedAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
