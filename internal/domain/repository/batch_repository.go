package repository

import "github.com/jhoicas/clinica-api/internal/domain/entity"

// BatchRepository define el puerto de persistencia para los lotes de medicamentos.
// Todas las consultas excluyen lotes soft-deleted (deleted_at no nulo).
type BatchRepository interface {
	Create(batch *entity.Batch) error
	GetByID(id string) (*entity.Batch, error)
	ListActive() ([]*entity.Batch, error)
	// ListActiveByMedicine devuelve los lotes activos del medicamento
	// ordenados por expiry_date ascendente (el que vence primero, primero).
	ListActiveByMedicine(medicineID string) ([]*entity.Batch, error)
	// ListActiveByMedicineForUpdate igual que ListActiveByMedicine pero con
	// SELECT FOR UPDATE y solo lotes con cantidad > 0: bloquea las filas para
	// que dos ventas concurrentes no descuenten las mismas unidades. Usar
	// únicamente dentro de una transacción.
	ListActiveByMedicineForUpdate(medicineID string) ([]*entity.Batch, error)
	Update(batch *entity.Batch) error
	// Deduct descuenta qty unidades del lote de forma atómica. Falla con
	// domain.ErrInsufficientAdjustment si qty excede la cantidad actual:
	// la cantidad de un lote nunca baja de cero.
	Deduct(id string, qty int64) error
	// SoftDelete marca deleted_at; los lotes nunca se borran físicamente.
	SoftDelete(id string) error
	// StockByMedicine agregado calculado: suma y conteo de lotes activos.
	StockByMedicine(medicineID string) (*entity.MedicineStock, error)
}
