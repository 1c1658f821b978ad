package pharmacy

import (
	"github.com/jhoicas/clinica-api/internal/domain"
	"github.com/jhoicas/clinica-api/internal/domain/entity"
	"github.com/jhoicas/clinica-api/internal/domain/pharmacy"
	"github.com/jhoicas/clinica-api/internal/domain/repository"
)

// StockAllocatorService descuenta stock de los lotes de un medicamento con
// política FEFO (first-expired, first-out). Implementa billing.StockAllocator.
type StockAllocatorService struct{}

// NewStockAllocatorService construye el asignador.
func NewStockAllocatorService() *StockAllocatorService {
	return &StockAllocatorService{}
}

// AllocateInTx descuenta quantity unidades usando el repositorio del caller
// (misma transacción). Bloquea los lotes con FOR UPDATE, planifica el
// descuento en orden de vencimiento y lo aplica lote por lote. Cantidad cero
// es un no-op exitoso.
func (s *StockAllocatorService) AllocateInTx(batchRepo repository.BatchRepository, medicine *entity.Medicine, quantity int64) error {
	if quantity == 0 {
		return nil
	}
	if quantity < 0 {
		return domain.ErrInvalidInput
	}

	// FOR UPDATE: dos ventas concurrentes del mismo medicamento se serializan
	// aquí y no descuentan las mismas unidades.
	batches, err := batchRepo.ListActiveByMedicineForUpdate(medicine.ID)
	if err != nil {
		return err
	}

	plan := pharmacy.PlanAllocation(batches, quantity)
	if !plan.Fulfilled() {
		return &pharmacy.InsufficientStockError{MedicineName: medicine.Name, Shortfall: plan.Shortfall}
	}

	for _, d := range plan.Deductions {
		if err := batchRepo.Deduct(d.BatchID, d.Quantity); err != nil {
			return err
		}
	}
	return nil
}
