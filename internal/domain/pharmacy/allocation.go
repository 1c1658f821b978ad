package pharmacy

import (
	"github.com/jhoicas/clinica-api/internal/domain"
	"github.com/jhoicas/clinica-api/internal/domain/entity"
)

// InsufficientStockError indica que la venta pidió más unidades de las que
// hay en los lotes activos del medicamento. Unwrap permite mapearlo con
// errors.Is(err, domain.ErrInsufficientStock); el mensaje es el que ve el
// punto de venta.
type InsufficientStockError struct {
	MedicineName string
	Shortfall    int64
}

func (e *InsufficientStockError) Error() string {
	return "Insufficient stock for medicine " + e.MedicineName
}

func (e *InsufficientStockError) Unwrap() error {
	return domain.ErrInsufficientStock
}

// Deduction indica cuántas unidades descontar de un lote concreto.
type Deduction struct {
	BatchID  string
	Quantity int64
}

// AllocationPlan resultado de planear una asignación FEFO sobre los lotes de
// un medicamento. Si Shortfall > 0 el plan NO debe aplicarse: la factura
// completa se rechaza.
type AllocationPlan struct {
	Deductions []Deduction
	Allocated  int64 // total cubierto por los lotes
	Shortfall  int64 // unidades que no se pudieron cubrir
}

// Fulfilled indica si el plan cubre la cantidad solicitada completa.
func (p AllocationPlan) Fulfilled() bool {
	return p.Shortfall == 0
}

// PlanAllocation recorre los lotes en el orden recibido (el repositorio los
// entrega por expiry_date ascendente, con desempate estable por fecha de
// creación) y descuenta de cada uno min(restante, lote.Quantity) hasta cubrir
// la cantidad solicitada. No muta los lotes: solo produce el plan; aplicarlo
// es responsabilidad del caso de uso dentro de su transacción.
//
// requested == 0 devuelve un plan vacío cumplido. Lotes soft-deleted o en
// cero se saltan.
func PlanAllocation(batches []*entity.Batch, requested int64) AllocationPlan {
	plan := AllocationPlan{}
	if requested <= 0 {
		return plan
	}

	remaining := requested
	for _, b := range batches {
		if remaining == 0 {
			break
		}
		if !b.IsActive() || b.Quantity <= 0 {
			continue
		}
		take := b.Quantity
		if take > remaining {
			take = remaining
		}
		plan.Deductions = append(plan.Deductions, Deduction{BatchID: b.ID, Quantity: take})
		plan.Allocated += take
		remaining -= take
	}
	plan.Shortfall = remaining
	return plan
}
