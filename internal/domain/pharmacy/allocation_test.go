package pharmacy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clinica-api/internal/domain/entity"
	"github.com/jhoicas/clinica-api/internal/domain/pharmacy"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del plan de asignación FEFO. Los lotes llegan ya ordenados por
// expiry_date ascendente (eso lo garantiza el repositorio); el planificador
// solo recorre y descuenta.
// ──────────────────────────────────────────────────────────────────────────────

func batchWithQty(id string, qty int64, expiryDay int) *entity.Batch {
	return &entity.Batch{
		ID:         id,
		MedicineID: "med-1",
		Quantity:   qty,
		ExpiryDate: time.Date(2025, 1, expiryDay, 0, 0, 0, 0, time.UTC),
	}
}

func TestPlanAllocation_FEFO_DescuentaDelQueVencePrimero(t *testing.T) {
	// B1 vence el día 10 (qty 5), B2 el día 20 (qty 5); pedir 7 debe
	// agotar B1 y tomar 2 de B2.
	batches := []*entity.Batch{
		batchWithQty("b1", 5, 10),
		batchWithQty("b2", 5, 20),
	}

	plan := pharmacy.PlanAllocation(batches, 7)

	require.True(t, plan.Fulfilled())
	require.Len(t, plan.Deductions, 2)
	assert.Equal(t, pharmacy.Deduction{BatchID: "b1", Quantity: 5}, plan.Deductions[0])
	assert.Equal(t, pharmacy.Deduction{BatchID: "b2", Quantity: 2}, plan.Deductions[1])
	assert.Equal(t, int64(7), plan.Allocated)
}

func TestPlanAllocation_CantidadExacta_UnSoloLote(t *testing.T) {
	batches := []*entity.Batch{batchWithQty("b1", 4, 5)}

	plan := pharmacy.PlanAllocation(batches, 4)

	require.True(t, plan.Fulfilled())
	require.Len(t, plan.Deductions, 1)
	assert.Equal(t, int64(4), plan.Deductions[0].Quantity)
}

func TestPlanAllocation_StockInsuficiente_ReportaFaltante(t *testing.T) {
	// 7 unidades en total, se piden 10: faltante de 3 y el plan no se cumple.
	batches := []*entity.Batch{
		batchWithQty("b1", 4, 5),
		batchWithQty("b2", 3, 10),
	}

	plan := pharmacy.PlanAllocation(batches, 10)

	assert.False(t, plan.Fulfilled())
	assert.Equal(t, int64(7), plan.Allocated)
	assert.Equal(t, int64(3), plan.Shortfall)
}

func TestPlanAllocation_SinLotes_TodoEsFaltante(t *testing.T) {
	plan := pharmacy.PlanAllocation(nil, 5)

	assert.False(t, plan.Fulfilled())
	assert.Empty(t, plan.Deductions)
	assert.Equal(t, int64(5), plan.Shortfall)
}

func TestPlanAllocation_CantidadCero_PlanVacioCumplido(t *testing.T) {
	batches := []*entity.Batch{batchWithQty("b1", 4, 5)}

	plan := pharmacy.PlanAllocation(batches, 0)

	assert.True(t, plan.Fulfilled())
	assert.Empty(t, plan.Deductions)
}

func TestPlanAllocation_SaltaLotesEnCeroYBorrados(t *testing.T) {
	deleted := batchWithQty("b-deleted", 10, 1)
	now := time.Now()
	deleted.DeletedAt = &now

	batches := []*entity.Batch{
		deleted,
		batchWithQty("b-empty", 0, 2),
		batchWithQty("b-ok", 6, 3),
	}

	plan := pharmacy.PlanAllocation(batches, 6)

	require.True(t, plan.Fulfilled())
	require.Len(t, plan.Deductions, 1)
	assert.Equal(t, "b-ok", plan.Deductions[0].BatchID)
}

// Mismo estado de lotes -> mismo plan, siempre. La asignación debe ser
// reproducible entre reintentos.
func TestPlanAllocation_Determinista(t *testing.T) {
	batches := []*entity.Batch{
		batchWithQty("b1", 3, 10),
		batchWithQty("b2", 3, 10), // misma fecha de vencimiento que b1
		batchWithQty("b3", 3, 12),
	}

	first := pharmacy.PlanAllocation(batches, 5)
	second := pharmacy.PlanAllocation(batches, 5)

	assert.Equal(t, first, second)
	assert.Equal(t, "b1", first.Deductions[0].BatchID, "desempate estable: respeta el orden de entrada")
}

// Escenario del módulo POS: lotes [(vence 01-10, qty 3), (vence 01-05, qty 4)]
// ordenados por el repositorio quedan [01-05, 01-10]; pedir 5 agota el del
// 01-05 y deja el del 01-10 en 2.
func TestPlanAllocation_EscenarioVentaCruzaLotes(t *testing.T) {
	batches := []*entity.Batch{
		batchWithQty("soon", 4, 5),
		batchWithQty("later", 3, 10),
	}

	plan := pharmacy.PlanAllocation(batches, 5)

	require.True(t, plan.Fulfilled())
	assert.Equal(t, pharmacy.Deduction{BatchID: "soon", Quantity: 4}, plan.Deductions[0])
	assert.Equal(t, pharmacy.Deduction{BatchID: "later", Quantity: 1}, plan.Deductions[1])
}
