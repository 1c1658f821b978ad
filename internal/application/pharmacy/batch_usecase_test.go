package pharmacy

import (
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clinica-api/internal/application/dto"
	"github.com/jhoicas/clinica-api/internal/domain"
	"github.com/jhoicas/clinica-api/internal/domain/entity"
	domainpharmacy "github.com/jhoicas/clinica-api/internal/domain/pharmacy"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memBatchRepo struct {
	batches map[string]*entity.Batch
}

func newMemBatchRepo() *memBatchRepo {
	return &memBatchRepo{batches: make(map[string]*entity.Batch)}
}

func (r *memBatchRepo) Create(b *entity.Batch) error {
	cp := *b
	r.batches[b.ID] = &cp
	return nil
}

func (r *memBatchRepo) GetByID(id string) (*entity.Batch, error) {
	b, ok := r.batches[id]
	if !ok || !b.IsActive() {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *memBatchRepo) ListActive() ([]*entity.Batch, error) {
	return r.listWhere(func(b *entity.Batch) bool { return b.IsActive() }), nil
}

func (r *memBatchRepo) ListActiveByMedicine(medicineID string) ([]*entity.Batch, error) {
	return r.listWhere(func(b *entity.Batch) bool {
		return b.IsActive() && b.MedicineID == medicineID
	}), nil
}

func (r *memBatchRepo) ListActiveByMedicineForUpdate(medicineID string) ([]*entity.Batch, error) {
	return r.listWhere(func(b *entity.Batch) bool {
		return b.IsActive() && b.MedicineID == medicineID && b.Quantity > 0
	}), nil
}

func (r *memBatchRepo) Update(b *entity.Batch) error {
	cp := *b
	r.batches[b.ID] = &cp
	return nil
}

func (r *memBatchRepo) Deduct(id string, qty int64) error {
	b, ok := r.batches[id]
	if !ok || !b.IsActive() || b.Quantity < qty {
		return domain.ErrInsufficientAdjustment
	}
	b.Quantity -= qty
	return nil
}

func (r *memBatchRepo) SoftDelete(id string) error {
	b, ok := r.batches[id]
	if !ok || !b.IsActive() {
		return domain.ErrNotFound
	}
	now := time.Now()
	b.DeletedAt = &now
	return nil
}

func (r *memBatchRepo) StockByMedicine(medicineID string) (*entity.MedicineStock, error) {
	stock := &entity.MedicineStock{}
	for _, b := range r.batches {
		if b.IsActive() && b.MedicineID == medicineID {
			stock.Total += b.Quantity
			stock.Batches++
		}
	}
	return stock, nil
}

func (r *memBatchRepo) listWhere(keep func(*entity.Batch) bool) []*entity.Batch {
	var out []*entity.Batch
	for _, b := range r.batches {
		if keep(b) {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ExpiryDate.Before(out[j].ExpiryDate)
	})
	return out
}

type memMedicineRepo struct {
	medicines map[string]*entity.Medicine
}

func newMemMedicineRepo(meds ...*entity.Medicine) *memMedicineRepo {
	r := &memMedicineRepo{medicines: make(map[string]*entity.Medicine)}
	for _, m := range meds {
		r.medicines[m.ID] = m
	}
	return r
}

func (r *memMedicineRepo) Create(m *entity.Medicine) error { r.medicines[m.ID] = m; return nil }

func (r *memMedicineRepo) GetByID(id string) (*entity.Medicine, error) {
	return r.medicines[id], nil
}

func (r *memMedicineRepo) List() ([]*entity.Medicine, error) {
	var out []*entity.Medicine
	for _, m := range r.medicines {
		out = append(out, m)
	}
	return out, nil
}

func (r *memMedicineRepo) ListByGroup(groupID, search string) ([]*entity.Medicine, error) {
	var out []*entity.Medicine
	for _, m := range r.medicines {
		if m.GroupID == groupID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMedicineRepo) Update(m *entity.Medicine) error { r.medicines[m.ID] = m; return nil }

func (r *memMedicineRepo) SoftDelete(id string) error { delete(r.medicines, id); return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func ibuprofeno() *entity.Medicine {
	return &entity.Medicine{ID: "med-ibu", GroupID: "grp-1", Name: "Ibuprofeno 400mg"}
}

func createRequest(qty int64) dto.CreateBatchRequest {
	// Fechas relativas a hoy para que la clasificación no dependa del día
	// en que corra la suite.
	return dto.CreateBatchRequest{
		MedicineID:    "med-ibu",
		Supplier:      "Droguería Central",
		Quantity:      &qty,
		PurchaseDate:  time.Now().AddDate(0, -1, 0).Format("2006-01-02"),
		ExpiryDate:    time.Now().AddDate(1, 0, 0).Format("2006-01-02"),
		PurchasePrice: decimal.NewFromInt(1200),
		SettingPrice:  decimal.NewFromInt(2000),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestBatchCreate_EnriqueceConClasificacionDeVencimiento(t *testing.T) {
	uc := NewBatchUseCase(newMemBatchRepo(), newMemMedicineRepo(ibuprofeno()))

	out, err := uc.Create(createRequest(50))
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID, "debe asignarse un id")
	assert.Equal(t, int64(50), out.Quantity)
	assert.Equal(t, domainpharmacy.ExpirationOK, out.ExpirationStatus,
		"un lote que vence en un año está ok")
	assert.NotEmpty(t, out.ExpirationMessage)
}

func TestBatchCreate_MedicamentoInexistente(t *testing.T) {
	uc := NewBatchUseCase(newMemBatchRepo(), newMemMedicineRepo()) // catálogo vacío

	_, err := uc.Create(createRequest(50))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBatchCreate_Validaciones(t *testing.T) {
	uc := NewBatchUseCase(newMemBatchRepo(), newMemMedicineRepo(ibuprofeno()))
	negative := int64(-1)

	cases := []struct {
		name   string
		mutate func(*dto.CreateBatchRequest)
	}{
		{"sin proveedor", func(in *dto.CreateBatchRequest) { in.Supplier = "" }},
		{"sin cantidad", func(in *dto.CreateBatchRequest) { in.Quantity = nil }},
		{"cantidad negativa", func(in *dto.CreateBatchRequest) { in.Quantity = &negative }},
		{"fecha inválida", func(in *dto.CreateBatchRequest) { in.ExpiryDate = "10/01/2027" }},
		{"precio negativo", func(in *dto.CreateBatchRequest) { in.PurchasePrice = decimal.NewFromInt(-5) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := createRequest(10)
			tc.mutate(&in)
			_, err := uc.Create(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestBatchCreate_CantidadCeroEsValida(t *testing.T) {
	// Un lote agotado puede registrarse (p. ej. corrección contable).
	uc := NewBatchUseCase(newMemBatchRepo(), newMemMedicineRepo(ibuprofeno()))

	out, err := uc.Create(createRequest(0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Quantity)
}

func TestBatchListByMedicine_OrdenFEFO(t *testing.T) {
	batchRepo := newMemBatchRepo()
	uc := NewBatchUseCase(batchRepo, newMemMedicineRepo(ibuprofeno()))

	far := createRequest(10)
	far.ExpiryDate = time.Now().AddDate(2, 0, 0).Format("2006-01-02")
	soon := createRequest(10)
	soon.ExpiryDate = time.Now().AddDate(0, 2, 0).Format("2006-01-02")

	_, err := uc.Create(far)
	require.NoError(t, err)
	created, err := uc.Create(soon)
	require.NoError(t, err)

	out, err := uc.ListByMedicine("med-ibu")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, created.ID, out[0].ID, "el lote que vence primero va primero")
}

func TestBatchDelete_SacaDelStock(t *testing.T) {
	batchRepo := newMemBatchRepo()
	uc := NewBatchUseCase(batchRepo, newMemMedicineRepo(ibuprofeno()))

	created, err := uc.Create(createRequest(30))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	stock, err := batchRepo.StockByMedicine("med-ibu")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stock.Total, "el lote soft-deleted no cuenta para el stock")

	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMedicineGetByID_IncluyeStockAgregado(t *testing.T) {
	batchRepo := newMemBatchRepo()
	medRepo := newMemMedicineRepo(ibuprofeno())
	groupRepo := newMemGroupRepo(&entity.MedicineGroup{ID: "grp-1", GroupName: "Analgésicos"})
	batchUC := NewBatchUseCase(batchRepo, medRepo)
	medicineUC := NewMedicineUseCase(medRepo, groupRepo, batchRepo)

	for _, qty := range []int64{20, 35} {
		_, err := batchUC.Create(createRequest(qty))
		require.NoError(t, err)
	}

	out, err := medicineUC.GetByID("med-ibu")
	require.NoError(t, err)
	require.NotNil(t, out.Stock)
	assert.Equal(t, int64(55), out.Stock.Total)
	assert.Equal(t, 2, out.Stock.Batches)
	assert.Equal(t, "Analgésicos", out.GroupName)
}

type memGroupRepo struct {
	groups map[string]*entity.MedicineGroup
}

func newMemGroupRepo(groups ...*entity.MedicineGroup) *memGroupRepo {
	r := &memGroupRepo{groups: make(map[string]*entity.MedicineGroup)}
	for _, g := range groups {
		r.groups[g.ID] = g
	}
	return r
}

func (r *memGroupRepo) Create(g *entity.MedicineGroup) error { r.groups[g.ID] = g; return nil }

func (r *memGroupRepo) GetByID(id string) (*entity.MedicineGroup, error) {
	return r.groups[id], nil
}

func (r *memGroupRepo) GetByName(name string) (*entity.MedicineGroup, error) {
	for _, g := range r.groups {
		if g.GroupName == name {
			return g, nil
		}
	}
	return nil, nil
}

func (r *memGroupRepo) List() ([]*entity.MedicineGroup, error) {
	var out []*entity.MedicineGroup
	for _, g := range r.groups {
		out = append(out, g)
	}
	return out, nil
}

func (r *memGroupRepo) Update(g *entity.MedicineGroup) error { r.groups[g.ID] = g; return nil }

func (r *memGroupRepo) SoftDelete(id string) error { delete(r.groups, id); return nil }
