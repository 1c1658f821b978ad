package billing_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clinica-api/internal/application/billing"
	"github.com/jhoicas/clinica-api/internal/application/dto"
	apppharmacy "github.com/jhoicas/clinica-api/internal/application/pharmacy"
	"github.com/jhoicas/clinica-api/internal/domain"
	"github.com/jhoicas/clinica-api/internal/domain/entity"
	"github.com/jhoicas/clinica-api/internal/domain/repository"
	"github.com/jhoicas/clinica-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del coordinador de facturación: la factura y los descuentos de lotes
// viven o mueren juntos. Los fakes en memoria simulan la transacción con un
// snapshot: si fn falla, el estado vuelve exactamente a como estaba.
// ──────────────────────────────────────────────────────────────────────────────

// fakeBatchRepo repositorio de lotes en memoria.
type fakeBatchRepo struct {
	batches map[string]*entity.Batch
}

func newFakeBatchRepo(batches ...*entity.Batch) *fakeBatchRepo {
	r := &fakeBatchRepo{batches: make(map[string]*entity.Batch)}
	for _, b := range batches {
		clone := *b
		r.batches[b.ID] = &clone
	}
	return r
}

func (r *fakeBatchRepo) snapshot() map[string]int64 {
	s := make(map[string]int64, len(r.batches))
	for id, b := range r.batches {
		s[id] = b.Quantity
	}
	return s
}

func (r *fakeBatchRepo) restore(s map[string]int64) {
	for id, qty := range s {
		r.batches[id].Quantity = qty
	}
}

func (r *fakeBatchRepo) Create(b *entity.Batch) error { r.batches[b.ID] = b; return nil }

func (r *fakeBatchRepo) GetByID(id string) (*entity.Batch, error) {
	b, ok := r.batches[id]
	if !ok || !b.IsActive() {
		return nil, nil
	}
	return b, nil
}

func (r *fakeBatchRepo) ListActive() ([]*entity.Batch, error) {
	var out []*entity.Batch
	for _, b := range r.batches {
		if b.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBatchRepo) ListActiveByMedicine(medicineID string) ([]*entity.Batch, error) {
	var out []*entity.Batch
	for _, b := range r.batches {
		if b.IsActive() && b.MedicineID == medicineID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpiryDate.Before(out[j].ExpiryDate) })
	return out, nil
}

func (r *fakeBatchRepo) ListActiveByMedicineForUpdate(medicineID string) ([]*entity.Batch, error) {
	all, _ := r.ListActiveByMedicine(medicineID)
	var out []*entity.Batch
	for _, b := range all {
		if b.Quantity > 0 {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBatchRepo) Update(b *entity.Batch) error { r.batches[b.ID] = b; return nil }

func (r *fakeBatchRepo) Deduct(id string, qty int64) error {
	b, ok := r.batches[id]
	if !ok || b.Quantity < qty {
		return domain.ErrInsufficientAdjustment
	}
	b.Quantity -= qty
	return nil
}

func (r *fakeBatchRepo) SoftDelete(id string) error {
	now := time.Now()
	r.batches[id].DeletedAt = &now
	return nil
}

func (r *fakeBatchRepo) StockByMedicine(medicineID string) (*entity.MedicineStock, error) {
	batches, _ := r.ListActiveByMedicine(medicineID)
	stock := &entity.MedicineStock{Batches: len(batches)}
	for _, b := range batches {
		stock.Total += b.Quantity
	}
	return stock, nil
}

// fakeInvoiceRepo repositorio de facturas en memoria con índice único sobre
// el identificador externo.
type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice // por InvoiceID externo
	details  []*entity.InvoiceDetail
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]*entity.Invoice)}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	if _, ok := r.invoices[inv.InvoiceID]; ok {
		return domain.ErrDuplicate
	}
	r.invoices[inv.InvoiceID] = inv
	return nil
}

func (r *fakeInvoiceRepo) CreateDetail(d *entity.InvoiceDetail) error {
	r.details = append(r.details, d)
	return nil
}

func (r *fakeInvoiceRepo) GetByInvoiceID(invoiceID string) (*entity.Invoice, error) {
	return r.invoices[invoiceID], nil
}

func (r *fakeInvoiceRepo) List() ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) GetDetailsByInvoiceID(invoiceID string) ([]*entity.InvoiceDetail, error) {
	var out []*entity.InvoiceDetail
	for _, d := range r.details {
		if d.InvoiceID == invoiceID {
			out = append(out, d)
		}
	}
	return out, nil
}

// fakeMedicineRepo catálogo en memoria, solo lectura para estos tests.
type fakeMedicineRepo struct {
	medicines map[string]*entity.Medicine
}

func newFakeMedicineRepo(medicines ...*entity.Medicine) *fakeMedicineRepo {
	r := &fakeMedicineRepo{medicines: make(map[string]*entity.Medicine)}
	for _, m := range medicines {
		r.medicines[m.ID] = m
	}
	return r
}

func (r *fakeMedicineRepo) Create(m *entity.Medicine) error { r.medicines[m.ID] = m; return nil }
func (r *fakeMedicineRepo) GetByID(id string) (*entity.Medicine, error) {
	return r.medicines[id], nil
}
func (r *fakeMedicineRepo) List() ([]*entity.Medicine, error)                  { return nil, nil }
func (r *fakeMedicineRepo) ListByGroup(_, _ string) ([]*entity.Medicine, error) { return nil, nil }
func (r *fakeMedicineRepo) Update(m *entity.Medicine) error                    { return nil }
func (r *fakeMedicineRepo) SoftDelete(id string) error                         { return nil }

// fakeTxRunner simula RunBilling: snapshot antes, restore si fn falla.
type fakeTxRunner struct {
	batchRepo   *fakeBatchRepo
	invoiceRepo *fakeInvoiceRepo
}

func (r *fakeTxRunner) RunBilling(_ context.Context, fn func(
	batchRepo repository.BatchRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	batchSnap := r.batchRepo.snapshot()
	invSnap := make(map[string]*entity.Invoice, len(r.invoiceRepo.invoices))
	for k, v := range r.invoiceRepo.invoices {
		invSnap[k] = v
	}
	detSnap := append([]*entity.InvoiceDetail(nil), r.invoiceRepo.details...)

	if err := fn(r.batchRepo, r.invoiceRepo); err != nil {
		r.batchRepo.restore(batchSnap)
		r.invoiceRepo.invoices = invSnap
		r.invoiceRepo.details = detSnap
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func testMedicine() *entity.Medicine {
	return &entity.Medicine{ID: "med-1", GroupID: "grp-1", Name: "Paracetamol 500mg"}
}

func testBatch(id string, qty int64, expiryDay int) *entity.Batch {
	return &entity.Batch{
		ID:           id,
		MedicineID:   "med-1",
		Supplier:     "Genfar",
		Quantity:     qty,
		ExpiryDate:   time.Date(2026, 1, expiryDay, 0, 0, 0, 0, time.UTC),
		SettingPrice: decimal.NewFromInt(1200),
	}
}

func newUseCase(batchRepo *fakeBatchRepo, invoiceRepo *fakeInvoiceRepo, medicineRepo *fakeMedicineRepo) *billing.CreateInvoiceUseCase {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return billing.NewCreateInvoiceUseCase(
		&fakeTxRunner{batchRepo: batchRepo, invoiceRepo: invoiceRepo},
		apppharmacy.NewStockAllocatorService(),
		medicineRepo,
		invoiceRepo,
		log,
	)
}

func validRequest(qty int64) dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		InvoiceID:     "INV-001",
		CustomerPhone: "3001234567",
		Date:          "2026-01-02",
		Subtotal:      decimal.NewFromInt(6000),
		Tax:           decimal.NewFromInt(0),
		Total:         decimal.NewFromInt(6000),
		Items: []dto.InvoiceItemRequest{{
			ItemID:         "med-1",
			ItemName:       "Paracetamol 500mg",
			ItemPrice:      decimal.NewFromInt(1200),
			ItemQuantity:   qty,
			ItemTotalPrice: decimal.NewFromInt(1200 * qty),
			Type:           entity.ItemTypeMedicine,
		}},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateInvoice_DescuentaFEFOYPersiste(t *testing.T) {
	// Lotes: vence el 05 con 4 unidades, vence el 10 con 3; pedir 5 debe
	// agotar el primero y dejar el segundo en 2.
	batchRepo := newFakeBatchRepo(testBatch("b-soon", 4, 5), testBatch("b-later", 3, 10))
	invoiceRepo := newFakeInvoiceRepo()
	uc := newUseCase(batchRepo, invoiceRepo, newFakeMedicineRepo(testMedicine()))

	resp, err := uc.CreateInvoice(context.Background(), validRequest(5))

	require.NoError(t, err)
	assert.Equal(t, "Invoice and details created successfully", resp.Message)
	assert.Equal(t, "INV-001", resp.Invoice.InvoiceID)
	require.Len(t, resp.InvoiceDetails, 1)

	assert.Equal(t, int64(0), batchRepo.batches["b-soon"].Quantity)
	assert.Equal(t, int64(2), batchRepo.batches["b-later"].Quantity)

	stored, _ := invoiceRepo.GetByInvoiceID("INV-001")
	require.NotNil(t, stored)
	details, _ := invoiceRepo.GetDetailsByInvoiceID("INV-001")
	assert.Len(t, details, 1)
}

func TestCreateInvoice_StockInsuficiente_RollbackTotal(t *testing.T) {
	// 7 unidades entre dos lotes; pedir 10 debe fallar SIN dejar rastro:
	// ni factura, ni detalles, ni descuentos parciales.
	batchRepo := newFakeBatchRepo(testBatch("b1", 4, 5), testBatch("b2", 3, 10))
	invoiceRepo := newFakeInvoiceRepo()
	uc := newUseCase(batchRepo, invoiceRepo, newFakeMedicineRepo(testMedicine()))

	resp, err := uc.CreateInvoice(context.Background(), validRequest(10))

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, "Insufficient stock for medicine Paracetamol 500mg", err.Error())

	// Conservación: las cantidades quedan intactas.
	assert.Equal(t, int64(4), batchRepo.batches["b1"].Quantity)
	assert.Equal(t, int64(3), batchRepo.batches["b2"].Quantity)
	stored, _ := invoiceRepo.GetByInvoiceID("INV-001")
	assert.Nil(t, stored)
	assert.Empty(t, invoiceRepo.details)
}

func TestCreateInvoice_MezclaMedicinaYServicio(t *testing.T) {
	// Las líneas de servicio no tocan inventario.
	batchRepo := newFakeBatchRepo(testBatch("b1", 10, 5))
	invoiceRepo := newFakeInvoiceRepo()
	uc := newUseCase(batchRepo, invoiceRepo, newFakeMedicineRepo(testMedicine()))

	req := validRequest(3)
	req.Items = append(req.Items, dto.InvoiceItemRequest{
		ItemID:         "srv-consulta",
		ItemName:       "Consulta general",
		ItemPrice:      decimal.NewFromInt(50000),
		ItemQuantity:   1,
		ItemTotalPrice: decimal.NewFromInt(50000),
		Type:           entity.ItemTypeService,
	})

	resp, err := uc.CreateInvoice(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, resp.InvoiceDetails, 2)
	assert.Equal(t, int64(7), batchRepo.batches["b1"].Quantity)
}

func TestCreateInvoice_CantidadCero_NoTocaStock(t *testing.T) {
	batchRepo := newFakeBatchRepo(testBatch("b1", 5, 5))
	invoiceRepo := newFakeInvoiceRepo()
	uc := newUseCase(batchRepo, invoiceRepo, newFakeMedicineRepo(testMedicine()))

	resp, err := uc.CreateInvoice(context.Background(), validRequest(0))

	require.NoError(t, err)
	require.Len(t, resp.InvoiceDetails, 1)
	assert.Equal(t, int64(5), batchRepo.batches["b1"].Quantity)
}

func TestCreateInvoice_MedicamentoInexistente(t *testing.T) {
	uc := newUseCase(newFakeBatchRepo(), newFakeInvoiceRepo(), newFakeMedicineRepo())

	_, err := uc.CreateInvoice(context.Background(), validRequest(1))

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCreateInvoice_PayloadInvalido(t *testing.T) {
	uc := newUseCase(newFakeBatchRepo(), newFakeInvoiceRepo(), newFakeMedicineRepo(testMedicine()))

	cases := []struct {
		name   string
		mutate func(*dto.CreateInvoiceRequest)
	}{
		{"sin invoiceId", func(r *dto.CreateInvoiceRequest) { r.InvoiceID = "" }},
		{"sin teléfono", func(r *dto.CreateInvoiceRequest) { r.CustomerPhone = "" }},
		{"sin items", func(r *dto.CreateInvoiceRequest) { r.Items = nil }},
		{"fecha malformada", func(r *dto.CreateInvoiceRequest) { r.Date = "02/01/2026" }},
		{"cantidad negativa", func(r *dto.CreateInvoiceRequest) { r.Items[0].ItemQuantity = -1 }},
		{"tipo desconocido", func(r *dto.CreateInvoiceRequest) { r.Items[0].Type = "equipment" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest(1)
			tc.mutate(&req)
			_, err := uc.CreateInvoice(context.Background(), req)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput), "esperaba ErrInvalidInput, fue: %v", err)
		})
	}
}

func TestCreateInvoice_InvoiceIDDuplicado(t *testing.T) {
	batchRepo := newFakeBatchRepo(testBatch("b1", 10, 5))
	invoiceRepo := newFakeInvoiceRepo()
	uc := newUseCase(batchRepo, invoiceRepo, newFakeMedicineRepo(testMedicine()))

	_, err := uc.CreateInvoice(context.Background(), validRequest(2))
	require.NoError(t, err)

	// Reintento con el mismo invoiceId externo: rechazado y sin doble descuento.
	_, err = uc.CreateInvoice(context.Background(), validRequest(2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.Equal(t, int64(8), batchRepo.batches["b1"].Quantity)
}
