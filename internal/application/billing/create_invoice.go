package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/clinica-api/internal/application/dto"
	"github.com/jhoicas/clinica-api/internal/domain"
	"github.com/jhoicas/clinica-api/internal/domain/entity"
	"github.com/jhoicas/clinica-api/internal/domain/repository"
	"github.com/jhoicas/clinica-api/pkg/logger"
)

// CreateInvoiceUseCase crea una factura del punto de venta y descuenta el
// stock de los lotes en una sola transacción.
type CreateInvoiceUseCase struct {
	txRunner     BillingTxRunner
	allocator    StockAllocator
	medicineRepo repository.MedicineRepository
	invoiceRepo  repository.InvoiceRepository
	log          *logger.Logger
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(
	txRunner BillingTxRunner,
	allocator StockAllocator,
	medicineRepo repository.MedicineRepository,
	invoiceRepo repository.InvoiceRepository,
	log *logger.Logger,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:     txRunner,
		allocator:    allocator,
		medicineRepo: medicineRepo,
		invoiceRepo:  invoiceRepo,
		log:          log,
	}
}

// CreateInvoice valida el carrito, descuenta stock por cada línea de tipo
// medicina y guarda cabecera y detalles. Todo o nada: si una línea falta
// stock, ninguna escritura sobrevive.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.CreateInvoiceResponse, error) {
	if in.InvoiceID == "" || in.CustomerPhone == "" || in.Date == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha '%s' no tiene formato yyyy-mm-dd", domain.ErrInvalidInput, in.Date)
	}

	// Validar líneas y resolver medicamentos (fuera de la tx, solo lectura).
	medicinesByID := make(map[string]*entity.Medicine)
	for i := range in.Items {
		item := &in.Items[i]
		if item.ItemID == "" || item.ItemName == "" || item.ItemQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		if item.Type != entity.ItemTypeMedicine && item.Type != entity.ItemTypeService {
			return nil, fmt.Errorf("%w: tipo de ítem '%s' desconocido", domain.ErrInvalidInput, item.Type)
		}
		if item.Type != entity.ItemTypeMedicine {
			continue
		}
		if _, ok := medicinesByID[item.ItemID]; ok {
			continue
		}
		medicine, err := uc.medicineRepo.GetByID(item.ItemID)
		if err != nil {
			return nil, err
		}
		if medicine == nil {
			return nil, fmt.Errorf("%w: medicamento %s", domain.ErrNotFound, item.ItemID)
		}
		medicinesByID[item.ItemID] = medicine
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		InvoiceID:     in.InvoiceID,
		CustomerPhone: in.CustomerPhone,
		Date:          date,
		Subtotal:      in.Subtotal,
		Tax:           in.Tax,
		Total:         in.Total,
		CreatedAt:     now,
	}
	details := make([]*entity.InvoiceDetail, 0, len(in.Items))
	for _, item := range in.Items {
		details = append(details, &entity.InvoiceDetail{
			ID:             uuid.New().String(),
			InvoiceID:      inv.InvoiceID,
			ItemID:         item.ItemID,
			ItemName:       item.ItemName,
			ItemPrice:      item.ItemPrice,
			ItemQuantity:   item.ItemQuantity,
			ItemTotalPrice: item.ItemTotalPrice,
			Type:           item.Type,
		})
	}

	err = uc.txRunner.RunBilling(ctx, func(
		batchRepo repository.BatchRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		// 1) Cabecera primero: el índice único sobre invoice_id corta los
		// duplicados antes de tocar el stock.
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		// 2) Detalles.
		for _, detail := range details {
			if err := invoiceRepo.CreateDetail(detail); err != nil {
				return err
			}
		}
		// 3) Por cada línea de medicina, descontar de los lotes (FEFO).
		// Si el asignador retorna error (ej: sin stock), se retorna y el
		// runner hace rollback de todo.
		for _, detail := range details {
			if detail.Type != entity.ItemTypeMedicine {
				continue
			}
			medicine := medicinesByID[detail.ItemID]
			if err := uc.allocator.AllocateInTx(batchRepo, medicine, detail.ItemQuantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("invoice_id", in.InvoiceID).Msg("venta rechazada")
		return nil, err
	}

	uc.log.Info().
		Str("invoice_id", inv.InvoiceID).
		Int("items", len(details)).
		Str("total", inv.Total.String()).
		Msg("factura creada")

	resp := &dto.CreateInvoiceResponse{
		Message: "Invoice and details created successfully",
		Invoice: toInvoiceResponse(inv),
	}
	for _, d := range details {
		resp.InvoiceDetails = append(resp.InvoiceDetails, toInvoiceDetailResponse(d))
	}
	return resp, nil
}

// ListInvoices devuelve todas las cabeceras, más reciente primero.
func (uc *CreateInvoiceUseCase) ListInvoices(ctx context.Context) ([]dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// GetInvoice devuelve la cabecera con sus detalles por identificador externo.
func (uc *CreateInvoiceUseCase) GetInvoice(ctx context.Context, invoiceID string) (*dto.CreateInvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByInvoiceID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.invoiceRepo.GetDetailsByInvoiceID(invoiceID)
	if err != nil {
		return nil, err
	}
	resp := &dto.CreateInvoiceResponse{Invoice: toInvoiceResponse(inv)}
	for _, d := range details {
		resp.InvoiceDetails = append(resp.InvoiceDetails, toInvoiceDetailResponse(d))
	}
	return resp, nil
}

func toInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceID:     inv.InvoiceID,
		CustomerPhone: inv.CustomerPhone,
		Date:          inv.Date.Format("2006-01-02"),
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Total:         inv.Total,
		CreatedAt:     inv.CreatedAt,
	}
}

func toInvoiceDetailResponse(d *entity.InvoiceDetail) dto.InvoiceDetailResponse {
	return dto.InvoiceDetailResponse{
		ID:             d.ID,
		InvoiceID:      d.InvoiceID,
		ItemID:         d.ItemID,
		ItemName:       d.ItemName,
		ItemPrice:      d.ItemPrice,
		ItemQuantity:   d.ItemQuantity,
		ItemTotalPrice: d.ItemTotalPrice,
		Type:           d.Type,
	}
}
