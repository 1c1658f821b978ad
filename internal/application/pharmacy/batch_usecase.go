package pharmacy

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/clinica-api/internal/application/dto"
	"github.com/jhoicas/clinica-api/internal/domain"
	"github.com/jhoicas/clinica-api/internal/domain/entity"
	"github.com/jhoicas/clinica-api/internal/domain/pharmacy"
	"github.com/jhoicas/clinica-api/internal/domain/repository"
)

const maxNameLen = 100

// BatchUseCase casos de uso CRUD para lotes de medicamentos. La cantidad de
// un lote solo se reduce por ventas (asignador FEFO); aquí se registra la
// compra y se corrigen datos del lote.
type BatchUseCase struct {
	batchRepo    repository.BatchRepository
	medicineRepo repository.MedicineRepository
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(batchRepo repository.BatchRepository, medicineRepo repository.MedicineRepository) *BatchUseCase {
	return &BatchUseCase{batchRepo: batchRepo, medicineRepo: medicineRepo}
}

// Create registra un lote de compra para un medicamento existente.
func (uc *BatchUseCase) Create(in dto.CreateBatchRequest) (*dto.BatchResponse, error) {
	if in.MedicineID == "" || in.Supplier == "" || len(in.Supplier) > maxNameLen {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity == nil || *in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.LessThan(decimal.Zero) || in.SettingPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	purchaseDate, err := parseDate(in.PurchaseDate)
	if err != nil {
		return nil, err
	}
	expiryDate, err := parseDate(in.ExpiryDate)
	if err != nil {
		return nil, err
	}

	medicine, err := uc.medicineRepo.GetByID(in.MedicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, fmt.Errorf("%w: medicamento %s", domain.ErrNotFound, in.MedicineID)
	}

	now := time.Now()
	batch := &entity.Batch{
		ID:            uuid.New().String(),
		MedicineID:    in.MedicineID,
		Supplier:      in.Supplier,
		Quantity:      *in.Quantity,
		PurchaseDate:  purchaseDate,
		ExpiryDate:    expiryDate,
		PurchasePrice: in.PurchasePrice,
		SettingPrice:  in.SettingPrice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.batchRepo.Create(batch); err != nil {
		return nil, err
	}
	resp := toBatchResponse(batch)
	return &resp, nil
}

// GetByID devuelve el lote enriquecido con su clasificación de vencimiento.
func (uc *BatchUseCase) GetByID(id string) (*dto.BatchResponse, error) {
	batch, err := uc.batchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	resp := toBatchResponse(batch)
	return &resp, nil
}

// List devuelve todos los lotes activos, clasificados por vencimiento.
func (uc *BatchUseCase) List() ([]dto.BatchResponse, error) {
	batches, err := uc.batchRepo.ListActive()
	if err != nil {
		return nil, err
	}
	return toBatchResponses(batches), nil
}

// ListByMedicine devuelve los lotes activos de un medicamento en orden FEFO.
func (uc *BatchUseCase) ListByMedicine(medicineID string) ([]dto.BatchResponse, error) {
	medicine, err := uc.medicineRepo.GetByID(medicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, domain.ErrNotFound
	}
	batches, err := uc.batchRepo.ListActiveByMedicine(medicineID)
	if err != nil {
		return nil, err
	}
	return toBatchResponses(batches), nil
}

// Update aplica cambios parciales sobre un lote; campos nil no se tocan.
func (uc *BatchUseCase) Update(id string, in dto.UpdateBatchRequest) (*dto.BatchResponse, error) {
	batch, err := uc.batchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	if in.Supplier != nil {
		if *in.Supplier == "" || len(*in.Supplier) > maxNameLen {
			return nil, domain.ErrInvalidInput
		}
		batch.Supplier = *in.Supplier
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		batch.Quantity = *in.Quantity
	}
	if in.PurchaseDate != nil {
		d, err := parseDate(*in.PurchaseDate)
		if err != nil {
			return nil, err
		}
		batch.PurchaseDate = d
	}
	if in.ExpiryDate != nil {
		d, err := parseDate(*in.ExpiryDate)
		if err != nil {
			return nil, err
		}
		batch.ExpiryDate = d
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		batch.PurchasePrice = *in.PurchasePrice
	}
	if in.SettingPrice != nil {
		if in.SettingPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		batch.SettingPrice = *in.SettingPrice
	}
	batch.UpdatedAt = time.Now()
	if err := uc.batchRepo.Update(batch); err != nil {
		return nil, err
	}
	resp := toBatchResponse(batch)
	return &resp, nil
}

// Delete marca el lote como borrado; sus unidades dejan de contar como stock.
func (uc *BatchUseCase) Delete(id string) error {
	batch, err := uc.batchRepo.GetByID(id)
	if err != nil {
		return err
	}
	if batch == nil {
		return domain.ErrNotFound
	}
	return uc.batchRepo.SoftDelete(id)
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha '%s' no tiene formato yyyy-mm-dd", domain.ErrInvalidInput, s)
	}
	return d, nil
}

func toBatchResponse(b *entity.Batch) dto.BatchResponse {
	info := pharmacy.ClassifyBatch(b)
	return dto.BatchResponse{
		ID:                b.ID,
		MedicineID:        b.MedicineID,
		Supplier:          b.Supplier,
		Quantity:          b.Quantity,
		PurchaseDate:      b.PurchaseDate.Format("2006-01-02"),
		ExpiryDate:        b.ExpiryDate.Format("2006-01-02"),
		PurchasePrice:     b.PurchasePrice,
		SettingPrice:      b.SettingPrice,
		ExpirationStatus:  info.Status,
		ExpirationMessage: info.Message,
		DaysUntilExpiry:   info.DaysUntilExpiry,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func toBatchResponses(batches []*entity.Batch) []dto.BatchResponse {
	out := make([]dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, toBatchResponse(b))
	}
	return out
}
