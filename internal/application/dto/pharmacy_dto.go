package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/clinica-api/internal/domain/entity"
)

// CreateBatchRequest body para POST /api/batches.
type CreateBatchRequest struct {
	MedicineID    string          `json:"medicine_id"`
	Supplier      string          `json:"supplier"`
	Quantity      *int64          `json:"quantity"` // puntero: 0 es válido, ausente no
	PurchaseDate  string          `json:"purchase_date"` // yyyy-mm-dd
	ExpiryDate    string          `json:"expiry_date"`   // yyyy-mm-dd
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SettingPrice  decimal.Decimal `json:"setting_price"`
}

// UpdateBatchRequest body para PUT /api/batches/:id. Campos ausentes no se tocan.
type UpdateBatchRequest struct {
	Supplier      *string          `json:"supplier,omitempty"`
	Quantity      *int64           `json:"quantity,omitempty"`
	PurchaseDate  *string          `json:"purchase_date,omitempty"`
	ExpiryDate    *string          `json:"expiry_date,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	SettingPrice  *decimal.Decimal `json:"setting_price,omitempty"`
}

// BatchResponse lote enriquecido con la clasificación de vencimiento,
// para los listados de inventario.
type BatchResponse struct {
	ID                string          `json:"id"`
	MedicineID        string          `json:"medicine_id"`
	Supplier          string          `json:"supplier"`
	Quantity          int64           `json:"quantity"`
	PurchaseDate      string          `json:"purchase_date"`
	ExpiryDate        string          `json:"expiry_date"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SettingPrice      decimal.Decimal `json:"setting_price"`
	ExpirationStatus  string          `json:"expirationStatus"`
	ExpirationMessage string          `json:"expirationMessage"`
	DaysUntilExpiry   int             `json:"daysUntilExpiry"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// CreateMedicineRequest body para POST /api/medicines.
type CreateMedicineRequest struct {
	GroupID      string `json:"group_medicine_id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Photo        string `json:"photo,omitempty"`
	BarcodeValue string `json:"barcode_value,omitempty"`
}

// UpdateMedicineRequest body para PUT /api/medicines/:id.
type UpdateMedicineRequest struct {
	GroupID      *string `json:"group_medicine_id,omitempty"`
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Photo        *string `json:"photo,omitempty"`
	BarcodeValue *string `json:"barcode_value,omitempty"`
}

// MedicineResponse medicamento en respuestas; Stock solo se calcula en el detalle.
type MedicineResponse struct {
	ID           string                `json:"id"`
	GroupID      string                `json:"group_medicine_id"`
	GroupName    string                `json:"group_name,omitempty"`
	Name         string                `json:"name"`
	Description  string                `json:"description,omitempty"`
	Photo        string                `json:"photo,omitempty"`
	BarcodeValue string                `json:"barcode_value,omitempty"`
	Stock        *entity.MedicineStock `json:"stock,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// CreateMedicineGroupRequest body para POST /api/medicine-groups.
type CreateMedicineGroupRequest struct {
	GroupName string `json:"group_name"`
}

// MedicineGroupResponse grupo en respuestas.
type MedicineGroupResponse struct {
	ID        string    `json:"id"`
	GroupName string    `json:"group_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
