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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera. El índice único sobre invoice_id rechaza
// identificadores externos repetidos.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, invoice_id, customer_phone, date, subtotal, tax, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceID, invoice.CustomerPhone, invoice.Date,
		invoice.Subtotal, invoice.Tax, invoice.Total, invoice.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de detalle.
func (r *InvoiceRepo) CreateDetail(detail *entity.InvoiceDetail) error {
	query := `
		INSERT INTO invoice_details (id, invoice_id, item_id, item_name, item_price, item_quantity, item_total_price, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.InvoiceID, detail.ItemID, detail.ItemName,
		detail.ItemPrice, detail.ItemQuantity, detail.ItemTotalPrice, detail.Type,
	)
	if err != nil {
		return fmt.Errorf("insert invoice detail: %w", err)
	}
	return nil
}

// GetByInvoiceID obtiene la cabecera por el identificador externo.
func (r *InvoiceRepo) GetByInvoiceID(invoiceID string) (*entity.Invoice, error) {
	query := `
		SELECT id, invoice_id, customer_phone, date, subtotal, tax, total, created_at
		FROM invoices WHERE invoice_id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, invoiceID).Scan(
		&inv.ID, &inv.InvoiceID, &inv.CustomerPhone, &inv.Date,
		&inv.Subtotal, &inv.Tax, &inv.Total, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// List devuelve todas las cabeceras, más recientes primero.
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	query := `
		SELECT id, invoice_id, customer_phone, date, subtotal, tax, total, created_at
		FROM invoices ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.InvoiceID, &inv.CustomerPhone, &inv.Date,
			&inv.Subtotal, &inv.Tax, &inv.Total, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, &inv)
	}
	return invoices, rows.Err()
}

// GetDetailsByInvoiceID devuelve las líneas de una factura.
func (r *InvoiceRepo) GetDetailsByInvoiceID(invoiceID string) ([]*entity.InvoiceDetail, error) {
	query := `
		SELECT id, invoice_id, item_id, item_name, item_price, item_quantity, item_total_price, type
		FROM invoice_details WHERE invoice_id = $1 ORDER BY item_name ASC`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("query invoice details: %w", err)
	}
	defer rows.Close()

	var details []*entity.InvoiceDetail
	for rows.Next() {
		var d entity.InvoiceDetail
		if err := rows.Scan(&d.ID, &d.InvoiceID, &d.ItemID, &d.ItemName,
			&d.ItemPrice, &d.ItemQuantity, &d.ItemTotalPrice, &d.Type); err != nil {
			return nil, fmt.Errorf("scan invoice detail: %w", err)
		}
		details = append(details, &d)
	}
	return details, rows.Err()
}
