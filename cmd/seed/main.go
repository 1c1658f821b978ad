// seed genera un script SQL para poblar medicine_groups, medicines y batches
// a partir de un catálogo CSV exportado del vademécum de la farmacia
// (separado por ';', codificado en ISO-8859-1).
//
// Columnas esperadas: grupo;nombre;descripcion;codigo_barras;proveedor;cantidad;fecha_compra;fecha_vencimiento;precio_compra;precio_venta
//
// Uso: go run ./cmd/seed [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/seed/001_seed_catalog.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type row struct {
	group        string
	name         string
	description  string
	barcode      string
	supplier     string
	quantity     string
	purchaseDate string
	expiryDate   string
	purchasePrc  string
	settingPrc   string
}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Los exports del vademécum vienen en ISO-8859-1 (tildes, eñes).
	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) <= 1 {
		fmt.Fprintln(os.Stderr, "CSV vacío o solo con cabecera")
		os.Exit(1)
	}

	groupSet := make(map[string]struct{})
	var rows []row
	for i, rec := range records[1:] { // saltar cabecera
		if len(rec) < 10 {
			fmt.Fprintf(os.Stderr, "Fila %d: se esperaban 10 columnas, hay %d (omitida)\n", i+2, len(rec))
			continue
		}
		r := row{
			group:        strings.TrimSpace(rec[0]),
			name:         strings.TrimSpace(rec[1]),
			description:  strings.TrimSpace(rec[2]),
			barcode:      strings.TrimSpace(rec[3]),
			supplier:     strings.TrimSpace(rec[4]),
			quantity:     strings.TrimSpace(rec[5]),
			purchaseDate: strings.TrimSpace(rec[6]),
			expiryDate:   strings.TrimSpace(rec[7]),
			purchasePrc:  strings.TrimSpace(rec[8]),
			settingPrc:   strings.TrimSpace(rec[9]),
		}
		if r.group == "" || r.name == "" {
			continue
		}
		groupSet[r.group] = struct{}{}
		rows = append(rows, r)
	}

	// Orden estable para que el script generado sea reproducible
	var groups []string
	for g := range groupSet {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	moduleRoot := findModuleRoot()
	outDir := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "seed")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	outPath := filepath.Join(outDir, "001_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo inicial de farmacia\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + "\n\n")

	out.WriteString("-- 1. Grupos de medicamentos\n")
	for _, g := range groups {
		fmt.Fprintf(out, "INSERT INTO medicine_groups (id, group_name, created_at, updated_at)\n")
		fmt.Fprintf(out, "VALUES (gen_random_uuid(), '%s', now(), now())\n", escapeSQL(g))
		out.WriteString("ON CONFLICT (group_name) DO NOTHING;\n")
	}
	out.WriteString("\n-- 2. Medicamentos\n")
	for _, r := range rows {
		fmt.Fprintf(out, "INSERT INTO medicines (id, group_medicine_id, name, description, barcode_value, created_at, updated_at)\n")
		fmt.Fprintf(out, "SELECT gen_random_uuid(), id, '%s', %s, %s, now(), now()\n",
			escapeSQL(r.name), sqlString(r.description), sqlString(r.barcode))
		fmt.Fprintf(out, "FROM medicine_groups WHERE group_name = '%s'\n", escapeSQL(r.group))
		out.WriteString("ON CONFLICT DO NOTHING;\n")
	}
	out.WriteString("\n-- 3. Lotes iniciales\n")
	seeded := 0
	for _, r := range rows {
		if r.quantity == "" || r.expiryDate == "" {
			continue
		}
		fmt.Fprintf(out, "INSERT INTO batches (id, medicine_id, supplier, quantity, purchase_date, expiry_date, purchase_price, setting_price, created_at, updated_at)\n")
		fmt.Fprintf(out, "SELECT gen_random_uuid(), id, '%s', %s, '%s', '%s', %s, %s, now(), now()\n",
			escapeSQL(r.supplier), r.quantity, escapeSQL(r.purchaseDate), escapeSQL(r.expiryDate),
			numOrZero(r.purchasePrc), numOrZero(r.settingPrc))
		fmt.Fprintf(out, "FROM medicines WHERE name = '%s';\n", escapeSQL(r.name))
		seeded++
	}

	fmt.Printf("Generado %s: %d grupos, %d medicamentos, %d lotes\n", outPath, len(groups), len(rows), seeded)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// sqlString devuelve el literal SQL entre comillas, o NULL si está vacío.
func sqlString(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + escapeSQL(s) + "'"
}

// numOrZero los precios del export usan coma decimal; se normaliza a punto.
func numOrZero(s string) string {
	if s == "" {
		return "0"
	}
	return strings.ReplaceAll(s, ",", ".")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
}
