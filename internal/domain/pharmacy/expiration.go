package pharmacy

import (
	"fmt"
	"time"

	"github.com/jhoicas/clinica-api/internal/domain/entity"
)

// Estados de vencimiento de un lote.
const (
	ExpirationExpired      = "expired"
	ExpirationExpiringSoon = "expiring_soon"
	ExpirationOK           = "ok"
)

// ExpiringSoonWindowDays ventana (inclusive) para marcar un lote como próximo a vencer.
const ExpiringSoonWindowDays = 30

// ExpirationInfo resultado de clasificar la fecha de vencimiento de un lote.
type ExpirationInfo struct {
	Status          string
	DaysUntilExpiry int // días hasta el vencimiento; para "expired" días transcurridos desde él
	Message         string
}

// ClassifyExpiration clasifica una fecha de vencimiento contra la fecha actual,
// ambas truncadas a día (la hora no influye).
//
//	diff < 0        -> expired        ("Expired N day(s) ago")
//	0 <= diff <= 30 -> expiring_soon  ("Expires in N day(s)"); el día 30 incluido
//	diff > 30       -> ok             ("Expires in N days")
//
// Un lote que vence hoy es expiring_soon, no expired.
func ClassifyExpiration(expiryDate, today time.Time) ExpirationInfo {
	expiry := truncateToDay(expiryDate)
	now := truncateToDay(today)

	diffDays := int(expiry.Sub(now).Hours() / 24)

	switch {
	case diffDays < 0:
		days := -diffDays
		return ExpirationInfo{
			Status:          ExpirationExpired,
			DaysUntilExpiry: days,
			Message:         fmt.Sprintf("Expired %d day%s ago", days, plural(days)),
		}
	case diffDays <= ExpiringSoonWindowDays:
		return ExpirationInfo{
			Status:          ExpirationExpiringSoon,
			DaysUntilExpiry: diffDays,
			Message:         fmt.Sprintf("Expires in %d day%s", diffDays, plural(diffDays)),
		}
	default:
		return ExpirationInfo{
			Status:          ExpirationOK,
			DaysUntilExpiry: diffDays,
			Message:         fmt.Sprintf("Expires in %d days", diffDays),
		}
	}
}

// ClassifyBatch clasifica el lote contra la fecha actual del sistema.
func ClassifyBatch(b *entity.Batch) ExpirationInfo {
	return ClassifyExpiration(b.ExpiryDate, time.Now())
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
