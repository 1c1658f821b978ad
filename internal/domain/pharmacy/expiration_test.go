package pharmacy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/clinica-api/internal/domain/pharmacy"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del clasificador de vencimiento. Las fronteras importan:
//
//	hoy        -> expiring_soon (0 días), NO expired
//	hoy + 30   -> expiring_soon (límite superior inclusive)
//	hoy + 31   -> ok
//	ayer       -> expired, mensaje en singular ("Expired 1 day ago")
// ──────────────────────────────────────────────────────────────────────────────

var testToday = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func TestClassifyExpiration_VenceHoy(t *testing.T) {
	info := pharmacy.ClassifyExpiration(testToday, testToday)

	assert.Equal(t, pharmacy.ExpirationExpiringSoon, info.Status)
	assert.Equal(t, 0, info.DaysUntilExpiry)
	assert.Equal(t, "Expires in 0 days", info.Message)
}

func TestClassifyExpiration_LimiteSuperior30Dias(t *testing.T) {
	info := pharmacy.ClassifyExpiration(testToday.AddDate(0, 0, 30), testToday)

	assert.Equal(t, pharmacy.ExpirationExpiringSoon, info.Status, "el día 30 es inclusive")
	assert.Equal(t, 30, info.DaysUntilExpiry)
}

func TestClassifyExpiration_Dia31EsOK(t *testing.T) {
	info := pharmacy.ClassifyExpiration(testToday.AddDate(0, 0, 31), testToday)

	assert.Equal(t, pharmacy.ExpirationOK, info.Status)
	assert.Equal(t, 31, info.DaysUntilExpiry)
	assert.Equal(t, "Expires in 31 days", info.Message)
}

func TestClassifyExpiration_VencioAyer_Singular(t *testing.T) {
	info := pharmacy.ClassifyExpiration(testToday.AddDate(0, 0, -1), testToday)

	assert.Equal(t, pharmacy.ExpirationExpired, info.Status)
	assert.Equal(t, 1, info.DaysUntilExpiry)
	assert.Equal(t, "Expired 1 day ago", info.Message)
}

func TestClassifyExpiration_VencidoVariosDias_Plural(t *testing.T) {
	info := pharmacy.ClassifyExpiration(testToday.AddDate(0, 0, -15), testToday)

	assert.Equal(t, pharmacy.ExpirationExpired, info.Status)
	assert.Equal(t, 15, info.DaysUntilExpiry)
	assert.Equal(t, "Expired 15 days ago", info.Message)
}

func TestClassifyExpiration_MananaEnSingular(t *testing.T) {
	info := pharmacy.ClassifyExpiration(testToday.AddDate(0, 0, 1), testToday)

	assert.Equal(t, pharmacy.ExpirationExpiringSoon, info.Status)
	assert.Equal(t, "Expires in 1 day", info.Message)
}

// La hora del día no influye: un lote que vence hoy a las 00:01 sigue
// siendo expiring_soon aunque ya pasó la hora.
func TestClassifyExpiration_IgnoraHoraDelDia(t *testing.T) {
	expiry := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)
	now := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)

	info := pharmacy.ClassifyExpiration(expiry, now)

	assert.Equal(t, pharmacy.ExpirationExpiringSoon, info.Status)
	assert.Equal(t, 0, info.DaysUntilExpiry)
}

// Lecturas repetidas dentro del mismo día calendario devuelven lo mismo.
func TestClassifyExpiration_IdempotenteEnElDia(t *testing.T) {
	expiry := testToday.AddDate(0, 0, 10)

	first := pharmacy.ClassifyExpiration(expiry, testToday)
	second := pharmacy.ClassifyExpiration(expiry, testToday.Add(5*time.Hour))

	assert.Equal(t, first, second)
}
