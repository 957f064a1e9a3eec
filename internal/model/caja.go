package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja.
const (
	TipoIngreso = "INGRESO"
	TipoEgreso  = "EGRESO"
)

// MovimientoCaja is an immutable event in the cash ledger.
// Tipo: "INGRESO" | "EGRESO". Movements are NEVER modified or deleted —
// reversals (anulaciones) create inverse entries.
// Fecha is the business timestamp the movement belongs to; it decides which
// calendar day the movement falls in for closure purposes.
type MovimientoCaja struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo        string          `gorm:"type:varchar(10);not null;index"`
	Concepto    string          `gorm:"not null"`
	Monto       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Fecha       time.Time       `gorm:"not null;index"`
	Referencia  *string
	Observacion *string
	CreatedAt   time.Time
}

// TableName overrides GORM's default pluralization for Spanish names.
func (MovimientoCaja) TableName() string { return "movimientos_caja" }

// CierreCaja is the immutable end-of-day snapshot. One row per calendar day
// (fecha is unique). Once a cierre exists, no MovimientoCaja may be written
// with a Fecha inside that day. There is no reopen operation — removing a
// cierre is out-of-band administrative tooling.
type CierreCaja struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Fecha         time.Time       `gorm:"type:date;uniqueIndex;not null"`
	TotalIngresos decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	TotalEgresos  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	// SaldoInicial is the balance accumulated strictly before the day starts
	SaldoInicial decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	// SaldoFinal = SaldoInicial + TotalIngresos - TotalEgresos
	SaldoFinal decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CerradoPor *string
	CreatedAt  time.Time
}

func (CierreCaja) TableName() string { return "cierres_caja" }
