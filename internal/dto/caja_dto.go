package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// MovimientoManualRequest registers a manual INGRESO / EGRESO. Tipo is
// normalized (trim + upper) by the service, so "ingreso" is accepted.
// Fecha defaults to now when omitted.
type MovimientoManualRequest struct {
	Tipo        string          `json:"tipo"        validate:"required"`
	Concepto    string          `json:"concepto"`
	Monto       decimal.Decimal `json:"monto"       validate:"required"`
	Referencia  string          `json:"referencia"`
	Observacion string          `json:"observacion"`
	Fecha       *time.Time      `json:"fecha"`
}

type CerrarDiaRequest struct {
	// Fecha in YYYY-MM-DD; empty = today
	Fecha      string  `json:"fecha"       validate:"omitempty,datetime=2006-01-02"`
	CerradoPor *string `json:"cerrado_por"`
}

// MovimientoFilter is bound from the query string of GET /v1/caja/movimientos.
type MovimientoFilter struct {
	FechaDesde string `form:"fecha_desde" validate:"omitempty,datetime=2006-01-02"`
	FechaHasta string `form:"fecha_hasta" validate:"omitempty,datetime=2006-01-02"`
	Tipo       string `form:"tipo"`
	Q          string `form:"q"`
	Limit      int    `form:"limit,default=300" validate:"min=0,max=1000"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovimientoResponse struct {
	ID          string          `json:"id"`
	Tipo        string          `json:"tipo"`
	Concepto    string          `json:"concepto"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       string          `json:"fecha"`
	Referencia  *string         `json:"referencia"`
	Observacion *string         `json:"observacion"`
}

type SaldoResponse struct {
	Saldo decimal.Decimal `json:"saldo"`
	Hasta *string         `json:"hasta,omitempty"`
}

// ResumenCajaResponse is shared by the single-day and range summaries.
// SaldoInicial is the balance strictly before the period starts;
// SaldoFinal = SaldoInicial + Ingresos - Egresos.
type ResumenCajaResponse struct {
	Desde        string          `json:"desde"`
	Hasta        string          `json:"hasta"`
	Ingresos     decimal.Decimal `json:"ingresos"`
	Egresos      decimal.Decimal `json:"egresos"`
	SaldoInicial decimal.Decimal `json:"saldo_inicial"`
	SaldoFinal   decimal.Decimal `json:"saldo_final"`
}

type CierreResponse struct {
	ID            string          `json:"id"`
	Fecha         string          `json:"fecha"`
	TotalIngresos decimal.Decimal `json:"total_ingresos"`
	TotalEgresos  decimal.Decimal `json:"total_egresos"`
	SaldoInicial  decimal.Decimal `json:"saldo_inicial"`
	SaldoFinal    decimal.Decimal `json:"saldo_final"`
	CerradoPor    *string         `json:"cerrado_por"`
	CreatedAt     string          `json:"created_at"`
}

type EstadoDiaResponse struct {
	Fecha   string          `json:"fecha"`
	Cerrado bool            `json:"cerrado"`
	Cierre  *CierreResponse `json:"cierre,omitempty"`
}
