package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Typed business errors. Every error a service returns to a caller either is
// one of these or wraps a lower-level failure (DB, redis). Handlers map the
// types to HTTP statuses with errors.Is / errors.As; messages are meant to be
// shown to the operator as-is.

var (
	// ErrTipoInvalido is returned when a movement kind does not normalize
	// to INGRESO or EGRESO.
	ErrTipoInvalido = errors.New("tipo inválido: use INGRESO o EGRESO")

	// ErrMontoInvalido is returned when a movement amount is not > 0.
	ErrMontoInvalido = errors.New("el monto debe ser mayor que 0")

	// ErrSinItems is returned when a venta or entrada has no line items.
	ErrSinItems = errors.New("la operación debe tener al menos 1 producto")
)

// DiaCerradoError blocks any movement whose fecha falls in an already
// closed day.
type DiaCerradoError struct {
	Dia time.Time
}

func (e *DiaCerradoError) Error() string {
	return fmt.Sprintf("el día %s está cerrado. No se pueden registrar movimientos", e.Dia.Format("2006-01-02"))
}

// DiaYaCerradoError is returned by CerrarDia when a cierre already exists.
// Closing a day is not idempotent: the second attempt is an error.
type DiaYaCerradoError struct {
	Dia time.Time
}

func (e *DiaYaCerradoError) Error() string {
	return fmt.Sprintf("el día %s ya está cerrado", e.Dia.Format("2006-01-02"))
}

// NoEncontradoError names the missing entity kind and the reference used to
// look it up.
type NoEncontradoError struct {
	Entidad string // "producto" | "proveedor" | "venta" | "entrada"
	Ref     string
}

func (e *NoEncontradoError) Error() string {
	return fmt.Sprintf("%s no encontrado (%s)", e.Entidad, e.Ref)
}

// InactivoError is returned when an operation references a deactivated
// producto or proveedor.
type InactivoError struct {
	Entidad string
	Nombre  string
}

func (e *InactivoError) Error() string {
	return fmt.Sprintf("%s inactivo: %s. Actívalo para usarlo", e.Entidad, e.Nombre)
}

// CantidadInvalidaError is returned for line items with cantidad <= 0 or
// precio < 0.
type CantidadInvalidaError struct {
	Producto string
	Detalle  string
}

func (e *CantidadInvalidaError) Error() string {
	if e.Producto == "" {
		return e.Detalle
	}
	return fmt.Sprintf("%s: %s", e.Producto, e.Detalle)
}

// StockInsuficienteError carries the available and requested quantities so
// the caller can show both.
type StockInsuficienteError struct {
	Producto   string
	Disponible decimal.Decimal
	Requerido  decimal.Decimal
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente para '%s'. Disponible: %s, requerido: %s",
		e.Producto, e.Disponible.String(), e.Requerido.String())
}

// VentaYaAnuladaError is returned when anulando a venta twice. Anulada is a
// terminal state.
type VentaYaAnuladaError struct {
	NumeroTicket int
}

func (e *VentaYaAnuladaError) Error() string {
	return fmt.Sprintf("la venta #%d ya está anulada", e.NumeroTicket)
}
