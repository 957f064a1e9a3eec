package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemEntradaRequest struct {
	ProductoID string          `json:"producto_id"   validate:"required,uuid"`
	Cantidad   decimal.Decimal `json:"cantidad"      validate:"required"`
	// nil = precio de compra de lista; un 0 explícito registra bonificación
	PrecioCompra *decimal.Decimal `json:"precio_compra"`
}

type CrearEntradaRequest struct {
	ProveedorID string               `json:"proveedor_id" validate:"required,uuid"`
	Items       []ItemEntradaRequest `json:"items"        validate:"required,min=1,dive"`
	Pagado      *bool                `json:"pagado"` // nil = true (paid on delivery)
	MetodoPago  string               `json:"metodo_pago"`
}

// EntradaFilter is bound from the query string of GET /v1/entradas.
type EntradaFilter struct {
	ProveedorID string `form:"proveedor_id" validate:"omitempty,uuid"`
	Fecha       string `form:"fecha"        validate:"omitempty,datetime=2006-01-02"`
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemEntradaResponse struct {
	Producto     string          `json:"producto"`
	Cantidad     decimal.Decimal `json:"cantidad"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

type EntradaResponse struct {
	ID         string                `json:"id"`
	Numero     int                   `json:"numero"`
	Proveedor  string                `json:"proveedor"`
	Items      []ItemEntradaResponse `json:"items"`
	Total      decimal.Decimal       `json:"total"`
	Pagado     bool                  `json:"pagado"`
	MetodoPago string                `json:"metodo_pago"`
	CreatedAt  string                `json:"created_at"`
}

type EntradaListResponse struct {
	Data  []EntradaResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
