package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVentaRequest struct {
	ProductoID string          `json:"producto_id"  validate:"required,uuid"`
	Cantidad   decimal.Decimal `json:"cantidad"     validate:"required"`
	// nil = precio de lista; un 0 explícito vende la línea gratis (promo)
	PrecioVenta *decimal.Decimal `json:"precio_venta"`
}

type RegistrarVentaRequest struct {
	Items      []ItemVentaRequest `json:"items"       validate:"required,min=1,dive"`
	MetodoPago string             `json:"metodo_pago"`
}

type AnularVentaRequest struct {
	Motivo     string `json:"motivo"`
	MetodoPago string `json:"metodo_pago"`
}

// VentaFilter is bound from the query string of GET /v1/ventas.
type VentaFilter struct {
	Fecha  string `form:"fecha"  validate:"omitempty,datetime=2006-01-02"`
	Estado string `form:"estado,default=activa"` // activa | anulada | all
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVentaResponse struct {
	Producto    string          `json:"producto"`
	Cantidad    decimal.Decimal `json:"cantidad"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID              string              `json:"id"`
	NumeroTicket    int                 `json:"numero_ticket"`
	Items           []ItemVentaResponse `json:"items"`
	Total           decimal.Decimal     `json:"total"`
	MetodoPago      string              `json:"metodo_pago"`
	Anulada         bool                `json:"anulada"`
	MotivoAnulacion *string             `json:"motivo_anulacion,omitempty"`
	AnuladaEn       *string             `json:"anulada_en,omitempty"`
	CreatedAt       string              `json:"created_at"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
