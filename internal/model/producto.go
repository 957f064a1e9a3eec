package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto represents a sellable product. Stock is stored as a decimal so
// weighed goods (kg) work the same as unit goods. StockActual is mutated
// exclusively by entradas (+), ventas (−) and anulaciones de venta (+).
type Producto struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string          `gorm:"uniqueIndex;not null"`
	Unidad       string          `gorm:"not null;default:'kg'"`
	PrecioCompra decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PrecioVenta  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	StockActual  decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	// StockMinimo > 0 enables the low-stock alert for this product
	StockMinimo decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	Activo      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StockBajo reports whether the product is at or below its minimum stock.
// Products with StockMinimo = 0 never alert.
func (p *Producto) StockBajo() bool {
	return p.StockMinimo.IsPositive() && p.StockActual.LessThanOrEqual(p.StockMinimo)
}
