package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is a sale. Creating one decreases product stock and credits the
// cash ledger in the same transaction. The only lifecycle transition is
// activa → anulada (terminal): anular restores stock and records a
// compensating EGRESO; a venta can never be anulada twice.
// The void fields are always present in the schema, defaulted to absent,
// so callers never probe for their existence.
type Venta struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NumeroTicket    int             `gorm:"uniqueIndex;not null"`
	Total           decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	MetodoPago      string          `gorm:"not null;default:'Efectivo'"`
	Anulada         bool            `gorm:"not null;default:false"`
	MotivoAnulacion *string
	AnuladaEn       *time.Time
	CreatedAt       time.Time

	Detalles []VentaDetalle `gorm:"foreignKey:VentaID"`
}

func (Venta) TableName() string { return "ventas" }

// VentaDetalle is one sold line item.
type VentaDetalle struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad    decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	PrecioVenta decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(14,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (VentaDetalle) TableName() string { return "venta_detalles" }
