package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entrada is a purchase from a supplier. Creating one increases product
// stock and, when paid, debits the cash ledger in the same transaction.
// Entradas are immutable once created.
type Entrada struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Numero      int             `gorm:"uniqueIndex;not null"`
	ProveedorID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Pagado      bool            `gorm:"not null;default:true"`
	MetodoPago  string          `gorm:"not null;default:'Efectivo'"`
	CreatedAt   time.Time

	Proveedor *Proveedor       `gorm:"foreignKey:ProveedorID"`
	Detalles  []EntradaDetalle `gorm:"foreignKey:EntradaID"`
}

func (Entrada) TableName() string { return "entradas" }

// EntradaDetalle is one purchased line item.
type EntradaDetalle struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EntradaID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad     decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	PrecioCompra decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(14,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (EntradaDetalle) TableName() string { return "entrada_detalles" }
