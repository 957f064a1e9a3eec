package repository

import (
	"context"
	"time"

	"github.com/NicolasMR761/InventarioJH/internal/dto"
	"github.com/NicolasMR761/InventarioJH/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaRepository interface {
	CreateTx(tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	// NextNumeroTx reserves the next ticket number inside the caller's tx.
	// MAX+1 is safe under the single-writer assumption of this engine.
	NextNumeroTx(tx *gorm.DB) (int, error)
	MarcarAnuladaTx(tx *gorm.DB, id uuid.UUID, motivo *string, anuladaEn time.Time) error
	List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error)
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).Preload("Detalles.Producto").First(&v, "id = ?", id).Error
	return &v, err
}

func (r *ventaRepo) NextNumeroTx(tx *gorm.DB) (int, error) {
	var num int
	err := tx.Model(&model.Venta{}).Select("COALESCE(MAX(numero_ticket), 0) + 1").Scan(&num).Error
	return num, err
}

func (r *ventaRepo) MarcarAnuladaTx(tx *gorm.DB, id uuid.UUID, motivo *string, anuladaEn time.Time) error {
	return tx.Model(&model.Venta{}).Where("id = ?", id).Updates(map[string]interface{}{
		"anulada":          true,
		"motivo_anulacion": motivo,
		"anulada_en":       anuladaEn,
	}).Error
}

func (r *ventaRepo) List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Venta{})

	switch filter.Estado {
	case "anulada":
		q = q.Where("anulada = true")
	case "all":
		// no filter
	default:
		q = q.Where("anulada = false")
	}
	if filter.Fecha != "" {
		q = q.Where("DATE(created_at) = ?", filter.Fecha)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	limit := filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	var ventas []model.Venta
	err := q.Preload("Detalles.Producto").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&ventas).Error
	return ventas, total, err
}
