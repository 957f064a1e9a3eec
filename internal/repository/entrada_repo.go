package repository

import (
	"context"

	"github.com/NicolasMR761/InventarioJH/internal/dto"
	"github.com/NicolasMR761/InventarioJH/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntradaRepository interface {
	CreateTx(tx *gorm.DB, e *model.Entrada) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Entrada, error)
	// NextNumeroTx reserves the next entry number inside the caller's tx.
	NextNumeroTx(tx *gorm.DB) (int, error)
	List(ctx context.Context, filter dto.EntradaFilter) ([]model.Entrada, int64, error)
	DB() *gorm.DB
}

type entradaRepo struct{ db *gorm.DB }

func NewEntradaRepository(db *gorm.DB) EntradaRepository { return &entradaRepo{db: db} }

func (r *entradaRepo) DB() *gorm.DB { return r.db }

func (r *entradaRepo) CreateTx(tx *gorm.DB, e *model.Entrada) error {
	return tx.Create(e).Error
}

func (r *entradaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Entrada, error) {
	var e model.Entrada
	err := r.db.WithContext(ctx).
		Preload("Detalles.Producto").
		Preload("Proveedor").
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *entradaRepo) NextNumeroTx(tx *gorm.DB) (int, error) {
	var num int
	err := tx.Model(&model.Entrada{}).Select("COALESCE(MAX(numero), 0) + 1").Scan(&num).Error
	return num, err
}

func (r *entradaRepo) List(ctx context.Context, filter dto.EntradaFilter) ([]model.Entrada, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Entrada{})

	if filter.ProveedorID != "" {
		q = q.Where("proveedor_id = ?", filter.ProveedorID)
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
	var entradas []model.Entrada
	err := q.Preload("Detalles.Producto").
		Preload("Proveedor").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&entradas).Error
	return entradas, total, err
}
