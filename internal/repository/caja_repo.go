package repository

import (
	"context"
	"errors"
	"time"

	"github.com/NicolasMR761/InventarioJH/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MovimientoFilter defines filters for listing cash movements.
// Q searches concepto, referencia and observacion.
type MovimientoFilter struct {
	FechaDesde *time.Time
	FechaHasta *time.Time
	Tipo       string
	Q          string
	Limit      int
}

// CajaRepository owns the cash ledger rows: movimientos_caja and
// cierres_caja. Movements are insert-only — there is no update or delete on
// purpose. The ...Tx variants run on the caller's transaction so a movement
// commits or rolls back together with the stock mutation that produced it.
type CajaRepository interface {
	CreateMovimientoTx(tx *gorm.DB, m *model.MovimientoCaja) error
	ListMovimientos(ctx context.Context, filter MovimientoFilter) ([]model.MovimientoCaja, error)
	// SumMovimientos returns SUM(monto) for the given tipo, restricted to
	// fecha >= desde and/or fecha <= hasta when provided. Empty set sums to 0.
	SumMovimientos(ctx context.Context, tipo string, desde, hasta *time.Time) (decimal.Decimal, error)

	// FindCierre returns (nil, nil) when the day has no cierre.
	FindCierre(ctx context.Context, dia time.Time) (*model.CierreCaja, error)
	FindCierreTx(tx *gorm.DB, dia time.Time) (*model.CierreCaja, error)
	CreateCierreTx(tx *gorm.DB, c *model.CierreCaja) error
	ListCierres(ctx context.Context, limit int) ([]model.CierreCaja, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

func (r *cajaRepo) DB() *gorm.DB { return r.db }

func (r *cajaRepo) CreateMovimientoTx(tx *gorm.DB, m *model.MovimientoCaja) error {
	return tx.Create(m).Error
}

func (r *cajaRepo) ListMovimientos(ctx context.Context, filter MovimientoFilter) ([]model.MovimientoCaja, error) {
	q := r.db.WithContext(ctx).Model(&model.MovimientoCaja{})

	if filter.FechaDesde != nil {
		q = q.Where("fecha >= ?", *filter.FechaDesde)
	}
	if filter.FechaHasta != nil {
		q = q.Where("fecha <= ?", *filter.FechaHasta)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if filter.Q != "" {
		term := "%" + filter.Q + "%"
		q = q.Where("concepto ILIKE ? OR referencia ILIKE ? OR observacion ILIKE ?", term, term, term)
	}

	limit := filter.Limit
	if limit < 1 || limit > 1000 {
		limit = 300
	}

	var movs []model.MovimientoCaja
	err := q.Order("fecha DESC, created_at DESC").Limit(limit).Find(&movs).Error
	return movs, err
}

func (r *cajaRepo) SumMovimientos(ctx context.Context, tipo string, desde, hasta *time.Time) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).Model(&model.MovimientoCaja{}).Where("tipo = ?", tipo)
	if desde != nil {
		q = q.Where("fecha >= ?", *desde)
	}
	if hasta != nil {
		q = q.Where("fecha <= ?", *hasta)
	}

	var total decimal.Decimal
	err := q.Select("COALESCE(SUM(monto), 0)").Scan(&total).Error
	return total, err
}

func (r *cajaRepo) FindCierre(ctx context.Context, dia time.Time) (*model.CierreCaja, error) {
	return findCierre(r.db.WithContext(ctx), dia)
}

func (r *cajaRepo) FindCierreTx(tx *gorm.DB, dia time.Time) (*model.CierreCaja, error) {
	return findCierre(tx, dia)
}

func findCierre(db *gorm.DB, dia time.Time) (*model.CierreCaja, error) {
	var c model.CierreCaja
	err := db.Where("fecha = ?", dia.Format("2006-01-02")).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cajaRepo) CreateCierreTx(tx *gorm.DB, c *model.CierreCaja) error {
	return tx.Create(c).Error
}

func (r *cajaRepo) ListCierres(ctx context.Context, limit int) ([]model.CierreCaja, error) {
	if limit < 1 || limit > 500 {
		limit = 90
	}
	var cierres []model.CierreCaja
	err := r.db.WithContext(ctx).Order("fecha DESC").Limit(limit).Find(&cierres).Error
	return cierres, err
}
