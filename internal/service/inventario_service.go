package service

import (
	"context"

	"github.com/NicolasMR761/InventarioJH/internal/dto"
	"github.com/NicolasMR761/InventarioJH/internal/model"
	"github.com/NicolasMR761/InventarioJH/internal/repository"

	"gorm.io/gorm"
)

// InventarioService owns the stock audit trail. Every stock mutation —
// entrada, venta, anulación — records a MovimientoStock through it, inside
// the same transaction that mutates the product.
type InventarioService interface {
	RegistrarMovimientoTx(tx *gorm.DB, m *model.MovimientoStock) error
	ListarMovimientos(ctx context.Context, filter repository.MovimientoStockFilter) ([]model.MovimientoStock, int64, error)
	// AlertasStock lists active products at or below their stock mínimo.
	AlertasStock(ctx context.Context) ([]dto.ProductoResponse, error)
}

type inventarioService struct {
	movRepo      repository.MovimientoStockRepository
	productoRepo repository.ProductoRepository
}

func NewInventarioService(movRepo repository.MovimientoStockRepository, productoRepo repository.ProductoRepository) InventarioService {
	return &inventarioService{movRepo: movRepo, productoRepo: productoRepo}
}

func (s *inventarioService) RegistrarMovimientoTx(tx *gorm.DB, m *model.MovimientoStock) error {
	return s.movRepo.CreateTx(tx, m)
}

func (s *inventarioService) ListarMovimientos(ctx context.Context, filter repository.MovimientoStockFilter) ([]model.MovimientoStock, int64, error) {
	return s.movRepo.List(ctx, filter)
}

func (s *inventarioService) AlertasStock(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.productoRepo.ListStockBajo(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		out = append(out, productoToResponse(&productos[i]))
	}
	return out, nil
}
