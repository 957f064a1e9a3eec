package service

import (
	"context"
	"strings"

	"github.com/NicolasMR761/InventarioJH/internal/dto"
	"github.com/NicolasMR761/InventarioJH/internal/model"
	"github.com/NicolasMR761/InventarioJH/internal/repository"

	"github.com/google/uuid"
)

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	unidad := strings.TrimSpace(req.Unidad)
	if unidad == "" {
		unidad = "kg"
	}
	p := &model.Producto{
		Nombre:       strings.TrimSpace(req.Nombre),
		Unidad:       unidad,
		PrecioCompra: req.PrecioCompra,
		PrecioVenta:  req.PrecioVenta,
		StockMinimo:  req.StockMinimo,
		Activo:       true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *productoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &NoEncontradoError{Entidad: "producto", Ref: id.String()}
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	productos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		data = append(data, productoToResponse(&productos[i]))
	}
	return &dto.ProductoListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// Actualizar modifies catalog fields only. StockActual is untouchable here —
// it moves exclusively through entradas, ventas y anulaciones.
func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &NoEncontradoError{Entidad: "producto", Ref: id.String()}
	}

	if req.Nombre != nil {
		p.Nombre = strings.TrimSpace(*req.Nombre)
	}
	if req.Unidad != nil && strings.TrimSpace(*req.Unidad) != "" {
		p.Unidad = strings.TrimSpace(*req.Unidad)
	}
	if req.PrecioCompra != nil {
		if req.PrecioCompra.IsNegative() {
			return nil, &CantidadInvalidaError{Producto: p.Nombre, Detalle: "el precio no puede ser negativo"}
		}
		p.PrecioCompra = *req.PrecioCompra
	}
	if req.PrecioVenta != nil {
		if req.PrecioVenta.IsNegative() {
			return nil, &CantidadInvalidaError{Producto: p.Nombre, Detalle: "el precio no puede ser negativo"}
		}
		p.PrecioVenta = *req.PrecioVenta
	}
	if req.StockMinimo != nil {
		if req.StockMinimo.IsNegative() {
			return nil, &CantidadInvalidaError{Producto: p.Nombre, Detalle: "el stock mínimo no puede ser negativo"}
		}
		p.StockMinimo = *req.StockMinimo
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *productoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return &NoEncontradoError{Entidad: "producto", Ref: id.String()}
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *productoService) Reactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return &NoEncontradoError{Entidad: "producto", Ref: id.String()}
	}
	return s.repo.Reactivar(ctx, id)
}

func productoToResponse(p *model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:           p.ID.String(),
		Nombre:       p.Nombre,
		Unidad:       p.Unidad,
		PrecioCompra: p.PrecioCompra,
		PrecioVenta:  p.PrecioVenta,
		StockActual:  p.StockActual,
		StockMinimo:  p.StockMinimo,
		StockBajo:    p.StockBajo(),
		Activo:       p.Activo,
	}
}
