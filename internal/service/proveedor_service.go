package service

import (
	"context"
	"strings"

	"github.com/NicolasMR761/InventarioJH/internal/dto"
	"github.com/NicolasMR761/InventarioJH/internal/model"
	"github.com/NicolasMR761/InventarioJH/internal/repository"

	"github.com/google/uuid"
)

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error)
	Listar(ctx context.Context, texto string, incluirInactivos bool) ([]dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	p := &model.Proveedor{
		Nombre:    strings.TrimSpace(req.Nombre),
		NIT:       trimToNil(req.NIT),
		Telefono:  trimToNil(req.Telefono),
		Direccion: trimToNil(req.Direccion),
		Activo:    true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := proveedorToResponse(p)
	return &resp, nil
}

func (s *proveedorService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &NoEncontradoError{Entidad: "proveedor", Ref: id.String()}
	}
	resp := proveedorToResponse(p)
	return &resp, nil
}

func (s *proveedorService) Listar(ctx context.Context, texto string, incluirInactivos bool) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.repo.List(ctx, texto, incluirInactivos)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		out = append(out, proveedorToResponse(&proveedores[i]))
	}
	return out, nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &NoEncontradoError{Entidad: "proveedor", Ref: id.String()}
	}

	if nombre := strings.TrimSpace(req.Nombre); nombre != "" {
		p.Nombre = nombre
	}
	if req.NIT != nil {
		p.NIT = trimToNil(req.NIT)
	}
	if req.Telefono != nil {
		p.Telefono = trimToNil(req.Telefono)
	}
	if req.Direccion != nil {
		p.Direccion = trimToNil(req.Direccion)
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := proveedorToResponse(p)
	return &resp, nil
}

func (s *proveedorService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return &NoEncontradoError{Entidad: "proveedor", Ref: id.String()}
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *proveedorService) Reactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return &NoEncontradoError{Entidad: "proveedor", Ref: id.String()}
	}
	return s.repo.Reactivar(ctx, id)
}

func proveedorToResponse(p *model.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		ID:        p.ID.String(),
		Nombre:    p.Nombre,
		NIT:       p.NIT,
		Telefono:  p.Telefono,
		Direccion: p.Direccion,
		Activo:    p.Activo,
	}
}
