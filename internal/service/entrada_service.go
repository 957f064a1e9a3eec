package service

import (
	"context"
	"fmt"
	"time"

	"github.com/NicolasMR761/InventarioJH/internal/dto"
	"github.com/NicolasMR761/InventarioJH/internal/model"
	"github.com/NicolasMR761/InventarioJH/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type EntradaService interface {
	CrearEntrada(ctx context.Context, req dto.CrearEntradaRequest) (*dto.EntradaResponse, error)
	ObtenerEntrada(ctx context.Context, id uuid.UUID) (*dto.EntradaResponse, error)
	ListarEntradas(ctx context.Context, filter dto.EntradaFilter) (*dto.EntradaListResponse, error)
}

type entradaService struct {
	repo          repository.EntradaRepository
	productoRepo  repository.ProductoRepository
	proveedorRepo repository.ProveedorRepository
	inventario    InventarioService
	caja          CajaService
}

func NewEntradaService(
	repo repository.EntradaRepository,
	productoRepo repository.ProductoRepository,
	proveedorRepo repository.ProveedorRepository,
	inventario InventarioService,
	caja CajaService,
) EntradaService {
	return &entradaService{
		repo:          repo,
		productoRepo:  productoRepo,
		proveedorRepo: proveedorRepo,
		inventario:    inventario,
		caja:          caja,
	}
}

// ── CrearEntrada ──────────────────────────────────────────────────────────────
// One ACID transaction: stock goes up per line and, when the entrada is paid,
// the ledger takes an EGRESO for the total. Entrada a crédito (pagado=false)
// touches stock only — the ledger records nothing until real money moves.

func (s *entradaService) CrearEntrada(ctx context.Context, req dto.CrearEntradaRequest) (*dto.EntradaResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrSinItems
	}

	provID, err := uuid.Parse(req.ProveedorID)
	if err != nil {
		return nil, &NoEncontradoError{Entidad: "proveedor", Ref: req.ProveedorID}
	}
	proveedor, err := s.proveedorRepo.FindByID(ctx, provID)
	if err != nil {
		return nil, &NoEncontradoError{Entidad: "proveedor", Ref: req.ProveedorID}
	}
	if !proveedor.Activo {
		return nil, &InactivoError{Entidad: "proveedor", Nombre: proveedor.Nombre}
	}

	pagado := true
	if req.Pagado != nil {
		pagado = *req.Pagado
	}
	metodoPago := req.MetodoPago
	if metodoPago == "" {
		metodoPago = "Efectivo"
	}

	type resolvedItem struct {
		producto   *model.Producto
		cantidad   decimal.Decimal
		precio     decimal.Decimal
		subtotal   decimal.Decimal
		stockAntes decimal.Decimal
	}

	var entrada model.Entrada

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		recibido := map[uuid.UUID]decimal.Decimal{}
		resolved := make([]resolvedItem, 0, len(req.Items))
		total := decimal.Zero

		for _, item := range req.Items {
			pid, err := uuid.Parse(item.ProductoID)
			if err != nil {
				return &NoEncontradoError{Entidad: "producto", Ref: item.ProductoID}
			}
			p, err := s.productoRepo.FindByIDTx(tx, pid)
			if err != nil {
				return &NoEncontradoError{Entidad: "producto", Ref: item.ProductoID}
			}
			if !p.Activo {
				return &InactivoError{Entidad: "producto", Nombre: p.Nombre}
			}
			if !item.Cantidad.IsPositive() {
				return &CantidadInvalidaError{Producto: p.Nombre, Detalle: "la cantidad debe ser mayor que 0"}
			}

			// nil = use the list cost; an explicit 0 (bonificación) stays 0.
			precio := p.PrecioCompra
			if item.PrecioCompra != nil {
				precio = *item.PrecioCompra
			}
			if precio.IsNegative() {
				return &CantidadInvalidaError{Producto: p.Nombre, Detalle: "el precio no puede ser negativo"}
			}

			stockAntes := p.StockActual.Add(recibido[pid])
			recibido[pid] = recibido[pid].Add(item.Cantidad)

			subtotal := precio.Mul(item.Cantidad)
			total = total.Add(subtotal)
			resolved = append(resolved, resolvedItem{
				producto:   p,
				cantidad:   item.Cantidad,
				precio:     precio,
				subtotal:   subtotal,
				stockAntes: stockAntes,
			})
		}

		numero, err := s.repo.NextNumeroTx(tx)
		if err != nil {
			return err
		}

		entrada = model.Entrada{
			Numero:      numero,
			ProveedorID: provID,
			Total:       total,
			Pagado:      pagado,
			MetodoPago:  metodoPago,
		}
		for _, r := range resolved {
			entrada.Detalles = append(entrada.Detalles, model.EntradaDetalle{
				ProductoID:   r.producto.ID,
				Cantidad:     r.cantidad,
				PrecioCompra: r.precio,
				Subtotal:     r.subtotal,
			})
		}
		if err := s.repo.CreateTx(tx, &entrada); err != nil {
			return err
		}

		for _, r := range resolved {
			if err := s.productoRepo.UpdateStockTx(tx, r.producto.ID, r.cantidad); err != nil {
				return fmt.Errorf("error sumando stock de %s: %w", r.producto.Nombre, err)
			}

			entradaRef := entrada.ID
			mov := &model.MovimientoStock{
				ProductoID:    r.producto.ID,
				Tipo:          "entrada",
				Cantidad:      r.cantidad,
				StockAnterior: r.stockAntes,
				StockNuevo:    r.stockAntes.Add(r.cantidad),
				Motivo:        fmt.Sprintf("Entrada #%d - %s", numero, proveedor.Nombre),
				ReferenciaID:  &entradaRef,
			}
			if err := s.inventario.RegistrarMovimientoTx(tx, mov); err != nil {
				return err
			}
		}

		if pagado {
			ref := entrada.ID.String()
			obs := "Método: " + metodoPago
			if _, err := s.caja.RegistrarMovimientoTx(tx, MovimientoParams{
				Tipo:        model.TipoEgreso,
				Concepto:    fmt.Sprintf("Compra (Entrada #%d) - %s", numero, proveedor.Nombre),
				Monto:       total,
				Referencia:  &ref,
				Observacion: &obs,
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.ObtenerEntrada(ctx, entrada.ID)
}

func (s *entradaService) ObtenerEntrada(ctx context.Context, id uuid.UUID) (*dto.EntradaResponse, error) {
	entrada, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &NoEncontradoError{Entidad: "entrada", Ref: id.String()}
	}
	return entradaToResponse(entrada), nil
}

func (s *entradaService) ListarEntradas(ctx context.Context, filter dto.EntradaFilter) (*dto.EntradaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	entradas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.EntradaResponse, 0, len(entradas))
	for i := range entradas {
		data = append(data, *entradaToResponse(&entradas[i]))
	}
	return &dto.EntradaListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func entradaToResponse(e *model.Entrada) *dto.EntradaResponse {
	items := make([]dto.ItemEntradaResponse, 0, len(e.Detalles))
	for _, det := range e.Detalles {
		nombre := ""
		if det.Producto != nil {
			nombre = det.Producto.Nombre
		}
		items = append(items, dto.ItemEntradaResponse{
			Producto:     nombre,
			Cantidad:     det.Cantidad,
			PrecioCompra: det.PrecioCompra,
			Subtotal:     det.Subtotal,
		})
	}
	proveedorNombre := ""
	if e.Proveedor != nil {
		proveedorNombre = e.Proveedor.Nombre
	}
	return &dto.EntradaResponse{
		ID:         e.ID.String(),
		Numero:     e.Numero,
		Proveedor:  proveedorNombre,
		Items:      items,
		Total:      e.Total,
		Pagado:     e.Pagado,
		MetodoPago: e.MetodoPago,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}
