package service

import (
	"context"
	"fmt"
	"time"

	"github.com/NicolasMR761/InventarioJH/internal/dto"
	"github.com/NicolasMR761/InventarioJH/internal/model"
	"github.com/NicolasMR761/InventarioJH/internal/repository"
	"github.com/NicolasMR761/InventarioJH/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaService interface {
	RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	AnularVenta(ctx context.Context, id uuid.UUID, req dto.AnularVentaRequest) (*dto.VentaResponse, error)
	ObtenerVenta(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	ListarVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	productoRepo repository.ProductoRepository
	inventario   InventarioService
	caja         CajaService
	dispatcher   *worker.Dispatcher
}

func NewVentaService(
	repo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	inventario InventarioService,
	caja CajaService,
	dispatcher *worker.Dispatcher,
) VentaService {
	return &ventaService{
		repo:         repo,
		productoRepo: productoRepo,
		inventario:   inventario,
		caja:         caja,
		dispatcher:   dispatcher,
	}
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// One ACID transaction:
//   1. For each item: fetch product, validate activo / cantidad / stock
//   2. Reserve next ticket number, create venta + detalles
//   3. Decrement stock and record MovimientoStock per line
//   4. INGRESO in the cash ledger via the write gateway (closed-day check
//      runs there — a venta on a closed day rolls back entirely)
//   5. COMMIT; then fire low-stock alerts (async, best-effort)

func (s *ventaService) RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrSinItems
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

	var venta model.Venta
	var alertas []*model.Producto

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// The same product can appear in several lines; pedido tracks what
		// earlier lines of THIS venta already claimed so availability and the
		// stock trail stay correct.
		pedido := map[uuid.UUID]decimal.Decimal{}
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

			// nil = use the list price; an explicit 0 is a valid free/promo line.
			precio := p.PrecioVenta
			if item.PrecioVenta != nil {
				precio = *item.PrecioVenta
			}
			if precio.IsNegative() {
				return &CantidadInvalidaError{Producto: p.Nombre, Detalle: "el precio no puede ser negativo"}
			}

			stockAntes := p.StockActual.Sub(pedido[pid])
			if stockAntes.LessThan(item.Cantidad) {
				return &StockInsuficienteError{
					Producto:   p.Nombre,
					Disponible: stockAntes,
					Requerido:  item.Cantidad,
				}
			}
			pedido[pid] = pedido[pid].Add(item.Cantidad)

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

		ticket, err := s.repo.NextNumeroTx(tx)
		if err != nil {
			return err
		}

		venta = model.Venta{
			NumeroTicket: ticket,
			Total:        total,
			MetodoPago:   metodoPago,
		}
		for _, r := range resolved {
			venta.Detalles = append(venta.Detalles, model.VentaDetalle{
				ProductoID:  r.producto.ID,
				Cantidad:    r.cantidad,
				PrecioVenta: r.precio,
				Subtotal:    r.subtotal,
			})
		}
		if err := s.repo.CreateTx(tx, &venta); err != nil {
			return err
		}

		for _, r := range resolved {
			if err := s.productoRepo.UpdateStockTx(tx, r.producto.ID, r.cantidad.Neg()); err != nil {
				return fmt.Errorf("error descontando stock de %s: %w", r.producto.Nombre, err)
			}

			ventaRef := venta.ID
			stockNuevo := r.stockAntes.Sub(r.cantidad)
			mov := &model.MovimientoStock{
				ProductoID:    r.producto.ID,
				Tipo:          "venta",
				Cantidad:      r.cantidad.Neg(),
				StockAnterior: r.stockAntes,
				StockNuevo:    stockNuevo,
				Motivo:        fmt.Sprintf("Venta #%d", ticket),
				ReferenciaID:  &ventaRef,
			}
			if err := s.inventario.RegistrarMovimientoTx(tx, mov); err != nil {
				return err
			}

			if r.producto.StockMinimo.IsPositive() && stockNuevo.LessThanOrEqual(r.producto.StockMinimo) {
				p := r.producto
				p.StockActual = stockNuevo
				alertas = append(alertas, p)
			}
		}

		ref := venta.ID.String()
		obs := "Método: " + metodoPago
		_, err = s.caja.RegistrarMovimientoTx(tx, MovimientoParams{
			Tipo:        model.TipoIngreso,
			Concepto:    fmt.Sprintf("Venta #%d", ticket),
			Monto:       total,
			Referencia:  &ref,
			Observacion: &obs,
		})
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	// Async low-stock alerts (best-effort — fire & forget)
	if s.dispatcher != nil {
		for _, p := range alertas {
			_ = s.dispatcher.EnqueueAlertaStock(ctx, worker.AlertaStockJobPayload{
				ProductoID:  p.ID.String(),
				Nombre:      p.Nombre,
				Unidad:      p.Unidad,
				StockActual: p.StockActual.String(),
				StockMinimo: p.StockMinimo.String(),
			})
		}
	}

	return s.ObtenerVenta(ctx, venta.ID)
}

// ── AnularVenta ───────────────────────────────────────────────────────────────
// Anulada is terminal. The anulación restores every line's stock and records
// a compensating EGRESO — the original INGRESO is never touched.

func (s *ventaService) AnularVenta(ctx context.Context, id uuid.UUID, req dto.AnularVentaRequest) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &NoEncontradoError{Entidad: "venta", Ref: id.String()}
	}
	if venta.Anulada {
		return nil, &VentaYaAnuladaError{NumeroTicket: venta.NumeroTicket}
	}

	motivo := strPtrOrNil(req.Motivo)
	metodoPago := req.MetodoPago
	if metodoPago == "" {
		metodoPago = venta.MetodoPago
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, det := range venta.Detalles {
			p, err := s.productoRepo.FindByIDTx(tx, det.ProductoID)
			if err != nil {
				return &NoEncontradoError{Entidad: "producto", Ref: det.ProductoID.String()}
			}
			stockAntes := p.StockActual

			if err := s.productoRepo.UpdateStockTx(tx, det.ProductoID, det.Cantidad); err != nil {
				return err
			}

			ventaRef := venta.ID
			mov := &model.MovimientoStock{
				ProductoID:    det.ProductoID,
				Tipo:          "anulacion",
				Cantidad:      det.Cantidad,
				StockAnterior: stockAntes,
				StockNuevo:    stockAntes.Add(det.Cantidad),
				Motivo:        fmt.Sprintf("Anulación venta #%d", venta.NumeroTicket),
				ReferenciaID:  &ventaRef,
			}
			if err := s.inventario.RegistrarMovimientoTx(tx, mov); err != nil {
				return err
			}
		}

		ref := venta.ID.String()
		obs := "Método: " + metodoPago
		if motivo != nil {
			obs = fmt.Sprintf("Método: %s. Motivo: %s", metodoPago, *motivo)
		}
		if _, err := s.caja.RegistrarMovimientoTx(tx, MovimientoParams{
			Tipo:        model.TipoEgreso,
			Concepto:    fmt.Sprintf("Anulación venta #%d", venta.NumeroTicket),
			Monto:       venta.Total,
			Referencia:  &ref,
			Observacion: &obs,
		}); err != nil {
			return err
		}

		return s.repo.MarcarAnuladaTx(tx, venta.ID, motivo, time.Now())
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.ObtenerVenta(ctx, venta.ID)
}

func (s *ventaService) ObtenerVenta(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &NoEncontradoError{Entidad: "venta", Ref: id.String()}
	}
	return ventaToResponse(venta), nil
}

func (s *ventaService) ListarVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	ventas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		data = append(data, *ventaToResponse(&ventas[i]))
	}
	return &dto.VentaListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	items := make([]dto.ItemVentaResponse, 0, len(v.Detalles))
	for _, det := range v.Detalles {
		nombre := ""
		if det.Producto != nil {
			nombre = det.Producto.Nombre
		}
		items = append(items, dto.ItemVentaResponse{
			Producto:    nombre,
			Cantidad:    det.Cantidad,
			PrecioVenta: det.PrecioVenta,
			Subtotal:    det.Subtotal,
		})
	}
	resp := &dto.VentaResponse{
		ID:              v.ID.String(),
		NumeroTicket:    v.NumeroTicket,
		Items:           items,
		Total:           v.Total,
		MetodoPago:      v.MetodoPago,
		Anulada:         v.Anulada,
		MotivoAnulacion: v.MotivoAnulacion,
		CreatedAt:       v.CreatedAt.Format(time.RFC3339),
	}
	if v.AnuladaEn != nil {
		s := v.AnuladaEn.Format(time.RFC3339)
		resp.AnuladaEn = &s
	}
	return resp
}
