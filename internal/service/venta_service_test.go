package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/NicolasMR761/InventarioJH/internal/dto"
	"github.com/NicolasMR761/InventarioJH/internal/model"
	"github.com/NicolasMR761/InventarioJH/internal/repository"
	"github.com/NicolasMR761/InventarioJH/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Full in-memory ProductoRepository ────────────────────────────────────────
// Shared by the venta and entrada suites.

type fakeProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *fakeProductoRepo) add(p model.Producto) uuid.UUID {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = &p
	return p.ID
}

func (r *fakeProductoRepo) stock(id uuid.UUID) decimal.Decimal {
	return r.productos[id].StockActual
}

func (r *fakeProductoRepo) DB() *gorm.DB { return nil }

func (r *fakeProductoRepo) Create(_ context.Context, p *model.Producto) error {
	r.add(*p)
	return nil
}

func (r *fakeProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	return r.find(id)
}

func (r *fakeProductoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	return r.find(id)
}

func (r *fakeProductoRepo) find(id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *fakeProductoRepo) List(_ context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	var out []model.Producto
	for _, p := range r.productos {
		switch filter.Activo {
		case "false":
			if p.Activo {
				continue
			}
		case "all":
		default:
			if !p.Activo {
				continue
			}
		}
		if filter.Nombre != "" && !strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(filter.Nombre)) {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductoRepo) Update(_ context.Context, p *model.Producto) error {
	copia := *p
	r.productos[p.ID] = &copia
	return nil
}

func (r *fakeProductoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if p, ok := r.productos[id]; ok {
		p.Activo = false
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeProductoRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	if p, ok := r.productos[id]; ok {
		p.Activo = true
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeProductoRepo) ListStockBajo(_ context.Context) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.Activo && p.StockBajo() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductoRepo) UpdateStockTx(_ *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.StockActual = p.StockActual.Add(delta)
	return nil
}

var _ repository.ProductoRepository = (*fakeProductoRepo)(nil)

// ── Full in-memory MovimientoStockRepository ─────────────────────────────────

type fakeMovimientoStockRepo struct {
	movimientos []model.MovimientoStock
}

func (r *fakeMovimientoStockRepo) CreateTx(_ *gorm.DB, m *model.MovimientoStock) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *fakeMovimientoStockRepo) List(_ context.Context, filter repository.MovimientoStockFilter) ([]model.MovimientoStock, int64, error) {
	var out []model.MovimientoStock
	for _, m := range r.movimientos {
		if filter.ProductoID != nil && m.ProductoID != *filter.ProductoID {
			continue
		}
		if filter.Tipo != "" && m.Tipo != filter.Tipo {
			continue
		}
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (r *fakeMovimientoStockRepo) porTipo(tipo string) []model.MovimientoStock {
	var out []model.MovimientoStock
	for _, m := range r.movimientos {
		if m.Tipo == tipo {
			out = append(out, m)
		}
	}
	return out
}

var _ repository.MovimientoStockRepository = (*fakeMovimientoStockRepo)(nil)

// ── Full in-memory VentaRepository ───────────────────────────────────────────

type fakeVentaRepo struct {
	ventas map[uuid.UUID]*model.Venta
}

func newFakeVentaRepo() *fakeVentaRepo {
	return &fakeVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *fakeVentaRepo) DB() *gorm.DB { return nil }

func (r *fakeVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.CreatedAt = time.Now()
	for i := range v.Detalles {
		if v.Detalles[i].ID == uuid.Nil {
			v.Detalles[i].ID = uuid.New()
		}
		v.Detalles[i].VentaID = v.ID
	}
	copia := *v
	copia.Detalles = append([]model.VentaDetalle(nil), v.Detalles...)
	r.ventas[v.ID] = &copia
	return nil
}

func (r *fakeVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *v
	copia.Detalles = append([]model.VentaDetalle(nil), v.Detalles...)
	return &copia, nil
}

func (r *fakeVentaRepo) NextNumeroTx(_ *gorm.DB) (int, error) {
	max := 0
	for _, v := range r.ventas {
		if v.NumeroTicket > max {
			max = v.NumeroTicket
		}
	}
	return max + 1, nil
}

func (r *fakeVentaRepo) MarcarAnuladaTx(_ *gorm.DB, id uuid.UUID, motivo *string, anuladaEn time.Time) error {
	v, ok := r.ventas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Anulada = true
	v.MotivoAnulacion = motivo
	v.AnuladaEn = &anuladaEn
	return nil
}

func (r *fakeVentaRepo) List(_ context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		switch filter.Estado {
		case "anulada":
			if !v.Anulada {
				continue
			}
		case "all":
		default:
			if v.Anulada {
				continue
			}
		}
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

var _ repository.VentaRepository = (*fakeVentaRepo)(nil)

// ── Fixture ──────────────────────────────────────────────────────────────────

type ventaFixture struct {
	svc      service.VentaService
	caja     service.CajaService
	cajaRepo *fakeCajaRepo
	prodRepo *fakeProductoRepo
	movRepo  *fakeMovimientoStockRepo
	arrozID  uuid.UUID
}

// Arroz: stock 10, precio de venta 50, sin mínimo configurado.
func newVentaFixture() *ventaFixture {
	prodRepo := newFakeProductoRepo()
	arrozID := prodRepo.add(model.Producto{
		Nombre:      "Arroz",
		Unidad:      "kg",
		PrecioVenta: dec("50"),
		StockActual: dec("10"),
		Activo:      true,
	})

	movRepo := &fakeMovimientoStockRepo{}
	cajaRepo := newFakeCajaRepo()
	caja := service.NewCajaService(cajaRepo, nil)
	inventario := service.NewInventarioService(movRepo, prodRepo)
	svc := service.NewVentaService(newFakeVentaRepo(), prodRepo, inventario, caja, nil)

	return &ventaFixture{
		svc:      svc,
		caja:     caja,
		cajaRepo: cajaRepo,
		prodRepo: prodRepo,
		movRepo:  movRepo,
		arrozID:  arrozID,
	}
}

// precio "" deja el puntero en nil (precio de lista).
func itemVenta(id uuid.UUID, cantidad, precio string) dto.ItemVentaRequest {
	item := dto.ItemVentaRequest{ProductoID: id.String(), Cantidad: dec(cantidad)}
	if precio != "" {
		p := dec(precio)
		item.PrecioVenta = &p
	}
	return item
}

// ── RegistrarVenta ───────────────────────────────────────────────────────────

func TestRegistrarVentaDescuentaStockYCobraEnCaja(t *testing.T) {
	f := newVentaFixture()

	resp, err := f.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{itemVenta(f.arrozID, "3", "50")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.NumeroTicket)
	assert.True(t, resp.Total.Equal(dec("150")), "total = %s", resp.Total)
	assert.Equal(t, "Efectivo", resp.MetodoPago)
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].Subtotal.Equal(dec("150")))

	assert.True(t, f.prodRepo.stock(f.arrozID).Equal(dec("7")), "stock = %s", f.prodRepo.stock(f.arrozID))

	// El cobro entra como INGRESO por el gateway único de caja.
	require.Len(t, f.cajaRepo.movimientos, 1)
	mov := f.cajaRepo.movimientos[0]
	assert.Equal(t, model.TipoIngreso, mov.Tipo)
	assert.Equal(t, "Venta #1", mov.Concepto)
	assert.True(t, mov.Monto.Equal(dec("150")))
	require.NotNil(t, mov.Referencia)
	assert.Equal(t, resp.ID, *mov.Referencia)
	require.NotNil(t, mov.Observacion)
	assert.Equal(t, "Método: Efectivo", *mov.Observacion)

	// Y queda la traza de stock.
	trail := f.movRepo.porTipo("venta")
	require.Len(t, trail, 1)
	assert.True(t, trail[0].Cantidad.Equal(dec("-3")))
	assert.True(t, trail[0].StockAnterior.Equal(dec("10")))
	assert.True(t, trail[0].StockNuevo.Equal(dec("7")))
}

func TestRegistrarVentaUsaPrecioDelProducto(t *testing.T) {
	f := newVentaFixture()

	resp, err := f.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{itemVenta(f.arrozID, "2", "")},
	})
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(dec("100")), "precio de lista 50 × 2")
}

func TestRegistrarVentaObservacionConMetodoPago(t *testing.T) {
	f := newVentaFixture()

	_, err := f.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Items:      []dto.ItemVentaRequest{itemVenta(f.arrozID, "1", "")},
		MetodoPago: "Tarjeta",
	})
	require.NoError(t, err)

	require.Len(t, f.cajaRepo.movimientos, 1)
	mov := f.cajaRepo.movimientos[0]
	require.NotNil(t, mov.Observacion)
	assert.Equal(t, "Método: Tarjeta", *mov.Observacion)
}

func TestRegistrarVentaPrecioCeroExplicito(t *testing.T) {
	f := newVentaFixture()

	// Línea de promoción: el 0 explícito NO cae al precio de lista.
	resp, err := f.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{
			itemVenta(f.arrozID, "1", ""),
			itemVenta(f.arrozID, "2", "0"),
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(dec("50")), "solo la línea de lista cobra: total = %s", resp.Total)
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[1].PrecioVenta.IsZero())
	assert.True(t, resp.Items[1].Subtotal.IsZero())
	assert.True(t, f.prodRepo.stock(f.arrozID).Equal(dec("7")), "las 3 unidades salen del stock")

	require.Len(t, f.cajaRepo.movimientos, 1)
	assert.True(t, f.cajaRepo.movimientos[0].Monto.Equal(dec("50")))
}

func TestRegistrarVentaPrecioNegativo(t *testing.T) {
	f := newVentaFixture()

	_, err := f.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{itemVenta(f.arrozID, "1", "-50")},
	})
	var mala *service.CantidadInvalidaError
	require.ErrorAs(t, err, &mala)
	assert.True(t, f.prodRepo.stock(f.arrozID).Equal(dec("10")))
}

func TestRegistrarVentaStockInsuficiente(t *testing.T) {
	f := newVentaFixture()

	_, err := f.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{itemVenta(f.arrozID, "11", "")},
	})

	var insuf *service.StockInsuficienteError
	require.ErrorAs(t, err, &insuf)
	assert.True(t, insuf.Disponible.Equal(dec("10")))
	assert.True(t, insuf.Requerido.Equal(dec("11")))

	assert.True(t, f.prodRepo.stock(f.arrozID).Equal(dec("10")), "stock must not move")
	assert.Empty(t, f.cajaRepo.movimientos, "no money on a failed sale")
}

func TestRegistrarVentaLineasDuplicadasCompartenStock(t *testing.T) {
	f := newVentaFixture()

	// 6 + 6 del mismo producto supera el stock de 10 aunque cada línea quepa.
	_, err := f.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{
			itemVenta(f.arrozID, "6", ""),
			itemVenta(f.arrozID, "6", ""),
		},
	})
	var insuf *service.StockInsuficienteError
	require.ErrorAs(t, err, &insuf)
	assert.True(t, insuf.Disponible.Equal(dec("4")), "second line sees what the first left")

	// 6 + 4 sí cabe y deja el stock en cero.
	resp, err := f.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{
			itemVenta(f.arrozID, "6", ""),
			itemVenta(f.arrozID, "4", ""),
		},
	})
	require.NoError(t, err)
	assert.True(t, f.prodRepo.stock(f.arrozID).IsZero())
	require.Len(t, resp.Items, 2)
}

func TestRegistrarVentaProductoInactivo(t *testing.T) {
	f := newVentaFixture()
	require.NoError(t, f.prodRepo.SoftDelete(context.Background(), f.arrozID))

	_, err := f.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{itemVenta(f.arrozID, "1", "")},
	})
	var inactivo *service.InactivoError
	assert.ErrorAs(t, err, &inactivo)
}

func TestRegistrarVentaProductoInexistente(t *testing.T) {
	f := newVentaFixture()

	_, err := f.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{itemVenta(uuid.New(), "1", "")},
	})
	var noEnc *service.NoEncontradoError
	require.ErrorAs(t, err, &noEnc)
	assert.Equal(t, "producto", noEnc.Entidad)
}

func TestRegistrarVentaSinItems(t *testing.T) {
	f := newVentaFixture()

	_, err := f.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{})
	assert.ErrorIs(t, err, service.ErrSinItems)
}

func TestRegistrarVentaCantidadInvalida(t *testing.T) {
	f := newVentaFixture()

	_, err := f.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{itemVenta(f.arrozID, "0", "")},
	})
	var mala *service.CantidadInvalidaError
	assert.ErrorAs(t, err, &mala)
}

func TestRegistrarVentaEnDiaCerrado(t *testing.T) {
	f := newVentaFixture()
	_, err := f.caja.CerrarDia(context.Background(), time.Now(), nil)
	require.NoError(t, err)

	_, err = f.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{itemVenta(f.arrozID, "1", "")},
	})
	var cerrado *service.DiaCerradoError
	assert.ErrorAs(t, err, &cerrado)
	assert.Empty(t, f.cajaRepo.movimientos)
}

func TestNumeroTicketIncrementa(t *testing.T) {
	f := newVentaFixture()
	ctx := context.Background()

	primera, err := f.svc.RegistrarVenta(ctx, dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{itemVenta(f.arrozID, "1", "")},
	})
	require.NoError(t, err)
	segunda, err := f.svc.RegistrarVenta(ctx, dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{itemVenta(f.arrozID, "1", "")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, primera.NumeroTicket)
	assert.Equal(t, 2, segunda.NumeroTicket)
}

// ── AnularVenta ──────────────────────────────────────────────────────────────

func TestAnularVentaRestauraStockYCompensa(t *testing.T) {
	f := newVentaFixture()
	ctx := context.Background()

	venta, err := f.svc.RegistrarVenta(ctx, dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{itemVenta(f.arrozID, "3", "50")},
	})
	require.NoError(t, err)
	require.True(t, f.prodRepo.stock(f.arrozID).Equal(dec("7")))

	anulada, err := f.svc.AnularVenta(ctx, uuid.MustParse(venta.ID), dto.AnularVentaRequest{
		Motivo: "cliente se arrepintió",
	})
	require.NoError(t, err)

	assert.True(t, anulada.Anulada)
	require.NotNil(t, anulada.MotivoAnulacion)
	assert.Equal(t, "cliente se arrepintió", *anulada.MotivoAnulacion)
	assert.NotNil(t, anulada.AnuladaEn)

	// El stock vuelve y la caja compensa: el INGRESO original no se toca.
	assert.True(t, f.prodRepo.stock(f.arrozID).Equal(dec("10")))
	require.Len(t, f.cajaRepo.movimientos, 2)
	egreso := f.cajaRepo.movimientos[1]
	assert.Equal(t, model.TipoEgreso, egreso.Tipo)
	assert.Equal(t, "Anulación venta #1", egreso.Concepto)
	assert.True(t, egreso.Monto.Equal(dec("150")))
	require.NotNil(t, egreso.Observacion)
	assert.Equal(t, "Método: Efectivo. Motivo: cliente se arrepintió", *egreso.Observacion)

	saldo, err := f.caja.Saldo(ctx, nil)
	require.NoError(t, err)
	assert.True(t, saldo.IsZero(), "venta + anulación neta en cero")

	trail := f.movRepo.porTipo("anulacion")
	require.Len(t, trail, 1)
	assert.True(t, trail[0].Cantidad.Equal(dec("3")))
	assert.True(t, trail[0].StockNuevo.Equal(dec("10")))
}

func TestAnularVentaObservacionConMetodoExplicito(t *testing.T) {
	f := newVentaFixture()
	ctx := context.Background()

	venta, err := f.svc.RegistrarVenta(ctx, dto.RegistrarVentaRequest{
		Items:      []dto.ItemVentaRequest{itemVenta(f.arrozID, "1", "")},
		MetodoPago: "Tarjeta",
	})
	require.NoError(t, err)

	// El método del request manda sobre el de la venta; sin motivo no se anexa.
	_, err = f.svc.AnularVenta(ctx, uuid.MustParse(venta.ID), dto.AnularVentaRequest{
		MetodoPago: "Transferencia",
	})
	require.NoError(t, err)

	require.Len(t, f.cajaRepo.movimientos, 2)
	egreso := f.cajaRepo.movimientos[1]
	require.NotNil(t, egreso.Observacion)
	assert.Equal(t, "Método: Transferencia", *egreso.Observacion)
}

func TestAnularVentaHeredaMetodoDeLaVenta(t *testing.T) {
	f := newVentaFixture()
	ctx := context.Background()

	venta, err := f.svc.RegistrarVenta(ctx, dto.RegistrarVentaRequest{
		Items:      []dto.ItemVentaRequest{itemVenta(f.arrozID, "1", "")},
		MetodoPago: "Nequi",
	})
	require.NoError(t, err)

	_, err = f.svc.AnularVenta(ctx, uuid.MustParse(venta.ID), dto.AnularVentaRequest{})
	require.NoError(t, err)

	egreso := f.cajaRepo.movimientos[1]
	require.NotNil(t, egreso.Observacion)
	assert.Equal(t, "Método: Nequi", *egreso.Observacion)
}

func TestAnularVentaEsTerminal(t *testing.T) {
	f := newVentaFixture()
	ctx := context.Background()

	venta, err := f.svc.RegistrarVenta(ctx, dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{itemVenta(f.arrozID, "2", "")},
	})
	require.NoError(t, err)

	id := uuid.MustParse(venta.ID)
	_, err = f.svc.AnularVenta(ctx, id, dto.AnularVentaRequest{})
	require.NoError(t, err)

	_, err = f.svc.AnularVenta(ctx, id, dto.AnularVentaRequest{})
	var ya *service.VentaYaAnuladaError
	require.ErrorAs(t, err, &ya)
	assert.Equal(t, 1, ya.NumeroTicket)

	// Sin doble restauración de stock.
	assert.True(t, f.prodRepo.stock(f.arrozID).Equal(dec("10")))
}

func TestAnularVentaFallaSiUnProductoYaNoExiste(t *testing.T) {
	f := newVentaFixture()
	ctx := context.Background()

	venta, err := f.svc.RegistrarVenta(ctx, dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{itemVenta(f.arrozID, "1", "")},
	})
	require.NoError(t, err)

	delete(f.prodRepo.productos, f.arrozID)

	// Sin producto no hay traza de stock confiable: la anulación se rechaza
	// entera en lugar de registrar un movimiento con saldos inventados.
	_, err = f.svc.AnularVenta(ctx, uuid.MustParse(venta.ID), dto.AnularVentaRequest{})
	var noEnc *service.NoEncontradoError
	require.ErrorAs(t, err, &noEnc)
	assert.Len(t, f.cajaRepo.movimientos, 1, "no compensating EGRESO")
	assert.Empty(t, f.movRepo.porTipo("anulacion"))
}

func TestAnularVentaInexistente(t *testing.T) {
	f := newVentaFixture()

	_, err := f.svc.AnularVenta(context.Background(), uuid.New(), dto.AnularVentaRequest{})
	var noEnc *service.NoEncontradoError
	assert.ErrorAs(t, err, &noEnc)
}

func TestListarVentasExcluyeAnuladasPorDefecto(t *testing.T) {
	f := newVentaFixture()
	ctx := context.Background()

	venta, err := f.svc.RegistrarVenta(ctx, dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{itemVenta(f.arrozID, "1", "")},
	})
	require.NoError(t, err)
	_, err = f.svc.RegistrarVenta(ctx, dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{itemVenta(f.arrozID, "1", "")},
	})
	require.NoError(t, err)
	_, err = f.svc.AnularVenta(ctx, uuid.MustParse(venta.ID), dto.AnularVentaRequest{})
	require.NoError(t, err)

	activas, err := f.svc.ListarVentas(ctx, dto.VentaFilter{Estado: "activa"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, activas.Total)

	todas, err := f.svc.ListarVentas(ctx, dto.VentaFilter{Estado: "all"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, todas.Total)
}
