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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Full in-memory ProveedorRepository ───────────────────────────────────────

type fakeProveedorRepo struct {
	proveedores map[uuid.UUID]*model.Proveedor
}

func newFakeProveedorRepo() *fakeProveedorRepo {
	return &fakeProveedorRepo{proveedores: make(map[uuid.UUID]*model.Proveedor)}
}

func (r *fakeProveedorRepo) add(p model.Proveedor) uuid.UUID {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.proveedores[p.ID] = &p
	return p.ID
}

func (r *fakeProveedorRepo) Create(_ context.Context, p *model.Proveedor) error {
	r.add(*p)
	return nil
}

func (r *fakeProveedorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *fakeProveedorRepo) List(_ context.Context, texto string, incluirInactivos bool) ([]model.Proveedor, error) {
	var out []model.Proveedor
	for _, p := range r.proveedores {
		if !incluirInactivos && !p.Activo {
			continue
		}
		if texto != "" && !strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(texto)) {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProveedorRepo) Update(_ context.Context, p *model.Proveedor) error {
	copia := *p
	r.proveedores[p.ID] = &copia
	return nil
}

func (r *fakeProveedorRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if p, ok := r.proveedores[id]; ok {
		p.Activo = false
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeProveedorRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	if p, ok := r.proveedores[id]; ok {
		p.Activo = true
		return nil
	}
	return gorm.ErrRecordNotFound
}

var _ repository.ProveedorRepository = (*fakeProveedorRepo)(nil)

// ── Full in-memory EntradaRepository ─────────────────────────────────────────

type fakeEntradaRepo struct {
	entradas    map[uuid.UUID]*model.Entrada
	proveedores *fakeProveedorRepo
}

func newFakeEntradaRepo() *fakeEntradaRepo {
	return &fakeEntradaRepo{entradas: make(map[uuid.UUID]*model.Entrada)}
}

func (r *fakeEntradaRepo) DB() *gorm.DB { return nil }

func (r *fakeEntradaRepo) CreateTx(_ *gorm.DB, e *model.Entrada) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now()
	for i := range e.Detalles {
		if e.Detalles[i].ID == uuid.Nil {
			e.Detalles[i].ID = uuid.New()
		}
		e.Detalles[i].EntradaID = e.ID
	}
	copia := *e
	copia.Detalles = append([]model.EntradaDetalle(nil), e.Detalles...)
	r.entradas[e.ID] = &copia
	return nil
}

func (r *fakeEntradaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Entrada, error) {
	e, ok := r.entradas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *e
	copia.Detalles = append([]model.EntradaDetalle(nil), e.Detalles...)
	// El repo real hace Preload("Proveedor"); el fake lo emula aquí.
	if r.proveedores != nil {
		if p, ok := r.proveedores.proveedores[e.ProveedorID]; ok {
			prov := *p
			copia.Proveedor = &prov
		}
	}
	return &copia, nil
}

func (r *fakeEntradaRepo) NextNumeroTx(_ *gorm.DB) (int, error) {
	max := 0
	for _, e := range r.entradas {
		if e.Numero > max {
			max = e.Numero
		}
	}
	return max + 1, nil
}

func (r *fakeEntradaRepo) List(_ context.Context, filter dto.EntradaFilter) ([]model.Entrada, int64, error) {
	var out []model.Entrada
	for _, e := range r.entradas {
		if filter.ProveedorID != "" && e.ProveedorID.String() != filter.ProveedorID {
			continue
		}
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

var _ repository.EntradaRepository = (*fakeEntradaRepo)(nil)

// ── Fixture ──────────────────────────────────────────────────────────────────

type entradaFixture struct {
	svc         service.EntradaService
	caja        service.CajaService
	cajaRepo    *fakeCajaRepo
	prodRepo    *fakeProductoRepo
	provRepo    *fakeProveedorRepo
	movRepo     *fakeMovimientoStockRepo
	frijolID    uuid.UUID
	proveedorID uuid.UUID
}

// Frijol: stock 0, precio de compra 100. Proveedor activo listo para comprar.
func newEntradaFixture() *entradaFixture {
	prodRepo := newFakeProductoRepo()
	frijolID := prodRepo.add(model.Producto{
		Nombre:       "Frijol",
		Unidad:       "kg",
		PrecioCompra: dec("100"),
		PrecioVenta:  dec("130"),
		Activo:       true,
	})

	provRepo := newFakeProveedorRepo()
	proveedorID := provRepo.add(model.Proveedor{Nombre: "Distribuidora El Trigal", Activo: true})

	movRepo := &fakeMovimientoStockRepo{}
	cajaRepo := newFakeCajaRepo()
	caja := service.NewCajaService(cajaRepo, nil)
	inventario := service.NewInventarioService(movRepo, prodRepo)
	entradaRepo := newFakeEntradaRepo()
	entradaRepo.proveedores = provRepo
	svc := service.NewEntradaService(entradaRepo, prodRepo, provRepo, inventario, caja)

	return &entradaFixture{
		svc:         svc,
		caja:        caja,
		cajaRepo:    cajaRepo,
		prodRepo:    prodRepo,
		provRepo:    provRepo,
		movRepo:     movRepo,
		frijolID:    frijolID,
		proveedorID: proveedorID,
	}
}

// precio "" deja el puntero en nil (precio de compra de lista).
func itemEntrada(id uuid.UUID, cantidad, precio string) dto.ItemEntradaRequest {
	item := dto.ItemEntradaRequest{ProductoID: id.String(), Cantidad: dec(cantidad)}
	if precio != "" {
		p := dec(precio)
		item.PrecioCompra = &p
	}
	return item
}

// ── CrearEntrada ─────────────────────────────────────────────────────────────

func TestCrearEntradaSumaStockYDebitaCaja(t *testing.T) {
	f := newEntradaFixture()

	resp, err := f.svc.CrearEntrada(context.Background(), dto.CrearEntradaRequest{
		ProveedorID: f.proveedorID.String(),
		Items:       []dto.ItemEntradaRequest{itemEntrada(f.frijolID, "10", "100")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Numero)
	assert.True(t, resp.Total.Equal(dec("1000")), "total = %s", resp.Total)
	assert.True(t, resp.Pagado)
	assert.Equal(t, "Distribuidora El Trigal", resp.Proveedor)

	assert.True(t, f.prodRepo.stock(f.frijolID).Equal(dec("10")))

	// La compra pagada sale de caja como EGRESO con el método en la observación.
	require.Len(t, f.cajaRepo.movimientos, 1)
	mov := f.cajaRepo.movimientos[0]
	assert.Equal(t, model.TipoEgreso, mov.Tipo)
	assert.Equal(t, "Compra (Entrada #1) - Distribuidora El Trigal", mov.Concepto)
	assert.True(t, mov.Monto.Equal(dec("1000")))
	require.NotNil(t, mov.Observacion)
	assert.Equal(t, "Método: Efectivo", *mov.Observacion)

	trail := f.movRepo.porTipo("entrada")
	require.Len(t, trail, 1)
	assert.True(t, trail[0].StockAnterior.IsZero())
	assert.True(t, trail[0].StockNuevo.Equal(dec("10")))
}

func TestCrearEntradaACreditoNoTocaCaja(t *testing.T) {
	f := newEntradaFixture()

	pagado := false
	resp, err := f.svc.CrearEntrada(context.Background(), dto.CrearEntradaRequest{
		ProveedorID: f.proveedorID.String(),
		Items:       []dto.ItemEntradaRequest{itemEntrada(f.frijolID, "5", "")},
		Pagado:      &pagado,
	})
	require.NoError(t, err)

	assert.False(t, resp.Pagado)
	assert.True(t, f.prodRepo.stock(f.frijolID).Equal(dec("5")), "stock sube igual")
	assert.Empty(t, f.cajaRepo.movimientos, "a crédito no mueve dinero")
}

func TestCrearEntradaUsaPrecioDeCompraDelProducto(t *testing.T) {
	f := newEntradaFixture()

	resp, err := f.svc.CrearEntrada(context.Background(), dto.CrearEntradaRequest{
		ProveedorID: f.proveedorID.String(),
		Items:       []dto.ItemEntradaRequest{itemEntrada(f.frijolID, "4", "")},
	})
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(dec("400")), "precio de lista 100 × 4")
}

func TestCrearEntradaObservacionConMetodoPago(t *testing.T) {
	f := newEntradaFixture()

	_, err := f.svc.CrearEntrada(context.Background(), dto.CrearEntradaRequest{
		ProveedorID: f.proveedorID.String(),
		Items:       []dto.ItemEntradaRequest{itemEntrada(f.frijolID, "2", "")},
		MetodoPago:  "Transferencia",
	})
	require.NoError(t, err)

	require.Len(t, f.cajaRepo.movimientos, 1)
	mov := f.cajaRepo.movimientos[0]
	require.NotNil(t, mov.Observacion)
	assert.Equal(t, "Método: Transferencia", *mov.Observacion)
}

func TestCrearEntradaPrecioCeroExplicito(t *testing.T) {
	f := newEntradaFixture()

	// Bonificación del proveedor: la línea a 0 no cae al costo de lista.
	resp, err := f.svc.CrearEntrada(context.Background(), dto.CrearEntradaRequest{
		ProveedorID: f.proveedorID.String(),
		Items: []dto.ItemEntradaRequest{
			itemEntrada(f.frijolID, "10", ""),
			itemEntrada(f.frijolID, "2", "0"),
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(dec("1000")), "total = %s", resp.Total)
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[1].Subtotal.IsZero())
	assert.True(t, f.prodRepo.stock(f.frijolID).Equal(dec("12")), "las 12 unidades entran")
}

func TestCrearEntradaPrecioNegativo(t *testing.T) {
	f := newEntradaFixture()

	_, err := f.svc.CrearEntrada(context.Background(), dto.CrearEntradaRequest{
		ProveedorID: f.proveedorID.String(),
		Items:       []dto.ItemEntradaRequest{itemEntrada(f.frijolID, "1", "-100")},
	})
	var mala *service.CantidadInvalidaError
	require.ErrorAs(t, err, &mala)
	assert.True(t, f.prodRepo.stock(f.frijolID).IsZero())
}

func TestCrearEntradaLineasDuplicadasAcumulan(t *testing.T) {
	f := newEntradaFixture()

	resp, err := f.svc.CrearEntrada(context.Background(), dto.CrearEntradaRequest{
		ProveedorID: f.proveedorID.String(),
		Items: []dto.ItemEntradaRequest{
			itemEntrada(f.frijolID, "3", ""),
			itemEntrada(f.frijolID, "2", ""),
		},
	})
	require.NoError(t, err)

	assert.True(t, f.prodRepo.stock(f.frijolID).Equal(dec("5")))
	require.Len(t, resp.Items, 2)

	// La traza encadena: 0→3 y 3→5.
	trail := f.movRepo.porTipo("entrada")
	require.Len(t, trail, 2)
	assert.True(t, trail[0].StockNuevo.Equal(dec("3")))
	assert.True(t, trail[1].StockAnterior.Equal(dec("3")))
	assert.True(t, trail[1].StockNuevo.Equal(dec("5")))
}

func TestCrearEntradaProveedorInexistente(t *testing.T) {
	f := newEntradaFixture()

	_, err := f.svc.CrearEntrada(context.Background(), dto.CrearEntradaRequest{
		ProveedorID: uuid.NewString(),
		Items:       []dto.ItemEntradaRequest{itemEntrada(f.frijolID, "1", "")},
	})
	var noEnc *service.NoEncontradoError
	require.ErrorAs(t, err, &noEnc)
	assert.Equal(t, "proveedor", noEnc.Entidad)
}

func TestCrearEntradaProveedorInactivo(t *testing.T) {
	f := newEntradaFixture()
	require.NoError(t, f.provRepo.SoftDelete(context.Background(), f.proveedorID))

	_, err := f.svc.CrearEntrada(context.Background(), dto.CrearEntradaRequest{
		ProveedorID: f.proveedorID.String(),
		Items:       []dto.ItemEntradaRequest{itemEntrada(f.frijolID, "1", "")},
	})
	var inactivo *service.InactivoError
	assert.ErrorAs(t, err, &inactivo)
}

func TestCrearEntradaSinItems(t *testing.T) {
	f := newEntradaFixture()

	_, err := f.svc.CrearEntrada(context.Background(), dto.CrearEntradaRequest{
		ProveedorID: f.proveedorID.String(),
	})
	assert.ErrorIs(t, err, service.ErrSinItems)
}

func TestCrearEntradaCantidadInvalida(t *testing.T) {
	f := newEntradaFixture()

	_, err := f.svc.CrearEntrada(context.Background(), dto.CrearEntradaRequest{
		ProveedorID: f.proveedorID.String(),
		Items:       []dto.ItemEntradaRequest{itemEntrada(f.frijolID, "-2", "")},
	})
	var mala *service.CantidadInvalidaError
	assert.ErrorAs(t, err, &mala)
}

func TestCrearEntradaPagadaEnDiaCerrado(t *testing.T) {
	f := newEntradaFixture()
	_, err := f.caja.CerrarDia(context.Background(), time.Now(), nil)
	require.NoError(t, err)

	_, err = f.svc.CrearEntrada(context.Background(), dto.CrearEntradaRequest{
		ProveedorID: f.proveedorID.String(),
		Items:       []dto.ItemEntradaRequest{itemEntrada(f.frijolID, "1", "")},
	})
	var cerrado *service.DiaCerradoError
	assert.ErrorAs(t, err, &cerrado)
}

func TestCrearEntradaNumeroIncrementa(t *testing.T) {
	f := newEntradaFixture()
	ctx := context.Background()

	primera, err := f.svc.CrearEntrada(ctx, dto.CrearEntradaRequest{
		ProveedorID: f.proveedorID.String(),
		Items:       []dto.ItemEntradaRequest{itemEntrada(f.frijolID, "1", "")},
	})
	require.NoError(t, err)
	segunda, err := f.svc.CrearEntrada(ctx, dto.CrearEntradaRequest{
		ProveedorID: f.proveedorID.String(),
		Items:       []dto.ItemEntradaRequest{itemEntrada(f.frijolID, "1", "")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, primera.Numero)
	assert.Equal(t, 2, segunda.Numero)
}
