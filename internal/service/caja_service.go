package service

import (
	"context"
	"strings"
	"time"

	"github.com/NicolasMR761/InventarioJH/internal/dto"
	"github.com/NicolasMR761/InventarioJH/internal/model"
	"github.com/NicolasMR761/InventarioJH/internal/repository"
	"github.com/NicolasMR761/InventarioJH/internal/worker"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MovimientoParams is the input to the single write path of the ledger.
// Tipo accepts any casing/padding of INGRESO / EGRESO; a zero Fecha means now.
type MovimientoParams struct {
	Tipo        string
	Concepto    string
	Monto       decimal.Decimal
	Fecha       time.Time
	Referencia  *string
	Observacion *string
}

// CajaService owns the daily cash ledger: balance, day summaries and
// end-of-day closures. RegistrarMovimientoTx is the ONLY way any part of the
// system inserts a MovimientoCaja — ventas and entradas go through it too, so
// the closed-day rule and the normalization rules hold for every entry.
type CajaService interface {
	RegistrarMovimiento(ctx context.Context, req dto.MovimientoManualRequest) (*model.MovimientoCaja, error)
	RegistrarMovimientoTx(tx *gorm.DB, p MovimientoParams) (*model.MovimientoCaja, error)
	ListarMovimientos(ctx context.Context, filter dto.MovimientoFilter) ([]dto.MovimientoResponse, error)

	Saldo(ctx context.Context, hasta *time.Time) (decimal.Decimal, error)
	ResumenDia(ctx context.Context, dia time.Time) (*dto.ResumenCajaResponse, error)
	ResumenRango(ctx context.Context, desde, hasta time.Time) (*dto.ResumenCajaResponse, error)

	EstaCerrado(ctx context.Context, dia time.Time) (*model.CierreCaja, error)
	CerrarDia(ctx context.Context, dia time.Time, cerradoPor *string) (*model.CierreCaja, error)
	ListarCierres(ctx context.Context, limit int) ([]dto.CierreResponse, error)
}

type cajaService struct {
	repo       repository.CajaRepository
	dispatcher *worker.Dispatcher
}

func NewCajaService(repo repository.CajaRepository, dispatcher *worker.Dispatcher) CajaService {
	return &cajaService{repo: repo, dispatcher: dispatcher}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Day boundaries ────────────────────────────────────────────────────────────

// inicioDia returns 00:00:00.000000000 of t's calendar day, in t's location.
func inicioDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// finDia returns the last representable instant of t's calendar day.
func finDia(t time.Time) time.Time {
	return inicioDia(t).Add(24*time.Hour - time.Nanosecond)
}

// ── Write gateway ─────────────────────────────────────────────────────────────

// RegistrarMovimientoTx validates, normalizes and inserts a ledger movement
// on the caller's transaction. The closed-day check runs on the same tx, so a
// sale or purchase whose ledger entry lands in a closed day rolls back whole.
func (s *cajaService) RegistrarMovimientoTx(tx *gorm.DB, p MovimientoParams) (*model.MovimientoCaja, error) {
	tipo := strings.ToUpper(strings.TrimSpace(p.Tipo))
	if tipo != model.TipoIngreso && tipo != model.TipoEgreso {
		return nil, ErrTipoInvalido
	}
	if !p.Monto.IsPositive() {
		return nil, ErrMontoInvalido
	}

	fecha := p.Fecha
	if fecha.IsZero() {
		fecha = time.Now()
	}

	cierre, err := s.repo.FindCierreTx(tx, fecha)
	if err != nil {
		return nil, err
	}
	if cierre != nil {
		return nil, &DiaCerradoError{Dia: fecha}
	}

	concepto := strings.TrimSpace(p.Concepto)
	if concepto == "" {
		concepto = "Movimiento " + tipo
	}

	mov := &model.MovimientoCaja{
		Tipo:        tipo,
		Concepto:    concepto,
		Monto:       p.Monto,
		Fecha:       fecha,
		Referencia:  trimToNil(p.Referencia),
		Observacion: trimToNil(p.Observacion),
	}
	if err := s.repo.CreateMovimientoTx(tx, mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// RegistrarMovimiento registers a manual INGRESO / EGRESO in its own
// transaction. Used by the caja endpoints for openings, withdrawals, expenses.
func (s *cajaService) RegistrarMovimiento(ctx context.Context, req dto.MovimientoManualRequest) (*model.MovimientoCaja, error) {
	params := MovimientoParams{
		Tipo:        req.Tipo,
		Concepto:    req.Concepto,
		Monto:       req.Monto,
		Referencia:  strPtrOrNil(req.Referencia),
		Observacion: strPtrOrNil(req.Observacion),
	}
	if req.Fecha != nil {
		params.Fecha = *req.Fecha
	}

	var mov *model.MovimientoCaja
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var txErr error
		mov, txErr = s.RegistrarMovimientoTx(tx, params)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

func (s *cajaService) ListarMovimientos(ctx context.Context, filter dto.MovimientoFilter) ([]dto.MovimientoResponse, error) {
	repoFilter := repository.MovimientoFilter{
		Tipo:  strings.ToUpper(strings.TrimSpace(filter.Tipo)),
		Q:     filter.Q,
		Limit: filter.Limit,
	}
	if filter.FechaDesde != "" {
		d, err := time.ParseInLocation("2006-01-02", filter.FechaDesde, time.Local)
		if err != nil {
			return nil, err
		}
		desde := inicioDia(d)
		repoFilter.FechaDesde = &desde
	}
	if filter.FechaHasta != "" {
		d, err := time.ParseInLocation("2006-01-02", filter.FechaHasta, time.Local)
		if err != nil {
			return nil, err
		}
		hasta := finDia(d)
		repoFilter.FechaHasta = &hasta
	}

	movs, err := s.repo.ListMovimientos(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, 0, len(movs))
	for i := range movs {
		out = append(out, movimientoToResponse(&movs[i]))
	}
	return out, nil
}

// ── Balance & summaries ───────────────────────────────────────────────────────

// Saldo returns SUM(ingresos) - SUM(egresos) up to and including hasta
// (nil = all history). An empty ledger has saldo 0.
func (s *cajaService) Saldo(ctx context.Context, hasta *time.Time) (decimal.Decimal, error) {
	ingresos, err := s.repo.SumMovimientos(ctx, model.TipoIngreso, nil, hasta)
	if err != nil {
		return decimal.Zero, err
	}
	egresos, err := s.repo.SumMovimientos(ctx, model.TipoEgreso, nil, hasta)
	if err != nil {
		return decimal.Zero, err
	}
	return ingresos.Sub(egresos), nil
}

func (s *cajaService) ResumenDia(ctx context.Context, dia time.Time) (*dto.ResumenCajaResponse, error) {
	return s.resumen(ctx, dia, dia)
}

// ResumenRango tolerates reversed bounds: callers may pass the dates in
// either order.
func (s *cajaService) ResumenRango(ctx context.Context, desde, hasta time.Time) (*dto.ResumenCajaResponse, error) {
	if hasta.Before(desde) {
		desde, hasta = hasta, desde
	}
	return s.resumen(ctx, desde, hasta)
}

func (s *cajaService) resumen(ctx context.Context, desde, hasta time.Time) (*dto.ResumenCajaResponse, error) {
	ini := inicioDia(desde)
	fin := finDia(hasta)

	ingresos, err := s.repo.SumMovimientos(ctx, model.TipoIngreso, &ini, &fin)
	if err != nil {
		return nil, err
	}
	egresos, err := s.repo.SumMovimientos(ctx, model.TipoEgreso, &ini, &fin)
	if err != nil {
		return nil, err
	}

	// Opening balance = everything strictly before the period starts.
	apertura := ini.Add(-time.Nanosecond)
	saldoInicial, err := s.Saldo(ctx, &apertura)
	if err != nil {
		return nil, err
	}

	return &dto.ResumenCajaResponse{
		Desde:        ini.Format("2006-01-02"),
		Hasta:        hasta.Format("2006-01-02"),
		Ingresos:     ingresos,
		Egresos:      egresos,
		SaldoInicial: saldoInicial,
		SaldoFinal:   saldoInicial.Add(ingresos).Sub(egresos),
	}, nil
}

// ── Cierres ───────────────────────────────────────────────────────────────────

// EstaCerrado returns the cierre for dia's calendar day, or nil when open.
func (s *cajaService) EstaCerrado(ctx context.Context, dia time.Time) (*model.CierreCaja, error) {
	return s.repo.FindCierre(ctx, dia)
}

// CerrarDia snapshots the day's totals and seals it. Not idempotent: closing
// an already-closed day returns DiaYaCerradoError. A day with no movements
// still closes, with zero totals.
func (s *cajaService) CerrarDia(ctx context.Context, dia time.Time, cerradoPor *string) (*model.CierreCaja, error) {
	resumen, err := s.ResumenDia(ctx, dia)
	if err != nil {
		return nil, err
	}

	cierre := &model.CierreCaja{
		Fecha:         inicioDia(dia),
		TotalIngresos: resumen.Ingresos,
		TotalEgresos:  resumen.Egresos,
		SaldoInicial:  resumen.SaldoInicial,
		SaldoFinal:    resumen.SaldoFinal,
		CerradoPor:    cerradoPor,
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		existing, txErr := s.repo.FindCierreTx(tx, dia)
		if txErr != nil {
			return txErr
		}
		if existing != nil {
			return &DiaYaCerradoError{Dia: dia}
		}
		return s.repo.CreateCierreTx(tx, cierre)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("fecha", cierre.Fecha.Format("2006-01-02")).
		Str("saldo_final", cierre.SaldoFinal.String()).
		Msg("día cerrado")

	// Best effort: the closure already committed, the report is async.
	if s.dispatcher != nil {
		payload := worker.ReporteCierreJobPayload{Fecha: cierre.Fecha.Format("2006-01-02")}
		if err := s.dispatcher.EnqueueReporteCierre(ctx, payload); err != nil {
			log.Warn().Err(err).Msg("no se pudo encolar el reporte de cierre")
		}
	}

	return cierre, nil
}

func (s *cajaService) ListarCierres(ctx context.Context, limit int) ([]dto.CierreResponse, error) {
	cierres, err := s.repo.ListCierres(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CierreResponse, 0, len(cierres))
	for i := range cierres {
		out = append(out, cierreToResponse(&cierres[i]))
	}
	return out, nil
}

// ── Mappers & helpers ─────────────────────────────────────────────────────────

func movimientoToResponse(m *model.MovimientoCaja) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:          m.ID.String(),
		Tipo:        m.Tipo,
		Concepto:    m.Concepto,
		Monto:       m.Monto,
		Fecha:       m.Fecha.Format(time.RFC3339),
		Referencia:  m.Referencia,
		Observacion: m.Observacion,
	}
}

func cierreToResponse(c *model.CierreCaja) dto.CierreResponse {
	return dto.CierreResponse{
		ID:            c.ID.String(),
		Fecha:         c.Fecha.Format("2006-01-02"),
		TotalIngresos: c.TotalIngresos,
		TotalEgresos:  c.TotalEgresos,
		SaldoInicial:  c.SaldoInicial,
		SaldoFinal:    c.SaldoFinal,
		CerradoPor:    c.CerradoPor,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
	}
}

// trimToNil trims *s and drops it entirely when blank.
func trimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func strPtrOrNil(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}
