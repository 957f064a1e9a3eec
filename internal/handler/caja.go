package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/NicolasMR761/InventarioJH/internal/apierror"
	"github.com/NicolasMR761/InventarioJH/internal/dto"
	"github.com/NicolasMR761/InventarioJH/internal/model"
	"github.com/NicolasMR761/InventarioJH/internal/service"

	"github.com/gin-gonic/gin"
)

type CajaHandler struct{ svc service.CajaService }

func NewCajaHandler(svc service.CajaService) *CajaHandler { return &CajaHandler{svc: svc} }

func cierreResponse(c *model.CierreCaja) dto.CierreResponse {
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

// parseFecha reads a YYYY-MM-DD query param; empty means today.
func parseFecha(c *gin.Context, param string) (time.Time, bool) {
	raw := c.Query(param)
	if raw == "" {
		return time.Now(), true
	}
	d, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Fecha invalida, use YYYY-MM-DD"))
		return time.Time{}, false
	}
	return d, true
}

// RegistrarMovimiento godoc
// @Summary      Registrar movimiento manual de caja
// @Description  Registra un INGRESO o EGRESO manual (apertura, retiro, gasto). Rechaza movimientos en días cerrados.
// @Tags         caja
// @Accept       json
// @Produce      json
// @Param        body body dto.MovimientoManualRequest true "Movimiento"
// @Success      201  {object} dto.MovimientoResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/caja/movimientos [post]
func (h *CajaHandler) RegistrarMovimiento(c *gin.Context) {
	var req dto.MovimientoManualRequest
	if !bindAndValidate(c, &req) {
		return
	}
	mov, err := h.svc.RegistrarMovimiento(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":          mov.ID.String(),
		"tipo":        mov.Tipo,
		"concepto":    mov.Concepto,
		"monto":       mov.Monto,
		"fecha":       mov.Fecha.Format(time.RFC3339),
		"referencia":  mov.Referencia,
		"observacion": mov.Observacion,
	})
}

// ListarMovimientos godoc
// @Summary      Listar movimientos de caja
// @Description  Lista movimientos filtrados por rango de fechas, tipo y texto libre.
// @Tags         caja
// @Produce      json
// @Param        fecha_desde query string false "YYYY-MM-DD"
// @Param        fecha_hasta query string false "YYYY-MM-DD"
// @Param        tipo        query string false "INGRESO | EGRESO"
// @Param        q           query string false "Busca en concepto, referencia y observación"
// @Param        limit       query int    false "Máximo de registros (default 300)"
// @Success      200 {array}  dto.MovimientoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/caja/movimientos [get]
func (h *CajaHandler) ListarMovimientos(c *gin.Context) {
	var filter dto.MovimientoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	movs, err := h.svc.ListarMovimientos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movs)
}

// Saldo godoc
// @Summary      Saldo de caja
// @Description  Saldo acumulado de toda la historia, o hasta el fin del día indicado.
// @Tags         caja
// @Produce      json
// @Param        hasta query string false "YYYY-MM-DD (inclusive)"
// @Success      200 {object} dto.SaldoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/caja/saldo [get]
func (h *CajaHandler) Saldo(c *gin.Context) {
	resp := dto.SaldoResponse{}

	var hasta *time.Time
	if raw := c.Query("hasta"); raw != "" {
		d, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Fecha invalida, use YYYY-MM-DD"))
			return
		}
		fin := d.AddDate(0, 0, 1).Add(-time.Nanosecond)
		hasta = &fin
		resp.Hasta = &raw
	}

	saldo, err := h.svc.Saldo(c.Request.Context(), hasta)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Saldo = saldo
	c.JSON(http.StatusOK, resp)
}

// ResumenDia godoc
// @Summary      Resumen de un día
// @Description  Ingresos, egresos, saldo inicial y final del día (default hoy).
// @Tags         caja
// @Produce      json
// @Param        fecha query string false "YYYY-MM-DD (default hoy)"
// @Success      200 {object} dto.ResumenCajaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/caja/resumen [get]
func (h *CajaHandler) ResumenDia(c *gin.Context) {
	dia, ok := parseFecha(c, "fecha")
	if !ok {
		return
	}
	resumen, err := h.svc.ResumenDia(c.Request.Context(), dia)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumen)
}

// ResumenRango godoc
// @Summary      Resumen de un rango de días
// @Description  Totales entre dos fechas inclusive. Acepta los límites en cualquier orden.
// @Tags         caja
// @Produce      json
// @Param        desde query string true "YYYY-MM-DD"
// @Param        hasta query string true "YYYY-MM-DD"
// @Success      200 {object} dto.ResumenCajaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/caja/resumen-rango [get]
func (h *CajaHandler) ResumenRango(c *gin.Context) {
	desde, ok := parseFecha(c, "desde")
	if !ok {
		return
	}
	hasta, ok := parseFecha(c, "hasta")
	if !ok {
		return
	}
	resumen, err := h.svc.ResumenRango(c.Request.Context(), desde, hasta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumen)
}

// EstadoDia godoc
// @Summary      Estado de cierre de un día
// @Description  Indica si el día está cerrado y devuelve el cierre si existe.
// @Tags         caja
// @Produce      json
// @Param        fecha query string false "YYYY-MM-DD (default hoy)"
// @Success      200 {object} dto.EstadoDiaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/caja/estado [get]
func (h *CajaHandler) EstadoDia(c *gin.Context) {
	dia, ok := parseFecha(c, "fecha")
	if !ok {
		return
	}
	cierre, err := h.svc.EstaCerrado(c.Request.Context(), dia)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := dto.EstadoDiaResponse{
		Fecha:   dia.Format("2006-01-02"),
		Cerrado: cierre != nil,
	}
	if cierre != nil {
		cr := cierreResponse(cierre)
		resp.Cierre = &cr
	}
	c.JSON(http.StatusOK, resp)
}

// CerrarDia godoc
// @Summary      Cerrar el día
// @Description  Congela los totales del día y bloquea nuevos movimientos. No es idempotente: cerrar dos veces es un 409.
// @Tags         caja
// @Accept       json
// @Produce      json
// @Param        body body dto.CerrarDiaRequest false "Fecha a cerrar (default hoy)"
// @Success      201 {object} dto.CierreResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/caja/cerrar [post]
func (h *CajaHandler) CerrarDia(c *gin.Context) {
	var req dto.CerrarDiaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	dia := time.Now()
	if req.Fecha != "" {
		d, err := time.ParseInLocation("2006-01-02", req.Fecha, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Fecha invalida, use YYYY-MM-DD"))
			return
		}
		dia = d
	}
	cierre, err := h.svc.CerrarDia(c.Request.Context(), dia, req.CerradoPor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cierreResponse(cierre))
}

// ListarCierres godoc
// @Summary      Listar cierres de caja
// @Tags         caja
// @Produce      json
// @Param        limit query int false "Máximo de registros (default 90)"
// @Success      200 {array} dto.CierreResponse
// @Router       /v1/caja/cierres [get]
func (h *CajaHandler) ListarCierres(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "90"))
	cierres, err := h.svc.ListarCierres(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cierres)
}
