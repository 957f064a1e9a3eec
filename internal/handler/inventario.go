package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/NicolasMR761/InventarioJH/internal/apierror"
	"github.com/NicolasMR761/InventarioJH/internal/repository"
	"github.com/NicolasMR761/InventarioJH/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventarioHandler struct{ svc service.InventarioService }

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// ListarMovimientos godoc
// @Summary      Listar movimientos de stock
// @Description  Trazabilidad completa: cada entrada, venta y anulación deja un registro.
// @Tags         inventario
// @Produce      json
// @Param        producto_id query string false "UUID del producto"
// @Param        tipo        query string false "entrada | venta | anulacion"
// @Param        page        query int    false "Página (default 1)"
// @Param        limit       query int    false "Registros por página (default 100)"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} apierror.APIError
// @Router       /v1/inventario/movimientos [get]
func (h *InventarioHandler) ListarMovimientos(c *gin.Context) {
	filter := repository.MovimientoStockFilter{
		Tipo: c.Query("tipo"),
	}
	if raw := c.Query("producto_id"); raw != "" {
		pid, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("producto_id invalido"))
			return
		}
		filter.ProductoID = &pid
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))

	movs, total, err := h.svc.ListarMovimientos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([]gin.H, 0, len(movs))
	for i := range movs {
		m := &movs[i]
		nombre := ""
		if m.Producto != nil {
			nombre = m.Producto.Nombre
		}
		data = append(data, gin.H{
			"id":             m.ID.String(),
			"producto_id":    m.ProductoID.String(),
			"producto":       nombre,
			"tipo":           m.Tipo,
			"cantidad":       m.Cantidad,
			"stock_anterior": m.StockAnterior,
			"stock_nuevo":    m.StockNuevo,
			"motivo":         m.Motivo,
			"referencia_id":  m.ReferenciaID,
			"created_at":     m.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "total": total})
}

// ObtenerAlertas godoc
// @Summary      Alertas de stock bajo
// @Description  Productos activos con stock actual ≤ stock mínimo configurado.
// @Tags         inventario
// @Produce      json
// @Success      200 {array} dto.ProductoResponse
// @Router       /v1/inventario/alertas [get]
func (h *InventarioHandler) ObtenerAlertas(c *gin.Context) {
	alertas, err := h.svc.AlertasStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alertas)
}
