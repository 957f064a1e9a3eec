package handler

import (
	"net/http"

	"github.com/NicolasMR761/InventarioJH/internal/apierror"
	"github.com/NicolasMR761/InventarioJH/internal/dto"
	"github.com/NicolasMR761/InventarioJH/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EntradasHandler struct{ svc service.EntradaService }

func NewEntradasHandler(svc service.EntradaService) *EntradasHandler {
	return &EntradasHandler{svc: svc}
}

// CrearEntrada godoc
// @Summary      Registrar entrada de mercadería
// @Description  Crea una entrada ACID: suma stock por línea y, si está pagada, registra el EGRESO en caja.
// @Tags         entradas
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearEntradaRequest true "Detalle de la entrada"
// @Success      201  {object} dto.EntradaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/entradas [post]
func (h *EntradasHandler) CrearEntrada(c *gin.Context) {
	var req dto.CrearEntradaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearEntrada(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObtenerEntrada godoc
// @Summary      Obtener entrada por ID
// @Tags         entradas
// @Produce      json
// @Param        id path string true "UUID de la entrada"
// @Success      200 {object} dto.EntradaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/entradas/{id} [get]
func (h *EntradasHandler) ObtenerEntrada(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerEntrada(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarEntradas godoc
// @Summary      Listar entradas
// @Description  Retorna lista paginada de entradas filtrada por proveedor y fecha.
// @Tags         entradas
// @Produce      json
// @Param        proveedor_id query string false "UUID del proveedor"
// @Param        fecha        query string false "Fecha YYYY-MM-DD"
// @Param        page         query int    false "Página (default 1)"
// @Param        limit        query int    false "Registros por página (default 50)"
// @Success      200 {object} dto.EntradaListResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/entradas [get]
func (h *EntradasHandler) ListarEntradas(c *gin.Context) {
	var filter dto.EntradaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListarEntradas(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
