package handler

import (
	"net/http"

	"github.com/NicolasMR761/InventarioJH/internal/apierror"
	"github.com/NicolasMR761/InventarioJH/internal/dto"
	"github.com/NicolasMR761/InventarioJH/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProveedoresHandler struct{ svc service.ProveedorService }

func NewProveedoresHandler(svc service.ProveedorService) *ProveedoresHandler {
	return &ProveedoresHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear proveedor
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearProveedorRequest true "Proveedor"
// @Success      201  {object} dto.ProveedorResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/proveedores [post]
func (h *ProveedoresHandler) Crear(c *gin.Context) {
	var req dto.CrearProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObtenerPorID godoc
// @Summary      Obtener proveedor por ID
// @Tags         proveedores
// @Produce      json
// @Param        id path string true "UUID del proveedor"
// @Success      200 {object} dto.ProveedorResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/proveedores/{id} [get]
func (h *ProveedoresHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary      Listar proveedores
// @Tags         proveedores
// @Produce      json
// @Param        q                 query string false "Busca en nombre y NIT"
// @Param        incluir_inactivos query bool   false "Incluye proveedores desactivados"
// @Success      200 {array} dto.ProveedorResponse
// @Router       /v1/proveedores [get]
func (h *ProveedoresHandler) Listar(c *gin.Context) {
	texto := c.Query("q")
	incluirInactivos := c.Query("incluir_inactivos") == "true"
	resp, err := h.svc.Listar(c.Request.Context(), texto, incluirInactivos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar proveedor
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        id   path string                    true "UUID del proveedor"
// @Param        body body dto.CrearProveedorRequest true "Campos a modificar"
// @Success      200  {object} dto.ProveedorResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/proveedores/{id} [put]
func (h *ProveedoresHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.CrearProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desactivar godoc
// @Summary      Desactivar proveedor (borrado lógico)
// @Tags         proveedores
// @Param        id path string true "UUID del proveedor"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/proveedores/{id} [delete]
func (h *ProveedoresHandler) Desactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reactivar godoc
// @Summary      Reactivar proveedor
// @Tags         proveedores
// @Param        id path string true "UUID del proveedor"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/proveedores/{id}/reactivar [patch]
func (h *ProveedoresHandler) Reactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Reactivar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
