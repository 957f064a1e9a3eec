package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/NicolasMR761/InventarioJH/internal/apierror"
	"github.com/NicolasMR761/InventarioJH/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps service errors to HTTP statuses. Business conflicts
// (closed day, double close, double void, insufficient stock) are 409 so the
// client can distinguish them from plain bad input.
func respondError(c *gin.Context, err error) {
	var (
		noEncontrado *service.NoEncontradoError
		diaCerrado   *service.DiaCerradoError
		diaYaCerrado *service.DiaYaCerradoError
		yaAnulada    *service.VentaYaAnuladaError
		sinStock     *service.StockInsuficienteError
		inactivo     *service.InactivoError
		malaCantidad *service.CantidadInvalidaError
	)

	switch {
	case errors.As(err, &noEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.As(err, &diaCerrado),
		errors.As(err, &diaYaCerrado),
		errors.As(err, &yaAnulada),
		errors.As(err, &sinStock):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.As(err, &inactivo),
		errors.As(err, &malaCantidad),
		errors.Is(err, service.ErrTipoInvalido),
		errors.Is(err, service.ErrMontoInvalido),
		errors.Is(err, service.ErrSinItems):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unexpected service error")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}
