package router

import (
	"time"

	"github.com/NicolasMR761/InventarioJH/internal/config"
	"github.com/NicolasMR761/InventarioJH/internal/handler"
	"github.com/NicolasMR761/InventarioJH/internal/infra"
	"github.com/NicolasMR761/InventarioJH/internal/middleware"
	"github.com/NicolasMR761/InventarioJH/internal/repository"
	"github.com/NicolasMR761/InventarioJH/internal/service"
	"github.com/NicolasMR761/InventarioJH/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, smtpCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productoRepo := repository.NewProductoRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	entradaRepo := repository.NewEntradaRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	cajaRepo := repository.NewCajaRepository(db)
	movimientoStockRepo := repository.NewMovimientoStockRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	productoSvc := service.NewProductoService(productoRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	inventarioSvc := service.NewInventarioService(movimientoStockRepo, productoRepo)
	cajaSvc := service.NewCajaService(cajaRepo, dispatcher)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, inventarioSvc, cajaSvc, dispatcher)
	entradaSvc := service.NewEntradaService(entradaRepo, productoRepo, proveedorRepo, inventarioSvc, cajaSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productosH := handler.NewProductosHandler(productoSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	entradasH := handler.NewEntradasHandler(entradaSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	cajaH := handler.NewCajaHandler(cajaSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb, smtpCB))

	v1 := r.Group("/v1")
	{
		prods := v1.Group("/productos")
		{
			prods.POST("", productosH.Crear)
			prods.GET("", productosH.Listar)
			prods.GET("/:id", productosH.ObtenerPorID)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Desactivar)
			prods.PATCH("/:id/reactivar", productosH.Reactivar)
		}

		prov := v1.Group("/proveedores")
		{
			prov.POST("", proveedoresH.Crear)
			prov.GET("", proveedoresH.Listar)
			prov.GET("/:id", proveedoresH.ObtenerPorID)
			prov.PUT("/:id", proveedoresH.Actualizar)
			prov.DELETE("/:id", proveedoresH.Desactivar)
			prov.PATCH("/:id/reactivar", proveedoresH.Reactivar)
		}

		entradas := v1.Group("/entradas")
		{
			entradas.POST("", entradasH.CrearEntrada)
			entradas.GET("", entradasH.ListarEntradas)
			entradas.GET("/:id", entradasH.ObtenerEntrada)
		}

		ventas := v1.Group("/ventas")
		{
			ventas.POST("", ventasH.RegistrarVenta)
			ventas.GET("", ventasH.ListarVentas)
			ventas.GET("/:id", ventasH.ObtenerVenta)
			ventas.DELETE("/:id", ventasH.AnularVenta)
		}

		caja := v1.Group("/caja")
		{
			caja.POST("/movimientos", cajaH.RegistrarMovimiento)
			caja.GET("/movimientos", cajaH.ListarMovimientos)
			caja.GET("/saldo", cajaH.Saldo)
			caja.GET("/resumen", cajaH.ResumenDia)
			caja.GET("/resumen-rango", cajaH.ResumenRango)
			caja.GET("/estado", cajaH.EstadoDia)
			caja.POST("/cerrar", cajaH.CerrarDia)
			caja.GET("/cierres", cajaH.ListarCierres)
		}

		inv := v1.Group("/inventario")
		{
			inv.GET("/movimientos", inventarioH.ListarMovimientos)
			inv.GET("/alertas", inventarioH.ObtenerAlertas)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
