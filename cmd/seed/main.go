package main

// seed creates a handful of productos and proveedores for local development.
// Safe to re-run: existing rows (matched by nombre) are left untouched.

import (
	"context"
	"os"
	"time"

	"github.com/NicolasMR761/InventarioJH/internal/config"
	"github.com/NicolasMR761/InventarioJH/internal/infra"
	"github.com/NicolasMR761/InventarioJH/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	ctx := context.Background()

	proveedores := []model.Proveedor{
		{Nombre: "Distribuidora El Trigal", NIT: ptr("900123456-7"), Telefono: ptr("3104567890"), Activo: true},
		{Nombre: "Avícola San Jorge", NIT: ptr("901987654-3"), Activo: true},
	}
	for i := range proveedores {
		if err := upsertProveedor(ctx, db, &proveedores[i]); err != nil {
			log.Fatal().Err(err).Str("nombre", proveedores[i].Nombre).Msg("seed proveedor")
		}
	}

	productos := []model.Producto{
		{Nombre: "Arroz", Unidad: "kg", PrecioCompra: dec("3200"), PrecioVenta: dec("4200"), StockMinimo: dec("10"), Activo: true},
		{Nombre: "Frijol", Unidad: "kg", PrecioCompra: dec("8500"), PrecioVenta: dec("10500"), StockMinimo: dec("5"), Activo: true},
		{Nombre: "Huevos AA", Unidad: "unidad", PrecioCompra: dec("450"), PrecioVenta: dec("600"), StockMinimo: dec("30"), Activo: true},
		{Nombre: "Panela", Unidad: "unidad", PrecioCompra: dec("2800"), PrecioVenta: dec("3500"), Activo: true},
	}
	for i := range productos {
		if err := upsertProducto(ctx, db, &productos[i]); err != nil {
			log.Fatal().Err(err).Str("nombre", productos[i].Nombre).Msg("seed producto")
		}
	}

	log.Info().
		Int("proveedores", len(proveedores)).
		Int("productos", len(productos)).
		Msg("seed completed")
}

func upsertProveedor(ctx context.Context, db *gorm.DB, p *model.Proveedor) error {
	var existing model.Proveedor
	err := db.WithContext(ctx).Where("nombre = ?", p.Nombre).First(&existing).Error
	if err == nil {
		log.Info().Str("nombre", p.Nombre).Msg("proveedor already exists — skipping")
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return db.WithContext(ctx).Create(p).Error
}

func upsertProducto(ctx context.Context, db *gorm.DB, p *model.Producto) error {
	var existing model.Producto
	err := db.WithContext(ctx).Where("nombre = ?", p.Nombre).First(&existing).Error
	if err == nil {
		log.Info().Str("nombre", p.Nombre).Msg("producto already exists — skipping")
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return db.WithContext(ctx).Create(p).Error
}

func ptr(s string) *string { return &s }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
