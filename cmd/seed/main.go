// seed carga datos de demostración: catálogo de productos, clientes, cajeros, inventario y ventas.
//
// Uso: go run ./cmd/seed [-catalogo productos.csv] [-encoding latin1]
//
// El catálogo es un CSV con cabecera nombre,descripcion,precio,categoria,codigo_barras.
// Las hojas exportadas desde Excel en español suelen venir en Windows-1252 o ISO-8859-1;
// -encoding las convierte a UTF-8. Los productos cuyo código de barras ya existe se omiten,
// así que el seed puede ejecutarse varias veces.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/infrastructure/store"
	"github.com/jhoicas/supermercado-api/pkg/config"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

var catalogoDemo = []dto.ProductoDTO{
	{Nombre: "Leche entera 1L", Descripcion: "Leche pasteurizada", Precio: decimal.RequireFromString("1.20"), Categoria: "Lácteos", CodigoBarras: "7701001000011"},
	{Nombre: "Pan tajado", Descripcion: "Pan de molde 500g", Precio: decimal.RequireFromString("2.35"), Categoria: "Panadería", CodigoBarras: "7701001000028"},
	{Nombre: "Arroz 1kg", Descripcion: "Arroz blanco", Precio: decimal.RequireFromString("1.80"), Categoria: "Granos", CodigoBarras: "7701001000035"},
	{Nombre: "Café molido 250g", Descripcion: "Tostión media", Precio: decimal.RequireFromString("4.90"), Categoria: "Despensa", CodigoBarras: "7701001000042"},
	{Nombre: "Huevos x12", Descripcion: "Huevo AA", Precio: decimal.RequireFromString("3.10"), Categoria: "Frescos", CodigoBarras: "7701001000059"},
}

func main() {
	catalogoPath := flag.String("catalogo", "", "CSV con el catálogo de productos (opcional)")
	encoding := flag.String("encoding", "utf-8", "codificación del CSV: utf-8, latin1, windows-1252")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Service: "seed"})

	catalogo := catalogoDemo
	if *catalogoPath != "" {
		f, err := os.Open(*catalogoPath)
		if err != nil {
			log.Fatal().Err(err).Str("file", *catalogoPath).Msg("abrir catálogo")
		}
		catalogo, err = readCatalog(f, *encoding)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Str("file", *catalogoPath).Msg("leer catálogo")
		}
	}

	ctx := context.Background()
	repos, err := store.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacenamiento")
	}
	defer repos.Close()

	s := seeder{
		productos:  usecase.NewProductoUseCase(repos.Productos),
		clientes:   usecase.NewClienteUseCase(repos.Clientes),
		cajeros:    usecase.NewCajeroUseCase(repos.Cajeros),
		inventario: usecase.NewInventarioUseCase(repos.Inventario),
		ventas:     usecase.NewVentaUseCase(repos.Ventas, nil),
	}
	n, err := s.run(ctx, catalogo)
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	log.Info().Int("productos_nuevos", n).Msg("seed completado")
}

type seeder struct {
	productos  *usecase.ProductoUseCase
	clientes   *usecase.ClienteUseCase
	cajeros    *usecase.CajeroUseCase
	inventario *usecase.InventarioUseCase
	ventas     *usecase.VentaUseCase
}

// run crea los productos nuevos del catálogo con su registro de inventario y, si hubo
// productos nuevos, clientes, cajeros y una venta de ejemplo. Devuelve cuántos productos creó.
func (s seeder) run(ctx context.Context, catalogo []dto.ProductoDTO) (int, error) {
	var nuevos []*dto.ProductoDTO
	for i := range catalogo {
		p := catalogo[i]
		if p.CodigoBarras != "" {
			existing, err := s.productos.GetByCodigoBarras(ctx, p.CodigoBarras)
			if err != nil {
				return 0, err
			}
			if existing != nil {
				continue
			}
		}
		created, err := s.productos.Create(ctx, &p)
		if err != nil {
			return 0, fmt.Errorf("producto %q: %w", p.Nombre, err)
		}
		nuevos = append(nuevos, created)

		hoy := time.Now().UTC().Truncate(24 * time.Hour)
		_, err = s.inventario.Create(ctx, &entity.Inventario{
			Producto:              &entity.Producto{ID: created.ID},
			Cantidad:              20 + 5*i,
			StockMinimo:           10,
			StockMaximo:           100,
			FechaUltimaReposicion: &hoy,
			Ubicacion:             fmt.Sprintf("Pasillo %d", i%4+1),
		})
		if err != nil {
			return 0, fmt.Errorf("inventario de %q: %w", p.Nombre, err)
		}
	}
	if len(nuevos) == 0 {
		return 0, nil
	}

	for _, c := range []dto.ClienteDTO{
		{Nombre: "Ana García", Email: "ana.garcia@example.com", Telefono: "3001234567", Direccion: "Calle 10 #5-20"},
		{Nombre: "Pedro Martínez", Email: "pedro.martinez@example.com", Telefono: "3109876543", Direccion: "Carrera 7 #45-10"},
	} {
		existing, err := s.clientes.GetByEmail(ctx, c.Email)
		if err != nil {
			return 0, err
		}
		if existing == nil {
			if _, err := s.clientes.Create(ctx, &c); err != nil {
				return 0, fmt.Errorf("cliente %q: %w", c.Nombre, err)
			}
		}
	}

	for _, c := range []dto.CajeroDTO{
		{Nombre: "Laura Gómez", Codigo: "CAJ-001", Turno: entity.TurnoManana},
		{Nombre: "Diego Ruiz", Codigo: "CAJ-002", Turno: entity.TurnoTarde},
		{Nombre: "Marta Díaz", Codigo: "CAJ-003", Turno: entity.TurnoNoche},
	} {
		existing, err := s.cajeros.GetByCodigo(ctx, c.Codigo)
		if err != nil {
			return 0, err
		}
		if existing == nil {
			if _, err := s.cajeros.Create(ctx, &c); err != nil {
				return 0, fmt.Errorf("cajero %q: %w", c.Nombre, err)
			}
		}
	}

	venta := dto.VentaDTO{FechaVenta: dto.FechaHora{Time: time.Now().UTC()}, NombreCliente: "Ana García", MetodoPago: "Efectivo"}
	total := decimal.Zero
	for _, p := range nuevos[:min(2, len(nuevos))] {
		subtotal := p.Precio.Mul(decimal.NewFromInt(2))
		venta.Items = append(venta.Items, dto.ItemVentaDTO{
			Producto: p, Cantidad: 2, PrecioUnitario: p.Precio, Subtotal: subtotal,
		})
		total = total.Add(subtotal)
	}
	venta.MontoTotal = total
	if _, err := s.ventas.Create(ctx, &venta); err != nil {
		return 0, fmt.Errorf("venta de ejemplo: %w", err)
	}
	return len(nuevos), nil
}

// readCatalog lee el CSV del catálogo convirtiéndolo a UTF-8 según encoding.
func readCatalog(r io.Reader, encoding string) ([]dto.ProductoDTO, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
	case "latin1", "iso-8859-1", "iso8859-1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	case "windows-1252", "cp1252":
		r = transform.NewReader(r, charmap.Windows1252.NewDecoder())
	default:
		return nil, fmt.Errorf("codificación no soportada: %q", encoding)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 5
	cr.TrimLeadingSpace = true
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catálogo vacío")
		}
		return nil, fmt.Errorf("cabecera: %w", err)
	}

	var out []dto.ProductoDTO
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		precio, err := decimal.NewFromString(strings.Replace(rec[2], ",", ".", 1))
		if err != nil {
			return nil, fmt.Errorf("línea %d: precio %q inválido", line, rec[2])
		}
		out = append(out, dto.ProductoDTO{
			Nombre:       rec[0],
			Descripcion:  rec[1],
			Precio:       precio,
			Categoria:    rec[3],
			CodigoBarras: rec[4],
		})
	}
	return out, nil
}
