// seed_items importa el catálogo inicial desde un CSV "name,unit" (con o sin cabecera).
// Las hojas exportadas desde Excel suelen venir en ISO-8859-1: si el archivo no es
// UTF-8 válido se decodifica como Latin-1. Los nombres repetidos se omiten.
//
// Uso: go run ./cmd/seed_items [ruta/items.csv]
// Por defecto busca items.csv en el directorio actual.
package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/sobrickz-opname/internal/application/catalog"
	"github.com/jhoicas/sobrickz-opname/internal/application/dto"
	"github.com/jhoicas/sobrickz-opname/internal/domain"
	"github.com/jhoicas/sobrickz-opname/internal/infrastructure/postgres"
	"github.com/jhoicas/sobrickz-opname/pkg/config"
	"github.com/jhoicas/sobrickz-opname/pkg/logger"
)

func main() {
	csvPath := "items.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	items, err := parseCatalog(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log.Component("postgres"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.Bootstrap(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema")
	}

	uc := catalog.NewCatalogUseCase(postgres.NewItemRepository(pool), log.Component("catalog"))
	created, skipped := 0, 0
	for _, in := range items {
		_, err := uc.AddItem(ctx, in)
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrInvalidInput):
			skipped++
			log.Warn().Err(err).Str("name", in.Name).Msg("ítem omitido")
		default:
			log.Fatal().Err(err).Str("name", in.Name).Msg("importar ítem")
		}
	}
	fmt.Printf("Importados %d ítems, %d omitidos\n", created, skipped)
}

// parseCatalog lee filas name,unit. Una primera fila "name,unit" se toma como cabecera.
func parseCatalog(raw []byte) ([]dto.CreateItemRequest, error) {
	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var out []dto.CreateItemRequest
	for line := 1; ; line++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("línea %d: se esperan 2 columnas (name,unit)", line)
		}
		name, unit := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
		if line == 1 && strings.EqualFold(name, "name") && strings.EqualFold(unit, "unit") {
			continue
		}
		out = append(out, dto.CreateItemRequest{Name: name, Unit: unit})
	}
	return out, nil
}
