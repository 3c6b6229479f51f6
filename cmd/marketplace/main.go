// marketplace es la CLI de administración del marketplace de afiliados.
//
// Uso: marketplace <comando> [flags]
//
// Configuración por entorno (o .env): DB_DRIVER=postgres|sqlite, DATABASE_URL, SQLITE_PATH,
// LOG_LEVEL, REPORT_PAGE_SIZE. La salida de cada comando es JSON en stdout; los logs van a stderr.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/pkg/config"
	"github.com/jhoicas/Marketplace-api/pkg/logger"
)

// Códigos de salida por tipo de error.
const (
	exitOK         = 0
	exitInternal   = 1
	exitValidation = 2
	exitNotFound   = 3
	exitConflict   = 4
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(exitInternal)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, cfg, log, os.Args[1:], os.Stdout)
	code := exitCode(err)
	if err != nil {
		log.Error().Err(err).Int("exit", code).Msg("comando fallido")
		writeError(os.Stderr, err)
	}
	stop()
	os.Exit(code)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage), domain.IsValidation(err):
		return exitValidation
	case domain.IsNotFound(err):
		return exitNotFound
	case domain.IsConflict(err):
		return exitConflict
	default:
		return exitInternal
	}
}

func writeError(w io.Writer, err error) {
	code := "INTERNAL_ERROR"
	switch {
	case errors.Is(err, errUsage), domain.IsValidation(err):
		code = "VALIDATION_ERROR"
	case domain.IsNotFound(err):
		code = "NOT_FOUND"
	case domain.IsConflict(err):
		code = "CONFLICT"
	}
	_ = writeJSON(w, dto.ErrorResponse{Code: code, Message: err.Error()})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
