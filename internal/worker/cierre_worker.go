package worker

// cierre_worker.go
// Processes end-of-day report jobs from QueueReporteCierre.
// Builds a plain-text summary of the cierre and mails it to the owner.
// SMTP calls go through the circuit breaker so a downed mail server
// doesn't block the pool.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NicolasMR761/InventarioJH/internal/infra"
	"github.com/NicolasMR761/InventarioJH/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ReporteCierreJobPayload is the job envelope sent to QueueReporteCierre.
type ReporteCierreJobPayload struct {
	Fecha string `json:"fecha"` // YYYY-MM-DD
}

// ReporteCierreWorker mails the end-of-day closure report.
type ReporteCierreWorker struct {
	cajaRepo     repository.CajaRepository
	mailer       *infra.Mailer
	cb           *infra.CircuitBreaker
	rdb          *redis.Client
	destinatario string
}

func NewReporteCierreWorker(
	cajaRepo repository.CajaRepository,
	mailer *infra.Mailer,
	cb *infra.CircuitBreaker,
	rdb *redis.Client,
	destinatario string,
) *ReporteCierreWorker {
	return &ReporteCierreWorker{
		cajaRepo:     cajaRepo,
		mailer:       mailer,
		cb:           cb,
		rdb:          rdb,
		destinatario: destinatario,
	}
}

// Process fetches the cierre for the payload's date and sends the report.
// Retries with backoff; after the last attempt the job lands in the DLQ.
func (w *ReporteCierreWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReporteCierreJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("cierre_worker: invalid payload")
		return
	}
	if w.destinatario == "" {
		log.Debug().Msg("cierre_worker: no report recipient configured — skipping")
		return
	}

	dia, err := time.ParseInLocation("2006-01-02", payload.Fecha, time.Local)
	if err != nil {
		log.Error().Str("fecha", payload.Fecha).Msg("cierre_worker: invalid fecha")
		return
	}

	cierre, err := w.cajaRepo.FindCierre(ctx, dia)
	if err != nil || cierre == nil {
		log.Error().Err(err).Str("fecha", payload.Fecha).Msg("cierre_worker: cierre not found")
		return
	}

	subject := fmt.Sprintf("Cierre de caja — %s", payload.Fecha)
	body := fmt.Sprintf(
		"Cierre de caja del %s\n\n"+
			"Saldo inicial:   $%s\n"+
			"Total ingresos:  $%s\n"+
			"Total egresos:   $%s\n"+
			"Saldo final:     $%s\n",
		payload.Fecha,
		cierre.SaldoInicial.StringFixed(2),
		cierre.TotalIngresos.StringFixed(2),
		cierre.TotalEgresos.StringFixed(2),
		cierre.SaldoFinal.StringFixed(2),
	)
	if cierre.CerradoPor != nil {
		body += fmt.Sprintf("\nCerrado por: %s\n", *cierre.CerradoPor)
	}

	const maxAttempts = 3
	sendErr := withRetry(ctx, maxAttempts, func(attempt int) error {
		return w.cb.Execute(func() error {
			return w.mailer.SendReporteCierre(w.destinatario, subject, body)
		})
	})
	if sendErr != nil {
		log.Error().Err(sendErr).Str("fecha", payload.Fecha).Msg("cierre_worker: report failed after all retries")
		SendToDLQ(ctx, w.rdb, QueueReporteCierre, "reporte_cierre", raw,
			fmt.Sprintf("smtp failed after %d attempts: %v", maxAttempts, sendErr), maxAttempts)
		return
	}
	log.Info().Str("fecha", payload.Fecha).Str("to", w.destinatario).Msg("cierre_worker: report sent")
}
