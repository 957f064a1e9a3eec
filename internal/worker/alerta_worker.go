package worker

// alerta_worker.go
// Processes low-stock alert jobs from QueueAlertaStock. A sale that leaves a
// product at or below its stock mínimo enqueues one of these.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/NicolasMR761/InventarioJH/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// AlertaStockJobPayload is the job envelope sent to QueueAlertaStock.
type AlertaStockJobPayload struct {
	ProductoID  string `json:"producto_id"`
	Nombre      string `json:"nombre"`
	Unidad      string `json:"unidad"`
	StockActual string `json:"stock_actual"`
	StockMinimo string `json:"stock_minimo"`
}

// AlertaStockWorker mails low-stock notifications to the owner.
type AlertaStockWorker struct {
	mailer       *infra.Mailer
	cb           *infra.CircuitBreaker
	rdb          *redis.Client
	destinatario string
}

func NewAlertaStockWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker, rdb *redis.Client, destinatario string) *AlertaStockWorker {
	return &AlertaStockWorker{mailer: mailer, cb: cb, rdb: rdb, destinatario: destinatario}
}

func (w *AlertaStockWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload AlertaStockJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alerta_worker: invalid payload")
		return
	}
	if w.destinatario == "" {
		log.Debug().Msg("alerta_worker: no recipient configured — skipping")
		return
	}

	subject := fmt.Sprintf("Stock bajo: %s", payload.Nombre)
	body := fmt.Sprintf(
		"El producto %q quedó en %s %s (mínimo configurado: %s %s).\n"+
			"Considera registrar una entrada pronto.\n",
		payload.Nombre,
		payload.StockActual, payload.Unidad,
		payload.StockMinimo, payload.Unidad,
	)

	const maxAttempts = 3
	sendErr := withRetry(ctx, maxAttempts, func(attempt int) error {
		return w.cb.Execute(func() error {
			return w.mailer.SendAlertaStock(w.destinatario, subject, body)
		})
	})
	if sendErr != nil {
		log.Error().Err(sendErr).Str("producto", payload.Nombre).Msg("alerta_worker: alert failed after all retries")
		SendToDLQ(ctx, w.rdb, QueueAlertaStock, "alerta_stock", raw,
			fmt.Sprintf("smtp failed after %d attempts: %v", maxAttempts, sendErr), maxAttempts)
		return
	}
	log.Info().Str("producto", payload.Nombre).Msg("alerta_worker: alert sent")
}
