package status

import (
	"context"
	"errors"
	"net/http"

	"github.com/carson-networks/fieldops-server/internal/logging"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	Ledger pinger
}

// NewHandler reports healthy only while the export ledger answers pings. A nil
// ledger is treated as healthy.
func NewHandler(ledger pinger) Handler {
	return Handler{Ledger: ledger}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if h.Ledger != nil {
		endTimer := logData.AddTiming("ledgerPing")
		err := h.Ledger.PingContext(req.Context())
		endTimer()
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return err
		}
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
