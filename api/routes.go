package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fieldops-server/internal/apiclient"
	"github.com/carson-networks/fieldops-server/internal/handlers/v1/auth"
	"github.com/carson-networks/fieldops-server/internal/handlers/v1/dashboard"
	"github.com/carson-networks/fieldops-server/internal/handlers/v1/exports"
	"github.com/carson-networks/fieldops-server/internal/handlers/v1/report"
	"github.com/carson-networks/fieldops-server/internal/handlers/v1/status"
	"github.com/carson-networks/fieldops-server/internal/logging"
	"github.com/carson-networks/fieldops-server/internal/metrics"
	"github.com/carson-networks/fieldops-server/internal/service"
	"github.com/carson-networks/fieldops-server/internal/storage"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Storage *storage.Storage
	Service *service.Service
	Client  *apiclient.Client
	Metrics *metrics.Collector

	// AdminToken authorizes the session operations; empty disables them.
	AdminToken string
}

// Routes builds the mux: /status and /metrics as plain handlers, everything
// else as huma operations.
func (r *Rest) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	var statusHandler status.Handler
	if r.Storage != nil {
		statusHandler = status.NewHandler(r.Storage.DB)
	}
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	mux.Handle("/metrics", r.Metrics.Handler())

	api := humago.New(mux, huma.DefaultConfig("fieldops-server", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	dashboard.NewFieldOfficerHandler(r.Service.Dashboards).Register(api)
	dashboard.NewBranchManagerHandler(r.Service.Dashboards).Register(api)
	dashboard.NewGroupSummaryHandler(r.Service.Dashboards).Register(api)
	dashboard.NewLoanLimitHandler(r.Service.Dashboards).Register(api)

	report.NewBranchReportHandler(r.Service.Reports).Register(api)
	report.NewDownloadReportHandler(r.Service.Reports).Register(api)

	exports.NewRequestExportHandler(r.Service.Exports).Register(api)
	exports.NewListExportsHandler(r.Service.Exports).Register(api)
	exports.NewGetExportHandler(r.Service.Exports).Register(api)

	admin := auth.AdminToken(r.AdminToken)
	auth.NewLoginHandler(r.Client, admin).Register(api)
	auth.NewLogoutHandler(r.Client, admin).Register(api)
	auth.NewGetSessionHandler(r.Client, admin).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Routes(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(60) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
