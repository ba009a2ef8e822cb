// Package errmap turns service and upstream errors into huma problem responses.
package errmap

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fieldops-server/internal/apiclient"
	"github.com/carson-networks/fieldops-server/internal/export"
	"github.com/carson-networks/fieldops-server/internal/service"
	"github.com/carson-networks/fieldops-server/internal/session"
	"github.com/carson-networks/fieldops-server/internal/storage/sqlconfig"
)

// ToHuma maps err onto a status code. fallback is the message used for
// anything unrecognised, which becomes a 500.
func ToHuma(err error, fallback string) error {
	var validationErr *apiclient.ValidationError
	if errors.As(err, &validationErr) {
		details := make([]error, 0, len(validationErr.Fields))
		for _, f := range validationErr.Fields {
			details = append(details, &huma.ErrorDetail{
				Location: "body." + f.Field,
				Message:  "failed " + f.Rule,
			})
		}
		return huma.NewError(http.StatusBadRequest, validationErr.Error(), details...)
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return huma.NewError(http.StatusBadGateway, apiErr.Message, err)
	}

	switch {
	case errors.Is(err, export.ErrNoData):
		return huma.NewError(http.StatusNotFound, "no data to export", err)
	case errors.Is(err, sqlconfig.ErrExportNotFound):
		return huma.NewError(http.StatusNotFound, "export not found", err)
	case errors.Is(err, service.ErrUnknownKind),
		errors.Is(err, service.ErrUnknownDestination),
		errors.Is(err, export.ErrUnknownFormat):
		return huma.NewError(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, session.ErrNoSession):
		return huma.NewError(http.StatusUnauthorized, "not signed in", err)
	case errors.Is(err, context.DeadlineExceeded):
		return huma.NewError(http.StatusGatewayTimeout, "upstream timed out", err)
	}
	return huma.NewError(http.StatusInternalServerError, fallback, err)
}
