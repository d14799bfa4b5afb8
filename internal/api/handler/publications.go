package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/design-online-api/internal/usecases/dashboarding"
	"github.com/vfg2006/design-online-api/pkg/apiErrors"
	"github.com/vfg2006/design-online-api/pkg/log"
)

// ListPublications retorna os registros crus da tabela detalhada
func ListPublications(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, code, err := parseDashboardFilters(r)
		if err != nil {
			logger.WithError(err).Warn("publications: invalid query parameters")
			apiErrors.WriteError(w, code, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
			"client":     clientLabel(filters),
		}).Info("publications: listing publications")

		publications, err := service.ListPublications(filters)
		if err != nil {
			logger.WithError(err).Error("publications: failed to list publications")
			apiErrors.WriteError(w, apiErrors.ErrSourceUnavailable, err.Error(), nil)
			return
		}

		writeJSON(w, r, publications)
	})
}

// ListClients retorna os nomes de empresa distintos para o seletor de cliente
func ListClients(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		clients, err := service.ListClients()
		if err != nil {
			logger.WithError(err).Error("clients: failed to list clients")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		logger.WithField("clients", len(clients)).Info("clients: listed distinct clients")

		writeJSON(w, r, clients)
	})
}
