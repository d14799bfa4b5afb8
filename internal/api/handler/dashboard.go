package handler

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/design-online-api/internal/domain"
	"github.com/vfg2006/design-online-api/internal/usecases/dashboarding"
	"github.com/vfg2006/design-online-api/pkg/apiErrors"
	"github.com/vfg2006/design-online-api/pkg/log"
	"github.com/vfg2006/design-online-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseDashboardFilters monta o filtro do dashboard a partir da query
// string: ou um preset de período, ou o par start_date/end_date explícito,
// mais o cliente opcional
func parseDashboardFilters(r *http.Request) (*domain.DashboardFilters, string, error) {
	query := r.URL.Query()

	filters := &domain.DashboardFilters{}

	if client := query.Get("client"); client != "" {
		filters.ClientName = &client
	}

	if preset := query.Get("preset"); preset != "" {
		startDate, endDate, err := utils.DateRangeFromPreset(preset, time.Now())
		if err != nil {
			return nil, apiErrors.ErrInvalidRequest, err
		}

		filters.StartDate = &startDate
		filters.EndDate = &endDate
		return filters, "", nil
	}

	if query.Get("start_date") == "" || query.Get("end_date") == "" {
		return nil, apiErrors.ErrMissingRequiredData,
			fmt.Errorf("informe start_date e end_date, ou um preset de período")
	}

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return nil, apiErrors.ErrInvalidFormat, err
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return nil, apiErrors.ErrInvalidFormat, err
	}

	// Borda final inclusiva: o dia inteiro de end_date entra no recorte
	endOfDay := utils.EndOfDay(*endDate)

	filters.StartDate = startDate
	filters.EndDate = &endOfDay

	return filters, "", nil
}

// writeJSON serializa a resposta; falha de encoding vira 500
func writeJSON(w http.ResponseWriter, r *http.Request, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("dashboard: failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, code, err := parseDashboardFilters(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid query parameters")
			apiErrors.WriteError(w, code, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
			"client":     clientLabel(filters),
		}).Info("dashboard: computing composite dashboard")

		response, err := service.GetDashboard(filters)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to compute dashboard")
			apiErrors.WriteError(w, apiErrors.ErrSourceUnavailable, err.Error(), nil)
			return
		}

		writeJSON(w, r, response)
	})
}

func GetMetrics(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, code, err := parseDashboardFilters(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid query parameters")
			apiErrors.WriteError(w, code, err.Error(), nil)
			return
		}

		metrics, err := service.GetMetrics(filters)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to compute metrics")
			apiErrors.WriteError(w, apiErrors.ErrSourceUnavailable, err.Error(), nil)
			return
		}

		writeJSON(w, r, metrics)
	})
}

func GetEvolution(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, code, err := parseDashboardFilters(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid query parameters")
			apiErrors.WriteError(w, code, err.Error(), nil)
			return
		}

		evolution, err := service.GetEvolution(filters)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to compute evolution")
			apiErrors.WriteError(w, apiErrors.ErrSourceUnavailable, err.Error(), nil)
			return
		}

		writeJSON(w, r, evolution)
	})
}

// GetRanking só atende o modo "todos os clientes"
func GetRanking(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, code, err := parseDashboardFilters(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid query parameters")
			apiErrors.WriteError(w, code, err.Error(), nil)
			return
		}

		if filters.HasClient() {
			logger.WithField("client", *filters.ClientName).Warn("dashboard: ranking requested with client filter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidQueryMode,
				"o ranking de clientes não aceita filtro de cliente", nil)
			return
		}

		ranking, err := service.GetRanking(filters)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to compute ranking")
			apiErrors.WriteError(w, apiErrors.ErrSourceUnavailable, err.Error(), nil)
			return
		}

		writeJSON(w, r, ranking)
	})
}

// GetHourly só atende o modo "cliente específico"
func GetHourly(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, code, err := parseDashboardFilters(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid query parameters")
			apiErrors.WriteError(w, code, err.Error(), nil)
			return
		}

		if !filters.HasClient() {
			logger.Warn("dashboard: hourly distribution requested without client filter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidQueryMode,
				"a distribuição horária exige um cliente selecionado", nil)
			return
		}

		hourly, err := service.GetHourly(filters)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to compute hourly distribution")
			apiErrors.WriteError(w, apiErrors.ErrSourceUnavailable, err.Error(), nil)
			return
		}

		writeJSON(w, r, hourly)
	})
}

// GetWeekly só atende o modo "cliente específico"
func GetWeekly(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, code, err := parseDashboardFilters(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid query parameters")
			apiErrors.WriteError(w, code, err.Error(), nil)
			return
		}

		if !filters.HasClient() {
			logger.Warn("dashboard: weekly distribution requested without client filter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidQueryMode,
				"a distribuição semanal exige um cliente selecionado", nil)
			return
		}

		weekly, err := service.GetWeekly(filters)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to compute weekly distribution")
			apiErrors.WriteError(w, apiErrors.ErrSourceUnavailable, err.Error(), nil)
			return
		}

		writeJSON(w, r, weekly)
	})
}

func GetVehicles(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, code, err := parseDashboardFilters(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid query parameters")
			apiErrors.WriteError(w, code, err.Error(), nil)
			return
		}

		vehicles, err := service.GetVehicles(filters)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to compute vehicle analysis")
			apiErrors.WriteError(w, apiErrors.ErrSourceUnavailable, err.Error(), nil)
			return
		}

		writeJSON(w, r, vehicles)
	})
}

func clientLabel(filters *domain.DashboardFilters) string {
	if filters.HasClient() {
		return *filters.ClientName
	}
	return "todos"
}
