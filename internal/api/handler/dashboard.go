package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/funnel-dashboard-api/internal/domain"
	"github.com/vfg2006/funnel-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/funnel-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/funnel-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetMonthlyMetrics retorna a série mensal com as variações mês a mês
func GetMonthlyMetrics(service reporting.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("monthly-metrics: buscando série mensal")

		months, err := service.GetMonthlySeriesWithChanges(r.Context())
		if err != nil {
			writeServiceError(w, logger, err, "monthly-metrics: erro ao buscar série mensal")
			return
		}

		logger.WithField("months", len(months)).Debug("monthly-metrics: série gerada")
		writeJSON(w, logger, months, "monthly-metrics")
	})
}

// GetMetricCards retorna os indicadores do mês mais recente já formatados
func GetMetricCards(service reporting.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cards, err := service.GetMetricCards(r.Context())
		if err != nil {
			writeServiceError(w, logger, err, "metric-cards: erro ao montar indicadores")
			return
		}

		writeJSON(w, logger, cards, "metric-cards")
	})
}

func GetFunnel(service reporting.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stages, err := service.GetFunnel(r.Context())
		if err != nil {
			writeServiceError(w, logger, err, "funnel: erro ao montar funil")
			return
		}

		writeJSON(w, logger, stages, "funnel")
	})
}

func GetCountryBreakdown(service reporting.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		countries, err := service.GetCountryBreakdown(r.Context())
		if err != nil {
			writeServiceError(w, logger, err, "countries: erro ao distribuir totais por país")
			return
		}

		writeJSON(w, logger, countries, "countries")
	})
}

// GetVideos retorna os vídeos combinados com a atribuição simulada
func GetVideos(service reporting.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("videos: buscando vídeos com atribuição")

		videos, err := service.GetCombinedVideoData(r.Context())
		if err != nil {
			writeServiceError(w, logger, err, "videos: erro ao combinar vídeos e atribuição")
			return
		}

		logger.WithField("videos", len(videos)).Debug("videos: vídeos combinados")
		writeJSON(w, logger, videos, "videos")
	})
}

func GetTopPerformer(service reporting.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		top, err := service.GetTopPerformer(r.Context())
		if err != nil {
			writeServiceError(w, logger, err, "top-performer: erro ao buscar vídeo com maior receita")
			return
		}

		if top == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum vídeo encontrado para o canal", nil)
			return
		}

		writeJSON(w, logger, top, "top-performer")
	})
}

// RefreshDashboard recalcula o painel ignorando o cache e devolve o snapshot completo
func RefreshDashboard(service reporting.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dashboard-refresh: recalculando painel")

		snapshot, err := service.Refresh(r.Context())
		if err != nil {
			writeServiceError(w, logger, err, "dashboard-refresh: erro ao recalcular painel")
			return
		}

		logger.WithFields(log.Fields{
			"snapshot_id": snapshot.ID,
			"fallbacks":   len(snapshot.Fallbacks),
		}).Info("dashboard-refresh: painel recalculado")

		writeJSON(w, logger, snapshot, "dashboard-refresh")
	})
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any, prefix string) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error(prefix + ": erro ao codificar resposta")
	}
}

// writeServiceError traduz os erros do pipeline para o formato padronizado da API
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error, message string) {
	logger.WithError(err).Error(message)

	// O timeout chega embrulhado em UpstreamError, por isso é testado antes
	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		details := map[string]string{}
		if errors.As(err, &upstream) {
			details["source"] = upstream.Source
		}
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Tempo esgotado ao consultar as fontes de dados", details)
	case errors.As(err, &upstream):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Fonte de dados indisponível", map[string]string{
			"source": upstream.Source,
			"reason": upstream.Message,
		})
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o painel", nil)
	}
}
