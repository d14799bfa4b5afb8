package dashboarding

import (
	"github.com/vfg2006/design-online-api/internal/domain"
)

// Dashboarder expõe as visões derivadas do log de publicações. Cada seção é
// invocável de forma independente para que o chamador controle quais rodam
// em cada modo de consulta.
type Dashboarder interface {
	// GetDashboard calcula a resposta composta: busca os registros uma única
	// vez e executa sobre a mesma fatia todas as seções aplicáveis ao modo
	// da consulta
	GetDashboard(filters *domain.DashboardFilters) (*domain.DashboardResponse, error)

	// GetMetrics calcula os totais e a quebra por formato
	GetMetrics(filters *domain.DashboardFilters) (*domain.MetricStats, error)

	// GetEvolution calcula a série diária de publicações
	GetEvolution(filters *domain.DashboardFilters) ([]domain.EvolutionPoint, error)

	// GetRanking calcula o top de clientes por volume (modo "todos os clientes")
	GetRanking(filters *domain.DashboardFilters) ([]domain.RankingEntry, error)

	// GetHourly calcula a distribuição por hora do dia (modo "cliente específico")
	GetHourly(filters *domain.DashboardFilters) ([]domain.HourBucket, error)

	// GetWeekly calcula a distribuição por dia da semana (modo "cliente específico")
	GetWeekly(filters *domain.DashboardFilters) ([]domain.WeekBucket, error)

	// GetVehicles calcula a análise por veículo gerado
	GetVehicles(filters *domain.DashboardFilters) (*domain.VehicleAnalysis, error)

	// ListPublications retorna os registros crus do recorte, mais recentes primeiro
	ListPublications(filters *domain.DashboardFilters) ([]*domain.Publication, error)

	// ListClients retorna os nomes de empresa distintos
	ListClients() ([]string, error)
}
