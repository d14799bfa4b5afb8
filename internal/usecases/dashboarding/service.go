package dashboarding

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/design-online-api/infrastructure/repository"
	"github.com/vfg2006/design-online-api/internal/config"
	"github.com/vfg2006/design-online-api/internal/domain"
)

// Service implementa a interface Dashboarder sobre o repositório de
// publicações, com suporte opcional a snapshots pré-computados
type Service struct {
	cfg             *config.Config
	publicationRepo repository.PublicationRepository
	snapshotRepo    repository.DashboardSnapshotRepository
	evolutionLoc    *time.Location
	snapshotTTL     time.Duration
	useSnapshots    bool
}

// NewService cria uma nova instância do serviço de dashboard
func NewService(
	cfg *config.Config,
	publicationRepo repository.PublicationRepository,
) Dashboarder {
	evolutionLoc := time.UTC
	if cfg.Dashboard.EvolutionTimezone != "" {
		loc, err := time.LoadLocation(cfg.Dashboard.EvolutionTimezone)
		if err != nil {
			logrus.WithError(err).Warnf(
				"Fuso horário inválido para a evolução diária: %s, usando UTC",
				cfg.Dashboard.EvolutionTimezone,
			)
		} else {
			evolutionLoc = loc
		}
	}

	return &Service{
		cfg:             cfg,
		publicationRepo: publicationRepo,
		evolutionLoc:    evolutionLoc,
		snapshotTTL:     time.Duration(cfg.Dashboard.SnapshotTTLMinutes) * time.Minute,
		useSnapshots:    false, // Inicialmente não usa snapshots
	}
}

// WithSnapshots habilita o cache de dashboards pré-computados. Os
// agregadores continuam puros: o cache fica na borda do serviço.
func (s *Service) WithSnapshots(snapshotRepo repository.DashboardSnapshotRepository) *Service {
	s.snapshotRepo = snapshotRepo
	s.useSnapshots = snapshotRepo != nil
	return s
}

// fetch aplica o estágio de filtro: valida o recorte e busca os registros.
// Um intervalo invertido não é um erro: degrada para a fatia vazia, e cada
// seção devolve sua forma vazia de maneira determinística.
func (s *Service) fetch(filters *domain.DashboardFilters) ([]*domain.Publication, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if !filters.HasValidRange() {
		logrus.WithFields(logrus.Fields{
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
		}).Warn("Intervalo de datas invertido, retornando resultado vazio")
		return []*domain.Publication{}, nil
	}

	publications, err := s.publicationRepo.ListByFilter(filters)
	if err != nil {
		return nil, fmt.Errorf("fonte de registros indisponível: %w", err)
	}

	return publications, nil
}

// GetDashboard busca os registros uma única vez e executa as seções
// aplicáveis ao modo da consulta em paralelo sobre a mesma fatia. As seções
// não têm dependência de ordem entre si; cada goroutine escreve apenas o
// seu campo da resposta.
func (s *Service) GetDashboard(filters *domain.DashboardFilters) (*domain.DashboardResponse, error) {
	if snapshot := s.freshSnapshot(filters); snapshot != nil {
		return snapshot.Payload, nil
	}

	publications, err := s.fetch(filters)
	if err != nil {
		return nil, err
	}

	response := &domain.DashboardResponse{
		Filters:    filters,
		ComputedAt: time.Now(),
	}

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		response.Metrics = AggregateMetrics(publications)
	}()

	go func() {
		defer wg.Done()
		response.Evolution = AggregateEvolution(publications, s.evolutionLoc)
	}()

	go func() {
		defer wg.Done()
		response.Vehicles = AggregateVehicles(publications)
	}()

	// Ranking só no modo "todos os clientes"; distribuição horária e
	// semanal só com cliente selecionado
	if filters.HasClient() {
		wg.Add(2)

		go func() {
			defer wg.Done()
			response.Hourly = AggregateHourly(publications)
		}()

		go func() {
			defer wg.Done()
			response.Weekly = AggregateWeekly(publications)
		}()
	} else {
		wg.Add(1)

		go func() {
			defer wg.Done()
			response.Ranking = AggregateRanking(publications)
		}()
	}

	wg.Wait()

	s.saveSnapshot(filters, response)

	return response, nil
}

// freshSnapshot retorna o snapshot persistido do recorte quando ainda
// dentro da janela de validade
func (s *Service) freshSnapshot(filters *domain.DashboardFilters) *domain.DashboardSnapshot {
	if !s.useSnapshots || filters == nil || !filters.HasValidRange() {
		return nil
	}

	snapshot, err := s.snapshotRepo.GetByFilter(filters)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao consultar snapshot do dashboard, recomputando")
		return nil
	}

	if snapshot == nil || snapshot.Payload == nil {
		return nil
	}

	if time.Since(snapshot.ComputedAt) > s.snapshotTTL {
		return nil
	}

	return snapshot
}

func (s *Service) saveSnapshot(filters *domain.DashboardFilters, response *domain.DashboardResponse) {
	if !s.useSnapshots || !filters.HasValidRange() {
		return
	}

	clientName := ""
	if filters.HasClient() {
		clientName = *filters.ClientName
	}

	snapshot := &domain.DashboardSnapshot{
		ClientName: clientName,
		StartDate:  *filters.StartDate,
		EndDate:    *filters.EndDate,
		Payload:    response,
		ComputedAt: response.ComputedAt,
	}

	// Falha ao persistir o snapshot não invalida a resposta já computada
	if err := s.snapshotRepo.Save(snapshot); err != nil {
		logrus.WithError(err).Warn("Erro ao salvar snapshot do dashboard")
	}
}

// GetMetrics calcula os totais e a quebra por formato
func (s *Service) GetMetrics(filters *domain.DashboardFilters) (*domain.MetricStats, error) {
	publications, err := s.fetch(filters)
	if err != nil {
		return nil, err
	}

	return AggregateMetrics(publications), nil
}

// GetEvolution calcula a série diária de publicações
func (s *Service) GetEvolution(filters *domain.DashboardFilters) ([]domain.EvolutionPoint, error) {
	publications, err := s.fetch(filters)
	if err != nil {
		return nil, err
	}

	return AggregateEvolution(publications, s.evolutionLoc), nil
}

// GetRanking calcula o top de clientes por volume
func (s *Service) GetRanking(filters *domain.DashboardFilters) ([]domain.RankingEntry, error) {
	publications, err := s.fetch(filters)
	if err != nil {
		return nil, err
	}

	return AggregateRanking(publications), nil
}

// GetHourly calcula a distribuição por hora do dia
func (s *Service) GetHourly(filters *domain.DashboardFilters) ([]domain.HourBucket, error) {
	publications, err := s.fetch(filters)
	if err != nil {
		return nil, err
	}

	return AggregateHourly(publications), nil
}

// GetWeekly calcula a distribuição por dia da semana
func (s *Service) GetWeekly(filters *domain.DashboardFilters) ([]domain.WeekBucket, error) {
	publications, err := s.fetch(filters)
	if err != nil {
		return nil, err
	}

	return AggregateWeekly(publications), nil
}

// GetVehicles calcula a análise por veículo gerado
func (s *Service) GetVehicles(filters *domain.DashboardFilters) (*domain.VehicleAnalysis, error) {
	publications, err := s.fetch(filters)
	if err != nil {
		return nil, err
	}

	return AggregateVehicles(publications), nil
}

// ListPublications retorna os registros crus do recorte, mais recentes primeiro
func (s *Service) ListPublications(filters *domain.DashboardFilters) ([]*domain.Publication, error) {
	publications, err := s.fetch(filters)
	if err != nil {
		return nil, err
	}

	// O repositório devolve em ordem cronológica; a tabela detalhada do
	// dashboard exibe do mais recente para o mais antigo
	reversed := make([]*domain.Publication, 0, len(publications))
	for i := len(publications) - 1; i >= 0; i-- {
		reversed = append(reversed, publications[i])
	}

	return reversed, nil
}

// ListClients retorna os nomes de empresa distintos
func (s *Service) ListClients() ([]string, error) {
	return s.publicationRepo.ListClients()
}
