package dashboarding

import (
	"sort"
	"time"

	"github.com/vfg2006/design-online-api/internal/domain"
	"github.com/vfg2006/design-online-api/pkg/utils"
)

// RankingLimit é o tamanho máximo do ranking de clientes
const RankingLimit = 15

// UnknownClientLabel rotula registros com veículo mas sem empresa na
// análise por veículo
const UnknownClientLabel = "Desconhecido"

// weekDayLabels segue a semana com domingo primeiro, como no dashboard
var weekDayLabels = [7]string{"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado"}

// As funções Aggregate* são puras: recebem a fatia imutável já filtrada e
// devolvem uma visão derivada recalculada por consulta. Nenhuma delas faz
// I/O nem altera os registros, então podem rodar em qualquer ordem ou em
// paralelo sobre a mesma fatia.

// groupCount acumula contagens por chave preservando a ordem de primeira
// aparição, que é o critério de desempate de todas as ordenações
type groupCount struct {
	key   string
	count int
}

// countByKey agrupa e conta registros pela chave extraída por keyFn.
// Registros cuja chave vem com ok falso são ignorados. A fatia resultante
// mantém a ordem de primeira aparição de cada chave.
func countByKey(publications []*domain.Publication, keyFn func(*domain.Publication) (string, bool)) []groupCount {
	index := make(map[string]int, len(publications))
	groups := make([]groupCount, 0)

	for _, publication := range publications {
		key, ok := keyFn(publication)
		if !ok {
			continue
		}

		if i, seen := index[key]; seen {
			groups[i].count++
			continue
		}

		index[key] = len(groups)
		groups = append(groups, groupCount{key: key, count: 1})
	}

	return groups
}

// sortByCountDesc ordena por contagem decrescente. A ordenação estável
// preserva a ordem de primeira aparição nos empates.
func sortByCountDesc(groups []groupCount) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})
}

// AggregateMetrics calcula os totais do período. Formatos desconhecidos
// contam no total mas ficam fora da quebra feed/stories, então os
// percentuais não precisam somar 100.
func AggregateMetrics(publications []*domain.Publication) *domain.MetricStats {
	stats := &domain.MetricStats{
		Total: len(publications),
	}

	for _, publication := range publications {
		switch publication.Format {
		case domain.FormatFeed:
			stats.Feed++
		case domain.FormatStories:
			stats.Stories++
		}
	}

	stats.PercentFeed = utils.RoundPercent(stats.Feed, stats.Total)
	stats.PercentStories = utils.RoundPercent(stats.Stories, stats.Total)

	return stats
}

// AggregateEvolution agrupa as publicações por dia-calendário no fuso loc
// (UTC quando nulo, reproduzindo o comportamento histórico do dashboard).
// A série é esparsa: dias sem registros não são sintetizados. A ordenação
// lexicográfica das datas ISO equivale à cronológica.
func AggregateEvolution(publications []*domain.Publication, loc *time.Location) []domain.EvolutionPoint {
	if loc == nil {
		loc = time.UTC
	}

	index := make(map[string]int, len(publications))
	points := make([]domain.EvolutionPoint, 0)

	for _, publication := range publications {
		date := publication.CreatedAt.In(loc).Format(time.DateOnly)

		i, seen := index[date]
		if !seen {
			i = len(points)
			index[date] = i
			points = append(points, domain.EvolutionPoint{Date: date})
		}

		switch publication.Format {
		case domain.FormatFeed:
			points[i].Feed++
		case domain.FormatStories:
			points[i].Stories++
		}
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	return points
}

// AggregateRanking calcula o top de clientes por volume de publicações.
// Registros sem empresa ficam de fora. Projetado para o modo "todos os
// clientes"; com um único cliente na fatia degenera para uma posição.
func AggregateRanking(publications []*domain.Publication) []domain.RankingEntry {
	groups := countByKey(publications, func(p *domain.Publication) (string, bool) {
		client := p.Client()
		return client, client != ""
	})

	sortByCountDesc(groups)

	if len(groups) > RankingLimit {
		groups = groups[:RankingLimit]
	}

	ranking := make([]domain.RankingEntry, 0, len(groups))
	for _, group := range groups {
		ranking = append(ranking, domain.RankingEntry{Name: group.key, Total: group.count})
	}

	return ranking
}

// AggregateHourly distribui as publicações pelas 24 horas do dia. As 24
// faixas sempre aparecem, mesmo zeradas.
func AggregateHourly(publications []*domain.Publication) []domain.HourBucket {
	buckets := make([]domain.HourBucket, 24)
	for hour := range buckets {
		buckets[hour].Hour = hour
	}

	for _, publication := range publications {
		buckets[publication.CreatedAt.Hour()].Count++
	}

	return buckets
}

// AggregateWeekly distribui as publicações pelos 7 dias da semana, domingo
// primeiro. Os 7 dias sempre aparecem, mesmo zerados.
func AggregateWeekly(publications []*domain.Publication) []domain.WeekBucket {
	buckets := make([]domain.WeekBucket, 7)
	for day := range buckets {
		buckets[day].Day = weekDayLabels[day]
	}

	for _, publication := range publications {
		buckets[int(publication.CreatedAt.Weekday())].Count++
	}

	return buckets
}

// AggregateVehicles faz os três agrupamentos da análise por veículo em uma
// passada sobre a fatia: contagem por veículo, contagem por cliente e a
// tabela cruzada veículo × cliente. Registros sem veículo ficam de fora de
// toda a análise; registros com veículo mas sem empresa entram com o rótulo
// sentinela.
func AggregateVehicles(publications []*domain.Publication) *domain.VehicleAnalysis {
	analysis := &domain.VehicleAnalysis{
		Stats:       make([]domain.VehicleStat, 0),
		ClientStats: make([]domain.ClientVehicleStat, 0),
	}

	vehicleKey := func(p *domain.Publication) (string, bool) {
		return p.VehicleName(), p.HasVehicle()
	}
	clientKey := func(p *domain.Publication) (string, bool) {
		if !p.HasVehicle() {
			return "", false
		}
		if p.Client() == "" {
			return UnknownClientLabel, true
		}
		return p.Client(), true
	}

	vehicles := countByKey(publications, vehicleKey)
	clients := countByKey(publications, clientKey)

	// Tabela cruzada veículo × cliente, preservando a ordem de primeira
	// aparição dos clientes dentro de cada veículo
	crossCounts := make(map[string]map[string]int)
	crossOrder := make(map[string][]string)
	// Veículos distintos por cliente, recontados à parte para não duplicar
	// quando o cliente repete o mesmo veículo
	clientVehicles := make(map[string]map[string]struct{})

	for _, publication := range publications {
		vehicle, ok := vehicleKey(publication)
		if !ok {
			continue
		}
		client, _ := clientKey(publication)

		if crossCounts[vehicle] == nil {
			crossCounts[vehicle] = make(map[string]int)
		}
		if _, seen := crossCounts[vehicle][client]; !seen {
			crossOrder[vehicle] = append(crossOrder[vehicle], client)
		}
		crossCounts[vehicle][client]++

		if clientVehicles[client] == nil {
			clientVehicles[client] = make(map[string]struct{})
		}
		clientVehicles[client][vehicle] = struct{}{}
	}

	// Fatia vazia após a exclusão de registros sem veículo: devolve as
	// formas vazias antes de qualquer divisão ou ordenação
	totalImages := 0
	for _, vehicle := range vehicles {
		totalImages += vehicle.count
	}
	if totalImages == 0 {
		return analysis
	}

	sortByCountDesc(vehicles)
	sortByCountDesc(clients)

	for _, vehicle := range vehicles {
		analysis.Stats = append(analysis.Stats, domain.VehicleStat{
			Vehicle:     vehicle.key,
			TotalImages: vehicle.count,
			Percentual:  utils.RoundWithOneDecimalPlace(float64(vehicle.count) * 100 / float64(totalImages)),
			TopClient:   topClientForVehicle(crossCounts[vehicle.key], crossOrder[vehicle.key]),
		})
	}

	for _, client := range clients {
		analysis.ClientStats = append(analysis.ClientStats, domain.ClientVehicleStat{
			ClientName:     client.key,
			UniqueVehicles: len(clientVehicles[client.key]),
			TotalImages:    client.count,
		})
	}

	first := analysis.Stats[0]
	last := analysis.Stats[len(analysis.Stats)-1]
	topClient := analysis.ClientStats[0]

	analysis.Summary = domain.VehicleSummary{
		TotalVehicles:    len(vehicles),
		TotalImages:      totalImages,
		MostImages:       &domain.NamedCount{Name: first.Vehicle, Count: first.TotalImages},
		LeastImages:      &domain.NamedCount{Name: last.Vehicle, Count: last.TotalImages},
		MostActiveClient: &domain.NamedCount{Name: topClient.ClientName, Count: topClient.TotalImages},
	}

	return analysis
}

// topClientForVehicle escolhe o cliente com mais imagens do veículo;
// empates ficam com o cliente visto primeiro
func topClientForVehicle(counts map[string]int, order []string) string {
	top := ""
	topCount := 0

	for _, client := range order {
		if counts[client] > topCount {
			top = client
			topCount = counts[client]
		}
	}

	return top
}
