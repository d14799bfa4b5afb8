package dashboarding

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/design-online-api/internal/domain"
)

func stringPtr(s string) *string {
	return &s
}

// newPublication monta um registro de teste; client e vehicle vazios viram
// campos ausentes
func newPublication(client string, format domain.PublicationFormat, vehicle string, createdAt time.Time) *domain.Publication {
	publication := &domain.Publication{
		ID:        fmt.Sprintf("pub-%d", createdAt.UnixNano()),
		CreatedAt: createdAt,
		Format:    format,
	}

	if client != "" {
		publication.ClientName = stringPtr(client)
	}
	if vehicle != "" {
		publication.Vehicle = stringPtr(vehicle)
	}

	return publication
}

func TestAggregateMetrics(t *testing.T) {
	baseTime := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		publications []*domain.Publication
		expected     *domain.MetricStats
	}{
		{
			name:         "Fatia vazia - totais e percentuais zerados sem divisão por zero",
			publications: []*domain.Publication{},
			expected:     &domain.MetricStats{},
		},
		{
			name: "Cenário de referência - 3 FEED e 2 STORIES",
			publications: []*domain.Publication{
				newPublication("clientA", domain.FormatFeed, "", baseTime),
				newPublication("clientA", domain.FormatFeed, "", baseTime.Add(time.Minute)),
				newPublication("clientA", domain.FormatFeed, "", baseTime.Add(2*time.Minute)),
				newPublication("clientB", domain.FormatStories, "", baseTime.Add(3*time.Minute)),
				newPublication("clientB", domain.FormatStories, "", baseTime.Add(4*time.Minute)),
			},
			expected: &domain.MetricStats{
				Total:          5,
				Feed:           3,
				Stories:        2,
				PercentFeed:    60,
				PercentStories: 40,
			},
		},
		{
			name: "Formato desconhecido conta no total mas fica fora da quebra",
			publications: []*domain.Publication{
				newPublication("clientA", domain.FormatFeed, "", baseTime),
				newPublication("clientA", "CAROUSEL", "", baseTime.Add(time.Minute)),
				newPublication("clientB", domain.FormatStories, "", baseTime.Add(2*time.Minute)),
			},
			expected: &domain.MetricStats{
				Total:          3,
				Feed:           1,
				Stories:        1,
				PercentFeed:    33,
				PercentStories: 33,
			},
		},
		{
			name: "Arredondamento meio para cima",
			publications: []*domain.Publication{
				newPublication("clientA", domain.FormatFeed, "", baseTime),
				newPublication("clientA", domain.FormatFeed, "", baseTime.Add(time.Minute)),
				newPublication("clientA", domain.FormatFeed, "", baseTime.Add(2*time.Minute)),
				newPublication("clientB", domain.FormatStories, "", baseTime.Add(3*time.Minute)),
				newPublication("clientB", domain.FormatStories, "", baseTime.Add(4*time.Minute)),
				newPublication("clientB", domain.FormatStories, "", baseTime.Add(5*time.Minute)),
				newPublication("clientB", domain.FormatStories, "", baseTime.Add(6*time.Minute)),
				newPublication("clientB", domain.FormatStories, "", baseTime.Add(7*time.Minute)),
			},
			expected: &domain.MetricStats{
				Total:          8,
				Feed:           3,
				Stories:        5,
				PercentFeed:    38, // 37.5 arredonda para cima
				PercentStories: 63, // 62.5 arredonda para cima
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := AggregateMetrics(tt.publications)

			assert.Equal(t, tt.expected, stats)
			assert.GreaterOrEqual(t, stats.Total, stats.Feed+stats.Stories)
			assert.GreaterOrEqual(t, stats.PercentFeed, 0)
			assert.LessOrEqual(t, stats.PercentFeed, 100)
			assert.GreaterOrEqual(t, stats.PercentStories, 0)
			assert.LessOrEqual(t, stats.PercentStories, 100)
		})
	}
}

func TestAggregateEvolution(t *testing.T) {
	day1 := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 12, 18, 0, 0, 0, time.UTC)

	t.Run("Dois dias com registros - série esparsa e ascendente", func(t *testing.T) {
		publications := []*domain.Publication{
			// Fora de ordem de propósito: a série deve sair ordenada
			newPublication("clientA", domain.FormatFeed, "", day2),
			newPublication("clientA", domain.FormatFeed, "", day1),
			newPublication("clientA", domain.FormatStories, "", day1.Add(time.Hour)),
			newPublication("clientB", domain.FormatFeed, "", day1.Add(2*time.Hour)),
		}

		points := AggregateEvolution(publications, time.UTC)

		assert.Len(t, points, 2)
		assert.Equal(t, "2024-03-10", points[0].Date)
		assert.Equal(t, 2, points[0].Feed)
		assert.Equal(t, 1, points[0].Stories)
		assert.Equal(t, "2024-03-12", points[1].Date)
		assert.Equal(t, 1, points[1].Feed)
		assert.Equal(t, 0, points[1].Stories)
	})

	t.Run("Datas estritamente ascendentes e sem duplicatas", func(t *testing.T) {
		publications := []*domain.Publication{}
		base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		for i := 0; i < 10; i++ {
			publications = append(publications,
				newPublication("clientA", domain.FormatFeed, "", base.AddDate(0, 0, i%5)))
		}

		points := AggregateEvolution(publications, time.UTC)

		assert.Len(t, points, 5)
		for i := 1; i < len(points); i++ {
			assert.Less(t, points[i-1].Date, points[i].Date)
		}
	})

	t.Run("Agrupamento em UTC cruza a meia-noite de fusos negativos", func(t *testing.T) {
		saoPaulo := time.FixedZone("-03:00", -3*60*60)
		// 22h do dia 10 em São Paulo é 01h do dia 11 em UTC
		lateEvening := time.Date(2024, 3, 10, 22, 0, 0, 0, saoPaulo)

		publications := []*domain.Publication{
			newPublication("clientA", domain.FormatFeed, "", lateEvening),
		}

		utcPoints := AggregateEvolution(publications, time.UTC)
		localPoints := AggregateEvolution(publications, saoPaulo)

		assert.Equal(t, "2024-03-11", utcPoints[0].Date)
		assert.Equal(t, "2024-03-10", localPoints[0].Date)
	})

	t.Run("Fuso nulo usa UTC", func(t *testing.T) {
		publications := []*domain.Publication{
			newPublication("clientA", domain.FormatFeed, "", day1),
		}

		points := AggregateEvolution(publications, nil)

		assert.Equal(t, "2024-03-10", points[0].Date)
	})

	t.Run("Fatia vazia devolve série vazia", func(t *testing.T) {
		points := AggregateEvolution([]*domain.Publication{}, time.UTC)
		assert.Empty(t, points)
	})
}

func TestAggregateRanking(t *testing.T) {
	baseTime := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)

	t.Run("Ordena por volume com desempate por primeira aparição", func(t *testing.T) {
		publications := []*domain.Publication{
			newPublication("clientB", domain.FormatFeed, "", baseTime),
			newPublication("clientA", domain.FormatFeed, "", baseTime.Add(time.Minute)),
			newPublication("clientA", domain.FormatFeed, "", baseTime.Add(2*time.Minute)),
			newPublication("clientC", domain.FormatFeed, "", baseTime.Add(3*time.Minute)),
			// clientB e clientC empatam com 1; clientB apareceu primeiro
		}

		ranking := AggregateRanking(publications)

		assert.Equal(t, []domain.RankingEntry{
			{Name: "clientA", Total: 2},
			{Name: "clientB", Total: 1},
			{Name: "clientC", Total: 1},
		}, ranking)
	})

	t.Run("Registros sem empresa ficam fora do ranking", func(t *testing.T) {
		publications := []*domain.Publication{
			newPublication("", domain.FormatFeed, "", baseTime),
			newPublication("clientA", domain.FormatFeed, "", baseTime.Add(time.Minute)),
		}

		ranking := AggregateRanking(publications)

		assert.Len(t, ranking, 1)
		assert.Equal(t, "clientA", ranking[0].Name)
	})

	t.Run("Trunca no décimo quinto cliente", func(t *testing.T) {
		publications := []*domain.Publication{}
		for i := 0; i < 20; i++ {
			client := fmt.Sprintf("client-%02d", i)
			// client-00 publica 20 vezes, client-01 19, e assim por diante
			for j := 0; j < 20-i; j++ {
				publications = append(publications,
					newPublication(client, domain.FormatFeed, "", baseTime.Add(time.Duration(i*100+j)*time.Second)))
			}
		}

		ranking := AggregateRanking(publications)

		assert.Len(t, ranking, RankingLimit)
		assert.Equal(t, "client-00", ranking[0].Name)
		assert.Equal(t, 20, ranking[0].Total)
		for i := 1; i < len(ranking); i++ {
			assert.GreaterOrEqual(t, ranking[i-1].Total, ranking[i].Total)
		}
	})

	t.Run("Fatia vazia devolve ranking vazio", func(t *testing.T) {
		assert.Empty(t, AggregateRanking([]*domain.Publication{}))
	})
}

func TestAggregateHourly(t *testing.T) {
	t.Run("Sempre 24 faixas, mesmo sem registros", func(t *testing.T) {
		buckets := AggregateHourly([]*domain.Publication{})

		assert.Len(t, buckets, 24)
		for hour, bucket := range buckets {
			assert.Equal(t, hour, bucket.Hour)
			assert.Equal(t, 0, bucket.Count)
		}
	})

	t.Run("Conta na hora do registro como armazenado", func(t *testing.T) {
		publications := []*domain.Publication{
			newPublication("clientA", domain.FormatFeed, "", time.Date(2024, 3, 10, 9, 15, 0, 0, time.UTC)),
			newPublication("clientA", domain.FormatFeed, "", time.Date(2024, 3, 11, 9, 45, 0, 0, time.UTC)),
			newPublication("clientA", domain.FormatStories, "", time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)),
		}

		buckets := AggregateHourly(publications)

		assert.Len(t, buckets, 24)
		assert.Equal(t, 2, buckets[9].Count)
		assert.Equal(t, 1, buckets[23].Count)
	})
}

func TestAggregateWeekly(t *testing.T) {
	t.Run("Sempre 7 dias com domingo primeiro, mesmo sem registros", func(t *testing.T) {
		buckets := AggregateWeekly([]*domain.Publication{})

		assert.Len(t, buckets, 7)
		assert.Equal(t, "Domingo", buckets[0].Day)
		assert.Equal(t, "Sábado", buckets[6].Day)
	})

	t.Run("Conta no dia da semana do registro", func(t *testing.T) {
		// 10/03/2024 foi um domingo
		sunday := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

		publications := []*domain.Publication{
			newPublication("clientA", domain.FormatFeed, "", sunday),
			newPublication("clientA", domain.FormatFeed, "", sunday.AddDate(0, 0, 1)), // Segunda
			newPublication("clientA", domain.FormatFeed, "", sunday.AddDate(0, 0, 8)), // Segunda seguinte
		}

		buckets := AggregateWeekly(publications)

		assert.Equal(t, 1, buckets[0].Count)
		assert.Equal(t, 2, buckets[1].Count)
		assert.Equal(t, "Segunda", buckets[1].Day)
	})
}

func TestAggregateVehicles(t *testing.T) {
	baseTime := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)

	t.Run("Fatia vazia devolve as formas vazias sem falhar", func(t *testing.T) {
		analysis := AggregateVehicles([]*domain.Publication{})

		assert.Empty(t, analysis.Stats)
		assert.Empty(t, analysis.ClientStats)
		assert.Equal(t, 0, analysis.Summary.TotalVehicles)
		assert.Equal(t, 0, analysis.Summary.TotalImages)
		assert.Nil(t, analysis.Summary.MostImages)
		assert.Nil(t, analysis.Summary.LeastImages)
		assert.Nil(t, analysis.Summary.MostActiveClient)
	})

	t.Run("Registros sem veículo ficam fora de toda a análise", func(t *testing.T) {
		publications := []*domain.Publication{
			newPublication("clientA", domain.FormatFeed, "", baseTime),
			newPublication("clientA", domain.FormatFeed, "", baseTime.Add(time.Minute)),
		}

		analysis := AggregateVehicles(publications)

		assert.Empty(t, analysis.Stats)
		assert.Empty(t, analysis.ClientStats)
		assert.Equal(t, 0, analysis.Summary.TotalImages)
	})

	t.Run("Cenário de referência - SUV 4x e Sedan 1x", func(t *testing.T) {
		publications := []*domain.Publication{
			newPublication("clientA", domain.FormatFeed, "SUV", baseTime),
			newPublication("clientA", domain.FormatFeed, "SUV", baseTime.Add(time.Minute)),
			newPublication("clientA", domain.FormatFeed, "SUV", baseTime.Add(2*time.Minute)),
			newPublication("clientB", domain.FormatStories, "SUV", baseTime.Add(3*time.Minute)),
			newPublication("clientC", domain.FormatFeed, "Sedan", baseTime.Add(4*time.Minute)),
		}

		analysis := AggregateVehicles(publications)

		assert.Equal(t, []domain.VehicleStat{
			{Vehicle: "SUV", TotalImages: 4, Percentual: 80.0, TopClient: "clientA"},
			{Vehicle: "Sedan", TotalImages: 1, Percentual: 20.0, TopClient: "clientC"},
		}, analysis.Stats)

		assert.Equal(t, 2, analysis.Summary.TotalVehicles)
		assert.Equal(t, 5, analysis.Summary.TotalImages)
		assert.Equal(t, &domain.NamedCount{Name: "SUV", Count: 4}, analysis.Summary.MostImages)
		assert.Equal(t, &domain.NamedCount{Name: "Sedan", Count: 1}, analysis.Summary.LeastImages)
		assert.Equal(t, &domain.NamedCount{Name: "clientA", Count: 3}, analysis.Summary.MostActiveClient)
	})

	t.Run("Soma das linhas é igual ao total do resumo", func(t *testing.T) {
		publications := []*domain.Publication{
			newPublication("clientA", domain.FormatFeed, "SUV", baseTime),
			newPublication("clientB", domain.FormatFeed, "Sedan", baseTime.Add(time.Minute)),
			newPublication("clientB", domain.FormatFeed, "Hatch", baseTime.Add(2*time.Minute)),
			newPublication("clientA", domain.FormatFeed, "", baseTime.Add(3*time.Minute)), // Sem veículo
		}

		analysis := AggregateVehicles(publications)

		sum := 0
		for _, stat := range analysis.Stats {
			sum += stat.TotalImages
		}
		assert.Equal(t, analysis.Summary.TotalImages, sum)
		assert.Equal(t, 3, analysis.Summary.TotalImages)
	})

	t.Run("Cliente repetindo o mesmo veículo não duplica a contagem de veículos únicos", func(t *testing.T) {
		publications := []*domain.Publication{
			newPublication("clientA", domain.FormatFeed, "SUV", baseTime),
			newPublication("clientA", domain.FormatFeed, "SUV", baseTime.Add(time.Minute)),
			newPublication("clientA", domain.FormatFeed, "Sedan", baseTime.Add(2*time.Minute)),
		}

		analysis := AggregateVehicles(publications)

		assert.Len(t, analysis.ClientStats, 1)
		assert.Equal(t, "clientA", analysis.ClientStats[0].ClientName)
		assert.Equal(t, 2, analysis.ClientStats[0].UniqueVehicles)
		assert.Equal(t, 3, analysis.ClientStats[0].TotalImages)
	})

	t.Run("Registro com veículo e sem empresa entra com o rótulo sentinela", func(t *testing.T) {
		publications := []*domain.Publication{
			newPublication("", domain.FormatFeed, "SUV", baseTime),
		}

		analysis := AggregateVehicles(publications)

		assert.Equal(t, UnknownClientLabel, analysis.Stats[0].TopClient)
		assert.Equal(t, UnknownClientLabel, analysis.ClientStats[0].ClientName)
	})

	t.Run("Empate de veículos preserva a ordem de primeira aparição", func(t *testing.T) {
		publications := []*domain.Publication{
			newPublication("clientA", domain.FormatFeed, "Hatch", baseTime),
			newPublication("clientA", domain.FormatFeed, "SUV", baseTime.Add(time.Minute)),
			newPublication("clientA", domain.FormatFeed, "Sedan", baseTime.Add(2*time.Minute)),
		}

		analysis := AggregateVehicles(publications)

		assert.Equal(t, "Hatch", analysis.Stats[0].Vehicle)
		assert.Equal(t, "SUV", analysis.Stats[1].Vehicle)
		assert.Equal(t, "Sedan", analysis.Stats[2].Vehicle)
		assert.Equal(t, "Hatch", analysis.Summary.MostImages.Name)
		assert.Equal(t, "Sedan", analysis.Summary.LeastImages.Name)
	})

	t.Run("Empate de clientes dentro do veículo fica com o visto primeiro", func(t *testing.T) {
		publications := []*domain.Publication{
			newPublication("clientB", domain.FormatFeed, "SUV", baseTime),
			newPublication("clientA", domain.FormatFeed, "SUV", baseTime.Add(time.Minute)),
		}

		analysis := AggregateVehicles(publications)

		assert.Equal(t, "clientB", analysis.Stats[0].TopClient)
	})

	t.Run("Percentual com uma casa decimal", func(t *testing.T) {
		publications := []*domain.Publication{
			newPublication("clientA", domain.FormatFeed, "SUV", baseTime),
			newPublication("clientA", domain.FormatFeed, "Sedan", baseTime.Add(time.Minute)),
			newPublication("clientA", domain.FormatFeed, "Hatch", baseTime.Add(2*time.Minute)),
		}

		analysis := AggregateVehicles(publications)

		// 100/3 = 33.333... arredonda para 33.3
		for _, stat := range analysis.Stats {
			assert.Equal(t, 33.3, stat.Percentual)
		}
	})
}
