package domain

import "time"

// MetricStats são os totais do período com a quebra por formato.
// Registros de formato desconhecido contam apenas no total.
type MetricStats struct {
	Total          int `json:"total"`
	Feed           int `json:"feed"`
	Stories        int `json:"stories"`
	PercentFeed    int `json:"percentFeed"`
	PercentStories int `json:"percentStories"`
}

// EvolutionPoint é um dia do gráfico de evolução (série esparsa:
// apenas dias com pelo menos um registro aparecem)
type EvolutionPoint struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Feed    int    `json:"feed"`
	Stories int    `json:"stories"`
}

// RankingEntry é uma posição do ranking de clientes por volume
type RankingEntry struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// HourBucket é uma faixa horária da distribuição diária (sempre 24 faixas)
type HourBucket struct {
	Hour  int `json:"hour"` // 0..23
	Count int `json:"count"`
}

// WeekBucket é um dia da distribuição semanal (sempre 7 dias, domingo primeiro)
type WeekBucket struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// NamedCount é um extremo nomeado do resumo de veículos
type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// VehicleStat é a linha de um veículo na tabela "Imagens por Veículo"
type VehicleStat struct {
	Vehicle     string  `json:"veiculo_gerado"`
	TotalImages int     `json:"total_imagens"`
	Percentual  float64 `json:"percentual"` // Participação no total, 1 casa decimal
	TopClient   string  `json:"top_empresa"`
}

// ClientVehicleStat é a linha de um cliente na tabela "Resumo por Cliente"
type ClientVehicleStat struct {
	ClientName     string `json:"nome_empresa"`
	UniqueVehicles int    `json:"total_veiculos"`
	TotalImages    int    `json:"total_imagens"`
}

// VehicleSummary são os cartões de resumo da análise por veículo.
// Os extremos são nulos quando não há registros com veículo no período.
type VehicleSummary struct {
	TotalVehicles    int         `json:"total_veiculos"`
	TotalImages      int         `json:"total_imagens"`
	MostImages       *NamedCount `json:"mostImages"`
	LeastImages      *NamedCount `json:"leastImages"`
	MostActiveClient *NamedCount `json:"mostActiveClient"`
}

// VehicleAnalysis agrupa as três saídas da análise por veículo
type VehicleAnalysis struct {
	Summary     VehicleSummary      `json:"summary"`
	Stats       []VehicleStat       `json:"stats"`
	ClientStats []ClientVehicleStat `json:"clientStats"`
}

// DashboardSectionError identifica a falha de uma seção sem bloquear as demais
type DashboardSectionError struct {
	Section string `json:"section"`
	Message string `json:"message"`
}

// DashboardResponse é a resposta composta de uma consulta do dashboard.
// Seções não aplicáveis ao modo da consulta ficam nulas: ranking só é
// calculado para "todos os clientes"; hourly/weekly só para cliente específico.
type DashboardResponse struct {
	Filters    *DashboardFilters       `json:"-"`
	Metrics    *MetricStats            `json:"metrics,omitempty"`
	Evolution  []EvolutionPoint        `json:"evolution,omitempty"`
	Ranking    []RankingEntry          `json:"ranking,omitempty"`
	Hourly     []HourBucket            `json:"hourly,omitempty"`
	Weekly     []WeekBucket            `json:"weekly,omitempty"`
	Vehicles   *VehicleAnalysis        `json:"vehicles,omitempty"`
	Errors     []DashboardSectionError `json:"errors,omitempty"`
	ComputedAt time.Time               `json:"computed_at"`
}

// DashboardSnapshot é um resultado de dashboard pré-computado e persistido
// para servir consultas repetidas dentro da janela de validade
type DashboardSnapshot struct {
	ID         string             `json:"id"`
	ClientName string             `json:"client_name"` // Vazio para "todos os clientes"
	StartDate  time.Time          `json:"start_date"`
	EndDate    time.Time          `json:"end_date"`
	Payload    *DashboardResponse `json:"payload"`
	ComputedAt time.Time          `json:"computed_at"`
}
