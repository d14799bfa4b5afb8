// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// PublicationFormat é a classe de proporção da imagem gerada
type PublicationFormat string

const (
	FormatFeed    PublicationFormat = "FEED"    // Imagem quadrada
	FormatStories PublicationFormat = "STORIES" // Imagem vertical
)

// Publication representa um evento de geração/postagem de imagem
// registrado na tabela publicacoes_design_online
type Publication struct {
	ID          string            `json:"id"`
	CreatedAt   time.Time         `json:"created_at"`
	ClientName  *string           `json:"nome_empresa"`
	Format      PublicationFormat `json:"formato"`
	Vehicle     *string           `json:"veiculo_gerado"`
	ImageURL    *string           `json:"imagem_url"`
	Description *string           `json:"descricao"`
	Published   bool              `json:"publicado"`
}

// Client retorna o nome da empresa ou vazio quando ausente
func (p *Publication) Client() string {
	if p.ClientName == nil {
		return ""
	}
	return *p.ClientName
}

// VehicleName retorna o veículo gerado ou vazio quando ausente
func (p *Publication) VehicleName() string {
	if p.Vehicle == nil {
		return ""
	}
	return *p.Vehicle
}

// HasVehicle indica se o registro possui veículo associado
func (p *Publication) HasVehicle() bool {
	return p.Vehicle != nil && *p.Vehicle != ""
}

// DashboardFilters define o recorte de registros consumido pelo dashboard.
// ClientName nulo significa "todos os clientes".
type DashboardFilters struct {
	StartDate  *time.Time
	EndDate    *time.Time
	ClientName *string
}

// HasClient indica se o filtro está no modo "cliente específico"
func (f *DashboardFilters) HasClient() bool {
	return f != nil && f.ClientName != nil && *f.ClientName != ""
}

// HasValidRange indica se o intervalo de datas está presente e ordenado
func (f *DashboardFilters) HasValidRange() bool {
	if f == nil || f.StartDate == nil || f.EndDate == nil {
		return false
	}
	return !f.StartDate.After(*f.EndDate)
}
