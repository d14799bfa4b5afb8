package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/design-online-api/infrastructure/database/postgres"
	"github.com/vfg2006/design-online-api/internal/domain"
)

const (
	publicationsTable = "publicacoes_design_online p"
)

// PublicationRepository é a fonte de registros de publicação consumida
// pelo dashboard. A chamada retorna uma lista finita já materializada.
type PublicationRepository interface {
	ListByFilter(filters *domain.DashboardFilters) ([]*domain.Publication, error)
	ListClients() ([]string, error)
}

type publicationRepository struct {
	conn *postgres.Connection
}

func NewPublicationRepository(conn *postgres.Connection) PublicationRepository {
	return &publicationRepository{
		conn: conn,
	}
}

// ListByFilter retorna as publicações do intervalo, com ambas as bordas
// inclusivas, e opcionalmente restritas a um cliente (igualdade exata)
func (r *publicationRepository) ListByFilter(filters *domain.DashboardFilters) ([]*domain.Publication, error) {
	builder := squirrel.
		Select("p.id, p.created_at, p.nome_empresa, p.formato, p.veiculo_gerado, p.imagem_url, p.descricao, p.publicado").
		From(publicationsTable).
		Where(squirrel.GtOrEq{"p.created_at": *filters.StartDate}).
		Where(squirrel.LtOrEq{"p.created_at": *filters.EndDate}).
		OrderBy("p.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.HasClient() {
		builder = builder.Where(squirrel.Eq{"p.nome_empresa": *filters.ClientName})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de publicações")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de publicações")
	}
	defer rows.Close()

	publications := make([]*domain.Publication, 0)
	for rows.Next() {
		publication, err := r.scanPublication(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear publicação")
		}
		publications = append(publications, publication)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de publicações")
	}

	return publications, nil
}

// ListClients retorna os nomes de empresa distintos e não vazios, em ordem
// alfabética
func (r *publicationRepository) ListClients() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT p.nome_empresa").
		From(publicationsTable).
		Where(squirrel.NotEq{"p.nome_empresa": nil}).
		Where(squirrel.NotEq{"p.nome_empresa": ""}).
		OrderBy("p.nome_empresa ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de clientes")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de clientes")
	}
	defer rows.Close()

	clients := make([]string, 0)
	for rows.Next() {
		var client string
		if err := rows.Scan(&client); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear nome de cliente")
		}
		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de clientes")
	}

	return clients, nil
}

func (r *publicationRepository) scanPublication(rows *sql.Rows) (*domain.Publication, error) {
	var (
		publication domain.Publication
		clientName  sql.NullString
		format      sql.NullString
		vehicle     sql.NullString
		imageURL    sql.NullString
		description sql.NullString
		published   sql.NullBool
	)

	err := rows.Scan(
		&publication.ID,
		&publication.CreatedAt,
		&clientName,
		&format,
		&vehicle,
		&imageURL,
		&description,
		&published,
	)
	if err != nil {
		return nil, err
	}

	if clientName.Valid {
		publication.ClientName = &clientName.String
	}
	if format.Valid {
		publication.Format = domain.PublicationFormat(format.String)
	}
	if vehicle.Valid {
		publication.Vehicle = &vehicle.String
	}
	if imageURL.Valid {
		publication.ImageURL = &imageURL.String
	}
	if description.Valid {
		publication.Description = &description.String
	}
	publication.Published = published.Valid && published.Bool

	return &publication, nil
}
