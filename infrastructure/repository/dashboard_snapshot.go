package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"github.com/vfg2006/design-online-api/infrastructure/database/postgres"
	"github.com/vfg2006/design-online-api/internal/domain"
)

const (
	dashboardSnapshotsTable = "dashboard_snapshots ds"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DashboardSnapshotRepository persiste dashboards pré-computados, indexados
// por (cliente, início, fim). Cliente vazio representa "todos os clientes".
type DashboardSnapshotRepository interface {
	GetByFilter(filters *domain.DashboardFilters) (*domain.DashboardSnapshot, error)
	Save(snapshot *domain.DashboardSnapshot) error
	DeleteOlderThan(days int) (int64, error)
}

type dashboardSnapshotRepository struct {
	conn *postgres.Connection
}

func NewDashboardSnapshotRepository(conn *postgres.Connection) DashboardSnapshotRepository {
	return &dashboardSnapshotRepository{
		conn: conn,
	}
}

func snapshotClientKey(filters *domain.DashboardFilters) string {
	if filters.HasClient() {
		return *filters.ClientName
	}
	return ""
}

// GetByFilter retorna o snapshot do recorte exato, ou nil quando inexistente
func (r *dashboardSnapshotRepository) GetByFilter(filters *domain.DashboardFilters) (*domain.DashboardSnapshot, error) {
	query, args, err := squirrel.
		Select("ds.id, ds.client_name, ds.start_date, ds.end_date, ds.payload, ds.computed_at").
		From(dashboardSnapshotsTable).
		Where(squirrel.Eq{
			"ds.client_name": snapshotClientKey(filters),
			"ds.start_date":  *filters.StartDate,
			"ds.end_date":    *filters.EndDate,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de snapshot")
	}

	var (
		snapshot domain.DashboardSnapshot
		payload  []byte
	)

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&snapshot.ID,
		&snapshot.ClientName,
		&snapshot.StartDate,
		&snapshot.EndDate,
		&payload,
		&snapshot.ComputedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao escanear snapshot")
	}

	if err := json.Unmarshal(payload, &snapshot.Payload); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar payload do snapshot")
	}

	return &snapshot, nil
}

// Save insere ou substitui o snapshot do recorte
func (r *dashboardSnapshotRepository) Save(snapshot *domain.DashboardSnapshot) error {
	if snapshot.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return errors.Wrap(err, "erro ao gerar id do snapshot")
		}
		snapshot.ID = id
	}

	payload, err := json.Marshal(snapshot.Payload)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar payload do snapshot")
	}

	query, args, err := squirrel.
		Insert("dashboard_snapshots").
		Columns("id", "client_name", "start_date", "end_date", "payload", "computed_at").
		Values(snapshot.ID, snapshot.ClientName, snapshot.StartDate, snapshot.EndDate, payload, snapshot.ComputedAt).
		Suffix(`ON CONFLICT (client_name, start_date, end_date)
			DO UPDATE SET payload = EXCLUDED.payload, computed_at = EXCLUDED.computed_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir o upsert de snapshot")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "erro ao salvar snapshot")
	}

	return nil
}

// DeleteOlderThan remove snapshots computados há mais de days dias
func (r *dashboardSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("dashboard_snapshots").
		Where(squirrel.Lt{"computed_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query de limpeza de snapshots")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao remover snapshots antigos")
	}

	return result.RowsAffected()
}
