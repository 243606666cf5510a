package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/grooming-service/internal/domain"
)

// ServiceRepository defines persistence access for the service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) error
	Update(ctx context.Context, service *domain.Service) error
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	GetByName(ctx context.Context, name string) (*domain.Service, error)
	ListActive(ctx context.Context, limit, offset int) ([]domain.Service, int, error)
	ListAllActive(ctx context.Context) ([]domain.Service, error)
	SetExpired(ctx context.Context, id string) error
}

type serviceRepository struct {
	pool *pgxpool.Pool
}

// NewServiceRepository returns a Postgres-backed implementation.
func NewServiceRepository(pool *pgxpool.Pool) ServiceRepository {
	return &serviceRepository{pool: pool}
}

const serviceColumns = `id, name, price, expired`

func (r *serviceRepository) Create(ctx context.Context, service *domain.Service) error {
	const query = `
        INSERT INTO services (name, price, expired)
        VALUES ($1, $2, $3)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		service.Name,
		service.Price,
		service.Expired,
	).Scan(&service.ID)
}

func (r *serviceRepository) Update(ctx context.Context, service *domain.Service) error {
	const query = `UPDATE services SET name=$1, price=$2, expired=$3 WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query, service.Name, service.Price, service.Expired, service.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	return r.fetchSingle(ctx, `SELECT `+serviceColumns+` FROM services WHERE id=$1`, id)
}

func (r *serviceRepository) GetByName(ctx context.Context, name string) (*domain.Service, error) {
	return r.fetchSingle(ctx, `SELECT `+serviceColumns+` FROM services WHERE name=$1`, name)
}

func (r *serviceRepository) ListActive(ctx context.Context, limit, offset int) ([]domain.Service, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM services WHERE expired=FALSE`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `SELECT ` + serviceColumns + ` FROM services WHERE expired=FALSE ORDER BY price DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	services := make([]domain.Service, 0, limit)
	for rows.Next() {
		var service domain.Service
		if err := scanService(rows, &service); err != nil {
			return nil, 0, err
		}
		services = append(services, service)
	}
	return services, total, rows.Err()
}

func (r *serviceRepository) ListAllActive(ctx context.Context) ([]domain.Service, error) {
	const query = `SELECT ` + serviceColumns + ` FROM services WHERE expired=FALSE ORDER BY price DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		var service domain.Service
		if err := scanService(rows, &service); err != nil {
			return nil, err
		}
		services = append(services, service)
	}
	return services, rows.Err()
}

func (r *serviceRepository) SetExpired(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE services SET expired=TRUE WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *serviceRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Service, error) {
	var service domain.Service
	if err := scanService(r.pool.QueryRow(ctx, query, arg), &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func scanService(row pgx.Row, service *domain.Service) error {
	return row.Scan(
		&service.ID,
		&service.Name,
		&service.Price,
		&service.Expired,
	)
}
