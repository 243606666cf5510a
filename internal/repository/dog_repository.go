package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/grooming-service/internal/domain"
)

// DogRepository defines persistence access for dogs.
type DogRepository interface {
	Create(ctx context.Context, dog *domain.Dog) error
	Update(ctx context.Context, dog *domain.Dog) error
	GetByID(ctx context.Context, id string) (*domain.Dog, error)
	GetByOwnerAndName(ctx context.Context, ownerID, name string) (*domain.Dog, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.Dog, int, error)
	ListAllByOwner(ctx context.Context, ownerID string) ([]domain.Dog, error)
}

type dogRepository struct {
	pool *pgxpool.Pool
}

// NewDogRepository returns a Postgres-backed implementation.
func NewDogRepository(pool *pgxpool.Pool) DogRepository {
	return &dogRepository{pool: pool}
}

const dogColumns = `id, owner_id, name, breed, age, length, gender, comment`

func (r *dogRepository) Create(ctx context.Context, dog *domain.Dog) error {
	const query = `
        INSERT INTO dogs (owner_id, name, breed, age, length, gender, comment)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		dog.OwnerID,
		dog.Name,
		dog.Breed,
		dog.Age,
		dog.Length,
		dog.Gender,
		dog.Comment,
	).Scan(&dog.ID)
}

func (r *dogRepository) Update(ctx context.Context, dog *domain.Dog) error {
	const query = `
        UPDATE dogs SET name=$1, breed=$2, age=$3, length=$4, gender=$5, comment=$6
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		dog.Name,
		dog.Breed,
		dog.Age,
		dog.Length,
		dog.Gender,
		dog.Comment,
		dog.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *dogRepository) GetByID(ctx context.Context, id string) (*domain.Dog, error) {
	return r.fetchSingle(ctx, `SELECT `+dogColumns+` FROM dogs WHERE id=$1`, id)
}

func (r *dogRepository) GetByOwnerAndName(ctx context.Context, ownerID, name string) (*domain.Dog, error) {
	var dog domain.Dog
	const query = `SELECT ` + dogColumns + ` FROM dogs WHERE owner_id=$1 AND name=$2`
	if err := scanDog(r.pool.QueryRow(ctx, query, ownerID, name), &dog); err != nil {
		return nil, err
	}
	return &dog, nil
}

func (r *dogRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.Dog, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM dogs WHERE owner_id=$1`, ownerID).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `SELECT ` + dogColumns + ` FROM dogs WHERE owner_id=$1 ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	dogs := make([]domain.Dog, 0, limit)
	for rows.Next() {
		var dog domain.Dog
		if err := scanDog(rows, &dog); err != nil {
			return nil, 0, err
		}
		dogs = append(dogs, dog)
	}
	return dogs, total, rows.Err()
}

func (r *dogRepository) ListAllByOwner(ctx context.Context, ownerID string) ([]domain.Dog, error) {
	const query = `SELECT ` + dogColumns + ` FROM dogs WHERE owner_id=$1 ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dogs []domain.Dog
	for rows.Next() {
		var dog domain.Dog
		if err := scanDog(rows, &dog); err != nil {
			return nil, err
		}
		dogs = append(dogs, dog)
	}
	return dogs, rows.Err()
}

func (r *dogRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Dog, error) {
	var dog domain.Dog
	if err := scanDog(r.pool.QueryRow(ctx, query, arg), &dog); err != nil {
		return nil, err
	}
	return &dog, nil
}

func scanDog(row pgx.Row, dog *domain.Dog) error {
	return row.Scan(
		&dog.ID,
		&dog.OwnerID,
		&dog.Name,
		&dog.Breed,
		&dog.Age,
		&dog.Length,
		&dog.Gender,
		&dog.Comment,
	)
}
