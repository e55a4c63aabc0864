// Package topic implements the Topic repository using PostgreSQL.
package topic

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/nmoskvina/lexiday/internal/adapter/postgres"
	"github.com/nmoskvina/lexiday/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new topic repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a topic by primary key.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := builder.
		Select("id", "name", "description", "created_at").
		From("topics").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get topic query: %w", err)
	}

	var t domain.Topic
	if err := q.QueryRow(ctx, query, args...).Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}
	return &t, nil
}

// List returns all topics ordered by name.
// Returns an empty slice (not nil) when no topics exist.
func (r *Repo) List(ctx context.Context) ([]domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := builder.
		Select("id", "name", "description", "created_at").
		From("topics").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list topics query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	topics := make([]domain.Topic, 0)
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return topics, nil
}

// Create inserts a topic. Returns domain.ErrAlreadyExists on a name or
// ID collision.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := builder.
		Insert("topics").
		Columns("id", "name", "description", "created_at").
		Values(t.ID, t.Name, t.Description, t.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create topic query: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "topic", t.ID)
	}
	return nil
}
