package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/jackc/pgx/v5"
)

type ProjectRepository struct {
	*DocumentStore[model.Project, *model.Project]
	db DBTX
}

func NewProjectRepository(db DBTX) *ProjectRepository {
	return &ProjectRepository{
		DocumentStore: NewDocumentStore[model.Project](db, TableProjects),
		db:            db,
	}
}

// GetBySlug looks a project up by its navLink.
func (r *ProjectRepository) GetBySlug(ctx context.Context, navLink string) (*model.Project, error) {
	return r.findOne(ctx, `doc->>'navLink' = $1`, navLink)
}

// DistinctLanguages lists every languagesUsed.name across projects, sorted.
func (r *ProjectRepository) DistinctLanguages(ctx context.Context) ([]string, error) {
	stmt := `
		SELECT DISTINCT lang->>'name' AS name
		FROM projects, jsonb_array_elements(doc->'languagesUsed') AS lang
		WHERE jsonb_typeof(doc->'languagesUsed') = 'array'
		  AND lang->>'name' IS NOT NULL
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("querying project languages: %w", err)
	}

	languages, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collecting project languages: %w", err)
	}

	return languages, nil
}
