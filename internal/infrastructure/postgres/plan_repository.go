package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Planfin-api/internal/domain/entity"
	"github.com/jhoicas/Planfin-api/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implementación del puerto PlanRepository sobre PostgreSQL.
// El plan se guarda como documento JSONB completo, un registro por usuario:
//
//	plan_documents(user_id PK, schema_version, doc JSONB, updated_at)
//
// El upsert por user_id materializa la política last-write-wins del store.
type PlanRepo struct {
	pool *pgxpool.Pool
}

// NewPlanRepository construye el adaptador de persistencia del plan.
func NewPlanRepository(pool *pgxpool.Pool) *PlanRepo {
	return &PlanRepo{pool: pool}
}

// Load devuelve el documento del usuario, o (nil, nil) si nunca guardó.
func (r *PlanRepo) Load(ctx context.Context, userID string) (*entity.PlanDocument, error) {
	query := `
		SELECT user_id, schema_version, doc, updated_at
		FROM plan_documents WHERE user_id = $1`

	var doc entity.PlanDocument
	var raw []byte
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&doc.UserID, &doc.SchemaVersion, &raw, &doc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	if err := json.Unmarshal(raw, &doc.Config); err != nil {
		return nil, fmt.Errorf("decodificar plan: %w", err)
	}
	return &doc, nil
}

// Save inserta o reemplaza el documento del usuario.
func (r *PlanRepo) Save(ctx context.Context, doc *entity.PlanDocument) error {
	raw, err := json.Marshal(doc.Config)
	if err != nil {
		return fmt.Errorf("codificar plan: %w", err)
	}

	query := `
		INSERT INTO plan_documents (user_id, schema_version, doc, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET schema_version = EXCLUDED.schema_version,
		    doc            = EXCLUDED.doc,
		    updated_at     = EXCLUDED.updated_at`
	if _, err := r.pool.Exec(ctx, query, doc.UserID, doc.SchemaVersion, raw, doc.UpdatedAt); err != nil {
		return fmt.Errorf("upsert plan: %w", err)
	}
	return nil
}
