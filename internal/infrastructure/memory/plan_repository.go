// Package memory implementa los puertos de persistencia sobre mapas en
// memoria, para tests y desarrollo sin base de datos.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Planfin-api/internal/domain/entity"
	"github.com/jhoicas/Planfin-api/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo store de documentos en memoria: un plan por usuario,
// last-write-wins, igual que el adaptador PostgreSQL.
type PlanRepo struct {
	mu   sync.RWMutex
	docs map[string]entity.PlanDocument
}

// NewPlanRepository construye el store en memoria.
func NewPlanRepository() *PlanRepo {
	return &PlanRepo{docs: make(map[string]entity.PlanDocument)}
}

// Load devuelve una copia del documento del usuario, o (nil, nil) si no existe.
func (r *PlanRepo) Load(_ context.Context, userID string) (*entity.PlanDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[userID]
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

// Save reemplaza el documento del usuario.
func (r *PlanRepo) Save(_ context.Context, doc *entity.PlanDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[doc.UserID] = *doc
	return nil
}
