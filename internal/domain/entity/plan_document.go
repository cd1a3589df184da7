package entity

import "time"

// PlanSchemaVersion versión del esquema del documento almacenado. Las cinco
// variantes históricas del modelo se consolidaron en este único esquema.
const PlanSchemaVersion = "v10"

// PlanDocument es el documento de plan de negocio de un usuario: la
// BusinessConfig más metadatos de almacenamiento. Hay exactamente un documento
// por usuario; la política del store es last-write-wins.
type PlanDocument struct {
	UserID        string
	SchemaVersion string
	Config        BusinessConfig
	UpdatedAt     time.Time
}
