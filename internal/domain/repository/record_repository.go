package repository

import (
	"time"

	"github.com/jhoicas/hogar-api/internal/domain/entity"
)

// RecordFilter filtros opcionales para consultar o purgar el historial.
type RecordFilter struct {
	ID          string
	OperateType *int
	EntityType  *int
	StartDate   *time.Time
	EndDate     *time.Time
}

// RecordRepository es el puerto del registrador de cambios: persiste los
// deltas antes/después que emiten los motores dentro de su misma transacción.
type RecordRepository interface {
	Create(record *entity.Record) error
	ListByHousehold(householdID string, filter RecordFilter) ([]*entity.Record, error)
	DeleteByHousehold(householdID string, filter RecordFilter) error
}
