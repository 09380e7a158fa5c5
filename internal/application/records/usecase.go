package records

import (
	"time"

	"github.com/jhoicas/hogar-api/internal/application/dto"
	"github.com/jhoicas/hogar-api/internal/domain/entity"
	"github.com/jhoicas/hogar-api/internal/domain/repository"
)

// UseCase consulta y purga del historial de cambios. La escritura de deltas
// no pasa por aquí: los motores los emiten dentro de sus transacciones.
type UseCase struct {
	recordRepo repository.RecordRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(recordRepo repository.RecordRepository) *UseCase {
	return &UseCase{recordRepo: recordRepo}
}

// List devuelve los deltas del hogar, más recientes primero.
func (uc *UseCase) List(householdID string, in dto.ListRecordsRequest) ([]dto.RecordResponse, error) {
	list, err := uc.recordRepo.ListByHousehold(householdID, toFilter(in))
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecordResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRecordResponse(r))
	}
	return out, nil
}

// Purge elimina deltas del hogar según los filtros.
func (uc *UseCase) Purge(householdID string, in dto.ListRecordsRequest) error {
	return uc.recordRepo.DeleteByHousehold(householdID, toFilter(in))
}

func toFilter(in dto.ListRecordsRequest) repository.RecordFilter {
	f := repository.RecordFilter{
		ID:          in.ID,
		OperateType: in.OperateType,
		EntityType:  in.EntityType,
	}
	if in.StartDate != nil {
		t := time.UnixMilli(*in.StartDate)
		f.StartDate = &t
	}
	if in.EndDate != nil {
		t := time.UnixMilli(*in.EndDate)
		f.EndDate = &t
	}
	return f
}

func toRecordResponse(r *entity.Record) dto.RecordResponse {
	return dto.RecordResponse{
		ID:                 r.ID,
		UserName:           r.UserName,
		OperateType:        r.OperateType,
		EntityType:         r.EntityType,
		RecordType:         r.RecordType,
		ItemNameOld:        r.ItemNameOld,
		ItemNameNew:        r.ItemNameNew,
		ItemDescriptionOld: r.ItemDescriptionOld,
		ItemDescriptionNew: r.ItemDescriptionNew,
		ItemPhotoOld:       r.ItemPhotoOld,
		ItemPhotoNew:       r.ItemPhotoNew,
		CategoryNameOld:    r.CategoryNameOld,
		CategoryNameNew:    r.CategoryNameNew,
		RoomNameOld:        r.RoomNameOld,
		RoomNameNew:        r.RoomNameNew,
		CabinetNameOld:     r.CabinetNameOld,
		CabinetNameNew:     r.CabinetNameNew,
		QuantityCountOld:   r.QuantityCountOld,
		QuantityCountNew:   r.QuantityCountNew,
		MinStockCountOld:   r.MinStockCountOld,
		MinStockCountNew:   r.MinStockCountNew,
		Description:        r.Description,
		CreatedAt:          r.CreatedAt.UnixMilli(),
	}
}
