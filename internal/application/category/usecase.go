package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/hogar-api/internal/application/dto"
	"github.com/jhoicas/hogar-api/internal/domain"
	"github.com/jhoicas/hogar-api/internal/domain/entity"
	"github.com/jhoicas/hogar-api/internal/domain/repository"
)

// PathSeparator separa los nombres de la ruta de ancestros en los deltas
// del historial (ej. "Cocina;Utensilios;Tenedores").
const PathSeparator = ";"

// UseCase es el motor de jerarquía de categorías: crear, renombrar,
// reparentar y eliminar en cascada, preservando los invariantes de nivel
// (raíz = 1, máximo configurable) y de unicidad de nombre entre hermanos.
// Toda mutación lee, valida y escribe dentro de la misma transacción,
// bloqueando con FOR UPDATE las filas de las que depende la validación
// (la raíz del subárbol y el padre destino) para que un escritor
// concurrente no invalide el nivel calculado entre validar y escribir.
type UseCase struct {
	txRunner     TxRunner
	categoryRepo repository.CategoryRepository
	maxLevel     int
}

// NewUseCase construye el motor. maxLevel llega por configuración explícita
// (3 en producción) para poder variarlo en tests.
func NewUseCase(txRunner TxRunner, categoryRepo repository.CategoryRepository, maxLevel int) *UseCase {
	return &UseCase{txRunner: txRunner, categoryRepo: categoryRepo, maxLevel: maxLevel}
}

// Create crea una categoría. Sin padre queda en nivel 1; con padre queda en
// parent.Level+1 y falla con ErrLevelExceeded si supera el máximo. El padre
// se lee bloqueado dentro de la transacción: un reparenteo concurrente del
// padre no puede dejar al hijo con nivel distinto de parent.Level+1.
func (uc *UseCase) Create(ctx context.Context, householdID, userName string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	now := time.Now()
	cat := &entity.Category{
		ID:          uuid.New().String(),
		HouseholdID: householdID,
		ParentID:    in.ParentID,
		Name:        name,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.txRunner.RunCategory(ctx, func(
		categoryRepo repository.CategoryRepository,
		itemRepo repository.ItemRepository,
		recordRepo repository.RecordRepository,
	) error {
		level := 1
		var parentPath []string
		if in.ParentID != "" {
			parent, err := lockCategory(categoryRepo, householdID, in.ParentID)
			if err != nil {
				return err
			}
			level = parent.Level + 1
			if level > uc.maxLevel {
				return domain.ErrLevelExceeded
			}
			parentPath, err = ancestorPath(categoryRepo, parent)
			if err != nil {
				return err
			}
		}

		dup, err := categoryRepo.ExistsSiblingName(householdID, in.ParentID, name)
		if err != nil {
			return err
		}
		if dup {
			return domain.ErrDuplicateName
		}

		cat.Level = level
		if err := categoryRepo.Create(cat); err != nil {
			return err
		}
		path := strings.Join(append(parentPath, name), PathSeparator)
		return recordRepo.Create(&entity.Record{
			ID:              uuid.New().String(),
			HouseholdID:     householdID,
			UserName:        userName,
			OperateType:     entity.OperateCreate,
			EntityType:      entity.EntityCategory,
			RecordType:      entity.RecordNormal,
			CategoryNameNew: &path,
			CreatedAt:       now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// Update renombra y/o reparenta una categoría en una sola operación atómica.
// ParentID en nil no toca el padre; "" convierte la categoría en raíz.
// Reparentar valida ciclo, colisión de nombre y el nivel hipotético de todo
// el subárbol antes de mutar nada; la raíz del subárbol y el padre destino
// quedan bloqueados mientras dura la validación.
func (uc *UseCase) Update(ctx context.Context, householdID, userName, categoryID string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	now := time.Now()
	var resp *dto.CategoryResponse
	err := uc.txRunner.RunCategory(ctx, func(
		categoryRepo repository.CategoryRepository,
		itemRepo repository.ItemRepository,
		recordRepo repository.RecordRepository,
	) error {
		cat, err := lockCategory(categoryRepo, householdID, categoryID)
		if err != nil {
			return err
		}

		oldPath, err := ancestorPath(categoryRepo, cat)
		if err != nil {
			return err
		}

		newName := cat.Name
		nameChanged := false
		if in.Name != nil {
			trimmed := strings.TrimSpace(*in.Name)
			if trimmed == "" {
				return domain.ErrInvalidName
			}
			if trimmed != cat.Name {
				newName = trimmed
				nameChanged = true
			}
		}

		newParentID := cat.ParentID
		parentChanged := false
		if in.ParentID != nil && *in.ParentID != cat.ParentID {
			newParentID = *in.ParentID
			parentChanged = true
		}

		if !nameChanged && !parentChanged {
			resp = toCategoryResponse(cat)
			return nil
		}

		// Subárbol completo (sin la propia categoría) para validar niveles y ciclos.
		descendants, err := collectSubtree(categoryRepo, cat)
		if err != nil {
			return err
		}

		newLevel := 1
		var newParentPath []string
		if newParentID != "" {
			if newParentID == cat.ID {
				return domain.ErrCycleDetected
			}
			for _, d := range descendants {
				if d.ID == newParentID {
					return domain.ErrCycleDetected
				}
			}
			parent, err := lockCategory(categoryRepo, householdID, newParentID)
			if err != nil {
				return err
			}
			newLevel = parent.Level + 1
			newParentPath, err = ancestorPath(categoryRepo, parent)
			if err != nil {
				return err
			}
		}

		levelDiff := newLevel - cat.Level
		if newLevel < 1 || newLevel > uc.maxLevel {
			return domain.ErrLevelExceeded
		}
		// Validar el nivel hipotético de cada descendiente antes de aplicar nada.
		for _, d := range descendants {
			if hyp := d.Level + levelDiff; hyp < 1 || hyp > uc.maxLevel {
				return domain.ErrLevelExceeded
			}
		}

		// Colisión de nombre en el grupo de hermanos destino. Al renombrar sin
		// reparentar el grupo es el actual; la propia fila no colisiona porque
		// su nombre persistido aún es el viejo.
		dup, err := categoryRepo.ExistsSiblingName(householdID, newParentID, newName)
		if err != nil {
			return err
		}
		if dup {
			return domain.ErrDuplicateName
		}

		cat.Name = newName
		cat.ParentID = newParentID
		cat.Level = newLevel
		cat.UpdatedAt = now
		if err := categoryRepo.Update(cat); err != nil {
			return err
		}
		// Desplazar el nivel de todo el subárbol. La validación previa ya
		// garantiza los límites: aquí no se aplica clamping.
		for _, d := range descendants {
			d.Level += levelDiff
			d.UpdatedAt = now
			if err := categoryRepo.Update(d); err != nil {
				return err
			}
		}

		oldPathJoined := strings.Join(oldPath, PathSeparator)
		newPath := strings.Join(append(newParentPath, newName), PathSeparator)
		if err := recordRepo.Create(&entity.Record{
			ID:              uuid.New().String(),
			HouseholdID:     householdID,
			UserName:        userName,
			OperateType:     entity.OperateUpdate,
			EntityType:      entity.EntityCategory,
			RecordType:      entity.RecordNormal,
			CategoryNameOld: &oldPathJoined,
			CategoryNameNew: &newPath,
			CreatedAt:       now,
		}); err != nil {
			return err
		}
		resp = toCategoryResponse(cat)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Delete elimina la categoría y todos sus descendientes en un solo lote
// atómico; los artículos que referenciaban cualquiera de ellas quedan sin
// categoría (no se eliminan). El subárbol se enumera dentro de la misma
// transacción que lo borra, con la raíz bloqueada.
func (uc *UseCase) Delete(ctx context.Context, householdID, userName, categoryID string) error {
	now := time.Now()
	return uc.txRunner.RunCategory(ctx, func(
		categoryRepo repository.CategoryRepository,
		itemRepo repository.ItemRepository,
		recordRepo repository.RecordRepository,
	) error {
		cat, err := lockCategory(categoryRepo, householdID, categoryID)
		if err != nil {
			return err
		}
		descendants, err := collectSubtree(categoryRepo, cat)
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(descendants)+1)
		ids = append(ids, cat.ID)
		for _, d := range descendants {
			ids = append(ids, d.ID)
		}

		if err := itemRepo.ClearCategoryRefs(householdID, ids); err != nil {
			return err
		}
		if err := categoryRepo.DeleteByIDs(ids); err != nil {
			return err
		}
		return recordRepo.Create(&entity.Record{
			ID:              uuid.New().String(),
			HouseholdID:     householdID,
			UserName:        userName,
			OperateType:     entity.OperateDelete,
			EntityType:      entity.EntityCategory,
			RecordType:      entity.RecordNormal,
			CategoryNameOld: &cat.Name,
			CreatedAt:       now,
		})
	})
}

// List lista todas las categorías del hogar (plana, ordenada por nivel en el
// repositorio).
func (uc *UseCase) List(householdID string) ([]dto.CategoryResponse, error) {
	list, err := uc.categoryRepo.ListByHousehold(householdID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// GetByID obtiene una categoría del hogar.
func (uc *UseCase) GetByID(householdID, categoryID string) (*dto.CategoryResponse, error) {
	cat, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil || cat.HouseholdID != householdID {
		return nil, domain.ErrCategoryNotFound
	}
	return toCategoryResponse(cat), nil
}

// lockCategory lee la categoría con FOR UPDATE sobre el repositorio ligado a
// la transacción y verifica pertenencia al hogar.
func lockCategory(repo repository.CategoryRepository, householdID, categoryID string) (*entity.Category, error) {
	cat, err := repo.GetForUpdate(categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil || cat.HouseholdID != householdID {
		return nil, domain.ErrCategoryNotFound
	}
	return cat, nil
}

// collectSubtree enumera todos los descendientes con una pila explícita y un
// conjunto de visitados. El invariante prohíbe ciclos, pero el guard evita
// una recursión infinita ante datos corruptos.
func collectSubtree(repo repository.CategoryRepository, root *entity.Category) ([]*entity.Category, error) {
	var out []*entity.Category
	visited := map[string]bool{root.ID: true}
	stack := []string{root.ID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		children, err := repo.ListByParent(root.HouseholdID, id)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			if visited[child.ID] {
				return nil, fmt.Errorf("ciclo en la jerarquía de categorías: %s", child.ID)
			}
			visited[child.ID] = true
			out = append(out, child)
			stack = append(stack, child.ID)
		}
	}
	return out, nil
}

// ancestorPath devuelve los nombres desde la raíz hasta la categoría dada
// (inclusive), con guard de visitados contra cadenas de padres corruptas.
func ancestorPath(repo repository.CategoryRepository, cat *entity.Category) ([]string, error) {
	var names []string
	visited := map[string]bool{}
	current := cat
	for current != nil {
		if visited[current.ID] {
			return nil, fmt.Errorf("ciclo en la cadena de padres: %s", current.ID)
		}
		visited[current.ID] = true
		names = append([]string{current.Name}, names...)
		if current.ParentID == "" {
			break
		}
		parent, err := repo.GetByID(current.ParentID)
		if err != nil {
			return nil, err
		}
		current = parent
	}
	return names, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, ParentID: c.ParentID, Level: c.Level}
}
