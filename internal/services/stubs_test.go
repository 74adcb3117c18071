package services

import (
	"context"
	"io"
	"time"

	"fleet-system/internal/entities"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/types"

	"github.com/jackc/pgx/v5"
)

// Function-backed fakes. A nil hook means "not expected in this test": reads
// report ErrNotFound, writes succeed with zero values.

type stubTxManager struct{}

func (m *stubTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type stubCraneRepo struct {
	findFn           func(id uint64) (*entities.Crane, error)
	updateLocationFn func(id, locationID uint64) error
	upsertFn         func(crane *entities.Crane) error
}

func (r *stubCraneRepo) GetCranes(ctx context.Context, filter types.Filter) ([]entities.Crane, uint64, error) {
	return nil, 0, nil
}

func (r *stubCraneRepo) FindCrane(ctx context.Context, id uint64) (*entities.Crane, error) {
	if r.findFn == nil {
		return nil, apperrors.ErrNotFound
	}
	return r.findFn(id)
}

func (r *stubCraneRepo) CreateCrane(ctx context.Context, crane *entities.Crane) (uint64, error) {
	return 0, nil
}

func (r *stubCraneRepo) UpdateCrane(ctx context.Context, id uint64, crane *entities.Crane) error {
	return nil
}

func (r *stubCraneRepo) DeleteCrane(ctx context.Context, id uint64) error { return nil }

func (r *stubCraneRepo) UpdateLocation(ctx context.Context, tx pgx.Tx, id uint64, locationID uint64) error {
	if r.updateLocationFn == nil {
		return nil
	}
	return r.updateLocationFn(id, locationID)
}

func (r *stubCraneRepo) UpsertByPlate(ctx context.Context, crane *entities.Crane) error {
	if r.upsertFn == nil {
		return nil
	}
	return r.upsertFn(crane)
}

type stubTruckRepo struct {
	findFn           func(id uint64) (*entities.Truck, error)
	updateLocationFn func(id, locationID uint64) error
}

func (r *stubTruckRepo) GetTrucks(ctx context.Context, filter types.Filter) ([]entities.Truck, uint64, error) {
	return nil, 0, nil
}

func (r *stubTruckRepo) FindTruck(ctx context.Context, id uint64) (*entities.Truck, error) {
	if r.findFn == nil {
		return nil, apperrors.ErrNotFound
	}
	return r.findFn(id)
}

func (r *stubTruckRepo) CreateTruck(ctx context.Context, truck *entities.Truck) (uint64, error) {
	return 0, nil
}

func (r *stubTruckRepo) UpdateTruck(ctx context.Context, id uint64, truck *entities.Truck) error {
	return nil
}

func (r *stubTruckRepo) DeleteTruck(ctx context.Context, id uint64) error { return nil }

func (r *stubTruckRepo) UpdateLocation(ctx context.Context, tx pgx.Tx, id uint64, locationID uint64) error {
	if r.updateLocationFn == nil {
		return nil
	}
	return r.updateLocationFn(id, locationID)
}

type stubLocationRepo struct {
	findFn func(id uint64) (*entities.Location, error)
}

func (r *stubLocationRepo) GetLocations(ctx context.Context, filter types.Filter) ([]entities.Location, uint64, error) {
	return nil, 0, nil
}

func (r *stubLocationRepo) FindLocation(ctx context.Context, id uint64) (*entities.Location, error) {
	if r.findFn == nil {
		return nil, apperrors.ErrNotFound
	}
	return r.findFn(id)
}

func (r *stubLocationRepo) CreateLocation(ctx context.Context, location *entities.Location) (uint64, error) {
	return 0, nil
}

func (r *stubLocationRepo) UpdateLocation(ctx context.Context, id uint64, location *entities.Location) error {
	return nil
}

func (r *stubLocationRepo) DeleteLocation(ctx context.Context, id uint64) error { return nil }

type stubMovementRepo struct {
	findFn    func(id uint64) (*entities.MovementLog, error)
	insertFn  func(movement *entities.MovementLog) (uint64, error)
	historyFn func(resourceType string, resourceID uint64) ([]entities.MovementLog, error)
}

func (r *stubMovementRepo) GetMovements(ctx context.Context, filter types.Filter) ([]entities.MovementLog, uint64, error) {
	return nil, 0, nil
}

func (r *stubMovementRepo) FindMovement(ctx context.Context, id uint64) (*entities.MovementLog, error) {
	if r.findFn == nil {
		return nil, apperrors.ErrNotFound
	}
	return r.findFn(id)
}

func (r *stubMovementRepo) InsertTx(ctx context.Context, tx pgx.Tx, movement *entities.MovementLog) (uint64, error) {
	if r.insertFn == nil {
		return 0, nil
	}
	return r.insertFn(movement)
}

func (r *stubMovementRepo) History(ctx context.Context, resourceType string, resourceID uint64) ([]entities.MovementLog, error) {
	if r.historyFn == nil {
		return nil, nil
	}
	return r.historyFn(resourceType, resourceID)
}

type stubEquipmentRepo struct {
	findTypeFn        func(id uint64) (*entities.EquipmentType, error)
	findItemFn        func(id uint64) (*entities.EquipmentItem, error)
	createItemFn      func(item *entities.EquipmentItem) (uint64, error)
	setItemPlaceFn    func(id uint64, locationID, truckID *uint64) error
	updateLocationFn  func(id, locationID uint64) error
	availableByTypeFn func(equipmentTypeID uint64) ([]entities.EquipmentItem, error)
}

func (r *stubEquipmentRepo) GetEquipmentTypes(ctx context.Context, filter types.Filter) ([]entities.EquipmentType, uint64, error) {
	return nil, 0, nil
}

func (r *stubEquipmentRepo) FindEquipmentType(ctx context.Context, id uint64) (*entities.EquipmentType, error) {
	if r.findTypeFn == nil {
		return nil, apperrors.ErrNotFound
	}
	return r.findTypeFn(id)
}

func (r *stubEquipmentRepo) CreateEquipmentType(ctx context.Context, et *entities.EquipmentType) (uint64, error) {
	return 0, nil
}

func (r *stubEquipmentRepo) GetEquipmentItems(ctx context.Context, filter types.Filter) ([]entities.EquipmentItem, uint64, error) {
	return nil, 0, nil
}

func (r *stubEquipmentRepo) FindEquipmentItem(ctx context.Context, id uint64) (*entities.EquipmentItem, error) {
	if r.findItemFn == nil {
		return nil, apperrors.ErrNotFound
	}
	return r.findItemFn(id)
}

func (r *stubEquipmentRepo) CreateEquipmentItem(ctx context.Context, item *entities.EquipmentItem) (uint64, error) {
	if r.createItemFn == nil {
		return 0, nil
	}
	return r.createItemFn(item)
}

func (r *stubEquipmentRepo) SetItemPlace(ctx context.Context, id uint64, locationID, truckID *uint64) error {
	if r.setItemPlaceFn == nil {
		return nil
	}
	return r.setItemPlaceFn(id, locationID, truckID)
}

func (r *stubEquipmentRepo) UpdateItemLocationTx(ctx context.Context, tx pgx.Tx, id uint64, locationID uint64) error {
	if r.updateLocationFn == nil {
		return nil
	}
	return r.updateLocationFn(id, locationID)
}

func (r *stubEquipmentRepo) ItemsOnTruck(ctx context.Context, truckID uint64) ([]entities.EquipmentItem, error) {
	return nil, nil
}

func (r *stubEquipmentRepo) ItemsByOwnerCrane(ctx context.Context, craneID uint64) ([]entities.EquipmentItem, error) {
	return nil, nil
}

func (r *stubEquipmentRepo) AvailableByType(ctx context.Context, equipmentTypeID uint64) ([]entities.EquipmentItem, error) {
	if r.availableByTypeFn == nil {
		return nil, nil
	}
	return r.availableByTypeFn(equipmentTypeID)
}

type stubAssignmentRepo struct {
	activeByProjectFn  func(projectID uint64) ([]entities.ProjectAssignment, error)
	historyByProjectFn func(projectID uint64) ([]entities.ProjectAssignment, error)
	lockFn             func(resourceType string, resourceID uint64) error
	findConflictFn     func(resourceType string, resourceID, excludeProjectID uint64) (*entities.ProjectAssignment, error)
	insertFn           func(assignment *entities.ProjectAssignment) (uint64, error)
	closeFn            func(projectID, id uint64, unassignedAt time.Time, reason *string) error
	amendFn            func(projectID, id uint64, reason string) error
}

func (r *stubAssignmentRepo) ActiveByProject(ctx context.Context, projectID uint64) ([]entities.ProjectAssignment, error) {
	if r.activeByProjectFn == nil {
		return nil, nil
	}
	return r.activeByProjectFn(projectID)
}

func (r *stubAssignmentRepo) HistoryByProject(ctx context.Context, projectID uint64) ([]entities.ProjectAssignment, error) {
	if r.historyByProjectFn == nil {
		return nil, nil
	}
	return r.historyByProjectFn(projectID)
}

func (r *stubAssignmentRepo) ActiveByResource(ctx context.Context, resourceType string, resourceID uint64) ([]entities.ProjectAssignment, error) {
	return nil, nil
}

func (r *stubAssignmentRepo) LockResource(ctx context.Context, tx pgx.Tx, resourceType string, resourceID uint64) error {
	if r.lockFn == nil {
		return nil
	}
	return r.lockFn(resourceType, resourceID)
}

func (r *stubAssignmentRepo) FindOpenConflict(ctx context.Context, tx pgx.Tx, resourceType string, resourceID, excludeProjectID uint64) (*entities.ProjectAssignment, error) {
	if r.findConflictFn == nil {
		return nil, apperrors.ErrNotFound
	}
	return r.findConflictFn(resourceType, resourceID, excludeProjectID)
}

func (r *stubAssignmentRepo) InsertTx(ctx context.Context, tx pgx.Tx, assignment *entities.ProjectAssignment) (uint64, error) {
	if r.insertFn == nil {
		return 0, nil
	}
	return r.insertFn(assignment)
}

func (r *stubAssignmentRepo) CloseAssignment(ctx context.Context, projectID, id uint64, unassignedAt time.Time, reason *string) error {
	if r.closeFn == nil {
		return nil
	}
	return r.closeFn(projectID, id, unassignedAt, reason)
}

func (r *stubAssignmentRepo) AmendReason(ctx context.Context, projectID, id uint64, reason string) error {
	if r.amendFn == nil {
		return nil
	}
	return r.amendFn(projectID, id, reason)
}

type stubProjectRepo struct {
	findFn func(id uint64) (*entities.Project, error)
}

func (r *stubProjectRepo) GetProjects(ctx context.Context, filter types.Filter) ([]entities.Project, uint64, error) {
	return nil, 0, nil
}

func (r *stubProjectRepo) FindProject(ctx context.Context, id uint64) (*entities.Project, error) {
	if r.findFn == nil {
		return nil, apperrors.ErrNotFound
	}
	return r.findFn(id)
}

func (r *stubProjectRepo) CreateProject(ctx context.Context, project *entities.Project) (uint64, error) {
	return 0, nil
}

func (r *stubProjectRepo) UpdateProject(ctx context.Context, id uint64, project *entities.Project) error {
	return nil
}

func (r *stubProjectRepo) DeleteProject(ctx context.Context, id uint64) error { return nil }

type stubPersonRepo struct {
	findFn func(id uint64) (*entities.Person, error)
}

func (r *stubPersonRepo) GetPersons(ctx context.Context, filter types.Filter) ([]entities.Person, uint64, error) {
	return nil, 0, nil
}

func (r *stubPersonRepo) FindPerson(ctx context.Context, id uint64) (*entities.Person, error) {
	if r.findFn == nil {
		return nil, apperrors.ErrNotFound
	}
	return r.findFn(id)
}

func (r *stubPersonRepo) CreatePerson(ctx context.Context, person *entities.Person) (uint64, error) {
	return 0, nil
}

func (r *stubPersonRepo) UpdatePerson(ctx context.Context, id uint64, person *entities.Person) error {
	return nil
}

func (r *stubPersonRepo) DeletePerson(ctx context.Context, id uint64) error { return nil }

type stubConfigRepo struct {
	getTemplatesFn      func(craneModel string) ([]entities.CraneConfigTemplate, error)
	findTemplateFn      func(id uint64) (*entities.CraneConfigTemplate, error)
	templateItemsFn     func(templateID uint64) ([]entities.CraneConfigTemplateItem, error)
	createTemplateFn    func(template *entities.CraneConfigTemplate) (uint64, error)
	createItemFn        func(item *entities.CraneConfigTemplateItem) (uint64, error)
	setDiagramFn        func(id uint64, filePath string) error
	getProjectConfigsFn func(projectID uint64) ([]entities.ProjectCraneConfig, error)
	createConfigFn      func(config *entities.ProjectCraneConfig) (uint64, error)
}

func (r *stubConfigRepo) GetTemplates(ctx context.Context, craneModel string) ([]entities.CraneConfigTemplate, error) {
	if r.getTemplatesFn == nil {
		return nil, nil
	}
	return r.getTemplatesFn(craneModel)
}

func (r *stubConfigRepo) FindTemplate(ctx context.Context, id uint64) (*entities.CraneConfigTemplate, error) {
	if r.findTemplateFn == nil {
		return nil, apperrors.ErrNotFound
	}
	return r.findTemplateFn(id)
}

func (r *stubConfigRepo) TemplateItems(ctx context.Context, templateID uint64) ([]entities.CraneConfigTemplateItem, error) {
	if r.templateItemsFn == nil {
		return nil, nil
	}
	return r.templateItemsFn(templateID)
}

func (r *stubConfigRepo) CreateTemplateTx(ctx context.Context, tx pgx.Tx, template *entities.CraneConfigTemplate) (uint64, error) {
	if r.createTemplateFn == nil {
		return 0, nil
	}
	return r.createTemplateFn(template)
}

func (r *stubConfigRepo) CreateTemplateItemTx(ctx context.Context, tx pgx.Tx, item *entities.CraneConfigTemplateItem) (uint64, error) {
	if r.createItemFn == nil {
		return 0, nil
	}
	return r.createItemFn(item)
}

func (r *stubConfigRepo) DeleteTemplate(ctx context.Context, id uint64) error { return nil }

func (r *stubConfigRepo) SetTemplateDiagram(ctx context.Context, id uint64, filePath string) error {
	if r.setDiagramFn == nil {
		return nil
	}
	return r.setDiagramFn(id, filePath)
}

func (r *stubConfigRepo) GetProjectConfigs(ctx context.Context, projectID uint64) ([]entities.ProjectCraneConfig, error) {
	if r.getProjectConfigsFn == nil {
		return nil, nil
	}
	return r.getProjectConfigsFn(projectID)
}

func (r *stubConfigRepo) CreateProjectConfig(ctx context.Context, config *entities.ProjectCraneConfig) (uint64, error) {
	if r.createConfigFn == nil {
		return 0, nil
	}
	return r.createConfigFn(config)
}

type stubFileStorage struct {
	saveFn func(file io.Reader, originalFileName string, prefix string) (string, error)
}

func (s *stubFileStorage) Save(file io.Reader, originalFileName string, prefix string) (string, error) {
	if s.saveFn == nil {
		return "", nil
	}
	return s.saveFn(file, originalFileName, prefix)
}

func (s *stubFileStorage) Delete(filePath string) error { return nil }
