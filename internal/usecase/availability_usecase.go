package usecase

import (
	"context"
	"errors"

	"hospital-appointment-api/internal/converter"
	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"
	"hospital-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrWindowNotFound = errors.New("availability window not found")

type AvailabilityUsecase interface {
	RegisterWindow(ctx context.Context, physicianID uuid.UUID, req *dto.RegisterWindowRequest) (*dto.WindowResponse, error)
	UpdateWindow(ctx context.Context, windowID int, req *dto.UpdateWindowRequest) (*dto.WindowResponse, error)
	ListByPhysician(ctx context.Context, physicianID uuid.UUID) (*dto.WindowListResponse, error)
}

type availabilityUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	windowRepo    repository.AvailabilityWindowRepository
	physicianRepo repository.PhysicianRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	windowRepo repository.AvailabilityWindowRepository,
	physicianRepo repository.PhysicianRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:            db,
		log:           log,
		windowRepo:    windowRepo,
		physicianRepo: physicianRepo,
	}
}

// RegisterWindow declares a new weekly availability window. The overlap
// check runs inside the transaction that also inserts the row, keeping the
// pairwise non-overlap invariant intact under concurrent registration.
func (u *availabilityUsecase) RegisterWindow(ctx context.Context, physicianID uuid.UUID, req *dto.RegisterWindowRequest) (*dto.WindowResponse, error) {
	physician, err := u.physicianRepo.FindByID(u.db.WithContext(ctx), physicianID)
	if err != nil {
		u.log.Warnf("Failed to find physician %s: %+v", physicianID, err)
		return nil, err
	}
	if physician == nil {
		return nil, ErrPhysicianNotFound
	}

	window := &entity.AvailabilityWindow{
		PhysicianID: physicianID,
		Weekday:     req.Weekday,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}

	if err := window.Validate(); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.checkOverlap(tx, window, 0); err != nil {
		return nil, err
	}

	if err := u.windowRepo.Create(tx, window); err != nil {
		u.log.Warnf("Failed to create availability window: %+v", err)
		return nil, windowSaveError(err, window)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, windowSaveError(err, window)
	}

	return converter.WindowToResponse(window), nil
}

// UpdateWindow supersedes an existing window in place. Windows are never
// implicitly deleted; an update is the only way to change declared hours.
func (u *availabilityUsecase) UpdateWindow(ctx context.Context, windowID int, req *dto.UpdateWindowRequest) (*dto.WindowResponse, error) {
	window, err := u.windowRepo.FindByID(u.db.WithContext(ctx), windowID)
	if err != nil {
		u.log.Warnf("Failed to find availability window %d: %+v", windowID, err)
		return nil, err
	}
	if window == nil {
		return nil, ErrWindowNotFound
	}

	if req.Weekday != 0 {
		window.Weekday = req.Weekday
	}
	if req.StartTime != "" {
		window.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		window.EndTime = req.EndTime
	}

	if err := window.Validate(); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.checkOverlap(tx, window, window.ID); err != nil {
		return nil, err
	}

	if err := u.windowRepo.Update(tx, window); err != nil {
		u.log.Warnf("Failed to update availability window %d: %+v", windowID, err)
		return nil, windowSaveError(err, window)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, windowSaveError(err, window)
	}

	return converter.WindowToResponse(window), nil
}

func (u *availabilityUsecase) ListByPhysician(ctx context.Context, physicianID uuid.UUID) (*dto.WindowListResponse, error) {
	windows, err := u.windowRepo.FindByPhysicianID(u.db.WithContext(ctx), physicianID)
	if err != nil {
		u.log.Warnf("Failed to list availability windows for physician %s: %+v", physicianID, err)
		return nil, err
	}

	return &dto.WindowListResponse{
		Windows: converter.WindowsToResponses(windows),
		Total:   len(windows),
	}, nil
}

// windowSaveError maps the exclusion constraint on availability_windows to
// the domain overlap error. Two registrations racing past the in-transaction
// check both try to insert; the constraint rejects the loser and the caller
// sees the same error as an overlap caught up front.
func windowSaveError(err error, window *entity.AvailabilityWindow) error {
	if isExclusionViolation(err) {
		return &entity.OverlapError{
			PhysicianID: window.PhysicianID,
			Weekday:     window.Weekday,
			StartTime:   window.StartTime,
			EndTime:     window.EndTime,
		}
	}
	return err
}

// checkOverlap rejects the window if it intersects any sibling for the same
// physician and weekday. excludeID skips the window's own row on update.
func (u *availabilityUsecase) checkOverlap(db *gorm.DB, window *entity.AvailabilityWindow, excludeID int) error {
	siblings, err := u.windowRepo.FindByPhysicianAndWeekday(db, window.PhysicianID, window.Weekday)
	if err != nil {
		u.log.Warnf("Failed to load sibling windows: %+v", err)
		return err
	}
	for i := range siblings {
		if siblings[i].ID == excludeID {
			continue
		}
		if window.Overlaps(&siblings[i]) {
			return &entity.OverlapError{
				PhysicianID: window.PhysicianID,
				Weekday:     window.Weekday,
				StartTime:   window.StartTime,
				EndTime:     window.EndTime,
				ExistingID:  siblings[i].ID,
			}
		}
	}
	return nil
}
