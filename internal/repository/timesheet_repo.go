package repository

import (
	"context"

	"github.com/mflath/TImesheets/internal/model"

	"gorm.io/gorm"
)

type TimesheetRepository interface {
	Create(ctx context.Context, t *model.Timesheet) error
	List(ctx context.Context) ([]model.Timesheet, error)
	ListByEmployee(ctx context.Context, employeeID uint) ([]model.Timesheet, error)
	Update(ctx context.Context, t *model.Timesheet) error
	Delete(ctx context.Context, id uint) error
}

type timesheetRepo struct{ db *gorm.DB }

func NewTimesheetRepository(db *gorm.DB) TimesheetRepository { return &timesheetRepo{db: db} }

func (r *timesheetRepo) Create(ctx context.Context, t *model.Timesheet) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *timesheetRepo) List(ctx context.Context) ([]model.Timesheet, error) {
	var list []model.Timesheet
	err := r.db.WithContext(ctx).Order("date desc").Find(&list).Error
	return list, err
}

func (r *timesheetRepo) ListByEmployee(ctx context.Context, employeeID uint) ([]model.Timesheet, error) {
	var list []model.Timesheet
	err := r.db.WithContext(ctx).
		Preload("Activity").
		Where("employee_id = ?", employeeID).
		Order("date asc").
		Find(&list).Error
	return list, err
}

func (r *timesheetRepo) Update(ctx context.Context, t *model.Timesheet) error {
	res := r.db.WithContext(ctx).Model(&model.Timesheet{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"employee_id": t.EmployeeID,
			"activity_id": t.ActivityID,
			"hours":       t.Hours,
			"date":        t.Date,
		})
	return oneRow(res)
}

func (r *timesheetRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Timesheet{}, id)
	return oneRow(res)
}
