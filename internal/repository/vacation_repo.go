package repository

import (
	"context"

	"github.com/mflath/TImesheets/internal/model"

	"gorm.io/gorm"
)

type VacationRepository interface {
	Create(ctx context.Context, v *model.VacationRequest) error
	FindByID(ctx context.Context, id uint) (*model.VacationRequest, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type vacationRepo struct{ db *gorm.DB }

func NewVacationRepository(db *gorm.DB) VacationRepository { return &vacationRepo{db: db} }

func (r *vacationRepo) Create(ctx context.Context, v *model.VacationRequest) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vacationRepo) FindByID(ctx context.Context, id uint) (*model.VacationRequest, error) {
	var v model.VacationRequest
	err := r.db.WithContext(ctx).Preload("Employee").First(&v, id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vacationRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	res := r.db.WithContext(ctx).Model(&model.VacationRequest{}).
		Where("id = ?", id).
		Update("status", status)
	return oneRow(res)
}
