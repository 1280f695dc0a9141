package repository

import (
	"context"

	"github.com/mflath/TImesheets/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(ctx context.Context, a *model.Activity) error
	List(ctx context.Context) ([]model.Activity, error)
	ListActive(ctx context.Context) ([]model.Activity, error)
	Rename(ctx context.Context, id uint, name string) error
	SetActive(ctx context.Context, id uint, active bool) error
	Delete(ctx context.Context, id uint) error
}

type activityRepo struct{ db *gorm.DB }

func NewActivityRepository(db *gorm.DB) ActivityRepository { return &activityRepo{db: db} }

func (r *activityRepo) Create(ctx context.Context, a *model.Activity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *activityRepo) List(ctx context.Context) ([]model.Activity, error) {
	var list []model.Activity
	err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error
	return list, err
}

func (r *activityRepo) ListActive(ctx context.Context) ([]model.Activity, error) {
	var list []model.Activity
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name asc").Find(&list).Error
	return list, err
}

func (r *activityRepo) Rename(ctx context.Context, id uint, name string) error {
	res := r.db.WithContext(ctx).Model(&model.Activity{}).Where("id = ?", id).Update("name", name)
	return oneRow(res)
}

func (r *activityRepo) SetActive(ctx context.Context, id uint, active bool) error {
	res := r.db.WithContext(ctx).Model(&model.Activity{}).Where("id = ?", id).Update("is_active", active)
	return oneRow(res)
}

func (r *activityRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Activity{}, id)
	return oneRow(res)
}
