package repository

import (
	"context"
	"time"

	"github.com/mflath/TImesheets/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdatePassword(ctx context.Context, username, hash string) error
	UpdateUsernameRole(ctx context.Context, id uint, username, role string) error
	UpdateProfile(ctx context.Context, username string, phone, email, prefs *string) error
	SetTwoFactor(ctx context.Context, username string, enabled bool) error
	SaveFeedback(ctx context.Context, username, feedback string) error
	ListFeedback(ctx context.Context) ([]model.User, error)
	Deactivate(ctx context.Context, id uint) error
	Reactivate(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// FindByUsername deliberately does NOT filter on is_active: login must verify
// the password before deciding whether to reveal the deactivated state.
func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Find(&users).Error
	return users, err
}

func (r *userRepo) UpdatePassword(ctx context.Context, username, hash string) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", username).
		Update("hashed_password", hash)
	return oneRow(res)
}

func (r *userRepo) UpdateUsernameRole(ctx context.Context, id uint, username, role string) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"username": username, "role": role})
	return oneRow(res)
}

func (r *userRepo) UpdateProfile(ctx context.Context, username string, phone, email, prefs *string) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", username).
		Updates(map[string]interface{}{
			"phone_number":             phone,
			"email":                    email,
			"notification_preferences": prefs,
		})
	return oneRow(res)
}

func (r *userRepo) SetTwoFactor(ctx context.Context, username string, enabled bool) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", username).
		Update("two_factor_enabled", enabled)
	return oneRow(res)
}

func (r *userRepo) SaveFeedback(ctx context.Context, username, feedback string) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", username).
		Update("feedback", feedback)
	return oneRow(res)
}

func (r *userRepo) ListFeedback(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Select("username", "feedback").
		Where("feedback IS NOT NULL").
		Find(&users).Error
	return users, err
}

// Deactivate flips is_active and stamps deactivation_date in a single update,
// keeping the two columns consistent.
func (r *userRepo) Deactivate(ctx context.Context, id uint) error {
	now := time.Now()
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": false, "deactivation_date": &now})
	return oneRow(res)
}

func (r *userRepo) Reactivate(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": true, "deactivation_date": nil})
	return oneRow(res)
}

func (r *userRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	return oneRow(res)
}

// oneRow converts "no rows matched" into ErrRecordNotFound so services can
// report 404s without re-querying.
func oneRow(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
