package service

import (
	"context"

	"gorm.io/gorm"

	"usermapper_backend/internals/features/users/user/dto"
	"usermapper_backend/internals/features/users/user/model"
	helper "usermapper_backend/internals/helpers"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) List(ctx context.Context, offset, limit int) ([]model.UserModel, int64, error) {
	var total int64
	if err := s.DB.WithContext(ctx).Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.UserModel
	if err := s.DB.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.UserModel, error) {
	var user model.UserModel
	if err := s.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, helper.ErrorFromGormError(err)
	}
	return &user, nil
}

// Create memetakan DTO ke model lalu menyimpannya. Email selalu kosong.
func (s *UserService) Create(ctx context.Context, in *dto.UserDTO) (*model.UserModel, error) {
	m, err := dto.ToModel(in)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, helper.ErrNilUser
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.ID != 0 {
			if taken, err := exists(tx, "id = ?", m.ID); err != nil {
				return err
			} else if taken {
				return helper.ErrDuplicateUser
			}
		}
		return helper.ErrorFromGormError(tx.Create(m).Error)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Update mengganti nama user; email yang sudah ada dipertahankan.
func (s *UserService) Update(ctx context.Context, id int64, in *dto.UserDTO) (*model.UserModel, error) {
	if in == nil {
		return nil, helper.ErrNilUser
	}
	incoming, err := dto.ToModel(&dto.UserDTO{ID: id, Name: in.Name})
	if err != nil {
		return nil, err
	}

	var out *model.UserModel
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.UserModel
		if err := tx.First(&current, "id = ?", id).Error; err != nil {
			return helper.ErrorFromGormError(err)
		}
		if err := tx.Model(&current).Update("name", incoming.Name).Error; err != nil {
			return helper.ErrorFromGormError(err)
		}
		current.Name = incoming.Name
		out = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateEmail set atau hapus (nil) email user.
func (s *UserService) UpdateEmail(ctx context.Context, id int64, req *dto.UpdateEmailRequest) (*model.UserModel, error) {
	if req == nil {
		return nil, helper.ErrNilUser
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out *model.UserModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.UserModel
		if err := tx.First(&current, "id = ?", id).Error; err != nil {
			return helper.ErrorFromGormError(err)
		}
		if req.Email != nil {
			if taken, err := exists(tx, "email = ? AND id <> ?", *req.Email, id); err != nil {
				return err
			} else if taken {
				return helper.ErrDuplicateUser
			}
		}
		if err := tx.Model(&current).Update("email", req.Email).Error; err != nil {
			return helper.ErrorFromGormError(err)
		}
		current.Email = req.Email
		out = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	res := s.DB.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.ErrorFromGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.ErrUserNotFound
	}
	return nil
}

func exists(tx *gorm.DB, query string, args ...interface{}) (bool, error) {
	var n int64
	if err := tx.Model(&model.UserModel{}).Where(query, args...).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
