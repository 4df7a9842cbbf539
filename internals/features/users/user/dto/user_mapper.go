package dto

import (
	"errors"

	"usermapper_backend/internals/features/users/user/model"
)

// ErrInvalidUserName is returned by ToModel when the name is empty or whitespace.
var ErrInvalidUserName = errors.New("User name cannot be null or empty")

// ToDTO — map model ke UserDTO (email tidak ikut)
func ToDTO(m *model.UserModel) *UserDTO {
	if m == nil {
		return nil
	}
	return &UserDTO{
		ID:   m.ID,
		Name: m.Name,
	}
}

func ToDTOList(list []model.UserModel) []UserDTO {
	out := make([]UserDTO, 0, len(list))
	for i := range list {
		out = append(out, *ToDTO(&list[i]))
	}
	return out
}

// ToModel — konversi UserDTO ke model. Email selalu nil.
func ToModel(d *UserDTO) (*model.UserModel, error) {
	if d == nil {
		return nil, nil
	}
	if err := validate.Var(d.Name, "notblank"); err != nil {
		return nil, ErrInvalidUserName
	}
	return &model.UserModel{
		ID:    d.ID,
		Name:  d.Name,
		Email: nil,
	}, nil
}
