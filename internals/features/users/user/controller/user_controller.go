package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"usermapper_backend/internals/configs"
	"usermapper_backend/internals/features/users/user/dto"
	"usermapper_backend/internals/features/users/user/service"
	helper "usermapper_backend/internals/helpers"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type UserController struct {
	Service *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{Service: service.NewUserService(db)}
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}
	return id, nil
}

func reqLog(c *fiber.Ctx) logrus.FieldLogger {
	id, _ := c.Locals("reqid").(string)
	return configs.WithReqID(id, configs.Log)
}

// respondErr memetakan error service ke response HTTP.
func respondErr(c *fiber.Ctx, err error) error {
	if errors.Is(err, dto.ErrInvalidUserName) {
		return helper.JsonValidationError(c, err.Error(), map[string][]string{
			"name": {err.Error()},
		})
	}
	if fe := dto.FieldErrors(err); fe != nil {
		return helper.JsonValidationError(c, "", fe)
	}
	return helper.FromError(c, err)
}

// GET /api/users
func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, defaultPerPage, maxPerPage)

	users, total, err := uc.Service.List(c.UserContext(), p.Offset, p.Limit)
	if err != nil {
		reqLog(c).WithError(err).Error("failed to list users")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	data := dto.ToDTOList(users)
	return helper.JsonList(c, "Users fetched successfully", data,
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit, len(data)))
}

// GET /api/users/:id
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondErr(c, err)
	}

	user, err := uc.Service.Get(c.UserContext(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return helper.JsonOK(c, "User fetched successfully", dto.ToDTO(user))
}

// POST /api/users
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var body dto.UserDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := body.ValidateRequest(); err != nil {
		return respondErr(c, err)
	}

	user, err := uc.Service.Create(c.UserContext(), &body)
	if err != nil {
		reqLog(c).WithError(err).Warn("create user rejected")
		return respondErr(c, err)
	}

	reqLog(c).WithField("user_id", user.ID).Info("user created")
	return helper.JsonCreated(c, "User created successfully", dto.ToDTO(user))
}

// PUT /api/users/:id
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondErr(c, err)
	}

	var body dto.UserDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	body.ID = id
	if err := body.ValidateRequest(); err != nil {
		return respondErr(c, err)
	}

	user, err := uc.Service.Update(c.UserContext(), id, &body)
	if err != nil {
		return respondErr(c, err)
	}
	return helper.JsonUpdated(c, "User updated successfully", dto.ToDTO(user))
}

// PATCH /api/users/:id/email
func (uc *UserController) UpdateEmail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondErr(c, err)
	}

	var body dto.UpdateEmailRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	user, err := uc.Service.UpdateEmail(c.UserContext(), id, &body)
	if err != nil {
		return respondErr(c, err)
	}
	// email tidak termasuk UserDTO, jadi dikembalikan terpisah
	return helper.JsonUpdated(c, "Email updated successfully", fiber.Map{
		"user":  dto.ToDTO(user),
		"email": user.Email,
	})
}

// DELETE /api/users/:id
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondErr(c, err)
	}

	if err := uc.Service.Delete(c.UserContext(), id); err != nil {
		return respondErr(c, err)
	}
	reqLog(c).WithField("user_id", id).Info("user deleted")
	return helper.JsonDeleted(c, "User deleted successfully", fiber.Map{"id": id})
}
