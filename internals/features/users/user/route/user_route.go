package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"usermapper_backend/internals/configs"
	userController "usermapper_backend/internals/features/users/user/controller"
)

func UserRoutes(app fiber.Router, db *gorm.DB) {
	configs.Log.Debug("[DEBUG] registering user routes")

	ctrl := userController.NewUserController(db)

	users := app.Group("/users")
	users.Get("/", ctrl.ListUsers)
	users.Get("/:id", ctrl.GetUser)
	users.Post("/", ctrl.CreateUser)
	users.Put("/:id", ctrl.UpdateUser)
	users.Patch("/:id/email", ctrl.UpdateEmail)
	users.Delete("/:id", ctrl.DeleteUser)
}
