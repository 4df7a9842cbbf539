package seeds

import (
	"gorm.io/gorm"

	"usermapper_backend/internals/configs"
	users "usermapper_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB, userFile string) error {
	//* User
	n, err := users.SeedUsersFromJSON(db, userFile)
	if err != nil {
		return err
	}
	configs.Log.Infof("✅ seeded %d users", n)
	return nil
}
