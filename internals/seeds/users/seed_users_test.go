package users

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "usermapper_backend/internals/databases"
	"usermapper_backend/internals/features/users/user/dto"
	"usermapper_backend/internals/features/users/user/model"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSeedUsersFromJSON(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	defer database.Close(db)

	n, err := SeedUsersFromJSON(db, "data_users.json")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// idempotent
	n, err = SeedUsersFromJSON(db, "data_users.json")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	var users []model.UserModel
	require.NoError(t, db.Order("id").Find(&users).Error)
	require.Len(t, users, 3)
	assert.Equal(t, "Alice", users[0].Name)
	for _, u := range users {
		assert.Nil(t, u.Email)
	}
}

func TestSeedUsersFromJSON_InvalidName(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	defer database.Close(db)

	path := writeSeed(t, `[{"id":1,"name":"Ok"},{"id":2,"name":"   "}]`)
	n, err := SeedUsersFromJSON(db, path)
	assert.ErrorIs(t, err, dto.ErrInvalidUserName)
	assert.Zero(t, n)

	var count int64
	require.NoError(t, db.Model(&model.UserModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSeedUsersFromJSON_BadFile(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	defer database.Close(db)

	_, err = SeedUsersFromJSON(db, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = SeedUsersFromJSON(db, writeSeed(t, `{"not":"an array"}`))
	assert.Error(t, err)
}

func TestSeedUsersFromJSON_WithoutIDs(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	defer database.Close(db)

	path := writeSeed(t, `[{"name":"A"},{"name":"B"},{"id":10,"name":"Ten"},{"name":"C"}]`)
	n, err := SeedUsersFromJSON(db, path)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	var users []model.UserModel
	require.NoError(t, db.Order("name").Find(&users).Error)
	require.Len(t, users, 4)

	ids := make(map[int64]string, len(users))
	for _, u := range users {
		assert.NotZero(t, u.ID, u.Name)
		ids[u.ID] = u.Name
	}
	assert.Len(t, ids, 4)
	assert.Equal(t, "Ten", ids[10])
}

func TestSeedUsersFromJSON_RepeatedID(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	defer database.Close(db)

	path := writeSeed(t, `[{"id":5,"name":"First"},{"id":5,"name":"Second"}]`)
	n, err := SeedUsersFromJSON(db, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id 5 repeats seed #0")
	assert.Zero(t, n)

	var count int64
	require.NoError(t, db.Model(&model.UserModel{}).Count(&count).Error)
	assert.Zero(t, count)
}
