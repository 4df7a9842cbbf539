package users

import (
	"encoding/json"
	"fmt"
	"os"

	"gorm.io/gorm"

	"usermapper_backend/internals/configs"
	"usermapper_backend/internals/features/users/user/dto"
	"usermapper_backend/internals/features/users/user/model"
)

// SeedUsersFromJSON membaca array UserDTO dari file dan menyimpan user yang belum ada.
// Returns the number of inserted rows.
func SeedUsersFromJSON(db *gorm.DB, filePath string) (int, error) {
	configs.Log.Infof("📥 Reading file: %s", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var seeds []dto.UserDTO
	if err := json.Unmarshal(file, &seeds); err != nil {
		return 0, fmt.Errorf("decode seed file: %w", err)
	}

	// Ambil semua id yang sudah ada
	var existingIDs []int64
	if err := db.Model(&model.UserModel{}).Pluck("id", &existingIDs).Error; err != nil {
		return 0, fmt.Errorf("load existing ids: %w", err)
	}
	existing := make(map[int64]bool, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = true
	}

	// id 0 = biarkan DB yang assign; id eksplisit tidak boleh dobel di file
	var withID, withoutID []model.UserModel
	inFile := make(map[int64]int)
	for i := range seeds {
		id := seeds[i].ID
		if id != 0 {
			if first, dup := inFile[id]; dup {
				return 0, fmt.Errorf("seed #%d: id %d repeats seed #%d", i, id, first)
			}
			inFile[id] = i
		}
		if id != 0 && existing[id] {
			configs.Log.Debugf("ℹ️ user %d already exists, skipped", id)
			continue
		}
		m, err := dto.ToModel(&seeds[i])
		if err != nil {
			return 0, fmt.Errorf("seed #%d (id=%d): %w", i, id, err)
		}
		if m.ID == 0 {
			withoutID = append(withoutID, *m)
		} else {
			withID = append(withID, *m)
		}
	}

	total := len(withID) + len(withoutID)
	if total == 0 {
		return 0, nil
	}
	// Dua batch terpisah: gorm menyertakan kolom id untuk semua baris
	// sebuah batch begitu satu baris punya id.
	err = db.Transaction(func(tx *gorm.DB) error {
		if len(withID) > 0 {
			if err := tx.Create(&withID).Error; err != nil {
				return err
			}
		}
		if len(withoutID) > 0 {
			if err := tx.Create(&withoutID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("insert seed users: %w", err)
	}
	return total, nil
}
