package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"usermapper_backend/internals/configs"
	"usermapper_backend/internals/features/users/user/model"
)

var DB *gorm.DB

// Dialector memilih driver berdasarkan configs.DBDriver.
func Dialector() (gorm.Dialector, error) {
	switch configs.DBDriver {
	case "", "postgres", "pgsql":
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=usermapper&options=-c statement_timeout=3000",
			configs.DBUser,
			configs.DBPassword,
			configs.DBHost,
			configs.DBPort,
			configs.DBName,
			configs.DBSSLMode,
		)
		return postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
		}), nil
	case "sqlite":
		return sqlite.Open(configs.DBName), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", configs.DBDriver)
	}
}

func ConnectDB() (*gorm.DB, error) {
	configs.Log.Infof("🔌 Connecting to %s...", configs.DBDriver)

	dia, err := Dialector()
	if err != nil {
		return nil, err
	}
	db, err := Open(dia)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	DB = db
	configs.Log.Info("✅ DB connected.")
	return db, nil
}

// Open membuka koneksi dengan konfigurasi gorm standar aplikasi.
func Open(dia gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dia, &gorm.Config{
		Logger:         configs.NewGormLogger(configs.Log),
		TranslateError: true,
	})
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		configs.Log.Warnf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.UserModel{})
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// OpenInMemory membuka sqlite in-memory yang sudah dimigrasi (dev & test).
// Pool dibatasi satu koneksi karena tiap koneksi :memory: punya DB sendiri.
func OpenInMemory() (*gorm.DB, error) {
	db, err := Open(sqlite.Open(":memory:"))
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
