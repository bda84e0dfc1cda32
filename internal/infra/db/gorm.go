package db

import (
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
// DATABASE_URL があればPostgres、無ければインメモリSQLite（プロセス終了で消える）。
func Connect(databaseURL string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	if databaseURL != "" {
		return gorm.Open(postgres.Open(databaseURL), cfg)
	}

	return gorm.Open(sqlite.Open("file::memory:?cache=shared"), cfg)
}
