package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

var DB *sql.DB

func InitDB(connStr string) error {
	if connStr == "" {
		return fmt.Errorf("DATABASE_URL not configured")
	}

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(10)
	DB.SetMaxIdleConns(5)

	return DB.Ping()
}

func GetDB() *sql.DB {
	return DB
}
