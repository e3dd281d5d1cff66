package postgresql

import (
	"database/sql"
	"sync"
	"time"

	_ "github.com/lib/pq"

	"github.com/tsel-ticketmaster/tm-catalog/config"
)

var (
	db   *sql.DB
	once sync.Once
)

// GetDatabase returns the shared PostgreSQL connection pool.
func GetDatabase() *sql.DB {
	once.Do(func() {
		c := config.Get()

		conn, err := sql.Open("postgres", c.PostgreSQL.DSN)
		if err != nil {
			panic(err)
		}

		conn.SetMaxOpenConns(25)
		conn.SetMaxIdleConns(5)
		conn.SetConnMaxLifetime(30 * time.Minute)

		db = conn
	})

	return db
}
