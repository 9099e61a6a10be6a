package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/matchly/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Close() error
}
