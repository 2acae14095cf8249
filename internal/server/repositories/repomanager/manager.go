package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/contacthub/internal/dbx"
	"github.com/dmitrijs2005/contacthub/internal/server/repositories/addresses"
	"github.com/dmitrijs2005/contacthub/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/contacthub/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Contacts(db dbx.DBTX) contacts.Repository
	Addresses(db dbx.DBTX) addresses.Repository
}
