package repomanager

import (
	"context"
	"database/sql"

	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/dbx"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/repositories/resettokens"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/repositories/roles"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, letting services run
// related writes on a shared transaction, and exposes the migration hook.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Roles(db dbx.DBTX) roles.Repository
	ResetTokens(db dbx.DBTX) resettokens.Repository
}
