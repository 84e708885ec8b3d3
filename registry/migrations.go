package registry

import (
	"time"

	"github.com/mitsuha/kagami/log"
	"github.com/pkg/errors"
)

var logger = log.ModuleLogger("registry")

const CreateMigrationsQuery = `
CREATE TABLE IF NOT EXISTS migrations (
	id INTEGER NOT NULL PRIMARY KEY AUTOINCREMENT,
	name VARCHAR NOT NULL,
	applied_at INTEGER NOT NULL
);
`

type Migration struct {
	Query string
	Name  string
}

var Migrations = []*Migration{
	{
		Query: `
CREATE TABLE nodes (
	node VARCHAR(64) NOT NULL PRIMARY KEY,
	owner VARCHAR(40) NOT NULL
);
`,
		Name: "create_nodes",
	},
	{
		Query: `
CREATE TABLE names (
	node VARCHAR(64) NOT NULL PRIMARY KEY,
	name VARCHAR NOT NULL
);
`,
		Name: "create_names",
	},
}

func MigrateDB(engine *Engine) error {
	return engine.Transaction(func(tx Transactor) error {
		logger.Debug("creating migrations table")
		_, err := tx.Exec(CreateMigrationsQuery)
		if err != nil {
			return errors.WithStack(err)
		}

		migRow := tx.QueryRow("SELECT COALESCE(MAX(id), 0) FROM migrations")
		if migRow.Err() != nil {
			return errors.WithStack(migRow.Err())
		}
		var latestMigID int
		if err := migRow.Scan(&latestMigID); err != nil {
			return errors.WithStack(err)
		}

		if latestMigID == len(Migrations) {
			logger.Info("migrations up to date")
			return nil
		}

		logger.Info("running migrations")
		for i := latestMigID; i < len(Migrations); i++ {
			mig := Migrations[i]
			logger.Debug("executing migration", "name", mig.Name, "version", i)
			if err := ExecMigration(tx, mig); err != nil {
				return err
			}
		}
		logger.Info("successfully migrated database")
		return nil
	})
}

func ExecMigration(tx Transactor, migration *Migration) error {
	if _, err := tx.Exec(migration.Query); err != nil {
		return errors.Wrapf(err, "error executing migration %s", migration.Name)
	}
	_, err := tx.Exec(
		"INSERT INTO migrations (name, applied_at) VALUES (?, ?)",
		migration.Name,
		time.Now().Unix(),
	)
	return errors.Wrapf(err, "error recording migration %s", migration.Name)
}
