package db

import (
	"database/sql"
	"net/url"

	"github.com/cso-genova/casa-listing-explorer/internal"
	"github.com/cso-genova/casa-listing-explorer/internal/util"
	"github.com/marcboeker/go-duckdb"
)

// GetConnection opens one handle to the configured MotherDuck database.
// The handle is meant to live for the whole process, callers do not
// close it per request.
func GetConnection(config *util.Config) (*sql.DB, error) {
	dbName, err := NormalizeDatabaseName(config.Database.Value)
	if err != nil {
		return nil, err
	}

	dsn := dbName
	if config.Token.Value != "" {
		dsn += "?motherduck_token=" + url.QueryEscape(config.Token.Value)
	}

	connector, err := duckdb.NewConnector(dsn, nil)
	if err != nil {
		return nil, internal.NewConnectionError(dbName, err)
	}

	sqlDb := sql.OpenDB(connector)
	if err := sqlDb.Ping(); err != nil {
		return nil, internal.NewConnectionError(dbName, err)
	}

	return sqlDb, nil
}
