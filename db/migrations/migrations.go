package migrations

import "embed"

// FS embeds SQL migration files stored in this directory. The
// golang-migrate library reads them through the iofs driver when the
// Postgres dataset source is used with PSQL_RUN_MIGRATIONS enabled.
//
//go:embed *.sql
var FS embed.FS

const Version = 1
