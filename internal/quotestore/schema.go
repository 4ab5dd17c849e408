package quotestore

const postgresSchema = `
CREATE TABLE IF NOT EXISTS quotes (
	id UUID PRIMARY KEY,
	book TEXT NOT NULL,
	quote TEXT NOT NULL,
	inserted_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS quotes (
	id TEXT PRIMARY KEY,
	book TEXT NOT NULL,
	quote TEXT NOT NULL,
	inserted_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

var schemas = map[string]string{
	DriverPostgres: postgresSchema,
	DriverPGX:      postgresSchema,
	DriverSQLite:   sqliteSchema,
}
