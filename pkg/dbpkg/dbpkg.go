// Package dbpkg provides helpers to make db initialization and testing easier.
package dbpkg

import (
	"context"
	"database/sql"
)

// Setup sets up connection with database.
func Setup(driver, source string) (*sql.DB, error) {
	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
    account_id serial PRIMARY KEY,
    name varchar(100) NOT NULL,
    balance numeric NOT NULL DEFAULT 0,
    created_at timestamptz NOT NULL DEFAULT now(),
    CONSTRAINT accounts_name_check CHECK (char_length(name) > 0),
    CONSTRAINT accounts_balance_check CHECK (balance >= 0)
);

CREATE TABLE IF NOT EXISTS transactions (
    transaction_id bigserial PRIMARY KEY,
    account_id int NOT NULL REFERENCES accounts (account_id) ON DELETE CASCADE,
    transaction_type varchar NOT NULL,
    amount numeric NOT NULL,
    timestamp timestamptz NOT NULL DEFAULT now(),
    CONSTRAINT transactions_type_check CHECK (transaction_type IN ('deposit', 'withdrawal')),
    CONSTRAINT transactions_amount_check CHECK (amount > 0)
);

CREATE INDEX IF NOT EXISTS transactions_account_id_timestamp_idx
    ON transactions (account_id, timestamp DESC, transaction_id DESC);
`

// CreateSchema creates the ledger tables if they do not exist yet.
//
// The same schema is kept under db/migrations for managed deployments.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SQLInterface provides neccessary db methods to perform queries.
//
// It is satisfied by both *sql.DB and *sql.Tx so repositories can run
// standalone or inside an atomic unit.
type SQLInterface interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}
