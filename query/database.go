package query

import "github.com/jmoiron/sqlx"

// Database enveloppe la connexion sqlx pour porter les requêtes du tracker.
type Database struct {
	*sqlx.DB
}

func NewDatabase(db *sqlx.DB) *Database {
	return &Database{DB: db}
}
