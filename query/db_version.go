package query

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const (
	TableDatabaseVersion = "database_version"
	latestDbVersion      = 0
)

func (db *Database) GetDbVersion() (int, error) {
	var dbVersion int
	query := "SELECT db_version FROM database_version LIMIT 1"
	err := db.Get(&dbVersion, query)
	if err != nil {
		return 0, fmt.Errorf("GetDbVersion: %w", err)
	}
	return dbVersion, nil
}

func (db *Database) TableExists(tableName string) (bool, error) {
	query := `
		SELECT count(name)
		FROM sqlite_master
		WHERE type='table' AND name=?
	`

	var count int
	err := db.QueryRow(query, tableName).Scan(&count)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Dossier de données de l'application dans le répertoire de config utilisateur
// (APPDATA sous Windows via UserConfigDir).
func getPathFileData() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getPathFileData: %w", err)
	}

	appDir := filepath.Join(configDir, ".activity_tracker")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", fmt.Errorf("getPathFileData: %w", err)
	}
	return appDir, nil
}

// InitDatabase ouvre la base au chemin donné, ou à l'emplacement par défaut
// si path est vide. Toute erreur ici est fatale pour l'appelant: pas de
// monitoring sans base utilisable.
func InitDatabase(path string) (*Database, error) {
	if path == "" {
		saveFolder, err := getPathFileData()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(saveFolder, "usage.db")
	}
	return OpenDatabase(path)
}

// OpenDatabase ouvre ou crée la base et amène le schéma à la version courante.
func OpenDatabase(path string) (*Database, error) {
	dbTemp, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	db := NewDatabase(dbTemp)

	exist, err := db.TableExists(TableDatabaseVersion)
	if err != nil {
		return nil, err
	}
	if exist {
		if err := db.updateDb(); err != nil {
			return nil, err
		}
		return db, nil
	}

	// Créer les tables si elles n'existent pas
	_, err = db.Exec(`
        CREATE TABLE IF NOT EXISTS usage_logs (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            identifier TEXT NOT NULL,
            app_name TEXT NOT NULL,
            window_title TEXT NOT NULL,
            url TEXT,
            timestamp INTEGER NOT NULL,
            duration INTEGER NOT NULL DEFAULT 0
        )
    `)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS database_version (
		db_version INTEGER default 0)`)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		INSERT INTO database_version VALUES(0)
	`)
	if err != nil {
		return nil, err
	}

	// Index pour la requête de rétention (filtre + tri par timestamp)
	_, err = db.Exec(`
        CREATE INDEX IF NOT EXISTS idx_usage_logs_timestamp ON usage_logs(timestamp)
    `)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Database) updateDb() error {
	dbVersion, err := db.GetDbVersion()
	if err != nil {
		return fmt.Errorf("updateDb: %w", err)
	}
	if dbVersion == latestDbVersion {
		return nil
	}
	if dbVersion > latestDbVersion {
		return fmt.Errorf("updateDb: version de schéma inconnue %d", dbVersion)
	}
	// Les migrations futures s'enchaînent ici, une transaction par version.
	return nil
}
