package query

import (
	"log"
	"time"

	"main/entity"
)

// InsertUsageBatch écrit les lignes d'un cycle de flush dans une seule
// transaction: tout passe, ou rien en cas d'échec.
func (db *Database) InsertUsageBatch(rows []entity.UsageLog) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := db.Beginx()
	if err != nil {
		return err
	}

	for _, row := range rows {
		_, err := tx.Exec(`
        INSERT INTO usage_logs
        (identifier, app_name, window_title, url, timestamp, duration)
        VALUES (?, ?, ?, ?, ?, ?)`,
			row.Identifier,
			row.AppName,
			row.WindowTitle,
			row.URL,
			row.Timestamp,
			row.Duration,
		)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// RecentActivity retourne les lignes du journal plus récentes que
// now - window, les plus récentes d'abord, au plus limit lignes.
// Une erreur de lecture dégrade le dashboard: liste vide, jamais d'erreur.
func (db *Database) RecentActivity(now int64, window time.Duration, limit int) []entity.RecentActivity {
	items := []entity.RecentActivity{}
	cutoff := now - int64(window/time.Second)
	q := `
	SELECT identifier, app_name, window_title, url, duration, timestamp
	FROM usage_logs
	WHERE timestamp >= ?
	ORDER BY timestamp DESC
	LIMIT ?`
	if err := db.Select(&items, q, cutoff, limit); err != nil {
		log.Println("RecentActivity:", err)
		return []entity.RecentActivity{}
	}
	return items
}

// LastSeenIdentifiers donne le timestamp du dernier flush de chaque
// identifiant connu, pour réamorcer la map au démarrage.
func (db *Database) LastSeenIdentifiers() ([]entity.LastSeen, error) {
	rows := []entity.LastSeen{}
	q := `
	SELECT identifier, MAX(timestamp) AS timestamp
	FROM usage_logs
	GROUP BY identifier`
	err := db.Select(&rows, q)
	return rows, err
}

type SummaryItem struct {
	Name    string `db:"name" json:"name"`
	Seconds int64  `db:"seconds" json:"seconds"`
}

// SummaryBetween agrège les secondes par application entre deux timestamps
// inclus. Les durées du journal étant cumulatives au sein d'une activation,
// on prend MAX(duration) par identifiant avant de sommer par application.
func (db *Database) SummaryBetween(start, end int64) ([]SummaryItem, error) {
	items := []SummaryItem{}
	q := `
	WITH peaks AS (
	  SELECT identifier, app_name, MAX(duration) AS seconds
	  FROM usage_logs
	  WHERE timestamp >= ? AND timestamp <= ?
	  GROUP BY identifier, app_name
	)
	SELECT app_name AS name,
	       SUM(seconds) AS seconds
	FROM peaks
	GROUP BY app_name
	ORDER BY seconds DESC`
	err := db.Select(&items, q, start, end)
	return items, err
}
