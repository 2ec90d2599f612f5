package entity

// ActiveEntry est l'état en mémoire d'un identifiant suivi.
// Active repasse à false dès qu'un autre identifiant prend le focus,
// l'entrée n'est jamais supprimée tant que le processus tourne.
type ActiveEntry struct {
	Active      bool  `json:"active"`
	LastSeen    int64 `json:"last_seen"`    // unix seconds
	ActiveSince int64 `json:"active_since"` // unix seconds, repart de now à chaque réactivation
}

// ActiveApp est un identifiant actif avec son temps écoulé depuis l'activation.
type ActiveApp struct {
	Identifier string `json:"identifier"`
	Seconds    int64  `json:"seconds"`
}

// UsageLog est une ligne du journal append-only usage_logs.
type UsageLog struct {
	ID          int64   `db:"id" json:"id"`
	Identifier  string  `db:"identifier" json:"identifier"`
	AppName     string  `db:"app_name" json:"app_name"`
	WindowTitle string  `db:"window_title" json:"window_title"`
	URL         *string `db:"url" json:"url"`
	Timestamp   int64   `db:"timestamp" json:"timestamp"` // unix seconds, moment du flush
	Duration    int64   `db:"duration" json:"duration"`   // secondes écoulées depuis l'activation
}

// RecentActivity est une ligne du journal telle qu'exposée au dashboard.
type RecentActivity struct {
	Identifier  string  `db:"identifier" json:"identifier"`
	AppName     string  `db:"app_name" json:"app_name"`
	WindowTitle string  `db:"window_title" json:"window_title"`
	URL         *string `db:"url" json:"url"`
	Duration    int64   `db:"duration" json:"duration"`
	Timestamp   int64   `db:"timestamp" json:"timestamp"`
}

// LastSeen associe un identifiant au timestamp de son dernier flush,
// utilisé pour réamorcer la map au démarrage.
type LastSeen struct {
	Identifier string `db:"identifier"`
	Timestamp  int64  `db:"timestamp"`
}

// DashboardData est l'agrégat recalculé à chaque requête du dashboard.
type DashboardData struct {
	CurrentApp     *string          `json:"current_app"`
	CurrentWindow  *string          `json:"current_window"`
	CurrentURL     *string          `json:"current_url"`
	ActiveApps     []ActiveApp      `json:"active_apps"`
	RecentActivity []RecentActivity `json:"recent_activity"`
	TotalApps      int              `json:"total_apps"`
	Uptime         int64            `json:"uptime"`
}
