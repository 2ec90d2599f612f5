// Package config charge la configuration du tracker depuis l'environnement
// (préfixe TRACKER_), avec des valeurs par défaut raisonnables.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// PollInterval: cadence d'observation de la fenêtre au premier plan.
	PollInterval time.Duration `split_words:"true" default:"500ms"`
	// FlushInterval: cadence d'écriture du journal en base.
	FlushInterval time.Duration `split_words:"true" default:"5s"`
	// Retention: fenêtre de l'historique "récent" du dashboard.
	Retention time.Duration `default:"24h"`
	// RecentLimit: nombre maximum de lignes d'historique retournées.
	RecentLimit int `split_words:"true" default:"50"`
	// ListenAddr: localhost explicitement, pour éviter le pare-feu Windows.
	ListenAddr string `split_words:"true" default:"127.0.0.1:8080"`
	// DatabasePath: chemin du fichier sqlite; vide = dossier de config utilisateur.
	DatabasePath string `split_words:"true"`
}

func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process("tracker", &cfg)
	return cfg, err
}
