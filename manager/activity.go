package manager

import (
	"sync"

	"main/entity"
)

// Structure pour gérer l'état d'activité en mémoire.
// Toute mutation passe par Observe; invariant: au plus un identifiant
// actif à la fois.
type ActivityManager struct {
	entries map[string]entity.ActiveEntry
	mutex   sync.Mutex
}

// Créer un nouveau gestionnaire d'activité
func NewActivityManager() *ActivityManager {
	return &ActivityManager{
		entries: make(map[string]entity.ActiveEntry),
	}
}

// Warm réamorce la map depuis le journal: entrées inactives, datées du
// dernier flush connu. Les entrées déjà présentes ne sont pas écrasées.
func (am *ActivityManager) Warm(rows []entity.LastSeen) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	for _, row := range rows {
		if _, exists := am.entries[row.Identifier]; exists {
			continue
		}
		am.entries[row.Identifier] = entity.ActiveEntry{
			Active:      false,
			LastSeen:    row.Timestamp,
			ActiveSince: row.Timestamp,
		}
	}
}

// Observe enregistre que key est au premier plan à l'instant now.
// Une entrée inactive (ou absente) redémarre son activation: ActiveSince
// repart de now, le temps accumulé avant n'est pas repris. Tous les autres
// identifiants sont forcés inactifs, de façon atomique.
func (am *ActivityManager) Observe(key string, now int64) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	entry, exists := am.entries[key]
	if !exists || !entry.Active {
		entry.ActiveSince = now
	}
	entry.Active = true
	entry.LastSeen = now
	am.entries[key] = entry

	// Marquer toutes les autres entrées comme inactives
	for k, e := range am.entries {
		if k != key && e.Active {
			e.Active = false
			am.entries[k] = e
		}
	}
}

// Drain retourne les identifiants actifs avec leur temps écoulé depuis
// l'activation (jamais négatif). Lecture seule: ActiveSince n'est pas
// remis à zéro, des drains répétés sur la même activation rapportent des
// durées cumulatives croissantes.
func (am *ActivityManager) Drain(now int64) []entity.ActiveApp {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	drained := []entity.ActiveApp{}
	for key, entry := range am.entries {
		if !entry.Active {
			continue
		}
		elapsed := now - entry.ActiveSince
		if elapsed < 0 {
			elapsed = 0
		}
		drained = append(drained, entity.ActiveApp{Identifier: key, Seconds: elapsed})
	}
	return drained
}

// Snapshot retourne une copie complète de la map, entrées inactives comprises.
func (am *ActivityManager) Snapshot() map[string]entity.ActiveEntry {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	snapshot := make(map[string]entity.ActiveEntry, len(am.entries))
	for key, entry := range am.entries {
		snapshot[key] = entry
	}
	return snapshot
}
