// Package monitor runs the two periodic tasks of the tracker — the
// foreground poll and the database flush — and builds the dashboard
// aggregate on demand. Both loops and every read path share the
// ActivityManager as the only piece of mutable state.
package monitor

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/coder/quartz"

	"main/config"
	"main/entity"
	"main/identity"
	"main/manager"
	"main/observer"
	"main/query"
)

type Monitor struct {
	cfg       config.Config
	db        *query.Database
	mgr       *manager.ActivityManager
	obs       observer.Observer
	clock     quartz.Clock
	startTime int64
}

func New(cfg config.Config, db *query.Database, mgr *manager.ActivityManager, obs observer.Observer, clock quartz.Clock) *Monitor {
	return &Monitor{
		cfg:       cfg,
		db:        db,
		mgr:       mgr,
		obs:       obs,
		clock:     clock,
		startTime: clock.Now().Unix(),
	}
}

// Start launches the poll and flush loops. Non-blocking: both loops run on
// clock tickers until ctx is canceled. A failed flush is logged and the
// loop keeps ticking; the next cycle retries with fresh data.
func (m *Monitor) Start(ctx context.Context) {
	m.clock.TickerFunc(ctx, m.cfg.PollInterval, func() error {
		m.pollOnce()
		return nil
	}, "poll")

	m.clock.TickerFunc(ctx, m.cfg.FlushInterval, func() error {
		if err := m.flushOnce(); err != nil {
			log.Println("flush:", err)
		}
		return nil
	}, "flush")
}

// pollOnce reads the foreground surface and records it. No reading this
// tick is the normal idle case, not an error.
func (m *Monitor) pollOnce() {
	info, ok := m.obs.Foreground()
	if !ok {
		return
	}
	url := observer.ExtractBrowserURL(info.AppName, info.WindowTitle)
	key := identity.Resolve(info.AppName, info.WindowTitle, url)
	m.mgr.Observe(key, m.clock.Now().Unix())
}

// flushOnce drains the active entries and appends them to usage_logs in a
// single transaction. The drain is a copy, so no manager lock is held
// during the write. Durations are cumulative: Drain never resets
// ActiveSince, so a key staying active across N cycles writes N rows each
// carrying the full elapsed time since activation — within one activation
// only the latest row is meaningful, the rows are not summable.
func (m *Monitor) flushOnce() error {
	now := m.clock.Now().Unix()
	drained := m.mgr.Drain(now)

	rows := make([]entity.UsageLog, 0, len(drained))
	for _, active := range drained {
		if active.Seconds == 0 {
			// activation too fresh to bill, skip
			continue
		}
		appName, detail, isURL := identity.Decompose(active.Identifier)
		row := entity.UsageLog{
			Identifier:  active.Identifier,
			AppName:     appName,
			WindowTitle: detail,
			Timestamp:   now,
			Duration:    active.Seconds,
		}
		if isURL {
			url := detail
			row.URL = &url
		}
		rows = append(rows, row)
	}

	if err := m.db.InsertUsageBatch(rows); err != nil {
		return fmt.Errorf("flushOnce: %w", err)
	}
	if len(rows) > 0 {
		m.printStatus(now, rows)
	}
	return nil
}

func (m *Monitor) printStatus(now int64, rows []entity.UsageLog) {
	log.Printf("flush: %d ligne(s), uptime %ds", len(rows), now-m.startTime)
	for _, row := range rows {
		log.Printf("  %s actif depuis %ds", row.Identifier, row.Duration)
	}
}

// Dashboard builds the snapshot at the monitor's current time.
func (m *Monitor) Dashboard() entity.DashboardData {
	return m.BuildSnapshot(m.clock.Now().Unix())
}

// BuildSnapshot assembles the dashboard aggregate: current focus from the
// (at most one) active entry, active set ranked by elapsed time, recent
// history from the retention query. Pure read, recomputed on every call.
func (m *Monitor) BuildSnapshot(now int64) entity.DashboardData {
	snapshot := m.mgr.Snapshot()

	data := entity.DashboardData{
		ActiveApps:     []entity.ActiveApp{},
		RecentActivity: m.db.RecentActivity(now, m.cfg.Retention, m.cfg.RecentLimit),
		TotalApps:      len(snapshot),
		Uptime:         now - m.startTime,
	}

	for key, entry := range snapshot {
		if !entry.Active {
			continue
		}
		elapsed := now - entry.ActiveSince
		if elapsed < 0 {
			elapsed = 0
		}
		data.ActiveApps = append(data.ActiveApps, entity.ActiveApp{Identifier: key, Seconds: elapsed})

		appName, detail, isURL := identity.Decompose(key)
		app := appName
		data.CurrentApp = &app
		rest := detail
		if isURL {
			data.CurrentURL = &rest
		} else {
			data.CurrentWindow = &rest
		}
	}

	// ordre décroissant par durée; l'ordre des ex aequo n'est pas spécifié
	sort.Slice(data.ActiveApps, func(i, j int) bool {
		return data.ActiveApps[i].Seconds > data.ActiveApps[j].Seconds
	})

	return data
}
