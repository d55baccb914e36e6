// Package store writes SQLite snapshots of the dashboard tables.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/stoki/internal/dataset"
	"github.com/theirongolddev/stoki/internal/pipeline"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Snapshot is an open snapshot database.
type Snapshot struct {
	db *sql.DB
}

// Open opens or creates the snapshot database at the given path.
func Open(dbPath string) (*Snapshot, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Snapshot{db: db}, nil
}

// Close closes the snapshot database.
func (s *Snapshot) Close() error {
	return s.db.Close()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Write replaces the contents of every table with t in one transaction.
func (s *Snapshot) Write(ctx context.Context, t dataset.Tables, takenAt time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, name := range TableNames {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+name); err != nil {
			return fmt.Errorf("clearing %s: %w", name, err)
		}
	}

	for i, m := range t.Market {
		if _, err := tx.ExecContext(ctx, `INSERT INTO market_fundamentals
			(position, metric, label, value, unit, description) VALUES (?, ?, ?, ?, ?, ?)`,
			i, m.Metric, m.Label, m.Value, m.Unit, m.Description,
		); err != nil {
			return fmt.Errorf("inserting market row %q: %w", m.Label, err)
		}
	}

	for _, c := range t.Competitors {
		if _, err := tx.ExecContext(ctx, `INSERT INTO competitors
			(name, is_target, revenue_r_m, market_share, yoy_growth, customers,
			 arpu_monthly, cac, cac_payback_months, funding_raised_r_m, valuation_r_m, profit_margin)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.Name, boolInt(c.IsTarget), c.Revenue.String(), c.MarketShare, c.YoYGrowth, c.Customers,
			c.ARPUMonthly.String(), c.CAC.String(), c.CACPaybackMonths().StringFixed(2),
			c.FundingRaised.String(), c.Valuation.String(), c.ProfitMargin,
		); err != nil {
			return fmt.Errorf("inserting competitor %q: %w", c.Name, err)
		}
	}

	for _, r := range t.Features.Rows {
		for i, company := range t.Features.Companies {
			supported := i < len(r.Support) && r.Support[i]
			if _, err := tx.ExecContext(ctx, `INSERT INTO feature_support
				(feature, company, supported) VALUES (?, ?, ?)`,
				r.Feature, company, boolInt(supported),
			); err != nil {
				return fmt.Errorf("inserting feature %q/%q: %w", r.Feature, company, err)
			}
		}
	}

	for _, p := range t.Positioning {
		if _, err := tx.ExecContext(ctx, `INSERT INTO positioning
			(company, feature_score, price_index, customers, quadrant) VALUES (?, ?, ?, ?, ?)`,
			p.Company, p.FeatureScore, p.PriceIndex, p.Customers, p.Quadrant,
		); err != nil {
			return fmt.Errorf("inserting positioning %q: %w", p.Company, err)
		}
	}

	for _, sg := range t.Segments {
		if _, err := tx.ExecContext(ctx, `INSERT INTO segments
			(name, market_size, digital_adoption, arpu_potential, cac, growth_rate) VALUES (?, ?, ?, ?, ?, ?)`,
			sg.Name, sg.MarketSize, sg.DigitalAdoption, sg.ARPUPotential, sg.CAC, sg.GrowthRate,
		); err != nil {
			return fmt.Errorf("inserting segment %q: %w", sg.Name, err)
		}
	}

	for _, r := range t.Results {
		if _, err := tx.ExecContext(ctx, `INSERT INTO results
			(metric, current, target, unit, percent_of_target) VALUES (?, ?, ?, ?, ?)`,
			r.Metric, r.Current, r.Target, r.Unit, pipeline.MeasureProgress(r).Percent,
		); err != nil {
			return fmt.Errorf("inserting result %q: %w", r.Metric, err)
		}
	}

	for _, p := range t.PainPoints {
		if _, err := tx.ExecContext(ctx, `INSERT INTO pain_points
			(description, prevalence, addressed, priority) VALUES (?, ?, ?, ?)`,
			p.Description, p.Prevalence, boolInt(p.Addressed), p.Priority,
		); err != nil {
			return fmt.Errorf("inserting pain point %q: %w", p.Description, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO snapshot_meta (key, value) VALUES ('taken_at', ?)`,
		takenAt.UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("writing snapshot meta: %w", err)
	}

	return tx.Commit()
}

// RowCounts returns the number of rows in each data table.
func (s *Snapshot) RowCounts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(TableNames))
	for _, name := range TableNames {
		var n int
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+name).Scan(&n); err != nil {
			return nil, fmt.Errorf("counting %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil
}
