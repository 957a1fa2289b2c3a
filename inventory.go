package repox

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Inventory is a local snapshot of the aggregator/provider/dataset tree
// of a REPOX instance, kept in a single SQLite file. It exists for
// offline inspection and reporting; the Client itself stays stateless.
type Inventory struct {
	path string
	db   *sql.DB
}

// OpenInventory opens or creates an inventory database at path.
func OpenInventory(path string) (*Inventory, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create inventory dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	inv := &Inventory{path: path, db: db}
	if err := inv.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return inv, nil
}

// Close closes the inventory database.
func (inv *Inventory) Close() error {
	return inv.db.Close()
}

// Path returns the inventory database file.
func (inv *Inventory) Path() string {
	return inv.path
}

func (inv *Inventory) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS aggregators (
		id        TEXT PRIMARY KEY,
		name      TEXT,
		name_code TEXT,
		homepage  TEXT
	);

	CREATE TABLE IF NOT EXISTS providers (
		id            TEXT PRIMARY KEY,
		aggregator_id TEXT,
		name          TEXT,
		country_code  TEXT,
		provider_type TEXT,
		email         TEXT
	);

	CREATE TABLE IF NOT EXISTS datasets (
		id              TEXT PRIMARY KEY,
		provider_id     TEXT,
		name            TEXT,
		dataset_type    TEXT,
		metadata_format TEXT,
		records         INTEGER,
		last_ingest     TEXT
	);

	CREATE TABLE IF NOT EXISTS sync_state (
		key   TEXT PRIMARY KEY,
		value TEXT
	);
	`
	_, err := inv.db.Exec(schema)
	return err
}

// InventorySyncOptions configures an inventory sync.
type InventorySyncOptions struct {
	// WithCounts also fetches the record count and last ingest date of
	// every dataset. One extra pair of requests per dataset.
	WithCounts bool

	// Progress is called after each provider is synced.
	Progress func(aggregators, providers, datasets int)
}

// Sync replaces the snapshot with the current remote tree, walking
// aggregators, their providers and their datasets.
func (inv *Inventory) Sync(ctx context.Context, c *Client, opts *InventorySyncOptions) error {
	if opts == nil {
		opts = &InventorySyncOptions{}
	}

	aggregators, err := c.Aggregators(ctx)
	if err != nil {
		return fmt.Errorf("list aggregators: %w", err)
	}

	tx, err := inv.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"aggregators", "providers", "datasets"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	var nProviders, nDatasets int
	for _, a := range aggregators {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO aggregators (id, name, name_code, homepage) VALUES (?, ?, ?, ?)",
			a.ID, a.Name, a.NameCode, a.Homepage)
		if err != nil {
			return fmt.Errorf("insert aggregator %s: %w", a.ID, err)
		}

		providers, err := c.Providers(ctx, a.ID)
		if err != nil {
			return fmt.Errorf("list providers of %s: %w", a.ID, err)
		}

		for _, p := range providers {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO providers (id, aggregator_id, name, country_code, provider_type, email) VALUES (?, ?, ?, ?, ?, ?)",
				p.ID, a.ID, p.Name, p.CountryCode, p.ProviderType, p.Email)
			if err != nil {
				return fmt.Errorf("insert provider %s: %w", p.ID, err)
			}

			datasets, err := c.Datasets(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("list datasets of %s: %w", p.ID, err)
			}

			for _, d := range datasets {
				var records sql.NullInt64
				var lastIngest sql.NullString
				if opts.WithCounts {
					// Fresh sets have no count or ingest date yet; leave
					// the columns NULL rather than failing the sync.
					if n, err := c.RecordCount(ctx, d.DataSource.ID); err == nil {
						records = sql.NullInt64{Int64: int64(n), Valid: true}
					}
					if date, err := c.LastIngestDate(ctx, d.DataSource.ID); err == nil {
						lastIngest = sql.NullString{String: date, Valid: true}
					}
				}
				_, err := tx.ExecContext(ctx,
					"INSERT INTO datasets (id, provider_id, name, dataset_type, metadata_format, records, last_ingest) VALUES (?, ?, ?, ?, ?, ?, ?)",
					d.DataSource.ID, p.ID, d.Name, d.DataSource.DataSetType, d.DataSource.MetadataFormat, records, lastIngest)
				if err != nil {
					return fmt.Errorf("insert dataset %s: %w", d.DataSource.ID, err)
				}
				nDatasets++
			}
			nProviders++

			if opts.Progress != nil {
				opts.Progress(len(aggregators), nProviders, nDatasets)
			}
		}
	}

	_, err = tx.ExecContext(ctx,
		"INSERT OR REPLACE INTO sync_state (key, value) VALUES ('last_sync', ?)",
		time.Now().Format(time.RFC3339))
	if err != nil {
		return err
	}

	return tx.Commit()
}

// InventoryStats are row counts of the snapshot.
type InventoryStats struct {
	Aggregators  int64
	Providers    int64
	Datasets     int64
	RecordsTotal int64
	LastSync     time.Time
}

// Stats returns counts over the snapshot. RecordsTotal covers only
// datasets synced with counts.
func (inv *Inventory) Stats(ctx context.Context) (*InventoryStats, error) {
	stats := &InventoryStats{}

	counts := map[string]*int64{
		"aggregators": &stats.Aggregators,
		"providers":   &stats.Providers,
		"datasets":    &stats.Datasets,
	}
	for table, dst := range counts {
		row := inv.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table)
		if err := row.Scan(dst); err != nil {
			return nil, err
		}
	}

	row := inv.db.QueryRowContext(ctx, "SELECT COALESCE(SUM(records), 0) FROM datasets")
	if err := row.Scan(&stats.RecordsTotal); err != nil {
		return nil, err
	}

	var lastSync string
	row = inv.db.QueryRowContext(ctx, "SELECT value FROM sync_state WHERE key = 'last_sync'")
	if err := row.Scan(&lastSync); err == nil {
		stats.LastSync, _ = time.Parse(time.RFC3339, lastSync)
	}

	return stats, nil
}

// InventoryDataset is one dataset row of the snapshot.
type InventoryDataset struct {
	ID             string
	ProviderID     string
	Name           string
	DatasetType    string
	MetadataFormat string
	Records        int64
	LastIngest     string
}

// SnapshotDatasets lists the snapshot's datasets, optionally filtered by
// provider id.
func (inv *Inventory) SnapshotDatasets(ctx context.Context, providerID string) ([]InventoryDataset, error) {
	query := "SELECT id, provider_id, name, dataset_type, metadata_format, COALESCE(records, 0), COALESCE(last_ingest, '') FROM datasets"
	var args []any
	if providerID != "" {
		query += " WHERE provider_id = ?"
		args = append(args, providerID)
	}
	query += " ORDER BY id"

	rows, err := inv.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var datasets []InventoryDataset
	for rows.Next() {
		var d InventoryDataset
		if err := rows.Scan(&d.ID, &d.ProviderID, &d.Name, &d.DatasetType, &d.MetadataFormat, &d.Records, &d.LastIngest); err != nil {
			return nil, err
		}
		datasets = append(datasets, d)
	}
	return datasets, rows.Err()
}
