package database

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

type Migration struct {
	ID   string
	Name string
	Up   func(db *gorm.DB) error
	Down func(db *gorm.DB) error
}

var (
	registryMu         sync.Mutex
	migrationsRegistry = make(map[string]Migration)
)

// RegisterMigration is called from init functions in the migrations package.
func RegisterMigration(m Migration) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := migrationsRegistry[m.ID]; exists {
		panic(fmt.Sprintf("migration with ID %s already registered", m.ID))
	}
	migrationsRegistry[m.ID] = m
}

// RegisteredMigrations returns every migration sorted by ID.
func RegisteredMigrations() []Migration {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]Migration, 0, len(migrationsRegistry))
	for _, m := range migrationsRegistry {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type MigrationsManager struct {
	db *gorm.DB
}

func NewMigrationsManager(db *gorm.DB) *MigrationsManager {
	return &MigrationsManager{db: db}
}

func (m *MigrationsManager) ensureMigrationsTable(db *gorm.DB) error {
	const createTableSQL = `
CREATE TABLE IF NOT EXISTS public.migration_version (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`
	return db.Exec(createTableSQL).Error
}

func (m *MigrationsManager) appliedMigrations(db *gorm.DB) (map[string]struct{}, error) {
	var ids []string
	if err := db.Raw("SELECT id FROM public.migration_version").Scan(&ids).Error; err != nil {
		return nil, err
	}
	applied := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		applied[id] = struct{}{}
	}
	return applied, nil
}

// Pending lists registered migrations that have not been applied yet.
func (m *MigrationsManager) Pending(ctx context.Context) ([]Migration, error) {
	db := m.db.WithContext(ctx)
	if err := m.ensureMigrationsTable(db); err != nil {
		return nil, fmt.Errorf("ensure migrations table: %w", err)
	}
	applied, err := m.appliedMigrations(db)
	if err != nil {
		return nil, fmt.Errorf("load applied migrations: %w", err)
	}
	var pending []Migration
	for _, mig := range RegisteredMigrations() {
		if _, ok := applied[mig.ID]; !ok {
			pending = append(pending, mig)
		}
	}
	return pending, nil
}

// ApplyPending runs each pending migration in its own transaction together
// with its version row, and returns how many were applied.
func (m *MigrationsManager) ApplyPending(ctx context.Context) (int, error) {
	pending, err := m.Pending(ctx)
	if err != nil {
		return 0, err
	}
	for i, mig := range pending {
		if mig.Up == nil {
			return i, fmt.Errorf("migration %s has no Up function", mig.ID)
		}
		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := mig.Up(tx); err != nil {
				return fmt.Errorf("apply migration %s (%s): %w", mig.ID, mig.Name, err)
			}
			return tx.Exec(
				"INSERT INTO public.migration_version (id, name, applied_at) VALUES (?, ?, ?)",
				mig.ID, mig.Name, time.Now().UTC(),
			).Error
		})
		if err != nil {
			return i, err
		}
	}
	return len(pending), nil
}

// Rollback reverts the most recently applied migration.
func (m *MigrationsManager) Rollback(ctx context.Context) (string, error) {
	db := m.db.WithContext(ctx)
	if err := m.ensureMigrationsTable(db); err != nil {
		return "", fmt.Errorf("ensure migrations table: %w", err)
	}
	var last string
	if err := db.Raw("SELECT id FROM public.migration_version ORDER BY id DESC LIMIT 1").Scan(&last).Error; err != nil {
		return "", err
	}
	if last == "" {
		return "", nil
	}

	registryMu.Lock()
	mig, ok := migrationsRegistry[last]
	registryMu.Unlock()
	if !ok || mig.Down == nil {
		return "", fmt.Errorf("migration %s cannot be rolled back", last)
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := mig.Down(tx); err != nil {
			return fmt.Errorf("rollback migration %s: %w", mig.ID, err)
		}
		return tx.Exec("DELETE FROM public.migration_version WHERE id = ?", mig.ID).Error
	})
	if err != nil {
		return "", err
	}
	return mig.ID, nil
}
