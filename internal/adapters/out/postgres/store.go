// Package postgres provides the GORM-backed persistence adapters.
//
// There is deliberately no transaction spanning a transition's writes. The
// status update is the single authoritative write, protected by an
// optimistic compare-and-set on the previously observed status; the audit
// append that follows is best effort and must not be able to revert an
// already committed status change. A store therefore hands out plain
// repositories over one shared connection instead of a unit of work.
package postgres

import (
	"bakery/internal/adapters/out/postgres/historyrepo"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/core/ports"

	"gorm.io/gorm"
)

// GormStore bundles the repositories over one GORM connection.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	store := NewGormStore(db)
//	if err := store.Migrate(); err != nil {
//	    log.Fatal(err)
//	}
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store over an open GORM connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the schema for all persisted aggregates.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&orderrepo.OrderDTO{}, &historyrepo.HistoryEntryDTO{})
}

// OrderRepository returns the order persistence adapter.
func (s *GormStore) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(s.db)
}

// HistoryRepository returns the audit trail persistence adapter.
func (s *GormStore) HistoryRepository() ports.HistoryRepository {
	return historyrepo.NewGormHistoryRepository(s.db)
}

// DB exposes the raw connection for read-only query handlers.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}
