package seriescache

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fedcurve/internal/contract"
	"fedcurve/schema"
)

// StoreManager manages the fetch cache store instance.
type StoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	fetch        contract.CacheStore
}

var _ contract.CacheManager = &StoreManager{} // Compile-time check

// GetFetchStore returns the fetch CacheStore.
func (mgr *StoreManager) GetFetchStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.fetch
}

// globalManager is the process-wide manager, set up once by InitStores.
var globalManager = &StoreManager{}

// GetManager returns the global cache manager.
func GetManager() contract.CacheManager {
	return globalManager
}

// InitStores initializes the fetch cache with the validated backend config.
func InitStores(backend schema.DatabaseBackend, connStr string) error {
	store, err := NewStore(FetchTableName, backend, connStr)
	if err != nil {
		return err
	}
	globalManager.Lock()
	defer globalManager.Unlock()
	if globalManager.fetch != nil {
		_ = globalManager.fetch.Close()
	}
	globalManager.fetch = store
	return nil
}

// ClearCache removes all cached payloads. For SQLite the database file is
// deleted; for server backends the cache table is dropped.
func ClearCache(backend schema.DatabaseBackend, sqlitePath, connStr string) error {
	switch backend {
	case schema.NoneBackend:
		return nil

	case schema.SQLiteBackend:
		path := connStr
		if path == "" {
			path = sqlitePath
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove cache database %q: %w", path, err)
		}
		return nil

	default:
		store, err := NewStore(FetchTableName, backend, connStr)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		impl, ok := store.(*StoreImpl)
		if !ok || impl.db == nil {
			return nil
		}
		if _, err := impl.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", impl.tableName)); err != nil {
			return fmt.Errorf("failed to drop cache table: %w", err)
		}
		return nil
	}
}

// ensureParentDir creates the directory holding a SQLite database file.
func ensureParentDir(dbPath string) error {
	dir := filepath.Dir(dbPath)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory %q: %w", dir, err)
	}
	return nil
}
