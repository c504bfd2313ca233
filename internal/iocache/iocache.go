// Package iocache is for caching blame collection I/O.
package iocache

import (
	"sync"

	"github.com/huangsam/busfactor/internal/contract"
)

// CacheStoreManager manages the blame CacheStore instance.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	activity     contract.CacheStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetActivityStore returns the blame CacheStore.
func (mgr *CacheStoreManager) GetActivityStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.activity
}
