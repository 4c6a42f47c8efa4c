package bridge

import (
	"sync"

	"github.com/rebasefi/CrossChain-RebaseToken/common"
	"github.com/rebasefi/CrossChain-RebaseToken/leveldb"
	"github.com/rebasefi/CrossChain-RebaseToken/log"
)

// MemoryIndex is a non persistent delivered payload index.
type MemoryIndex struct {
	mutex sync.RWMutex
	ids   map[common.Hash]struct{}
}

// NewMemoryIndex new memory index
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		ids: make(map[common.Hash]struct{}),
	}
}

// IsDelivered implements DeliveredIndex
func (m *MemoryIndex) IsDelivered(id common.Hash) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	_, exist := m.ids[id]
	return exist
}

// MarkDelivered implements DeliveredIndex
func (m *MemoryIndex) MarkDelivered(id common.Hash) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.ids[id] = struct{}{}
	return nil
}

// LevelDBIndex is a delivered payload index persisted in leveldb, so an
// endpoint restart cannot double mint a replayed payload.
type LevelDBIndex struct {
	db *leveldb.Database
}

// NewLevelDBIndex opens (or creates) the index at path.
func NewLevelDBIndex(path string) (*LevelDBIndex, error) {
	db, err := leveldb.Open(path)
	if err != nil {
		return nil, err
	}
	return &LevelDBIndex{db: db}, nil
}

// IsDelivered implements DeliveredIndex
func (x *LevelDBIndex) IsDelivered(id common.Hash) bool {
	_, err := x.db.Get(id.Bytes())
	if err == nil {
		return true
	}
	if !leveldb.IsNotFoundErr(err) {
		log.Error("query delivered index failed", "transferID", id.Hex(), "err", err)
	}
	return false
}

// MarkDelivered implements DeliveredIndex
func (x *LevelDBIndex) MarkDelivered(id common.Hash) error {
	return x.db.Put(id.Bytes(), []byte{1})
}

// Close closes the underlying database.
func (x *LevelDBIndex) Close() error {
	return x.db.Close()
}
