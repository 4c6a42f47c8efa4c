// Package leveldb is a wrapper of goleveldb.
package leveldb

import (
	"errors"

	"github.com/rebasefi/CrossChain-RebaseToken/log"
	goleveldb "github.com/syndtr/goleveldb/leveldb"
	dberrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

const (
	// minCache is the minimum amount of memory in megabytes to allocate to
	// leveldb read and write caching, split half and half.
	minCache = 16

	// minHandles is the minimum number of file handles to allocate to the
	// open database files.
	minHandles = 16
)

// IsNotFoundErr is err 'ErrNotFound'
func IsNotFoundErr(err error) bool {
	return errors.Is(err, dberrors.ErrNotFound)
}

// Database is a persistent key-value store.
type Database struct {
	path  string
	lvldb *goleveldb.DB
}

// Open opens (or creates) a leveldb database at path with default options.
func Open(path string) (*Database, error) {
	return OpenCustom(path, minCache, minHandles)
}

// OpenCustom opens a leveldb database with the given cache (megabytes) and
// file handle allowance. Corrupted databases are recovered in place.
func OpenCustom(path string, cache, handles int) (*Database, error) {
	if cache < minCache {
		cache = minCache
	}
	if handles < minHandles {
		handles = minHandles
	}
	options := &opt.Options{
		OpenFilesCacheCapacity: handles,
		BlockCacheCapacity:     cache / 2 * opt.MiB,
		WriteBuffer:            cache / 4 * opt.MiB,
		Filter:                 filter.NewBloomFilter(10),
	}
	log.Info("open leveldb database", "path", path, "cache", cache, "handles", handles)
	db, err := goleveldb.OpenFile(path, options)
	if dberrors.IsCorrupted(err) {
		log.Warn("leveldb database corrupted, recovering", "path", path)
		db, err = goleveldb.RecoverFile(path, nil)
	}
	if err != nil {
		return nil, err
	}
	return &Database{
		path:  path,
		lvldb: db,
	}, nil
}

// Path returns the path to the database directory.
func (db *Database) Path() string {
	return db.path
}

// Put inserts the given value into the key-value store.
func (db *Database) Put(key, value []byte) error {
	return db.lvldb.Put(key, value, nil)
}

// Get retrieves the given key if it's present in the key-value store.
func (db *Database) Get(key []byte) ([]byte, error) {
	return db.lvldb.Get(key, nil)
}

// Has retrieves if a key is present in the key-value store.
func (db *Database) Has(key []byte) (bool, error) {
	return db.lvldb.Has(key, nil)
}

// Delete removes the key from the key-value store.
func (db *Database) Delete(key []byte) error {
	return db.lvldb.Delete(key, nil)
}

// Close stops the metrics collection, flushes any pending data to disk and
// closes all io accesses to the underlying key-value store.
func (db *Database) Close() error {
	err := db.lvldb.Close()
	if err == nil {
		log.Info("database closed", "path", db.path)
	} else {
		log.Error("database closed failed", "path", db.path, "err", err)
	}
	return err
}
