package ldb

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldbErrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDB is a thin wrapper around a leveldb instance.
type LevelDB struct {
	ldb *leveldb.DB
}

// NewLevelDB opens a leveldb instance defined by the given path.
func NewLevelDB(path string) (*LevelDB, error) {
	// Open leveldb. If it doesn't exist, create it.
	ldb, err := leveldb.OpenFile(path, Options())

	// If the database is corrupted, attempt to recover.
	var corruptedErr *ldbErrors.ErrCorrupted
	if errors.As(err, &corruptedErr) {
		log.Warnf("LevelDB corruption detected for path %s: %s",
			path, err)
		var err error
		ldb, err = leveldb.RecoverFile(path, Options())
		if err != nil {
			return nil, errors.WithStack(err)
		}
		log.Warnf("LevelDB recovered from corruption for path %s",
			path)
	} else if err != nil {
		// If the database cannot be opened for any other
		// reason, return the error as-is.
		return nil, errors.WithStack(err)
	}

	db := &LevelDB{
		ldb: ldb,
	}
	return db, nil
}

// Close closes the leveldb instance.
func (db *LevelDB) Close() error {
	return errors.WithStack(db.ldb.Close())
}

// Put sets the value for the given key. It overwrites
// any previous value for that key.
func (db *LevelDB) Put(key []byte, value []byte) error {
	return errors.WithStack(db.ldb.Put(key, value, nil))
}

// Get gets the value for the given key. It returns nil if
// the given key does not exist.
func (db *LevelDB) Get(key []byte) ([]byte, error) {
	data, err := db.ldb.Get(key, nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}
	return data, nil
}

// Has returns true if the database does contains the
// given key.
func (db *LevelDB) Has(key []byte) (bool, error) {
	has, err := db.ldb.Has(key, nil)
	return has, errors.WithStack(err)
}

// Delete deletes the value for the given key. Deleting a
// key that doesn't exist is not an error.
func (db *LevelDB) Delete(key []byte) error {
	return errors.WithStack(db.ldb.Delete(key, nil))
}

// ForEach calls f for every key starting with prefix, in key order.
// Iteration stops at the first error returned by f.
func (db *LevelDB) ForEach(prefix []byte, f func(key []byte, value []byte) error) error {
	iterator := db.ldb.NewIterator(util.BytesPrefix(prefix), nil)
	defer iterator.Release()

	for iterator.Next() {
		err := f(iterator.Key(), iterator.Value())
		if err != nil {
			return err
		}
	}
	return errors.WithStack(iterator.Error())
}

// Batch collects writes that are applied atomically by Write.
type Batch struct {
	batch *leveldb.Batch
}

// NewBatch returns an empty batch.
func (db *LevelDB) NewBatch() *Batch {
	return &Batch{batch: new(leveldb.Batch)}
}

// Put adds a put of the key to the batch.
func (b *Batch) Put(key []byte, value []byte) {
	b.batch.Put(key, value)
}

// Delete adds a deletion of the key to the batch.
func (b *Batch) Delete(key []byte) {
	b.batch.Delete(key)
}

// Len returns the number of writes in the batch.
func (b *Batch) Len() int {
	return b.batch.Len()
}

// Write applies all writes of the batch atomically.
func (db *LevelDB) Write(batch *Batch) error {
	return errors.WithStack(db.ldb.Write(batch.batch, nil))
}
