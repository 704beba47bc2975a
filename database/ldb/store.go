// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ldb

import (
	"errors"

	"github.com/0xsoniclabs/cairostate/common"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

const (
	ErrNotFound = common.ConstError("not found")
)

// kvStore is the key-value store persisting the state.
type kvStore interface {
	Get(key []byte) ([]byte, error)
	Write(batch *leveldb.Batch) error
	Close() error
}

// levelDbStore is a kvStore backed by LevelDB.
type levelDbStore struct {
	db *leveldb.DB
}

func newLevelDbStore(path string) (*levelDbStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &levelDbStore{db: db}, nil
}

// newMemoryDbStore creates a LevelDB instance keeping all its data in memory.
func newMemoryDbStore() (*levelDbStore, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return &levelDbStore{db: db}, nil
}

func (s *levelDbStore) Get(key []byte) ([]byte, error) {
	data, err := s.db.Get(key, &opt.ReadOptions{})
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *levelDbStore) Write(batch *leveldb.Batch) error {
	return s.db.Write(batch, &opt.WriteOptions{Sync: true})
}

func (s *levelDbStore) Close() error {
	return s.db.Close()
}
