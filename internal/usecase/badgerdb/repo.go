// Package badgerdb persists side tables in an embedded badger key-value store.
package badgerdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/sidetable"
)

// Repository implements sidetable.Repository on badger.
type Repository struct {
	db *badger.DB
}

var _ sidetable.Repository = (*Repository)(nil)

// Open opens (or creates) the badger directory at path. An empty path
// keeps everything in memory.
func Open(path string) (*Repository, error) {
	opts := badger.DefaultOptions(filepath.Clean(path))
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}

	opts.Logger = nil
	opts = opts.WithValueLogFileSize(1 << 20)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badgerdb - open %q: %w", path, err)
	}

	return &Repository{db: db}, nil
}

func indicatorKey(uuid string) []byte {
	return []byte("indicator/" + uuid)
}

func volumePrefix(uuid, storageID string) []byte {
	return []byte("volume/" + uuid + "/" + storageID + "/")
}

func volumeKey(uuid, storageID, volumeID string) []byte {
	return append(volumePrefix(uuid, storageID), volumeID...)
}

func mediaKey(uuid, deviceID string) []byte {
	return []byte("vmedia/" + uuid + "/" + deviceID)
}

// GetIndicator -.
func (r *Repository) GetIndicator(_ context.Context, uuid string) (string, bool, error) {
	var state string

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(indicatorKey(uuid))
		if err != nil {
			return err
		}

		return item.Value(func(v []byte) error {
			state = string(v)

			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	return state, true, nil
}

// PutIndicator -.
func (r *Repository) PutIndicator(_ context.Context, uuid, state string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(indicatorKey(uuid), []byte(state))
	})
}

// ListVolumes walks the (uuid, storageID) prefix; keys sort by volume ID.
func (r *Repository) ListVolumes(_ context.Context, uuid, storageID string) ([]entity.Volume, error) {
	out := []entity.Volume{}
	prefix := volumePrefix(uuid, storageID)

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var v entity.Volume

			if err := it.Item().Value(func(data []byte) error {
				return json.Unmarshal(data, &v)
			}); err != nil {
				return err
			}

			out = append(out, v)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// PutVolume -.
func (r *Repository) PutVolume(_ context.Context, uuid, storageID string, volume entity.Volume) error {
	data, err := json.Marshal(volume)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(volumeKey(uuid, storageID, volume.ID), data)
	})
}

// DeleteVolume -.
func (r *Repository) DeleteVolume(_ context.Context, uuid, storageID, volumeID string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(volumeKey(uuid, storageID, volumeID))
	})
}

// GetVirtualMedia -.
func (r *Repository) GetVirtualMedia(_ context.Context, uuid, deviceID string) (entity.VirtualMedia, bool, error) {
	var m entity.VirtualMedia

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(mediaKey(uuid, deviceID))
		if err != nil {
			return err
		}

		return item.Value(func(data []byte) error {
			return json.Unmarshal(data, &m)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return entity.VirtualMedia{}, false, nil
	}

	if err != nil {
		return entity.VirtualMedia{}, false, err
	}

	return m, true, nil
}

// PutVirtualMedia -.
func (r *Repository) PutVirtualMedia(_ context.Context, uuid, deviceID string, media entity.VirtualMedia) error {
	data, err := json.Marshal(media)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(mediaKey(uuid, deviceID), data)
	})
}

// Close -.
func (r *Repository) Close() error {
	return r.db.Close()
}
