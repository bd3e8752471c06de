package storage

import (
	"encoding/json"
	"fmt"

	murerrors "github.com/manav03panchal/murmur/internal/errors"
	"github.com/manav03panchal/murmur/internal/model"
)

// ErrCorrupted is returned by Load when the stored value cannot be parsed.
var ErrCorrupted = murerrors.ErrStoreCorrupted

// EntryRepo persists the whole entry sequence under a single fixed key.
type EntryRepo struct {
	db  *DB
	key string
}

// NewEntryRepo creates a new entry repository using model.KeyConfessions.
func NewEntryRepo(db *DB) *EntryRepo {
	return &EntryRepo{db: db, key: model.KeyConfessions}
}

// Key returns the storage key the sequence lives under.
func (r *EntryRepo) Key() string {
	return r.key
}

// Load reads the stored sequence. A missing key yields an empty sequence.
// An unparseable value yields ErrCorrupted; callers treat that as no data.
func (r *EntryRepo) Load() ([]model.Entry, error) {
	data, err := r.db.GetBytes(r.key)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return nil, nil
		}
		return nil, murerrors.NewSystemErrorWithOp("load", "failed to read confessions", err)
	}

	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	return entries, nil
}

// Save overwrites the stored sequence.
func (r *EntryRepo) Save(entries []model.Entry) error {
	if entries == nil {
		entries = []model.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if err := r.db.SetBytes(r.key, data); err != nil {
		return murerrors.NewSystemErrorWithOp("save", "failed to write confessions", err)
	}
	return nil
}

// Remove deletes the stored sequence entirely.
func (r *EntryRepo) Remove() error {
	if err := r.db.Delete(r.key); err != nil {
		return murerrors.NewSystemErrorWithOp("remove", "failed to erase confessions", err)
	}
	return nil
}
