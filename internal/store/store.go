// Package store persists shelfmap's two state snapshots on disk: the
// canonical merged catalog with its filter settings, and the locally
// authored override records. Each snapshot is an independently keyed YAML
// file rewritten whole on every relevant mutation.
//
// The store is a cache, not the source of truth for remote data, so read
// failures are reported but callers treat them as empty state.
package store

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/shelfmap/shelfmap/pkg/catalog"
	"github.com/shelfmap/shelfmap/pkg/constants"
	"github.com/shelfmap/shelfmap/pkg/errors"
)

// Snapshot is the persisted canonical state: the merged product list plus
// the filter settings in force when it was written.
type Snapshot struct {
	Products         []catalog.Product `yaml:"products"`
	SearchTerm       string            `yaml:"search_term"`
	SelectedCategory string            `yaml:"selected_category"`
	SortBy           catalog.SortField `yaml:"sort_by"`
	SortOrder        catalog.SortOrder `yaml:"sort_order"`
}

// Filters returns the snapshot's filter settings, normalized.
func (s *Snapshot) Filters() catalog.FilterSettings {
	return catalog.FilterSettings{
		SearchTerm:       s.SearchTerm,
		SelectedCategory: s.SelectedCategory,
		SortBy:           s.SortBy,
		SortOrder:        s.SortOrder,
	}.Normalize()
}

// overridesFile is the on-disk shape of the overrides snapshot.
type overridesFile struct {
	Records []catalog.Product `yaml:"records"`
}

// Store reads and writes snapshots under a single state directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir. The directory is created lazily on
// first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the state directory.
func (s *Store) Dir() string {
	return s.dir
}

// SaveSnapshot rewrites the canonical catalog snapshot.
func (s *Store) SaveSnapshot(snap *Snapshot) error {
	return s.write(constants.CatalogSnapshotFile, snap)
}

// LoadSnapshot reads the canonical catalog snapshot. A missing or
// unparsable file is an error; callers fall back to empty state.
func (s *Store) LoadSnapshot() (*Snapshot, error) {
	var snap Snapshot
	if err := s.read(constants.CatalogSnapshotFile, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// SaveOverrides rewrites the locally authored records snapshot. Order is
// preserved as given.
func (s *Store) SaveOverrides(records []catalog.Product) error {
	return s.write(constants.OverridesSnapshotFile, &overridesFile{Records: records})
}

// LoadOverrides reads the locally authored records snapshot in stored
// order.
func (s *Store) LoadOverrides() ([]catalog.Product, error) {
	var file overridesFile
	if err := s.read(constants.OverridesSnapshotFile, &file); err != nil {
		return nil, err
	}
	return file.Records, nil
}

// write marshals value and overwrites the named file.
func (s *Store) write(name string, value any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return errors.WrapParse("yaml", name, err)
	}

	if err := os.MkdirAll(s.dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", s.dir, err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// read unmarshals the named file into value.
func (s *Store) read(name string, value any) error {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapIO("read", path, err)
	}
	if err := yaml.Unmarshal(data, value); err != nil {
		return errors.WrapParse("yaml", path, err)
	}
	return nil
}
