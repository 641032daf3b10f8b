// Package seed loads YAML fixtures of folders, tags and notes into the store.
//
// Fixtures carry fixed ids so that links into seeded data stay stable across
// reseeds.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/notefulapp/noteful-server/internal/domain"
	"github.com/notefulapp/noteful-server/internal/id"
)

//go:embed fixtures/noteful.yaml
var defaultFixtures []byte

// Fixtures is the document shape of a seed file.
type Fixtures struct {
	Folders []Named `yaml:"folders"`
	Tags    []Named `yaml:"tags"`
	Notes   []Note  `yaml:"notes"`
}

// Named is a folder or tag fixture.
type Named struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Note is a note fixture.
type Note struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Content  string   `yaml:"content"`
	FolderID string   `yaml:"folderId"`
	Tags     []string `yaml:"tags"`
}

// Store is the persistence the seeder writes through.
type Store interface {
	Reset(ctx context.Context) error
	CreateFolder(ctx context.Context, f *domain.Folder) error
	CreateTag(ctx context.Context, t *domain.Tag) error
	CreateNote(ctx context.Context, n *domain.Note) error
}

// Result counts what Apply wrote.
type Result struct {
	Folders int
	Tags    int
	Notes   int
}

// Default returns the bundled demo fixtures.
func Default() (*Fixtures, error) {
	return Decode(bytes.NewReader(defaultFixtures))
}

// LoadFile reads and validates fixtures from path.
func LoadFile(path string) (*Fixtures, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses and validates fixtures. Unknown keys are rejected.
func Decode(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx Fixtures
	if err := dec.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	if err := fx.Validate(); err != nil {
		return nil, err
	}
	return &fx, nil
}

// Validate checks ids, required fields and reference shapes.
func (fx *Fixtures) Validate() error {
	for i, f := range fx.Folders {
		if err := checkNamed("folder", i, f); err != nil {
			return err
		}
	}
	for i, t := range fx.Tags {
		if err := checkNamed("tag", i, t); err != nil {
			return err
		}
	}
	for i, n := range fx.Notes {
		if !id.IsValid(n.ID) {
			return fmt.Errorf("note %d: invalid id %q", i, n.ID)
		}
		if n.Title == "" {
			return fmt.Errorf("note %s: missing title", n.ID)
		}
		if n.FolderID != "" && !id.IsValid(n.FolderID) {
			return fmt.Errorf("note %s: invalid folderId %q", n.ID, n.FolderID)
		}
		for _, t := range n.Tags {
			if !id.IsValid(t) {
				return fmt.Errorf("note %s: invalid tag %q", n.ID, t)
			}
		}
	}
	return nil
}

func checkNamed(kind string, i int, n Named) error {
	if !id.IsValid(n.ID) {
		return fmt.Errorf("%s %d: invalid id %q", kind, i, n.ID)
	}
	if n.Name == "" {
		return fmt.Errorf("%s %s: missing name", kind, n.ID)
	}
	return nil
}

// Apply writes fx to st, after wiping the store when reset is set.
//
// Ids are stored in normalized form. Notes get UpdatedAt one second apart in file order, so the first note in
// the file lists last. Apply stops at the first failed write; an id or name
// that already exists fails with the store's ErrAlreadyExists.
func Apply(ctx context.Context, st Store, fx *Fixtures, reset bool) (Result, error) {
	var res Result

	if reset {
		if err := st.Reset(ctx); err != nil {
			return res, err
		}
	}

	now := time.Now().UTC().Truncate(time.Second)

	for _, f := range fx.Folders {
		folder := &domain.Folder{Record: domain.Record{ID: id.Normalize(f.ID), CreatedAt: now, UpdatedAt: now}, Name: f.Name}
		if err := st.CreateFolder(ctx, folder); err != nil {
			return res, fmt.Errorf("folder %s: %w", f.ID, err)
		}
		res.Folders++
	}

	for _, t := range fx.Tags {
		tag := &domain.Tag{Record: domain.Record{ID: id.Normalize(t.ID), CreatedAt: now, UpdatedAt: now}, Name: t.Name}
		if err := st.CreateTag(ctx, tag); err != nil {
			return res, fmt.Errorf("tag %s: %w", t.ID, err)
		}
		res.Tags++
	}

	for i, n := range fx.Notes {
		at := now.Add(time.Duration(i) * time.Second)
		note := &domain.Note{
			Record:   domain.Record{ID: id.Normalize(n.ID), CreatedAt: at, UpdatedAt: at},
			Title:    n.Title,
			Content:  n.Content,
			FolderID: id.Normalize(n.FolderID),
		}
		note.SetTags(id.NormalizeAll(n.Tags))
		if err := st.CreateNote(ctx, note); err != nil {
			return res, fmt.Errorf("note %s: %w", n.ID, err)
		}
		res.Notes++
	}

	return res, nil
}
