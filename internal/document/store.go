package document

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vango-dev/tagtree/internal/errors"
	"github.com/vango-dev/tagtree/pkg/markup"
)

// Ext is the file extension of documents in a Store.
const Ext = ".yaml"

// Store serves documents by name. Open must return an error matching
// fs.ErrNotExist for unknown names.
type Store interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	List(ctx context.Context) ([]string, error)
}

// ValidName reports whether name can address a document: non-empty, not
// hidden, and without path separators.
func ValidName(name string) bool {
	return name != "" && !strings.HasPrefix(name, ".") && !strings.ContainsAny(name, `/\`)
}

// LoadFrom reads and builds the document called name from st.
func LoadFrom(ctx context.Context, st Store, name string) (*markup.Element, error) {
	if !ValidName(name) {
		return nil, errors.New("E501").
			Wrap(&fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist})
	}

	rc, err := st.Open(ctx, name)
	if err != nil {
		return nil, errors.New("E501").WithDetail(name).Wrap(err)
	}
	defer rc.Close()

	return Parse(rc)
}

// DirStore serves <Dir>/<name>.yaml files.
type DirStore struct {
	Dir string
}

// Open implements Store.
func (s DirStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.Dir, name+Ext))
}

// List implements Store.
func (s DirStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		if name := strings.TrimSuffix(e.Name(), Ext); ValidName(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
