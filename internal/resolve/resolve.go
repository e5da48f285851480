// package resolve maps request paths onto content under a root directory,
// either the bytes of a regular file or a generated directory listing.
package resolve

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/frankli0324/go-httpd/internal/errors"
)

type Resolver struct {
	Root string

	// Confine rejects paths that would leave Root: paths not starting with
	// "/", and paths whose ".." segments climb above it. When false the
	// request path is appended to Root verbatim, as the server always did.
	Confine bool
}

func New(root string) *Resolver {
	return &Resolver{Root: root, Confine: true}
}

// Resolve returns the content for reqPath. Nothing is cached, every call
// goes to the filesystem and files are read into memory whole.
func (r *Resolver) Resolve(reqPath string) ([]byte, error) {
	full, err := r.locate(reqPath)
	if err != nil {
		return nil, err
	}

	fi, err := os.Stat(full)
	if err != nil {
		return nil, errors.ErrNotFound.Wrap(err)
	}
	switch mode := fi.Mode(); {
	case mode.IsRegular():
		content, err := os.ReadFile(full)
		if err != nil {
			return nil, errors.ErrIOFailure.Wrap(err)
		}
		return content, nil
	case mode.IsDir():
		return listDirectory(full, reqPath)
	default:
		return nil, errors.ErrUnsupportedType
	}
}

// locate appends reqPath to Root. A confined path is kept verbatim too, so
// "/file/" still fails like it would unconfined, but the cleaned result must
// be Root or lie below it.
func (r *Resolver) locate(reqPath string) (string, error) {
	full := r.Root + reqPath
	if !r.Confine {
		return full, nil
	}
	if !strings.HasPrefix(reqPath, "/") || escapesRoot(reqPath) {
		return "", errors.ErrOutsideRoot
	}
	root := filepath.Clean(r.Root)
	prefix := strings.TrimSuffix(root, string(os.PathSeparator)) + string(os.PathSeparator)
	if c := filepath.Clean(full); c != root && !strings.HasPrefix(c, prefix) {
		return "", errors.ErrOutsideRoot
	}
	return full, nil
}

func escapesRoot(p string) bool {
	depth := 0
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "", ".":
		case "..":
			if depth--; depth < 0 {
				return true
			}
		default:
			depth++
		}
	}
	return false
}
