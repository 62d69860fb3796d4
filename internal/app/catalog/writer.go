package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/heartmarshall/tokipona-words/internal/domain"
)

// DefaultIndent is the number of spaces per nesting level in the output.
const DefaultIndent = 2

const outputPerm os.FileMode = 0o644

// Serialize writes entries as an indented JSON array followed by a newline.
// Non-ASCII and HTML characters are written as-is. An indent of 0 produces
// compact output.
func Serialize(w io.Writer, entries []domain.WordEntry, indent int) error {
	if entries == nil {
		entries = []domain.WordEntry{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indent))

	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	return nil
}

// WriteFile replaces path with the serialized entries. The document is
// written to a temporary file next to path and renamed into place, so path
// holds either its previous content or the complete new document. The parent
// directory must already exist. An existing destination keeps its permission
// bits; a new one gets outputPerm.
func WriteFile(fs afero.Fs, path string, entries []domain.WordEntry, indent int) error {
	dir := filepath.Dir(path)
	info, err := fs.Stat(dir)
	if err != nil {
		return writeError("stat destination dir", err)
	}
	if !info.IsDir() {
		return writeError("stat destination dir", fmt.Errorf("%s is not a directory", dir))
	}

	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return writeError("create temp file", err)
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = fs.Remove(tmpName)
		}
	}()

	if err := Serialize(tmp, entries, indent); err != nil {
		return writeError("write temp file", err)
	}
	if err := tmp.Sync(); err != nil {
		return writeError("sync temp file", err)
	}
	if err := tmp.Close(); err != nil {
		return writeError("close temp file", err)
	}
	if err := fs.Chmod(tmpName, destinationPerm(fs, path)); err != nil {
		return writeError("chmod temp file", err)
	}
	if err := fs.Rename(tmpName, path); err != nil {
		return writeError("rename temp file", err)
	}

	committed = true
	return nil
}

func destinationPerm(fs afero.Fs, path string) os.FileMode {
	if info, err := fs.Stat(path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return outputPerm
}

func writeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrDestinationWrite, op, err)
}
