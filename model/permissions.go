package model

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/evergreen-ci/utility"
	"github.com/pkg/errors"
)

// utf8BOM is stripped before parsing. Permission files exported by Windows
// tooling frequently begin with one.
var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// LoadPermissions reads a permission file: a JSON document containing a
// single array of privilege identifier strings. The file is read in full
// before parsing. Duplicate identifiers are collapsed, keeping the order of
// first occurrence. An empty array is legal and yields an empty list.
func LoadPermissions(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading permission file '%s'", path)
	}

	ids, err := ParsePermissions(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing permission file '%s'", path)
	}

	return ids, nil
}

// ParsePermissions parses raw permission file contents.
func ParsePermissions(data []byte) ([]string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, errors.Wrap(err, "permission data must be a JSON array of privilege identifier strings")
	}

	return utility.UniqueStrings(ids), nil
}

// EncodePermissions writes the identifiers to w in the permission file
// format: a two-space-indented JSON array with a trailing newline. The
// output round-trips through ParsePermissions.
func EncodePermissions(w io.Writer, ids []string) error {
	if ids == nil {
		ids = []string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(ids), "encoding permission list")
}

// WritePermissions writes a permission file that LoadPermissions reads back.
func WritePermissions(path string, ids []string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating permission file '%s'", path)
	}

	if err := EncodePermissions(f, ids); err != nil {
		_ = f.Close()
		return err
	}

	return errors.Wrapf(f.Close(), "writing permission file '%s'", path)
}
