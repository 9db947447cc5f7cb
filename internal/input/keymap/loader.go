package keymap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Loader errors
var (
	ErrInvalidFile       = errors.New("keymap: invalid key map file")
	ErrUnsupportedFormat = errors.New("keymap: unsupported file format")
)

// File is the content of one key-binding file.
type File struct {
	Name     string    `yaml:"name" json:"name"`
	Bindings []Binding `yaml:"bindings" json:"bindings"`
}

// Validate checks that every binding has keys, an action and a
// parsable chord. Actions are checked only when bound.
func (f *File) Validate() error {
	var errs []error
	for i, b := range f.Bindings {
		switch {
		case b.Keys == "":
			errs = append(errs, fmt.Errorf("binding %d: empty keys", i))
		case b.Action == "":
			errs = append(errs, fmt.Errorf("binding %d (%s): empty action", i, b.Keys))
		default:
			if _, err := ParseChord(b.Keys); err != nil {
				errs = append(errs, fmt.Errorf("binding %d (%s): %w", i, b.Keys, err))
			}
		}
	}
	return errors.Join(errs...)
}

// LoadFile loads a key-binding file. The format follows the extension:
// .yaml, .yml or .json.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading key map file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(bytes.NewReader(data))
	case ".json":
		return LoadJSON(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadYAML decodes a YAML key-binding file. An empty document yields a
// file with no bindings.
func LoadYAML(r io.Reader) (*File, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadJSON decodes a JSON key-binding file. Bindings may be a list of
// {"keys", "action", "description"} objects or an object mapping chords
// to actions.
func LoadJSON(data []byte) (*File, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidFile)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: top level is not an object", ErrInvalidFile)
	}

	f := &File{Name: doc.Get("name").String()}
	bindings := doc.Get("bindings")
	switch {
	case !bindings.Exists():
	case bindings.IsArray():
		bindings.ForEach(func(_, v gjson.Result) bool {
			f.Bindings = append(f.Bindings, Binding{
				Keys:        v.Get("keys").String(),
				Action:      v.Get("action").String(),
				Description: v.Get("description").String(),
			})
			return true
		})
	case bindings.IsObject():
		bindings.ForEach(func(k, v gjson.Result) bool {
			f.Bindings = append(f.Bindings, Binding{Keys: k.String(), Action: v.String()})
			return true
		})
	default:
		return nil, fmt.Errorf("%w: bindings must be a list or an object", ErrInvalidFile)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}
