package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/overlaykit/pkg/errors"
)

// Format is a scene file format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported scene file %q (want .toml or .json)", path)
}

// ReadTOML decodes a TOML scene from r. Unknown keys are rejected so typos
// in setting names do not silently fall back to defaults.
func ReadTOML(r io.Reader) (*Scene, error) {
	var s Scene
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown keys: %v", undecoded)
	}
	return &s, nil
}

// ReadJSON decodes a JSON scene from r. Unknown fields are rejected.
func ReadJSON(r io.Reader) (*Scene, error) {
	var s Scene
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	return &s, nil
}

// Read decodes a scene in the given format.
func Read(r io.Reader, f Format) (*Scene, error) {
	switch f {
	case FormatTOML:
		return ReadTOML(r)
	case FormatJSON:
		return ReadJSON(r)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", f)
}

// Import reads and validates the scene file at path. The format follows the
// extension. A scene without a name is named after the file.
func Import(path string) (*Scene, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	s, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// WriteTOML encodes s as TOML.
func WriteTOML(s *Scene, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteJSON encodes s as indented JSON.
func WriteJSON(s *Scene, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes s to path in the format of its extension.
func Export(s *Scene, path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()
	if f == FormatTOML {
		return WriteTOML(s, file)
	}
	return WriteJSON(s, file)
}

// Canonical returns the compact JSON encoding used to hash a scene.
func Canonical(s *Scene) ([]byte, error) {
	return json.Marshal(s)
}
