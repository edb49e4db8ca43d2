package pipeline

import (
	"bytes"

	"github.com/matzehuels/overlaykit/pkg/cache"
	"github.com/matzehuels/overlaykit/pkg/errors"
	"github.com/matzehuels/overlaykit/pkg/scene"
)

// Load reads and validates the scene file at path.
func Load(path string) (*scene.Scene, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	return scene.Import(path)
}

// LoadBytes decodes and validates a scene held in memory.
func LoadBytes(data []byte, f scene.Format) (*scene.Scene, error) {
	s, err := scene.Read(bytes.NewReader(data), f)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// SceneHash hashes the canonical encoding of s.
func SceneHash(s *scene.Scene) (string, error) {
	data, err := scene.Canonical(s)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}
