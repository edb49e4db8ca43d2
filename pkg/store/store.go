// Package store persists scenes for the HTTP service.
//
// Three backends implement [Store]:
//   - [MemoryStore]: in-process, for development and tests
//   - [FileStore]: one JSON file per scene, for the CLI
//   - [MongoStore]: MongoDB, for shared deployments
//
// Records are keyed by a UUIDv4 assigned on first [Store.Put]. Missing
// records are reported with [ErrNotFound], which carries the
// SCENE_NOT_FOUND error code.
package store

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/overlaykit/pkg/errors"
	"github.com/matzehuels/overlaykit/pkg/scene"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New(errors.ErrCodeSceneNotFound, "scene not found")

// Record is a stored scene.
type Record struct {
	ID        string       `json:"id" bson:"_id"`
	Name      string       `json:"name" bson:"name"`
	Scene     *scene.Scene `json:"scene" bson:"scene"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at"`
}

// Store is a scene repository.
type Store interface {
	// Put inserts or replaces rec. An empty ID is assigned a new UUID.
	Put(ctx context.Context, rec *Record) error
	// Get returns the record or an error wrapping ErrNotFound.
	Get(ctx context.Context, id string) (*Record, error)
	// List returns all records, newest first.
	List(ctx context.Context) ([]*Record, error)
	// Delete removes a record. Deleting a missing record reports ErrNotFound.
	Delete(ctx context.Context, id string) error
	Close() error
}

// NewRecord wraps s in a record named after the scene.
func NewRecord(s *scene.Scene) *Record {
	return &Record{Name: s.Name, Scene: s}
}

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool {
	return stderrors.Is(err, ErrNotFound) || errors.Is(err, errors.ErrCodeSceneNotFound)
}

func notFound(id string) error {
	return errors.Wrap(errors.ErrCodeSceneNotFound, ErrNotFound, "scene %q", id)
}

// stamp assigns an ID and timestamps before a write.
func stamp(rec *Record, now time.Time) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	if rec.Name == "" && rec.Scene != nil {
		rec.Name = rec.Scene.Name
	}
}

func validID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid scene id %q", id)
	}
	return nil
}

func (r *Record) clone() (*Record, error) {
	c := *r
	if r.Scene != nil {
		data, err := json.Marshal(r.Scene)
		if err != nil {
			return nil, err
		}
		c.Scene = new(scene.Scene)
		if err := json.Unmarshal(data, c.Scene); err != nil {
			return nil, err
		}
	}
	return &c, nil
}
