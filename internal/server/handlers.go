package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/overlaykit/pkg/buildinfo"
	"github.com/matzehuels/overlaykit/pkg/errors"
	"github.com/matzehuels/overlaykit/pkg/pipeline"
	"github.com/matzehuels/overlaykit/pkg/position"
	"github.com/matzehuels/overlaykit/pkg/render"
	"github.com/matzehuels/overlaykit/pkg/scene"
	"github.com/matzehuels/overlaykit/pkg/store"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{"ok", buildinfo.Get()})
}

// readScene decodes and validates the JSON scene in the request body.
func (s *Server) readScene(w http.ResponseWriter, r *http.Request) (*scene.Scene, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body")
	}
	return pipeline.LoadBytes(body, scene.FormatJSON)
}

// renderOptions reads format, labels, grid and refresh from the query.
func (s *Server) renderOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{Refresh: q.Get("refresh") == "true", Logger: s.logger}
	if f := q.Get("format"); f != "" {
		opts.Formats = []string{f}
	}
	opts.Labels = q.Get("labels") == "true"
	if g := q.Get("grid"); g != "" {
		v, err := strconv.ParseFloat(g, 64)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "grid")
		}
		opts.Grid = v
	}
	if err := opts.Validate(); err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "render options")
	}
	return opts, nil
}

func (s *Server) handlePosition(w http.ResponseWriter, r *http.Request) {
	sc, err := s.readScene(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.resolve(w, r, sc)
}

func (s *Server) resolve(w http.ResponseWriter, r *http.Request, sc *scene.Scene) {
	opts := pipeline.Options{Refresh: r.URL.Query().Get("refresh") == "true"}
	res, err := s.runner.Resolve(r.Context(), sc, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := s.renderOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sc, err := s.readScene(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	result, err := s.runner.Execute(r.Context(), sc, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format := opts.Formats[0]
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Scene-Hash", result.SceneHash)
	_, _ = w.Write(result.Artifacts[format])
}

// placementInfo describes one tooltip placement.
type placementInfo struct {
	Placement            position.Placement `json:"placement"`
	Side                 string             `json:"side"`
	HorizontalDirection  string             `json:"horizontal_direction"`
	VerticalDirection    string             `json:"vertical_direction"`
	HorizontalStartPoint string             `json:"horizontal_start_point"`
	VerticalStartPoint   string             `json:"vertical_start_point"`
	Fallbacks            map[string]string  `json:"fallbacks,omitempty"`
}

func placements() []placementInfo {
	fallbacks := make(map[position.Placement]map[string]string)
	for _, e := range render.PlacementEdges() {
		if fallbacks[e.From] == nil {
			fallbacks[e.From] = make(map[string]string)
		}
		fallbacks[e.From][e.Axis] = string(e.To)
	}
	out := make([]placementInfo, 0, len(position.Placements))
	for _, p := range position.Placements {
		a := position.PositionsMap[p]
		out = append(out, placementInfo{
			Placement:            p,
			Side:                 p.Side(),
			HorizontalDirection:  a.HorizontalDirection.String(),
			VerticalDirection:    a.VerticalDirection.String(),
			HorizontalStartPoint: a.HorizontalStartPoint.String(),
			VerticalStartPoint:   a.VerticalStartPoint.String(),
			Fallbacks:            fallbacks[p],
		})
	}
	return out
}

func (s *Server) handlePlacements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, placements())
}

func (s *Server) handleCreateScene(w http.ResponseWriter, r *http.Request) {
	sc, err := s.readScene(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rec := store.NewRecord(sc)
	if err := s.store.Put(r.Context(), rec); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/scenes/"+rec.ID)
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleListScenes(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if recs == nil {
		recs = []*store.Record{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleGetScene(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteScene(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePositionScene(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.resolve(w, r, rec.Scene)
}
