package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/dgallion1/xmlgest/internal/config"
	"github.com/dgallion1/xmlgest/internal/pipeline"
	"github.com/dgallion1/xmlgest/internal/render"
	"github.com/dgallion1/xmlgest/internal/store"
)

// presetFromRequest resolves the transform preset for a request. A "preset"
// query parameter selects a named preset; otherwise an empty preset with the
// configured (or "parents"-overridden) parent list is used, meaning extract
// only.
func (s *Server) presetFromRequest(r *http.Request) (config.Preset, error) {
	if name := r.URL.Query().Get("preset"); name != "" {
		preset, ok := s.presets[name]
		if !ok {
			return config.Preset{}, fmt.Errorf("unknown preset %q", name)
		}
		return preset, nil
	}

	preset := config.Preset{Parents: s.cfg.DefaultParents}
	if raw := r.URL.Query().Get("parents"); raw != "" {
		parents := lo.FilterMap(strings.Split(raw, ","), func(p string, _ int) (string, bool) {
			p = strings.TrimSpace(p)
			return p, p != ""
		})
		if len(parents) > 0 {
			preset.Parents = lo.Uniq(parents)
		}
	}
	return preset, nil
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	preset, err := s.presetFromRequest(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, "request body too large or unreadable", http.StatusRequestEntityTooLarge)
		return
	}
	if len(data) == 0 {
		jsonError(w, "xml body is required", http.StatusBadRequest)
		return
	}

	name := r.URL.Query().Get("name")
	result := s.proc.Process(pipeline.Input{Name: name, Data: data, Preset: preset})
	if result.Err != nil {
		jsonError(w, "parse document: "+result.Err.Error(), http.StatusBadRequest)
		return
	}

	doc := &store.Document{
		ID:        store.ContentID(data),
		Name:      name,
		Data:      result.Data,
		CreatedAt: time.Now(),
	}
	s.store.Put(doc)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id": doc.ID,
		"data":   doc.Data,
	})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc := s.store.Get(chi.URLParam(r, "docID"))
	if doc == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}

	accept := r.Header.Get("Accept")
	switch {
	case strings.Contains(accept, "text/html"):
		html, err := render.HTML(doc.Data)
		if err != nil {
			jsonError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(html)
	case strings.Contains(accept, "text/plain"):
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		render.Text(w, doc.Data)
	default:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(doc)
	}
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs := lo.Map(s.store.List(), func(doc *store.Document, _ int) map[string]any {
		return map[string]any{
			"doc_id":     doc.ID,
			"name":       doc.Name,
			"created_at": doc.CreatedAt,
		}
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": docs})
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if !s.store.Delete(docID) {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"deleted": docID})
}

func (s *Server) handleBatchDocuments(w http.ResponseWriter, r *http.Request) {
	preset, err := s.presetFromRequest(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes*10)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	var inputs []pipeline.Input
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			jsonError(w, "failed to open "+sanitizeFilename(fh.Filename), http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxBodyBytes+1))
		f.Close()
		if err != nil || int64(len(data)) > s.cfg.MaxBodyBytes {
			jsonError(w, sanitizeFilename(fh.Filename)+" too large or unreadable", http.StatusRequestEntityTooLarge)
			return
		}
		inputs = append(inputs, pipeline.Input{
			Name:   sanitizeFilename(fh.Filename),
			Data:   data,
			Preset: preset,
		})
	}

	results := s.proc.ProcessAll(r.Context(), inputs)

	entries := make([]map[string]any, 0, len(results))
	for i, res := range results {
		if res.Err != nil {
			entries = append(entries, map[string]any{
				"name":  res.Name,
				"error": res.Err.Error(),
			})
			continue
		}
		doc := &store.Document{
			ID:        store.ContentID(inputs[i].Data),
			Name:      res.Name,
			Data:      res.Data,
			CreatedAt: time.Now(),
		}
		s.store.Put(doc)
		entries = append(entries, map[string]any{
			"name":   res.Name,
			"doc_id": doc.ID,
			"data":   doc.Data,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": entries})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
