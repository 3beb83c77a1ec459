package list

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/listkit/pkg/secure"
)

// Router exposes the list service over HTTP with the security policy
// headers attached to every response. The router is presentation glue: it
// decodes requests and renders results, and never re-implements a check the
// pipeline already performs.
//
//	r := chi.NewRouter()
//	r.Mount("/items", list.Router(svc))
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()
	r.Use(secure.HeadersMiddleware)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, listResponse{
			Items: svc.Items(),
			Alert: svc.Alert(),
		})
	})

	r.Post("/", func(w http.ResponseWriter, req *http.Request) {
		var body itemRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		item, err := svc.Add(req.Context(), body.Text)
		if err != nil {
			writeRejection(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, item)
	})

	r.Put("/{id}", func(w http.ResponseWriter, req *http.Request) {
		var body itemRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		item, err := svc.Update(req.Context(), chi.URLParam(req, "id"), body.Text)
		if err != nil {
			writeRejection(w, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	})

	r.Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
		if err := svc.Delete(req.Context(), chi.URLParam(req, "id")); err != nil {
			writeRejection(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	r.Post("/{id}/edit", func(w http.ResponseWriter, req *http.Request) {
		item, err := svc.StartEdit(req.Context(), chi.URLParam(req, "id"))
		if err != nil {
			writeRejection(w, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	})

	r.Delete("/{id}/edit", func(w http.ResponseWriter, req *http.Request) {
		if err := svc.CancelEdit(req.Context(), chi.URLParam(req, "id")); err != nil {
			writeRejection(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

type itemRequest struct {
	Text string `json:"text"`
}

type listResponse struct {
	Items []Item     `json:"items"`
	Alert AlertState `json:"alert"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

func writeRejection(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrItemNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "item not found"})
		return
	}

	reason, ok := secure.ReasonFromErr(err)
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	status := http.StatusUnprocessableEntity
	if reason == secure.ReasonRateLimited {
		status = http.StatusTooManyRequests
	}

	writeJSON(w, status, errorResponse{
		Error:  MessageFor(reason),
		Reason: string(reason),
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
