package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prudhvinik1/accountsvc/internal/models"
	"github.com/prudhvinik1/accountsvc/internal/repositories"
	"github.com/prudhvinik1/accountsvc/internal/services"
)

const (
	ServiceName    = "Account REST API Service"
	ServiceVersion = "1.0"

	jsonMediaType = "application/json"
)

type AccountHandler struct {
	service *services.AccountService
}

func NewAccountHandler(service *services.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Register mounts all routes. The {id} pattern only matches digit segments,
// so non-numeric ids fall through to 404.
func (h *AccountHandler) Register(router chi.Router) {
	router.Get("/health", h.Health)
	router.Get("/", h.Index)

	router.Route("/accounts", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id:[0-9]+}", h.Read)
		r.Put("/{id:[0-9]+}", h.Update)
		r.Delete("/{id:[0-9]+}", h.Delete)
	})
}

func (h *AccountHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (h *AccountHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"name":    ServiceName,
		"version": ServiceVersion,
	})
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	if mediaType(r) != jsonMediaType {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be "+jsonMediaType)
		return
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unable to read request body")
		return
	}

	account, err := h.service.Create(r.Context(), payload)
	if err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, ve.Error())
			return
		}
		log.Printf("create account failed: %v", err)
		writeError(w, http.StatusInternalServerError, "unable to create account")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/accounts/%d", account.ID))
	writeJSON(w, http.StatusCreated, account)
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.List(r.Context())
	if err != nil {
		log.Printf("list accounts failed: %v", err)
		writeError(w, http.StatusInternalServerError, "unable to list accounts")
		return
	}
	if accounts == nil {
		accounts = []*models.Account{}
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (h *AccountHandler) Read(w http.ResponseWriter, r *http.Request) {
	id := accountID(r)

	account, err := h.service.Get(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Cannot locate the account with %d", id))
		return
	}
	if err != nil {
		log.Printf("read account %d failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "unable to read account")
		return
	}

	writeJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := accountID(r)

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unable to read request body")
		return
	}

	account, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		var ve *models.ValidationError
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			writeError(w, http.StatusNotFound, fmt.Sprintf("Cannot locate the account with %d", id))
		case errors.As(err, &ve):
			writeError(w, http.StatusBadRequest, ve.Error())
		default:
			log.Printf("update account %d failed: %v", id, err)
			writeError(w, http.StatusInternalServerError, "unable to update account")
		}
		return
	}

	writeJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := accountID(r)

	if err := h.service.Delete(r.Context(), id); err != nil {
		log.Printf("delete account %d failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "unable to delete account")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// accountID parses the {id} segment. The route pattern guarantees digits.
func accountID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id
}

// mediaType strips any parameters (e.g. charset) from the Content-Type.
func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if before, _, found := strings.Cut(ct, ";"); found {
		ct = before
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", jsonMediaType)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// writeError emits the standard error body. The status code is the
// authoritative signal; the body is advisory.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"status":  status,
		"error":   http.StatusText(status),
		"message": message,
	})
}
