package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/eletronicos-be/internal/http/respond"
	"github.com/hongminglow/eletronicos-be/internal/models/dto"
	"github.com/hongminglow/eletronicos-be/internal/storage"
)

// ApplianceHandler serves CRUD over /eletronicos. It expects the caller to
// have been authenticated already; it never looks at the role.
type ApplianceHandler struct {
	store  storage.ApplianceStore
	logger *slog.Logger
}

// NewApplianceHandler constructs the handler.
func NewApplianceHandler(store storage.ApplianceStore, logger *slog.Logger) *ApplianceHandler {
	return &ApplianceHandler{store: store, logger: logger}
}

// Register attaches the appliance routes to the router.
func (h *ApplianceHandler) Register(r chi.Router) {
	r.Route("/eletronicos", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Get("/", h.handleList)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

func (h *ApplianceHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplianceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	created, err := h.store.CreateAppliance(r.Context(), req.Appliance())
	if err != nil {
		h.storeFailure(w, r, "create appliance", err)
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}

func (h *ApplianceHandler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.ListAppliances(r.Context())
	if err != nil {
		h.storeFailure(w, r, "list appliances", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *ApplianceHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respond.Error(w, http.StatusNotFound, msgApplianceNotFound)
		return
	}
	appliance, err := h.store.GetAppliance(r.Context(), id)
	if err != nil {
		h.storeFailure(w, r, "get appliance", err)
		return
	}
	respond.JSON(w, http.StatusOK, appliance)
}

func (h *ApplianceHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplianceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	id, ok := pathID(r)
	if !ok {
		respond.Error(w, http.StatusNotFound, msgApplianceNotFound)
		return
	}
	if err := h.store.UpdateAppliance(r.Context(), id, req.Appliance()); err != nil {
		h.storeFailure(w, r, "update appliance", err)
		return
	}
	respond.Message(w, http.StatusOK, msgApplianceUpdated)
}

func (h *ApplianceHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respond.Error(w, http.StatusNotFound, msgApplianceNotFound)
		return
	}
	if err := h.store.DeleteAppliance(r.Context(), id); err != nil {
		h.storeFailure(w, r, "delete appliance", err)
		return
	}
	respond.Message(w, http.StatusOK, msgApplianceDeleted)
}

// storeFailure maps a store error to 404 or 500.
func (h *ApplianceHandler) storeFailure(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, msgApplianceNotFound)
		return
	}
	h.logger.ErrorContext(r.Context(), op, "error", err)
	respond.Error(w, http.StatusInternalServerError, msgInternal)
}

// pathID parses the {id} segment. A value that is not an integer cannot
// match any row, so callers treat it like an absent id.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
