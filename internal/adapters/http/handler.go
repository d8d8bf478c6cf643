package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ib-77/results/internal/tenant"
	"github.com/ib-77/results/pkg/rop"
	"github.com/ib-77/results/pkg/rop/httpx"
)

var mapping = httpx.Mapping[tenant.ErrorCode]{
	NotFound:   []tenant.ErrorCode{tenant.CodeUserNotFound, tenant.CodeNoUsersAtAddress},
	Validation: tenant.CodeValidation,
}

type UpdateUserRequest struct {
	Name string `json:"name"`
}

type Handler struct {
	service tenant.Service
	logger  *slog.Logger
}

func NewHandler(service tenant.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}
	res, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	write(h, w, r, res)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteText(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}
	res, err := h.service.UpdateUser(r.Context(), id, req.Name)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	write(h, w, r, res)
}

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	var ids []int
	if raw := strings.TrimSpace(r.URL.Query().Get("ids")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				httpx.WriteText(w, http.StatusBadRequest, fmt.Sprintf("invalid user id %q", part))
				return
			}
			ids = append(ids, id)
		}
	}
	results, err := h.service.GetUsers(r.Context(), ids)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	if results == nil {
		results = []tenant.Result[string]{}
	}
	httpx.WriteJSON(w, http.StatusOK, results)
}

func (h *Handler) getUsersAtAddress(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.GetUsersAtAddress(r.Context(), chi.URLParam(r, "zip"), chi.URLParam(r, "nr"))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	write(h, w, r, res)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		httpx.WriteText(w, http.StatusBadRequest, fmt.Sprintf("invalid user id %q", raw))
		return 0, false
	}
	return id, true
}

func write[T any](h *Handler, w http.ResponseWriter, r *http.Request, res rop.Result[T, tenant.ErrorCode]) {
	if unhandled := httpx.Write(w, res, mapping); unhandled != nil {
		h.internalError(w, r, unhandled)
	}
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "request failed",
		"operation", "http_handler",
		"outcome", "failure",
		"request_id", requestIDFromContext(r.Context()),
		"path", r.URL.Path,
		"error", err,
	)
	httpx.WriteText(w, http.StatusInternalServerError, "internal server error")
}
