package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"club-roster/internal/dto/request"
	"club-roster/internal/usecase"
	"club-roster/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ClubHandler struct {
	service usecase.ClubService
	log     *zap.Logger
}

func NewClubHandler(service usecase.ClubService, log *zap.Logger) *ClubHandler {
	return &ClubHandler{
		service: service,
		log:     log.With(zap.String("handler", "club")),
	}
}

// GetClubs handles GET /api/clubs
func (h *ClubHandler) GetClubs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 10)

	clubs, err := h.service.GetAll(r.Context(), page, perPage)
	if err != nil {
		h.handleServiceError(w, err, "get clubs")
		return
	}

	utils.ResponseSuccess(w, "Clubs retrieved successfully", clubs)
}

// GetClubByID handles GET /api/clubs/{id}
func (h *ClubHandler) GetClubByID(w http.ResponseWriter, r *http.Request) {
	clubID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid club ID", nil)
		return
	}

	club, err := h.service.GetByID(r.Context(), clubID)
	if err != nil {
		h.handleServiceError(w, err, "get club")
		return
	}

	utils.ResponseSuccess(w, "Club retrieved successfully", club)
}

// CreateClub handles POST /api/clubs (coach or admin)
func (h *ClubHandler) CreateClub(w http.ResponseWriter, r *http.Request) {
	var req request.ClubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	club, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create club")
		return
	}

	utils.ResponseCreated(w, "Club created successfully", club)
}

// UpdateClub handles PATCH /api/clubs/{id} (coach or admin)
func (h *ClubHandler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	clubID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid club ID", nil)
		return
	}

	var req request.ClubUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	club, err := h.service.Update(r.Context(), clubID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update club")
		return
	}

	utils.ResponseSuccess(w, "Club updated successfully", club)
}

// DeleteClub handles DELETE /api/clubs/{id} (coach or admin). Refused while
// the club still has players.
func (h *ClubHandler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	clubID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid club ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), clubID); err != nil {
		h.handleServiceError(w, err, "delete club")
		return
	}

	utils.ResponseSuccess(w, "Club deleted successfully", nil)
}

func (h *ClubHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already"),
		strings.Contains(errMsg, "has players"):
		h.log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
