package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"club-roster/internal/data/entity"
	"club-roster/internal/dto/request"
	"club-roster/internal/usecase"
	"club-roster/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MobileHandler serves the mobile client routes. Same services as the web
// API, but responses use the {success, data|error} envelope and are never
// cached.
type MobileHandler struct {
	service *usecase.Service
	config  *utils.Config
	log     *zap.Logger
}

func NewMobileHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *MobileHandler {
	return &MobileHandler{
		service: service,
		config:  config,
		log:     log.With(zap.String("handler", "mobile")),
	}
}

// ------------- Auth -------------

func (h *MobileHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseMobileError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseMobileError(w, http.StatusBadRequest, utils.FormatValidationErrors(validationErrors))
		return
	}

	user, err := h.service.Auth.Register(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, err, "mobile register")
		return
	}

	utils.ResponseMobile(w, http.StatusCreated, "Account created", user)
}

func (h *MobileHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseMobileError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseMobileError(w, http.StatusBadRequest, utils.FormatValidationErrors(validationErrors))
		return
	}

	auth, err := h.service.Auth.Login(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, err, "mobile login")
		return
	}

	utils.ResponseMobile(w, http.StatusOK, "Login successful", auth)
}

func (h *MobileHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req request.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		utils.ResponseMobileError(w, http.StatusUnauthorized, "Refresh token is required")
		return
	}

	pair, err := h.service.Auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.writeServiceError(w, err, "mobile refresh")
		return
	}

	utils.ResponseMobile(w, http.StatusOK, "Tokens refreshed", pair)
}

func (h *MobileHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseMobileError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.service.Auth.Logout(r.Context(), token); err != nil {
		h.writeServiceError(w, err, "mobile logout")
		return
	}

	utils.ResponseMobile(w, http.StatusOK, "Logout successful", nil)
}

// ------------- Clubs -------------

func (h *MobileHandler) GetClubs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 10)

	clubs, err := h.service.Club.GetAll(r.Context(), page, perPage)
	if err != nil {
		h.writeServiceError(w, err, "mobile get clubs")
		return
	}

	utils.ResponseMobile(w, http.StatusOK, "", clubs)
}

func (h *MobileHandler) GetClubByID(w http.ResponseWriter, r *http.Request) {
	clubID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseMobileError(w, http.StatusBadRequest, "Invalid club ID")
		return
	}

	club, err := h.service.Club.GetByID(r.Context(), clubID)
	if err != nil {
		h.writeServiceError(w, err, "mobile get club")
		return
	}

	utils.ResponseMobile(w, http.StatusOK, "", club)
}

func (h *MobileHandler) CreateClub(w http.ResponseWriter, r *http.Request) {
	var req request.ClubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseMobileError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseMobileError(w, http.StatusBadRequest, utils.FormatValidationErrors(validationErrors))
		return
	}

	club, err := h.service.Club.Create(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, err, "mobile create club")
		return
	}

	utils.ResponseMobile(w, http.StatusCreated, "Club created", club)
}

func (h *MobileHandler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	clubID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseMobileError(w, http.StatusBadRequest, "Invalid club ID")
		return
	}

	var req request.ClubUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseMobileError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseMobileError(w, http.StatusBadRequest, utils.FormatValidationErrors(validationErrors))
		return
	}

	club, err := h.service.Club.Update(r.Context(), clubID, &req)
	if err != nil {
		h.writeServiceError(w, err, "mobile update club")
		return
	}

	utils.ResponseMobile(w, http.StatusOK, "Club updated", club)
}

func (h *MobileHandler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	clubID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseMobileError(w, http.StatusBadRequest, "Invalid club ID")
		return
	}

	if err := h.service.Club.Delete(r.Context(), clubID); err != nil {
		h.writeServiceError(w, err, "mobile delete club")
		return
	}

	utils.ResponseMobile(w, http.StatusOK, "Club deleted", nil)
}

// ------------- Users -------------

func (h *MobileHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 10)

	users, err := h.service.User.GetAll(r.Context(), page, perPage)
	if err != nil {
		h.writeServiceError(w, err, "mobile get users")
		return
	}

	utils.ResponseMobile(w, http.StatusOK, "", users)
}

func (h *MobileHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorizeSelfOrAdmin(w, r)
	if !ok {
		return
	}

	var req request.UserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseMobileError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseMobileError(w, http.StatusBadRequest, utils.FormatValidationErrors(validationErrors))
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())
	if role != string(entity.RoleAdmin) && (req.Role != nil || req.IsActive != nil) {
		utils.ResponseMobileError(w, http.StatusForbidden, "Only administrators can change roles or activation")
		return
	}

	user, err := h.service.User.Update(r.Context(), userID, &req)
	if err != nil {
		h.writeServiceError(w, err, "mobile update user")
		return
	}

	utils.ResponseMobile(w, http.StatusOK, "User updated", user)
}

func (h *MobileHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorizeSelfOrAdmin(w, r)
	if !ok {
		return
	}

	if err := h.service.User.Delete(r.Context(), userID); err != nil {
		h.writeServiceError(w, err, "mobile delete user")
		return
	}

	utils.ResponseMobile(w, http.StatusOK, "User deleted", nil)
}

// authorizeSelfOrAdmin mirrors the web user handler's rule behind the mobile
// envelope: the caller must be the addressed user or an admin.
func (h *MobileHandler) authorizeSelfOrAdmin(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseMobileError(w, http.StatusBadRequest, "Invalid user ID")
		return uuid.Nil, false
	}

	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseMobileError(w, http.StatusUnauthorized, "Authentication required")
		return uuid.Nil, false
	}

	role, _ := utils.GetRoleFromContext(r.Context())
	if callerID != userID && role != string(entity.RoleAdmin) {
		utils.ResponseMobileError(w, http.StatusForbidden, "You do not have permission to access this resource")
		return uuid.Nil, false
	}

	return userID, true
}

// ------------- Players -------------

func (h *MobileHandler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 10)

	players, err := h.service.Player.GetAll(r.Context(), page, perPage)
	if err != nil {
		h.writeServiceError(w, err, "mobile get players")
		return
	}

	utils.ResponseMobile(w, http.StatusOK, "", players)
}

func (h *MobileHandler) GetPlayerByID(w http.ResponseWriter, r *http.Request) {
	playerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseMobileError(w, http.StatusBadRequest, "Invalid player ID")
		return
	}

	player, err := h.service.Player.GetByID(r.Context(), playerID)
	if err != nil {
		h.writeServiceError(w, err, "mobile get player")
		return
	}

	utils.ResponseMobile(w, http.StatusOK, "", player)
}

func (h *MobileHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req request.PlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseMobileError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseMobileError(w, http.StatusBadRequest, utils.FormatValidationErrors(validationErrors))
		return
	}

	player, err := h.service.Player.Create(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, err, "mobile create player")
		return
	}

	utils.ResponseMobile(w, http.StatusCreated, "Player created", player)
}

func (h *MobileHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseMobileError(w, http.StatusBadRequest, "Invalid player ID")
		return
	}

	var req request.PlayerUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseMobileError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseMobileError(w, http.StatusBadRequest, utils.FormatValidationErrors(validationErrors))
		return
	}

	player, err := h.service.Player.Update(r.Context(), playerID, &req)
	if err != nil {
		h.writeServiceError(w, err, "mobile update player")
		return
	}

	utils.ResponseMobile(w, http.StatusOK, "Player updated", player)
}

func (h *MobileHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseMobileError(w, http.StatusBadRequest, "Invalid player ID")
		return
	}

	if err := h.service.Player.Delete(r.Context(), playerID); err != nil {
		h.writeServiceError(w, err, "mobile delete player")
		return
	}

	utils.ResponseMobile(w, http.StatusOK, "Player deleted", nil)
}

// ------------- Positions -------------

func (h *MobileHandler) GetPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.service.Position.GetAll(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "mobile get positions")
		return
	}

	utils.ResponseMobile(w, http.StatusOK, "", positions)
}

func (h *MobileHandler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req request.PositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseMobileError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseMobileError(w, http.StatusBadRequest, utils.FormatValidationErrors(validationErrors))
		return
	}

	position, err := h.service.Position.Create(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, err, "mobile create position")
		return
	}

	utils.ResponseMobile(w, http.StatusCreated, "Position created", position)
}

// writeServiceError maps service errors onto the mobile envelope using the
// same message taxonomy as the web handlers.
func (h *MobileHandler) writeServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	var code int
	switch {
	case strings.Contains(errMsg, "validation failed"):
		code = http.StatusBadRequest
	case strings.Contains(errMsg, "invalid credentials"),
		strings.Contains(errMsg, "invalid or expired"):
		code = http.StatusUnauthorized
	case strings.Contains(errMsg, "deactivated"):
		code = http.StatusForbidden
	case strings.Contains(errMsg, "not found"):
		code = http.StatusNotFound
	case strings.Contains(errMsg, "already"),
		strings.Contains(errMsg, "has players"):
		code = http.StatusConflict
	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseMobileError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.log.Warn(operation+" failed", zap.Error(err))
	utils.ResponseMobileError(w, code, errMsg)
}
