package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"club-roster/internal/dto/request"
	"club-roster/internal/dto/response"
	"club-roster/internal/usecase"
	"club-roster/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePlayerService struct {
	resp *response.PlayerResponse
	list *response.PaginatedResponse[response.PlayerResponse]
	err  error
}

func (f *fakePlayerService) Create(_ context.Context, _ *request.PlayerRequest) (*response.PlayerResponse, error) {
	return f.resp, f.err
}

func (f *fakePlayerService) GetByID(_ context.Context, _ uuid.UUID) (*response.PlayerResponse, error) {
	return f.resp, f.err
}

func (f *fakePlayerService) GetAll(_ context.Context, page, perPage int) (*response.PaginatedResponse[response.PlayerResponse], error) {
	if f.list != nil {
		return f.list, f.err
	}
	return response.NewPaginatedResponse([]response.PlayerResponse{}, page, perPage, 0), f.err
}

func (f *fakePlayerService) Update(_ context.Context, _ uuid.UUID, _ *request.PlayerUpdateRequest) (*response.PlayerResponse, error) {
	return f.resp, f.err
}

func (f *fakePlayerService) Delete(_ context.Context, _ uuid.UUID) error {
	return f.err
}

func mobileRouter(clubSvc *fakeClubService) *chi.Mux {
	service := &usecase.Service{Club: clubSvc}
	config := &utils.Config{}
	handler := NewMobileHandler(service, config, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/mobile/clubs/{id}", handler.GetClubByID)
	return r
}

// mobileUserRouter injects caller identity the way the auth middleware does.
func mobileUserRouter(userSvc *fakeUserService, playerSvc *fakePlayerService, callerID uuid.UUID, role string) *chi.Mux {
	service := &usecase.Service{User: userSvc, Player: playerSvc}
	handler := NewMobileHandler(service, &utils.Config{}, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/mobile/players", handler.GetPlayers)
	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				ctx := utils.SetUserContext(req.Context(), callerID, "caller", role)
				next.ServeHTTP(w, req.WithContext(ctx))
			})
		})
		r.Get("/api/mobile/users", handler.GetUsers)
		r.Patch("/api/mobile/users/{id}", handler.UpdateUser)
		r.Delete("/api/mobile/users/{id}", handler.DeleteUser)
	})
	return r
}

func TestMobileEnvelopeOnSuccess(t *testing.T) {
	clubID := uuid.New()
	router := mobileRouter(&fakeClubService{getResp: &response.ClubDetailResponse{
		ClubResponse: response.ClubResponse{ID: clubID.String(), Name: "United FC", Country: "England"},
		Players:      []response.PlayerResponse{},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/mobile/clubs/"+clubID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var envelope utils.MobileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Empty(t, envelope.Error)
	assert.NotNil(t, envelope.Data)
}

func TestMobileEnvelopeOnError(t *testing.T) {
	router := mobileRouter(&fakeClubService{getErr: fmt.Errorf("club not found")})

	req := httptest.NewRequest(http.MethodGet, "/api/mobile/clubs/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var envelope utils.MobileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "club not found", envelope.Error)
	assert.Nil(t, envelope.Data)
}

func TestMobilePlayerListing(t *testing.T) {
	playerSvc := &fakePlayerService{
		list: response.NewPaginatedResponse([]response.PlayerResponse{
			{ID: uuid.New().String(), Name: "Erik Larsson"},
		}, 1, 10, 1),
	}
	router := mobileUserRouter(&fakeUserService{}, playerSvc, uuid.New(), "player")

	req := httptest.NewRequest(http.MethodGet, "/api/mobile/players", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var envelope utils.MobileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.NotNil(t, envelope.Data)
}

func TestMobileUserListing(t *testing.T) {
	router := mobileUserRouter(&fakeUserService{}, &fakePlayerService{}, uuid.New(), "admin")

	req := httptest.NewRequest(http.MethodGet, "/api/mobile/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope utils.MobileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
}

func TestMobileUpdateUserSelfOrAdmin(t *testing.T) {
	callerID := uuid.New()
	svc := &fakeUserService{resp: &response.UserResponse{ID: callerID.String()}}

	// Self may update their own name
	body := `{"name": "New Name"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/mobile/users/"+callerID.String(), strings.NewReader(body))
	mobileUserRouter(svc, &fakePlayerService{}, callerID, "player").ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// A different non-admin caller is refused, with the mobile envelope
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/api/mobile/users/"+callerID.String(), strings.NewReader(body))
	mobileUserRouter(svc, &fakePlayerService{}, uuid.New(), "coach").ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	var envelope utils.MobileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.NotEmpty(t, envelope.Error)

	// Role change on self is still admin-only
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/api/mobile/users/"+callerID.String(), strings.NewReader(`{"role": "admin"}`))
	mobileUserRouter(svc, &fakePlayerService{}, callerID, "player").ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// An admin may delete another user
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/mobile/users/"+callerID.String(), nil)
	mobileUserRouter(svc, &fakePlayerService{}, uuid.New(), "admin").ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
