package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"club-roster/internal/dto/request"
	"club-roster/internal/dto/response"
	"club-roster/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeUserService struct {
	resp *response.UserResponse
	err  error
}

func (f *fakeUserService) GetByID(_ context.Context, _ uuid.UUID) (*response.UserResponse, error) {
	return f.resp, f.err
}

func (f *fakeUserService) GetAll(_ context.Context, page, perPage int) (*response.PaginatedResponse[response.UserResponse], error) {
	return response.NewPaginatedResponse([]response.UserResponse{}, page, perPage, 0), nil
}

func (f *fakeUserService) Update(_ context.Context, _ uuid.UUID, _ *request.UserUpdateRequest) (*response.UserResponse, error) {
	return f.resp, f.err
}

func (f *fakeUserService) Delete(_ context.Context, _ uuid.UUID) error {
	return f.err
}

// userRouter simulates an authenticated caller by injecting identity into the
// request context the way the auth middleware does.
func userRouter(svc *fakeUserService, callerID uuid.UUID, role string) *chi.Mux {
	handler := NewUserHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := utils.SetUserContext(req.Context(), callerID, "caller", role)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Get("/api/users/{id}", handler.GetUserByID)
	r.Patch("/api/users/{id}", handler.UpdateUser)
	return r
}

func TestGetUserSelfAllowed(t *testing.T) {
	callerID := uuid.New()
	router := userRouter(&fakeUserService{resp: &response.UserResponse{ID: callerID.String()}}, callerID, "player")

	req := httptest.NewRequest(http.MethodGet, "/api/users/"+callerID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetUserOtherForbiddenUnlessAdmin(t *testing.T) {
	otherID := uuid.New()
	svc := &fakeUserService{resp: &response.UserResponse{ID: otherID.String()}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+otherID.String(), nil)
	userRouter(svc, uuid.New(), "coach").ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/users/"+otherID.String(), nil)
	userRouter(svc, uuid.New(), "admin").ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateUserRoleChangeIsAdminOnly(t *testing.T) {
	callerID := uuid.New()
	svc := &fakeUserService{resp: &response.UserResponse{ID: callerID.String()}}

	// A user changing their own role is refused
	body := `{"role": "admin"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/users/"+callerID.String(), strings.NewReader(body))
	userRouter(svc, callerID, "player").ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// But may change their own name
	body = `{"name": "New Name"}`
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/api/users/"+callerID.String(), strings.NewReader(body))
	userRouter(svc, callerID, "player").ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// An admin may change anyone's role
	body = `{"role": "coach", "is_active": false}`
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/api/users/"+callerID.String(), strings.NewReader(body))
	userRouter(svc, uuid.New(), "admin").ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
