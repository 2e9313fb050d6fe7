package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fyan514/go-todo-service/internal/service"
	"github.com/fyan514/go-todo-service/internal/store"
	"github.com/fyan514/go-todo-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile_Success(t *testing.T) {
	users := &mockUserService{
		profileFunc: func(_ context.Context, identity models.Identity) (models.UserResponse, error) {
			assert.Equal(t, testUserIdentity, identity)
			return models.UserResponse{
				UserID:      1,
				Email:       "fyan@gmail.com",
				FirstName:   "Ahmad",
				LastName:    "Sufyan",
				PhoneNumber: "087763324456",
			}, nil
		},
	}
	h := newTestHandler(nil, nil, users)

	r := authedRequest(httptest.NewRequest(http.MethodGet, "/user", nil), testUserIdentity)
	w := serve(h.getProfile, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var body models.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.UserID)
	assert.Equal(t, "fyan@gmail.com", body.Email)
}

func TestGetProfile_MissingIdentity(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	r := plainRequest(httptest.NewRequest(http.MethodGet, "/user", nil))
	w := serve(h.getProfile, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", decodeDetail(t, w))
}

func TestChangePassword_Accepted(t *testing.T) {
	users := &mockUserService{
		changePasswordFunc: func(_ context.Context, identity models.Identity, request models.ChangePasswordRequest) error {
			assert.Equal(t, testUserIdentity, identity)
			assert.Equal(t, "old-password", request.CurrentPassword)
			assert.Equal(t, "new-password", request.NewPassword)
			return nil
		},
	}
	h := newTestHandler(nil, nil, users)

	body := `{"current_password":"old-password","new_password":"new-password"}`
	r := authedRequest(httptest.NewRequest(http.MethodPut, "/user/change-password", strings.NewReader(body)), testUserIdentity)
	w := serve(h.changePassword, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	users := &mockUserService{
		changePasswordFunc: func(_ context.Context, _ models.Identity, _ models.ChangePasswordRequest) error {
			return service.ErrWrongPassword
		},
	}
	h := newTestHandler(nil, nil, users)

	body := `{"current_password":"not-the-old-password","new_password":"new-password"}`
	r := authedRequest(httptest.NewRequest(http.MethodPut, "/user/change-password", strings.NewReader(body)), testUserIdentity)
	w := serve(h.changePassword, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Confirm password is incorrect", decodeDetail(t, w))
}

func TestChangePassword_ShortNewPassword(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	body := `{"current_password":"old-password","new_password":"short"}`
	r := authedRequest(httptest.NewRequest(http.MethodPut, "/user/change-password", strings.NewReader(body)), testUserIdentity)
	w := serve(h.changePassword, r)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decodeDetail(t, w), "NewPassword must satisfy 'min=6'")
}

func TestChangeProfile_Accepted(t *testing.T) {
	users := &mockUserService{
		changeProfileFunc: func(_ context.Context, identity models.Identity, request models.ChangeProfileRequest) error {
			assert.Equal(t, testUserIdentity, identity)
			assert.Equal(t, "fyan514@gmail.com", request.Email)
			return nil
		},
	}
	h := newTestHandler(nil, nil, users)

	body := `{"first_name":"Fyan","last_name":"Liu","phone_number":"1234567890","email":"fyan514@gmail.com"}`
	r := authedRequest(httptest.NewRequest(http.MethodPut, "/user/change-profile", strings.NewReader(body)), testUserIdentity)
	w := serve(h.changeProfile, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestChangeProfile_DuplicateEmail(t *testing.T) {
	users := &mockUserService{
		changeProfileFunc: func(_ context.Context, _ models.Identity, _ models.ChangeProfileRequest) error {
			return store.ErrEmailAlreadyExists
		},
	}
	h := newTestHandler(nil, nil, users)

	body := `{"first_name":"Fyan","last_name":"Liu","phone_number":"1234567890","email":"taken@example.com"}`
	r := authedRequest(httptest.NewRequest(http.MethodPut, "/user/change-profile", strings.NewReader(body)), testUserIdentity)
	w := serve(h.changeProfile, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", decodeDetail(t, w))
}

func TestChangeProfile_MissingEmail(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	body := `{"first_name":"Fyan","last_name":"Liu","phone_number":"1234567890"}`
	r := authedRequest(httptest.NewRequest(http.MethodPut, "/user/change-profile", strings.NewReader(body)), testUserIdentity)
	w := serve(h.changeProfile, r)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decodeDetail(t, w), "Email must satisfy 'required'")
}
