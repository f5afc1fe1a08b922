package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"gallery-service/models"
	"gallery-service/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	_, r := setupServer(t)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email": "a@x.com", "username": "a", "password": "p1",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	user := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, "a@x.com", user["email"])
	assert.Equal(t, "a", user["username"])

	w = doJSON(r, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email": "a@x.com", "password": "p1",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)

	token := body["token"].(string)
	require.NotEmpty(t, token)

	// The token decodes back to the registered user's id.
	userID, err := utils.ParseBearerToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, uint(user["id"].(float64)), userID)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	db, r := setupServer(t)

	registerAndLogin(t, r, "a@x.com", "a", "secret-pw")

	var stored models.User
	require.NoError(t, db.Where("email = ?", "a@x.com").First(&stored).Error)
	assert.NotEqual(t, "secret-pw", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, r := setupServer(t)

	registerAndLogin(t, r, "a@x.com", "a", "p1")

	w := doJSON(r, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email": "a@x.com", "username": "b", "password": "p2",
	}, "")
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "이미 사용 중인 이메일입니다.", decode(t, w)["message"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	_, r := setupServer(t)

	registerAndLogin(t, r, "a@x.com", "a", "p1")

	w := doJSON(r, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email": "b@x.com", "username": "a", "password": "p2",
	}, "")
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "이미 사용 중인 닉네임입니다.", decode(t, w)["message"])
}

func TestRegisterMissingFields(t *testing.T) {
	_, r := setupServer(t)

	for _, body := range []gin.H{
		{"email": "a@x.com", "username": "a"},
		{"email": "a@x.com", "password": "p1"},
		{"username": "a", "password": "p1"},
		{},
	} {
		w := doJSON(r, http.MethodPost, "/api/v1/auth/register", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	_, r := setupServer(t)

	registerAndLogin(t, r, "a@x.com", "a", "p1")

	wrongPW := doJSON(r, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email": "a@x.com", "password": "wrong",
	}, "")
	require.Equal(t, http.StatusUnauthorized, wrongPW.Code)

	noUser := doJSON(r, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email": "nobody@x.com", "password": "p1",
	}, "")
	require.Equal(t, http.StatusUnauthorized, noUser.Code)

	// Unknown email and wrong password are indistinguishable.
	assert.Equal(t, decode(t, wrongPW)["message"], decode(t, noUser)["message"])
}

func TestMe(t *testing.T) {
	_, r := setupServer(t)

	id, token := registerAndLogin(t, r, "a@x.com", "a", "p1")

	w := doJSON(r, http.MethodGet, "/api/v1/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	user := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, float64(id), user["id"])
	assert.Equal(t, "a", user["username"])

	w = doJSON(r, http.MethodGet, "/api/v1/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/auth/me", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeUserGone(t *testing.T) {
	db, r := setupServer(t)

	id, token := registerAndLogin(t, r, "a@x.com", "a", "p1")
	require.NoError(t, db.Delete(&models.User{}, id).Error)

	// Valid token, but the user row no longer exists.
	w := doJSON(r, http.MethodGet, "/api/v1/auth/me", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAccountCascades(t *testing.T) {
	db, r := setupServer(t)

	aID, aToken := registerAndLogin(t, r, "a@x.com", "a", "p1")
	_, bToken := registerAndLogin(t, r, "b@x.com", "b", "p2")

	postID := createPost(t, r, aToken, "t", "c")

	// B comments on and likes A's post; A likes it too.
	base := fmt.Sprintf("/api/v1/posts/%d", postID)
	w := doJSON(r, http.MethodPost, base+"/comments", gin.H{"content": "hi"}, bToken)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(r, http.MethodPost, base+"/like", nil, bToken)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(r, http.MethodPost, base+"/like", nil, aToken)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/v1/auth/me", nil, aToken)
	require.Equal(t, http.StatusNoContent, w.Code)

	var posts, comments, likes, users int64
	db.Model(&models.Post{}).Count(&posts)
	db.Model(&models.Comment{}).Count(&comments)
	db.Model(&models.Like{}).Count(&likes)
	db.Model(&models.User{}).Count(&users)

	// A's post is gone, and with it B's comment and both likes.
	assert.Zero(t, posts)
	assert.Zero(t, comments)
	assert.Zero(t, likes)
	assert.Equal(t, int64(1), users)

	var gone models.User
	assert.Error(t, db.First(&gone, aID).Error)
}
