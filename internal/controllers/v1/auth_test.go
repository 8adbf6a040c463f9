package v1_test

import (
	"net/http"

	v1 "github.com/pocketquest/backend/internal/controllers/v1"
	"github.com/pocketquest/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRegister() {
	user := suite.register("ash@example.com")

	assert.Equal(suite.T(), "ash@example.com", user.Email)
	assert.Equal(suite.T(), "Test", user.Name)
	assert.Equal(suite.T(), "light", user.Theme)

	// Registration provisions the gamification state
	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.UserProgress{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)

	require.Nil(suite.T(), models.DB.Model(&models.Objective{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(3), count)
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	suite.register("ash@example.com")

	recorder := suite.request(http.MethodPost, "/v1/auth/register", map[string]string{
		"email":    "ash@example.com",
		"password": "something else",
	})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

func (suite *TestSuiteStandard) TestLogin() {
	suite.register("ash@example.com")
	suite.cookies = nil

	recorder := suite.request(http.MethodPost, "/v1/auth/login", map[string]string{
		"email":    "Ash@Example.com",
		"password": "correct horse battery staple",
	})
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	recorder = suite.request(http.MethodGet, "/v1/auth/me", nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *TestSuiteStandard) TestLoginWrongPassword() {
	suite.register("ash@example.com")
	suite.cookies = nil

	recorder := suite.request(http.MethodPost, "/v1/auth/login", map[string]string{
		"email":    "ash@example.com",
		"password": "not the password",
	})
	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)

	// Unknown accounts get the same answer as wrong passwords
	recorder = suite.request(http.MethodPost, "/v1/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

func (suite *TestSuiteStandard) TestUnauthenticated() {
	for _, url := range []string{
		"/v1/expenses",
		"/v1/income",
		"/v1/budgets",
		"/v1/spending-limits",
		"/v1/notifications",
		"/v1/objectives",
		"/v1/progress",
		"/v1/rewards",
		"/v1/dashboard",
	} {
		recorder := suite.request(http.MethodGet, url, nil)
		assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code, "URL: %s", url)
	}
}

func (suite *TestSuiteStandard) TestLogout() {
	suite.register("ash@example.com")

	recorder := suite.request(http.MethodPost, "/v1/auth/logout", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)

	recorder = suite.request(http.MethodGet, "/v1/auth/me", nil)
	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

func (suite *TestSuiteStandard) TestUpdateMe() {
	suite.register("ash@example.com")

	recorder := suite.request(http.MethodPatch, "/v1/auth/me", map[string]string{
		"theme": "dark",
	})
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	recorder = suite.request(http.MethodGet, "/v1/auth/me", nil)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	var user v1.UserResponse
	suite.decode(recorder, &user)
	assert.Equal(suite.T(), "dark", user.Theme)
	assert.Equal(suite.T(), "Test", user.Name)
}

func (suite *TestSuiteStandard) TestDeleteMe() {
	suite.register("ash@example.com")

	// Without confirmation nothing happens
	recorder := suite.request(http.MethodDelete, "/v1/auth/me", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)

	recorder = suite.request(http.MethodDelete, "/v1/auth/me?confirm=yes-please-delete-everything", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.User{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)

	require.Nil(suite.T(), models.DB.Model(&models.UserProgress{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)

	require.Nil(suite.T(), models.DB.Model(&models.CosmeticUnlock{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}
