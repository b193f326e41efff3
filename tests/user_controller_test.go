package tests

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"fittrack/internal/controllers"
	"fittrack/internal/models"
	"fittrack/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Test helper functions
func setupUserTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

func setupUserControllerWithMocks() (*controllers.UserController, *mocks.MockUserRepository) {
	mockUserRepo := new(mocks.MockUserRepository)
	controller := controllers.NewUserController(mockUserRepo)
	return controller, mockUserRepo
}

// Helper function to create a test password hash
func createTestPasswordHash(password string) string {
	// Use a fixed salt for testing
	salt := make([]byte, 8)
	for i := range salt {
		salt[i] = byte(i)
	}

	h := sha256.New()
	h.Write([]byte(password))
	h.Write(salt)
	hash := h.Sum(nil)

	return hex.EncodeToString(salt) + hex.EncodeToString(hash)
}

func TestRegisterUser(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful registration",
			requestBody: map[string]interface{}{
				"name":       "John Doe",
				"email":      "john@example.com",
				"password":   "password123",
				"birth_date": "1990-05-15",
				"gender":     "Male",
				"height_cm":  178.5,
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "User created successfully",
		},
		{
			name: "invalid birth date format",
			requestBody: map[string]interface{}{
				"name":       "John Doe",
				"email":      "john@example.com",
				"password":   "password123",
				"birth_date": "15/05/1990",
			},
			setupMocks:     func(userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid birth date",
		},
		{
			name: "negative height rejected",
			requestBody: map[string]interface{}{
				"name":       "John Doe",
				"email":      "john@example.com",
				"password":   "password123",
				"birth_date": "1990-05-15",
				"height_cm":  -170.0,
			},
			setupMocks:     func(userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid height",
		},
		{
			name: "password too short",
			requestBody: map[string]interface{}{
				"name":       "John Doe",
				"email":      "john@example.com",
				"password":   "short",
				"birth_date": "1990-05-15",
			},
			setupMocks:     func(userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockUserRepo := setupUserControllerWithMocks()
			tt.setupMocks(mockUserRepo)

			router := setupUserTestRouter()
			router.POST("/user/register", controller.RegisterUser)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/user/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMsg, response["message"])

			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestLoginUser(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	testPassword := "password123"
	testPasswordHash := createTestPasswordHash(testPassword)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
		checkToken     bool
	}{
		{
			name: "successful login",
			requestBody: map[string]interface{}{
				"email":    "john@example.com",
				"password": testPassword,
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				user := &models.User{
					ID:       1,
					Email:    "john@example.com",
					Password: testPasswordHash,
				}
				userRepo.On("FindByEmail", "john@example.com").Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Login successful",
			checkToken:     true,
		},
		{
			name: "user not found",
			requestBody: map[string]interface{}{
				"email":    "nonexistent@example.com",
				"password": testPassword,
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("FindByEmail", "nonexistent@example.com").Return(nil, errors.New("record not found"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid credentials",
		},
		{
			name: "wrong password",
			requestBody: map[string]interface{}{
				"email":    "john@example.com",
				"password": "wrongpassword",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				user := &models.User{
					ID:       1,
					Email:    "john@example.com",
					Password: testPasswordHash,
				}
				userRepo.On("FindByEmail", "john@example.com").Return(user, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockUserRepo := setupUserControllerWithMocks()
			tt.setupMocks(mockUserRepo)

			router := setupUserTestRouter()
			router.POST("/user/login", controller.Login)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/user/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMsg, response["message"])

			if tt.checkToken {
				data := response["data"].(map[string]interface{})
				assert.NotEmpty(t, data["token"])
			}

			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestGetUserByID(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		setupMocks     func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "user found",
			userID: "1",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				user := &models.User{
					ID:        1,
					Name:      "John Doe",
					Email:     "john@example.com",
					BirthDate: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
					HeightCm:  178.5,
				}
				userRepo.On("FindByID", uint(1)).Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "User retrieved successfully",
		},
		{
			name:   "user not found",
			userID: "99",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("FindByID", uint(99)).Return(nil, errors.New("record not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "User not found",
		},
		{
			name:           "invalid id",
			userID:         "abc",
			setupMocks:     func(userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockUserRepo := setupUserControllerWithMocks()
			tt.setupMocks(mockUserRepo)

			router := setupUserTestRouter()
			router.GET("/user/:id", controller.GetUserByID)

			req := httptest.NewRequest(http.MethodGet, "/user/"+tt.userID, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMsg, response["message"])

			mockUserRepo.AssertExpectations(t)
		})
	}
}
