package auth_test

import (
	"net/http"
	"testing"

	"github.com/harulog/haru-diary/go-api-server/internal/auth"
	sharedError "github.com/harulog/haru-diary/go-api-server/internal/shared/error"
	"github.com/harulog/haru-diary/go-api-server/internal/shared/testutil"
	"github.com/harulog/haru-diary/go-api-server/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment creates all dependencies needed for auth handler tests
func setupTestEnvironment(t *testing.T) (*auth.AuthHandler, *testutil.MockTokenManager) {
	t.Helper()

	// Setup test database
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	// Setup dependencies
	userRepo := user.NewUserRepository()
	mockTokenManager := testutil.NewMockTokenManager()
	authService := auth.NewAuthService(db, userRepo, mockTokenManager)
	authHandler := auth.NewAuthHandler(authService)

	return authHandler, mockTokenManager
}

func TestSignup_Success(t *testing.T) {
	// Given: Setup test environment
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/signup", authHandler.Signup)

	// Given: Valid signup request
	request := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/signup",
		Body: auth.SignupRequest{
			SignID:   "testuser",
			Nickname: "하루",
			Password: "password123",
		},
	}

	// When: Execute signup request
	recorder := testutil.ExecuteRequest(t, router, request)

	// Then: Verify response
	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestSignup_DuplicateSignID(t *testing.T) {
	// Given: Setup test environment
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/signup", authHandler.Signup)

	// Given: Create first user
	firstRequest := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/signup",
		Body: auth.SignupRequest{
			SignID:   "duplicate1",
			Nickname: "First User",
			Password: "password123",
		},
	}

	firstRecorder := testutil.ExecuteRequest(t, router, firstRequest)
	require.Equal(t, http.StatusCreated, firstRecorder.Code)

	// When: Try to create another user with same sign_id
	duplicateRequest := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/signup",
		Body: auth.SignupRequest{
			SignID:   "duplicate1", // Same sign_id
			Nickname: "Another User",
			Password: "password456",
		},
	}

	duplicateRecorder := testutil.ExecuteRequest(t, router, duplicateRequest)

	// Then: Verify error response
	assert.Equal(t, http.StatusConflict, duplicateRecorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, duplicateRecorder, &errorResponse)
	assert.NotEmpty(t, errorResponse.Status)
	assert.NotEmpty(t, errorResponse.Message)
	assert.Equal(t, "USER-002", errorResponse.Code)
}

func TestSignup_ValidationError_MissingRequiredFields(t *testing.T) {
	// Given: Setup test environment
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/signup", authHandler.Signup)

	testCases := []struct {
		name        string
		requestBody map[string]string
		description string
	}{
		{
			name: "Missing sign_id",
			requestBody: map[string]string{
				"nickname": "Test User",
				"password": "password123",
			},
			description: "Should fail when sign_id is missing",
		},
		{
			name: "Missing nickname",
			requestBody: map[string]string{
				"sign_id":  "testuser",
				"password": "password123",
			},
			description: "Should fail when nickname is missing",
		},
		{
			name: "Missing password",
			requestBody: map[string]string{
				"sign_id":  "testuser",
				"nickname": "Test User",
			},
			description: "Should fail when password is missing",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// When: Execute request with missing field
			request := testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/auth/signup",
				Body:   tc.requestBody,
			}

			recorder := testutil.ExecuteRequest(t, router, request)

			// Then: Verify validation error
			assert.Equal(t, http.StatusBadRequest, recorder.Code, tc.description)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.NotEmpty(t, errorResponse.Status, tc.description)
			assert.NotEmpty(t, errorResponse.Message, tc.description)
			assert.NotEmpty(t, errorResponse.Code, tc.description)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	// Given: Setup test environment with a registered user
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/signup", authHandler.Signup)
	router.POST("/api/v1/auth/login", authHandler.Login)

	signupRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/signup",
		Body: auth.SignupRequest{
			SignID:   "loginuser",
			Nickname: "Login User",
			Password: "password123",
		},
	})
	require.Equal(t, http.StatusCreated, signupRecorder.Code)

	// When: Login with correct credentials
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			SignID:   "loginuser",
			Password: "password123",
		},
	})

	// Then: Verify tokens are issued
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response auth.LoginResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "mock-access-token", response.AccessToken)
	assert.Equal(t, "mock-refresh-token", response.RefreshToken)
}

func TestLogin_IncorrectPassword(t *testing.T) {
	// Given: Setup test environment with a registered user
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/signup", authHandler.Signup)
	router.POST("/api/v1/auth/login", authHandler.Login)

	signupRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/signup",
		Body: auth.SignupRequest{
			SignID:   "wrongpass",
			Nickname: "Test User",
			Password: "password123",
		},
	})
	require.Equal(t, http.StatusCreated, signupRecorder.Code)

	// When: Login with a wrong password
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			SignID:   "wrongpass",
			Password: "password999",
		},
	})

	// Then: Same response as an unknown sign_id
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-003", errorResponse.Code)
}
