package user_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/harulog/haru-diary/go-api-server/internal/model"
	sharedContext "github.com/harulog/haru-diary/go-api-server/internal/shared/context"
	sharedError "github.com/harulog/haru-diary/go-api-server/internal/shared/error"
	"github.com/harulog/haru-diary/go-api-server/internal/shared/testutil"
	"github.com/harulog/haru-diary/go-api-server/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testAuth injects the sign_id from a request header into the gin context,
// standing in for the JWT middleware.
func testAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if signID := c.GetHeader("X-Test-Sign-ID"); signID != "" {
			c.Set(sharedContext.SignIDKey, signID)
		}
		c.Next()
	}
}

func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	userRepo := user.NewUserRepository()
	userService := user.NewUserService(db, userRepo)
	userHandler := user.NewUserHandler(userService)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/users/me", testAuth(), userHandler.GetProfile)

	return router, db
}

func TestGetProfile_Success(t *testing.T) {
	// Given: Setup test environment with a stored user
	router, db := setupTestEnvironment(t)

	stored := model.NewUser("profileuser", "하루", "profile@example.com", "", "hashed-password")
	require.NoError(t, db.Create(stored).Error)

	// When: Request own profile
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/v1/users/me",
		Headers: map[string]string{"X-Test-Sign-ID": "profileuser"},
	})

	// Then: Verify profile fields, without credentials
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response user.GetProfileResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "profileuser", response.SignID)
	assert.Equal(t, "하루", response.Nickname)
	assert.Equal(t, "profile@example.com", response.Email)
	assert.NotContains(t, recorder.Body.String(), "password")
}

func TestGetProfile_UnknownSignID(t *testing.T) {
	// Given: Setup test environment without any stored user
	router, _ := setupTestEnvironment(t)

	// When: Request a profile for a sign_id that does not exist
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/v1/users/me",
		Headers: map[string]string{"X-Test-Sign-ID": "ghost"},
	})

	// Then: Verify not-found error
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "USER-001", errorResponse.Code)
}

func TestGetProfile_NoAuthentication(t *testing.T) {
	// Given: Setup test environment
	router, _ := setupTestEnvironment(t)

	// When: Request without an authenticated sign_id
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/users/me",
	})

	// Then: Verify unauthorized error
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
