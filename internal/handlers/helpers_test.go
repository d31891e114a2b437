package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/foliohub/portfolio-api/internal/constants"
	"github.com/foliohub/portfolio-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestDB opens an in-memory SQLite database with the same error
// translation the production connection uses, so uniqueness violations
// surface as gorm.ErrDuplicatedKey here too.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Project{},
		&models.Skill{},
		&models.BlogPost{},
		&models.SocialLink{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

// createTestUser inserts a user with its profile and returns the user.
func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, db.Create(user).Error)

	profile := &models.Profile{
		UserID:      user.ID,
		Username:    username,
		DisplayName: username,
		IsPublic:    true,
	}
	require.NoError(t, db.Create(profile).Error)

	return user
}

// authedRouter returns a router whose requests run as the given user,
// bypassing the session handshake.
func authedRouter(userID uint64) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	})
	return r
}

// doJSON performs a request with an optional JSON body against a router.
func doJSON(r *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
