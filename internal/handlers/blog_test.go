package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/foliohub/portfolio-api/internal/models"
	"github.com/foliohub/portfolio-api/internal/repository"
	"github.com/foliohub/portfolio-api/internal/services"
)

// BlogHandlerTestSuite defines the test suite for BlogHandler
type BlogHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *BlogHandler
	owner   *models.User
	other   *models.User
}

// SetupTest runs before each test
func (suite *BlogHandlerTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())

	postRepo := repository.NewBlogPostRepository(suite.db)
	suite.handler = NewBlogHandler(services.NewBlogService(postRepo))

	suite.owner = createTestUser(suite.T(), suite.db, "owner")
	suite.other = createTestUser(suite.T(), suite.db, "other")
}

func (suite *BlogHandlerTestSuite) createPost(userID uint64, slug string, published bool) *models.BlogPost {
	post := &models.BlogPost{
		UserID:      userID,
		Title:       "Post " + slug,
		Slug:        slug,
		Content:     "some words in here",
		ReadingTime: 1,
		Tags:        []string{},
		IsPublished: published,
	}
	if published {
		now := time.Now()
		post.PublishedAt = &now
	}
	suite.Require().NoError(suite.db.Create(post).Error)
	return post
}

func (suite *BlogHandlerTestSuite) TestCreatePost() {
	r := authedRouter(suite.owner.ID)
	r.POST("/api/blog", suite.handler.CreatePost)

	body, err := json.Marshal(map[string]interface{}{
		"title":   "Hello World",
		"slug":    "Hello World!",
		"content": "short post body",
		"tags":    []string{"go"},
	})
	suite.Require().NoError(err)

	w := doJSON(r, http.MethodPost, "/api/blog", body)
	suite.Equal(http.StatusCreated, w.Code)

	var created models.BlogPost
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Equal(suite.owner.ID, created.UserID)
	suite.Equal("hello-world", created.Slug)
	suite.Equal(1, created.ReadingTime)
	suite.False(created.IsPublished)
	suite.Nil(created.PublishedAt)
}

func (suite *BlogHandlerTestSuite) TestCreatePost_MissingFields() {
	r := authedRouter(suite.owner.ID)
	r.POST("/api/blog", suite.handler.CreatePost)

	cases := []map[string]interface{}{
		{"slug": "s", "content": "c"},  // no title
		{"title": "t", "content": "c"}, // no slug
		{"title": "t", "slug": "s"},    // no content
	}
	for _, payload := range cases {
		body, err := json.Marshal(payload)
		suite.Require().NoError(err)

		w := doJSON(r, http.MethodPost, "/api/blog", body)
		suite.Equal(http.StatusBadRequest, w.Code)
	}

	var count int64
	suite.Require().NoError(suite.db.Model(&models.BlogPost{}).Count(&count).Error)
	suite.EqualValues(0, count)
}

func (suite *BlogHandlerTestSuite) TestCreatePost_DuplicateSlug() {
	suite.createPost(suite.owner.ID, "taken", false)

	r := authedRouter(suite.other.ID)
	r.POST("/api/blog", suite.handler.CreatePost)

	body, err := json.Marshal(map[string]interface{}{
		"title":   "Another",
		"slug":    "taken",
		"content": "body",
	})
	suite.Require().NoError(err)

	w := doJSON(r, http.MethodPost, "/api/blog", body)
	suite.Equal(http.StatusConflict, w.Code)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.BlogPost{}).Where("slug = ?", "taken").Count(&count).Error)
	suite.EqualValues(1, count)
}

func (suite *BlogHandlerTestSuite) TestCreatePost_ReadingTime() {
	r := authedRouter(suite.owner.ID)
	r.POST("/api/blog", suite.handler.CreatePost)

	words := make([]string, 450)
	for i := range words {
		words[i] = "word"
	}

	body, err := json.Marshal(map[string]interface{}{
		"title":   "Long Read",
		"slug":    "long-read",
		"content": strings.Join(words, " "),
	})
	suite.Require().NoError(err)

	w := doJSON(r, http.MethodPost, "/api/blog", body)
	suite.Equal(http.StatusCreated, w.Code)

	var created models.BlogPost
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Equal(3, created.ReadingTime)
}

func (suite *BlogHandlerTestSuite) TestUpdatePost_Publish() {
	post := suite.createPost(suite.owner.ID, "draft", false)

	r := authedRouter(suite.owner.ID)
	r.PUT("/api/blog/:id", suite.handler.UpdatePost)

	body, err := json.Marshal(map[string]interface{}{
		"is_published": true,
	})
	suite.Require().NoError(err)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/blog/%d", post.ID), body)
	suite.Equal(http.StatusOK, w.Code)

	var updated models.BlogPost
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.True(updated.IsPublished)
	suite.Require().NotNil(updated.PublishedAt)
	suite.WithinDuration(time.Now(), *updated.PublishedAt, 5*time.Second)
}

func (suite *BlogHandlerTestSuite) TestUpdatePost_Unpublish() {
	post := suite.createPost(suite.owner.ID, "live", true)

	r := authedRouter(suite.owner.ID)
	r.PUT("/api/blog/:id", suite.handler.UpdatePost)

	body, err := json.Marshal(map[string]interface{}{
		"is_published": false,
	})
	suite.Require().NoError(err)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/blog/%d", post.ID), body)
	suite.Equal(http.StatusOK, w.Code)

	var updated models.BlogPost
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.False(updated.IsPublished)
	suite.Nil(updated.PublishedAt)
}

func (suite *BlogHandlerTestSuite) TestUpdatePost_ContentRecomputesReadingTime() {
	post := suite.createPost(suite.owner.ID, "growing", false)

	r := authedRouter(suite.owner.ID)
	r.PUT("/api/blog/:id", suite.handler.UpdatePost)

	words := make([]string, 250)
	for i := range words {
		words[i] = "word"
	}

	body, err := json.Marshal(map[string]interface{}{
		"content": strings.Join(words, " "),
	})
	suite.Require().NoError(err)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/blog/%d", post.ID), body)
	suite.Equal(http.StatusOK, w.Code)

	var updated models.BlogPost
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.Equal(2, updated.ReadingTime)
}

func (suite *BlogHandlerTestSuite) TestUpdatePost_NotOwned() {
	post := suite.createPost(suite.owner.ID, "theirs", false)

	r := authedRouter(suite.other.ID)
	r.PUT("/api/blog/:id", suite.handler.UpdatePost)

	body, err := json.Marshal(map[string]interface{}{
		"title": "Hijacked",
	})
	suite.Require().NoError(err)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/blog/%d", post.ID), body)
	suite.Equal(http.StatusNotFound, w.Code)

	var stored models.BlogPost
	suite.Require().NoError(suite.db.First(&stored, post.ID).Error)
	suite.Equal("Post theirs", stored.Title)
}

func (suite *BlogHandlerTestSuite) TestDeletePost_NotOwned() {
	post := suite.createPost(suite.owner.ID, "theirs", false)

	r := authedRouter(suite.other.ID)
	r.DELETE("/api/blog/:id", suite.handler.DeletePost)

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/blog/%d", post.ID), nil)
	suite.Equal(http.StatusNotFound, w.Code)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.BlogPost{}).Where("id = ?", post.ID).Count(&count).Error)
	suite.EqualValues(1, count)
}

func (suite *BlogHandlerTestSuite) TestListPosts_IncludesDrafts() {
	suite.createPost(suite.owner.ID, "draft-post", false)
	suite.createPost(suite.owner.ID, "live-post", true)
	suite.createPost(suite.other.ID, "not-mine", true)

	r := authedRouter(suite.owner.ID)
	r.GET("/api/blog", suite.handler.ListPosts)

	w := doJSON(r, http.MethodGet, "/api/blog", nil)
	suite.Equal(http.StatusOK, w.Code)

	var posts []models.BlogPost
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &posts))
	suite.Len(posts, 2)
	for _, p := range posts {
		suite.Equal(suite.owner.ID, p.UserID)
	}
}

func (suite *BlogHandlerTestSuite) TestSuggestSlug() {
	r := authedRouter(suite.owner.ID)
	r.GET("/api/blog/suggest-slug", suite.handler.SuggestSlug)

	w := doJSON(r, http.MethodGet, "/api/blog/suggest-slug?title=My+First+Post", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Regexp(`^my-first-post-[0-9a-f]{6}$`, resp["slug"])
}

func TestBlogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BlogHandlerTestSuite))
}
