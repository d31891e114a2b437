package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/foliohub/portfolio-api/internal/models"
	"github.com/foliohub/portfolio-api/internal/repository"
	"github.com/foliohub/portfolio-api/internal/services"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *ProjectHandler
	owner   *models.User
	other   *models.User
}

// SetupTest runs before each test
func (suite *ProjectHandlerTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())

	projectRepo := repository.NewProjectRepository(suite.db)
	suite.handler = NewProjectHandler(services.NewProjectService(projectRepo))

	suite.owner = createTestUser(suite.T(), suite.db, "owner")
	suite.other = createTestUser(suite.T(), suite.db, "other")
}

func (suite *ProjectHandlerTestSuite) createProject(userID uint64, title string, featured bool, order int) *models.Project {
	project := &models.Project{
		UserID:       userID,
		Title:        title,
		Tags:         []string{},
		IsFeatured:   featured,
		DisplayOrder: order,
	}
	suite.Require().NoError(suite.db.Create(project).Error)
	return project
}

func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	r := authedRouter(suite.owner.ID)
	r.POST("/api/projects", suite.handler.CreateProject)

	body, err := json.Marshal(map[string]interface{}{
		"title":       "My Project",
		"description": "A thing I built",
		"tags":        []string{"go", "postgres"},
		// A spoofed owner must be ignored.
		"user_id": suite.other.ID,
	})
	suite.Require().NoError(err)

	w := doJSON(r, http.MethodPost, "/api/projects", body)
	suite.Equal(http.StatusCreated, w.Code)

	var created models.Project
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Equal(suite.owner.ID, created.UserID)
	suite.Equal("My Project", created.Title)
	suite.Equal([]string{"go", "postgres"}, created.Tags)
	suite.NotZero(created.ID)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_MissingTitle() {
	r := authedRouter(suite.owner.ID)
	r.POST("/api/projects", suite.handler.CreateProject)

	body, err := json.Marshal(map[string]interface{}{
		"description": "no title here",
	})
	suite.Require().NoError(err)

	w := doJSON(r, http.MethodPost, "/api/projects", body)
	suite.Equal(http.StatusBadRequest, w.Code)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.Project{}).Count(&count).Error)
	suite.EqualValues(0, count)
}

func (suite *ProjectHandlerTestSuite) TestListProjects_FeaturedFirst() {
	suite.createProject(suite.owner.ID, "P1", false, 0)
	suite.createProject(suite.owner.ID, "P2", true, 5)

	r := authedRouter(suite.owner.ID)
	r.GET("/api/projects", suite.handler.ListProjects)

	w := doJSON(r, http.MethodGet, "/api/projects", nil)
	suite.Equal(http.StatusOK, w.Code)

	var projects []models.Project
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &projects))
	suite.Require().Len(projects, 2)
	suite.Equal("P2", projects[0].Title)
	suite.Equal("P1", projects[1].Title)
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject() {
	project := suite.createProject(suite.owner.ID, "Before", false, 0)

	r := authedRouter(suite.owner.ID)
	r.PUT("/api/projects/:id", suite.handler.UpdateProject)

	body, err := json.Marshal(map[string]interface{}{
		"title":       "After",
		"is_featured": true,
	})
	suite.Require().NoError(err)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/projects/%d", project.ID), body)
	suite.Equal(http.StatusOK, w.Code)

	var updated models.Project
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.Equal("After", updated.Title)
	suite.True(updated.IsFeatured)
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject_Tags() {
	project := suite.createProject(suite.owner.ID, "Tagged", false, 0)

	r := authedRouter(suite.owner.ID)
	r.PUT("/api/projects/:id", suite.handler.UpdateProject)

	body, err := json.Marshal(map[string]interface{}{
		"tags": []string{"go", "gin", "gorm"},
	})
	suite.Require().NoError(err)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/projects/%d", project.ID), body)
	suite.Equal(http.StatusOK, w.Code)

	var stored models.Project
	suite.Require().NoError(suite.db.First(&stored, project.ID).Error)
	suite.Equal([]string{"go", "gin", "gorm"}, stored.Tags)
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject_NotOwned() {
	project := suite.createProject(suite.owner.ID, "Theirs", false, 0)

	r := authedRouter(suite.other.ID)
	r.PUT("/api/projects/:id", suite.handler.UpdateProject)

	body, err := json.Marshal(map[string]interface{}{
		"title": "Hijacked",
	})
	suite.Require().NoError(err)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/projects/%d", project.ID), body)
	suite.Equal(http.StatusNotFound, w.Code)

	// The owner's row must be untouched.
	var stored models.Project
	suite.Require().NoError(suite.db.First(&stored, project.ID).Error)
	suite.Equal("Theirs", stored.Title)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject_NotOwned() {
	project := suite.createProject(suite.owner.ID, "Theirs", false, 0)

	r := authedRouter(suite.other.ID)
	r.DELETE("/api/projects/:id", suite.handler.DeleteProject)

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/projects/%d", project.ID), nil)
	suite.Equal(http.StatusNotFound, w.Code)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.Project{}).Where("id = ?", project.ID).Count(&count).Error)
	suite.EqualValues(1, count)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject() {
	project := suite.createProject(suite.owner.ID, "Done", false, 0)

	r := authedRouter(suite.owner.ID)
	r.DELETE("/api/projects/:id", suite.handler.DeleteProject)

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/projects/%d", project.ID), nil)
	suite.Equal(http.StatusOK, w.Code)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.Project{}).Where("id = ?", project.ID).Count(&count).Error)
	suite.EqualValues(0, count)
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
