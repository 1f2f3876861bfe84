package controllers

import (
	"errors"
	"net/http"

	"github.com/sadamkhan7679/issuetracker-fastapi-nextjs/entity"
	"github.com/sadamkhan7679/issuetracker-fastapi-nextjs/pkg/resp"
	"github.com/sadamkhan7679/issuetracker-fastapi-nextjs/services"

	"github.com/gin-gonic/gin"
)

type IssueController struct {
	service *services.IssueService
}

func NewIssueController(service *services.IssueService) *IssueController {
	return &IssueController{service: service}
}

// GET /api/v1/issues
func (ic *IssueController) List(c *gin.Context) {
	issues, err := ic.service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, issues)
}

// POST /api/v1/issues
func (ic *IssueController) Create(c *gin.Context) {
	var in entity.IssueCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	issue, err := ic.service.Create(in)
	if err != nil {
		ic.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, issue)
}

// GET /api/v1/issues/:id
func (ic *IssueController) Detail(c *gin.Context) {
	issue, err := ic.service.Get(c.Param("id"))
	if err != nil {
		ic.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

// PUT /api/v1/issues/:id
func (ic *IssueController) Update(c *gin.Context) {
	var in entity.IssueUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	issue, err := ic.service.Update(c.Param("id"), in)
	if err != nil {
		ic.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

// DELETE /api/v1/issues/:id
func (ic *IssueController) Delete(c *gin.Context) {
	if err := ic.service.Delete(c.Param("id")); err != nil {
		ic.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ic *IssueController) fail(c *gin.Context, err error) {
	var verr *entity.ValidationError
	switch {
	case errors.As(err, &verr):
		resp.Unprocessable(c, verr.Error())
	case errors.Is(err, services.ErrIssueNotFound):
		resp.NotFound(c, "issue not found")
	default:
		resp.ServerError(c, err)
	}
}
