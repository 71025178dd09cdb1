package controllers

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/jn607/UK-power-market-dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

type PageRenderer interface {
	RenderPage(snapshot services.Snapshot, w io.Writer) error
}

type DashboardController struct {
	renderer PageRenderer
	snapshot services.Snapshot
}

func NewDashboardController(renderer PageRenderer, snapshot services.Snapshot) (*DashboardController, error) {
	if renderer == nil {
		return nil, errors.New("renderer is nil")
	}

	return &DashboardController{
		renderer: renderer,
		snapshot: snapshot,
	}, nil
}

func (c *DashboardController) RegisterRoutes(router *gin.Engine) error {
	if c == nil {
		return errors.New("dashboard controller is nil")
	}
	if router == nil {
		return errors.New("router is nil")
	}

	router.GET("/", c.getDashboard)
	return nil
}

func (c *DashboardController) getDashboard(ctx *gin.Context) {
	var page bytes.Buffer
	if err := c.renderer.RenderPage(c.snapshot, &page); err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to render dashboard"})
		return
	}

	ctx.Data(http.StatusOK, "text/html; charset=utf-8", page.Bytes())
}
