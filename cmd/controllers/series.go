package controllers

import (
	"errors"
	"net/http"

	"github.com/jn607/UK-power-market-dashboard/internal/models"
	"github.com/jn607/UK-power-market-dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// SeriesController exposes the derived tables of the computed snapshot as
// JSON. The snapshot is immutable for the process lifetime.
type SeriesController struct {
	snapshot services.Snapshot
}

func NewSeriesController(snapshot services.Snapshot) (*SeriesController, error) {
	return &SeriesController{snapshot: snapshot}, nil
}

func (c *SeriesController) RegisterRoutes(router *gin.Engine) error {
	if c == nil {
		return errors.New("series controller is nil")
	}
	if router == nil {
		return errors.New("router is nil")
	}

	router.GET("/series/generation", c.getGeneration)
	router.GET("/series/intensity", c.getIntensity)
	router.GET("/series/balance", c.getBalance)
	return nil
}

func (c *SeriesController) getGeneration(ctx *gin.Context) {
	points := c.snapshot.Long

	category := ctx.Query("category")
	if category != "" {
		if !validCategory(category) {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category"})
			return
		}

		filtered := make([]models.LongPoint, 0, len(points))
		for _, point := range points {
			if point.Category == models.FuelCategory(category) {
				filtered = append(filtered, point)
			}
		}
		points = filtered
	}

	if points == nil {
		points = []models.LongPoint{}
	}
	ctx.JSON(http.StatusOK, points)
}

func (c *SeriesController) getIntensity(ctx *gin.Context) {
	rows := c.snapshot.Wide
	if rows == nil {
		rows = []models.IntervalRow{}
	}
	ctx.JSON(http.StatusOK, rows)
}

func (c *SeriesController) getBalance(ctx *gin.Context) {
	points := c.snapshot.Balance
	if points == nil {
		points = []models.BalancePoint{}
	}
	ctx.JSON(http.StatusOK, points)
}

func validCategory(category string) bool {
	for _, known := range models.Categories() {
		if models.FuelCategory(category) == known {
			return true
		}
	}
	return false
}
