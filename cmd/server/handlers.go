package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/liyu-tw/coursepick/internal/catalog"
	"github.com/liyu-tw/coursepick/internal/engine"
	"github.com/liyu-tw/coursepick/pkg/apperrors"
	"github.com/liyu-tw/coursepick/pkg/config"
	"github.com/liyu-tw/coursepick/pkg/model"
	"github.com/liyu-tw/coursepick/pkg/response"
)

type server struct {
	catalog catalog.Catalog
	engine  engine.Engine
	cfg     *config.Config
	logger  *zap.Logger
}

func (s *server) routes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/offerings", s.handleListOfferings)
	r.POST("/offerings", s.handleAddOffering)
	r.PUT("/offerings/:name", s.handleUpdateOffering)
	r.DELETE("/offerings/:name", s.handleRemoveOffering)

	r.POST("/schedules/generate", s.handleGenerateSchedules)
}

func (s *server) handleListOfferings(c *gin.Context) {
	response.JSON(c, http.StatusOK, s.catalog.ListOfferings())
}

func (s *server) handleAddOffering(c *gin.Context) {
	var offering model.Offering
	if err := c.ShouldBindJSON(&offering); err != nil {
		response.Error(c, apperrors.Wrap(err, apperrors.ErrValidation.Code, apperrors.ErrValidation.Status, "malformed offering payload"))
		return
	}
	added, err := s.catalog.AddOffering(offering)
	if err != nil {
		response.Error(c, mapCatalogError(err))
		return
	}
	response.Created(c, added)
}

func (s *server) handleUpdateOffering(c *gin.Context) {
	var offering model.Offering
	if err := c.ShouldBindJSON(&offering); err != nil {
		response.Error(c, apperrors.Wrap(err, apperrors.ErrValidation.Code, apperrors.ErrValidation.Status, "malformed offering payload"))
		return
	}
	updated, err := s.catalog.UpdateOffering(c.Param("name"), c.Query("section"), offering)
	if err != nil {
		response.Error(c, mapCatalogError(err))
		return
	}
	response.JSON(c, http.StatusOK, updated)
}

func (s *server) handleRemoveOffering(c *gin.Context) {
	if err := s.catalog.RemoveOffering(c.Param("name"), c.Query("section")); err != nil {
		response.Error(c, mapCatalogError(err))
		return
	}
	response.NoContent(c)
}

type generateRequest struct {
	Policy        string `json:"policy"`
	MaxCandidates int    `json:"maxCandidates"`
}

func (s *server) handleGenerateSchedules(c *gin.Context) {
	req := generateRequest{
		Policy:        s.cfg.Engine.Policy,
		MaxCandidates: s.cfg.Engine.MaxCandidates,
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperrors.Wrap(err, apperrors.ErrValidation.Code, apperrors.ErrValidation.Status, "malformed generation request"))
			return
		}
	}

	policy, err := engine.ParsePolicy(req.Policy)
	if err != nil {
		response.Error(c, apperrors.Wrap(err, apperrors.ErrValidation.Code, apperrors.ErrValidation.Status, err.Error()))
		return
	}
	s.logger.Debug("generation requested",
		zap.String("policy", string(policy)),
		zap.Int("maxCandidates", req.MaxCandidates),
	)

	result, err := s.engine.Evaluate(c.Request.Context(), s.catalog.ListOfferings(), engine.Params{
		Policy:        policy,
		MaxCandidates: req.MaxCandidates,
	})
	if err != nil {
		response.Error(c, mapEngineError(err))
		return
	}

	response.JSON(c, http.StatusOK, result, map[string]any{
		"truncated": result.Truncated,
	})
}

func mapCatalogError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrOfferingNotFound):
		return apperrors.Wrap(err, apperrors.ErrNotFound.Code, apperrors.ErrNotFound.Status, err.Error())
	case errors.Is(err, catalog.ErrDuplicateOffering):
		return apperrors.Wrap(err, apperrors.ErrConflict.Code, apperrors.ErrConflict.Status, err.Error())
	default:
		return apperrors.Wrap(err, apperrors.ErrValidation.Code, apperrors.ErrValidation.Status, err.Error())
	}
}

func mapEngineError(err error) error {
	var unsatisfiable *engine.MandatoryUnsatisfiableError
	if errors.As(err, &unsatisfiable) {
		return apperrors.Wrap(err, apperrors.ErrUnfeasible.Code, apperrors.ErrUnfeasible.Status, err.Error())
	}
	var invalid *engine.InvalidParamsError
	if errors.As(err, &invalid) {
		return apperrors.Wrap(err, apperrors.ErrValidation.Code, apperrors.ErrValidation.Status, err.Error())
	}
	return err
}
