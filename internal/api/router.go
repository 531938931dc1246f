// internal/api/router.go

// Package api exposes the analysis and provisioning operations over HTTP.
// The routing layer stays thin: every endpoint validates, delegates to the
// core components and shapes the response envelope.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cloud-advisor/internal/analyzer"
	"cloud-advisor/internal/backend"
	commonerrors "cloud-advisor/internal/common/errors"
	"cloud-advisor/internal/common/logger"
	"cloud-advisor/internal/common/observability"
	"cloud-advisor/internal/common/validation"
	"cloud-advisor/internal/provisioner"
	"cloud-advisor/internal/statusstore"
)

type Server struct {
	analyzer *analyzer.Analyzer
	executor *provisioner.Executor
	store    statusstore.Store
	backend  backend.Client
	obs      *observability.Observability
	logger   logger.Logger
	version  string
}

func NewServer(an *analyzer.Analyzer, ex *provisioner.Executor, store statusstore.Store, client backend.Client, obs *observability.Observability, log logger.Logger, version string) *Server {
	return &Server{
		analyzer: an,
		executor: ex,
		store:    store,
		backend:  client,
		obs:      obs,
		logger:   log.With(map[string]interface{}{"component": "api"}),
		version:  version,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", s.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api")
	{
		v1.POST("/analyze", s.analyze)
		v1.POST("/provision", s.provision)
		v1.GET("/status/:request_id", s.status)
		v1.GET("/resource-types", s.resourceTypes)
		v1.GET("/compute-shapes", s.computeShapes)
	}

	return router
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": s.version})
}

func (s *Server) analyze(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "unable to read request body"})
		return
	}

	if err := validation.ValidateJSON(validation.AnalyzeRequestSchema, body); err != nil {
		status, resp := errorToResponse(commonerrors.NewRequestValidationError(err.Error()))
		c.JSON(status, resp)
		return
	}

	var req AnalyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "malformed JSON payload", Details: err.Error()})
		return
	}

	recommendations := s.analyzer.Analyze(req.ConversationContext)

	c.JSON(http.StatusOK, AnalyzeResponse{
		RequestID:       req.RequestID,
		Recommendations: recommendations,
		Message:         "Resource analysis completed successfully",
	})
}

func (s *Server) provision(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "unable to read request body"})
		return
	}

	if err := validation.ValidateJSON(validation.ProvisionRequestSchema, body); err != nil {
		status, resp := errorToResponse(commonerrors.NewRequestValidationError(err.Error()))
		c.JSON(status, resp)
		return
	}

	var req ProvisionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "malformed JSON payload", Details: err.Error()})
		return
	}

	start := time.Now()
	outcomes, err := s.executor.Execute(c.Request.Context(), req.RequestID, req.ConfirmedResources)
	if err != nil {
		s.obs.RecordBatch(c.Request.Context(), "failed")
		s.obs.RecordBatchDuration(c.Request.Context(), time.Since(start), "failed")
		status, resp := errorToResponse(err)
		c.JSON(status, resp)
		return
	}
	s.obs.RecordBatch(c.Request.Context(), "success")
	s.obs.RecordBatchDuration(c.Request.Context(), time.Since(start), "success")

	c.JSON(http.StatusOK, ProvisionResponse{
		RequestID:            req.RequestID,
		Status:               "success",
		ProvisionedResources: outcomes,
		Message:              "Resources provisioned successfully",
	})
}

func (s *Server) status(c *gin.Context) {
	requestID := c.Param("request_id")

	state, err := s.store.Get(c.Request.Context(), requestID)
	if err != nil {
		s.logger.Error("status lookup failed", map[string]interface{}{
			"requestId": requestID,
			"error":     err.Error(),
		})
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "status lookup failed"})
		return
	}

	c.JSON(http.StatusOK, state)
}

func (s *Server) resourceTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"resource_types": s.backend.AvailableResourceTypes()})
}

func (s *Server) computeShapes(c *gin.Context) {
	shapes, err := s.backend.ComputeShapes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "error fetching compute shapes", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"compute_shapes": shapes})
}

// errorToResponse maps core errors onto HTTP statuses: bad input is the
// caller's fault, a deadline is a gateway timeout, everything else is 500.
func errorToResponse(err error) (int, ErrorResponse) {
	var stdErr *commonerrors.StandardError
	if errors.As(err, &stdErr) {
		resp := ErrorResponse{
			Code:    string(stdErr.Code),
			Message: stdErr.Message,
			Details: stdErr.Details,
		}
		switch stdErr.Code {
		case commonerrors.ErrCodeDependencyCycle,
			commonerrors.ErrCodeDuplicateResource,
			commonerrors.ErrCodeRequestValidation:
			return http.StatusBadRequest, resp
		case commonerrors.ErrCodeBatchTimeout:
			return http.StatusGatewayTimeout, resp
		default:
			return http.StatusInternalServerError, resp
		}
	}
	return http.StatusInternalServerError, ErrorResponse{Message: err.Error()}
}
