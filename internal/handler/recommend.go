package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"book-scout/backend/internal/model"
	"book-scout/backend/internal/recommend"
	"book-scout/backend/internal/recommend/gateway"
)

// RecommendTimeout is the maximum time allowed for one recommendation,
// including the external model call.
const RecommendTimeout = 30 * time.Second

// RecommendHandler serves POST /api/recommend.
type RecommendHandler struct {
	svc *recommend.Service
}

// NewRecommendHandler creates a handler bound to the service.
func NewRecommendHandler(svc *recommend.Service) *RecommendHandler {
	return &RecommendHandler{svc: svc}
}

func (h *RecommendHandler) Handle(c *gin.Context) {
	startTime := time.Now()

	var req model.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
			"code":  "INVALID_REQUEST",
		})
		return
	}

	if req.Profile == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: profile is required",
			"code":  "MISSING_PROFILE",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), RecommendTimeout)
	defer cancel()

	result, err := h.svc.Recommend(ctx, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	requestID := ""
	if result.Metadata != nil {
		requestID = result.Metadata.RequestID
	}
	log.Printf("[PERF] Recommendation completed in %v request_id=%s gateway=%s fiction=%d nonfiction=%d",
		time.Since(startTime), requestID, h.svc.GatewayName(),
		len(result.Results.Fiction), len(result.Results.Nonfiction))

	c.JSON(http.StatusOK, result)
}

// writeError maps pipeline errors to status codes: 400 for bad requests,
// 502 for anything originating upstream, 504 for timeouts, 429 when the
// model API itself is rate limited, 500 for configuration and internal
// faults. Response bodies never carry credentials or raw upstream text.
func (h *RecommendHandler) writeError(c *gin.Context, err error) {
	var validationErr *recommend.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Msg,
			"code":  "INVALID_REQUEST",
		})
		return
	}

	if errors.Is(err, context.DeadlineExceeded) {
		log.Printf("[ERROR] Recommendation timed out: %v", err)
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"error": "Request timed out. Please try again.",
			"code":  "TIMEOUT",
		})
		return
	}

	var configErr *gateway.ConfigurationError
	if errors.As(err, &configErr) {
		log.Printf("[ERROR] %v", configErr)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Recommendation service is not configured",
			"details": "the external model credential is missing or invalid",
			"code":    "NOT_CONFIGURED",
		})
		return
	}

	var schemaErr *gateway.SchemaError
	if errors.As(err, &schemaErr) {
		log.Printf("[ERROR] Upstream schema violation: %s raw=%s", schemaErr.Msg, schemaErr.Raw)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Upstream model returned an invalid schema",
			"code":  "BAD_UPSTREAM_SCHEMA",
		})
		return
	}

	var upstreamErr *gateway.UpstreamError
	if errors.As(err, &upstreamErr) {
		if isRateLimitError(err) {
			log.Printf("[QUOTA] Model API rate limit exceeded: %v", err)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":      "The model API is rate limited. Please retry shortly.",
				"code":       "UPSTREAM_RATE_LIMITED",
				"retryAfter": 60,
			})
			return
		}
		log.Printf("[ERROR] Upstream failure: %v", upstreamErr)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Upstream model call failed",
			"code":  "UPSTREAM_ERROR",
		})
		return
	}

	log.Printf("[ERROR] Unexpected recommendation failure: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Failed to generate recommendations",
		"details": "unexpected internal error",
		"code":    "INTERNAL_ERROR",
	})
}

// isRateLimitError checks whether an upstream failure is the model API's
// own quota rejection.
func isRateLimitError(err error) bool {
	if s, ok := status.FromError(err); ok {
		if s.Code() == codes.ResourceExhausted {
			return true
		}
	}
	errStr := err.Error()
	return strings.Contains(errStr, "ResourceExhausted") ||
		strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "quota")
}
