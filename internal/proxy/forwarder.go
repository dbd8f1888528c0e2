package proxy

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Forwarder translates inbound /api requests into upstream /api/v1
// calls: same method, same query string, JSON body passthrough, and
// Authorization passthrough. The upstream's status and JSON body come
// back verbatim unless an Options field says otherwise.
type Forwarder struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// Options tweaks per-route response handling.
type Options struct {
	// NotFoundDetail replaces the upstream's 404 body with a fixed
	// {"detail": ...} payload when set.
	NotFoundDetail string
	// NoContentOnSuccess collapses any upstream 2xx into an empty 204.
	// All delete routes use this.
	NoContentOnSuccess bool
	// ErrorDetailFallback rewrites any upstream error body into
	// {"detail": <upstream detail or this fallback>} when set.
	ErrorDetailFallback string
}

func NewForwarder(baseURL string, log *zap.Logger) *Forwarder {
	return &Forwarder{
		baseURL: baseURL,
		client:  &http.Client{},
		log:     log,
	}
}

// Forward proxies the current request to baseURL + /api/v1 + path and
// writes the upstream response to the client.
func (f *Forwarder) Forward(c *gin.Context, path string, opts Options) {
	target := f.baseURL + "/api/v1" + path
	if q := c.Request.URL.RawQuery; q != "" {
		target += "?" + q
	}

	var body io.Reader
	if c.Request.Body != nil && c.Request.Method != http.MethodGet && c.Request.Method != http.MethodDelete {
		body = c.Request.Body
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, target, body)
	if err != nil {
		f.log.Error("build upstream request", zap.String("path", path), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if auth := c.GetHeader("Authorization"); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Warn("upstream request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Error(err),
		)
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"detail": "Upstream request failed"})
		return
	}
	defer resp.Body.Close()

	if opts.NotFoundDetail != "" && resp.StatusCode == http.StatusNotFound {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": opts.NotFoundDetail})
		return
	}

	if opts.NoContentOnSuccess && resp.StatusCode < 300 {
		c.Status(http.StatusNoContent)
		return
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		f.log.Warn("read upstream response", zap.String("path", path), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"detail": "Upstream request failed"})
		return
	}

	if opts.ErrorDetailFallback != "" && resp.StatusCode >= 400 {
		c.AbortWithStatusJSON(resp.StatusCode, gin.H{"detail": extractDetail(raw, opts.ErrorDetailFallback)})
		return
	}

	if resp.StatusCode == http.StatusNoContent {
		c.Status(http.StatusNoContent)
		return
	}

	// Best-effort parse: a non-JSON upstream body degrades to {}.
	if len(bytes.TrimSpace(raw)) == 0 || !json.Valid(raw) {
		c.JSON(resp.StatusCode, gin.H{})
		return
	}

	c.Data(resp.StatusCode, "application/json", raw)
}

func extractDetail(raw []byte, fallback string) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return fallback
}
