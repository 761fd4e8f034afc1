package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Jessenahat/odhf-lode-mcp-server/internal/mcp"
)

const (
	// oneShotLinger keeps the one-shot stream open long enough for
	// intermediary buffers to flush before the connection drops.
	oneShotLinger = 50 * time.Millisecond

	keepaliveInterval = 15 * time.Second
)

// discoveryPayload is the first (and for /sse_once, only) message on a
// discovery stream: the tool manifest wrapped in a list_tools event.
func discoveryPayload() (string, error) {
	payload, err := json.Marshal(gin.H{
		"event": "list_tools",
		"data":  gin.H{"tools": mcp.Manifest()},
	})
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func setStreamHeaders(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
}

// handleSSEOnce emits the tool manifest once and closes the stream.
// Does not touch the dataset.
func (s *Server) handleSSEOnce(c *gin.Context) {
	setStreamHeaders(c)

	payload, err := discoveryPayload()
	if err != nil {
		log.Printf("[SSE] failed to marshal manifest: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.SSEvent("message", payload)
	c.Writer.Flush()

	select {
	case <-time.After(oneShotLinger):
	case <-c.Request.Context().Done():
	}
}

// handleSSE emits the tool manifest, then keepalive pings until the
// client disconnects. The ticker is scoped to this connection; after
// disconnect no further writes occur.
func (s *Server) handleSSE(c *gin.Context) {
	setStreamHeaders(c)

	payload, err := discoveryPayload()
	if err != nil {
		log.Printf("[SSE] failed to marshal manifest: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	clientID := uuid.NewString()
	log.Printf("[SSE] client %s connected", clientID)

	c.SSEvent("message", payload)
	c.Writer.Flush()

	ticker := time.NewTicker(keepaliveInterval)
	defer ticker.Stop()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ticker.C:
			c.SSEvent("ping", "keepalive")
			return true
		case <-ctx.Done():
			return false
		}
	})

	log.Printf("[SSE] client %s disconnected", clientID)
}
