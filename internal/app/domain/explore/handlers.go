package explore

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FACorreiaa/loci-maps/internal/app/domain/itinerary"
	"github.com/FACorreiaa/loci-maps/internal/app/domain/recents"
	"github.com/FACorreiaa/loci-maps/internal/app/models"
	"github.com/FACorreiaa/loci-maps/internal/app/streaming"
)

type Handlers struct {
	service *Service
	recents recents.Service
	logger  *zap.Logger
}

func NewHandlers(service *Service, recentsService recents.Service, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		service: service,
		recents: recentsService,
		logger:  logger,
	}
}

// HandleExploreStream opens the SSE connection for one query and streams
// map artifacts as the model response arrives.
func (h *Handlers) HandleExploreStream(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrEmptyQuery.Error()})
		return
	}
	mode := models.ParseMode(c.Query("mode"))
	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	h.logger.Info("Explore stream request",
		zap.String("session_id", sessionID),
		zap.String("mode", string(mode)),
		zap.String("ip", c.ClientIP()),
	)

	h.recents.Add(query)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	ctx := c.Request.Context()
	eventCh := make(chan streaming.StreamEvent, 100)
	view := streaming.NewMapViewEmitter(ctx, eventCh, sessionID)

	go func() {
		defer close(eventCh)
		spec := PromptSpec{Query: query, Mode: mode}
		if err := h.service.RunQuery(ctx, sessionID, spec, view, eventCh); err != nil {
			h.logger.Warn("Query finished with error",
				zap.String("session_id", sessionID),
				zap.Error(err))
		}
	}()

	c.Stream(func(w io.Writer) bool {
		event, ok := <-eventCh
		if !ok {
			return false
		}
		c.SSEvent("message", event)
		return true
	})
}

// HandleExportPlan serves the finalized day plan as a text attachment.
func (h *Handlers) HandleExportPlan(c *gin.Context) {
	sessionID := c.Query("session_id")

	text, err := h.service.ExportPlan(sessionID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrSessionNotFound) || errors.Is(err, models.ErrEmptyPlan) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", itinerary.ExportFilename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// HandleRecents returns the bounded recent-searches list, most recent first.
func (h *Handlers) HandleRecents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"recents": h.recents.List()})
}

// HandleAddRecent records a prompt without running a query, for clients
// that manage submission themselves.
func (h *Handlers) HandleAddRecent(c *gin.Context) {
	var body struct {
		Prompt string `json:"prompt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrBadRequest.Error()})
		return
	}
	prompt := strings.TrimSpace(body.Prompt)
	if prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrEmptyQuery.Error()})
		return
	}

	h.recents.Add(prompt)
	c.JSON(http.StatusOK, gin.H{"recents": h.recents.List()})
}
