package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"intelligent-voice-backend/pkg/response"
)

// ProcessIntent godoc
// @Summary     Process a voice utterance
// @Description Resolves the utterance to an intent, response text and frontend action, carrying per-user memory across turns.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body intentReq true "Utterance with route and page context"
// @Success     200 {object} response.Resp{data=voice.IntentOutput}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/voice/intent [POST]
func (h *handler) ProcessIntent(c *gin.Context) {
	ctx := c.Request.Context()

	var req intentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "voice.http.ProcessIntent: invalid body: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessIntent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "voice.http.ProcessIntent: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, output)
}

// ProcessCommand godoc
// @Summary     Process a control command
// @Description Handles stop, repeat and retry without going through the resolver chain.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body commandReq true "Control command"
// @Success     200 {object} response.Resp{data=voice.CommandOutput}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/voice/command [POST]
func (h *handler) ProcessCommand(c *gin.Context) {
	ctx := c.Request.Context()

	var req commandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "voice.http.ProcessCommand: invalid body: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessCommand(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "voice.http.ProcessCommand: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, output)
}

// LogEvent godoc
// @Summary     Log an analytics event
// @Description Ingests a caller-side analytics event into the append-only event store.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body eventReq true "Analytics event"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/voice/log [POST]
func (h *handler) LogEvent(c *gin.Context) {
	ctx := c.Request.Context()

	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "voice.http.LogEvent: invalid body: %v", err)
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.LogEvent(ctx, req.toEvent()); err != nil {
		h.l.Errorf(ctx, "voice.http.LogEvent: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, gin.H{"status": "logged"})
}

// CreateSession godoc
// @Summary     Create a voice session
// @Description Records a new voice session. A missing session UUID is generated server side.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body sessionReq true "Session data"
// @Success     200 {object} response.Resp{data=sessionResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/voice/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	var req sessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "voice.http.CreateSession: invalid body: %v", err)
		response.Error(c, err, nil)
		return
	}

	if req.SessionUUID == "" {
		req.SessionUUID = uuid.NewString()
	} else if _, err := uuid.Parse(req.SessionUUID); err != nil {
		h.l.Warnf(ctx, "voice.http.CreateSession: invalid session uuid %q: %v", req.SessionUUID, err)
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.CreateSession(ctx, req.toSession())
	if err != nil {
		h.l.Errorf(ctx, "voice.http.CreateSession: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, sessionResp{SessionUUID: created.UUID, Status: "created"})
}

// GetMemory godoc
// @Summary     Get user memory
// @Description Returns the user's current dialogue memory. Unknown users get the default record.
// @Tags        Voice
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} response.Resp{data=memoryResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/voice/memory/{user_id} [GET]
func (h *handler) GetMemory(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("user_id")

	memory, err := h.uc.GetMemory(ctx, userID)
	if err != nil {
		h.l.Errorf(ctx, "voice.http.GetMemory: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, memoryResp{UserID: userID, Memory: memory})
}

// GetAnalytics godoc
// @Summary     Get user analytics
// @Description Returns the user's most recent analytics events, newest first.
// @Tags        Voice
// @Produce     json
// @Param       user_id path  string true  "User ID"
// @Param       limit   query int    false "Max events (default: 50)"
// @Success     200 {object} response.Resp{data=analyticsResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/voice/analytics/{user_id} [GET]
func (h *handler) GetAnalytics(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("user_id")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.l.Warnf(ctx, "voice.http.GetAnalytics: invalid limit %q: %v", raw, err)
			response.Error(c, err, nil)
			return
		}
		limit = parsed
	}

	events, err := h.uc.GetAnalytics(ctx, userID, limit)
	if err != nil {
		h.l.Errorf(ctx, "voice.http.GetAnalytics: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, analyticsResp{UserID: userID, Events: events, Count: len(events)})
}
