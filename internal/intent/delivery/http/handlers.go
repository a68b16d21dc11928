package http

import (
	"github.com/gin-gonic/gin"

	"intent-engine/internal/intent"
	"intent-engine/pkg/response"
)

// Classify godoc
// @Summary     Classify an utterance
// @Description Resolves text to a task type, intent type and heuristic score. When task_type is set, task detection is skipped.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Utterance"
// @Success     200  {object} resultResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Unknown task type"
// @Router      /api/v1/intents/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, h.mapBindError(err))
		return
	}

	res := h.uc.Classify(ctx, req.Text, intent.TaskType(req.TaskType))
	response.OK(c, newResultResp(res))
}

// Understand godoc
// @Summary     Classify, gate and extract
// @Description Classifies text, applies the trust threshold and extracts the parameters of the resolved intent.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       body body understandReq true "Utterance"
// @Success     200  {object} understandResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/intents/understand [POST]
func (h *handler) Understand(c *gin.Context) {
	ctx := c.Request.Context()

	var req understandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	out := h.uc.Understand(ctx, req.Text)
	response.OK(c, h.newUnderstandResp(out))
}

// Extract godoc
// @Summary     Extract parameters
// @Description Runs the extraction cascade of the given intent. Unknown intents yield an empty object.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Utterance and intent"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Unknown task type"
// @Router      /api/v1/intents/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, h.mapBindError(err))
		return
	}

	p := intent.NewPair(req.TaskType, req.IntentType)
	params := h.uc.ExtractParameters(ctx, req.Text, p.Task, p.Intent)
	if params == nil {
		params = intent.Params{}
	}
	response.OK(c, extractResp{Parameters: params})
}

// Describe godoc
// @Summary     Describe an intent
// @Description Returns the human readable description of an intent, or a generic fallback.
// @Tags        Intent
// @Produce     json
// @Param       task_type   query string true "Task type"
// @Param       intent_type query string true "Intent type"
// @Success     200 {object} describeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/intents/describe [GET]
func (h *handler) Describe(c *gin.Context) {
	var req describeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	p := intent.NewPair(req.TaskType, req.IntentType)
	response.OK(c, describeResp{
		TaskType:    string(p.Task),
		IntentType:  string(p.Intent),
		Description: h.uc.DescribeIntent(p.Task, p.Intent),
	})
}

// Taxonomy godoc
// @Summary     Dump the taxonomy
// @Description Returns every intent of the current snapshot with its merged keywords.
// @Tags        Intent
// @Produce     json
// @Success     200 {object} intent.TaxonomyOutput
// @Router      /api/v1/intents/taxonomy [GET]
func (h *handler) Taxonomy(c *gin.Context) {
	response.OK(c, h.uc.Taxonomy(c.Request.Context()))
}

// Search godoc
// @Summary     Search intents
// @Description Fuzzy search over intent names and descriptions.
// @Tags        Intent
// @Produce     json
// @Param       q     query string true  "Search text"
// @Param       limit query int    false "Max results (default: 10)"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/intents/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, newSearchResp(h.uc.SearchIntents(ctx, req.Query, req.Limit)))
}

// Feedback godoc
// @Summary     Submit a correction
// @Description Records a prediction/correction pair and adapts the learned keywords.
// @Tags        Learning
// @Accept      json
// @Produce     json
// @Param       body body feedbackReq true "Correction"
// @Success     200  {object} response.Resp "OK"
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Unknown intent"
// @Router      /api/v1/intents/learning/feedback [POST]
func (h *handler) Feedback(c *gin.Context) {
	ctx := c.Request.Context()

	var req feedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.LearnFromFeedback(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "uc.LearnFromFeedback: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// Examples godoc
// @Summary     Learn from labeled examples
// @Description Adds the tokens of each example to its intent. Nothing is removed.
// @Tags        Learning
// @Accept      json
// @Produce     json
// @Param       body body examplesReq true "Examples"
// @Success     200  {object} response.Resp "OK"
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Unknown intent"
// @Router      /api/v1/intents/learning/examples [POST]
func (h *handler) Examples(c *gin.Context) {
	ctx := c.Request.Context()

	var req examplesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.LearnFromExamples(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "uc.LearnFromExamples: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// History godoc
// @Summary     Feedback accuracy
// @Description Accuracy of predictions over the trailing window. days=0 covers all feedback.
// @Tags        Learning
// @Produce     json
// @Param       days query int false "Window in days (default: 0, all)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/intents/learning/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, newHistoryResp(h.uc.AnalyzeLearningHistory(ctx, req.Days)))
}

// Mine godoc
// @Summary     Mine keywords
// @Description Mines frequent tokens from recently classified messages into the learned keywords.
// @Tags        Learning
// @Accept      json
// @Produce     json
// @Param       body body mineReq false "Mining options"
// @Success     200  {object} mineResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Corpus not configured"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intents/learning/mine [POST]
func (h *handler) Mine(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMineReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.uc.MineRecent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.MineRecent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newMineResp(report))
}
