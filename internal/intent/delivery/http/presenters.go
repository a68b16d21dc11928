package http

import (
	"time"

	"intent-engine/internal/intent"
)

// --- Request DTOs ---

type pairReq struct {
	TaskType   string `json:"task_type"   binding:"required"`
	IntentType string `json:"intent_type" binding:"required"`
}

func (r pairReq) toPair() intent.Pair { return intent.NewPair(r.TaskType, r.IntentType) }

type classifyReq struct {
	Text     string `json:"text"      binding:"required,max=4000"`
	TaskType string `json:"task_type" binding:"omitempty"`
}

func (r classifyReq) validate() error {
	if r.TaskType != "" && !intent.TaskType(r.TaskType).Valid() {
		return intent.ErrUnknownTaskType
	}
	return nil
}

type understandReq struct {
	Text string `json:"text" binding:"required,max=4000"`
}

type extractReq struct {
	Text       string `json:"text"        binding:"required,max=4000"`
	TaskType   string `json:"task_type"   binding:"required"`
	IntentType string `json:"intent_type" binding:"required"`
}

func (r extractReq) validate() error {
	if !intent.TaskType(r.TaskType).Valid() {
		return intent.ErrUnknownTaskType
	}
	return nil
}

type describeReq struct {
	TaskType   string `form:"task_type"   binding:"required"`
	IntentType string `form:"intent_type" binding:"required"`
}

type feedbackReq struct {
	Text      string  `json:"text"      binding:"required,max=4000"`
	Predicted pairReq `json:"predicted"`
	Correct   pairReq `json:"correct"`
}

func (r feedbackReq) toInput() intent.FeedbackInput {
	return intent.FeedbackInput{
		Text:      r.Text,
		Predicted: r.Predicted.toPair(),
		Correct:   r.Correct.toPair(),
	}
}

type exampleReq struct {
	Text       string `json:"text"        binding:"required"`
	TaskType   string `json:"task_type"   binding:"required"`
	IntentType string `json:"intent_type" binding:"required"`
}

type examplesReq struct {
	Examples []exampleReq `json:"examples" binding:"required,min=1,max=500,dive"`
}

func (r examplesReq) toInput() []intent.Example {
	out := make([]intent.Example, len(r.Examples))
	for i, ex := range r.Examples {
		p := intent.NewPair(ex.TaskType, ex.IntentType)
		out[i] = intent.Example{Text: ex.Text, Task: p.Task, Intent: p.Intent}
	}
	return out
}

type historyReq struct {
	Days int `form:"days"`
}

func (r historyReq) validate() error {
	if r.Days < 0 {
		return errInvalidDays
	}
	return nil
}

type searchReq struct {
	Query string `form:"q"`
	Limit int    `form:"limit"`
}

func (r searchReq) validate() error {
	if r.Query == "" {
		return errInvalidQuery
	}
	return nil
}

type mineReq struct {
	LookbackHours int     `json:"lookback_hours" binding:"omitempty,min=1"`
	MinFrequency  int     `json:"min_frequency"  binding:"omitempty,min=1"`
	MinScore      float64 `json:"min_score"      binding:"omitempty,min=0"`
}

func (r mineReq) toInput() intent.MineInput {
	return intent.MineInput{
		Lookback:     time.Duration(r.LookbackHours) * time.Hour,
		MinFrequency: r.MinFrequency,
		MinScore:     r.MinScore,
	}
}

// --- Response DTOs ---

type resultResp struct {
	TaskType   string  `json:"task_type"`
	IntentType string  `json:"intent_type"`
	Score      float64 `json:"score"`
	Source     string  `json:"source"`
}

func newResultResp(r intent.Result) resultResp {
	return resultResp{
		TaskType:   string(r.TaskType),
		IntentType: string(r.IntentType),
		Score:      r.Score,
		Source:     string(r.Source),
	}
}

type understandResp struct {
	Result      resultResp    `json:"result"`
	Fine        resultResp    `json:"fine"`
	Trusted     bool          `json:"trusted"`
	Description string        `json:"description"`
	Parameters  intent.Params `json:"parameters" swaggertype:"object"`
}

func (h *handler) newUnderstandResp(out intent.UnderstandOutput) understandResp {
	params := out.Params
	if params == nil {
		params = intent.Params{}
	}
	return understandResp{
		Result:      newResultResp(out.Result),
		Fine:        newResultResp(out.Fine),
		Trusted:     out.Trusted,
		Description: out.Description,
		Parameters:  params,
	}
}

type extractResp struct {
	Parameters intent.Params `json:"parameters" swaggertype:"object"`
}

type describeResp struct {
	TaskType    string `json:"task_type"`
	IntentType  string `json:"intent_type"`
	Description string `json:"description"`
}

type historyResp struct {
	TotalFeedback      int     `json:"total_feedback"`
	CorrectPredictions int     `json:"correct_predictions"`
	Accuracy           float64 `json:"accuracy"`
	DaysAnalyzed       int     `json:"days_analyzed"`
}

func newHistoryResp(s intent.HistoryStats) historyResp {
	return historyResp{
		TotalFeedback:      s.TotalFeedback,
		CorrectPredictions: s.CorrectPredictions,
		Accuracy:           s.Accuracy,
		DaysAnalyzed:       s.DaysAnalyzed,
	}
}

type searchItemResp struct {
	TaskType    string `json:"task_type"`
	IntentType  string `json:"intent_type"`
	Description string `json:"description"`
	Score       int    `json:"score"`
}

type searchResp struct {
	Matches []searchItemResp `json:"matches"`
}

func newSearchResp(matches []intent.IntentMatch) searchResp {
	items := make([]searchItemResp, len(matches))
	for i, m := range matches {
		items[i] = searchItemResp{
			TaskType:    string(m.Pair.Task),
			IntentType:  string(m.Pair.Intent),
			Description: m.Description,
			Score:       m.Score,
		}
	}
	return searchResp{Matches: items}
}

type mineResp struct {
	MessagesScanned int                 `json:"messages_scanned"`
	KeywordsAdded   map[string][]string `json:"keywords_added"`
	Total           int                 `json:"total"`
}

func newMineResp(r intent.MiningReport) mineResp {
	added := make(map[string][]string, len(r.KeywordsAdded))
	for p, kws := range r.KeywordsAdded {
		added[p.String()] = kws
	}
	return mineResp{
		MessagesScanned: r.MessagesScanned,
		KeywordsAdded:   added,
		Total:           r.Total(),
	}
}
