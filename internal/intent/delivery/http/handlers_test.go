package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"intent-engine/internal/intent"
	"intent-engine/internal/middleware"
	"intent-engine/pkg/log"
	"intent-engine/pkg/response"
)

type mockUseCase struct {
	classifyKnown intent.TaskType
	feedback      []intent.FeedbackInput
	feedbackErr   error
	examples      []intent.Example
	mineErr       error
	historyDays   int
}

func (m *mockUseCase) Classify(ctx context.Context, text string, known intent.TaskType) intent.Result {
	m.classifyKnown = known
	return intent.Result{TaskType: intent.TaskOrderManagement, IntentType: intent.IntentGetOrder, Score: 20, Source: intent.SourcePattern}
}

func (m *mockUseCase) Understand(ctx context.Context, text string) intent.UnderstandOutput {
	res := intent.Result{TaskType: intent.TaskOrderManagement, IntentType: intent.IntentGetOrder, Score: 20, Source: intent.SourcePattern}
	return intent.UnderstandOutput{
		Result:      res,
		Fine:        res,
		Params:      intent.Params{"order_id": intent.Int(456)},
		Description: "Show the details of a single order",
		Trusted:     true,
	}
}

func (m *mockUseCase) ExtractParameters(ctx context.Context, text string, task intent.TaskType, it intent.IntentType) intent.Params {
	if it != intent.IntentGetOrder {
		return nil
	}
	return intent.Params{"order_id": intent.Int(456)}
}

func (m *mockUseCase) DescribeIntent(task intent.TaskType, it intent.IntentType) string {
	return string(task) + "/" + string(it)
}

func (m *mockUseCase) LearnFromFeedback(ctx context.Context, input intent.FeedbackInput) error {
	m.feedback = append(m.feedback, input)
	return m.feedbackErr
}

func (m *mockUseCase) LearnFromExamples(ctx context.Context, examples []intent.Example) error {
	m.examples = append(m.examples, examples...)
	return nil
}

func (m *mockUseCase) AnalyzeLearningHistory(ctx context.Context, days int) intent.HistoryStats {
	m.historyDays = days
	return intent.HistoryStats{TotalFeedback: 4, CorrectPredictions: 3, Accuracy: 0.75, DaysAnalyzed: days}
}

func (m *mockUseCase) MineRecent(ctx context.Context, input intent.MineInput) (intent.MiningReport, error) {
	if m.mineErr != nil {
		return intent.MiningReport{}, m.mineErr
	}
	p := intent.Pair{Task: intent.TaskProductManagement, Intent: intent.IntentListProducts}
	return intent.MiningReport{MessagesScanned: 9, KeywordsAdded: map[intent.Pair][]string{p: {"catalogue"}}}, nil
}

func (m *mockUseCase) Taxonomy(ctx context.Context) intent.TaxonomyOutput {
	return intent.TaxonomyOutput{Version: 3}
}

func (m *mockUseCase) SearchIntents(ctx context.Context, query string, limit int) []intent.IntentMatch {
	return []intent.IntentMatch{{Pair: intent.Pair{Task: intent.TaskOrderManagement, Intent: intent.IntentRefundOrder}, Score: 42}}
}

func newTestRouter(uc intent.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/intents"), New(log.NewNop(), uc), middleware.New(log.NewNop(), 0))
	return r
}

func do(r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	data, _ := resp.Data.(map[string]any)
	return w, data
}

func TestHandlers(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		body     any
		wantCode int
		check    func(t *testing.T, m *mockUseCase, data map[string]any)
	}{
		{
			name: "classify", method: http.MethodPost, path: "/api/v1/intents/classify",
			body:     gin.H{"text": "order 456", "task_type": "order_management"},
			wantCode: http.StatusOK,
			check: func(t *testing.T, m *mockUseCase, data map[string]any) {
				if data["intent_type"] != "get_order" || data["source"] != "pattern" {
					t.Errorf("data = %v", data)
				}
				if m.classifyKnown != intent.TaskOrderManagement {
					t.Errorf("known task = %q", m.classifyKnown)
				}
			},
		},
		{
			name: "classify unknown task type", method: http.MethodPost, path: "/api/v1/intents/classify",
			body:     gin.H{"text": "order 456", "task_type": "spaceships"},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "classify missing text", method: http.MethodPost, path: "/api/v1/intents/classify",
			body:     gin.H{},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "understand", method: http.MethodPost, path: "/api/v1/intents/understand",
			body:     gin.H{"text": "order 456"},
			wantCode: http.StatusOK,
			check: func(t *testing.T, m *mockUseCase, data map[string]any) {
				params, _ := data["parameters"].(map[string]any)
				if params["order_id"] != float64(456) || data["trusted"] != true {
					t.Errorf("data = %v", data)
				}
			},
		},
		{
			name: "extract unknown intent yields empty object", method: http.MethodPost, path: "/api/v1/intents/extract",
			body:     gin.H{"text": "x", "task_type": "order_management", "intent_type": "teleport"},
			wantCode: http.StatusOK,
			check: func(t *testing.T, m *mockUseCase, data map[string]any) {
				params, ok := data["parameters"].(map[string]any)
				if !ok || len(params) != 0 {
					t.Errorf("parameters = %v", data["parameters"])
				}
			},
		},
		{
			name: "describe", method: http.MethodGet, path: "/api/v1/intents/describe?task_type=Order_Management&intent_type=get_order",
			wantCode: http.StatusOK,
			check: func(t *testing.T, m *mockUseCase, data map[string]any) {
				if data["description"] != "order_management/get_order" {
					t.Errorf("data = %v", data)
				}
			},
		},
		{
			name: "feedback", method: http.MethodPost, path: "/api/v1/intents/learning/feedback",
			body: gin.H{
				"text":      "I want to add a new item",
				"predicted": gin.H{"task_type": "general", "intent_type": "general"},
				"correct":   gin.H{"task_type": "product_management", "intent_type": "create_product"},
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, m *mockUseCase, data map[string]any) {
				if len(m.feedback) != 1 || m.feedback[0].Correct.Intent != intent.IntentCreateProduct {
					t.Errorf("feedback = %+v", m.feedback)
				}
			},
		},
		{
			name: "feedback missing correct pair", method: http.MethodPost, path: "/api/v1/intents/learning/feedback",
			body:     gin.H{"text": "x", "predicted": gin.H{"task_type": "general", "intent_type": "general"}},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "examples", method: http.MethodPost, path: "/api/v1/intents/learning/examples",
			body: gin.H{"examples": []gin.H{
				{"text": "show catalogue", "task_type": "product_management", "intent_type": "list_products"},
			}},
			wantCode: http.StatusOK,
			check: func(t *testing.T, m *mockUseCase, data map[string]any) {
				if len(m.examples) != 1 || m.examples[0].Intent != intent.IntentListProducts {
					t.Errorf("examples = %+v", m.examples)
				}
			},
		},
		{
			name: "examples empty", method: http.MethodPost, path: "/api/v1/intents/learning/examples",
			body:     gin.H{"examples": []gin.H{}},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "history", method: http.MethodGet, path: "/api/v1/intents/learning/history?days=7",
			wantCode: http.StatusOK,
			check: func(t *testing.T, m *mockUseCase, data map[string]any) {
				if m.historyDays != 7 || data["accuracy"] != 0.75 {
					t.Errorf("days = %d data = %v", m.historyDays, data)
				}
			},
		},
		{
			name: "history negative days", method: http.MethodGet, path: "/api/v1/intents/learning/history?days=-1",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "search", method: http.MethodGet, path: "/api/v1/intents/search?q=refund",
			wantCode: http.StatusOK,
			check: func(t *testing.T, m *mockUseCase, data map[string]any) {
				matches, _ := data["matches"].([]any)
				if len(matches) != 1 {
					t.Errorf("matches = %v", data["matches"])
				}
			},
		},
		{
			name: "search without query", method: http.MethodGet, path: "/api/v1/intents/search",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "mine", method: http.MethodPost, path: "/api/v1/intents/learning/mine",
			wantCode: http.StatusOK,
			check: func(t *testing.T, m *mockUseCase, data map[string]any) {
				added, _ := data["keywords_added"].(map[string]any)
				if data["total"] != float64(1) || added["product_management.list_products"] == nil {
					t.Errorf("data = %v", data)
				}
			},
		},
		{
			name: "taxonomy", method: http.MethodGet, path: "/api/v1/intents/taxonomy",
			wantCode: http.StatusOK,
			check: func(t *testing.T, m *mockUseCase, data map[string]any) {
				if data["version"] != float64(3) {
					t.Errorf("data = %v", data)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := &mockUseCase{}
			w, data := do(newTestRouter(m), tc.method, tc.path, tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d, body %s", w.Code, tc.wantCode, w.Body.String())
			}
			if tc.check != nil {
				tc.check(t, m, data)
			}
		})
	}
}

func TestHandlers_ErrorMapping(t *testing.T) {
	t.Run("unknown intent feedback", func(t *testing.T) {
		m := &mockUseCase{feedbackErr: intent.ErrUnknownIntent}
		w, _ := do(newTestRouter(m), http.MethodPost, "/api/v1/intents/learning/feedback", gin.H{
			"text":      "x y",
			"predicted": gin.H{"task_type": "general", "intent_type": "general"},
			"correct":   gin.H{"task_type": "product_management", "intent_type": "teleport"},
		})
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("mining without corpus", func(t *testing.T) {
		m := &mockUseCase{mineErr: intent.ErrNoCorpus}
		w, _ := do(newTestRouter(m), http.MethodPost, "/api/v1/intents/learning/mine", nil)
		if w.Code != http.StatusConflict {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("unexpected error is hidden", func(t *testing.T) {
		m := &mockUseCase{mineErr: context.DeadlineExceeded}
		w, _ := do(newTestRouter(m), http.MethodPost, "/api/v1/intents/learning/mine", nil)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("status = %d", w.Code)
		}
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Message != response.DefaultErrorMessage {
			t.Errorf("message = %q", resp.Message)
		}
	})
}
