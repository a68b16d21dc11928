package classifier_test

import (
	"context"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"intent-engine/internal/intent"
	"intent-engine/internal/intent/classifier"
	"intent-engine/internal/intent/taxonomy"
	"intent-engine/pkg/log"
)

func newClassifier(t testing.TB, d *taxonomy.Defaults) *classifier.Classifier {
	t.Helper()
	if d == nil {
		var err error
		if d, err = taxonomy.LoadDefaults(); err != nil {
			t.Fatalf("LoadDefaults: %v", err)
		}
	}
	s, err := taxonomy.New(context.Background(), log.NewNop(), taxonomy.Options{Defaults: d})
	if err != nil {
		t.Fatalf("taxonomy.New: %v", err)
	}
	return classifier.New(s)
}

func TestClassify(t *testing.T) {
	c := newClassifier(t, nil)

	tests := []struct {
		name      string
		text      string
		known     intent.TaskType
		task      intent.TaskType
		intent    intent.IntentType
		source    intent.Source
		wantScore float64 // checked only when non-zero
	}{
		{"short greeting", "hi", "", intent.TaskGeneral, intent.IntentGreeting, intent.SourceGreeting, 10},
		{"greeting phrase", "Good morning, how are things going", "", intent.TaskGeneral, intent.IntentGreeting, intent.SourceGreeting, 10},
		{"hebrew greeting", "שלום, מה המצב היום", "", intent.TaskGeneral, intent.IntentGreeting, intent.SourceGreeting, 10},
		{"greeting not substring", "show this month sales report", "", intent.TaskSalesAnalytics, intent.IntentSalesReport, intent.SourceKeywords, 0},
		{"no match", "asdkjasd", "", intent.TaskGeneral, intent.IntentGeneral, intent.SourceNone, 0},
		{"empty", "   ", "", intent.TaskGeneral, intent.IntentGeneral, intent.SourceNone, 0},
		{"fast path", "add a new product called Blue Mug", "", intent.TaskProductManagement, intent.IntentCreateProduct, intent.SourcePattern, 20},
		{"fast path order", "order number 456", "", intent.TaskOrderManagement, intent.IntentGetOrder, intent.SourcePattern, 20},
		{"keywords", "please show me all customers", "", intent.TaskCustomerManagement, intent.IntentGetCustomers, intent.SourceKeywords, 0},
		{"hebrew keywords", "תראה לי את כל ההזמנות מהשבוע", "", intent.TaskOrderManagement, intent.IntentGetOrders, intent.SourceKeywords, 0},
		{"known task restricts", "add a new product", intent.TaskOrderManagement, intent.TaskOrderManagement, intent.IntentGeneral, intent.SourceNone, 0},
		{"unknown known task ignored", "add a new product", "spaceships", intent.TaskProductManagement, intent.IntentCreateProduct, intent.SourcePattern, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text, tt.known)
			if got.TaskType != tt.task || got.IntentType != tt.intent || got.Source != tt.source {
				t.Fatalf("Classify(%q) = %+v, want %s.%s via %s", tt.text, got, tt.task, tt.intent, tt.source)
			}
			if tt.wantScore != 0 && got.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", got.Score, tt.wantScore)
			}
			if tt.source == intent.SourceNone && got.Score != 0 {
				t.Errorf("score = %v, want 0", got.Score)
			}
			if tt.source == intent.SourceKeywords && got.Score <= 0 {
				t.Errorf("keyword result with non-positive score %v", got.Score)
			}
		})
	}
}

func TestClassify_TieKeepsFirstTask(t *testing.T) {
	d, err := taxonomy.ParseDefaults([]byte(`
tasks:
  - task: product_management
    intents:
      - intent: widgets
        keywords: [widget]
  - task: order_management
    intents:
      - intent: widgets
        keywords: [widget]
`))
	if err != nil {
		t.Fatalf("ParseDefaults: %v", err)
	}
	c := newClassifier(t, d)

	got := c.Classify("where is the widget now", "")
	if got.TaskType != intent.TaskProductManagement {
		t.Errorf("tie resolved to %s, want %s", got.TaskType, intent.TaskProductManagement)
	}
}

func TestCoarseAndGate(t *testing.T) {
	c := newClassifier(t, nil)

	task, score := c.Coarse("how many units are in the warehouse")
	if task != intent.TaskInventoryManagement || score <= 0 {
		t.Fatalf("Coarse = %s, %v", task, score)
	}
	task, score = c.Coarse("asdkjasd")
	if task != intent.TaskGeneral || score != 0 {
		t.Fatalf("Coarse(no match) = %s, %v", task, score)
	}

	weak := intent.Result{TaskType: intent.TaskProductManagement, IntentType: intent.IntentGetProduct, Score: 3.2, Source: intent.SourceKeywords}
	got, trusted := classifier.Gate(weak, intent.TaskInventoryManagement, classifier.TrustThreshold)
	if trusted || got.TaskType != intent.TaskInventoryManagement || got.IntentType != intent.IntentGeneral || got.Score != classifier.CoarseScore {
		t.Errorf("Gate(weak) = %+v, %v", got, trusted)
	}

	strong := intent.Result{TaskType: intent.TaskOrderManagement, IntentType: intent.IntentGetOrder, Score: 20, Source: intent.SourcePattern}
	if got, trusted := classifier.Gate(strong, intent.TaskGeneral, classifier.TrustThreshold); !trusted || got != strong {
		t.Errorf("Gate(strong) = %+v, %v", got, trusted)
	}

	// Exactly at the threshold is not trusted.
	edge := intent.Result{TaskType: intent.TaskOrderManagement, IntentType: intent.IntentGetOrders, Score: 15, Source: intent.SourceKeywords}
	if _, trusted := classifier.Gate(edge, intent.TaskOrderManagement, classifier.TrustThreshold); trusted {
		t.Error("score equal to threshold must not be trusted")
	}

	greeting := intent.Result{TaskType: intent.TaskGeneral, IntentType: intent.IntentGreeting, Score: 10, Source: intent.SourceGreeting}
	if got, trusted := classifier.Gate(greeting, intent.TaskGeneral, classifier.TrustThreshold); !trusted || got != greeting {
		t.Errorf("Gate(greeting) = %+v, %v", got, trusted)
	}
}

func TestClassify_Properties(t *testing.T) {
	c := newClassifier(t, nil)

	t.Run("short text is a greeting", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			text := rapid.StringMatching(`\s{0,3}[a-z0-9#]{1,5}\s{0,3}`).Draw(rt, "text")
			got := c.Classify(text, "")
			if got.IntentType != intent.IntentGreeting || got.Score != classifier.GreetingScore {
				rt.Fatalf("Classify(%q) = %+v, want greeting", text, got)
			}
		})
	})

	t.Run("greeting phrase wins", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			tail := rapid.StringMatching(`[a-z ]{0,30}`).Draw(rt, "tail")
			text := "hello " + tail
			got := c.Classify(text, "")
			if got.TaskType != intent.TaskGeneral || got.IntentType != intent.IntentGreeting {
				rt.Fatalf("Classify(%q) = %+v, want greeting", text, got)
			}
		})
	})

	t.Run("deterministic", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			text := rapid.StringMatching(`[a-z ]{0,40}`).Draw(rt, "text")
			a, b := c.Classify(text, ""), c.Classify(text, "")
			if a != b {
				rt.Fatalf("Classify(%q) not deterministic: %+v != %+v", text, a, b)
			}
			if a.Score < 0 {
				rt.Fatalf("negative score %v", a.Score)
			}
		})
	})
}

func TestIsGreeting(t *testing.T) {
	greetings := []string{"hello", "hi", "good morning", "שלום", "היי", "בוקר טוב"}
	tests := []struct {
		text string
		want bool
	}{
		{"hey!", true},
		{"Hi, list the orders please", true},
		{"well GOOD   morning team", true},
		{"שלום לך, מה קורה", true},
		{"ושלום, תמחק מוצר 5", true},
		{"והיי, מה המלאי של מוצר 12", true},
		{"ובוקר טוב לכולם", true},
		{"תשלום עבור הזמנה 5", false},
		{"this is shipping related", false},
		{"", false},
		{strings.Repeat("x", 6), false},
	}
	for _, tt := range tests {
		if got := classifier.IsGreeting(tt.text, greetings); got != tt.want {
			t.Errorf("IsGreeting(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
