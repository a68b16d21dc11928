package scoring

import (
	"testing"

	"intent-engine/internal/intent"
	"intent-engine/internal/intent/taxonomy"
	"intent-engine/pkg/log"
)

func defaultTasks(t *testing.T) []taxonomy.TaskSpec {
	t.Helper()
	d, err := taxonomy.LoadDefaults()
	if err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	s, err := taxonomy.New(t.Context(), log.NewNop(), taxonomy.Options{Defaults: d})
	if err != nil {
		t.Fatalf("taxonomy.New: %v", err)
	}
	return s.Snapshot().Tasks()
}

func TestMatchPattern(t *testing.T) {
	tasks := defaultTasks(t)

	tests := []struct {
		text string
		want intent.Pair
		ok   bool
	}{
		{"Add a new product called Blue Mug", intent.Pair{Task: intent.TaskProductManagement, Intent: intent.IntentCreateProduct}, true},
		{"  הוסף מוצר חדש  ", intent.Pair{Task: intent.TaskProductManagement, Intent: intent.IntentCreateProduct}, true},
		{"update order 456 status to completed", intent.Pair{Task: intent.TaskOrderManagement, Intent: intent.IntentUpdateOrderStatus}, true},
		{"order number 456", intent.Pair{Task: intent.TaskOrderManagement, Intent: intent.IntentGetOrder}, true},
		{"help", intent.Pair{Task: intent.TaskGeneral, Intent: intent.IntentHelp}, true},
		{"asdkjasd", intent.Pair{}, false},
		{"   ", intent.Pair{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := MatchPattern(tt.text, tasks)
			if ok != tt.ok || got != tt.want {
				t.Errorf("MatchPattern(%q) = %v, %v; want %v, %v", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}
