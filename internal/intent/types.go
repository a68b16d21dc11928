package intent

import (
	"strings"
	"time"
)

// TaskType is the top-level business domain of an utterance.
type TaskType string

const (
	TaskGeneral             TaskType = "general"
	TaskProductManagement   TaskType = "product_management"
	TaskOrderManagement     TaskType = "order_management"
	TaskCustomerManagement  TaskType = "customer_management"
	TaskCategoryManagement  TaskType = "category_management"
	TaskInventoryManagement TaskType = "inventory_management"
	TaskSalesAnalytics      TaskType = "sales_analytics"
)

// TaskTypes lists every known task type in declaration order.
var TaskTypes = []TaskType{
	TaskGeneral,
	TaskProductManagement,
	TaskOrderManagement,
	TaskCustomerManagement,
	TaskCategoryManagement,
	TaskInventoryManagement,
	TaskSalesAnalytics,
}

// Valid reports whether t is one of the known task types.
func (t TaskType) Valid() bool {
	for _, known := range TaskTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t TaskType) String() string { return string(t) }

// IntentType is a specific action within a task type.
type IntentType string

const (
	IntentGreeting IntentType = "greeting"
	IntentHelp     IntentType = "help"
	IntentGeneral  IntentType = "general"

	IntentCreateProduct  IntentType = "create_product"
	IntentUpdateProduct  IntentType = "update_product"
	IntentDeleteProduct  IntentType = "delete_product"
	IntentGetProduct     IntentType = "get_product"
	IntentSearchProducts IntentType = "search_products"
	IntentListProducts   IntentType = "list_products"

	IntentUpdateOrderStatus IntentType = "update_order_status"
	IntentCancelOrder       IntentType = "cancel_order"
	IntentRefundOrder       IntentType = "refund_order"
	IntentGetOrder          IntentType = "get_order"
	IntentGetOrders         IntentType = "get_orders"

	IntentCreateCustomer IntentType = "create_customer"
	IntentUpdateCustomer IntentType = "update_customer"
	IntentGetCustomer    IntentType = "get_customer"
	IntentGetCustomers   IntentType = "get_customers"

	IntentCreateCategory IntentType = "create_category"
	IntentUpdateCategory IntentType = "update_category"
	IntentDeleteCategory IntentType = "delete_category"
	IntentListCategories IntentType = "list_categories"

	IntentUpdateStock IntentType = "update_stock"
	IntentCheckStock  IntentType = "check_stock"
	IntentLowStock    IntentType = "low_stock"

	IntentSalesReport IntentType = "sales_report"
	IntentTopProducts IntentType = "top_products"
)

func (i IntentType) String() string { return string(i) }

// Pair identifies one intent inside the taxonomy.
type Pair struct {
	Task   TaskType   `json:"task_type"`
	Intent IntentType `json:"intent_type"`
}

// NewPair builds a Pair from raw strings, normalizing case and whitespace.
func NewPair(task, intent string) Pair {
	return Pair{
		Task:   TaskType(strings.ToLower(strings.TrimSpace(task))),
		Intent: IntentType(strings.ToLower(strings.TrimSpace(intent))),
	}
}

func (p Pair) String() string { return string(p.Task) + "." + string(p.Intent) }

// Source tells which stage of the classifier produced a Result.
type Source string

const (
	SourceGreeting Source = "greeting"
	SourcePattern  Source = "pattern"
	SourceKeywords Source = "keywords"
	SourceCoarse   Source = "coarse"
	SourceNone     Source = "none"
)

// Result is the output of one classification call. Score is a heuristic
// magnitude, only comparable within a single call.
type Result struct {
	TaskType   TaskType   `json:"task_type"`
	IntentType IntentType `json:"intent_type"`
	Score      float64    `json:"score"`
	Source     Source     `json:"source"`
}

// Pair returns the (task, intent) of the result.
func (r Result) Pair() Pair { return Pair{Task: r.TaskType, Intent: r.IntentType} }

// LearningEvent records one feedback correction.
type LearningEvent struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Predicted Pair      `json:"predicted"`
	Correct   Pair      `json:"correct"`
	Timestamp time.Time `json:"timestamp"`
}

// WasCorrect reports whether the prediction matched the correction.
func (e LearningEvent) WasCorrect() bool { return e.Predicted == e.Correct }

// Example is one labeled utterance used for batch learning.
type Example struct {
	Text   string     `json:"text"`
	Task   TaskType   `json:"task_type"`
	Intent IntentType `json:"intent_type"`
}

// Pair returns the label of the example.
func (e Example) Pair() Pair { return Pair{Task: e.Task, Intent: e.Intent} }

// CorpusMessage is a past utterance together with the intent it was
// resolved to. Used as input for keyword mining.
type CorpusMessage struct {
	ID        string
	Text      string
	Task      TaskType
	Intent    IntentType
	Score     float64
	CreatedAt time.Time
}

// HistoryStats summarizes feedback accuracy over a trailing window.
type HistoryStats struct {
	TotalFeedback      int     `json:"total_feedback"`
	CorrectPredictions int     `json:"correct_predictions"`
	Accuracy           float64 `json:"accuracy"`
	DaysAnalyzed       int     `json:"days_analyzed"`
}

// MiningReport summarizes one keyword mining pass.
type MiningReport struct {
	MessagesScanned int               `json:"messages_scanned"`
	KeywordsAdded   map[Pair][]string `json:"-"`
}

// Total returns how many keywords were added across all intents.
func (r MiningReport) Total() int {
	n := 0
	for _, kws := range r.KeywordsAdded {
		n += len(kws)
	}
	return n
}
