package extractor_test

import (
	"testing"
	"time"

	"intent-engine/internal/intent"
	"intent-engine/internal/intent/extractor"
	"intent-engine/pkg/datemath"
)

var fixedNow = time.Date(2024, 5, 15, 14, 0, 0, 0, time.UTC)

func newExtractor(t *testing.T) *extractor.Extractor {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return extractor.New(dates, extractor.WithClock(func() time.Time { return fixedNow }))
}

func p(task intent.TaskType, it intent.IntentType) intent.Pair {
	return intent.Pair{Task: task, Intent: it}
}

func TestExtract(t *testing.T) {
	x := newExtractor(t)
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name string
		text string
		pair intent.Pair
		want intent.Params
	}{
		{
			name: "order number",
			text: "order number 456",
			pair: p(intent.TaskOrderManagement, intent.IntentGetOrder),
			want: intent.Params{"order_id": intent.Int(456)},
		},
		{
			name: "bare hash id",
			text: "what's up with #77?",
			pair: p(intent.TaskOrderManagement, intent.IntentGetOrder),
			want: intent.Params{"order_id": intent.Int(77)},
		},
		{
			name: "order status",
			text: "update order 456 status to completed",
			pair: p(intent.TaskOrderManagement, intent.IntentUpdateOrderStatus),
			want: intent.Params{"order_id": intent.Int(456), "status": intent.String("completed")},
		},
		{
			name: "order status synonym",
			text: "mark order #12 as on hold",
			pair: p(intent.TaskOrderManagement, intent.IntentUpdateOrderStatus),
			want: intent.Params{"order_id": intent.Int(12), "status": intent.String("on-hold")},
		},
		{
			name: "unmapped status passes through",
			text: "mark order 12 as shipped",
			pair: p(intent.TaskOrderManagement, intent.IntentUpdateOrderStatus),
			want: intent.Params{"order_id": intent.Int(12), "status": intent.String("shipped")},
		},
		{
			name: "hebrew order status",
			text: "עדכן סטטוס הזמנה 789 למבוטלת",
			pair: p(intent.TaskOrderManagement, intent.IntentUpdateOrderStatus),
			want: intent.Params{"order_id": intent.Int(789), "status": intent.String("cancelled")},
		},
		{
			name: "date range",
			text: "show orders from 2023-01-01 to 2023-01-31",
			pair: p(intent.TaskOrderManagement, intent.IntentGetOrders),
			want: intent.Params{
				"start_date": intent.Time(day(2023, 1, 1)),
				"end_date":   intent.Time(time.Date(2023, 1, 31, 23, 59, 59, 999999000, time.UTC)),
			},
		},
		{
			name: "orders filtered",
			text: "show pending orders over ₪200 from last week",
			pair: p(intent.TaskOrderManagement, intent.IntentGetOrders),
			want: intent.Params{
				"start_date": intent.Time(day(2024, 5, 6)),
				"end_date":   intent.Time(time.Date(2024, 5, 12, 23, 59, 59, 999999000, time.UTC)),
				"period":     intent.String("last_week"),
				"min_amount": intent.Float(200),
				"status":     intent.String("pending"),
			},
		},
		{
			name: "last n orders",
			text: "show the last 5 orders",
			pair: p(intent.TaskOrderManagement, intent.IntentGetOrders),
			want: intent.Params{"limit": intent.Int(5)},
		},
		{
			name: "refund",
			text: "refund order 123 amount 49,90 because it arrived broken",
			pair: p(intent.TaskOrderManagement, intent.IntentRefundOrder),
			want: intent.Params{
				"order_id": intent.Int(123),
				"amount":   intent.Float(49.90),
				"reason":   intent.String("it arrived broken"),
			},
		},
		{
			name: "create product",
			text: "add a new product called Blue Mug for ₪49.90 with 20 units in category Kitchen",
			pair: p(intent.TaskProductManagement, intent.IntentCreateProduct),
			want: intent.Params{
				"name":           intent.String("Blue Mug"),
				"regular_price":  intent.Float(49.90),
				"stock_quantity": intent.Int(20),
				"categories":     intent.List("Kitchen"),
			},
		},
		{
			name: "create product labeled",
			text: "add product\nname: Red Kettle\nprice: 120\nsale price: 99\nsku: RK-1\nfeatured: yes",
			pair: p(intent.TaskProductManagement, intent.IntentCreateProduct),
			want: intent.Params{
				"name":          intent.String("Red Kettle"),
				"regular_price": intent.Float(120),
				"sale_price":    intent.Float(99),
				"sku":           intent.String("RK-1"),
				"featured":      intent.Bool(true),
			},
		},
		{
			name: "update product price",
			text: "change the price of product 12 to 99.5",
			pair: p(intent.TaskProductManagement, intent.IntentUpdateProduct),
			want: intent.Params{"product_id": intent.Int(12), "regular_price": intent.Float(99.5)},
		},
		{
			name: "search products",
			text: "search for mugs under 50",
			pair: p(intent.TaskProductManagement, intent.IntentSearchProducts),
			want: intent.Params{"query": intent.String("mugs"), "max_amount": intent.Float(50)},
		},
		{
			name: "amount range",
			text: "find mugs between 10 and 30",
			pair: p(intent.TaskProductManagement, intent.IntentSearchProducts),
			want: intent.Params{"query": intent.String("mugs"), "min_amount": intent.Float(10), "max_amount": intent.Float(30)},
		},
		{
			name: "create customer",
			text: "add a new customer named John Smith, email john@example.com, phone 050-1234567",
			pair: p(intent.TaskCustomerManagement, intent.IntentCreateCustomer),
			want: intent.Params{
				"first_name": intent.String("John"),
				"last_name":  intent.String("Smith"),
				"email":      intent.String("john@example.com"),
				"phone":      intent.String("050-1234567"),
			},
		},
		{
			name: "create category",
			text: "create a new category Kitchen Tools",
			pair: p(intent.TaskCategoryManagement, intent.IntentCreateCategory),
			want: intent.Params{"category_name": intent.String("Kitchen Tools")},
		},
		{
			name: "rename category",
			text: "rename category 5 to Home Decor",
			pair: p(intent.TaskCategoryManagement, intent.IntentUpdateCategory),
			want: intent.Params{"category_id": intent.Int(5), "category_name": intent.String("Home Decor")},
		},
		{
			name: "update stock",
			text: "set stock of product 12 to 40",
			pair: p(intent.TaskInventoryManagement, intent.IntentUpdateStock),
			want: intent.Params{"product_id": intent.Int(12), "stock_quantity": intent.Int(40)},
		},
		{
			name: "low stock",
			text: "show products with stock below 10",
			pair: p(intent.TaskInventoryManagement, intent.IntentLowStock),
			want: intent.Params{"stock_quantity": intent.Int(10)},
		},
		{
			name: "sales this month hebrew",
			text: "דוח מכירות החודש",
			pair: p(intent.TaskSalesAnalytics, intent.IntentSalesReport),
			want: intent.Params{
				"start_date": intent.Time(day(2024, 5, 1)),
				"end_date":   intent.Time(time.Date(2024, 5, 15, 23, 59, 59, 999999000, time.UTC)),
				"period":     intent.String("this_month"),
			},
		},
		{
			name: "task fallback",
			text: "something about order 31",
			pair: p(intent.TaskOrderManagement, intent.IntentGeneral),
			want: intent.Params{"order_id": intent.Int(31)},
		},
		{
			name: "nothing found",
			text: "asdkjasd",
			pair: p(intent.TaskOrderManagement, intent.IntentGetOrder),
			want: intent.Params{},
		},
		{
			name: "unknown task",
			text: "order 5",
			pair: p("spaceships", "launch"),
			want: intent.Params{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := x.Extract(tt.text, tt.pair, nil)
			if len(got) != len(tt.want) {
				t.Fatalf("Extract(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for k, want := range tt.want {
				v, ok := got[k]
				if !ok {
					t.Errorf("missing key %q in %v", k, got)
					continue
				}
				if !v.Equal(want) {
					t.Errorf("%s = %v (%s), want %v (%s)", k, v, v.Kind(), want, want.Kind())
				}
			}
		})
	}
}

func TestExtract_DeclaredFilter(t *testing.T) {
	x := newExtractor(t)
	got := x.Extract("update order 456 status to completed", p(intent.TaskOrderManagement, intent.IntentUpdateOrderStatus), []string{"order_id"})
	if len(got) != 1 || !got.Has("order_id") {
		t.Errorf("declared filter not applied: %v", got)
	}
}

func TestExtract_SingleDateEndsNow(t *testing.T) {
	x := newExtractor(t)
	got := x.Extract("orders since 01/05/2024", p(intent.TaskOrderManagement, intent.IntentGetOrders), nil)
	if end, ok := got["end_date"].Time(); !ok || !end.Equal(fixedNow) {
		t.Errorf("end_date = %v, want %v", got["end_date"], fixedNow)
	}
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		in   string
		want intent.Value
	}{
		{"42", intent.Int(42)},
		{"-7", intent.Int(-7)},
		{"3,5", intent.Float(3.5)},
		{"3.25", intent.Float(3.25)},
		{"yes", intent.Bool(true)},
		{"כן", intent.Bool(true)},
		{"off", intent.Bool(false)},
		{"לא", intent.Bool(false)},
		{"99999999999999999999", intent.String("99999999999999999999")},
		{"blue", intent.String("blue")},
	}
	for _, tt := range tests {
		if got := extractor.Coerce(tt.in); !got.Equal(tt.want) {
			t.Errorf("Coerce(%q) = %v (%s), want %v", tt.in, got, got.Kind(), tt.want)
		}
	}
}
