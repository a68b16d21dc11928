package extractor

import (
	"regexp"

	"intent-engine/internal/intent"
)

var featuredRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bfeatured` + labelSep + `(\S+)`),
	regexp.MustCompile(`(?:מומלץ|מוצג)` + labelSep + `(\S+)`),
}

var featuredStep = textStep("featured", featuredRes, nil)

func pair(t intent.TaskType, i intent.IntentType) intent.Pair {
	return intent.Pair{Task: t, Intent: i}
}

// cascades lists, per intent, the steps in priority order. Identifiers run
// first so their digits are consumed before amount and quantity scans.
var cascades = map[intent.Pair][]step{
	pair(intent.TaskProductManagement, intent.IntentCreateProduct): {
		skuStep, priceStep, stockStep, productNameStep, productLeadName,
		descriptionStep, categoriesStep, statusStep(productStatuses, false), featuredStep,
	},
	pair(intent.TaskProductManagement, intent.IntentUpdateProduct): {
		idStep(productEntity, true), skuStep, priceStep, stockStep, productNameStep,
		descriptionStep, statusStep(productStatuses, false), featuredStep,
	},
	pair(intent.TaskProductManagement, intent.IntentDeleteProduct): {
		idStep(productEntity, true), productNameStep, productLeadName,
	},
	pair(intent.TaskProductManagement, intent.IntentGetProduct): {
		idStep(productEntity, true), skuStep, productNameStep, productLeadName,
	},
	pair(intent.TaskProductManagement, intent.IntentSearchProducts): {
		amountRangeStep, categoriesStep, queryStep,
	},
	pair(intent.TaskProductManagement, intent.IntentListProducts): {
		limitStep, categoriesStep, statusStep(productStatuses, false),
	},

	pair(intent.TaskOrderManagement, intent.IntentUpdateOrderStatus): {
		idStep(orderEntity, true), statusStep(orderStatuses, true),
	},
	pair(intent.TaskOrderManagement, intent.IntentCancelOrder): {
		idStep(orderEntity, true), reasonStep,
	},
	pair(intent.TaskOrderManagement, intent.IntentRefundOrder): {
		idStep(orderEntity, true), plainAmountStep, reasonStep,
	},
	pair(intent.TaskOrderManagement, intent.IntentGetOrder): {
		idStep(orderEntity, true),
	},
	pair(intent.TaskOrderManagement, intent.IntentGetOrders): {
		dateRangeStep, limitStep, amountRangeStep, statusStep(orderStatuses, false),
	},

	pair(intent.TaskCustomerManagement, intent.IntentCreateCustomer): {
		emailStep, phoneStep, customerNameStep,
	},
	pair(intent.TaskCustomerManagement, intent.IntentUpdateCustomer): {
		idStep(customerEntity, true), emailStep, phoneStep, customerNameStep,
	},
	pair(intent.TaskCustomerManagement, intent.IntentGetCustomer): {
		idStep(customerEntity, true), emailStep,
	},
	pair(intent.TaskCustomerManagement, intent.IntentGetCustomers): {
		dateRangeStep, limitStep,
	},

	pair(intent.TaskCategoryManagement, intent.IntentCreateCategory): {
		descriptionStep, categoryNameStep, categoryLeadName,
	},
	pair(intent.TaskCategoryManagement, intent.IntentUpdateCategory): {
		idStep(categoryEntity, true), categoryNameStep, descriptionStep,
	},
	pair(intent.TaskCategoryManagement, intent.IntentDeleteCategory): {
		idStep(categoryEntity, true), categoryNameStep, categoryLeadName,
	},
	pair(intent.TaskCategoryManagement, intent.IntentListCategories): {
		limitStep,
	},

	pair(intent.TaskInventoryManagement, intent.IntentUpdateStock): {
		idStep(productEntity, true), skuStep, stockStep,
	},
	pair(intent.TaskInventoryManagement, intent.IntentCheckStock): {
		idStep(productEntity, true), skuStep, productNameStep, stockLeadName,
	},
	pair(intent.TaskInventoryManagement, intent.IntentLowStock): {
		lowStockStep, limitStep,
	},

	pair(intent.TaskSalesAnalytics, intent.IntentSalesReport): {
		dateRangeStep,
	},
	pair(intent.TaskSalesAnalytics, intent.IntentTopProducts): {
		dateRangeStep, limitStep,
	},
}

// taskFallback serves pairs without their own cascade, typically
// (task, general) after the trust gate fell back to the coarse task.
var taskFallback = map[intent.TaskType][]step{
	intent.TaskProductManagement:   {idStep(productEntity, false), skuStep},
	intent.TaskOrderManagement:     {idStep(orderEntity, true), dateRangeStep, statusStep(orderStatuses, false)},
	intent.TaskCustomerManagement:  {idStep(customerEntity, false), emailStep},
	intent.TaskCategoryManagement:  {idStep(categoryEntity, false)},
	intent.TaskInventoryManagement: {idStep(productEntity, false), skuStep, stockStep},
	intent.TaskSalesAnalytics:      {dateRangeStep},
}
