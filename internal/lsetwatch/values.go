package lsetwatch

// Template values, http://lebostein.de/lsetwatch/faq_de.html#SV1
const (
	TemplateFreeConfiguration = 0
	TemplateSealed            = 1
	TemplateWishlist          = 2
	TemplateSold              = 3
	TemplateGifted            = 4
	TemplateLost              = 5
)

// Status values for the "state" column, http://lebostein.de/lsetwatch/faq_de.html#SV3
const (
	StatusUnspecified       = 0
	StatusSealed            = 1
	StatusOpened            = 2
	StatusInProgress        = 3
	StatusAssembled         = 4
	StatusPartsAsSet        = 5
	StatusPartsMixed        = 6
	StatusPartsForSale      = 7
	StatusArchived          = 8
	StatusLent              = 9
	StatusSold              = 10
	StatusGifted            = 11
	StatusLost              = 12
)

// Condition values for "purc_condition" and "sell_condition",
// http://lebostein.de/lsetwatch/faq_de.html#SV2
const (
	ConditionUnspecified    = 0
	ConditionSealed         = 1
	ConditionNewComplete    = 2
	ConditionNewIncomplete  = 3
	ConditionUsedComplete   = 4
	ConditionUsedIncomplete = 5
)

// Inventory values for "completeness", http://lebostein.de/lsetwatch/faq_de.html#SV4
const (
	InventoryUnspecified   = 0
	InventoryComplete      = 1
	InventoryIncomplete    = 2
	InventoryNoMinifigs    = 3
	InventoryOnlyMinifigs  = 4
)

// Accessory values for "packaging" and "instructions",
// http://lebostein.de/lsetwatch/faq_de.html#SV5
const (
	AccessoryMissing         = 0
	AccessoryLikeNew         = 1
	AccessoryNormalWear      = 2
	AccessorySlightlyDamaged = 3
	AccessoryDamaged         = 4
	AccessoryIncomplete      = 5
)

// CashbackType values for "cashback_type".
const (
	CashbackPercent  = 0
	CashbackCurrency = 1
	CashbackPayback  = 2
)
