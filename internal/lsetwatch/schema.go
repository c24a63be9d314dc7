// Package lsetwatch declares the column layout of the Lsetwatch
// import/export format, documented at
// http://lebostein.de/lsetwatch/faq_de.html#IEM.
//
// Only the field names and their codec kinds live here. The codec does not
// validate domain values (set numbers, enum ranges, referenced documents);
// that belongs to the application consuming the records.
package lsetwatch

import "github.com/fkleon/lsetwatch-csv/internal/record"

// Schema returns the 42-column row layout, in file order.
func Schema() record.Schema {
	return record.Schema{
		{Name: "last_edit", Kind: record.KindTimestamp},      // last modification, unix seconds
		{Name: "number", Kind: record.KindString},            // set number without version
		{Name: "version", Kind: record.KindString},           // set version
		{Name: "marker", Kind: record.KindInteger},           // icon number, 0..31
		{Name: "color", Kind: record.KindString},             // hex color code, e.g. #cc0022
		{Name: "template", Kind: record.KindInteger},         // see Template values
		{Name: "mygroup", Kind: record.KindEscaped},          // user-defined category
		{Name: "state", Kind: record.KindInteger},            // see Status values
		{Name: "purc_condition", Kind: record.KindInteger},   // see Condition values
		{Name: "purc_platform", Kind: record.KindString},
		{Name: "purc_person", Kind: record.KindString},
		{Name: "purc_date", Kind: record.KindDate},
		{Name: "purc_number", Kind: record.KindString},       // order number
		{Name: "purc_price", Kind: record.KindDecimal},
		{Name: "purc_shipc", Kind: record.KindDecimal},       // shipping costs
		{Name: "purc_costs", Kind: record.KindDecimal},       // additional costs
		{Name: "purc_items", Kind: record.KindInteger},       // sets per purchase, >= 1
		{Name: "sell_condition", Kind: record.KindInteger},
		{Name: "sell_platform", Kind: record.KindString},
		{Name: "sell_person", Kind: record.KindString},
		{Name: "sell_date", Kind: record.KindDate},
		{Name: "sell_number", Kind: record.KindString},       // transaction number
		{Name: "sell_price", Kind: record.KindDecimal},
		{Name: "sell_shipc", Kind: record.KindDecimal},
		{Name: "sell_costs", Kind: record.KindDecimal},
		{Name: "sell_items", Kind: record.KindInteger},
		{Name: "vip_points_get", Kind: record.KindDecimal},
		{Name: "vip_points_sub", Kind: record.KindDecimal},
		{Name: "cashback", Kind: record.KindDecimal},
		{Name: "cashback_type", Kind: record.KindInteger},    // see CashbackType values
		{Name: "location", Kind: record.KindString},          // storage location
		{Name: "addition", Kind: record.KindString},          // extra info
		{Name: "completeness", Kind: record.KindInteger},     // see Inventory values
		{Name: "packaging", Kind: record.KindInteger},        // see Accessory values
		{Name: "instructions", Kind: record.KindInteger},     // see Accessory values
		{Name: "sales_value", Kind: record.KindDecimal},
		{Name: "to_sell", Kind: record.KindInteger},          // 0 = no, 1 = yes
		{Name: "notes", Kind: record.KindEscaped},
		{Name: "mytags", Kind: record.KindList},              // user tags
		{Name: "documents", Kind: record.KindList},           // linked document paths, "/" separated
		{Name: "reminder_date", Kind: record.KindDate},
		{Name: "altern_pieces", Kind: record.KindInteger},    // piece count override
	}
}
