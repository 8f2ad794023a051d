package validate

// Validation error codes. Each code is bound to exactly one rule.
const (
	// CodePriceRequired fires when the variant has no price.
	CodePriceRequired = 100
	// CodeCostRequired fires when the variant has no unit cost amount.
	CodeCostRequired = 101
	// CodeVendorRequired fires when the product has no vendor.
	CodeVendorRequired = 102
	// CodeTitleRequired fires when the product has no title.
	CodeTitleRequired = 103
	// CodeNameReservedPrefix fires when the generated name starts with "_",
	// the prefix reserved for inactivated items during reconciliation.
	CodeNameReservedPrefix = 104
	// CodeNameTooLong fires when the generated name exceeds the 100
	// character ceiling of the accounting item-name field.
	CodeNameTooLong = 105
	// CodeNameDuplicate fires when an earlier variant in the batch already
	// produced the same generated name.
	CodeNameDuplicate = 106
	// CodeSkuRequired fires when the variant has no SKU.
	CodeSkuRequired = 107
	// CodeSkuDuplicate fires when an earlier variant already used the SKU.
	CodeSkuDuplicate = 108
	// CodeBarcodeRequired fires when the variant has no barcode.
	CodeBarcodeRequired = 109
	// CodeBarcodeDuplicate fires when an earlier variant already used the
	// barcode.
	CodeBarcodeDuplicate = 110
)

// MaxNameLength is the item-name length ceiling imposed by the accounting
// platform.
const MaxNameLength = 100
