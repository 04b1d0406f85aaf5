package enums

import "fmt"

// ItemCategory represents the canonical inventory categories.
type ItemCategory string

const (
	ItemCategoryElectronics    ItemCategory = "Electronics"
	ItemCategoryBooks          ItemCategory = "Books"
	ItemCategoryClothing       ItemCategory = "Clothing"
	ItemCategoryHomeGoods      ItemCategory = "Home Goods"
	ItemCategoryFood           ItemCategory = "Food"
	ItemCategoryOfficeSupplies ItemCategory = "Office Supplies"
	ItemCategoryHardware       ItemCategory = "Hardware"
	ItemCategoryMedical        ItemCategory = "Medical"
	ItemCategoryAutomotive     ItemCategory = "Automotive"
	ItemCategoryOther          ItemCategory = "Other"
)

var validItemCategories = []ItemCategory{
	ItemCategoryElectronics,
	ItemCategoryBooks,
	ItemCategoryClothing,
	ItemCategoryHomeGoods,
	ItemCategoryFood,
	ItemCategoryOfficeSupplies,
	ItemCategoryHardware,
	ItemCategoryMedical,
	ItemCategoryAutomotive,
	ItemCategoryOther,
}

// ItemCategories returns the canonical category list in display order.
func ItemCategories() []ItemCategory {
	out := make([]ItemCategory, len(validItemCategories))
	copy(out, validItemCategories)
	return out
}

// String implements fmt.Stringer.
func (c ItemCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ItemCategory.
func (c ItemCategory) IsValid() bool {
	for _, candidate := range validItemCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseItemCategory converts raw input into an ItemCategory.
func ParseItemCategory(value string) (ItemCategory, error) {
	for _, candidate := range validItemCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item category %q", value)
}
