package enums

import "testing"

func TestParseUserRole(t *testing.T) {
	role, err := ParseUserRole("admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != UserRoleAdmin {
		t.Fatalf("expected admin, got %s", role)
	}

	if _, err := ParseUserRole("superadmin"); err == nil {
		t.Fatal("expected error for unknown role")
	}
	if UserRole("root").IsValid() {
		t.Fatal("root should not be a valid role")
	}
}

func TestParseItemCategory(t *testing.T) {
	category, err := ParseItemCategory("Home Goods")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category != ItemCategoryHomeGoods {
		t.Fatalf("expected Home Goods, got %s", category)
	}

	if _, err := ParseItemCategory("home goods"); err == nil {
		t.Fatal("category matching is case-sensitive; expected error")
	}
}

func TestItemCategoriesCopy(t *testing.T) {
	cats := ItemCategories()
	if len(cats) != 10 {
		t.Fatalf("expected 10 categories, got %d", len(cats))
	}
	cats[0] = "Mutated"
	if ItemCategories()[0] != ItemCategoryElectronics {
		t.Fatal("ItemCategories must return a copy")
	}
}
