package services

import (
	"errors"
	"testing"
)

func TestProductBySKU(t *testing.T) {
	premium, err := ProductBySKU(ProductPremiumLifetime)
	if err != nil {
		t.Fatalf("ProductBySKU() unexpected error: %v", err)
	}
	if !premium.GrantsPremium || premium.Tokens != 0 {
		t.Fatalf("premium SKU misconfigured: %+v", premium)
	}

	small, err := ProductBySKU(ProductTokensSmall)
	if err != nil {
		t.Fatalf("ProductBySKU() unexpected error: %v", err)
	}
	if small.Tokens != 5 || small.GrantsPremium {
		t.Fatalf("small token pack misconfigured: %+v", small)
	}

	if _, err := ProductBySKU("golden_ticket"); !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}
}

func TestProductPricesArePositive(t *testing.T) {
	for sku, product := range products {
		if product.AmountKopecks <= 0 {
			t.Fatalf("product %s has non-positive price %d", sku, product.AmountKopecks)
		}
		if product.SKU != sku {
			t.Fatalf("product %s carries mismatched SKU %q", sku, product.SKU)
		}
	}
}
