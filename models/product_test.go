package models

import "testing"

func TestFinalPrice(t *testing.T) {
	t.Run("discount set -> discount wins", func(t *testing.T) {
		dp := 999.0
		p := Product{Price: 1199.0, DiscountPrice: &dp}
		if got := p.FinalPrice(); got != 999.0 {
			t.Fatalf("expected 999.00, got %v", got)
		}
	})

	t.Run("no discount -> base price", func(t *testing.T) {
		p := Product{Price: 1199.0}
		if got := p.FinalPrice(); got != 1199.0 {
			t.Fatalf("expected 1199.00, got %v", got)
		}
	})
}

func TestDiscountPercentage(t *testing.T) {
	dp := 75.0
	p := Product{Price: 100.0, DiscountPrice: &dp}
	if got := p.DiscountPercentage(); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}

	p = Product{Price: 100.0}
	if got := p.DiscountPercentage(); got != 0 {
		t.Fatalf("expected 0 without a discount, got %d", got)
	}
}

func TestVariantMembership(t *testing.T) {
	p := Product{Sizes: []string{"S", "M", "L"}, Colors: []string{"Red", "Black"}}

	if !p.HasSize("M") || p.HasSize("XL") {
		t.Fatal("size membership mismatch")
	}
	if !p.HasColor("Red") || p.HasColor("Blue") {
		t.Fatal("color membership mismatch")
	}
}

func TestLocalizedName(t *testing.T) {
	p := Product{Name: "Silk Saree", NameKannada: "ರೇಷ್ಮೆ ಸೀರೆ"}

	if got := p.LocalizedName("kn"); got != "ರೇಷ್ಮೆ ಸೀರೆ" {
		t.Fatalf("expected Kannada name, got %q", got)
	}
	if got := p.LocalizedName("en"); got != "Silk Saree" {
		t.Fatalf("expected English name, got %q", got)
	}

	// Kannada requested but not set falls back to English
	p.NameKannada = ""
	if got := p.LocalizedName("kn"); got != "Silk Saree" {
		t.Fatalf("expected fallback to English name, got %q", got)
	}
}
