package productcontroller

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/vishwaM3/AV-brands-website/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, p *models.Product) {
	t.Helper()
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create product %q: %v", p.Name, err)
	}
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestListProductsHidesInactive(t *testing.T) {
	db := newTestDB(t)
	mustCreate(t, db, &models.Product{Name: "Visible", Price: 100, IsActive: true})
	mustCreate(t, db, &models.Product{Name: "Hidden", Price: 100, IsActive: false})

	products, err := ListProducts(db, ListOptions{})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Visible" {
		t.Fatalf("expected only the active product, got %v", names(products))
	}
}

func TestListProductsPriceRange(t *testing.T) {
	db := newTestDB(t)
	dpLow, dpHigh := 400.0, 1500.0
	mustCreate(t, db, &models.Product{Name: "Discounted Low", Price: 500, DiscountPrice: &dpLow, IsActive: true})
	mustCreate(t, db, &models.Product{Name: "Discounted High", Price: 2000, DiscountPrice: &dpHigh, IsActive: true})
	mustCreate(t, db, &models.Product{Name: "Full Price", Price: 450, IsActive: true})

	min, max := 300.0, 1000.0
	products, err := ListProducts(db, ListOptions{MinPrice: &min, MaxPrice: &max})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}

	// The bounds match against the discount price column, so the
	// never-discounted product falls out even though its base price fits.
	if len(products) != 1 || products[0].Name != "Discounted Low" {
		t.Fatalf("expected only the discounted product in range, got %v", names(products))
	}
}

func TestListProductsSort(t *testing.T) {
	db := newTestDB(t)
	dp := 300.0

	older := models.Product{Name: "Banarasi", Price: 900, IsActive: true}
	mustCreate(t, db, &older)
	db.Model(&older).Update("created_at", time.Now().Add(-time.Hour))
	mustCreate(t, db, &models.Product{Name: "Anarkali", Price: 500, DiscountPrice: &dp, IsActive: true})

	t.Run("default is newest first", func(t *testing.T) {
		products, err := ListProducts(db, ListOptions{})
		if err != nil {
			t.Fatalf("ListProducts: %v", err)
		}
		if got := names(products); got[0] != "Anarkali" || got[1] != "Banarasi" {
			t.Fatalf("expected newest first, got %v", got)
		}
	})

	t.Run("price_low puts undiscounted rows first", func(t *testing.T) {
		products, err := ListProducts(db, ListOptions{Sort: "price_low"})
		if err != nil {
			t.Fatalf("ListProducts: %v", err)
		}
		if got := names(products); got[0] != "Banarasi" {
			t.Fatalf("expected NULL discount sorted first, got %v", got)
		}
	})

	t.Run("name sorts alphabetically", func(t *testing.T) {
		products, err := ListProducts(db, ListOptions{Sort: "name"})
		if err != nil {
			t.Fatalf("ListProducts: %v", err)
		}
		if got := names(products); got[0] != "Anarkali" || got[1] != "Banarasi" {
			t.Fatalf("expected alphabetical order, got %v", got)
		}
	})
}

func TestListProductsVariantFilter(t *testing.T) {
	db := newTestDB(t)
	mustCreate(t, db, &models.Product{Name: "Saree", Price: 900, IsActive: true,
		Sizes: []string{"S", "M"}, Colors: []string{"Red"}})
	mustCreate(t, db, &models.Product{Name: "Kurta", Price: 600, IsActive: true,
		Sizes: []string{"L", "XL"}, Colors: []string{"Red", "Blue"}})

	products, err := ListProducts(db, ListOptions{Size: "M"})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Saree" {
		t.Fatalf("expected size filter to keep only the Saree, got %v", names(products))
	}

	products, err = ListProducts(db, ListOptions{Size: "L", Color: "Blue"})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Kurta" {
		t.Fatalf("expected combined variant filter to keep only the Kurta, got %v", names(products))
	}
}

func TestListProductsSearch(t *testing.T) {
	db := newTestDB(t)
	mustCreate(t, db, &models.Product{Name: "Silk Saree", NameKannada: "ರೇಷ್ಮೆ ಸೀರೆ", Price: 900, IsActive: true})
	mustCreate(t, db, &models.Product{Name: "Cotton Kurta", Price: 600, IsActive: true})

	t.Run("case-insensitive substring", func(t *testing.T) {
		products, err := ListProducts(db, ListOptions{Search: "SAREE"})
		if err != nil {
			t.Fatalf("ListProducts: %v", err)
		}
		if len(products) != 1 || products[0].Name != "Silk Saree" {
			t.Fatalf("expected a case-insensitive match, got %v", names(products))
		}
	})

	t.Run("kannada searches the kannada column", func(t *testing.T) {
		products, err := ListProducts(db, ListOptions{Search: "ರೇಷ್ಮೆ", Lang: "kn"})
		if err != nil {
			t.Fatalf("ListProducts: %v", err)
		}
		if len(products) != 1 || products[0].Name != "Silk Saree" {
			t.Fatalf("expected a Kannada-name match, got %v", names(products))
		}
	})
}

func TestListProductsCategorySlug(t *testing.T) {
	db := newTestDB(t)
	cat := models.Category{Name: "Sarees", Slug: "sarees", IsActive: true}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	mustCreate(t, db, &models.Product{Name: "Silk Saree", Price: 900, CategoryID: cat.ID, IsActive: true})
	mustCreate(t, db, &models.Product{Name: "Cotton Kurta", Price: 600, IsActive: true})

	products, err := ListProducts(db, ListOptions{CategorySlug: "sarees"})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Silk Saree" {
		t.Fatalf("expected only products in the category, got %v", names(products))
	}

	// Unknown slug falls back to the unfiltered catalog
	products, err = ListProducts(db, ListOptions{CategorySlug: "no-such-category"})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected unknown slug to list everything, got %v", names(products))
	}
}
