package cartControllers

import (
	"fmt"
	"strings"
	"testing"

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
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()
	p := models.Product{Name: "Silk Saree", Price: 1199.0, Stock: 10, IsActive: true,
		Sizes: []string{"S", "M", "L"}, Colors: []string{"Red", "Blue"}}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func TestAddItemMergesVariantKey(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db)

	if _, err := AddItem(db, 1, product.ID, 1, "M", "Red"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := AddItem(db, 1, product.ID, 1, "M", "Red"); err != nil {
		t.Fatalf("second add: %v", err)
	}

	// Same (user, product, size, color) key: one row, quantity 2
	var items []models.CartItem
	if err := db.Where("user_id = ?", 1).Find(&items).Error; err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 cart entry, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestAddItemDistinctVariants(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db)

	if _, err := AddItem(db, 1, product.ID, 1, "M", "Red"); err != nil {
		t.Fatalf("add M/Red: %v", err)
	}
	if _, err := AddItem(db, 1, product.ID, 1, "L", "Red"); err != nil {
		t.Fatalf("add L/Red: %v", err)
	}

	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", 1).Count(&count)
	if count != 2 {
		t.Fatalf("expected 2 cart entries for distinct variants, got %d", count)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	db := newTestDB(t)

	if _, err := AddItem(db, 1, 999, 1, "M", "Red"); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestAddItemQuantityFloor(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db)

	item, err := AddItem(db, 1, product.ID, 0, "M", "Red")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item.Quantity != 1 {
		t.Fatalf("expected quantity floored to 1, got %d", item.Quantity)
	}
}

func TestSetQuantity(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db)

	item, err := AddItem(db, 1, product.ID, 2, "M", "Red")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	t.Run("positive quantity updates", func(t *testing.T) {
		if err := SetQuantity(db, &item, 5); err != nil {
			t.Fatalf("SetQuantity: %v", err)
		}
		var reloaded models.CartItem
		db.First(&reloaded, item.ID)
		if reloaded.Quantity != 5 {
			t.Fatalf("expected quantity 5, got %d", reloaded.Quantity)
		}
	})

	t.Run("zero quantity deletes", func(t *testing.T) {
		if err := SetQuantity(db, &item, 0); err != nil {
			t.Fatalf("SetQuantity: %v", err)
		}
		var count int64
		db.Model(&models.CartItem{}).Where("id = ?", item.ID).Count(&count)
		if count != 0 {
			t.Fatal("expected entry to be deleted")
		}
	})
}
