package orderControllers

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
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{Username: "asha", Email: "asha@example.com", Phone: "9876543210"}
	if err := user.SetPassword("secret123"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, discount *float64, stock int) models.Product {
	t.Helper()
	p := models.Product{Name: name, Price: price, DiscountPrice: discount, Stock: stock, IsActive: true}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func shippingForm() CheckoutRequest {
	return CheckoutRequest{
		ShippingName:    "Asha",
		ShippingPhone:   "9876543210",
		ShippingAddress: "12 MG Road",
		ShippingCity:    "Bengaluru",
		ShippingState:   "Karnataka",
		ShippingPincode: "560001",
		PaymentMethod:   "cod",
	}
}

func TestPlaceOrder(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)

	dpA := 1199.0
	productA := seedProduct(t, db, "Silk Saree", 1499.0, &dpA, 10)
	productB := seedProduct(t, db, "Cotton Kurta", 599.0, nil, 5)

	mustAdd := func(p models.Product, qty int, size string) {
		item := models.CartItem{UserID: user.ID, ProductID: p.ID, Quantity: qty, Size: size}
		if err := db.Create(&item).Error; err != nil {
			t.Fatalf("seed cart item: %v", err)
		}
	}
	mustAdd(productA, 2, "M")
	mustAdd(productB, 1, "L")

	order, err := PlaceOrder(db, user.ID, shippingForm())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if order.TotalAmount != 2997.0 {
		t.Fatalf("expected total 2997.00, got %v", order.TotalAmount)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}
	if order.Status != models.OrderStatusPending || order.PaymentStatus != models.PaymentStatusPending {
		t.Fatalf("expected pending statuses, got %s/%s", order.Status, order.PaymentStatus)
	}
	if !strings.HasPrefix(order.OrderNumber, "AV") ||
		!strings.HasSuffix(order.OrderNumber, fmt.Sprint(user.ID)) {
		t.Fatalf("unexpected order number %q", order.OrderNumber)
	}

	// Item total must match the order total
	var sum float64
	for i := range order.Items {
		sum += order.Items[i].Total()
	}
	if sum != order.TotalAmount {
		t.Fatalf("item totals %v != order total %v", sum, order.TotalAmount)
	}

	// Stock drops by the ordered quantities
	var a, b models.Product
	db.First(&a, productA.ID)
	db.First(&b, productB.ID)
	if a.Stock != 8 || b.Stock != 4 {
		t.Fatalf("expected stock 8/4, got %d/%d", a.Stock, b.Stock)
	}

	// Cart is emptied
	var remaining int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&remaining)
	if remaining != 0 {
		t.Fatalf("expected empty cart, found %d items", remaining)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)

	if _, err := PlaceOrder(db, user.ID, shippingForm()); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	if orders != 0 {
		t.Fatalf("expected no orders, found %d", orders)
	}
}

func TestPlaceOrderFreezesPrices(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "Linen Shirt", 100.0, nil, 10)

	item := models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed cart item: %v", err)
	}

	order, err := PlaceOrder(db, user.ID, shippingForm())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	// Catalog price changes after checkout must not touch the order
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("price", 250.0).Error; err != nil {
		t.Fatalf("reprice product: %v", err)
	}

	var reloaded models.Order
	if err := db.Preload("Items").First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if reloaded.TotalAmount != 100.0 {
		t.Fatalf("expected frozen total 100.00, got %v", reloaded.TotalAmount)
	}
	if len(reloaded.Items) != 1 || reloaded.Items[0].Price != 100.0 {
		t.Fatalf("expected frozen item price 100.00, got %+v", reloaded.Items)
	}
}

func TestPlaceOrderUsesPriceAtCheckoutTime(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "Kurti", 100.0, nil, 10)

	item := models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed cart item: %v", err)
	}

	// Discount introduced after add-to-cart but before checkout
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("discount_price", 80.0).Error; err != nil {
		t.Fatalf("discount product: %v", err)
	}

	order, err := PlaceOrder(db, user.ID, shippingForm())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if order.TotalAmount != 80.0 {
		t.Fatalf("expected checkout-time price 80.00, got %v", order.TotalAmount)
	}
}

func TestPlaceOrderInsufficientStockStillOrders(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "Dupatta", 250.0, nil, 1)

	item := models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 3}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed cart item: %v", err)
	}

	order, err := PlaceOrder(db, user.ID, shippingForm())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	// The item is ordered in full, the decrement is skipped
	if len(order.Items) != 1 || order.Items[0].Quantity != 3 {
		t.Fatalf("expected the short item to be ordered, got %+v", order.Items)
	}
	if order.TotalAmount != 750.0 {
		t.Fatalf("expected total 750.00, got %v", order.TotalAmount)
	}

	var reloaded models.Product
	db.First(&reloaded, product.ID)
	if reloaded.Stock != 1 {
		t.Fatalf("expected stock untouched at 1, got %d", reloaded.Stock)
	}
}

func TestMapOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
		if _, err := mapOrderStatus(valid); err != nil {
			t.Fatalf("expected %q to be accepted: %v", valid, err)
		}
	}
	if _, err := mapOrderStatus("ready_to_ship"); err == nil {
		t.Fatal("expected unknown status to be rejected")
	}
}
