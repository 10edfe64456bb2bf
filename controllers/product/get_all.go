package productcontroller

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vishwaM3/AV-brands-website/middleware"
	"github.com/vishwaM3/AV-brands-website/models"
	"gorm.io/gorm"
)

// ListOptions are the shop page filters
type ListOptions struct {
	CategoryID   uint
	CategorySlug string
	MinPrice     *float64
	MaxPrice     *float64
	Size         string
	Color        string
	Search       string
	Lang         string
	Sort         string // newest (default), price_low, price_high, name
}

// ListProducts composes the catalog query for the shop page.
func ListProducts(db *gorm.DB, opts ListOptions) ([]models.Product, error) {
	query := db.Where("is_active = ?", true)

	if opts.CategorySlug != "" {
		var cat models.Category
		if err := db.Where("slug = ?", opts.CategorySlug).First(&cat).Error; err == nil {
			query = query.Where("category_id = ?", cat.ID)
		}
	} else if opts.CategoryID != 0 {
		query = query.Where("category_id = ?", opts.CategoryID)
	}

	// Price bounds apply to the discount price only, so a price-bounded
	// query drops products that have no discount price at all.
	if opts.MinPrice != nil {
		query = query.Where("discount_price IS NOT NULL AND discount_price >= ?", *opts.MinPrice)
	}
	if opts.MaxPrice != nil {
		query = query.Where("discount_price IS NOT NULL AND discount_price <= ?", *opts.MaxPrice)
	}

	if opts.Search != "" {
		pattern := "%" + strings.ToLower(opts.Search) + "%"
		if opts.Lang == "kn" {
			query = query.Where("LOWER(name_kannada) LIKE ?", pattern)
		} else {
			query = query.Where("LOWER(name) LIKE ?", pattern)
		}
	}

	switch opts.Sort {
	case "price_low":
		query = query.Order("discount_price ASC NULLS FIRST").Order("price ASC")
	case "price_high":
		query = query.Order("discount_price DESC NULLS LAST").Order("price DESC")
	case "name":
		query = query.Order("name ASC")
	default:
		query = query.Order("created_at DESC")
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}

	// Sizes and colors live in serialized list columns, so variant filters
	// run in memory after the query.
	if opts.Size != "" || opts.Color != "" {
		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			if opts.Size != "" && !p.HasSize(opts.Size) {
				continue
			}
			if opts.Color != "" && !p.HasColor(opts.Color) {
				continue
			}
			filtered = append(filtered, p)
		}
		products = filtered
	}

	return products, nil
}

// GET /shop and /shop/:slug
func Shop(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := ListOptions{
			CategorySlug: c.Param("slug"),
			Size:         c.Query("size"),
			Color:        c.Query("color"),
			Search:       c.Query("q"),
			Sort:         c.DefaultQuery("sort", "newest"),
			Lang:         middleware.Lang(c),
		}

		if v := c.Query("category"); v != "" {
			id, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
				return
			}
			opts.CategoryID = uint(id)
		}
		if v := c.Query("min_price"); v != "" {
			mp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			opts.MinPrice = &mp
		}
		if v := c.Query("max_price"); v != "" {
			mp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			opts.MaxPrice = &mp
		}

		products, err := ListProducts(db, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		var categories []models.Category
		if err := db.Where("is_active = ?", true).Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		sizes, colors, err := variantSets(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch filters"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products":   products,
			"categories": categories,
			"all_sizes":  sizes,
			"all_colors": colors,
		})
	}
}

// variantSets collects the distinct sizes and colors across active products
// for the shop filter sidebar.
func variantSets(db *gorm.DB) ([]string, []string, error) {
	var products []models.Product
	if err := db.Where("is_active = ?", true).Find(&products).Error; err != nil {
		return nil, nil, err
	}

	sizeSet := make(map[string]bool)
	colorSet := make(map[string]bool)
	for _, p := range products {
		for _, s := range p.Sizes {
			sizeSet[s] = true
		}
		for _, col := range p.Colors {
			colorSet[col] = true
		}
	}

	sizes := make([]string, 0, len(sizeSet))
	for s := range sizeSet {
		sizes = append(sizes, s)
	}
	colors := make([]string, 0, len(colorSet))
	for col := range colorSet {
		colors = append(colors, col)
	}
	sort.Strings(sizes)
	sort.Strings(colors)
	return sizes, colors, nil
}
