// internal/display/display.go

// Package display derives UI-facing facts from raw catalog records: stock
// availability and labels, discount percentages, and review aggregates.
// Every function is total; a nil or absent optional field means "absent",
// never zero.
package display

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/sanatevi/storefront-api/internal/models"
)

const lowStockThreshold = 5

// Availability reports whether a product can be purchased. Missing or
// untracked inventory counts as available.
func Availability(inv *models.Inventory) bool {
	if inv == nil || !inv.TrackQuantity {
		return true
	}
	return inv.Quantity > 0 || inv.AllowBackorder
}

// StockLabel returns the tiered stock message for an inventory record.
func StockLabel(inv *models.Inventory) string {
	if inv == nil || !inv.TrackQuantity {
		return "in stock"
	}
	switch {
	case inv.Quantity > lowStockThreshold:
		return "in stock"
	case inv.Quantity >= 1:
		return fmt.Sprintf("low stock: %d left", inv.Quantity)
	case inv.AllowBackorder:
		return "orderable"
	default:
		return "out of stock"
	}
}

// DiscountPercentage returns the rounded percentage saved against the
// compare-at price, or 0 when no discount applies. A compare price at or
// below the selling price yields 0 rather than a negative discount.
func DiscountPercentage(price decimal.Decimal, comparePrice decimal.NullDecimal) int {
	if !comparePrice.Valid || comparePrice.Decimal.LessThanOrEqual(price) {
		return 0
	}
	percent := comparePrice.Decimal.
		Sub(price).
		Div(comparePrice.Decimal).
		Mul(decimal.NewFromInt(100))
	return int(percent.Round(0).IntPart())
}

// AverageRating returns the arithmetic mean of the given ratings, 0 for an
// empty set. Callers are expected to pass already-approved reviews.
func AverageRating(reviews []models.ProductReview) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	return float64(sum) / float64(len(reviews))
}

type RatingBucket struct {
	Rating     int     `json:"rating"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// RatingDistribution buckets reviews by rating, 5 down to 1. Percentages
// are 0 when there are no reviews. Ratings outside 1..5 are ignored.
func RatingDistribution(reviews []models.ProductReview) []RatingBucket {
	counts := make(map[int]int, 5)
	total := 0
	for _, review := range reviews {
		if review.Rating < 1 || review.Rating > 5 {
			continue
		}
		counts[review.Rating]++
		total++
	}

	buckets := make([]RatingBucket, 0, 5)
	for rating := 5; rating >= 1; rating-- {
		bucket := RatingBucket{Rating: rating, Count: counts[rating]}
		if total > 0 {
			bucket.Percentage = math.Round(float64(bucket.Count)/float64(total)*100*10) / 10
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// Summary carries the derived facts every rendering surface needs for a
// product card or detail page.
type Summary struct {
	Available       bool    `json:"available"`
	StockLabel      string  `json:"stock_label"`
	DiscountPercent int     `json:"discount_percent"`
	AverageRating   float64 `json:"average_rating"`
	ReviewCount     int     `json:"review_count"`
}

// Summarize derives the display summary for a product from whatever
// relations happen to be loaded. Missing relations degrade to their
// absent-case defaults.
func Summarize(p *models.Product) Summary {
	if p == nil {
		return Summary{Available: true, StockLabel: "in stock"}
	}
	return Summary{
		Available:       Availability(p.Inventory),
		StockLabel:      StockLabel(p.Inventory),
		DiscountPercent: DiscountPercentage(p.Price, p.ComparePrice),
		AverageRating:   AverageRating(p.Reviews),
		ReviewCount:     len(p.Reviews),
	}
}
