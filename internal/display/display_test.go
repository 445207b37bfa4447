// internal/display/display_test.go
package display

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sanatevi/storefront-api/internal/models"
)

func inventory(quantity int, track, backorder bool) *models.Inventory {
	return &models.Inventory{
		Quantity:       quantity,
		TrackQuantity:  track,
		AllowBackorder: backorder,
	}
}

func TestAvailability(t *testing.T) {
	tests := []struct {
		name string
		inv  *models.Inventory
		want bool
	}{
		{"nil inventory", nil, true},
		{"untracked", inventory(0, false, false), true},
		{"tracked with stock", inventory(3, true, false), true},
		{"tracked empty with backorder", inventory(0, true, true), true},
		{"tracked empty no backorder", inventory(0, true, false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Availability(tt.inv))
		})
	}
}

func TestStockLabel(t *testing.T) {
	tests := []struct {
		name string
		inv  *models.Inventory
		want string
	}{
		{"nil inventory", nil, "in stock"},
		{"untracked", inventory(0, false, false), "in stock"},
		{"above threshold", inventory(6, true, false), "in stock"},
		{"at threshold", inventory(5, true, false), "low stock: 5 left"},
		{"single unit", inventory(1, true, false), "low stock: 1 left"},
		{"empty with backorder", inventory(0, true, true), "orderable"},
		{"empty no backorder", inventory(0, true, false), "out of stock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StockLabel(tt.inv))
		})
	}
}

func TestDiscountPercentage(t *testing.T) {
	null := decimal.NullDecimal{}
	compare := func(v float64) decimal.NullDecimal {
		return decimal.NewNullDecimal(decimal.NewFromFloat(v))
	}

	tests := []struct {
		name    string
		price   float64
		compare decimal.NullDecimal
		want    int
	}{
		{"no compare price", 100, null, 0},
		{"both zero", 0, compare(0), 0},
		{"compare below price", 100, compare(80), 0},
		{"compare equals price", 100, compare(100), 0},
		{"quarter off", 100, compare(125), 20},
		{"rounds up", 2850, compare(3500), 19},
		{"rounds down", 980, compare(1200), 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountPercentage(decimal.NewFromFloat(tt.price), tt.compare)
			assert.Equal(t, tt.want, got)
		})
	}
}

func reviewsWithRatings(ratings ...int) []models.ProductReview {
	reviews := make([]models.ProductReview, len(ratings))
	for i, r := range ratings {
		reviews[i].Rating = r
	}
	return reviews
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 3.0, AverageRating(reviewsWithRatings(4, 2)))
	assert.InDelta(t, 4.333, AverageRating(reviewsWithRatings(5, 4, 4)), 0.001)
}

func TestRatingDistribution(t *testing.T) {
	buckets := RatingDistribution(reviewsWithRatings(5, 5, 4, 1))

	assert.Len(t, buckets, 5)
	assert.Equal(t, 5, buckets[0].Rating)
	assert.Equal(t, 1, buckets[4].Rating)

	assert.Equal(t, 2, buckets[0].Count)
	assert.Equal(t, 50.0, buckets[0].Percentage)
	assert.Equal(t, 1, buckets[1].Count)
	assert.Equal(t, 25.0, buckets[1].Percentage)
	assert.Equal(t, 0, buckets[2].Count)
	assert.Equal(t, 0.0, buckets[2].Percentage)
	assert.Equal(t, 1, buckets[4].Count)
}

func TestRatingDistributionEmpty(t *testing.T) {
	buckets := RatingDistribution(nil)

	assert.Len(t, buckets, 5)
	for _, bucket := range buckets {
		assert.Equal(t, 0, bucket.Count)
		assert.Equal(t, 0.0, bucket.Percentage)
	}
}

func TestRatingDistributionIgnoresOutOfRange(t *testing.T) {
	buckets := RatingDistribution(reviewsWithRatings(5, 0, 9))

	assert.Equal(t, 1, buckets[0].Count)
	assert.Equal(t, 100.0, buckets[0].Percentage)
}

func TestSummarize(t *testing.T) {
	product := &models.Product{
		Price:        decimal.NewFromFloat(100),
		ComparePrice: decimal.NewNullDecimal(decimal.NewFromFloat(125)),
		Inventory:    inventory(3, true, false),
		Reviews:      reviewsWithRatings(4, 2),
	}

	summary := Summarize(product)

	assert.True(t, summary.Available)
	assert.Equal(t, "low stock: 3 left", summary.StockLabel)
	assert.Equal(t, 20, summary.DiscountPercent)
	assert.Equal(t, 3.0, summary.AverageRating)
	assert.Equal(t, 2, summary.ReviewCount)
}

func TestSummarizeNilProduct(t *testing.T) {
	summary := Summarize(nil)

	assert.True(t, summary.Available)
	assert.Equal(t, "in stock", summary.StockLabel)
	assert.Equal(t, 0, summary.DiscountPercent)
}
