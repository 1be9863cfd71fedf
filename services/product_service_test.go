package services

import "testing"

func defaultListOptions() *ProductListOptions {
	return &ProductListOptions{
		Page:          1,
		PageSize:      20,
		SortBy:        "created_at",
		SortDirection: "DESC",
	}
}

func TestFirstPageCacheKey(t *testing.T) {
	if got := firstPageCacheKey(defaultListOptions()); got != "products:firstpage" {
		t.Fatalf("default options: key %q, want %q", got, "products:firstpage")
	}

	withImages := defaultListOptions()
	withImages.IncludeImages = true
	if got := firstPageCacheKey(withImages); got != "products:firstpage:images" {
		t.Fatalf("default options with images: key %q, want %q", got, "products:firstpage:images")
	}
}

func TestFirstPageCacheKeySkipsFilteredQueries(t *testing.T) {
	price := int64(1000)
	flag := true

	tests := []struct {
		name   string
		mutate func(*ProductListOptions)
	}{
		{"second page", func(o *ProductListOptions) { o.Page = 2 }},
		{"custom page size", func(o *ProductListOptions) { o.PageSize = 50 }},
		{"category filter", func(o *ProductListOptions) { o.CategorySlug = "sneakers" }},
		{"search term", func(o *ProductListOptions) { o.SearchTerm = "boots" }},
		{"min price", func(o *ProductListOptions) { o.MinPrice = &price }},
		{"max price", func(o *ProductListOptions) { o.MaxPrice = &price }},
		{"size filter", func(o *ProductListOptions) { o.Size = "M" }},
		{"color filter", func(o *ProductListOptions) { o.Color = "black" }},
		{"featured filter", func(o *ProductListOptions) { o.IsFeatured = &flag }},
		{"new filter", func(o *ProductListOptions) { o.IsNew = &flag }},
		{"bestseller filter", func(o *ProductListOptions) { o.IsBestseller = &flag }},
		{"in stock only", func(o *ProductListOptions) { o.InStockOnly = true }},
		{"price sort", func(o *ProductListOptions) { o.SortBy = "price" }},
		{"ascending sort", func(o *ProductListOptions) { o.SortDirection = "ASC" }},
	}

	for _, tt := range tests {
		opts := defaultListOptions()
		tt.mutate(opts)
		if got := firstPageCacheKey(opts); got != "" {
			t.Errorf("%s: key %q, want cache bypass", tt.name, got)
		}
	}
}
