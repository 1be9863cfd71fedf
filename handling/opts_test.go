package handling

import (
	"net/http/httptest"
	"testing"
)

func TestParseProductListOptions(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?page=2&page_size=12&category=men-shirts&search=oxford&min_price=1000&max_price=5000&featured=true&in_stock=true&sort_by=price&sort_direction=desc", nil)

	opts, err := ParseProductListOptions(r)
	if err != nil {
		t.Fatalf("ParseProductListOptions returned error: %v", err)
	}

	if opts.Page != 2 || opts.PageSize != 12 {
		t.Fatalf("pagination = %d/%d, want 2/12", opts.Page, opts.PageSize)
	}
	if opts.CategorySlug != "men-shirts" {
		t.Fatalf("CategorySlug = %q", opts.CategorySlug)
	}
	if opts.SearchTerm != "oxford" {
		t.Fatalf("SearchTerm = %q", opts.SearchTerm)
	}
	if opts.MinPrice == nil || *opts.MinPrice != 1000 {
		t.Fatalf("MinPrice = %v, want 1000", opts.MinPrice)
	}
	if opts.MaxPrice == nil || *opts.MaxPrice != 5000 {
		t.Fatalf("MaxPrice = %v, want 5000", opts.MaxPrice)
	}
	if opts.IsFeatured == nil || !*opts.IsFeatured {
		t.Fatal("IsFeatured should be true")
	}
	if !opts.InStockOnly {
		t.Fatal("InStockOnly should be true")
	}
	if opts.SortBy != "price" {
		t.Fatalf("SortBy = %q", opts.SortBy)
	}
	if opts.SortDirection != "DESC" {
		t.Fatalf("SortDirection = %q, want DESC", opts.SortDirection)
	}
}

func TestParseProductListOptionsPriceBoundsIndependent(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?min_price=100&max_price=900", nil)

	opts, err := ParseProductListOptions(r)
	if err != nil {
		t.Fatalf("ParseProductListOptions returned error: %v", err)
	}
	if *opts.MinPrice != 100 {
		t.Fatalf("MinPrice = %d, want 100", *opts.MinPrice)
	}
	if *opts.MaxPrice != 900 {
		t.Fatalf("MaxPrice = %d, want 900", *opts.MaxPrice)
	}
}

func TestParseProductListOptionsEmpty(t *testing.T) {
	r := httptest.NewRequest("GET", "/products", nil)

	opts, err := ParseProductListOptions(r)
	if err != nil {
		t.Fatalf("ParseProductListOptions returned error: %v", err)
	}
	if opts.MinPrice != nil || opts.MaxPrice != nil || opts.IsFeatured != nil {
		t.Fatal("expected no filters for empty query")
	}
}

func TestParseProductListOptionsBadValues(t *testing.T) {
	bad := []string{
		"/products?page=abc",
		"/products?min_price=cheap",
		"/products?featured=maybe",
	}
	for _, url := range bad {
		r := httptest.NewRequest("GET", url, nil)
		if _, err := ParseProductListOptions(r); err == nil {
			t.Fatalf("expected error for %s", url)
		}
	}
}

func TestParsePaginationDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/orders", nil)
	page, pageSize := ParsePagination(r)
	if page != 1 || pageSize != 20 {
		t.Fatalf("defaults = %d/%d, want 1/20", page, pageSize)
	}

	r = httptest.NewRequest("GET", "/orders?page=3&page_size=50", nil)
	page, pageSize = ParsePagination(r)
	if page != 3 || pageSize != 50 {
		t.Fatalf("parsed = %d/%d, want 3/50", page, pageSize)
	}

	r = httptest.NewRequest("GET", "/orders?page=-1&page_size=0", nil)
	page, pageSize = ParsePagination(r)
	if page != 1 || pageSize != 20 {
		t.Fatalf("invalid values = %d/%d, want defaults 1/20", page, pageSize)
	}
}
