package handling

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Chi-G/JPATHNEC-sub000/services"
)

// ParseProductListOptions parses HTTP query parameters into ProductListOptions
func ParseProductListOptions(r *http.Request) (*services.ProductListOptions, error) {
	query := r.URL.Query()

	// Early return if no query params
	if len(query) == 0 {
		return &services.ProductListOptions{}, nil
	}

	opts := &services.ProductListOptions{}
	var err error
	var val64 int64
	var valInt int
	var valBool bool

	// Parse pagination parameters
	if page := query.Get("page"); page != "" {
		if valInt, err = strconv.Atoi(page); err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		if valInt, err = strconv.Atoi(pageSize); err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	if category := query.Get("category"); category != "" {
		opts.CategorySlug = category
	}

	if searchTerm := query.Get("search"); searchTerm != "" {
		opts.SearchTerm = searchTerm
	}

	// Parse price filters, values in cents
	if minPrice := query.Get("min_price"); minPrice != "" {
		if val64, err = strconv.ParseInt(minPrice, 10, 64); err != nil {
			return nil, err
		}
		v := val64
		opts.MinPrice = &v
	}

	if maxPrice := query.Get("max_price"); maxPrice != "" {
		if val64, err = strconv.ParseInt(maxPrice, 10, 64); err != nil {
			return nil, err
		}
		v := val64
		opts.MaxPrice = &v
	}

	if size := query.Get("size"); size != "" {
		opts.Size = size
	}
	if color := query.Get("color"); color != "" {
		opts.Color = color
	}

	// Parse boolean flag filters
	if featured := query.Get("featured"); featured != "" {
		if valBool, err = strconv.ParseBool(featured); err != nil {
			return nil, err
		}
		v := valBool
		opts.IsFeatured = &v
	}

	if isNew := query.Get("new"); isNew != "" {
		if valBool, err = strconv.ParseBool(isNew); err != nil {
			return nil, err
		}
		v := valBool
		opts.IsNew = &v
	}

	if bestseller := query.Get("bestseller"); bestseller != "" {
		if valBool, err = strconv.ParseBool(bestseller); err != nil {
			return nil, err
		}
		v := valBool
		opts.IsBestseller = &v
	}

	if inStock := query.Get("in_stock"); inStock != "" {
		if valBool, err = strconv.ParseBool(inStock); err != nil {
			return nil, err
		}
		opts.InStockOnly = valBool
	}

	// Parse sorting parameters
	if sortBy := query.Get("sort_by"); sortBy != "" {
		opts.SortBy = sortBy
	}

	if sortDirection := query.Get("sort_direction"); sortDirection != "" {
		opts.SortDirection = strings.ToUpper(sortDirection)
	}

	// Parse include_images flag
	if includeImages := query.Get("include_images"); includeImages != "" {
		if valBool, err = strconv.ParseBool(includeImages); err != nil {
			return nil, err
		}
		opts.IncludeImages = valBool
	}

	return opts, nil
}

// ParsePagination reads page/page_size with sane defaults.
func ParsePagination(r *http.Request) (page, pageSize int) {
	page = 1
	pageSize = 20

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if val, err := strconv.Atoi(pageStr); err == nil && val > 0 {
			page = val
		}
	}
	if pageSizeStr := r.URL.Query().Get("page_size"); pageSizeStr != "" {
		if val, err := strconv.Atoi(pageSizeStr); err == nil && val > 0 {
			pageSize = val
		}
	}
	return page, pageSize
}
