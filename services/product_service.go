package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Chi-G/JPATHNEC-sub000/database"
	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/structs/tables"
	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type ProductService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewProductService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *ProductService {
	return &ProductService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// ProductListOptions contains filtering and pagination options for product queries
type ProductListOptions struct {
	// Pagination
	Page     int `json:"page"`
	PageSize int `json:"page_size"`

	// Filters
	CategorySlug string  `json:"category,omitempty"`    // Filter by category slug
	SearchTerm   string  `json:"search_term,omitempty"` // Search in name, description, SKU
	MinPrice     *int64  `json:"min_price,omitempty"`   // Minimum price in cents
	MaxPrice     *int64  `json:"max_price,omitempty"`   // Maximum price in cents
	Size         string  `json:"size,omitempty"`        // Variant size filter
	Color        string  `json:"color,omitempty"`       // Variant color filter
	IsFeatured   *bool   `json:"is_featured,omitempty"`
	IsNew        *bool   `json:"is_new,omitempty"`
	IsBestseller *bool   `json:"is_bestseller,omitempty"`
	InStockOnly  bool    `json:"in_stock_only,omitempty"`

	// Sorting
	SortBy        string `json:"sort_by"`        // created_at, price, name
	SortDirection string `json:"sort_direction"` // ASC or DESC

	// Relations
	IncludeImages bool `json:"include_images"`

	// Performance
	Timeout time.Duration `json:"-"`
}

// ProductListResult wraps the product list response with metadata
type ProductListResult struct {
	Products   []tables.Product    `json:"products"`
	Pagination database.Pagination `json:"pagination"`
	QueryTime  time.Duration       `json:"query_time"`
}

// GetAllProducts retrieves the storefront catalog with filtering and pagination.
// Inactive products never appear here.
func (ps *ProductService) GetAllProducts(ctx context.Context, opts *ProductListOptions) (*ProductListResult, error) {
	startTime := time.Now()

	if opts == nil {
		opts = &ProductListOptions{}
	}
	ps.applyDefaultOptions(opts)

	if err := ps.validateOptions(opts); err != nil {
		ps.logger.Error("Invalid product list options", gecho.Field("error", err))
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	// The unfiltered front page is the hottest query in the store, serve it
	// from cache when possible.
	cacheKey := firstPageCacheKey(opts)
	if cacheKey != "" {
		cached, cacheErr := ps.cacheService.GetProductListFromCache(cacheKey)
		if cacheErr != nil {
			ps.logger.Warn("Failed to read product list cache", gecho.Field("error", cacheErr))
		} else if cached != nil {
			ps.logger.Debug("Product list served from cache", gecho.Field("count", len(cached.Products)))
			cached.QueryTime = time.Since(startTime)
			return cached, nil
		}
	}

	queryCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		queryCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	query := database.Query[tables.Product](ps.db)
	query = ps.applyFilters(query, opts)
	query = ps.applySorting(query, opts)

	if opts.IncludeImages {
		query = query.Relation("Images")
	}

	result, err := database.Paginate(query, queryCtx, opts.Page, opts.PageSize)
	if err != nil {
		ps.logger.Error("Failed to fetch products",
			gecho.Field("error", err),
			gecho.Field("page", opts.Page),
			gecho.Field("pageSize", opts.PageSize),
			gecho.Field("duration", time.Since(startTime)))
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	ps.logger.Debug("Products fetched",
		gecho.Field("count", len(result.Data)),
		gecho.Field("total", result.Pagination.Total),
		gecho.Field("duration", time.Since(startTime)))

	listResult := &ProductListResult{
		Products:   result.Data,
		Pagination: result.Pagination,
		QueryTime:  time.Since(startTime),
	}

	if cacheKey != "" {
		go func() {
			if err := ps.cacheService.SetProductListInCache(cacheKey, listResult); err != nil {
				ps.logger.Warn("Failed to cache product list", gecho.Field("error", err))
			}
		}()
	}

	return listResult, nil
}

// firstPageCacheKey returns the cache key for the default first catalog page,
// or "" when the request carries any filter and must hit the database.
func firstPageCacheKey(opts *ProductListOptions) string {
	unfiltered := opts.Page == 1 &&
		opts.PageSize == 20 &&
		opts.CategorySlug == "" &&
		opts.SearchTerm == "" &&
		opts.MinPrice == nil &&
		opts.MaxPrice == nil &&
		opts.Size == "" &&
		opts.Color == "" &&
		opts.IsFeatured == nil &&
		opts.IsNew == nil &&
		opts.IsBestseller == nil &&
		!opts.InStockOnly &&
		opts.SortBy == "created_at" &&
		opts.SortDirection == "DESC"
	if !unfiltered {
		return ""
	}
	if opts.IncludeImages {
		return "products:firstpage:images"
	}
	return "products:firstpage"
}

// GetProductBySlug returns a single active product with images and category,
// served from cache when possible.
func (ps *ProductService) GetProductBySlug(ctx context.Context, slug string) (*tables.Product, error) {
	cached, err := ps.cacheService.GetProductFromCache(slug)
	if err != nil {
		ps.logger.Warn("Failed to read product cache", gecho.Field("error", err), gecho.Field("slug", slug))
	} else if cached != nil {
		ps.logger.Debug("Product served from cache", gecho.Field("slug", slug))
		return cached, nil
	}

	product, err := database.Query[tables.Product](ps.db).
		Where("slug", slug).
		Where("is_active", true).
		Relation("Images").
		Relation("Category").
		First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	go func() {
		if err := ps.cacheService.SetProductInCache(product); err != nil {
			ps.logger.Warn("Failed to cache product", gecho.Field("error", err), gecho.Field("slug", slug))
		}
	}()

	return product, nil
}

// GetProductByID returns an active product by id, used by cart and checkout.
func (ps *ProductService) GetProductByID(ctx context.Context, id uuid.UUID) (*tables.Product, error) {
	product, err := database.Query[tables.Product](ps.db).
		Where("id", id).
		Where("is_active", true).
		Relation("Images").
		First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}
	return product, nil
}

// GetProductsByIds fetches a batch of products, active or not. Checkout decides
// what to do with inactive ones.
func (ps *ProductService) GetProductsByIds(ctx context.Context, ids []uuid.UUID) ([]tables.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	idValues := make([]any, len(ids))
	for i, id := range ids {
		idValues[i] = id
	}
	products, err := database.Query[tables.Product](ps.db).WhereIn("id", idValues).All(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	return products, nil
}

// GetRelatedProducts returns other active products in the same category.
func (ps *ProductService) GetRelatedProducts(ctx context.Context, product *tables.Product, limit int) ([]tables.Product, error) {
	if limit < 1 || limit > 20 {
		limit = 4
	}
	products, err := database.Query[tables.Product](ps.db).
		Where("category_id", product.CategoryId).
		Where("is_active", true).
		WhereOp("id", "!=", product.Id).
		OrderBy("created_at", database.DESC).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	return products, nil
}

// GetCategories returns the active category tree, top-level first.
func (ps *ProductService) GetCategories(ctx context.Context) ([]tables.Category, error) {
	categories, err := database.Query[tables.Category](ps.db).
		Where("is_active", true).
		WhereNull("parent_id").
		Relation("Children").
		OrderBy("sort_order", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	return categories, nil
}

// DecrementStock reduces stock for an order line inside the checkout
// transaction. Fails when stock would go negative.
func (ps *ProductService) DecrementStock(ctx context.Context, tx bun.Tx, productId uuid.UUID, quantity int) error {
	res, err := tx.NewUpdate().
		Model((*tables.Product)(nil)).
		Set("stock_quantity = stock_quantity - ?", quantity).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", productId).
		Where("stock_quantity >= ?", quantity).
		Exec(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return lib.ErrOutOfStock
	}
	return nil
}

// RestoreStock puts stock back when an unpaid order is cancelled.
func (ps *ProductService) RestoreStock(ctx context.Context, tx bun.Tx, productId uuid.UUID, quantity int) error {
	_, err := tx.NewUpdate().
		Model((*tables.Product)(nil)).
		Set("stock_quantity = stock_quantity + ?", quantity).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", productId).
		Exec(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	return nil
}

func (ps *ProductService) applyDefaultOptions(opts *ProductListOptions) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = 20
	}
	if opts.PageSize > 100 {
		opts.PageSize = 100 // Max page size for performance
	}
	if opts.SortBy == "" {
		opts.SortBy = "created_at"
	}
	if opts.SortDirection == "" {
		opts.SortDirection = "DESC"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
}

// validateOptions validates the provided options
func (ps *ProductService) validateOptions(opts *ProductListOptions) error {
	validSortFields := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"price":      true,
		"name":       true,
	}
	if !validSortFields[opts.SortBy] {
		return fmt.Errorf("invalid sort field: %s", opts.SortBy)
	}

	if opts.SortDirection != "ASC" && opts.SortDirection != "DESC" {
		return fmt.Errorf("invalid sort direction: %s (must be ASC or DESC)", opts.SortDirection)
	}

	if opts.MinPrice != nil && opts.MaxPrice != nil && *opts.MinPrice > *opts.MaxPrice {
		return fmt.Errorf("min_price cannot be greater than max_price")
	}

	return nil
}

// applyFilters applies all filter conditions to the query
func (ps *ProductService) applyFilters(query *database.QueryBuilder[tables.Product], opts *ProductListOptions) *database.QueryBuilder[tables.Product] {
	// Storefront listings only ever show active products
	query = query.Where("is_active", true)

	if opts.CategorySlug != "" {
		query = query.WhereRaw(
			"category_id IN (SELECT id FROM categories WHERE slug = ? OR parent_id = (SELECT id FROM categories WHERE slug = ?))",
			opts.CategorySlug, opts.CategorySlug,
		)
	}

	if opts.MinPrice != nil {
		query = query.WhereOp("price", ">=", *opts.MinPrice)
	}
	if opts.MaxPrice != nil {
		query = query.WhereOp("price", "<=", *opts.MaxPrice)
	}

	if opts.SearchTerm != "" {
		searchPattern := "%" + opts.SearchTerm + "%"
		query = query.WhereRaw(
			"(name ILIKE ? OR description ILIKE ? OR sku ILIKE ?)",
			searchPattern, searchPattern, searchPattern,
		)
	}

	if opts.Size != "" {
		query = query.WhereRaw("? = ANY(sizes)", opts.Size)
	}
	if opts.Color != "" {
		query = query.WhereRaw("? = ANY(colors)", opts.Color)
	}

	if opts.IsFeatured != nil {
		query = query.Where("is_featured", *opts.IsFeatured)
	}
	if opts.IsNew != nil {
		query = query.Where("is_new", *opts.IsNew)
	}
	if opts.IsBestseller != nil {
		query = query.Where("is_bestseller", *opts.IsBestseller)
	}

	if opts.InStockOnly {
		query = query.WhereOp("stock_quantity", ">", 0)
	}

	return query
}

// applySorting applies sorting to the query
func (ps *ProductService) applySorting(query *database.QueryBuilder[tables.Product], opts *ProductListOptions) *database.QueryBuilder[tables.Product] {
	var direction database.OrderDirection
	if opts.SortDirection == "ASC" {
		direction = database.ASC
	} else {
		direction = database.DESC
	}

	query = query.OrderBy(opts.SortBy, direction)

	// Secondary sort by ID for consistent ordering
	query = query.OrderBy("id", database.ASC)

	return query
}
