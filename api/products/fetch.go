package products

import (
	"net/http"

	"github.com/Chi-G/JPATHNEC-sub000/handling"
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// FetchAllProducts handles GET /products with filtering, pagination, and sorting
func (prm *ProductRoutesManager) FetchAllProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		prm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	prm.logger.Debug("Fetching products",
		gecho.Field("category", opts.CategorySlug),
		gecho.Field("page", opts.Page),
		gecho.Field("page_size", opts.PageSize),
	)

	result, err := prm.productService.GetAllProducts(ctx, opts)
	if err != nil {
		handling.HandleError(err, "Failed to fetch products", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products":   result.Products,
			"pagination": result.Pagination,
			"meta": map[string]any{
				"query_time_ms": result.QueryTime.Milliseconds(),
				"count":         len(result.Products),
			},
		}),
		gecho.Send(),
	)
}

// FetchProductBySlug handles GET /products/{slug}, the product detail page
func (prm *ProductRoutesManager) FetchProductBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slug := chi.URLParam(r, "slug")
	if slug == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("Product slug is required"),
			gecho.Send(),
		)
		return
	}

	product, err := prm.productService.GetProductBySlug(ctx, slug)
	if err != nil {
		handling.HandleError(err, "Product not found", prm.logger, w)
		return
	}

	related, err := prm.productService.GetRelatedProducts(ctx, product, 4)
	if err != nil {
		// Related products are nice to have, the detail page works without them
		prm.logger.Warn("Failed to fetch related products", gecho.Field("error", err), gecho.Field("slug", slug))
		related = nil
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product": product,
			"related": related,
		}),
		gecho.Send(),
	)
}

// FetchCategories handles GET /categories, the storefront navigation tree
func (prm *ProductRoutesManager) FetchCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := prm.productService.GetCategories(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to fetch categories", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"categories": categories,
		}),
		gecho.Send(),
	)
}
