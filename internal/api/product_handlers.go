package api

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ims-io/ims/internal/middleware"
	"github.com/ims-io/ims/internal/models"
	"github.com/ims-io/ims/internal/store"
)

// productForm carries the raw posted values so the form can be re-rendered
// exactly as submitted when validation fails.
type productForm struct {
	SKU         string
	Name        string
	Description string
	Category    string
	Price       string
	Stock       string
	Threshold   string
}

func bindProductForm(c *gin.Context) productForm {
	return productForm{
		SKU:         strings.TrimSpace(c.PostForm("sku")),
		Name:        strings.TrimSpace(c.PostForm("name")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Category:    c.PostForm("category"),
		Price:       strings.TrimSpace(c.PostForm("price")),
		Stock:       strings.TrimSpace(c.PostForm("stock")),
		Threshold:   strings.TrimSpace(c.PostForm("threshold")),
	}
}

// validate returns the parsed product and a field->message map. The message
// strings are part of the UI contract asserted by the E2E suite.
func (f productForm) validate() (models.Product, map[string]string) {
	errs := map[string]string{}
	var p models.Product

	if f.SKU == "" {
		errs["sku"] = "SKU is required"
	}
	p.SKU = f.SKU

	if f.Name == "" {
		errs["name"] = "Name is required"
	}
	p.Name = f.Name
	p.Description = f.Description

	if f.Price == "" {
		errs["price"] = "Price is required"
	} else if price, err := strconv.ParseFloat(f.Price, 64); err != nil || price <= 0 {
		errs["price"] = "Price must be greater than 0"
	} else {
		p.Price = price
	}

	if f.Stock == "" {
		errs["stock"] = "Stock is required"
	} else if stock, err := strconv.Atoi(f.Stock); err != nil || stock < 0 {
		errs["stock"] = "Stock cannot be negative"
	} else {
		p.Stock = stock
	}

	if models.ValidCategory(f.Category) {
		p.Category = models.Category(f.Category)
	} else {
		p.Category = models.CategoryElectronics
	}

	if f.Threshold == "" {
		p.LowStockThreshold = 10
	} else if threshold, err := strconv.Atoi(f.Threshold); err != nil || threshold < 0 {
		errs["threshold"] = "Threshold cannot be negative"
	} else {
		p.LowStockThreshold = threshold
	}

	return p, errs
}

// categoryNames feeds the category selects; plain strings so template
// equality checks against posted form values behave.
func categoryNames() []string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}
	return names
}

func (r *Router) ListProducts(c *gin.Context) {
	products := r.store.List()
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })

	r.renderer.HTML(c, http.StatusOK, "products.html", gin.H{
		"user":       middleware.CurrentUser(c),
		"products":   products,
		"categories": categoryNames(),
	})
}

func (r *Router) ShowNewProductForm(c *gin.Context) {
	r.renderer.HTML(c, http.StatusOK, "product_form.html", gin.H{
		"user":       middleware.CurrentUser(c),
		"mode":       "new",
		"form":       productForm{Threshold: "10"},
		"categories": categoryNames(),
	})
}

func (r *Router) CreateProduct(c *gin.Context) {
	form := bindProductForm(c)
	p, errs := form.validate()
	if len(errs) == 0 {
		if _, err := r.store.Create(p); err != nil {
			if errors.Is(err, store.ErrDuplicateSKU) {
				errs["sku"] = "SKU already exists"
			} else {
				r.log.Error().Err(err).Msg("product create failed")
				errs["sku"] = err.Error()
			}
		}
	}
	if len(errs) > 0 {
		r.renderer.HTML(c, http.StatusBadRequest, "product_form.html", gin.H{
			"user":       middleware.CurrentUser(c),
			"mode":       "new",
			"form":       form,
			"errors":     errs,
			"categories": categoryNames(),
		})
		return
	}
	c.Redirect(http.StatusFound, "/products")
}

func (r *Router) ShowEditProductForm(c *gin.Context) {
	p, err := r.store.Get(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/products")
		return
	}
	r.renderer.HTML(c, http.StatusOK, "product_form.html", gin.H{
		"user":       middleware.CurrentUser(c),
		"mode":       "edit",
		"productID":  p.ID,
		"form":       formFromProduct(p),
		"categories": categoryNames(),
	})
}

func (r *Router) UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	form := bindProductForm(c)
	p, errs := form.validate()
	if len(errs) == 0 {
		cat := p.Category
		upd := models.ProductUpdate{
			SKU:               &p.SKU,
			Name:              &p.Name,
			Description:       &p.Description,
			Price:             &p.Price,
			Stock:             &p.Stock,
			Category:          &cat,
			LowStockThreshold: &p.LowStockThreshold,
		}
		if _, err := r.store.Update(id, upd); err != nil {
			switch {
			case errors.Is(err, store.ErrDuplicateSKU):
				errs["sku"] = "SKU already exists"
			case errors.Is(err, store.ErrNotFound):
				c.Redirect(http.StatusFound, "/products")
				return
			default:
				r.log.Error().Err(err).Str("id", id).Msg("product update failed")
				errs["sku"] = err.Error()
			}
		}
	}
	if len(errs) > 0 {
		r.renderer.HTML(c, http.StatusBadRequest, "product_form.html", gin.H{
			"user":       middleware.CurrentUser(c),
			"mode":       "edit",
			"productID":  id,
			"form":       form,
			"errors":     errs,
			"categories": categoryNames(),
		})
		return
	}
	c.Redirect(http.StatusFound, "/products")
}

func (r *Router) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := r.store.Delete(id); err != nil && !errors.Is(err, store.ErrNotFound) {
		r.log.Error().Err(err).Str("id", id).Msg("product delete failed")
	}
	c.Redirect(http.StatusFound, "/products")
}

func formFromProduct(p models.Product) productForm {
	return productForm{
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Category:    string(p.Category),
		Price:       strconv.FormatFloat(p.Price, 'f', 2, 64),
		Stock:       strconv.Itoa(p.Stock),
		Threshold:   strconv.Itoa(p.LowStockThreshold),
	}
}
