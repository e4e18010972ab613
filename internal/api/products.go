package api

import (
	"net/http"

	"spg-be/internal/logger"
	"spg-be/internal/product"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @Summary Expected products of a week
// @Tags products
// @Produce json
// @Param year path int true "Year"
// @Param week path int true "Week number"
// @Success 200 {array} product.Product
// @Failure 400 {object} map[string]string
// @Router /api/products/expected/{year}/{week} [get]
func (s *Server) listExpected(c *gin.Context) {
	year, week, ok := pathYearWeek(c, "week")
	if !ok {
		return
	}
	products, err := s.Products.ListExpected(c.Request.Context(), year, week)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// @Summary Confirmed products of a week
// @Tags products
// @Produce json
// @Param year path int true "Year"
// @Param week path int true "Week number"
// @Success 200 {array} product.Product
// @Router /api/products/confirmed/{year}/{week} [get]
func (s *Server) listConfirmed(c *gin.Context) {
	year, week, ok := pathYearWeek(c, "week")
	if !ok {
		return
	}
	products, err := s.Products.ListConfirmed(c.Request.Context(), year, week)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) getProduct(c *gin.Context) {
	id, ok := pathID(c, "product_id")
	if !ok {
		return
	}
	p, err := s.Products.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.Categories.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (s *Server) listProviderExpected(c *gin.Context) {
	providerID, ok := sessionProvider(c)
	if !ok {
		return
	}
	year, week, ok := pathYearWeek(c, "week_number")
	if !ok {
		return
	}
	products, err := s.Products.ListProviderExpected(c.Request.Context(), providerID, year, week)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// @Summary Replace the weekly declaration of the logged-in farmer
// @Description Old expected products of the week are deleted and the body is inserted in one transaction.
// @Tags products
// @Accept json
// @Produce json
// @Param year path int true "Year"
// @Param week_number path int true "Week number"
// @Param products body []product.ExpectedInput true "Declaration"
// @Success 200 {array} product.IDMapping
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/products/expected/{year}/{week_number} [post]
func (s *Server) replaceExpected(c *gin.Context) {
	providerID, ok := sessionProvider(c)
	if !ok {
		return
	}
	year, week, ok := pathYearWeek(c, "week_number")
	if !ok {
		return
	}
	var items []product.ExpectedInput
	if !bindJSON(c, &items) {
		return
	}

	mapping, err := s.Products.ReplaceExpected(c.Request.Context(), providerID, year, week, items)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapping)
}

// @Summary Confirm an expected product
// @Tags products
// @Param product_id path int true "Product id"
// @Param year path int true "Year"
// @Param week path int true "Week number"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /api/farmerConfirm/{product_id}/{year}/{week} [put]
func (s *Server) confirmProduct(c *gin.Context) {
	providerID, ok := sessionProvider(c)
	if !ok {
		return
	}
	productID, ok := pathID(c, "product_id")
	if !ok {
		return
	}
	year, week, ok := pathYearWeek(c, "week")
	if !ok {
		return
	}

	if err := s.Products.Confirm(c.Request.Context(), providerID, productID, year, week); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"confirmed": true})
}

func (s *Server) uploadImage(c *gin.Context) {
	providerID, ok := sessionProvider(c)
	if !ok {
		return
	}
	productID, ok := pathID(c, "img_id")
	if !ok {
		return
	}

	fh, err := c.FormFile("product_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files were uploaded."})
		return
	}

	ctx := c.Request.Context()
	if err := s.Products.EnsureOwner(ctx, productID, providerID); err != nil {
		writeError(c, err)
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer f.Close()

	path, err := s.Images.Save(productID, f)
	if err != nil {
		writeError(c, err)
		return
	}

	logger.FromCtx(ctx).Info("product image stored", zap.Int64("product_id", productID), zap.String("path", path))
	c.JSON(http.StatusOK, gin.H{"status": "success", "path": path})
}

func (s *Server) bookedProducts(c *gin.Context) {
	providerID, ok := sessionProvider(c)
	if !ok {
		return
	}
	year, week, ok := pathYearWeek(c, "week_number")
	if !ok {
		return
	}
	booked, err := s.Orders.BookedProducts(c.Request.Context(), providerID, year, week)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, booked)
}

type setQuantityRequest struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

func (s *Server) setQuantity(c *gin.Context) {
	var req setQuantityRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := s.Products.SetQuantity(c.Request.Context(), req.ID, req.Quantity); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": req.ID, "quantity": req.Quantity})
}
