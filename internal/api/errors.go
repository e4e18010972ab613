package api

import (
	"errors"
	"net/http"

	"spg-be/internal/category"
	"spg-be/internal/client"
	"spg-be/internal/deliverer"
	"spg-be/internal/logger"
	"spg-be/internal/order"
	"spg-be/internal/product"
	"spg-be/internal/provider"
	"spg-be/internal/user"
	"spg-be/internal/wallet"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errBadRequest   = errors.New("invalid request body")
	errUnauthorized = errors.New("Unauthorized user")
)

var errorStatus = []struct {
	status int
	errs   []error
}{
	{http.StatusBadRequest, []error{
		errBadRequest,
		category.ErrInvalidName,
		product.ErrInvalidWeek, product.ErrInvalidProduct, product.ErrInvalidQuantity,
		order.ErrInvalidOrder, order.ErrInvalidQuantity, order.ErrUnknownState, order.ErrNoProducts, order.ErrInvalidWeek,
		provider.ErrInvalidApplication, provider.ErrInvalidWeek, provider.ErrNoProducts,
		user.ErrInvalidUser,
		client.ErrInvalidClient,
		wallet.ErrInvalidAmount, wallet.ErrInvalidTransaction,
		deliverer.ErrInvalidCity,
	}},
	{http.StatusUnauthorized, []error{
		errUnauthorized,
		user.ErrInvalidCredentials,
		product.ErrNotOwner,
	}},
	{http.StatusNotFound, []error{
		category.ErrCategoryNotFound,
		product.ErrProductNotFound,
		order.ErrOrderNotFound, order.ErrItemNotFound,
		provider.ErrProviderNotFound, provider.ErrApplicationNotFound,
		user.ErrUserNotFound,
		client.ErrClientNotFound,
		wallet.ErrClientNotFound,
		deliverer.ErrDelivererNotFound,
	}},
	{http.StatusConflict, []error{
		order.ErrInvalidTransition, order.ErrInsufficientStock,
		provider.ErrEmailExists,
		user.ErrEmailExists,
		client.ErrEmailExists,
	}},
}

func statusFor(err error) int {
	for _, group := range errorStatus {
		for _, target := range group.errs {
			if errors.Is(err, target) {
				return group.status
			}
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status code; unexpected errors are logged and hidden.
func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.FromCtx(c.Request.Context()).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
