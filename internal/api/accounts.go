package api

import (
	"net/http"

	"spg-be/internal/client"
	"spg-be/internal/logger"
	"spg-be/internal/notify"
	"spg-be/internal/user"
	"spg-be/internal/wallet"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func (s *Server) emailAvailability(c *gin.Context) {
	available, err := s.Users.EmailAvailable(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.Users.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Create a user with any role
// @Tags users
// @Accept json
// @Produce json
// @Param user body user.CreateInput true "User"
// @Success 201 {object} user.User
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/users [post]
func (s *Server) createUser(c *gin.Context) {
	var in user.CreateInput
	if !bindJSON(c, &in) {
		return
	}
	u, err := s.Users.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (s *Server) listClients(c *gin.Context) {
	clients, err := s.Clients.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// @Summary Register a client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body client.RegisterInput true "Client"
// @Success 201 {object} client.Client
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/clients [post]
func (s *Server) registerClient(c *gin.Context) {
	var in client.RegisterInput
	if !bindJSON(c, &in) {
		return
	}
	cl, err := s.Clients.Register(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cl)
}

func (s *Server) paymentMethods(c *gin.Context) {
	methods, err := s.Wallet.PaymentMethods(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, methods)
}

func (s *Server) increaseBalance(c *gin.Context) {
	clientID, ok := pathID(c, "clientId")
	if !ok {
		return
	}
	amount, err := decimal.NewFromString(c.Param("amount"))
	if err != nil {
		writeError(c, wallet.ErrInvalidAmount)
		return
	}

	budget, err := s.Wallet.IncreaseBalance(c.Request.Context(), clientID, amount)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client_id": clientID, "budget": budget})
}

func (s *Server) createTransaction(c *gin.Context) {
	var in wallet.TransactionInput
	if !bindJSON(c, &in) {
		return
	}
	tx, err := s.Wallet.CreateTransaction(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": tx.ID})
}

func (s *Server) listDeliverers(c *gin.Context) {
	deliverers, err := s.Deliverers.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, deliverers)
}

func (s *Server) deliverableOrders(c *gin.Context) {
	items, err := s.Deliverers.DeliverableOrders(c.Request.Context(), c.Param("city"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) getDeliverer(c *gin.Context) {
	d, err := s.Deliverers.GetByEmail(c.Request.Context(), c.Param("deliverer_mail"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

type emailRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
	Name    string `json:"name"`
	OrderID int64  `json:"order_id"`
}

// sendEmail answers {status: success|fail}; a delivery failure is not an HTTP error.
func (s *Server) sendEmail(template string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req emailRequest
		if !bindJSON(c, &req) {
			return
		}

		msg := notify.Message{To: req.Email, Subject: "Status of your Order"}
		if req.Name != "" {
			msg.Template = template
			msg.Data = map[string]any{"name": req.Name, "message": req.Message}
			if req.OrderID > 0 {
				msg.Data["order_id"] = req.OrderID
			}
		} else {
			msg.Body = req.Message
		}

		ctx := c.Request.Context()
		if err := s.Mailer.Send(ctx, msg); err != nil {
			logger.FromCtx(ctx).Warn("email not sent", zap.String("to", req.Email), zap.Error(err))
			c.JSON(http.StatusOK, gin.H{"status": "fail"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	}
}
