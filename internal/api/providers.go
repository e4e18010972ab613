package api

import (
	"net/http"

	"spg-be/internal/provider"

	"github.com/gin-gonic/gin"
)

func (s *Server) listProviders(c *gin.Context) {
	providers, err := s.Providers.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

func (s *Server) getProvider(c *gin.Context) {
	id, ok := pathID(c, "provider_id")
	if !ok {
		return
	}
	p, err := s.Providers.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) existingProducts(c *gin.Context) {
	providerID, ok := sessionProvider(c)
	if !ok {
		return
	}
	products, err := s.Providers.ExistingProducts(c.Request.Context(), providerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) notifications(c *gin.Context) {
	providerID, ok := sessionProvider(c)
	if !ok {
		return
	}
	products, err := s.Providers.Notifications(c.Request.Context(), providerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

type productRef struct {
	ID int64 `json:"id"`
}

func (s *Server) markNotified(c *gin.Context) {
	providerID, ok := sessionProvider(c)
	if !ok {
		return
	}
	var refs []productRef
	if !bindJSON(c, &refs) {
		return
	}
	ids := make([]int64, 0, len(refs))
	for _, r := range refs {
		ids = append(ids, r.ID)
	}

	changed, err := s.Providers.MarkNotified(c.Request.Context(), providerID, ids)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, changed)
}

func (s *Server) confirmationStatus(c *gin.Context) {
	providerID, ok := sessionProvider(c)
	if !ok {
		return
	}
	year, week, ok := pathYearWeek(c, "week_number")
	if !ok {
		return
	}
	done, err := s.Providers.ConfirmationStatus(c.Request.Context(), providerID, year, week)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, done)
}

func (s *Server) shipmentStatus(c *gin.Context) {
	providerID, ok := sessionProvider(c)
	if !ok {
		return
	}
	year, week, ok := pathYearWeek(c, "week_number")
	if !ok {
		return
	}
	done, err := s.Providers.ShipmentStatus(c.Request.Context(), providerID, year, week)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, done)
}

func (s *Server) providerShippedOrders(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := s.Warehouse.ShippedByProvider(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Apply as a farmer
// @Tags applications
// @Accept json
// @Produce json
// @Param application body provider.ApplyInput true "Application"
// @Success 201 {object} provider.Application
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /provider/apply [post]
func (s *Server) apply(c *gin.Context) {
	var in provider.ApplyInput
	if !bindJSON(c, &in) {
		return
	}
	app, err := s.Providers.Apply(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (s *Server) pendingApplications(c *gin.Context) {
	apps, err := s.Providers.PendingApplications(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (s *Server) acceptedApplications(c *gin.Context) {
	apps, err := s.Providers.AcceptedApplications(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (s *Server) acceptApplication(c *gin.Context) {
	id, ok := pathID(c, "application_id")
	if !ok {
		return
	}
	p, err := s.Providers.Accept(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) rejectApplication(c *gin.Context) {
	id, ok := pathID(c, "application_id")
	if !ok {
		return
	}
	if err := s.Providers.Reject(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": provider.ApplicationRejected})
}
