package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"leadflow/internal/models"
	"leadflow/internal/services"
)

type LeadHandler struct {
	Service *services.LeadService
}

func NewLeadHandler(service *services.LeadService) *LeadHandler {
	return &LeadHandler{Service: service}
}

// @Summary      Create lead
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        lead  body      models.Lead  true  "Lead fields"
// @Success      201   {object}  models.Lead
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Security     BearerAuth
// @Router       /leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.Service.Create(currentUserID(c), &lead); err != nil {
		respondError(c, err, "Lead not found", "Failed to create lead")
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// @Summary      List own leads, newest first
// @Tags         Leads
// @Produce      json
// @Success      200  {array}  models.Lead
// @Security     BearerAuth
// @Router       /leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.Service.List(currentUserID(c))
	if err != nil {
		respondError(c, err, "Lead not found", "Failed to fetch leads")
		return
	}
	if leads == nil {
		leads = []*models.Lead{}
	}
	c.JSON(http.StatusOK, leads)
}

// @Summary      Update lead (partial)
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        id     path      int               true  "Lead ID"
// @Param        patch  body      models.LeadPatch  true  "Fields to change"
// @Success      200    {object}  models.Lead
// @Failure      404    {object}  map[string]string
// @Security     BearerAuth
// @Router       /leads/{id} [put]
func (h *LeadHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	var patch models.LeadPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	lead, err := h.Service.Update(currentUserID(c), id, patch)
	if err != nil {
		respondError(c, err, "Lead not found", "Failed to update lead")
		return
	}
	c.JSON(http.StatusOK, lead)
}

// @Summary      Delete lead (idempotent)
// @Tags         Leads
// @Produce      json
// @Param        id  path      int  true  "Lead ID"
// @Success      200 {object}  map[string]string
// @Security     BearerAuth
// @Router       /leads/{id} [delete]
func (h *LeadHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	if err := h.Service.Delete(currentUserID(c), id); err != nil {
		respondError(c, err, "Lead not found", "Failed to delete lead")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted"})
}
