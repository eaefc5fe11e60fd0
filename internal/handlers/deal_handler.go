package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"leadflow/internal/models"
	"leadflow/internal/services"
)

type DealHandler struct {
	Service *services.DealService
}

func NewDealHandler(service *services.DealService) *DealHandler {
	return &DealHandler{Service: service}
}

// @Summary      Create deal
// @Tags         Deals
// @Accept       json
// @Produce      json
// @Param        deal  body      models.Deal  true  "Deal fields"
// @Success      201   {object}  models.Deal
// @Failure      400   {object}  map[string]string
// @Security     BearerAuth
// @Router       /deals [post]
func (h *DealHandler) Create(c *gin.Context) {
	var deal models.Deal
	if err := c.ShouldBindJSON(&deal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.Service.Create(currentUserID(c), &deal); err != nil {
		respondError(c, err, "Deal not found", "Failed to create deal")
		return
	}
	c.JSON(http.StatusCreated, deal)
}

type convertLeadRequest struct {
	Amount *float64 `json:"amount"`
}

// @Summary      Convert lead to deal
// @Description  Creates a deal from the lead and marks the lead Converted, atomically.
// @Tags         Deals
// @Accept       json
// @Produce      json
// @Param        leadId  path      int                 true   "Lead ID"
// @Param        body    body      convertLeadRequest  false  "Optional amount"
// @Success      201     {object}  map[string]interface{}
// @Failure      404     {object}  map[string]string
// @Failure      409     {object}  map[string]string
// @Security     BearerAuth
// @Router       /deals/convert/{leadId} [post]
func (h *DealHandler) Convert(c *gin.Context) {
	leadID, err := strconv.Atoi(c.Param("leadId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid lead id"})
		return
	}

	// тело опционально: без amount конвертируем с нулём
	var req convertLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	amount := 0.0
	if req.Amount != nil {
		amount = *req.Amount
	}

	deal, err := h.Service.ConvertLead(currentUserID(c), leadID, amount)
	if err != nil {
		respondError(c, err, "Lead not found", "Failed to convert lead")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Lead converted to deal", "deal": deal})
}

// @Summary      List own deals, newest first
// @Tags         Deals
// @Produce      json
// @Success      200  {array}  models.Deal
// @Security     BearerAuth
// @Router       /deals [get]
func (h *DealHandler) List(c *gin.Context) {
	deals, err := h.Service.List(currentUserID(c))
	if err != nil {
		respondError(c, err, "Deal not found", "Failed to fetch deals")
		return
	}
	if deals == nil {
		deals = []*models.Deal{}
	}
	c.JSON(http.StatusOK, deals)
}

// @Summary      Update deal (partial)
// @Tags         Deals
// @Accept       json
// @Produce      json
// @Param        id     path      int               true  "Deal ID"
// @Param        patch  body      models.DealPatch  true  "Fields to change"
// @Success      200    {object}  models.Deal
// @Failure      404    {object}  map[string]string
// @Security     BearerAuth
// @Router       /deals/{id} [put]
func (h *DealHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	var patch models.DealPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	deal, err := h.Service.Update(currentUserID(c), id, patch)
	if err != nil {
		respondError(c, err, "Deal not found", "Failed to update deal")
		return
	}
	c.JSON(http.StatusOK, deal)
}

// @Summary      Delete deal (idempotent)
// @Tags         Deals
// @Produce      json
// @Param        id  path      int  true  "Deal ID"
// @Success      200 {object}  map[string]string
// @Security     BearerAuth
// @Router       /deals/{id} [delete]
func (h *DealHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	if err := h.Service.Delete(currentUserID(c), id); err != nil {
		respondError(c, err, "Deal not found", "Failed to delete deal")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deal deleted"})
}
