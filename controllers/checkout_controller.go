package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yunus-I/Hotel-App/pkg/resp"
	"github.com/yunus-I/Hotel-App/services"
	"github.com/yunus-I/Hotel-App/utils"
)

type CheckoutController struct{ Svc *services.CheckoutService }

func NewCheckoutController(s *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Svc: s}
}

// POST /api/checkout
func (h *CheckoutController) Begin(c *gin.Context) {
	hotelID := utils.CurrentHotelID(c)

	prompt, err := h.Svc.Begin(c.Request.Context(), hotelID)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			// No-op: nothing transitions and no dialog opens.
			resp.OK(c, gin.H{"state": services.StateIdle, "message": "cart is empty"})
			return
		}
		if errors.Is(err, services.ErrCheckoutInProgress) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"state": services.StateAwaitingConfirmation, "prompt": prompt})
}

// POST /api/checkout/confirm
func (h *CheckoutController) Confirm(c *gin.Context) {
	hotelID := utils.CurrentHotelID(c)

	var body struct {
		Confirmed *bool `json:"confirmed" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if !h.Svc.Resolve(hotelID, *body.Confirmed) {
		resp.Conflict(c, "no checkout awaiting confirmation")
		return
	}
	resp.OK(c, gin.H{"confirmed": *body.Confirmed})
}

// GET /api/checkout/state
func (h *CheckoutController) State(c *gin.Context) {
	hotelID := utils.CurrentHotelID(c)
	resp.OK(c, gin.H{"state": h.Svc.State(hotelID)})
}
