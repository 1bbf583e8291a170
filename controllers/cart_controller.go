package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/yunus-I/Hotel-App/pkg/resp"
	"github.com/yunus-I/Hotel-App/services"
	"github.com/yunus-I/Hotel-App/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	hotelID := utils.CurrentHotelID(c)

	entries, err := h.Svc.Snapshot(hotelID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	count := 0
	subtotal := decimal.Zero
	for _, e := range entries {
		count += e.Qty
		subtotal = subtotal.Add(e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Qty))))
	}

	resp.OK(c, gin.H{
		"items":    entries,
		"count":    count,
		"subtotal": subtotal.StringFixed(2),
	})
}

type addItemIn struct {
	ItemID    string          `json:"itemId" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Qty       int             `json:"quantity"`
}

// POST /api/cart/items
func (h *CartController) Add(c *gin.Context) {
	hotelID := utils.CurrentHotelID(c)

	var req addItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Qty == 0 {
		req.Qty = 1
	}

	if err := h.Svc.Add(hotelID, req.ItemID, req.Name, req.UnitPrice, req.Qty); err != nil {
		if errors.Is(err, services.ErrInvalidArgument) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"itemId": req.ItemID})
}

// PATCH /api/cart/items/qty
func (h *CartController) UpdateQty(c *gin.Context) {
	hotelID := utils.CurrentHotelID(c)

	var body struct {
		ItemID string `json:"itemId" binding:"required"`
		Qty    int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.SetQty(hotelID, body.ItemID, body.Qty); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"itemId": body.ItemID})
}

// DELETE /api/cart/items
func (h *CartController) RemoveItem(c *gin.Context) {
	hotelID := utils.CurrentHotelID(c)

	var body struct {
		ItemID string `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Remove(hotelID, body.ItemID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"itemId": body.ItemID})
}

// DELETE /api/cart
func (h *CartController) Clear(c *gin.Context) {
	hotelID := utils.CurrentHotelID(c)

	if err := h.Svc.Clear(hotelID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
