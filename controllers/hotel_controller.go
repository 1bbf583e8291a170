package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yunus-I/Hotel-App/pkg/resp"
	"github.com/yunus-I/Hotel-App/services"
	"github.com/yunus-I/Hotel-App/utils"
)

type HotelController struct{ Svc *services.HotelService }

func NewHotelController(s *services.HotelService) *HotelController { return &HotelController{Svc: s} }

// GET /api/hotel
func (h *HotelController) Get(c *gin.Context) {
	hotelID := utils.CurrentHotelID(c)

	hotel, err := h.Svc.Get(hotelID)
	if err != nil {
		if errors.Is(err, services.ErrHotelNotFound) {
			resp.NotFound(c, "hotel not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, hotel)
}
