package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yunus-I/Hotel-App/pkg/resp"
	"github.com/yunus-I/Hotel-App/services"
	"github.com/yunus-I/Hotel-App/utils"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /api/menu?category=
func (h *MenuController) List(c *gin.Context) {
	hotelID := utils.CurrentHotelID(c)

	items, err := h.Svc.List(hotelID, c.Query("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
