package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yunus-I/Hotel-App/pkg/resp"
	"github.com/yunus-I/Hotel-App/services"
	"github.com/yunus-I/Hotel-App/utils"
)

type ServiceController struct{ Svc *services.ServiceRequestService }

func NewServiceController(s *services.ServiceRequestService) *ServiceController {
	return &ServiceController{Svc: s}
}

// POST /api/services/request
func (h *ServiceController) Request(c *gin.Context) {
	hotelID := utils.CurrentHotelID(c)

	var body struct {
		Service string `json:"service" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Request(c.Request.Context(), hotelID, body.Service); err != nil {
		if errors.Is(err, services.ErrInvalidArgument) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"service": body.Service})
}
