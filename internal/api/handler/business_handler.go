package handler

import (
	"Atrium/internal/api/dto"
	"Atrium/internal/pkg/response"
	"Atrium/internal/pkg/util"
	"Atrium/internal/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type BusinessHandler struct {
	businessSvc service.BusinessService
}

func NewBusinessHandler(businessSvc service.BusinessService) *BusinessHandler {
	return &BusinessHandler{businessSvc: businessSvc}
}

func (s *BusinessHandler) SaveData(c *gin.Context) {
	var dataDTO dto.BusinessDataDTO
	if err := c.ShouldBind(&dataDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&dataDTO); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	userID := c.GetUint64("user_id")
	data, err := s.businessSvc.SaveData(c.Request.Context(), userID, &dataDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{
		"message": "数据已保存",
		"data":    data,
	})
}

// GetData 同时给出 year 和 month 时返回单月记录，否则按 period 返回列表
func (s *BusinessHandler) GetData(c *gin.Context) {
	userID := c.GetUint64("user_id")
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr != "" && monthStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}

		data, err := s.businessSvc.GetMonth(c.Request.Context(), userID, year, month)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, gin.H{"data": data})
		return
	}

	records, err := s.businessSvc.ListData(c.Request.Context(), userID, c.Query("period"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"data": records})
}

func (s *BusinessHandler) GetMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userID := c.GetUint64("user_id")
	data, err := s.businessSvc.GetMonth(c.Request.Context(), userID, year, month)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"data": data})
}
