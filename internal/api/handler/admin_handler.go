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

type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

func (s *AdminHandler) GetPendingUsers(c *gin.Context) {
	users, err := s.adminSvc.GetPendingUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"users": users})
}

func (s *AdminHandler) GetAllUsers(c *gin.Context) {
	users, err := s.adminSvc.GetAllUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"users": users})
}

func (s *AdminHandler) ApproveUser(c *gin.Context) {
	var actionDTO dto.UserActionDTO
	if err := c.ShouldBind(&actionDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&actionDTO); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.adminSvc.ApproveUser(c.Request.Context(), actionDTO.UserID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "已批准该用户"})
}

func (s *AdminHandler) RejectUser(c *gin.Context) {
	var actionDTO dto.UserActionDTO
	if err := c.ShouldBind(&actionDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&actionDTO); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.adminSvc.RejectUser(c.Request.Context(), actionDTO.UserID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "已拒绝该用户"})
}

func (s *AdminHandler) UpdateMembershipType(c *gin.Context) {
	var updateDTO dto.UpdateMembershipTypeDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.adminSvc.UpdateMembershipType(c.Request.Context(), updateDTO.UserID, updateDTO.MembershipType); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "会员类型已更新"})
}

func (s *AdminHandler) CreateUser(c *gin.Context) {
	var createDTO dto.CreateUserDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.adminSvc.CreateUser(c.Request.Context(), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{
		"message": "用户已创建",
		"user":    user,
	})
}

func (s *AdminHandler) DeleteUser(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	actorID := c.GetUint64("user_id")
	actorEmail := c.GetString("user_email")
	if err = s.adminSvc.DeleteUser(c.Request.Context(), actorID, actorEmail, targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "用户已删除"})
}
