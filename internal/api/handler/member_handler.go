package handler

import (
	"Atrium/internal/api/dto"
	"Atrium/internal/pkg/response"
	"Atrium/internal/service"
	"fmt"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberSvc service.MemberService
}

func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

func (s *MemberHandler) GetProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")

	user, profile, err := s.memberSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{
		"user":    user,
		"profile": profile,
	})
}

func (s *MemberHandler) UpdateProfile(c *gin.Context) {
	var updateDTO dto.UpdateProfileDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	user, profile, err := s.memberSvc.UpdateProfile(c.Request.Context(), userID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{
		"message": "资料已更新",
		"user":    user,
		"profile": profile,
	})
}

func (s *MemberHandler) GetContent(c *gin.Context) {
	userID := c.GetUint64("user_id")

	membershipType, content, err := s.memberSvc.GetContent(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{
		"membershipType": membershipType,
		"content":        content,
		"welcomeMessage": fmt.Sprintf("%sさん、ようこそ！", c.GetString("user_name")),
	})
}
