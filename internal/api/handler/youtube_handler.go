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

type YouTubeHandler struct {
	youtubeSvc service.YouTubeService
}

func NewYouTubeHandler(youtubeSvc service.YouTubeService) *YouTubeHandler {
	return &YouTubeHandler{youtubeSvc: youtubeSvc}
}

func (s *YouTubeHandler) ListLinks(c *gin.Context) {
	links, err := s.youtubeSvc.ListLinks(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"links": links})
}

func (s *YouTubeHandler) CreateLink(c *gin.Context) {
	var linkDTO dto.YouTubeLinkDTO
	if err := c.ShouldBind(&linkDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&linkDTO); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	link, err := s.youtubeSvc.CreateLink(c.Request.Context(), &linkDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{
		"message": "链接已创建",
		"link":    link,
	})
}

func (s *YouTubeHandler) UpdateLink(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var linkDTO dto.YouTubeLinkDTO
	if err = c.ShouldBind(&linkDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&linkDTO); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	link, err := s.youtubeSvc.UpdateLink(c.Request.Context(), id, &linkDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"message": "链接已更新",
		"link":    link,
	})
}

func (s *YouTubeHandler) DeleteLink(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.youtubeSvc.DeleteLink(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "链接已删除"})
}
