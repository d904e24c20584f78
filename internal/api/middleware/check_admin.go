package middleware

import (
	"Atrium/internal/pkg/consts"
	"Atrium/internal/pkg/response"
	"Atrium/internal/repository"
	"Atrium/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckAdmin 检查当前用户是否具备管理权限。
// vip 与 admin 类型视为管理角色，运营者邮箱始终放行。
func CheckAdmin(profileRepo repository.ProfileRepo, operatorEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint64("user_id")
		email := c.GetString("user_email")

		if operatorEmail != "" && email == operatorEmail {
			c.Next()
			return
		}

		profile, err := profileRepo.GetByUserId(c.Request.Context(), userID)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, service.UnExpectedError.Error())
			c.Abort()
			return
		}

		if profile == nil ||
			(profile.MembershipType != consts.MembershipVIP && profile.MembershipType != consts.MembershipAdmin) {
			response.Fail(c, http.StatusForbidden, service.ErrPermissionDenied.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}
