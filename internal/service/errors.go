package service

import (
	"errors"
	"net/http"
)

var (
	ErrParamInvalid          = errors.New("参数错误")
	ErrEmailExist            = errors.New("该邮箱已被注册")
	ErrInvalidCredentials    = errors.New("邮箱或密码错误")
	ErrAccountPending        = errors.New("账号待审核，请等待管理员审批")
	ErrAccountRejected       = errors.New("账号未通过审核，请联系管理员")
	ErrTokenMissing          = errors.New("Token 缺失或格式错误")
	ErrTokenInvalid          = errors.New("Token 无效或已过期")
	ErrUserNotFound          = errors.New("用户不存在")
	ErrNameRequired          = errors.New("姓名不能为空")
	ErrMembershipTypeInvalid = errors.New("无效的会员类型")
	ErrYearOutOfRange        = errors.New("年份超出有效范围")
	ErrMonthOutOfRange       = errors.New("月份超出有效范围")
	ErrLinkNotFound          = errors.New("视频链接不存在")
	ErrTitleRequired         = errors.New("标题不能为空")
	ErrURLInvalid            = errors.New("无效的URL")
	ErrCategoryInvalid       = errors.New("无效的视频分类")
	ErrPermissionDenied      = errors.New("管理员权限不足")
	ErrOperatorProtected     = errors.New("该账号受保护，禁止删除")
	ErrDeleteSelf            = errors.New("不能删除自己的账号")
	ErrDeleteAdmin           = errors.New("无权删除其他管理员")
	UnExpectedError          = errors.New("系统异常，请稍后重试")
)

// ErrorMap 业务错误到 HTTP 状态码的映射
var ErrorMap = map[error]int{
	ErrParamInvalid:          http.StatusBadRequest,
	ErrEmailExist:            http.StatusConflict,
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrAccountPending:        http.StatusForbidden,
	ErrAccountRejected:       http.StatusForbidden,
	ErrTokenMissing:          http.StatusUnauthorized,
	ErrTokenInvalid:          http.StatusUnauthorized,
	ErrUserNotFound:          http.StatusNotFound,
	ErrNameRequired:          http.StatusBadRequest,
	ErrMembershipTypeInvalid: http.StatusBadRequest,
	ErrYearOutOfRange:        http.StatusBadRequest,
	ErrMonthOutOfRange:       http.StatusBadRequest,
	ErrLinkNotFound:          http.StatusNotFound,
	ErrTitleRequired:         http.StatusBadRequest,
	ErrURLInvalid:            http.StatusBadRequest,
	ErrCategoryInvalid:       http.StatusBadRequest,
	ErrPermissionDenied:      http.StatusForbidden,
	ErrOperatorProtected:     http.StatusForbidden,
	ErrDeleteSelf:            http.StatusForbidden,
	ErrDeleteAdmin:           http.StatusForbidden,
	UnExpectedError:          http.StatusInternalServerError,
}
