package api

import (
	"Atrium/internal/model"
	"Atrium/internal/pkg/consts"
	"net/http"
	"testing"
)

func TestProfileDefaultsWithoutRecord(t *testing.T) {
	router, db := newTestEnv(t)
	user := createTestUser(t, db, "fresh@example.com", consts.UserStatusApproved, "")

	w := doRequest(t, router, http.MethodGet, "/api/members/profile", tokenFor(t, user), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile status = %d, body: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	profile, ok := body["profile"].(map[string]any)
	if !ok {
		t.Fatalf("profile = %v", body["profile"])
	}
	if profile["membershipType"] != consts.MembershipBasic {
		t.Errorf("membershipType = %v, want basic", profile["membershipType"])
	}
	if profile["status"] != consts.ProfileStatusActive {
		t.Errorf("status = %v, want active", profile["status"])
	}
}

// 部分更新：只传 address 时 phone 保持不变
func TestProfilePartialUpdatePreservesFields(t *testing.T) {
	router, db := newTestEnv(t)
	user := createTestUser(t, db, "member@example.com", consts.UserStatusApproved, "")
	token := tokenFor(t, user)

	w := doRequest(t, router, http.MethodPut, "/api/members/profile", token, map[string]any{
		"phone": "13800000000",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("first update status = %d, body: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, router, http.MethodPut, "/api/members/profile", token, map[string]any{
		"address": "东京都渋谷区1-2-3",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("second update status = %d", w.Code)
	}

	var profile model.MemberProfile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		t.Fatalf("query profile: %v", err)
	}
	if profile.Phone == nil || *profile.Phone != "13800000000" {
		t.Errorf("phone = %v, want preserved", profile.Phone)
	}
	if profile.Address == nil || *profile.Address != "东京都渋谷区1-2-3" {
		t.Errorf("address = %v, want updated", profile.Address)
	}
}

func TestProfileUpdateName(t *testing.T) {
	router, db := newTestEnv(t)
	user := createTestUser(t, db, "member@example.com", consts.UserStatusApproved, "")
	token := tokenFor(t, user)

	w := doRequest(t, router, http.MethodPut, "/api/members/profile", token, map[string]any{
		"name": "改名后",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d", w.Code)
	}
	body := decodeBody(t, w)
	userInfo, _ := body["user"].(map[string]any)
	if userInfo["name"] != "改名后" {
		t.Errorf("name = %v, want 改名后", userInfo["name"])
	}

	// 空姓名拒绝
	w = doRequest(t, router, http.MethodPut, "/api/members/profile", token, map[string]any{
		"name": "",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty name status = %d, want 400", w.Code)
	}
}

// 会员不能把自己改成 admin
func TestProfileSelfUpdateCannotGrantAdmin(t *testing.T) {
	router, db := newTestEnv(t)
	user := createTestUser(t, db, "member@example.com", consts.UserStatusApproved, consts.MembershipBasic)
	token := tokenFor(t, user)

	w := doRequest(t, router, http.MethodPut, "/api/members/profile", token, map[string]any{
		"membershipType": "admin",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("self grant admin status = %d, want 400", w.Code)
	}

	w = doRequest(t, router, http.MethodPut, "/api/members/profile", token, map[string]any{
		"membershipType": "premium",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("upgrade to premium status = %d", w.Code)
	}
}

func TestMemberContentByTier(t *testing.T) {
	router, db := newTestEnv(t)
	basic := createTestUser(t, db, "basic@example.com", consts.UserStatusApproved, "")
	vip := createTestUser(t, db, "vip@example.com", consts.UserStatusApproved, consts.MembershipVIP)

	w := doRequest(t, router, http.MethodGet, "/api/members/content", tokenFor(t, basic), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("content status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["membershipType"] != consts.MembershipBasic {
		t.Errorf("membershipType = %v, want basic", body["membershipType"])
	}

	w = doRequest(t, router, http.MethodGet, "/api/members/content", tokenFor(t, vip), nil)
	body = decodeBody(t, w)
	if body["membershipType"] != consts.MembershipVIP {
		t.Errorf("membershipType = %v, want vip", body["membershipType"])
	}
	content, _ := body["content"].(map[string]any)
	features, _ := content["features"].([]any)
	if len(features) == 0 {
		t.Error("vip content has no features")
	}
}

// 欢迎语带上登录用户的姓名
func TestMemberContentWelcomeMessage(t *testing.T) {
	router, db := newTestEnv(t)
	user := createTestUser(t, db, "member@example.com", consts.UserStatusApproved, "")

	w := doRequest(t, router, http.MethodGet, "/api/members/content", tokenFor(t, user), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("content status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["welcomeMessage"] != "测试用户さん、ようこそ！" {
		t.Errorf("welcomeMessage = %v, want 测试用户さん、ようこそ！", body["welcomeMessage"])
	}
}

// 显式传空字符串等同于未填写，不清空已存的值
func TestProfileEmptyStringKeepsStoredValue(t *testing.T) {
	router, db := newTestEnv(t)
	user := createTestUser(t, db, "member@example.com", consts.UserStatusApproved, "")
	token := tokenFor(t, user)

	w := doRequest(t, router, http.MethodPut, "/api/members/profile", token, map[string]any{
		"phone":   "13800000000",
		"address": "东京都渋谷区1-2-3",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("first update status = %d", w.Code)
	}

	w = doRequest(t, router, http.MethodPut, "/api/members/profile", token, map[string]any{
		"phone":   "",
		"address": "",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("empty update status = %d", w.Code)
	}

	var profile model.MemberProfile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		t.Fatalf("query profile: %v", err)
	}
	if profile.Phone == nil || *profile.Phone != "13800000000" {
		t.Errorf("phone = %v, want preserved", profile.Phone)
	}
	if profile.Address == nil || *profile.Address != "东京都渋谷区1-2-3" {
		t.Errorf("address = %v, want preserved", profile.Address)
	}
}
