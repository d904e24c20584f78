package api

import (
	"Atrium/internal/pkg/consts"
	"net/http"
	"testing"
)

func TestRegisterCreatesPendingAccount(t *testing.T) {
	router, _ := newTestEnv(t)

	w := doRequest(t, router, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    "newcomer@example.com",
		"password": "secret123",
		"name":     "新会员",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want 201, body: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["pending"] != true {
		t.Errorf("register response pending = %v, want true", body["pending"])
	}

	// 待审核账号不能登录
	w = doRequest(t, router, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "newcomer@example.com",
		"password": "secret123",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("pending login status = %d, want 403", w.Code)
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	router, db := newTestEnv(t)
	createTestUser(t, db, "taken@example.com", consts.UserStatusApproved, "")

	w := doRequest(t, router, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    "taken@example.com",
		"password": "secret123",
		"name":     "重复注册",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate register status = %d, want 409, body: %s", w.Code, w.Body.String())
	}
}

func TestRegisterRejectsInvalidPayload(t *testing.T) {
	router, _ := newTestEnv(t)

	cases := []map[string]any{
		{"email": "not-an-email", "password": "secret123", "name": "x"},
		{"email": "a@b.com", "password": "short", "name": "x"},
		{"email": "a@b.com", "password": "secret123"},
	}
	for _, payload := range cases {
		w := doRequest(t, router, http.MethodPost, "/api/auth/register", "", payload)
		if w.Code != http.StatusBadRequest {
			t.Errorf("register %v status = %d, want 400", payload, w.Code)
		}
	}
}

// 未知邮箱与密码错误必须不可区分
func TestLoginDoesNotLeakAccountExistence(t *testing.T) {
	router, db := newTestEnv(t)
	createTestUser(t, db, "known@example.com", consts.UserStatusApproved, "")

	wUnknown := doRequest(t, router, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "ghost@example.com",
		"password": "secret123",
	})
	wWrongPass := doRequest(t, router, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "known@example.com",
		"password": "wrong-password",
	})

	if wUnknown.Code != http.StatusUnauthorized || wWrongPass.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d / %d, want 401 / 401", wUnknown.Code, wWrongPass.Code)
	}
	if wUnknown.Body.String() != wWrongPass.Body.String() {
		t.Errorf("unknown email and wrong password responses differ: %s vs %s",
			wUnknown.Body.String(), wWrongPass.Body.String())
	}
}

func TestLoginRejectedAccount(t *testing.T) {
	router, db := newTestEnv(t)
	createTestUser(t, db, "rejected@example.com", consts.UserStatusRejected, "")

	w := doRequest(t, router, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "rejected@example.com",
		"password": "secret123",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("rejected login status = %d, want 403", w.Code)
	}
}

func TestVerifyRequiresValidToken(t *testing.T) {
	router, db := newTestEnv(t)
	user := createTestUser(t, db, "member@example.com", consts.UserStatusApproved, "")

	w := doRequest(t, router, http.MethodGet, "/api/auth/verify", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("verify without token status = %d, want 401", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/api/auth/verify", "not.a.token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("verify with garbage token status = %d, want 401", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/api/auth/verify", tokenFor(t, user), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("verify status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	userInfo, ok := body["user"].(map[string]any)
	if !ok || userInfo["email"] != "member@example.com" {
		t.Errorf("verify response user = %v", body["user"])
	}
}

// 注册 -> 审批 -> 登录 -> 身份校验全链路
func TestApprovalFlow(t *testing.T) {
	router, db := newTestEnv(t)
	admin := createTestUser(t, db, "admin@example.com", consts.UserStatusApproved, consts.MembershipAdmin)
	adminToken := tokenFor(t, admin)

	w := doRequest(t, router, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    "applicant@example.com",
		"password": "secret123",
		"name":     "申请人",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/api/admin/pending-users", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("pending-users status = %d, body: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	users, _ := body["users"].([]any)
	if len(users) != 1 {
		t.Fatalf("pending users = %d, want 1", len(users))
	}
	applicant := users[0].(map[string]any)

	w = doRequest(t, router, http.MethodPost, "/api/admin/approve-user", adminToken, map[string]any{
		"userId": applicant["id"],
	})
	if w.Code != http.StatusOK {
		t.Fatalf("approve status = %d, body: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, router, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "applicant@example.com",
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login after approval status = %d, body: %s", w.Code, w.Body.String())
	}
	body = decodeBody(t, w)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("login response missing token")
	}

	w = doRequest(t, router, http.MethodGet, "/api/auth/verify", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("verify after approval status = %d", w.Code)
	}
}

func TestLogoutWithoutRedisSucceeds(t *testing.T) {
	router, db := newTestEnv(t)
	user := createTestUser(t, db, "leaver@example.com", consts.UserStatusApproved, "")

	w := doRequest(t, router, http.MethodPost, "/api/auth/logout", tokenFor(t, user), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logout status = %d, body: %s", w.Code, w.Body.String())
	}
}
