package api

import (
	"Atrium/internal/model"
	"Atrium/internal/pkg/consts"
	"net/http"
	"testing"
	"time"
)

func TestBusinessSaveAndGetMonth(t *testing.T) {
	router, db := newTestEnv(t)
	user := createTestUser(t, db, "owner@example.com", consts.UserStatusApproved, "")
	token := tokenFor(t, user)

	w := doRequest(t, router, http.MethodPost, "/api/business/data", token, map[string]any{
		"year":         2025,
		"month":        6,
		"totalRevenue": 120000.5,
		"totalLeads":   40,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("save status = %d, body: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, router, http.MethodGet, "/api/business/data/2025/6", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get month status = %d", w.Code)
	}
	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("data = %v, want record", body["data"])
	}
	if data["totalRevenue"] != 120000.5 {
		t.Errorf("totalRevenue = %v, want 120000.5", data["totalRevenue"])
	}
}

// 同月二次写入是全量覆盖，上次填过、这次缺省的指标要清空
func TestBusinessSaveReplacesWholeMonth(t *testing.T) {
	router, db := newTestEnv(t)
	user := createTestUser(t, db, "owner@example.com", consts.UserStatusApproved, "")
	token := tokenFor(t, user)

	w := doRequest(t, router, http.MethodPost, "/api/business/data", token, map[string]any{
		"year":         2025,
		"month":        6,
		"totalRevenue": 100000,
		"totalLeads":   40,
		"adSpend":      5000,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("first save status = %d", w.Code)
	}

	w = doRequest(t, router, http.MethodPost, "/api/business/data", token, map[string]any{
		"year":         2025,
		"month":        6,
		"totalRevenue": 110000,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("second save status = %d, body: %s", w.Code, w.Body.String())
	}

	var records []model.BusinessData
	if err := db.Where("user_id = ?", user.ID).Find(&records).Error; err != nil {
		t.Fatalf("query records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("record count = %d, want 1", len(records))
	}
	rec := records[0]
	if rec.TotalRevenue == nil || *rec.TotalRevenue != 110000 {
		t.Errorf("totalRevenue = %v, want 110000", rec.TotalRevenue)
	}
	if rec.TotalLeads != nil {
		t.Errorf("totalLeads = %v, want nil after full replace", *rec.TotalLeads)
	}
	if rec.AdSpend != nil {
		t.Errorf("adSpend = %v, want nil after full replace", *rec.AdSpend)
	}
}

func TestBusinessRejectsOutOfRangeYearMonth(t *testing.T) {
	router, db := newTestEnv(t)
	user := createTestUser(t, db, "owner@example.com", consts.UserStatusApproved, "")
	token := tokenFor(t, user)

	cases := []map[string]any{
		{"year": 2019, "month": 6},
		{"year": 2101, "month": 6},
		{"year": 2025, "month": 0},
		{"year": 2025, "month": 13},
	}
	for _, payload := range cases {
		w := doRequest(t, router, http.MethodPost, "/api/business/data", token, payload)
		if w.Code != http.StatusBadRequest {
			t.Errorf("save %v status = %d, want 400", payload, w.Code)
		}
	}
}

func TestBusinessEmptyProductNameStoredAsNull(t *testing.T) {
	router, db := newTestEnv(t)
	user := createTestUser(t, db, "owner@example.com", consts.UserStatusApproved, "")
	token := tokenFor(t, user)

	w := doRequest(t, router, http.MethodPost, "/api/business/data", token, map[string]any{
		"year":        2025,
		"month":       3,
		"productName": "",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("save status = %d", w.Code)
	}

	var rec model.BusinessData
	if err := db.Where("user_id = ? AND year = ? AND month = ?", user.ID, 2025, 3).First(&rec).Error; err != nil {
		t.Fatalf("query record: %v", err)
	}
	if rec.ProductName != nil {
		t.Errorf("productName = %q, want nil", *rec.ProductName)
	}
}

func TestBusinessGetMissingMonthReturnsNull(t *testing.T) {
	router, db := newTestEnv(t)
	user := createTestUser(t, db, "owner@example.com", consts.UserStatusApproved, "")

	w := doRequest(t, router, http.MethodGet, "/api/business/data/2025/1", tokenFor(t, user), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get month status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["data"] != nil {
		t.Errorf("data = %v, want null", body["data"])
	}
}

func TestBusinessPeriodFilter(t *testing.T) {
	router, db := newTestEnv(t)
	user := createTestUser(t, db, "owner@example.com", consts.UserStatusApproved, "")
	token := tokenFor(t, user)

	now := time.Now()
	recent := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	boundary := time.Date(now.Year(), now.Month()-3, 1, 0, 0, 0, 0, time.UTC)
	old := time.Date(now.Year(), now.Month()-8, 1, 0, 0, 0, 0, time.UTC)

	for _, ts := range []time.Time{recent, boundary, old} {
		rec := &model.BusinessData{UserID: user.ID, Year: ts.Year(), Month: int(ts.Month())}
		if err := db.Create(rec).Error; err != nil {
			t.Fatalf("create record: %v", err)
		}
	}

	w := doRequest(t, router, http.MethodGet, "/api/business/data?period=3months", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	body := decodeBody(t, w)
	records, _ := body["data"].([]any)
	// 边界月份本身要包含在内
	if len(records) != 2 {
		t.Errorf("3months records = %d, want 2", len(records))
	}

	w = doRequest(t, router, http.MethodGet, "/api/business/data", token, nil)
	body = decodeBody(t, w)
	records, _ = body["data"].([]any)
	if len(records) != 3 {
		t.Errorf("all records = %d, want 3", len(records))
	}
}

// 登录用户只能看到自己的数据
func TestBusinessDataIsolatedPerUser(t *testing.T) {
	router, db := newTestEnv(t)
	alice := createTestUser(t, db, "alice@example.com", consts.UserStatusApproved, "")
	bob := createTestUser(t, db, "bob@example.com", consts.UserStatusApproved, "")

	w := doRequest(t, router, http.MethodPost, "/api/business/data", tokenFor(t, alice), map[string]any{
		"year": 2025, "month": 6, "totalRevenue": 100,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("save status = %d", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/api/business/data", tokenFor(t, bob), nil)
	body := decodeBody(t, w)
	records, _ := body["data"].([]any)
	if len(records) != 0 {
		t.Errorf("bob sees %d records, want 0", len(records))
	}
}
