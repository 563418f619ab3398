package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/tazhibayda/jewel-service/internal/domain"
)

func Test_Rates_LazyInit(t *testing.T) {
	env := newTestEnv(t)

	w := env.do("GET", "/api/rates", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("first read code=%d", w.Code)
	}
	var first domain.Rates
	if err := json.Unmarshal(w.Body.Bytes(), &first); err != nil {
		t.Fatal(err)
	}
	if first.GoldRate.TwentyTwoCarat != 0 || first.GoldRate.TwentyFourCarat != 0 ||
		first.SilverRate.Fine != 0 || first.SilverRate.Sterling != 0 {
		t.Fatalf("first read must be all-zero tiers: %+v", first)
	}

	// same singleton on the second read
	w = env.do("GET", "/api/rates", "", nil)
	var second domain.Rates
	_ = json.Unmarshal(w.Body.Bytes(), &second)
	if second.ID != first.ID {
		t.Fatalf("lazy init created a second singleton: %s vs %s", first.ID.Hex(), second.ID.Hex())
	}
}

func Test_Rates_FullReplace(t *testing.T) {
	env := newTestEnv(t)

	_ = env.do("POST", "/api/auth/register",
		`{"name":"Owner","mobileNumber":"`+testAdminMobile+`","location":"HQ","mpin":"4321"}`, nil)
	w := env.do("POST", "/api/auth/login", `{"mobileNumber":"`+testAdminMobile+`","mpin":"4321"}`, nil)
	var lr struct {
		AccessToken string `json:"accessToken"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &lr)

	w = env.do("PUT", "/api/rates/update",
		`{"goldRate":{"twentyTwoCarat":6100,"twentyFourCarat":6650},"silverRate":{"fine":82,"sterling":76}}`,
		bearer(lr.AccessToken))
	if w.Code != http.StatusOK {
		t.Fatalf("update code=%d body=%s", w.Code, w.Body.String())
	}

	// replacement, not merge: omitting silverRate zeroes it
	w = env.do("PUT", "/api/rates/update",
		`{"goldRate":{"twentyTwoCarat":6200,"twentyFourCarat":6700}}`,
		bearer(lr.AccessToken))
	if w.Code != http.StatusOK {
		t.Fatalf("partial update code=%d", w.Code)
	}
	var r domain.Rates
	_ = json.Unmarshal(w.Body.Bytes(), &r)
	if r.GoldRate.TwentyTwoCarat != 6200 {
		t.Fatalf("gold not replaced: %+v", r)
	}
	if r.SilverRate.Fine != 0 || r.SilverRate.Sterling != 0 {
		t.Fatalf("omitted silver must collapse to zero, got %+v", r.SilverRate)
	}
}
