package routes_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/matryer/is"

	"github.com/beetsolutions/veteran-app/auth"
	"github.com/beetsolutions/veteran-app/models"
	"github.com/beetsolutions/veteran-app/routes"
	"github.com/beetsolutions/veteran-app/store"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	ds, err := store.New()
	if err != nil {
		t.Fatal(err)
	}
	sessions := auth.NewSessionManager(ds, []byte("test-secret"))

	app := fiber.New()
	routes.SetupRoutes(app, ds, sessions)
	return app
}

func request(t *testing.T, app *fiber.App, method, path, body string, headers map[string]string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, raw
}

func decode(t *testing.T, raw []byte, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
}

func login(t *testing.T, app *fiber.App, username, password string) (accessToken, refreshToken string) {
	t.Helper()
	resp, raw := request(t, app, http.MethodPost, "/auth/login",
		`{"username":"`+username+`","password":"`+password+`"}`, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d %s", resp.StatusCode, raw)
	}
	var body struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	decode(t, raw, &body)
	return body.AccessToken, body.RefreshToken
}

func TestAPIInfo(t *testing.T) {
	is := is.New(t)
	app := newTestApp(t)

	resp, raw := request(t, app, http.MethodGet, "/", "", nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	var body map[string]string
	decode(t, raw, &body)
	is.Equal(body["message"], "Veteran App REST API")
	is.Equal(body["status"], "running")
}

func TestLoginEndpoint(t *testing.T) {
	is := is.New(t)
	app := newTestApp(t)

	resp, raw := request(t, app, http.MethodPost, "/auth/login",
		`{"username":"admin","password":"admin123"}`, nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	var body struct {
		Success               bool                  `json:"success"`
		AccessToken           string                `json:"accessToken"`
		RefreshToken          string                `json:"refreshToken"`
		Organizations         []models.Organization `json:"organizations"`
		CurrentOrganizationID string                `json:"currentOrganizationId"`
		User                  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decode(t, raw, &body)
	is.True(body.Success)
	is.True(body.AccessToken != "")
	is.True(body.RefreshToken != "")
	is.Equal(body.User.ID, "1")
	is.Equal(len(body.Organizations), 3)
	is.Equal(body.CurrentOrganizationID, "org1")
}

func TestLoginRejectionsAreIdentical(t *testing.T) {
	is := is.New(t)
	app := newTestApp(t)

	wrongPassword, rawWrong := request(t, app, http.MethodPost, "/auth/login",
		`{"username":"admin","password":"nope"}`, nil)
	unknownUser, rawUnknown := request(t, app, http.MethodPost, "/auth/login",
		`{"username":"nobody","password":"admin123"}`, nil)

	is.Equal(wrongPassword.StatusCode, http.StatusUnauthorized)
	is.Equal(unknownUser.StatusCode, http.StatusUnauthorized)
	is.Equal(string(rawWrong), string(rawUnknown))
}

func TestLoginRequiresFields(t *testing.T) {
	is := is.New(t)
	app := newTestApp(t)

	resp, _ := request(t, app, http.MethodPost, "/auth/login",
		`{"username":"admin"}`, nil)
	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestRefreshAndLogoutEndpoints(t *testing.T) {
	is := is.New(t)
	app := newTestApp(t)

	_, refreshToken := login(t, app, "admin", "admin123")

	resp, raw := request(t, app, http.MethodPost, "/auth/refresh",
		`{"refreshToken":"`+refreshToken+`"}`, nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	var body struct {
		AccessToken string `json:"accessToken"`
	}
	decode(t, raw, &body)
	is.True(body.AccessToken != "")

	resp, _ = request(t, app, http.MethodPost, "/auth/logout",
		`{"refreshToken":"`+refreshToken+`"}`, nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	resp, _ = request(t, app, http.MethodPost, "/auth/refresh",
		`{"refreshToken":"`+refreshToken+`"}`, nil)
	is.Equal(resp.StatusCode, http.StatusUnauthorized)
}

func TestForgotPasswordIsIndistinguishable(t *testing.T) {
	is := is.New(t)
	app := newTestApp(t)

	known, rawKnown := request(t, app, http.MethodPost, "/auth/forgot-password",
		`{"email":"admin@veteranapp.com"}`, nil)
	unknown, rawUnknown := request(t, app, http.MethodPost, "/auth/forgot-password",
		`{"email":"nobody@example.com"}`, nil)

	is.Equal(known.StatusCode, http.StatusOK)
	is.Equal(unknown.StatusCode, http.StatusOK)
	is.Equal(string(rawKnown), string(rawUnknown))
}

func TestOrganizationsRequireToken(t *testing.T) {
	is := is.New(t)
	app := newTestApp(t)

	resp, _ := request(t, app, http.MethodGet, "/auth/organizations", "", nil)
	is.Equal(resp.StatusCode, http.StatusUnauthorized)

	accessToken, _ := login(t, app, "admin", "admin123")
	resp, raw := request(t, app, http.MethodGet, "/auth/organizations", "",
		map[string]string{"Authorization": "Bearer " + accessToken})
	is.Equal(resp.StatusCode, http.StatusOK)

	var body struct {
		Organizations []models.Organization `json:"organizations"`
	}
	decode(t, raw, &body)
	is.Equal(len(body.Organizations), 3)
}

func TestSwitchOrganizationEndpoint(t *testing.T) {
	is := is.New(t)
	app := newTestApp(t)

	accessToken, _ := login(t, app, "janedoe", "password123")
	authHeader := map[string]string{"Authorization": "Bearer " + accessToken}

	// janedoe only belongs to org1.
	resp, _ := request(t, app, http.MethodPost, "/auth/switch-organization",
		`{"organizationId":"org2"}`, authHeader)
	is.Equal(resp.StatusCode, http.StatusForbidden)

	resp, raw := request(t, app, http.MethodPost, "/auth/switch-organization",
		`{"organizationId":"org1"}`, authHeader)
	is.Equal(resp.StatusCode, http.StatusOK)

	var body struct {
		Organization models.Organization `json:"organization"`
	}
	decode(t, raw, &body)
	is.Equal(body.Organization.ID, "org1")
}

func TestHostingCurrentAndNext(t *testing.T) {
	is := is.New(t)
	app := newTestApp(t)

	resp, raw := request(t, app, http.MethodGet, "/hosting/current", "", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	var current models.HostingPeriod
	decode(t, raw, &current)
	is.Equal(len(current.Hosts), 3)
	is.True(strings.HasPrefix(current.ID, "schedule_"))
	is.Equal(current.ContributionAmount, 30.0)

	resp, raw = request(t, app, http.MethodGet, "/hosting/next", "", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	var next models.HostingPeriod
	decode(t, raw, &next)
	is.Equal(current.EndDate, next.StartDate)
}

func TestHostingUnknownOrganization(t *testing.T) {
	is := is.New(t)
	app := newTestApp(t)

	resp, _ := request(t, app, http.MethodGet, "/hosting/current?organizationId=bogus", "", nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestMarkPaymentOnlyForCurrentHosts(t *testing.T) {
	is := is.New(t)
	app := newTestApp(t)

	_, raw := request(t, app, http.MethodGet, "/hosting/current", "", nil)
	var current models.HostingPeriod
	decode(t, raw, &current)

	hostSet := make(map[string]bool)
	for _, host := range current.Hosts {
		hostSet[host.ID] = true
	}
	var nonHost string
	for _, member := range current.AllMembers {
		if !hostSet[member.ID] {
			nonHost = member.ID
			break
		}
	}
	is.True(nonHost != "") // org1 has more active members than hosts

	resp, _ := request(t, app, http.MethodPost, "/hosting/mark-payment",
		`{"memberId":"`+nonHost+`","scheduleId":"`+current.ID+`","isPaid":true}`, nil)
	is.Equal(resp.StatusCode, http.StatusForbidden)

	resp, raw = request(t, app, http.MethodPost, "/hosting/mark-payment",
		`{"memberId":"`+current.Hosts[0].ID+`","scheduleId":"`+current.ID+`","isPaid":true}`, nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	var body struct {
		Success bool          `json:"success"`
		Member  models.Member `json:"member"`
	}
	decode(t, raw, &body)
	is.True(body.Success)
	is.Equal(body.Member.ID, current.Hosts[0].ID)
	is.True(body.Member.IsPaid)
}

func TestMarkPaymentRequiresFields(t *testing.T) {
	is := is.New(t)
	app := newTestApp(t)

	resp, _ := request(t, app, http.MethodPost, "/hosting/mark-payment",
		`{"memberId":"1"}`, nil)
	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestOrganizationScopedReads(t *testing.T) {
	is := is.New(t)
	app := newTestApp(t)

	resp, raw := request(t, app, http.MethodGet, "/members", "",
		map[string]string{"X-Organization-ID": "org2"})
	is.Equal(resp.StatusCode, http.StatusOK)
	var members []models.Member
	decode(t, raw, &members)
	is.Equal(len(members), 2)

	// Defaults to org1 when no organization is named.
	resp, raw = request(t, app, http.MethodGet, "/officials", "", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	var officials []models.Official
	decode(t, raw, &officials)
	is.Equal(len(officials), 7)

	resp, _ = request(t, app, http.MethodGet, "/members/999", "", nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)

	resp, raw = request(t, app, http.MethodGet, "/constitution?organizationId=org2", "", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	var constitution models.Constitution
	decode(t, raw, &constitution)
	is.Equal(constitution.OrganizationID, "org2")

	resp, _ = request(t, app, http.MethodGet, "/constitution?organizationId=org3", "", nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestSoccerEndpoints(t *testing.T) {
	is := is.New(t)
	app := newTestApp(t)

	resp, raw := request(t, app, http.MethodGet, "/soccer/current", "", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	var match models.SoccerMatch
	decode(t, raw, &match)
	is.Equal(match.HomeTeam, "Veterans FC")

	resp, raw = request(t, app, http.MethodGet, "/soccer/history", "", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	var history []models.SoccerMatch
	decode(t, raw, &history)
	is.Equal(len(history), 1)
}
