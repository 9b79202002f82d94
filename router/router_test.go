package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"farmassist/database"
	"farmassist/pkg/ai"
	authCtrlImp "farmassist/pkg/auth/controllerImp"
	chatCtrlImp "farmassist/pkg/chat/controllerImp"
	chatRepoImp "farmassist/pkg/chat/repositoryImp"
	chatSvcImp "farmassist/pkg/chat/serviceImp"
	"farmassist/pkg/compat"
	compatCtrlImp "farmassist/pkg/compat/controllerImp"
	datasetCtrlImp "farmassist/pkg/dataset/controllerImp"
	datasetRepoImp "farmassist/pkg/dataset/repositoryImp"
	datasetSvcImp "farmassist/pkg/dataset/serviceImp"
	healthCtrlImp "farmassist/pkg/health/controllerImp"
	kbCtrlImp "farmassist/pkg/kb/controllerImp"
	kbRepoImp "farmassist/pkg/kb/repositoryImp"
	kbServiceImp "farmassist/pkg/kb/serviceImp"
	marketCtrlImp "farmassist/pkg/market/controllerImp"
	"farmassist/pkg/middleware"
	profileCtrlImp "farmassist/pkg/profile/controllerImp"
	profileRepoImp "farmassist/pkg/profile/repositoryImp"
	profileSvcImp "farmassist/pkg/profile/serviceImp"
	translateCtrlImp "farmassist/pkg/translate/controllerImp"
	"farmassist/pkg/weather"
	weatherCtrlImp "farmassist/pkg/weather/controllerImp"
)

func newServer(t *testing.T, enableAuth bool) (*echo.Echo, *middleware.Sessions) {
	t.Helper()
	db, err := database.Open("file::memory:")
	if err != nil {
		t.Fatal(err)
	}
	crops := compat.Default()
	sessions := middleware.NewSessions("test-secret", time.Hour)
	pRepo := profileRepoImp.New(db)
	dRepo := datasetRepoImp.New(db)
	kbSvc := kbServiceImp.New(kbRepoImp.New(db))

	e := New(echo.New(),
		Identity{Sessions: sessions, EnableAuth: enableAuth, DevUID: "farmer-dev"},
		Controllers{
			Auth:      authCtrlImp.NewAuthController(sessions, "farmer-dev"),
			Profile:   profileCtrlImp.New(profileSvcImp.NewProfileService(pRepo, crops), crops),
			Dataset:   datasetCtrlImp.New(datasetSvcImp.NewDatasetService(dRepo)),
			Compat:    compatCtrlImp.New(crops),
			Chat:      chatCtrlImp.New(chatSvcImp.NewChatService(ai.NewMock(), chatRepoImp.New(db), pRepo, dRepo, kbSvc)),
			Weather:   weatherCtrlImp.New(weather.New("http://127.0.0.1:0", "")),
			KB:        kbCtrlImp.New(kbSvc, nil, 0),
			Market:    marketCtrlImp.New(time.UTC),
			Translate: translateCtrlImp.New(),
			Health:    healthCtrlImp.NewHealthCtrl(db, healthCtrlImp.Upstreams{}),
		})
	return e, sessions
}

func do(e *echo.Echo, method, target, body string, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutesDevMode(t *testing.T) {
	e, _ := newServer(t, false)
	tests := []struct {
		method, target, body string
		want                 int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/questionnaire", "", http.StatusOK},
		{http.MethodGet, "/crops", "", http.StatusOK},
		{http.MethodGet, "/crops/recommendations?soil=Loamy+soil", "", http.StatusOK},
		{http.MethodGet, "/crops/rice/compatibility?soil=Clay+soil", "", http.StatusOK},
		{http.MethodGet, "/market/prices", "", http.StatusOK},
		{http.MethodGet, "/translate/languages", "", http.StatusOK},
		{http.MethodGet, "/whoami", "", http.StatusOK},
		{http.MethodGet, "/profile", "", http.StatusNotFound},
		{http.MethodGet, "/datasets", "", http.StatusOK},
		{http.MethodPost, "/chat", `{"message":"hello"}`, http.StatusOK},
		{http.MethodGet, "/chat/suggestions", "", http.StatusOK},
		{http.MethodGet, "/weather/current?location=Salem", "", http.StatusServiceUnavailable},
		{http.MethodGet, "/kb/search?q=soil", "", http.StatusOK},
		{http.MethodGet, "/devlogin?uid=selvi", "", http.StatusOK},
	}
	for _, tt := range tests {
		if rec := do(e, tt.method, tt.target, tt.body, nil); rec.Code != tt.want {
			t.Errorf("%s %s = %d, want %d (%s)", tt.method, tt.target, rec.Code, tt.want, rec.Body)
		}
	}
}

func TestRoutesAuthMode(t *testing.T) {
	e, sessions := newServer(t, true)

	if rec := do(e, http.MethodGet, "/whoami", "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("whoami without session = %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/devlogin", "", nil); rec.Code == http.StatusOK {
		t.Fatal("devlogin must not be served with auth enabled")
	}
	if rec := do(e, http.MethodGet, "/crops", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("public route = %d", rec.Code)
	}

	tok, _ := sessions.Issue("murugan")
	rec := do(e, http.MethodGet, "/whoami", "", map[string]string{echo.HeaderAuthorization: "Bearer " + tok})
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "murugan") {
		t.Fatalf("whoami = %d %s", rec.Code, rec.Body)
	}
}
