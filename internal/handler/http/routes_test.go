package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-fundraiser/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type routeCase struct {
	method string
	path   string
}

var publicRoutes = []routeCase{
	{http.MethodGet, "/"},
	{http.MethodPost, "/api/auth/register"},
	{http.MethodPost, "/api/auth/login"},
	{http.MethodGet, "/api/category"},
	{http.MethodGet, "/api/category/" + testUserID},
	{http.MethodGet, "/api/campaign"},
	{http.MethodGet, "/api/campaign/" + testUserID},
	{http.MethodGet, "/api/campaign/help-the-shelter-abc123/slug"},
	{http.MethodGet, "/api/campaign-approved"},
	{http.MethodGet, "/api/campaign-approved/" + testUserID},
}

var protectedRoutes = []routeCase{
	{http.MethodGet, "/api/auth/me"},
	{http.MethodPost, "/api/auth/activation"},
	{http.MethodPost, "/api/category"},
	{http.MethodPut, "/api/category/" + testUserID},
	{http.MethodDelete, "/api/category/" + testUserID},
	{http.MethodPost, "/api/campaign"},
	{http.MethodPut, "/api/campaign/" + testUserID},
	{http.MethodDelete, "/api/campaign/" + testUserID},
	{http.MethodPost, "/api/media/upload-single"},
	{http.MethodPost, "/api/media/upload-multiple"},
	{http.MethodDelete, "/api/media/remove"},
}

func TestInit_RegistersPublicRoutes(t *testing.T) {
	h, ts := newTestHandler(t)

	boom := errors.New("boom")
	ts.appInfo.EXPECT().Status(gomock.Any()).Return(models.ServerStatus{}).AnyTimes()
	ts.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, boom).AnyTimes()
	ts.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, boom).AnyTimes()
	ts.category.EXPECT().ListCategories(gomock.Any(), gomock.Any()).Return(models.Page[models.Category]{}, boom).AnyTimes()
	ts.category.EXPECT().GetCategory(gomock.Any(), gomock.Any()).Return(models.Category{}, boom).AnyTimes()
	ts.campaign.EXPECT().ListCampaigns(gomock.Any(), gomock.Any()).Return(models.Page[models.Campaign]{}, boom).AnyTimes()
	ts.campaign.EXPECT().ListApprovedCampaigns(gomock.Any(), gomock.Any()).Return(models.Page[models.Campaign]{}, boom).AnyTimes()
	ts.campaign.EXPECT().GetCampaign(gomock.Any(), gomock.Any()).Return(models.Campaign{}, boom).AnyTimes()
	ts.campaign.EXPECT().GetApprovedCampaign(gomock.Any(), gomock.Any()).Return(models.Campaign{}, boom).AnyTimes()
	ts.campaign.EXPECT().GetCampaignBySlug(gomock.Any(), gomock.Any()).Return(models.Campaign{}, boom).AnyTimes()

	for _, tc := range publicRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(h, jsonRequest(tc.method, tc.path, "{}", ""))

			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(h, jsonRequest(tc.method, tc.path, nil, ""))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, "empty authorization header", env.Message)
		})
	}
}

func TestInit_UnknownRouteReturnsEnvelope(t *testing.T) {
	tests := []routeCase{
		{http.MethodGet, "/api/nonexistent"},
		{http.MethodGet, "/api/auth/unknown"},
		{http.MethodDelete, "/"},
		{http.MethodPatch, "/api/category"},
	}

	h, _ := newTestHandler(t)
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(h, jsonRequest(tc.method, tc.path, nil, ""))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, "route not found", env.Message)
			assert.NotNil(t, env.ResponseTime)
		})
	}
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	req := jsonRequest(http.MethodGet, "/api/nonexistent", nil, "")
	req.Header.Set(traceIDHeader, "trace-123")
	rec := serve(h, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

func TestStatus(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.appInfo.EXPECT().Status(gomock.Any()).Return(models.ServerStatus{
		Name:        "go-fundraiser",
		Environment: "development",
		Version:     "1.0.0",
	})

	rec := serve(h, jsonRequest(http.MethodGet, "/", nil, ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"name":"go-fundraiser","environment":"development","version":"1.0.0"}`, string(env.Data))
}
