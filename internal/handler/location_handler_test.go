package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/antchfx/htmlquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"location-filter-go/internal/location"
	"location-filter-go/pkg/model"
)

func newLocationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewLocationHandler(location.Philippines)

	r := gin.New()
	r.GET("/api/regions", h.GetRegions)
	r.GET("/api/regions/summary", h.GetRegionSummaries)
	r.GET("/api/regions/:name/cities", h.GetRegionCities)
	r.GET("/api/cities/:city/regions", h.GetCityRegions)
	r.GET("/api/locations/filter", h.GetLocationFilter)
	r.POST("/api/locations/filter", h.RepopulateLocationFilter)
	return r
}

func serve(r http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetRegions(t *testing.T) {
	w := serve(newLocationRouter(), http.MethodGet, "/api/regions", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 17)
	assert.Equal(t, []string{"Marawi", "Cotabato City", "Lamitan"}, got["Bangsamoro Autonomous Region (BARMM)"])

	// Key order follows the table
	body := w.Body.String()
	assert.Less(t, strings.Index(body, "Metro Manila (NCR)"), strings.Index(body, "Ilocos Region (Region I)"))
	assert.Less(t, strings.Index(body, "Caraga (Region XIII)"), strings.Index(body, "Cordillera Administrative Region (CAR)"))
}

func TestGetRegionSummaries(t *testing.T) {
	w := serve(newLocationRouter(), http.MethodGet, "/api/regions/summary", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []model.RegionSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 17)
	assert.Equal(t, model.RegionSummary{Name: "Metro Manila (NCR)", CityCount: 16}, got[0])
}

func TestGetRegionCities(t *testing.T) {
	r := newLocationRouter()

	w := serve(r, http.MethodGet, "/api/regions/"+url.PathEscape("Ilocos Region (Region I)")+"/cities", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got model.RegionCitiesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Ilocos Region (Region I)", got.Region)
	assert.Equal(t, []string{"Laoag", "Vigan", "San Fernando", "Alaminos", "Dagupan", "Urdaneta"}, got.Cities)

	w = serve(r, http.MethodGet, "/api/regions/Nowhere/cities", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCityRegions(t *testing.T) {
	r := newLocationRouter()

	w := serve(r, http.MethodGet, "/api/cities/"+url.PathEscape("San Fernando")+"/regions", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got model.CityRegionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []string{"Ilocos Region (Region I)", "Central Luzon (Region III)"}, got.Regions)

	w = serve(r, http.MethodGet, "/api/cities/Nowhere/regions", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetLocationFilter(t *testing.T) {
	w := serve(newLocationRouter(), http.MethodGet, "/api/locations/filter?name=city&default="+url.QueryEscape("Any city"), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	doc, err := htmlquery.Parse(w.Body)
	require.NoError(t, err)

	sel := htmlquery.FindOne(doc, "//select")
	require.NotNil(t, sel)
	assert.Equal(t, "city", htmlquery.SelectAttr(sel, "name"))
	assert.Equal(t, "Any city", htmlquery.InnerText(htmlquery.FindOne(sel, "./option")))
	assert.Len(t, htmlquery.Find(sel, "./optgroup"), 17)
	assert.Len(t, htmlquery.Find(sel, ".//option"), 1+location.Philippines.CityCount())
}

func TestRepopulateLocationFilter(t *testing.T) {
	r := newLocationRouter()
	markup := `<select id="loc"><option>All Locations</option><option value="x">X</option><option value="y">Y</option></select>`

	w := serve(r, http.MethodPost, "/api/locations/filter", markup)
	require.Equal(t, http.StatusOK, w.Code)
	first := w.Body.String()

	doc, err := htmlquery.Parse(strings.NewReader(first))
	require.NoError(t, err)
	assert.Len(t, htmlquery.Find(doc, "//option"), 1+location.Philippines.CityCount())
	assert.Nil(t, htmlquery.FindOne(doc, "//option[@value='x']"))

	// Posting the result back yields the same control
	w = serve(r, http.MethodPost, "/api/locations/filter", first)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first, w.Body.String())
}

func TestRepopulateLocationFilterWithoutSelect(t *testing.T) {
	w := serve(newLocationRouter(), http.MethodPost, "/api/locations/filter", `<ul><li>nope</li></ul>`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRepopulateLocationFilterTooLarge(t *testing.T) {
	body := "<select><option>All Locations</option></select>" + strings.Repeat(" ", maxFilterMarkupBytes)
	w := serve(newLocationRouter(), http.MethodPost, "/api/locations/filter", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
