package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"fleet-command/src/pkg/trips"
)

const tripFeedCSV = "Data,MOTORISTA,Placa,Frete,Diesel,Manutenção,Comissões,KM,Eixos\n" +
	"01/08,Ana,ABC1234,1000,200,0,50,100,3\n" +
	"02/08,Bruno,DEF5678,500,100,50,0,80,\n" +
	",,,,,,,,\n" +
	"03/08,,DEF5678,300,50,0,0,60,2\n"

const fixedCostsCSV = "Categoria,Descrição,Valor,Vencimento\n" +
	"Seguro,Frota,\"R$ 1.200,00\",10\n"

func newTestDashboard(t *testing.T) *Dashboard {
	t.Helper()

	feedServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fixed" {
			w.Write([]byte(fixedCostsCSV))
			return
		}
		w.Write([]byte(tripFeedCSV))
	}))
	t.Cleanup(feedServer.Close)

	d := NewDashboard(trips.Resolver{ReferenceYear: 2025}, feedServer.URL+"/trips", feedServer.URL+"/fixed", 5*time.Second)
	if loadErr := d.Load(); loadErr != nil {
		t.Fatalf("load failed: %v", loadErr)
	}
	return d
}

func performRequest(d *Dashboard, method string, target string) *httptest.ResponseRecorder {
	echoServer := echo.New()
	RegisterRoutes(echoServer, d)

	request := httptest.NewRequest(method, target, nil)
	recorder := httptest.NewRecorder()
	echoServer.ServeHTTP(recorder, request)
	return recorder
}

func TestTripsEndpointReturnsFilteredView(t *testing.T) {
	d := newTestDashboard(t)

	recorder := performRequest(d, http.MethodGet, "/api/v1/trips?driver=Ana")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var view View
	if decodeErr := json.Unmarshal(recorder.Body.Bytes(), &view); decodeErr != nil {
		t.Fatalf("failed to decode view: %v", decodeErr)
	}
	if view.Summary.TripCount != 1 {
		t.Fatalf("expected 1 filtered trip, got %d", view.Summary.TripCount)
	}
	if view.Summary.TotalRevenue != 1000 {
		t.Fatalf("expected Ana's revenue only, got %v", view.Summary.TotalRevenue)
	}
}

func TestTripsEndpointUnfilteredTotals(t *testing.T) {
	d := newTestDashboard(t)

	recorder := performRequest(d, http.MethodGet, "/api/v1/trips")

	var view View
	if decodeErr := json.Unmarshal(recorder.Body.Bytes(), &view); decodeErr != nil {
		t.Fatalf("failed to decode view: %v", decodeErr)
	}
	// Empty feed row dropped, three trips kept.
	if view.Summary.TripCount != 3 {
		t.Fatalf("expected 3 trips, got %d", view.Summary.TripCount)
	}
	if view.Summary.TotalRevenue != 1800 {
		t.Fatalf("expected total revenue 1800, got %v", view.Summary.TotalRevenue)
	}
}

func TestFiltersEndpointListsDistinctOptions(t *testing.T) {
	d := newTestDashboard(t)

	recorder := performRequest(d, http.MethodGet, "/api/v1/filters")

	var options struct {
		Drivers []string `json:"drivers"`
		Plates  []string `json:"plates"`
	}
	if decodeErr := json.Unmarshal(recorder.Body.Bytes(), &options); decodeErr != nil {
		t.Fatalf("failed to decode options: %v", decodeErr)
	}
	if len(options.Drivers) != 2 || options.Drivers[0] != "Ana" || options.Drivers[1] != "Bruno" {
		t.Fatalf("unexpected drivers: %+v", options.Drivers)
	}
	if len(options.Plates) != 2 {
		t.Fatalf("expected 2 distinct plates, got %+v", options.Plates)
	}
}

func TestFixedCostsEndpoint(t *testing.T) {
	d := newTestDashboard(t)

	recorder := performRequest(d, http.MethodGet, "/api/v1/fixed-costs")

	var payload struct {
		Total float64 `json:"total"`
	}
	if decodeErr := json.Unmarshal(recorder.Body.Bytes(), &payload); decodeErr != nil {
		t.Fatalf("failed to decode payload: %v", decodeErr)
	}
	if payload.Total != 1200 {
		t.Fatalf("expected fixed-costs total 1200, got %v", payload.Total)
	}
}

func TestHealthEndpointReportsCounts(t *testing.T) {
	d := newTestDashboard(t)

	recorder := performRequest(d, http.MethodGet, "/api/v1/health")

	var status Status
	if decodeErr := json.Unmarshal(recorder.Body.Bytes(), &status); decodeErr != nil {
		t.Fatalf("failed to decode status: %v", decodeErr)
	}
	if status.TripCount != 3 || status.FixedCostCount != 1 {
		t.Fatalf("unexpected status: %+v", status)
	}
	if status.LoadedAt.IsZero() {
		t.Fatalf("expected loaded timestamp to be set")
	}
}

func TestRefreshEndpointReloadsFeeds(t *testing.T) {
	d := newTestDashboard(t)

	recorder := performRequest(d, http.MethodPost, "/api/v1/refresh")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var payload struct {
		Refreshed bool `json:"refreshed"`
	}
	if decodeErr := json.Unmarshal(recorder.Body.Bytes(), &payload); decodeErr != nil {
		t.Fatalf("failed to decode payload: %v", decodeErr)
	}
	if !payload.Refreshed {
		t.Fatalf("expected refreshed=true")
	}
}

func TestRefreshEndpointKeepsDataOnFeedFailure(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	defer failing.Close()

	d := newTestDashboard(t)
	d.tripFeedURL = failing.URL

	recorder := performRequest(d, http.MethodPost, "/api/v1/refresh")
	if recorder.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", recorder.Code)
	}

	status := d.CurrentStatus()
	if status.TripCount != 3 {
		t.Fatalf("expected previous data retained, got %+v", status)
	}
}
