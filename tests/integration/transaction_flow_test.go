package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestTransactionFlow_CreateAndList(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "tx@test.com", "password123")

	march := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)

	rec := app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"type":"income","amount":1700000,"category":"Salario","description":"Nómina","date":%q}`,
			march.Format(time.RFC3339)), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating income, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"type":"expense","amount":250000,"category":"Mercado","date":%q}`,
			march.AddDate(0, 0, 2).Format(time.RFC3339)), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating expense, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"type":"expense","amount":80000,"category":"Salidas","date":%q}`,
			march.AddDate(0, 1, 0).Format(time.RFC3339)), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating expense, got %d: %s", rec.Code, rec.Body.String())
	}

	// All transactions
	rec = app.request("GET", "/api/v1/transactions", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if len(result["data"].([]interface{})) != 3 {
		t.Errorf("expected 3 transactions, got %d", len(result["data"].([]interface{})))
	}

	// Filter by type
	rec = app.request("GET", "/api/v1/transactions?type=expense", "", token)
	if len(parseJSON(t, rec)["data"].([]interface{})) != 2 {
		t.Errorf("expected 2 expenses, got %s", rec.Body.String())
	}

	// Filter by category
	rec = app.request("GET", "/api/v1/transactions?category=Mercado", "", token)
	if len(parseJSON(t, rec)["data"].([]interface{})) != 1 {
		t.Errorf("expected 1 Mercado transaction, got %s", rec.Body.String())
	}

	// Filter by date window
	rec = app.request("GET", "/api/v1/transactions?from_date=2026-03-01&to_date=2026-03-31", "", token)
	if len(parseJSON(t, rec)["data"].([]interface{})) != 2 {
		t.Errorf("expected 2 March transactions, got %s", rec.Body.String())
	}
}

func TestTransactionFlow_Validation(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "txbad@test.com", "password123")

	// Bad type
	rec := app.request("POST", "/api/v1/transactions",
		`{"type":"loan","amount":100,"date":"2026-03-05T00:00:00Z"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad type, got %d: %s", rec.Code, rec.Body.String())
	}

	// Negative amount
	rec = app.request("POST", "/api/v1/transactions",
		`{"type":"expense","amount":-50,"date":"2026-03-05T00:00:00Z"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative amount, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestTransactionFlow_GetAndDelete(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "txdel@test.com", "password123")
	otherToken, _ := app.registerUser(t, "txother@test.com", "password123")

	rec := app.request("POST", "/api/v1/transactions",
		`{"type":"expense","amount":42000,"category":"Antojos","date":"2026-03-05T00:00:00Z"}`, token)
	transactionID := parseJSON(t, rec)["transaction"].(map[string]interface{})["id"].(float64)

	// Owner can read it
	rec = app.request("GET", fmt.Sprintf("/api/v1/transactions/%.0f", transactionID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Another user cannot
	rec = app.request("GET", fmt.Sprintf("/api/v1/transactions/%.0f", transactionID), "", otherToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign transaction, got %d", rec.Code)
	}

	// Delete and verify it is gone
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/transactions/%.0f", transactionID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting transaction, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", fmt.Sprintf("/api/v1/transactions/%.0f", transactionID), "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}
