package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestQuestionnaireFlow_CreateAndLog(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "quest@test.com", "password123")

	// Step 1: Create a questionnaire
	rec := app.request("POST", "/api/v1/questionnaires",
		`{"income_sources":["Salario"],"monthly_income":1700000,"selected_categories":["Mercado","Arriendo","Servicios"],"has_debt":"no","savings_interest":"maybe"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating questionnaire, got %d: %s", rec.Code, rec.Body.String())
	}
	questionnaire := parseJSON(t, rec)["questionnaire"].(map[string]interface{})
	questionnaireID := questionnaire["id"].(float64)
	if questionnaire["monthly_income"].(float64) != 1700000 {
		t.Errorf("expected monthly income 1700000, got %v", questionnaire["monthly_income"])
	}

	// Step 2: Log two expenses
	rec = app.request("POST", fmt.Sprintf("/api/v1/questionnaires/%.0f/log", questionnaireID),
		`{"category":"Mercado","amount":250000,"description":"Mercado quincenal"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 logging expense, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", fmt.Sprintf("/api/v1/questionnaires/%.0f/log", questionnaireID),
		`{"category":"Salidas","amount":80000}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 logging expense, got %d: %s", rec.Code, rec.Body.String())
	}
	questionnaire = parseJSON(t, rec)["questionnaire"].(map[string]interface{})
	log := questionnaire["monthly_log"].(map[string]interface{})
	if log["total"].(float64) != 330000 {
		t.Errorf("expected log total 330000, got %v", log["total"])
	}
	if entries := log["entries"].([]interface{}); len(entries) != 2 {
		t.Errorf("expected 2 log entries, got %d", len(entries))
	}

	// Step 3: List questionnaires
	rec = app.request("GET", "/api/v1/questionnaires", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data := parseJSON(t, rec)["data"].([]interface{})
	if len(data) != 1 {
		t.Errorf("expected 1 questionnaire, got %d", len(data))
	}
}

func TestQuestionnaireFlow_Validation(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "questbad@test.com", "password123")

	// Unknown category
	rec := app.request("POST", "/api/v1/questionnaires",
		`{"monthly_income":1700000,"selected_categories":["Yates"],"has_debt":"no","savings_interest":"maybe"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown category, got %d: %s", rec.Code, rec.Body.String())
	}

	// Zero income
	rec = app.request("POST", "/api/v1/questionnaires",
		`{"monthly_income":0,"selected_categories":["Mercado"],"has_debt":"no","savings_interest":"maybe"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero income, got %d: %s", rec.Code, rec.Body.String())
	}

	// Bad debt answer
	rec = app.request("POST", "/api/v1/questionnaires",
		`{"monthly_income":1700000,"selected_categories":["Mercado"],"has_debt":"perhaps","savings_interest":"maybe"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad debt answer, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestQuestionnaireFlow_SyncLogFromTransactions(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "questsync@test.com", "password123")

	rec := app.request("POST", "/api/v1/questionnaires",
		`{"monthly_income":1700000,"selected_categories":["Mercado","Arriendo"],"has_debt":"no","savings_interest":"yes"}`, token)
	questionnaireID := parseJSON(t, rec)["questionnaire"].(map[string]interface{})["id"].(float64)

	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	// An expense inside the window, an income inside the window, and an
	// expense outside of it. Only the first should land in the log.
	app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"type":"expense","amount":120000,"category":"Mercado","date":%q}`,
			start.AddDate(0, 0, 9).Format(time.RFC3339)), token)
	app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"type":"income","amount":1700000,"category":"Salario","date":%q}`,
			start.AddDate(0, 0, 1).Format(time.RFC3339)), token)
	app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"type":"expense","amount":99000,"category":"Salidas","date":%q}`,
			end.AddDate(0, 0, 3).Format(time.RFC3339)), token)

	rec = app.request("POST", fmt.Sprintf("/api/v1/questionnaires/%.0f/sync", questionnaireID),
		fmt.Sprintf(`{"start":%q,"end":%q}`, start.Format(time.RFC3339), end.Format(time.RFC3339)), token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 syncing log, got %d: %s", rec.Code, rec.Body.String())
	}
	log := parseJSON(t, rec)["questionnaire"].(map[string]interface{})["monthly_log"].(map[string]interface{})
	if log["total"].(float64) != 120000 {
		t.Errorf("expected synced total 120000, got %v", log["total"])
	}
	if entries := log["entries"].([]interface{}); len(entries) != 1 {
		t.Errorf("expected 1 synced entry, got %d", len(entries))
	}
}

func TestQuestionnaireFlow_DeleteAndOwnership(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "questdel@test.com", "password123")
	otherToken, _ := app.registerUser(t, "questother@test.com", "password123")

	rec := app.request("POST", "/api/v1/questionnaires",
		`{"monthly_income":1700000,"selected_categories":["Mercado"],"has_debt":"no","savings_interest":"no"}`, token)
	questionnaireID := parseJSON(t, rec)["questionnaire"].(map[string]interface{})["id"].(float64)

	// Another user cannot see it
	rec = app.request("GET", fmt.Sprintf("/api/v1/questionnaires/%.0f", questionnaireID), "", otherToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign questionnaire, got %d", rec.Code)
	}

	// Owner can delete it
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/questionnaires/%.0f", questionnaireID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting questionnaire, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", fmt.Sprintf("/api/v1/questionnaires/%.0f", questionnaireID), "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}
