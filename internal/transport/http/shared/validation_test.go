package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestValidatorRequired(t *testing.T) {
	v := NewValidator()
	v.Required("name", "", "name is required")
	v.Required("email", "  ", "email is required")
	v.Required("department", "Engineering", "department is required")

	issues := v.Issues()
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %v", issues)
	}
	// Issues come back sorted by field.
	if issues[0].Field != "email" || issues[1].Field != "name" {
		t.Fatalf("unexpected order: %v", issues)
	}
}

func TestValidatorDate(t *testing.T) {
	v := NewValidator()
	if _, ok := v.Date("fromDate", "2024-03-04"); !ok {
		t.Fatal("valid date rejected")
	}
	if _, ok := v.Date("toDate", "04/03/2024"); ok {
		t.Fatal("invalid date accepted")
	}
	if !v.HasIssues() {
		t.Fatal("expected an issue for the invalid date")
	}
}

func TestValidatorDateOrder(t *testing.T) {
	v := NewValidator()
	from, _ := v.Date("fromDate", "2024-03-06")
	to, _ := v.Date("toDate", "2024-03-04")
	v.DateOrder("fromDate", from, "toDate", to)

	if len(v.Issues()) != 2 {
		t.Fatalf("expected an issue per field, got %v", v.Issues())
	}
}

func TestValidatorReject(t *testing.T) {
	v := NewValidator()
	rec := httptest.NewRecorder()
	if v.Reject(rec, "req-1") {
		t.Fatal("clean validator must not reject")
	}

	v.Add("name", "name is required")
	rec = httptest.NewRecorder()
	if !v.Reject(rec, "req-1") {
		t.Fatal("expected rejection")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var payload struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string            `json:"code"`
			Details []ValidationIssue `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Success || payload.Error.Code != "validation_failed" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if len(payload.Error.Details) != 1 || payload.Error.Details[0].Field != "name" {
		t.Fatalf("unexpected details: %v", payload.Error.Details)
	}
}
