package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestProjectJSON_NullImageWhenAbsent(t *testing.T) {
	b, err := json.Marshal(Project{ID: 1, Name: "n", Description: "d"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"image":null`) {
		t.Fatalf("image must serialize as null when unset: %s", b)
	}
}

func TestContactJSON_FieldNames(t *testing.T) {
	c := Contact{
		ID: 1, FullName: "Jane", Email: "j@x.io", Mobile: "555", City: "Rome",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	b, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// The public frontends bind to these exact camelCase keys.
	for _, key := range []string{`"fullName"`, `"createdAt"`, `"email"`, `"mobile"`, `"city"`} {
		if !strings.Contains(string(b), key) {
			t.Errorf("missing %s in %s", key, b)
		}
	}
}

func TestTableNames(t *testing.T) {
	if got := (Project{}).TableName(); got != "projects" {
		t.Errorf("Project table = %q", got)
	}
	if got := (Client{}).TableName(); got != "clients" {
		t.Errorf("Client table = %q", got)
	}
	if got := (Contact{}).TableName(); got != "contacts" {
		t.Errorf("Contact table = %q", got)
	}
	if got := (Subscription{}).TableName(); got != "subscriptions" {
		t.Errorf("Subscription table = %q", got)
	}
}
