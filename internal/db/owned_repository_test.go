package db

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/brunovieira/advocase/internal/models"
	"gorm.io/gorm"
)

func newTestRepositories(t *testing.T) *Repositories {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "advocase-test.db")
	database, err := Open(Config{SQLitePath: databasePath})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return NewRepositories(database)
}

func testClient(name string) models.Client {
	return models.Client{
		Kind:           models.ClientKindIndividual,
		Name:           name,
		TaxID:          "123.456.789-00",
		Tags:           []string{},
		ServiceHistory: []models.HistoryEntry{},
	}
}

func TestCreateStampsIdentity(t *testing.T) {
	repos := newTestRepositories(t)
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	client := testClient("Ana Souza")
	if err := repos.Clients.Create(&client, "account-1", now); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if client.ID == "" {
		t.Fatal("expected id to be assigned")
	}
	if client.AccountID != "account-1" {
		t.Fatalf("expected account id stamped, got %q", client.AccountID)
	}
	if !client.CreatedAt.Equal(now) {
		t.Fatalf("expected created_at %v, got %v", now, client.CreatedAt)
	}

	stored, err := repos.Clients.FindByID("account-1", client.ID)
	if err != nil {
		t.Fatalf("FindByID() unexpected error: %v", err)
	}
	if stored.Name != "Ana Souza" {
		t.Fatalf("expected stored name, got %q", stored.Name)
	}
	if stored.ServiceHistory == nil || len(stored.ServiceHistory) != 0 {
		t.Fatalf("expected empty service history, got %#v", stored.ServiceHistory)
	}
}

func TestOwnershipScopingHidesForeignRecords(t *testing.T) {
	repos := newTestRepositories(t)
	now := time.Now().UTC()

	mine := testClient("Mine")
	if err := repos.Clients.Create(&mine, "account-1", now); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if _, err := repos.Clients.FindByID("account-2", mine.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected foreign get to report not found, got %v", err)
	}

	replacement := testClient("Hijacked")
	if _, err := repos.Clients.Update("account-2", mine.ID, &replacement); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected foreign update to report not found, got %v", err)
	}

	if err := repos.Clients.Delete("account-2", mine.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected foreign delete to report not found, got %v", err)
	}

	others, err := repos.Clients.ListByAccount("account-2")
	if err != nil {
		t.Fatalf("ListByAccount() unexpected error: %v", err)
	}
	if len(others) != 0 {
		t.Fatalf("expected empty foreign list, got %d records", len(others))
	}

	kept, err := repos.Clients.FindByID("account-1", mine.ID)
	if err != nil {
		t.Fatalf("FindByID() unexpected error: %v", err)
	}
	if kept.Name != "Mine" {
		t.Fatalf("expected record untouched, got %q", kept.Name)
	}
}

func TestUpdateReplacesFieldsButKeepsStampsAndHistory(t *testing.T) {
	repos := newTestRepositories(t)
	created := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

	client := testClient("Before")
	client.Notes = "initial notes"
	if err := repos.Clients.Create(&client, "account-1", created); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	entry := models.HistoryEntry{Description: "first meeting", Timestamp: created}
	if err := repos.Clients.AppendServiceHistory("account-1", client.ID, entry); err != nil {
		t.Fatalf("AppendServiceHistory() unexpected error: %v", err)
	}

	replacement := testClient("After")
	updated, err := repos.Clients.Update("account-1", client.ID, &replacement)
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}

	if updated.ID != client.ID {
		t.Fatalf("expected id to survive update, got %q", updated.ID)
	}
	if updated.Name != "After" {
		t.Fatalf("expected replaced name, got %q", updated.Name)
	}
	// Full replace includes zero values.
	if updated.Notes != "" {
		t.Fatalf("expected notes cleared by full replace, got %q", updated.Notes)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Fatalf("expected created_at preserved, got %v", updated.CreatedAt)
	}
	if len(updated.ServiceHistory) != 1 || updated.ServiceHistory[0].Description != "first meeting" {
		t.Fatalf("expected service history preserved, got %#v", updated.ServiceHistory)
	}
}

func TestUpdateMissingRecordReportsNotFound(t *testing.T) {
	repos := newTestRepositories(t)

	replacement := testClient("Nobody")
	if _, err := repos.Clients.Update("account-1", "missing-id", &replacement); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteIsNotIdempotent(t *testing.T) {
	repos := newTestRepositories(t)

	client := testClient("Short lived")
	if err := repos.Clients.Create(&client, "account-1", time.Now().UTC()); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if err := repos.Clients.Delete("account-1", client.ID); err != nil {
		t.Fatalf("first Delete() unexpected error: %v", err)
	}
	if err := repos.Clients.Delete("account-1", client.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected second delete to report not found, got %v", err)
	}
}

func TestAppendServiceHistoryPreservesOrder(t *testing.T) {
	repos := newTestRepositories(t)
	base := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)

	client := testClient("History")
	if err := repos.Clients.Create(&client, "account-1", base); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	descriptions := []string{"intake call", "sent contract", "signed contract"}
	for index, description := range descriptions {
		entry := models.HistoryEntry{Description: description, Timestamp: base.Add(time.Duration(index) * time.Hour)}
		if err := repos.Clients.AppendServiceHistory("account-1", client.ID, entry); err != nil {
			t.Fatalf("AppendServiceHistory(%q) unexpected error: %v", description, err)
		}
	}

	stored, err := repos.Clients.FindByID("account-1", client.ID)
	if err != nil {
		t.Fatalf("FindByID() unexpected error: %v", err)
	}
	if len(stored.ServiceHistory) != len(descriptions) {
		t.Fatalf("expected %d entries, got %d", len(descriptions), len(stored.ServiceHistory))
	}
	for index, description := range descriptions {
		if stored.ServiceHistory[index].Description != description {
			t.Fatalf("expected entry %d to be %q, got %q", index, description, stored.ServiceHistory[index].Description)
		}
	}
}

func TestAppendTimelineMissingCaseReportsNotFound(t *testing.T) {
	repos := newTestRepositories(t)

	entry := models.HistoryEntry{Description: "filed motion", Timestamp: time.Now().UTC()}
	if err := repos.Cases.AppendTimeline("account-1", "missing-id", entry); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDocumentListFiltered(t *testing.T) {
	repos := newTestRepositories(t)
	now := time.Now().UTC()

	first := models.Document{Name: "contract.pdf", Type: "pdf", ContentBase64: "YQ==", CaseID: "case-1", ClientID: "client-1"}
	second := models.Document{Name: "notes.txt", Type: "txt", ContentBase64: "Yg==", CaseID: "case-2", ClientID: "client-1"}
	third := models.Document{Name: "other.txt", Type: "txt", ContentBase64: "Yw=="}
	for _, document := range []*models.Document{&first, &second, &third} {
		if err := repos.Documents.Create(document, "account-1", now); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
	}

	all, err := repos.Documents.ListFiltered("account-1", "", "")
	if err != nil {
		t.Fatalf("ListFiltered() unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(all))
	}

	byCase, err := repos.Documents.ListFiltered("account-1", "case-1", "")
	if err != nil {
		t.Fatalf("ListFiltered(case) unexpected error: %v", err)
	}
	if len(byCase) != 1 || byCase[0].Name != "contract.pdf" {
		t.Fatalf("expected only the case-1 document, got %#v", byCase)
	}

	byClient, err := repos.Documents.ListFiltered("account-1", "", "client-1")
	if err != nil {
		t.Fatalf("ListFiltered(client) unexpected error: %v", err)
	}
	if len(byClient) != 2 {
		t.Fatalf("expected 2 client-1 documents, got %d", len(byClient))
	}

	both, err := repos.Documents.ListFiltered("account-1", "case-2", "client-1")
	if err != nil {
		t.Fatalf("ListFiltered(case+client) unexpected error: %v", err)
	}
	if len(both) != 1 || both[0].Name != "notes.txt" {
		t.Fatalf("expected only notes.txt, got %#v", both)
	}
}
