package api

import (
	"net/http"
	"testing"

	"github.com/brunovieira/advocase/internal/models"
)

func deadlineRequestPayload(title string, date string) map[string]any {
	return map[string]any{
		"kind":  models.DeadlineKindDeadline,
		"title": title,
		"date":  date,
		"time":  "14:00",
	}
}

func TestDeadlineCreateAppliesDefaultReminderOffsets(t *testing.T) {
	app := newTestApp(t)
	auth := registerTestAccount(t, app, "ana@example.com")

	var created models.Deadline
	status := doJSON(t, app, http.MethodPost, "/api/deadlines", auth.Token,
		deadlineRequestPayload("file appeal", "2026-04-01"), &created)
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d", status)
	}
	if created.ID == "" {
		t.Fatal("expected deadline id to be assigned")
	}

	want := models.DefaultReminderOffsets()
	if len(created.ReminderOffsets) != len(want) {
		t.Fatalf("expected default reminder offsets %v, got %v", want, created.ReminderOffsets)
	}
	for index, offset := range want {
		if created.ReminderOffsets[index] != offset {
			t.Fatalf("expected default reminder offsets %v, got %v", want, created.ReminderOffsets)
		}
	}
}

func TestDeadlineCreateKeepsExplicitReminderOffsets(t *testing.T) {
	app := newTestApp(t)
	auth := registerTestAccount(t, app, "ana@example.com")

	payload := deadlineRequestPayload("file appeal", "2026-04-01")
	payload["reminder_offsets"] = []int{14, 2}

	var created models.Deadline
	doJSON(t, app, http.MethodPost, "/api/deadlines", auth.Token, payload, &created)
	if len(created.ReminderOffsets) != 2 || created.ReminderOffsets[0] != 14 || created.ReminderOffsets[1] != 2 {
		t.Fatalf("expected explicit reminder offsets [14 2], got %v", created.ReminderOffsets)
	}
}

func TestDeadlineCreateValidatesRequiredFields(t *testing.T) {
	app := newTestApp(t)
	auth := registerTestAccount(t, app, "ana@example.com")

	payload := deadlineRequestPayload("file appeal", "2026-04-01")
	delete(payload, "date")
	var body map[string]string
	status := doJSON(t, app, http.MethodPost, "/api/deadlines", auth.Token, payload, &body)
	if status != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", status)
	}
	if body["error"] != "date is required" {
		t.Fatalf("unexpected error message: %q", body["error"])
	}
}

func TestDeadlineUpdateAndDelete(t *testing.T) {
	app := newTestApp(t)
	auth := registerTestAccount(t, app, "ana@example.com")

	var created models.Deadline
	doJSON(t, app, http.MethodPost, "/api/deadlines", auth.Token,
		deadlineRequestPayload("file appeal", "2026-04-01"), &created)

	replacement := deadlineRequestPayload("file counter-appeal", "2026-04-03")
	replacement["kind"] = models.DeadlineKindHearing
	var updated models.Deadline
	status := doJSON(t, app, http.MethodPut, "/api/deadlines/"+created.ID, auth.Token, replacement, &updated)
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d", status)
	}
	if updated.Title != "file counter-appeal" || updated.Date != "2026-04-03" || updated.Kind != models.DeadlineKindHearing {
		t.Fatalf("unexpected updated deadline: %#v", updated)
	}

	var body map[string]string
	if status := doJSON(t, app, http.MethodDelete, "/api/deadlines/"+created.ID, auth.Token, nil, &body); status != http.StatusOK {
		t.Fatalf("expected status 200 on delete, got %d", status)
	}
	if body["message"] != "deadline deleted" {
		t.Fatalf("unexpected delete message: %q", body["message"])
	}
	if status := doJSON(t, app, http.MethodGet, "/api/deadlines/"+created.ID, auth.Token, nil, nil); status != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", status)
	}
}
