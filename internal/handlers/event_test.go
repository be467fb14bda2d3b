package handlers

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/eventbook/event-booking-api/internal/models"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	se, ok := err.(huma.StatusError)
	if !ok {
		t.Fatalf("expected a status error, got %T: %v", err, err)
	}
	return se.GetStatus()
}

func createTestEvent(t *testing.T, env *testEnv, bearer, title, dateTime string) models.Event {
	t.Helper()
	input := &CreateEventRequest{}
	input.Authorization = bearer
	input.Body.Title = title
	input.Body.Description = "desc"
	input.Body.Location = "Hall"
	input.Body.DateTime = dateTime

	resp, err := env.events.HandleCreate(context.Background(), input)
	if err != nil {
		t.Fatalf("HandleCreate returned error: %v", err)
	}
	return resp.Body
}

func TestHandleCreateRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	input := &CreateEventRequest{}
	input.Body.Title = "Meetup"
	input.Body.Description = "desc"
	input.Body.Location = "Hall"
	input.Body.DateTime = "2030-01-01T10:00"

	_, err := env.events.HandleCreate(context.Background(), input)
	if statusOf(t, err) != 401 {
		t.Errorf("expected 401 without token, got %v", err)
	}
}

func TestHandleListScopes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, hostA := env.bearerFor(t, "hostA")
	_, hostB := env.bearerFor(t, "hostB")
	createTestEvent(t, env, hostA, "A's event", "2030-02-01T10:00")
	createTestEvent(t, env, hostB, "B's event", "2030-01-01T10:00")

	t.Run("PublicListNeedsNoToken", func(t *testing.T) {
		input := &ListEventsRequest{All: true}
		resp, err := env.events.HandleList(ctx, input)
		if err != nil {
			t.Fatalf("HandleList returned error: %v", err)
		}
		if len(resp.Body) != 2 {
			t.Fatalf("expected 2 events, got %d", len(resp.Body))
		}
		if resp.Body[0].Title != "B's event" {
			t.Errorf("expected ascending dateTime order, got %q first", resp.Body[0].Title)
		}
	})

	t.Run("OwnListNeedsToken", func(t *testing.T) {
		input := &ListEventsRequest{}
		_, err := env.events.HandleList(ctx, input)
		if statusOf(t, err) != 401 {
			t.Fatalf("expected 401 without token, got %v", err)
		}

		input.Authorization = hostA
		resp, err := env.events.HandleList(ctx, input)
		if err != nil {
			t.Fatalf("HandleList returned error: %v", err)
		}
		if len(resp.Body) != 1 || resp.Body[0].Title != "A's event" {
			t.Errorf("expected only host A's event, got %+v", resp.Body)
		}
	})
}

func TestHandleUpdateOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, hostA := env.bearerFor(t, "hostA")
	_, hostB := env.bearerFor(t, "hostB")
	event := createTestEvent(t, env, hostA, "Meetup", "2030-01-01T10:00")

	newTitle := "Hijacked"
	input := &UpdateEventRequest{ID: event.ID}
	input.Authorization = hostB
	input.Body.Title = &newTitle

	_, err := env.events.HandleUpdate(ctx, input)
	if statusOf(t, err) != 404 {
		t.Fatalf("expected 404 for non-owner update, got %v", err)
	}

	input.Authorization = hostA
	resp, err := env.events.HandleUpdate(ctx, input)
	if err != nil {
		t.Fatalf("HandleUpdate returned error: %v", err)
	}
	if resp.Body.Title != "Hijacked" {
		t.Errorf("expected updated title, got %q", resp.Body.Title)
	}
}

func TestHandleDeleteKeepsRegistrations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, host := env.bearerFor(t, "host")
	event := createTestEvent(t, env, host, "Meetup", "2030-01-01T10:00")

	regInput := &CreateRegistrationRequest{}
	regInput.Body.EventID = event.ID
	regInput.Body.Name = "Bob"
	regInput.Body.Email = "b@x.com"
	if _, err := env.registrations.HandleCreate(ctx, regInput); err != nil {
		t.Fatalf("HandleCreate registration returned error: %v", err)
	}

	delInput := &DeleteEventRequest{ID: event.ID}
	delInput.Authorization = host
	if _, err := env.events.HandleDelete(ctx, delInput); err != nil {
		t.Fatalf("HandleDelete returned error: %v", err)
	}

	// No cascade: the registration row stays behind.
	var count int64
	env.db.Model(&models.Registration{}).Count(&count)
	if count != 1 {
		t.Errorf("expected registration to survive event deletion, got %d rows", count)
	}

	// But it no longer shows up in the owner view.
	listInput := &ListMyEventRegistrationsRequest{}
	listInput.Authorization = host
	resp, err := env.registrations.HandleListMyEvents(ctx, listInput)
	if err != nil {
		t.Fatalf("HandleListMyEvents returned error: %v", err)
	}
	if len(resp.Body) != 0 {
		t.Errorf("expected no visible registrations after event deletion, got %d", len(resp.Body))
	}
}
