package ports

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/labscout/pkg/domain"
)

// RunIntakeStoreContract exercises the IntakeStore behavior every adapter
// must honor. Adapter test suites call it with a freshly-constructed store.
func RunIntakeStoreContract(t *testing.T, store IntakeStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("GetUnknownSession", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		if !errors.Is(err, domain.ErrSessionNotFound) {
			t.Errorf("Get(unknown) error = %v, want ErrSessionNotFound", err)
		}
	})

	t.Run("PutAndGet", func(t *testing.T) {
		if err := store.Put(ctx, "s1", "problem_domain", "weighing"); err != nil {
			t.Fatalf("Put: %v", err)
		}
		if err := store.Put(ctx, "s1", "samples_per_day", 84); err != nil {
			t.Fatalf("Put: %v", err)
		}

		answers, err := store.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if answers["problem_domain"] != "weighing" {
			t.Errorf("problem_domain = %v", answers["problem_domain"])
		}
		if len(answers) != 2 {
			t.Errorf("got %d answers, want 2", len(answers))
		}
	})

	t.Run("PutOverwrites", func(t *testing.T) {
		if err := store.Put(ctx, "s1", "problem_domain", "sample handling logistics"); err != nil {
			t.Fatalf("Put: %v", err)
		}
		answers, err := store.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if answers["problem_domain"] != "sample handling logistics" {
			t.Errorf("re-asked answer not overwritten: %v", answers["problem_domain"])
		}
	})

	t.Run("GetReturnsCopy", func(t *testing.T) {
		answers, err := store.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		answers["problem_domain"] = "tampered"

		again, err := store.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if again["problem_domain"] == "tampered" {
			t.Error("Get leaks a mutable view of the stored answers")
		}
	})

	t.Run("CompleteRemoves", func(t *testing.T) {
		answers, err := store.Complete(ctx, "s1")
		if err != nil {
			t.Fatalf("Complete: %v", err)
		}
		if len(answers) == 0 {
			t.Error("Complete returned no answers")
		}

		if _, err := store.Get(ctx, "s1"); !errors.Is(err, domain.ErrSessionNotFound) {
			t.Errorf("session survived Complete: err = %v", err)
		}
		if _, err := store.Complete(ctx, "s1"); !errors.Is(err, domain.ErrSessionNotFound) {
			t.Errorf("second Complete error = %v, want ErrSessionNotFound", err)
		}
	})

	t.Run("DeleteIsIdempotent", func(t *testing.T) {
		if err := store.Put(ctx, "s2", "budget", "under 100k"); err != nil {
			t.Fatalf("Put: %v", err)
		}
		if err := store.Delete(ctx, "s2"); err != nil {
			t.Errorf("Delete: %v", err)
		}
		if err := store.Delete(ctx, "s2"); err != nil {
			t.Errorf("Delete(twice): %v", err)
		}
		if _, err := store.Get(ctx, "s2"); !errors.Is(err, domain.ErrSessionNotFound) {
			t.Errorf("session survived Delete: err = %v", err)
		}
	})
}
