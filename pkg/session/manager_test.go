package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aretw0/labscout/pkg/adapters/memory"
	"github.com/aretw0/labscout/pkg/domain"
	"github.com/aretw0/labscout/pkg/schema"
	"github.com/aretw0/labscout/pkg/session"
)

func TestManager_TriageRoundTrip(t *testing.T) {
	m := session.NewManager(memory.NewStore())
	ctx := context.Background()

	answers := map[string]any{
		domain.FieldProblemDomain:  "Weighing",
		domain.FieldSamplesPerDay:  84,
		domain.FieldCurrentProcess: "manual weighing",
	}
	for field, value := range answers {
		if err := m.Answer(ctx, "conv-1", session.FlowTriage, field, value); err != nil {
			t.Fatalf("Answer(%s): %v", field, err)
		}
	}

	record, err := m.CompleteTriage(ctx, "conv-1")
	if err != nil {
		t.Fatalf("CompleteTriage: %v", err)
	}
	if record.ProblemDomain != "Weighing" || record.SamplesPerDay != 84 {
		t.Errorf("record = %+v", record)
	}

	// The session is gone after a successful completion.
	if _, err := m.Answers(ctx, "conv-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("session survived completion: %v", err)
	}
}

func TestManager_AnswerRejectsInvalidValueEarly(t *testing.T) {
	m := session.NewManager(memory.NewStore())
	ctx := context.Background()

	err := m.Answer(ctx, "conv-1", session.FlowTriage, domain.FieldSamplesPerDay, -5)
	if err == nil {
		t.Fatal("Answer accepted a negative samples_per_day")
	}
	if !schema.IsValidation(err) {
		t.Errorf("error = %T, want validation error", err)
	}

	// Nothing was stored.
	if _, err := m.Answers(ctx, "conv-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("rejected answer created a session: %v", err)
	}
}

func TestManager_AnswerRejectsUnknownField(t *testing.T) {
	m := session.NewManager(memory.NewStore())

	err := m.Answer(context.Background(), "conv-1", session.FlowTriage, "favourite_color", "blue")
	if err == nil {
		t.Fatal("Answer accepted a field outside the flow schema")
	}
}

func TestManager_IncompleteCompletionKeepsSession(t *testing.T) {
	m := session.NewManager(memory.NewStore())
	ctx := context.Background()

	if err := m.Answer(ctx, "conv-1", session.FlowTriage, domain.FieldProblemDomain, "weighing"); err != nil {
		t.Fatal(err)
	}

	if _, err := m.CompleteTriage(ctx, "conv-1"); err == nil {
		t.Fatal("CompleteTriage succeeded with missing fields")
	}

	// The driver can keep answering after the failed attempt.
	if err := m.Answer(ctx, "conv-1", session.FlowTriage, domain.FieldSamplesPerDay, 84); err != nil {
		t.Fatalf("Answer after failed completion: %v", err)
	}
	if err := m.Answer(ctx, "conv-1", session.FlowTriage, domain.FieldCurrentProcess, "by hand"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.CompleteTriage(ctx, "conv-1"); err != nil {
		t.Errorf("CompleteTriage after repair: %v", err)
	}
}

func TestManager_SpecificationFlow(t *testing.T) {
	m := session.NewManager(memory.NewStore())
	ctx := context.Background()

	answers := map[string]any{
		domain.FieldProjectScope:           "Automate weighing",
		domain.FieldThroughput:             "84 compounds/day",
		domain.FieldWeighingSpecs:          "0.2mg - 100g",
		domain.FieldChemicalTypes:          []string{"Powder", "Flakes"},
		domain.FieldLabwareContainers:      []string{"8ml vials"},
		domain.FieldIdentificationLabeling: "barcodes",
		domain.FieldDataHandling:           "CSV worklists",
		domain.FieldWorkflowUseCases:       []string{"one-to-many"},
	}
	for field, value := range answers {
		if err := m.Answer(ctx, "conv-2", session.FlowSpecification, field, value); err != nil {
			t.Fatalf("Answer(%s): %v", field, err)
		}
	}

	record, err := m.CompleteSpecification(ctx, "conv-2")
	if err != nil {
		t.Fatalf("CompleteSpecification: %v", err)
	}
	if len(record.ChemicalTypes) != 2 {
		t.Errorf("ChemicalTypes = %v", record.ChemicalTypes)
	}
}

func TestManager_Abandon(t *testing.T) {
	m := session.NewManager(memory.NewStore())
	ctx := context.Background()

	if err := m.Answer(ctx, "conv-1", session.FlowTriage, domain.FieldProblemDomain, "weighing"); err != nil {
		t.Fatal(err)
	}
	if err := m.Abandon(ctx, "conv-1"); err != nil {
		t.Fatalf("Abandon: %v", err)
	}
	if _, err := m.Answers(ctx, "conv-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("session survived Abandon: %v", err)
	}
}

func TestManager_CompletionIsExactlyOnceAcrossReplicas(t *testing.T) {
	// Several managers over one shared store model server replicas. Only the
	// store's atomic Complete serializes them; the managers' process-local
	// locks cannot.
	store := memory.NewStore()
	ctx := context.Background()

	seed := session.NewManager(store)
	if err := seed.Answer(ctx, "conv-1", session.FlowTriage, domain.FieldProblemDomain, "weighing"); err != nil {
		t.Fatal(err)
	}
	if err := seed.Answer(ctx, "conv-1", session.FlowTriage, domain.FieldSamplesPerDay, 84); err != nil {
		t.Fatal(err)
	}
	if err := seed.Answer(ctx, "conv-1", session.FlowTriage, domain.FieldCurrentProcess, "by hand"); err != nil {
		t.Fatal(err)
	}

	const replicas = 8
	results := make(chan error, replicas)
	var wg sync.WaitGroup
	for i := 0; i < replicas; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := session.NewManager(store).CompleteTriage(ctx, "conv-1")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var completed, notFound int
	for err := range results {
		switch {
		case err == nil:
			completed++
		case errors.Is(err, domain.ErrSessionNotFound):
			notFound++
		default:
			t.Errorf("unexpected completion error: %v", err)
		}
	}
	if completed != 1 {
		t.Errorf("completed = %d, want exactly 1", completed)
	}
	if notFound != replicas-1 {
		t.Errorf("notFound = %d, want %d", notFound, replicas-1)
	}
}

func TestManager_ConcurrentSessionsDoNotInterfere(t *testing.T) {
	m := session.NewManager(memory.NewStore())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := string(rune('a' + n))
			_ = m.Answer(ctx, id, session.FlowTriage, domain.FieldProblemDomain, "weighing")
			_ = m.Answer(ctx, id, session.FlowTriage, domain.FieldSamplesPerDay, n)
			_ = m.Answer(ctx, id, session.FlowTriage, domain.FieldCurrentProcess, "by hand")
		}(i)
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		id := string(rune('a' + i))
		record, err := m.CompleteTriage(ctx, id)
		if err != nil {
			t.Fatalf("CompleteTriage(%s): %v", id, err)
		}
		if record.SamplesPerDay != i {
			t.Errorf("session %s crossed wires: samples = %d, want %d", id, record.SamplesPerDay, i)
		}
	}
}
