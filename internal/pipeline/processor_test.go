package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/dgallion1/xmlgest/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessor_ProcessAll(t *testing.T) {
	proc := NewProcessor(3, discardLogger())

	var inputs []Input
	for i := 0; i < 10; i++ {
		doc := fmt.Sprintf(`<root><header><n>%d</n></header></root>`, i)
		inputs = append(inputs, Input{
			Name:   fmt.Sprintf("doc-%d", i),
			Data:   []byte(doc),
			Preset: config.Preset{Parents: []string{"header"}},
		})
	}
	// One malformed document among the batch.
	inputs = append(inputs, Input{Name: "bad", Data: []byte("<root><oops></root>")})

	results := proc.ProcessAll(context.Background(), inputs)
	if len(results) != len(inputs) {
		t.Fatalf("expected %d results, got %d", len(inputs), len(results))
	}

	for i := 0; i < 10; i++ {
		res := results[i]
		if res.Err != nil {
			t.Errorf("doc-%d: unexpected error: %v", i, res.Err)
			continue
		}
		if res.Name != fmt.Sprintf("doc-%d", i) {
			t.Errorf("expected input order preserved, got %q at %d", res.Name, i)
		}
	}

	bad := results[len(results)-1]
	if bad.Err == nil {
		t.Error("expected error for malformed document")
	}

	snap := proc.Stats().Snapshot()
	if snap.Documents != 10 {
		t.Errorf("expected 10 processed documents, got %d", snap.Documents)
	}
	if snap.Failures != 1 {
		t.Errorf("expected 1 failure, got %d", snap.Failures)
	}
}

func TestProcessor_CancelledContext(t *testing.T) {
	proc := NewProcessor(1, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var inputs []Input
	for i := 0; i < 50; i++ {
		inputs = append(inputs, Input{Name: fmt.Sprintf("doc-%d", i), Data: []byte("<root/>")})
	}
	results := proc.ProcessAll(ctx, inputs)

	var cancelled int
	for _, res := range results {
		if res.Err == context.Canceled {
			cancelled++
		}
	}
	if cancelled == 0 {
		t.Error("expected at least one input to fail with context.Canceled")
	}
}
