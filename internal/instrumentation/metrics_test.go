package instrumentation

import (
	"context"
	"testing"
	"time"
)

// stdoutProvider creates an enabled provider backed by the stdout
// exporter so tests do not touch the global Prometheus registry.
func stdoutProvider(t *testing.T, ctx context.Context) *Provider {
	t.Helper()

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: ExporterStdout,
		TracingExporter: ExporterNone,
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })
	return provider
}

func TestMetrics_RecordAPIOperation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := stdoutProvider(t, ctx).Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil")
	}

	// Should not panic
	metrics.RecordAPIOperation(ctx, "list", StatusSuccess, 200*time.Millisecond)
	metrics.RecordAPIOperation(ctx, "create", StatusError, 500*time.Millisecond)
	metrics.RecordAPIOperation(ctx, "delete", StatusSuccess, 100*time.Millisecond)
}

func TestMetrics_RecordHTTPRequest(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := stdoutProvider(t, ctx).Metrics()

	// Should not panic
	metrics.RecordHTTPRequest(ctx, "GET", "/tasks", 200)
	metrics.RecordHTTPRequest(ctx, "POST", "/tasks", 403)
	metrics.RecordHTTPRequest(ctx, "DELETE", "/tasks/1", 0)
}

func TestMetrics_RecordToolInvocation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := stdoutProvider(t, ctx).Metrics()

	// Should not panic
	metrics.RecordToolInvocation(ctx, "task_list_tasks", StatusSuccess, 150*time.Millisecond)
	metrics.RecordToolInvocation(ctx, "task_delete_task", StatusError, 75*time.Millisecond)
}

func TestMetrics_UninitializedIsNoop(t *testing.T) {
	ctx := context.Background()

	// A zero-value recorder is what NewProvider returns when
	// instrumentation is disabled; recording must be a no-op.
	m := &Metrics{}
	m.RecordAPIOperation(ctx, "list", StatusSuccess, time.Millisecond)
	m.RecordHTTPRequest(ctx, "GET", "/tasks", 200)
	m.RecordToolInvocation(ctx, "task_list_tasks", StatusSuccess, time.Millisecond)

	// A nil recorder must also be safe.
	var nilMetrics *Metrics
	nilMetrics.RecordAPIOperation(ctx, "list", StatusSuccess, time.Millisecond)
	nilMetrics.RecordHTTPRequest(ctx, "GET", "/tasks", 200)
	nilMetrics.RecordToolInvocation(ctx, "task_list_tasks", StatusSuccess, time.Millisecond)
}
