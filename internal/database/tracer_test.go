package database

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

type callKey struct{}

// recordingTracer implements every pgx tracer hook.
type recordingTracer struct {
	name  string
	calls []string
}

func (r *recordingTracer) record(call string) { r.calls = append(r.calls, call) }

func (r *recordingTracer) mark(ctx context.Context) context.Context {
	seen, _ := ctx.Value(callKey{}).([]string)
	return context.WithValue(ctx, callKey{}, append(seen, r.name))
}

func (r *recordingTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	r.record("query start")
	return r.mark(ctx)
}

func (r *recordingTracer) TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData) {
	r.record("query end")
}

func (r *recordingTracer) TraceBatchStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceBatchStartData) context.Context {
	r.record("batch start")
	return r.mark(ctx)
}

func (r *recordingTracer) TraceBatchQuery(context.Context, *pgx.Conn, pgx.TraceBatchQueryData) {
	r.record("batch query")
}

func (r *recordingTracer) TraceBatchEnd(context.Context, *pgx.Conn, pgx.TraceBatchEndData) {
	r.record("batch end")
}

func (r *recordingTracer) TraceCopyFromStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceCopyFromStartData) context.Context {
	r.record("copy start")
	return r.mark(ctx)
}

func (r *recordingTracer) TraceCopyFromEnd(context.Context, *pgx.Conn, pgx.TraceCopyFromEndData) {
	r.record("copy end")
}

func (r *recordingTracer) TracePrepareStart(ctx context.Context, _ *pgx.Conn, _ pgx.TracePrepareStartData) context.Context {
	r.record("prepare start")
	return r.mark(ctx)
}

func (r *recordingTracer) TracePrepareEnd(context.Context, *pgx.Conn, pgx.TracePrepareEndData) {
	r.record("prepare end")
}

func (r *recordingTracer) TraceConnectStart(ctx context.Context, _ pgx.TraceConnectStartData) context.Context {
	r.record("connect start")
	return r.mark(ctx)
}

func (r *recordingTracer) TraceConnectEnd(context.Context, pgx.TraceConnectEndData) {
	r.record("connect end")
}

// queryOnlyTracer has no hooks beyond queries.
type queryOnlyTracer struct {
	calls int
}

func (q *queryOnlyTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	q.calls++
	return ctx
}

func (q *queryOnlyTracer) TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData) {
	q.calls++
}

func TestMultiTracer_ForwardsEveryHook(t *testing.T) {
	first := &recordingTracer{name: "first"}
	queries := &queryOnlyTracer{}
	second := &recordingTracer{name: "second"}
	mt := &multiTracer{tracers: []queryTracer{first, queries, second}}

	ctx := context.Background()

	qctx := mt.TraceQueryStart(ctx, nil, pgx.TraceQueryStartData{})
	mt.TraceQueryEnd(qctx, nil, pgx.TraceQueryEndData{})

	bctx := mt.TraceBatchStart(ctx, nil, pgx.TraceBatchStartData{})
	mt.TraceBatchQuery(bctx, nil, pgx.TraceBatchQueryData{})
	mt.TraceBatchEnd(bctx, nil, pgx.TraceBatchEndData{})

	cctx := mt.TraceCopyFromStart(ctx, nil, pgx.TraceCopyFromStartData{})
	mt.TraceCopyFromEnd(cctx, nil, pgx.TraceCopyFromEndData{})

	pctx := mt.TracePrepareStart(ctx, nil, pgx.TracePrepareStartData{})
	mt.TracePrepareEnd(pctx, nil, pgx.TracePrepareEndData{})

	nctx := mt.TraceConnectStart(ctx, pgx.TraceConnectStartData{})
	mt.TraceConnectEnd(nctx, pgx.TraceConnectEndData{})

	want := []string{
		"query start", "query end",
		"batch start", "batch query", "batch end",
		"copy start", "copy end",
		"prepare start", "prepare end",
		"connect start", "connect end",
	}
	assert.Equal(t, want, first.calls)
	assert.Equal(t, want, second.calls)
	assert.Equal(t, 2, queries.calls)

	// Each start hook threads the context through the chain in order.
	for _, c := range []context.Context{qctx, bctx, cctx, pctx, nctx} {
		assert.Equal(t, []string{"first", "second"}, c.Value(callKey{}))
	}
}
