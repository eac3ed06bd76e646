// Package testutil provides shared helpers for parser tests: a canned core
// taxonomy, a string-parse harness, and a thread-safe log capture buffer.
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/behaviortreego/internal/bt"
	"github.com/vk/behaviortreego/internal/ctxlog"
	"github.com/vk/behaviortreego/internal/loader"
	"github.com/vk/behaviortreego/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// CoreRegistry returns a registry holding the core taxonomy, registered
// programmatically so parser tests do not depend on manifest files.
func CoreRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	reg := registry.New()
	for _, d := range []*bt.TypeDescriptor{
		{Name: "Sequence", Category: bt.CategoryParent},
		{Name: "Selector", Category: bt.CategoryParent},
		{Name: "Inverter", Category: bt.CategoryDecorator},
		{Name: "Repeat", Category: bt.CategoryDecorator, Params: []bt.ParamSpec{
			{Name: "count", Type: cty.Number, Eval: true},
		}},
		{Name: "Wait", Category: bt.CategoryLeaf, Params: []bt.ParamSpec{
			{Name: "duration", Type: cty.Number, Eval: true},
		}},
		{Name: "Log", Category: bt.CategoryLeaf, Params: []bt.ParamSpec{
			{Name: "message", Type: cty.String, Eval: true},
		}},
		{Name: "Condition", Category: bt.CategoryLeaf, Params: []bt.ParamSpec{
			{Name: "check", Type: cty.Bool, Eval: true},
		}},
		{Name: "TODO", Category: bt.CategoryLeaf, Params: []bt.ParamSpec{
			{Name: "description", Type: cty.String},
		}},
		{Name: "SubTree", Category: bt.CategoryLeaf, Ref: true, Params: []bt.ParamSpec{
			{Name: "name", Type: cty.String},
		}},
	} {
		reg.MustRegister(d)
	}
	require.NoError(t, reg.Validate(context.Background()))
	return reg
}

// ParseResult holds the outcome of a harness parse.
type ParseResult struct {
	Root      *bt.Node
	Err       error
	TC        *bt.TaskContext
	LogOutput string
}

// ParseString runs one in-memory parse of src against the given registry,
// under a fresh task context rooted at baseDir.
func ParseString(t *testing.T, reg *registry.Registry, baseDir, src string) *ParseResult {
	t.Helper()

	logBuf := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tc, err := bt.NewTaskContext(nil, "", baseDir, logger)
	require.NoError(t, err)

	ctx := ctxlog.WithLogger(context.Background(), logger)
	root, err := loader.New(reg, tc).ParseSource(ctx, "test.xml", []byte(src))

	return &ParseResult{Root: root, Err: err, TC: tc, LogOutput: logBuf.String()}
}
