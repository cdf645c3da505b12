package tagging_test

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/jpl-au/ftag/extension"
	"github.com/jpl-au/ftag/internal/attr"
	"github.com/jpl-au/ftag/internal/config"
	"github.com/jpl-au/ftag/internal/service"
	"github.com/jpl-au/ftag/internal/tagging"
	"github.com/jpl-au/ftag/internal/validate"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(paths ...string) (*tagging.Service, *attr.Memory) {
	m := attr.NewMemory("")
	m.Touch(paths...)
	return tagging.New(m), m
}

func stored(t *testing.T, m *attr.Memory, p string) string {
	t.Helper()
	v, ok, err := m.Get(p)
	require.NoError(t, err)
	require.True(t, ok, "attribute not set on %s", p)
	return string(v)
}

func TestSet(t *testing.T) {
	ctx := context.Background()

	t.Run("lower-cases and appends", func(t *testing.T) {
		svc, m := newService("f")
		change, err := svc.Set(ctx, "f", []string{"Foo", "bar"}, service.Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"foo", "bar"}, change.Tags)
		assert.Equal(t, []string{"foo", "bar"}, change.Added)
		assert.Empty(t, change.Before)
		assert.Equal(t, "foo,bar", stored(t, m, "f"))

		tags, err := svc.List(ctx, "f")
		require.NoError(t, err)
		assert.Equal(t, []string{"foo", "bar"}, tags)
	})

	t.Run("idempotent", func(t *testing.T) {
		svc, m := newService("f")
		_, err := svc.Set(ctx, "f", []string{"work"}, service.Options{})
		require.NoError(t, err)
		change, err := svc.Set(ctx, "f", []string{"work"}, service.Options{})
		require.NoError(t, err)
		assert.Empty(t, change.Added)
		assert.Equal(t, "work", stored(t, m, "f"))
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		svc, m := newService("f")
		require.NoError(t, m.Set("f", []byte("b,a")))
		_, err := svc.Set(ctx, "f", []string{"c", "a"}, service.Options{})
		require.NoError(t, err)
		assert.Equal(t, "b,a,c", stored(t, m, "f"))
	})

	t.Run("no tags writes unchanged set", func(t *testing.T) {
		svc, m := newService("f")
		change, err := svc.Set(ctx, "f", nil, service.Options{})
		require.NoError(t, err)
		assert.Empty(t, change.Tags)
		assert.Equal(t, "", stored(t, m, "f"))
	})

	t.Run("rejects comma", func(t *testing.T) {
		svc, m := newService("f")
		_, err := svc.Set(ctx, "f", []string{"ok", "a,b"}, service.Options{})
		assert.ErrorIs(t, err, validate.ErrInvalidTag)
		_, ok, _ := m.Get("f")
		assert.False(t, ok, "nothing written on validation failure")
	})

	t.Run("dry run", func(t *testing.T) {
		svc, m := newService("f")
		require.NoError(t, m.Set("f", []byte("a")))
		change, err := svc.Set(ctx, "f", []string{"B"}, service.Options{DryRun: true})
		require.NoError(t, err)
		assert.True(t, change.DryRun)
		assert.Equal(t, []string{"a"}, change.Before)
		assert.Equal(t, []string{"a", "b"}, change.Tags)
		assert.Equal(t, "a", stored(t, m, "f"))
	})

	t.Run("missing path", func(t *testing.T) {
		svc, _ := newService()
		_, err := svc.Set(ctx, "missing", []string{"a"}, service.Options{})
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("empty path", func(t *testing.T) {
		svc, _ := newService()
		_, err := svc.Set(ctx, "", []string{"a"}, service.Options{})
		assert.ErrorIs(t, err, validate.ErrInvalidPath)
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes literal tag", func(t *testing.T) {
		svc, m := newService("f")
		require.NoError(t, m.Set("f", []byte("foo,bar")))
		change, err := svc.Remove(ctx, "f", []string{"bar"}, service.Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"foo"}, change.Tags)
		assert.Equal(t, []string{"bar"}, change.Removed)
		assert.Equal(t, "foo", stored(t, m, "f"))
	})

	t.Run("untagged path succeeds", func(t *testing.T) {
		svc, m := newService("f")
		change, err := svc.Remove(ctx, "f", []string{"anything"}, service.Options{})
		require.NoError(t, err)
		assert.Empty(t, change.Tags)
		assert.Equal(t, "", stored(t, m, "f"))
	})

	t.Run("removing all leaves empty value", func(t *testing.T) {
		svc, m := newService("f")
		require.NoError(t, m.Set("f", []byte("a")))
		_, err := svc.Remove(ctx, "f", []string{"a"}, service.Options{})
		require.NoError(t, err)
		assert.Equal(t, "", stored(t, m, "f"))

		tags, err := svc.List(ctx, "f")
		require.NoError(t, err)
		assert.Empty(t, tags)
	})

	t.Run("does not normalise input", func(t *testing.T) {
		svc, m := newService("f")
		_, err := svc.Set(ctx, "f", []string{"Foo"}, service.Options{})
		require.NoError(t, err)
		change, err := svc.Remove(ctx, "f", []string{"FOO"}, service.Options{})
		require.NoError(t, err)
		assert.Empty(t, change.Removed)
		assert.Equal(t, "foo", stored(t, m, "f"))
	})

	t.Run("dry run", func(t *testing.T) {
		svc, m := newService("f")
		require.NoError(t, m.Set("f", []byte("a,b")))
		change, err := svc.Remove(ctx, "f", []string{"a"}, service.Options{DryRun: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, change.Tags)
		assert.Equal(t, "a,b", stored(t, m, "f"))
	})

	t.Run("missing path", func(t *testing.T) {
		svc, _ := newService()
		_, err := svc.Remove(ctx, "missing", []string{"a"}, service.Options{})
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	svc, m := newService("f")
	tags, err := svc.List(ctx, "f")
	require.NoError(t, err)
	assert.Empty(t, tags)

	require.NoError(t, m.Set("f", []byte(" spaced,x")))
	tags, err = svc.List(ctx, "f")
	require.NoError(t, err)
	assert.Equal(t, []string{" spaced", "x"}, tags)

	_, err = svc.List(ctx, "missing")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

// eventRecorder is an extension that records tag events.
type eventRecorder struct {
	events []extension.TagEvent
}

func (e *eventRecorder) Name() string                  { return "test-tagging-recorder" }
func (e *eventRecorder) Commands() []*cobra.Command    { return nil }
func (e *eventRecorder) MCPTools() []extension.MCPTool { return nil }
func (e *eventRecorder) HandleEvent(_ extension.Context, evt extension.Event) error {
	if te, ok := evt.(extension.TagEvent); ok {
		e.events = append(e.events, te)
	}
	return errors.New("handler failure")
}

var recorder = &eventRecorder{}

func init() {
	extension.Register(recorder)
}

func TestEvents(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	ctx := context.Background()
	recorder.events = nil

	svc, _ := newService("f")
	svc.SetExtensionContext(extension.NewContext(svc, &config.Config{}))

	_, err := svc.Set(ctx, "f", []string{"a", "b"}, service.Options{Source: "test"})
	require.NoError(t, err, "handler errors must not fail the operation")
	_, err = svc.Set(ctx, "f", []string{"a"}, service.Options{Source: "test"})
	require.NoError(t, err)
	_, err = svc.Remove(ctx, "f", []string{"b"}, service.Options{Source: "test"})
	require.NoError(t, err)
	_, err = svc.Remove(ctx, "f", []string{"a"}, service.Options{DryRun: true})
	require.NoError(t, err)

	require.Len(t, recorder.events, 3)
	assert.Equal(t, extension.TagEvent{Path: "f", Tag: "a", Source: "test", Added: true}, recorder.events[0])
	assert.Equal(t, extension.TagEvent{Path: "f", Tag: "b", Source: "test", Added: true}, recorder.events[1])
	assert.Equal(t, extension.EventTagRemove, recorder.events[2].EventType())
	assert.Equal(t, "b", recorder.events[2].Tag)
}
