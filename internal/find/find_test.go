package find_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/ftag/internal/attr"
	"github.com/jpl-au/ftag/internal/find"
	"github.com/jpl-au/ftag/internal/tagging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a")
	b := filepath.Join(root, "b")
	c := filepath.Join(b, "c")
	require.NoError(t, os.WriteFile(a, nil, 0644))
	require.NoError(t, os.Mkdir(b, 0755))
	require.NoError(t, os.WriteFile(c, nil, 0644))

	m := attr.NewMemory("")
	m.Touch(root, a, b, c)
	require.NoError(t, m.Set(a, []byte("work,urgent")))
	require.NoError(t, m.Set(c, []byte("home")))
	svc := tagging.New(m)
	ctx := context.Background()

	t.Run("prints path then indented matches", func(t *testing.T) {
		var buf bytes.Buffer
		result, err := find.Run(ctx, &buf, svc, root, []string{"work"}, find.Options{})
		require.NoError(t, err)
		assert.Equal(t, a+"\n  work\n", buf.String())
		assert.Len(t, result.Matches, 1)
	})

	t.Run("paths only", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := find.Run(ctx, &buf, svc, root, []string{"work", "home"}, find.Options{PathsOnly: true})
		require.NoError(t, err)
		assert.Equal(t, a+"\n"+c+"\n", buf.String())
	})

	t.Run("invalid pattern prints nothing", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := find.Run(ctx, &buf, svc, root, []string{"[unclosed"}, find.Options{})
		assert.Error(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("literal", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := find.Run(ctx, &buf, svc, root, []string{"[unclosed"}, find.Options{Literal: true})
		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
