package sink

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhump/jpoet"
)

func counterClass(reg *jpoet.Registry, fields ...string) *jpoet.Class {
	c := jpoet.MustClass(reg, jpoet.ClassConfig{
		Package:   "com.example.util",
		Modifiers: jpoet.Modifiers{Visibility: jpoet.Public},
		Name:      "Counter",
	})
	for _, f := range fields {
		c.AddField(jpoet.MustField(jpoet.FieldConfig{Type: reg.Primitive(jpoet.Long), Name: f}))
	}
	return c
}

func TestWriter(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	reg := jpoet.NewRegistry()
	path := filepath.Join(root, "com", "example", "util", "Counter.java")

	w := NewWriter(root+"/", false)
	c := counterClass(reg, "count")
	require.Equal(t, root+"/com/example/util/Counter.java", w.URL(c))

	res, err := w.Write(ctx, c)
	require.NoError(t, err)
	require.Equal(t, Written, res.Status)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, c.String()+"\n", string(data))
	info, err := os.Stat(path)
	require.NoError(t, err)
	modTime := info.ModTime()

	// same content again is left alone
	res, err = w.Write(ctx, counterClass(reg, "count"))
	require.NoError(t, err)
	require.Equal(t, Unchanged, res.Status)
	info, err = os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, modTime, info.ModTime())

	// dry run reports but does not write
	changed := counterClass(reg, "count", "total")
	res, err = NewWriter(root, true).Write(ctx, changed)
	require.NoError(t, err)
	require.Equal(t, Pending, res.Status)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, c.String()+"\n", string(data))

	res, err = w.Write(ctx, changed)
	require.NoError(t, err)
	require.Equal(t, Written, res.Status)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, changed.String()+"\n", string(data))
}

func TestWriteAll(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	reg := jpoet.NewRegistry()
	other := jpoet.MustClass(reg, jpoet.ClassConfig{Package: "com.example", Name: "Other"})

	results, err := NewWriter(root, false).WriteAll(ctx, counterClass(reg), other)
	require.NoError(t, err)
	require.Equal(t, []Result{
		{URL: root + "/com/example/util/Counter.java", Status: Written},
		{URL: root + "/com/example/Other.java", Status: Written},
	}, results)
	require.FileExists(t, filepath.Join(root, "com", "example", "Other.java"))

	results, err = NewWriter(root, true).WriteAll(ctx, counterClass(reg), other)
	require.NoError(t, err)
	for _, r := range results {
		require.Equal(t, Unchanged, r.Status, r.URL)
	}
}

func TestHash(t *testing.T) {
	a, err := Hash([]byte("class A {}"))
	require.NoError(t, err)
	b, err := Hash([]byte("class A {}"))
	require.NoError(t, err)
	c, err := Hash([]byte("class B {}"))
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Equal(t, "written", Written.String())
}
