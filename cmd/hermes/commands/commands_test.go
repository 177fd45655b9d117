package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI against a fresh local store rooted in a temp dir.
func run(t *testing.T, root string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--store", "local", "--root", root}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestEncodeDecode(t *testing.T) {
	root := setup(t)

	for _, format := range []string{"base64", "hex"} {
		t.Run(format, func(t *testing.T) {
			token, err := run(t, root, "encode", "--id", "7", "--format", format, "1,2.5")
			require.NoError(t, err)
			token = strings.TrimSpace(token)
			require.NotEmpty(t, token)

			out, err := run(t, root, "decode", "--format", format, token)
			require.NoError(t, err)
			assert.Equal(t, "FeatureVector{id=7, elements=[1 2.5]}\n", out)
		})
	}
}

func TestEncodeVerbose(t *testing.T) {
	root := setup(t)

	out, err := run(t, root, "encode", "-v", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "# 2 elements, 24 B serialized")
}

func TestDecodeInvalid(t *testing.T) {
	root := setup(t)

	_, err := run(t, root, "decode", "--format", "hex", "abc")
	assert.Error(t, err)

	_, err = run(t, root, "decode", "--format", "rot13", "abc")
	assert.Error(t, err)
}

func TestDistance(t *testing.T) {
	root := setup(t)

	tests := []struct {
		metric string
		want   string
	}{
		{"euclidean", "5\n"},
		{"manhattan", "7\n"},
		{"chebyshev", "4\n"},
		{"canberra", "2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.metric, func(t *testing.T) {
			out, err := run(t, root, "distance", "--metric", tt.metric, "0,0", "3,4")
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	t.Run("All", func(t *testing.T) {
		out, err := run(t, root, "distance", "--metric", "all", "0,0", "3,4")
		require.NoError(t, err)
		assert.Equal(t, "Euclidean\t5\nCityBlock\t7\nChebyshev\t4\nCanberra\t2\n", out)
	})

	t.Run("Tokens", func(t *testing.T) {
		a, err := run(t, root, "encode", "0,0")
		require.NoError(t, err)
		b, err := run(t, root, "encode", "3,4")
		require.NoError(t, err)

		out, err := run(t, root, "distance", "--format", "base64", strings.TrimSpace(a), strings.TrimSpace(b))
		require.NoError(t, err)
		assert.Equal(t, "5\n", out)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := run(t, root, "distance", "1,2", "1")
		assert.Error(t, err)
	})

	t.Run("UnsupportedMetric", func(t *testing.T) {
		_, err := run(t, root, "distance", "--metric", "jeffrey", "1", "1")
		assert.Error(t, err)
	})
}

func TestStoreLifecycle(t *testing.T) {
	root := setup(t)

	out, err := run(t, root, "store", "put", "--id", "1", "0,0")
	require.NoError(t, err)
	assert.Equal(t, "saved vectors/1.fv (24 B)\n", out)

	_, err = run(t, root, "store", "put", "--id", "2", "3,4")
	require.NoError(t, err)

	token, err := run(t, root, "encode", "--id", "3", "1,1")
	require.NoError(t, err)
	_, err = run(t, root, "store", "put", "--token", strings.TrimSpace(token))
	require.NoError(t, err)

	out, err = run(t, root, "store", "ls")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n# 3 vectors\n", out)

	out, err = run(t, root, "store", "get", "2")
	require.NoError(t, err)
	assert.Equal(t, "FeatureVector{id=2, elements=[3 4]}\n", out)

	out, err = run(t, root, "store", "get", "--format", "base64", "3")
	require.NoError(t, err)
	assert.Equal(t, token, out)

	out, err = run(t, root, "store", "nearest", "--k", "2", "3,3")
	require.NoError(t, err)
	assert.Equal(t, "2\t1\n3\t2.8284271247461903\n", out)

	out, err = run(t, root, "store", "nearest", "--k", "0", "3,3")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = run(t, root, "store", "nearest", "--k=-1", "3,3")
	assert.ErrorContains(t, err, "must not be negative")

	out, err = run(t, root, "store", "rm", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "removed vectors/1.fv\nremoved vectors/2.fv\n", out)

	out, err = run(t, root, "store", "ls")
	require.NoError(t, err)
	assert.Equal(t, "3\n# 1 vectors\n", out)

	_, err = run(t, root, "store", "get", "1")
	assert.Error(t, err)
}

func TestStoreInvalidID(t *testing.T) {
	root := setup(t)

	_, err := run(t, root, "store", "get", "abc")
	assert.Error(t, err)
}

func TestParseValues(t *testing.T) {
	values, err := parseValues("1,2", "3 4", "-5")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, -5}, values)

	_, err = parseValues("1,x")
	assert.Error(t, err)
}
