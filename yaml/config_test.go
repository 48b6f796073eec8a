package yaml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/chatdocx"
	"github.com/fwojciec/chatdocx/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Parse([]byte("  \n"))

		require.NoError(t, err)
		assert.Equal(t, chatdocx.DefaultConfig(), cfg)
	})

	t.Run("overrides only the given keys", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Parse([]byte(`
style:
  codeFont: Consolas
  headerShading: D9E2F3
normalize:
  junkMarkers:
    - SHARE
`))

		require.NoError(t, err)
		assert.Equal(t, "Consolas", cfg.Style.CodeFont)
		assert.Equal(t, "D9E2F3", cfg.Style.HeaderShading)
		assert.Equal(t, "Arial", cfg.Style.BodyFont)
		assert.Equal(t, 10, cfg.Style.CodeFontSize)
		assert.Equal(t, []string{"SHARE"}, cfg.Normalize.JunkMarkers)
		assert.Equal(t, chatdocx.DefaultNormalizeRules().PassThroughTags, cfg.Normalize.PassThroughTags)
		assert.Equal(t, "_ng", cfg.Normalize.ReservedAttrPrefix)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse([]byte("style:\n  colour: red\n"))

		assert.Equal(t, chatdocx.EINVALID, chatdocx.ErrorCode(err))
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse([]byte("style: [unclosed"))

		assert.Equal(t, chatdocx.EINVALID, chatdocx.ErrorCode(err))
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse([]byte("style:\n  codeShading: grey\n"))

		assert.Equal(t, chatdocx.EINVALID, chatdocx.ErrorCode(err))
	})

	t.Run("rejects oversized input", func(t *testing.T) {
		t.Parallel()

		data := "# " + strings.Repeat("x", yaml.MaxInputSize) + "\n"

		_, err := yaml.Parse([]byte(data))

		assert.Equal(t, chatdocx.EINVALID, chatdocx.ErrorCode(err))
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty path yields defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Load("")

		require.NoError(t, err)
		assert.Equal(t, chatdocx.DefaultConfig(), cfg)
	})

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "chatdocx.yaml")
		require.NoError(t, os.WriteFile(path, []byte("style:\n  bodyFont: Tahoma\n"), 0644))

		cfg, err := yaml.Load(path)

		require.NoError(t, err)
		assert.Equal(t, "Tahoma", cfg.Style.BodyFont)
	})

	t.Run("missing file is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Load(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Equal(t, chatdocx.EINVALID, chatdocx.ErrorCode(err))
	})
}

func TestMarshal_RoundTripsDefaults(t *testing.T) {
	t.Parallel()

	data, err := yaml.Marshal(chatdocx.DefaultConfig())
	require.NoError(t, err)

	cfg, err := yaml.Parse(data)

	require.NoError(t, err)
	assert.Equal(t, chatdocx.DefaultConfig(), cfg)
}
