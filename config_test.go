package chatdocx_test

import (
	"testing"

	"github.com/fwojciec/chatdocx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := chatdocx.DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Contains(t, cfg.Normalize.JunkMarkers, "IGNORE_WHEN_COPYING")
	assert.Contains(t, cfg.Normalize.PassThroughTags, "span")
	assert.Equal(t, "_ng", cfg.Normalize.ReservedAttrPrefix)
	assert.Equal(t, "Courier New", cfg.Style.CodeFont)
	assert.Equal(t, 10, cfg.Style.CodeFontSize)
	assert.Equal(t, "F0F0F0", cfg.Style.CodeShading)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("rejects malformed shading color", func(t *testing.T) {
		t.Parallel()

		cfg := chatdocx.DefaultConfig()
		cfg.Style.CodeShading = "grey"

		err := cfg.Validate()

		require.Error(t, err)
		assert.Equal(t, chatdocx.EINVALID, chatdocx.ErrorCode(err))
	})

	t.Run("accepts lowercase hex header shading", func(t *testing.T) {
		t.Parallel()

		cfg := chatdocx.DefaultConfig()
		cfg.Style.HeaderShading = "d9e2f3"

		assert.NoError(t, cfg.Validate())
	})

	t.Run("rejects negative code font size", func(t *testing.T) {
		t.Parallel()

		cfg := chatdocx.DefaultConfig()
		cfg.Style.CodeFontSize = -1

		err := cfg.Validate()

		require.Error(t, err)
		assert.Equal(t, chatdocx.EINVALID, chatdocx.ErrorCode(err))
	})

	t.Run("rejects block tags as pass-through tags", func(t *testing.T) {
		t.Parallel()

		cfg := chatdocx.DefaultConfig()
		cfg.Normalize.PassThroughTags = append(cfg.Normalize.PassThroughTags, "div")

		err := cfg.Validate()

		require.Error(t, err)
		assert.Equal(t, chatdocx.EINVALID, chatdocx.ErrorCode(err))
	})
}
