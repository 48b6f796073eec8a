package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/chatdocx"
	"github.com/fwojciec/chatdocx/mock"
	chatslog "github.com/fwojciec/chatdocx/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("logs successful conversion with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Converter{
			ConvertFn: func(html, outputPath string) error { return nil },
		}

		c := chatslog.NewLoggingConverter(inner, logger)
		err := c.Convert("<p>hi</p>", "out.docx")

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "msg=conversion")
		assert.Contains(t, output, "output=out.docx")
		assert.Contains(t, output, "bytes=9")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs failure with error code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Converter{
			ConvertFn: func(html, outputPath string) error {
				return chatdocx.Errorf(chatdocx.EUNWRITABLE, "locked")
			},
		}

		c := chatslog.NewLoggingConverter(inner, logger)
		err := c.Convert("<p>hi</p>", "out.docx")

		assert.Equal(t, chatdocx.EUNWRITABLE, chatdocx.ErrorCode(err))
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, `msg="conversion failed"`)
		assert.Contains(t, output, "code=unwritable")
	})
}

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs block and rtl counts at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		want := &chatdocx.Document{Blocks: []chatdocx.Block{
			&chatdocx.Heading{Level: 1, Text: "عنوان", RTL: true},
			&chatdocx.Paragraph{Runs: []chatdocx.Run{{Text: "x"}}},
			&chatdocx.CodeBlock{Text: "y"},
		}}
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*chatdocx.Document, error) { return want, nil },
		}

		e := chatslog.NewLoggingExtractor(inner, logger)
		doc, err := e.Extract("<h1>عنوان</h1>")

		require.NoError(t, err)
		assert.Same(t, want, doc)
		output := buf.String()
		assert.Contains(t, output, "msg=extraction")
		assert.Contains(t, output, "blocks=3")
		assert.Contains(t, output, "rtl=1")
	})

	t.Run("is silent at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*chatdocx.Document, error) { return nil, errors.New("bad") },
		}

		e := chatslog.NewLoggingExtractor(inner, logger)
		_, err := e.Extract("<p>")

		require.Error(t, err)
		assert.Empty(t, buf.String())
	})
}
