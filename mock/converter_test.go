package mock_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/fwojciec/chatdocx"
	"github.com/fwojciec/chatdocx/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestination_Save(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SaveFn", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		d := &mock.Destination{
			SaveFn: func(path string, write func(w io.Writer) error) error {
				assert.Equal(t, "out.docx", path)
				return write(&buf)
			},
		}

		err := d.Save("out.docx", func(w io.Writer) error {
			_, err := io.WriteString(w, "data")
			return err
		})

		require.NoError(t, err)
		assert.Equal(t, "data", buf.String())
	})
}

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("delegates to ConvertFn", func(t *testing.T) {
		t.Parallel()

		var gotHTML, gotPath string
		c := &mock.Converter{
			ConvertFn: func(html, outputPath string) error {
				gotHTML, gotPath = html, outputPath
				return chatdocx.Errorf(chatdocx.EUNWRITABLE, "locked")
			},
		}

		err := c.Convert("<p>x</p>", "out.docx")

		assert.Equal(t, chatdocx.EUNWRITABLE, chatdocx.ErrorCode(err))
		assert.Equal(t, "<p>x</p>", gotHTML)
		assert.Equal(t, "out.docx", gotPath)
	})
}
