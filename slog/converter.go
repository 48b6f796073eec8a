// Package slog decorates chatdocx services with structured logging.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/chatdocx"
)

// Ensure LoggingConverter implements chatdocx.Converter.
var _ chatdocx.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with logging.
type LoggingConverter struct {
	next   chatdocx.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next chatdocx.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the outcome.
func (c *LoggingConverter) Convert(html, outputPath string) (err error) {
	defer func(begin time.Time) {
		if err != nil {
			c.logger.Error("conversion failed",
				"output", outputPath,
				"bytes", len(html),
				"code", chatdocx.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		c.logger.Info("conversion",
			"output", outputPath,
			"bytes", len(html),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return c.next.Convert(html, outputPath)
}

// Ensure LoggingExtractor implements chatdocx.Extractor.
var _ chatdocx.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   chatdocx.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next chatdocx.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs block counts.
func (e *LoggingExtractor) Extract(html string) (doc *chatdocx.Document, err error) {
	defer func(begin time.Time) {
		attrs := []any{"bytes", len(html)}
		if doc != nil {
			attrs = append(attrs, "blocks", doc.Len(), "rtl", countRTL(doc))
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		e.logger.Debug("extraction", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}

// countRTL returns the number of blocks detected as right-to-left.
func countRTL(doc *chatdocx.Document) int {
	var n int
	for _, b := range doc.Blocks {
		switch v := b.(type) {
		case *chatdocx.Heading:
			if v.RTL {
				n++
			}
		case *chatdocx.Paragraph:
			if v.RTL {
				n++
			}
		case *chatdocx.ListItem:
			if v.RTL {
				n++
			}
		case *chatdocx.Table:
			if v.RTL {
				n++
			}
		}
	}
	return n
}
