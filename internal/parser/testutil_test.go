package parser

import (
	"github.com/nova-lang/novac/internal/diagnostic"
	"github.com/nova-lang/novac/internal/langver"
)

func newTestParser(src string) *Parser {
	return New("test.nova", src, diagnostic.NewCollector(), langver.Default())
}
