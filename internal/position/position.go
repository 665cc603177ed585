// Package position tracks where in source text a token, span, or
// diagnostic lives. Every Position the rest of this compiler front end
// touches originates from a token.Token the lexer stamped with its
// Line/Column (and, for the end of a span, EndLine/EndColumn) — this
// package only knows about that coordinate system, never about tokens
// or the grammar built on top of them, so it stays reusable by the
// lexer, the parser, and the diagnostic renderer alike without any of
// them depending on each other through it.
package position

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Position is one point in a source file: a 1-based line and column,
// plus the file it came from. Offset is left unset by the parser (it
// only ever tracks line/column from the lexer) and exists for callers,
// such as SourceFile, that need byte-accurate slicing.
type Position struct {
	Filename string
	Line     int
	Column   int
	Offset   int
}

// IsValid reports whether p has plausible line/column/offset values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0 && p.Offset >= 0
}

func (p Position) String() string {
	name := filepath.Base(p.Filename)
	if name == "" || name == "." {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}

	return fmt.Sprintf("%s:%d:%d", name, p.Line, p.Column)
}

// Span is a half-open range [Start, End) within a single source file —
// every AST node's GetSpan() and every diagnostic's location is one of
// these.
type Span struct {
	Start Position
	End   Position
}

// IsValid reports whether both endpoints are valid and Start does not
// come after End.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() &&
		s.Start.Filename == s.End.Filename &&
		(s.Start.Line < s.End.Line || (s.Start.Line == s.End.Line && s.Start.Column <= s.End.Column))
}

func (s Span) String() string {
	name := filepath.Base(s.Start.Filename)

	switch {
	case name == "" || name == ".":
		if s.Start.Line == s.End.Line {
			return fmt.Sprintf("%d:%d-%d", s.Start.Line, s.Start.Column, s.End.Column)
		}

		return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
	case s.Start.Line == s.End.Line:
		return fmt.Sprintf("%s:%d:%d-%d", name, s.Start.Line, s.Start.Column, s.End.Column)
	default:
		return fmt.Sprintf("%s:%d:%d-%d:%d", name, s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
	}
}

// SourceFile holds one file's text alongside a pre-split line table, so
// looking up the text of a diagnostic's span never re-scans the whole
// file.
type SourceFile struct {
	Filename string
	Content  string
	Lines    []string
}

// NewSourceFile splits content into its line table and wraps it as a
// SourceFile.
func NewSourceFile(filename, content string) *SourceFile {
	return &SourceFile{
		Filename: filename,
		Content:  content,
		Lines:    strings.Split(content, "\n"),
	}
}

// GetLine returns the 1-based line lineNum, or "" if it is out of
// range — callers use this defensively when highlighting context around
// a span near the start or end of a file.
func (sf *SourceFile) GetLine(lineNum int) string {
	if lineNum < 1 || lineNum > len(sf.Lines) {
		return ""
	}

	return sf.Lines[lineNum-1]
}

// GetSpanText returns the raw text a span covers within this file, or
// "" if the span belongs to a different file or falls outside it.
func (sf *SourceFile) GetSpanText(span Span) string {
	if !span.IsValid() || span.Start.Filename != sf.Filename {
		return ""
	}

	if span.Start.Offset >= len(sf.Content) || span.End.Offset > len(sf.Content) {
		return ""
	}

	return sf.Content[span.Start.Offset:span.End.Offset]
}

// SourceMap indexes every file a diagnostic renderer might need to
// annotate, keyed by the filename recorded on each Position.
type SourceMap struct {
	files map[string]*SourceFile
}

// NewSourceMap builds an empty SourceMap.
func NewSourceMap() *SourceMap {
	return &SourceMap{files: make(map[string]*SourceFile)}
}

// AddFile registers content under filename and returns the SourceFile
// wrapping it.
func (sm *SourceMap) AddFile(filename, content string) *SourceFile {
	file := NewSourceFile(filename, content)
	sm.files[filename] = file

	return file
}

// GetFile returns the SourceFile registered for filename, or nil.
func (sm *SourceMap) GetFile(filename string) *SourceFile {
	return sm.files[filename]
}

// GetSpanText looks up span's file and returns the text it covers.
func (sm *SourceMap) GetSpanText(span Span) string {
	if file := sm.GetFile(span.Start.Filename); file != nil {
		return file.GetSpanText(span)
	}

	return ""
}

// GetLine looks up pos's file and returns the line it falls on.
func (sm *SourceMap) GetLine(pos Position) string {
	if file := sm.GetFile(pos.Filename); file != nil {
		return file.GetLine(pos.Line)
	}

	return ""
}

// GetFiles returns a copy of the registered filename-to-SourceFile map.
func (sm *SourceMap) GetFiles() map[string]*SourceFile {
	out := make(map[string]*SourceFile, len(sm.files))
	for k, v := range sm.files {
		out[k] = v
	}

	return out
}
