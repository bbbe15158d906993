// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract recovers typed records from the semi-structured Markdown
// returned by the generative-text service.
//
// Every parser follows the same shape: Segment splits the response into
// labelled blocks, the parser picks the blocks it recognises by label prefix,
// and projects each block into a record from pkg/types. Parsers never fail:
// anything they cannot match leaves the sentinel defaults in place. All
// functions are pure and safe for concurrent use.
package extract

import "strings"

// Delimiter starts every top-level block.
const Delimiter = "### "

// Block is one top-level segment of a response.
type Block struct {
	// Label is the text after the delimiter up to the first line break.
	Label string
	// Body is everything after that line break up to the next delimiter.
	Body string
	// hasBreak records whether the chunk contained a line break at all.
	hasBreak bool
}

// Text returns the raw chunk: the label line, the line break, and the body.
func (b Block) Text() string {
	if !b.hasBreak {
		return b.Label
	}
	return b.Label + "\n" + b.Body
}

// HasLabel reports whether the block's text starts with label. Label lines
// may carry extra trailing words, so this is a prefix check.
func (b Block) HasLabel(label string) bool {
	return strings.HasPrefix(b.Text(), label)
}

// Segment splits markdown on Delimiter. Text before the first delimiter is
// discarded; input without a delimiter yields no blocks. Every character
// after the first delimiter belongs to exactly one block.
func Segment(markdown string) []Block {
	chunks := strings.Split(markdown, Delimiter)
	if len(chunks) < 2 {
		return nil
	}

	blocks := make([]Block, 0, len(chunks)-1)
	for _, chunk := range chunks[1:] {
		label, body, found := strings.Cut(chunk, "\n")
		blocks = append(blocks, Block{Label: label, Body: body, hasBreak: found})
	}
	return blocks
}

// Join reverses Segment: it reconstructs the input from the first delimiter
// onward.
func Join(blocks []Block) string {
	var b strings.Builder
	for _, blk := range blocks {
		b.WriteString(Delimiter)
		b.WriteString(blk.Text())
	}
	return b.String()
}
