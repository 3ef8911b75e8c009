// Package disasm drives the decode/lift core over a code section: it
// decodes per address, owns the jump label table, collects advisory
// control-flow edges, and renders an annotated listing. Invalid words
// render as a placeholder and scanning continues at the next word.
package disasm
