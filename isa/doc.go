// Package isa defines the IRRE2 instruction set architecture: the
// register set, instruction formats, opcode tables, and instruction
// classification predicates.
//
// The tables here are the single source of truth for the decoder,
// formatter, and lifter; nothing else in the module duplicates opcode
// metadata.
package isa
