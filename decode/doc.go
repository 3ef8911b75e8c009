// Package decode turns IRRE2 machine words into structured instructions
// and back. Decoding validates register fields and never returns a
// partial instruction; the same word always decodes identically.
package decode
