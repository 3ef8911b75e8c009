// Package object parses RGVM object files: a 24-byte header followed
// by a code section and a data section. The decode/lift core consumes
// only byte slices; this package is the collaborator that supplies
// them.
package object
