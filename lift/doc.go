// Package lift translates decoded IRRE2 instructions into an
// architecture-neutral sequence of semantic operations: register
// writes, memory accesses, and control transfers.
//
// Lifting is pure and stateless per call. The only external resource is
// the caller-owned label table consulted for immediate jump targets;
// lifting never fails outward, degrading to an Unimplemented marker on
// any internal fault so a single bad instruction cannot abort a bulk
// analysis pass.
package lift
