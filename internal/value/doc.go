// Package value: the ref field.
//
// spec.md §9(a) calls out the source's cyclic type dependency between
// value, AST, and token, and prescribes re-architecting it as a downward-only
// reference instead of removing the indirection altogether. original_source/
// solves this in C++ with ast_fwd.h, a forward declaration of AstPtr that lets
// value.h mention "a pointer to an AST node" without including ast.h.
//
// Go has no forward declarations, so Value.ref is typed `any`: the value
// package never imports cst, and the parser and validators construct
// Value{Kind: KindCSTRef, ...} through the CSTRef constructor, storing a
// cst.Node as the opaque payload. Callers that need the concrete type assert it themselves.
package value
