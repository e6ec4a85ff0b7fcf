// Package catalogue loads a station catalogue from CSV, the on-disk format
// the breitlingctl CLI (cmd/breitlingctl) reads problem instances from.
//
// The header-driven column lookup is grounded in the FAA-airport CSV loader
// of _examples/other_examples/c4486434_mmp-vice__pkg-aviation-db.go.go
// (mungeCSV): read the header row once, resolve each wanted column name to
// an index, then iterate records by index rather than assuming column
// order. Unlike that loader, errors are returned rather than panicked,
// matching this module's error-handling convention.
//
// No third-party CSV library appears anywhere in the retrieved example
// corpus; encoding/csv is used directly (see DESIGN.md).
package catalogue
