// Package frame contains the core components of Frame, a library for computing
// statistical summaries and selections over distributed tabular data. This root
// package defines the types which are employed during the regular use of the
// library - Datasets, Schemas, Rows and operation signatures - as well as in
// the extension of the library, and is an excellent overview of Frame's key
// concepts.
package frame
