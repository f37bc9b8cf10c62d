// Package munge contains the core data model of Munge, a small library of
// tabular-data manipulation primitives. This root package defines the types
// shared by every transform, while the transforms themselves live in the
// transform subpackage and data loaders live under datasource.
package munge
