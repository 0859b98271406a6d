// Package mapping converts decoded API rows into tree records. Each console
// domain names its hierarchy fields differently; a FieldMap captures those
// names so that one builder serves all of them.
package mapping
