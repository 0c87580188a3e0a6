// Package encoding implements the column names payload of a tuple.
//
// The payload is written after the header when a writer is asked to keep names or
// when two column names hash to the same ID. Layout, in the tuple's byte order:
//
//	[Count: uint16] [Len1: uint16][Name1: UTF-8] [Len2: uint16][Name2: UTF-8] ...
//
// Names appear in column index order, so names[i] belongs to index entry i.
package encoding
