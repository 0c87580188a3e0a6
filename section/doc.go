// Package section defines the binary structures of the pec tuple format.
//
// A tuple stores the rows of one record kind column by column:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Column Names Payload (variable, optional)              │
//	│  - present on request or when column IDs collide        │
//	├─────────────────────────────────────────────────────────┤
//	│ Column Index (N × 16 bytes)                             │
//	├─────────────────────────────────────────────────────────┤
//	│ Column Payloads (variable)                              │
//	│  - fixed-width cells, compressed per column             │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field         | Type   | Description
//	-------|---------------|--------|------------------------------------------
//	0-1    | Options       | uint16 | always little-endian, see below
//	2      | Kind          | uint8  | format.RecordKind
//	3      | Compression   | uint8  | format.CompressionType
//	4-5    | ColumnCount   | uint16 | number of index entries
//	6-7    | -             |        | reserved, zero
//	8-11   | RowCount      | uint32 | number of records
//	12-15  | IndexOffset   | uint32 | start of the column index
//	16-19  | PayloadOffset | uint32 | start of the first column payload
//	20-23  | Checksum      | uint32 | low 32 bits of xxHash64 over all payloads
//	24-31  | CreatedAt     | int64  | unix microseconds
//
// Options bits:
//
//	Bit 0:     endianness of all other fields and cells (0=little, 1=big)
//	Bit 1:     column names payload present
//	Bits 2-3:  reserved, zero
//	Bits 4-15: magic number 0xEC10
//
// See ColumnEntry for the index entry layout.
package section
