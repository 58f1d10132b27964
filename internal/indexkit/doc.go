// Package indexkit defines sequencing index kits: named tables mapping an
// index name (e.g. "P7_i3") to its nucleotide barcode sequence.
//
// A kit is the source of truth for which index names a manifest may reference
// and which barcode each name resolves to in the generated samplesheet.
//
// Kit invariants (enforced by Validate, applied on every load):
//   - every sequence uses only the barcode alphabet ACGT
//   - every sequence has the fixed barcode length (8)
//   - sequences are unique within the kit
//   - names are unique within the kit
//
// The embedded default kit is the Agilent SureSelect set (P7_i1..P7_i12 for
// the i7 position, P5_i13..P5_i20 for the i5 position). Additional kits can
// be supplied as YAML files or imported from vendor two-column TSV listings.
package indexkit
