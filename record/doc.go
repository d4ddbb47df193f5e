// Package record loads raw fast-sweep capture records and writes
// reconstructed spectra.
//
// A capture record is a 1-D series of detector intensity samples stored
// either as delimited text (comma, semicolon, tab, or whitespace separated,
// with optional header lines and # or % comments) or as a packed array of
// little-endian float64 or float32 samples. The encoding is sniffed per
// file unless forced with [WithFormat].
//
// # Usage
//
// Load a single capture:
//
//	trace, err := record.Load("sweep.dat")
//
// Load repeated captures that must agree in length:
//
//	traces, err := record.LoadAll([]string{"a.dat", "b.dat"})
//
// Write a reconstructed spectrum:
//
//	err := record.WriteCSVFile("out.csv", freq, inten)
package record
