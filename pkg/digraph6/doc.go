// Package digraph6 encodes and decodes directed graphs in the digraph6
// format.
//
// A digraph6 line starts with '&', followed by the vertex count N(n) and the
// n*n bits of the adjacency matrix in row-major order, bit (u, v) set when
// the arc u -> v exists. Bits are packed six to a byte, most significant
// first, the last group padded with zeros, and every byte is offset by 63 so
// the line is printable ASCII.
//
// N(n) is one byte n+63 for n <= 62. Up to 258047 it is byte 126 followed by
// n in three 6-bit groups, and beyond that two bytes 126 followed by six
// groups.
//
// Encoding with loopless set clears every diagonal bit, so loops are dropped
// from the output. This is lossy and exists for consumers that reject loops.
package digraph6
