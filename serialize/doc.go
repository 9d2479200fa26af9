// Package serialize persists a hypercsa.CompressedHyperGraph to and from a
// byte stream, per spec.md §4.7/§6. The original file format had no version
// marker; spec.md §10 leaves that an open question for a future revision to
// close. This package closes it: a 4-byte magic and 1-byte format version
// precede the (D, PSI) payload, so Load can reject garbage or an
// unsupported future format up front instead of misreading it.
package serialize
