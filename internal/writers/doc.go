// Package writers serializes block collections into the three report
// formats: the signed block-list, the coordinate table, and the
// coverage/multiplicity statistics.
//
// Writers own all presentation knowledge; the core stays domain-only
// and the pipeline stays orchestration-only.
package writers
