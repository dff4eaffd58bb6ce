// Package score implements the real-time scoring pipeline for one deployed
// classification model: deterministic missing-value imputation from frozen
// training statistics, marshalling of the cleaned record into an embedded
// execution context, invocation of the published scoring routine, and
// extraction of the classification label and event probability.
//
// # Reading Guide
//
// Start with these three files to understand the pipeline:
//   - feature.go: the tagged Value type and the ordered Record
//   - session.go: the session lifecycle state machine (uninitialized → loading → ready / failed)
//   - scorer.go: the per-call pipeline, normalize → ensure session → invoke
//
// # Architecture
//
// The score package defines the embedding-runtime boundary (runtime.go);
// implementations live in sub-packages:
//   - score/interp/: in-process yaegi interpreter runtime
//   - score/model/: model-artifact loading behind the interp.Predictor boundary
//
// Any runtime offering the Session operations satisfies the contract; the
// pipeline never inspects what is behind it.
package score
