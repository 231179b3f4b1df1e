// Package plan builds and manages swap-plan documents.
//
// A Document is the serializable record of one planning request: the working
// labels, the requested target ordering, the computed swap sequence and its
// statistics. Documents are what the CLI writes to disk, the archive stores
// and the HTTP API returns.
//
// The Runner wraps document construction with caching and logging so the
// CLI and the API share one code path.
package plan
