// Package archive provides durable storage for plan documents.
//
// Two backends implement the Store interface: a file store keeping one JSON
// file per document for CLI use, and a MongoDB store for shared deployments.
// Unlike the cache, the archive is an explicit history: entries never expire
// and are only removed on request.
package archive
