// Package editor holds the section editors: one controller per sub-collection
// or sub-object of the resume document. Every editor writes through the
// store's shallow-merge contract by rebuilding the full collection (or the
// full basicInfo record) and sending it as a top-level replacement. No editor
// ever mutates a collection element in place.
package editor
