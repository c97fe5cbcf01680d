// Package vectorize is the offline embedding pipeline. It walks a corpus
// directory, embeds every chunk whose vector file is missing and writes
// the vectors next to the chunks. Runs are resumable: chunks that already
// have a vector file are skipped, so an interrupted run picks up where it
// stopped.
package vectorize
