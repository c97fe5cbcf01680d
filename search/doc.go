// Package search runs the retrieval pipeline over a loaded corpus: the
// query is enhanced with jurisdiction-specific fiscal vocabulary, embedded,
// ranked by cosine similarity, filtered through the source authenticity
// gate, then re-scored with keyword and article-reference signals before
// the final top results are returned.
package search
