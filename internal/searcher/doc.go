// Package searcher implements the bounded heap used for exact top-k scans.
package searcher
