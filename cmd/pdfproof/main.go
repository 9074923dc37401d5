// Package main provides the entry point for the pdfproof CLI.
//
// pdfproof proofreads PDF documents. It flags punctuation from the wrong
// family, asks a proofreading service about every sentence, optionally
// checks left indentation, and writes a highlighted copy of each document
// together with a summary report.
//
// Usage:
//
//	pdfproof check paper.pdf
//	pdfproof check --marks latin ./drafts
//
// See --help for all available options.
package main

// main is the entry point for pdfproof.
func main() {
	Execute()
}
