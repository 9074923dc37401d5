// Package scan finds issues in a document.
//
// Three scanners produce issues and the run log entries that describe them:
//
//   - Punctuation searches every page for each mark of the active MarkSet.
//   - TypoScanner submits every sentence to a proofreading Checker and maps
//     each flagged word back to its occurrences on the page.
//   - Indentation flags lines whose first word starts right of a threshold.
//
// Merge concatenates their results in that order. None of the scanners
// fails on document content; a failed proofreading request becomes a log
// entry and the scan continues.
package scan
