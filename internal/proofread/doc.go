// Package proofread is the client of the remote proofreading service.
//
// The service receives one sentence per GET request and answers with a JSON
// document listing the words it considers typos:
//
//	{"status": 1, "message": "ok", "alerts": [{"pos": 4, "word": "teh", "score": 0.9, "suggestions": ["the"]}]}
//
// A status of 1000 or more is a service-level error. Every other failure
// (transport, HTTP status, content type, body) maps to one of the sentinel
// errors in errors.go so callers can log and continue.
//
// Requests may be routed through a SOCKS5 proxy with golang.org/x/net/proxy.
package proofread
