// Package debug provides optional file-based debug logging.
//
// When the BOXDOCK_DEBUG environment variable is set to a file path, debug
// records are appended to that file as JSON lines. Otherwise the logger
// discards everything.
package debug
