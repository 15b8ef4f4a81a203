// Package cast converts loosely typed values decoded from option documents.
//
// Integer inputs go through [safemath] so that oversized counts are rejected
// instead of silently truncated; everything else goes through [cast].
package cast
