// Package conditional computes the cache validators (ETag fingerprint and
// Last-Modified marker) for a response body and decides whether a request
// can be answered with 304 Not Modified.
package conditional

import (
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"time"
)

// Validator is computed per response and never persisted.
type Validator struct {
	ETag         string
	LastModified string
}

// NewValidator fingerprints the canonical serialized response body. Byte
// identical bodies always produce the same fingerprint, so callers must
// serialize in a stable field order and hand the exact bytes they will send.
//
// lastModified should be the RecordedAt of the newest record behind the
// body; a zero time falls back to the current wall clock, which makes the
// If-Modified-Since path best-effort only. The ETag is the reliable
// validator.
func NewValidator(serializedBody []byte, lastModified time.Time) Validator {
	digest := md5.Sum(serializedBody)

	if lastModified.IsZero() {
		lastModified = time.Now()
	}

	return Validator{
		ETag:         hex.EncodeToString(digest[:]),
		LastModified: lastModified.UTC().Format(http.TimeFormat),
	}
}

// NotModified reports whether the request's conditional headers match this
// validator verbatim, in which case the caller must respond 304 with no
// body and the same validator headers.
func (v Validator) NotModified(ifNoneMatch string, ifModifiedSince string) bool {
	if ifNoneMatch != "" && ifNoneMatch == v.ETag {
		return true
	}

	return ifModifiedSince != "" && ifModifiedSince == v.LastModified
}
