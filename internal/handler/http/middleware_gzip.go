// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
)

// compressedTypes are the response content types gzipped for clients that
// accept it. Reports are stored already compressed or as PDFs and pass
// through untouched.
var compressedTypes = []string{"application/json", "text/plain"}

// withGZip compresses responses with chi's Compress middleware and inflates
// gzip-encoded request bodies.
func withGZip(next http.Handler) http.Handler {
	return middleware.Compress(5, compressedTypes...)(withGzipRequest(next))
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGzipRequest replaces a "Content-Encoding: gzip" body with its inflated
// stream. The decoded length is unknown, so ContentLength becomes -1.
func withGzipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		zr := gzipReaderPool.Get().(*gzip.Reader)
		if err := zr.Reset(r.Body); err != nil {
			gzipReaderPool.Put(zr)
			writeServiceError(w, r, "withGzipRequest", ErrInvalidGzipBody)
			return
		}

		r.Body = &pooledGzipBody{Reader: zr, source: r.Body}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

type pooledGzipBody struct {
	*gzip.Reader
	source io.Closer
	closed bool
}

func (b *pooledGzipBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	_ = b.Reader.Close()
	gzipReaderPool.Put(b.Reader)
	return b.source.Close()
}
