package handler

import (
	"bytes"
	"sync"
)

// Response bodies are encoded into pooled buffers so the hot path does not
// allocate a fresh one per request.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// maxPooledBufferSize keeps an occasional huge response from pinning its
// buffer in the pool forever.
const maxPooledBufferSize = 64 << 10

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
