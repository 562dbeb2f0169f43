package tools

import (
	"bytes"
	"io"
	"sync"
)

var pool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 10240))
	},
}

// ReadAll drains r through a pooled buffer.
func ReadAll(r io.Reader) ([]byte, error) {
	buffer := pool.Get().(*bytes.Buffer)
	buffer.Reset()
	_, err := io.Copy(buffer, r)
	if err != nil {
		pool.Put(buffer)
		return []byte{}, err
	}
	temp := buffer.Bytes()
	length := len(temp)
	body := make([]byte, length)
	copy(body, temp)
	pool.Put(buffer)
	return body, nil
}
