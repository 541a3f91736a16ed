package formatter

import (
	"bytes"
	"strings"
	"sync"

	"github.com/philipp01105/prefixlog/core"
)

// Reserved tokens, resolvable in every prefix template.
const (
	// LoggerNameToken renders the name of the logger.
	LoggerNameToken = "%loggerName"
	// LogLevelToken renders the upper-case level being emitted.
	LogLevelToken = "%logLevel"
)

// Prefix renders a prefix template for one logger and one level. The
// reserved tokens always resolve and win over placeholders with the same
// name. placeholders is not modified.
func Prefix(format string, placeholders map[string]string, loggerName string, level core.Level) string {
	subs := make(map[string]string, len(placeholders)+2)
	for k, v := range placeholders {
		subs[k] = v
	}
	subs[LoggerNameToken] = loggerName
	subs[LogLevelToken] = level.String()
	return Render(format, subs)
}

// Token returns name as a template token, adding the leading percent sign
// when it is missing. Token("appName") and Token("%appName") both return
// "%appName".
func Token(name string) string {
	if strings.HasPrefix(name, "%") {
		return name
	}
	return "%" + name
}

// Tokens returns a copy of placeholders with every key passed through
// Token. When both "x" and "%x" are present, "%x" wins.
func Tokens(placeholders map[string]string) map[string]string {
	if placeholders == nil {
		return nil
	}
	out := make(map[string]string, len(placeholders))
	for k, v := range placeholders {
		tok := Token(k)
		if tok != k {
			if _, explicit := placeholders[tok]; explicit {
				continue
			}
		}
		out[tok] = v
	}
	return out
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(64)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
