package loader

import (
	"bytes"
	"fmt"
	"testing"
)

// BenchmarkParseSmall measures parsing of a typical small locale file.
func BenchmarkParseSmall(b *testing.B) {
	src := []byte(`{"settings": "Settings", "profiles": "Profiles", "proxies": "Proxies", "connections": "Connections", "logs": "Logs"}`)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(src); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParseLarge measures parsing of a locale file with many keys and
// nested values.
func BenchmarkParseLarge(b *testing.B) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; i < 2000; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `"key_%04d": {"label": "Label %d", "hint": "Hint %d"}`, i, i, i)
	}
	buf.WriteByte('}')
	src := buf.Bytes()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(src); err != nil {
			b.Fatal(err)
		}
	}
}
