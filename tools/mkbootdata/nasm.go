package main

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
)

// nasmWriter accumulates NASM source.
type nasmWriter struct {
	buf bytes.Buffer
}

func (w *nasmWriter) Bytes() []byte {
	return w.buf.Bytes()
}

// line writes a single line of source. Lines that are not labels, directives
// or comments are indented.
func (w *nasmWriter) line(format string, args ...interface{}) {
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteByte('\n')
}

func (w *nasmWriter) instr(format string, args ...interface{}) {
	w.buf.WriteByte('\t')
	w.line(format, args...)
}

func (w *nasmWriter) blank() {
	w.buf.WriteByte('\n')
}

func (w *nasmWriter) comment(format string, args ...interface{}) {
	w.buf.WriteString("; ")
	w.line(format, args...)
}

func (w *nasmWriter) label(name string) {
	w.line("%s:", name)
}

func (w *nasmWriter) equ(name string, value uint64) {
	w.line("%-32s equ 0x%x", name, value)
}

// bytes emits data as db directives with 8 bytes per line.
func (w *nasmWriter) bytes(data []byte) {
	for len(data) > 0 {
		n := len(data)
		if n > 8 {
			n = 8
		}

		parts := make([]string, n)
		for i, b := range data[:n] {
			parts[i] = fmt.Sprintf("0x%02x", b)
		}
		w.instr("db %s", strings.Join(parts, ", "))
		data = data[n:]
	}
}

// quadwords emits values as dq directives, folding runs of zeroes into a
// single times directive.
func (w *nasmWriter) quadwords(values []uint64) {
	for i := 0; i < len(values); {
		if values[i] != 0 {
			w.instr("dq 0x%016x ; [%d]", values[i], i)
			i++
			continue
		}

		run := 1
		for i+run < len(values) && values[i+run] == 0 {
			run++
		}
		w.instr("times %d dq 0", run)
		i += run
	}
}

// str emits s as a quoted db directive.
func (w *nasmWriter) str(s string) error {
	for _, r := range s {
		if r == '\'' || r > unicode.MaxASCII || !unicode.IsPrint(r) {
			return fmt.Errorf("string %q cannot be emitted as a NASM literal", s)
		}
	}

	w.instr("db '%s'", s)
	return nil
}

// symbolName converts a CamelCase identifier to a snake_case NASM symbol
// suffix. Acronyms are kept together: CPUIDUnavailable becomes
// cpuid_unavailable.
func symbolName(name string) string {
	var sb strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
				sb.WriteByte('_')
			}
		}
		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}
