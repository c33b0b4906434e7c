// Package kfmt implements the allocation-free formatted output helpers used
// by the kernel. Output is routed to an io.Writer sink which defaults to the
// VGA console.
package kfmt

import (
	"io"
	"strconv"
	"unsafe"

	"gopherboot/device/video/console"
)

// maxBufSize defines the buffer size for formatting numbers. It fits a
// 64-bit value rendered in base 8.
const maxBufSize = 24

var (
	errMissingArg   = "%!(MISSING)"
	errWrongArgType = "%!(WRONGTYPE)"
	errNoVerb       = "%!(NOVERB)"
	errBadVerb      = "%!(BADVERB)"
	errExtraArg     = "%!(EXTRA)"

	numFmtBuf [maxBufSize]byte

	// outputSink is the io.Writer where Printf sends its output. When
	// nil, output goes to the sink returned by defaultSinkFn.
	outputSink io.Writer

	defaultSinkFn = func() io.Writer { return console.Get() }
)

// SetOutputSink sets the default target for calls to Printf to w. Passing
// nil restores the console as the output target.
func SetOutputSink(w io.Writer) {
	outputSink = w
}

// Printf provides a minimal Printf implementation that can be safely used
// before the Go runtime has been properly initialized. This implementation
// does not allocate any memory.
//
// Similar to fmt.Printf, this version of printf supports the following subset
// of formatting verbs:
//
// Strings:
//
//	%s the uninterpreted bytes of the string or byte slice
//
// Integers:
//
//	%o base 8
//	%d base 10
//	%x base 16, with lower-case letters for a-f
//
// Booleans:
//
//	%t "true" or "false"
//
// Width is specified by an optional decimal number immediately preceding the
// verb. Strings and base-10 integers are left-padded with spaces; base-8 and
// base-16 integers are left-padded with zeroes.
func Printf(format string, args ...interface{}) {
	Fprintf(outputSink, format, args...)
}

// Fprintf behaves exactly like Printf but it writes the formatted output to
// the specified io.Writer. A nil writer selects the default sink.
func Fprintf(w io.Writer, format string, args ...interface{}) {
	if w == nil {
		w = defaultSinkFn()
	}

	var (
		nextArgIndex int
		blockStart   int
		padLen       int
		fmtLen       = len(format)
	)

	for i := 0; i < fmtLen; i++ {
		if format[i] != '%' {
			continue
		}

		doWrite(w, format[blockStart:i])

		// Scan til we hit the format character
		padLen = 0
		for i++; i < fmtLen && format[i] >= '0' && format[i] <= '9'; i++ {
			padLen = (padLen * 10) + int(format[i]-'0')
		}

		if i == fmtLen {
			doWrite(w, errNoVerb)
			blockStart = fmtLen
			break
		}

		blockStart = i + 1
		verb := format[i]
		if verb == '%' {
			doWrite(w, "%")
			continue
		}

		if nextArgIndex >= len(args) {
			doWrite(w, errMissingArg)
			continue
		}

		switch verb {
		case 'o':
			fmtInt(w, args[nextArgIndex], 8, padLen)
		case 'd':
			fmtInt(w, args[nextArgIndex], 10, padLen)
		case 'x':
			fmtInt(w, args[nextArgIndex], 16, padLen)
		case 's':
			fmtString(w, args[nextArgIndex], padLen)
		case 't':
			fmtBool(w, args[nextArgIndex])
		default:
			doWrite(w, errBadVerb)
		}
		nextArgIndex++
	}

	doWrite(w, format[blockStart:])

	// Check for unused args
	for ; nextArgIndex < len(args); nextArgIndex++ {
		doWrite(w, errExtraArg)
	}
}

// fmtBool prints a formatted version of boolean value v.
func fmtBool(w io.Writer, v interface{}) {
	bVal, ok := v.(bool)
	switch {
	case !ok:
		doWrite(w, errWrongArgType)
	case bVal:
		doWrite(w, "true")
	default:
		doWrite(w, "false")
	}
}

// fmtString prints a formatted version of string or []byte value v, applying
// the padding specified by padLen.
func fmtString(w io.Writer, v interface{}, padLen int) {
	switch castedVal := v.(type) {
	case string:
		fmtRepeat(w, " ", padLen-len(castedVal))
		doWrite(w, castedVal)
	case []byte:
		fmtRepeat(w, " ", padLen-len(castedVal))
		doWrite(w, *(*string)(unsafe.Pointer(&castedVal)))
	default:
		doWrite(w, errWrongArgType)
	}
}

// fmtRepeat writes s count times.
func fmtRepeat(w io.Writer, s string, count int) {
	for ; count > 0; count-- {
		doWrite(w, s)
	}
}

// fmtInt prints out a formatted version of v in the requested base, applying
// the padding specified by padLen. This function supports all built-in signed
// and unsigned integer types.
func fmtInt(w io.Writer, v interface{}, base, padLen int) {
	var (
		sval int64
		uval uint64
		neg  bool
	)

	switch t := v.(type) {
	case uint8:
		uval = uint64(t)
	case uint16:
		uval = uint64(t)
	case uint32:
		uval = uint64(t)
	case uint64:
		uval = t
	case uint:
		uval = uint64(t)
	case uintptr:
		uval = uint64(t)
	case int8:
		sval = int64(t)
	case int16:
		sval = int64(t)
	case int32:
		sval = int64(t)
	case int64:
		sval = t
	case int:
		sval = int64(t)
	default:
		doWrite(w, errWrongArgType)
		return
	}

	if sval < 0 {
		neg, uval = true, uint64(-sval)
	} else if sval > 0 {
		uval = uint64(sval)
	}

	digits := strconv.AppendUint(numFmtBuf[:0], uval, base)
	padLen -= len(digits)
	if neg {
		padLen--
	}

	if base == 10 {
		fmtRepeat(w, " ", padLen)
		if neg {
			doWrite(w, "-")
		}
	} else {
		if neg {
			doWrite(w, "-")
		}
		fmtRepeat(w, "0", padLen)
	}

	doWrite(w, *(*string)(unsafe.Pointer(&digits)))
}

// doWrite uses the runtime.noescape hack to hide s from the compiler's escape
// analysis. Without it, passing s to the yet unknown io.Writer flags every
// Printf argument as escaping, and boxing those arguments would call into
// the Go allocator.
func doWrite(w io.Writer, s string) {
	if len(s) == 0 {
		return
	}
	io.WriteString(w, *(*string)(noEscape(unsafe.Pointer(&s))))
}

// noEscape hides a pointer from escape analysis. This function is copied over
// from runtime/stubs.go
//
//go:nosplit
func noEscape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}
