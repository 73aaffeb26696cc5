package trapmap

import "fmt"

// Verbose gates the trace output below. The teacher (osuushi/triangulate)
// prints every step of the query-graph surgery unconditionally with
// fmt.Println; that is fine for a demo but floods a library's test output, so
// here the same fmt.Println/fmt.Printf calls are kept, just behind this flag.
// Off by default.
var Verbose = false

func tracef(format string, args ...interface{}) {
	if !Verbose {
		return
	}
	fmt.Printf(format+"\n", args...)
}

func trace(args ...interface{}) {
	if !Verbose {
		return
	}
	fmt.Println(args...)
}

// warnf reports a non-fatal condition (currently: a degenerate polygon was
// skipped during edge extraction). It always prints, unlike trace/tracef,
// since a dropped obstacle is something a caller should notice even with
// Verbose off.
func warnf(format string, args ...interface{}) {
	fmt.Printf("trapmap: warning: "+format+"\n", args...)
}
