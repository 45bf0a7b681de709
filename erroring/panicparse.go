package erroring

import (
	"bytes"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/maruel/panicparse/v2/stack"
)

const modulePath = "github.com/siadat/bashast"

// TraceOutput is where CallAndRecover reports panics it does not know how
// to convert. Set it to io.Discard to silence them.
var TraceOutput io.Writer = io.Discard

// PrintTrace writes the current goroutine's stack, trimmed to the frames
// that belong to this module, using panicparse.
// See https://pkg.go.dev/github.com/maruel/panicparse/v2/stack
func PrintTrace(out io.Writer) {
	var stream = bytes.NewReader(debug.Stack())

	var snapshot, suffix, err = stack.ScanSnapshot(stream, out, stack.DefaultOpts())
	if err != nil && err != io.EOF {
		fmt.Fprintf(out, "stack unavailable: %v\n", err)
		return
	}
	if snapshot == nil {
		return
	}

	var buckets = snapshot.Aggregate(stack.AnyValue).Buckets

	var colLen = 0
	for _, bucket := range buckets {
		for _, call := range moduleCalls(bucket.Signature.Stack.Calls) {
			if l := len(callSite(call)); l > colLen {
				colLen = l
			}
		}
	}

	for _, bucket := range buckets {
		var extra = ""
		if s := bucket.SleepString(); s != "" {
			extra += " [" + s + "]"
		}
		if bucket.Locked {
			extra += " [locked]"
		}
		fmt.Fprintf(out, "%d: %s%s\n", len(bucket.IDs), bucket.State, extra)

		for _, call := range moduleCalls(bucket.Signature.Stack.Calls) {
			fmt.Fprintf(out, "    %-*s %s(...)\n", colLen, callSite(call), call.Func.Name)
		}
		if bucket.Stack.Elided {
			io.WriteString(out, "    (...) (elided)\n")
		}
	}

	if len(suffix) != 0 {
		out.Write(suffix)
	}
}

// moduleCalls drops everything up to and including the runtime panic frame
// and keeps only frames from main or from this module.
func moduleCalls(calls []stack.Call) []stack.Call {
	var ret []stack.Call
	var sawPanic = false
	for _, call := range calls {
		if !sawPanic {
			sawPanic = call.Func.DirName == "" && call.SrcName == "panic.go"
			continue
		}
		if call.Func.IsPkgMain || strings.HasPrefix(call.ImportPath, modulePath) {
			ret = append(ret, call)
		}
	}
	return ret
}

func callSite(call stack.Call) string {
	return fmt.Sprintf("%s/%s:%d", call.Func.DirName, call.SrcName, call.Line)
}
