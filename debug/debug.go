// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package debug gates optional runtime assertions behind the "debug" build tag.
//
// Assertions guard internal invariants (consistent curve parameter sets, matched
// field moduli); they are compiled out of release builds.
package debug

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Assert panics if the condition does not hold. It is a no-op unless the
// debug build tag is set.
func Assert(condition bool, args ...interface{}) {
	if Debug && !condition {
		if len(args) > 0 {
			panic(fmt.Sprint(args...))
		}
		panic("assertion failed\n" + Stack())
	}
}

// Stack returns a trimmed stack trace of the caller.
func Stack() string {
	var sbb strings.Builder
	writeStack(&sbb)
	return sbb.String()
}

func writeStack(sbb *strings.Builder) {
	// derived from: https://golang.org/pkg/runtime/#example_Frames
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	if n == 0 {
		return
	}
	pc = pc[:n]
	frames := runtime.CallersFrames(pc)
	for {
		frame, more := frames.Next()
		fe := strings.Split(frame.Function, "/")
		function := fe[len(fe)-1]
		file := frame.File
		if !Debug {
			if strings.Contains(function, "runtime.gopanic") {
				continue
			}
			file = filepath.Base(file)
		}
		sbb.WriteString(function)
		sbb.WriteByte('\n')
		sbb.WriteByte('\t')
		sbb.WriteString(file)
		sbb.WriteByte(':')
		sbb.WriteString(strconv.Itoa(frame.Line))
		sbb.WriteByte('\n')
		if !more {
			break
		}
	}
}
