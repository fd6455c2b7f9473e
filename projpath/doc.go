// Package projpath locates the benchmark log file inside the enclosing
// project tree by walking up from the execution directory until a
// directory with a matching name is found.
//
// Resolution is a pure read of the directory hierarchy: no directory or
// file is created. A failed lookup is fatal for the caller, because a
// file sink configured with a bogus path drops writes silently instead
// of erroring.
package projpath
