// Package consolehandler provides the default output for prefixlog: a
// console that writes trace, debug, info and print calls to stdout and
// warn and error calls to stderr, one line per call.
//
// Arguments are joined like fmt.Println joins them, so a rendered prefix
// and the message arrive as "(svc) INFO: message". The writers can be
// replaced through ConsoleConfig, which is how tests capture output.
package consolehandler
