// Package version reports the version of the front end and its two
// entry points, kept separate from cmd/ so both can import it.
package version

// Current is the version of the analisador module: the scanner, parser,
// and the wire format of the session report they produce together.
const Current = "0.1.0"
