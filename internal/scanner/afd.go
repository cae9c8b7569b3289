package scanner

// stateKind distinguishes the four families of AFD state named by the
// source analyser: the starting state, an accepting state tagged with the
// pattern it completed, a non-accepting intermediate state tagged with its
// own identity, and an error state tagged with one of the seven lexical
// error codes.
type stateKind int

const (
	stateInitial stateKind = iota
	stateAccept
	stateNonAccept
	stateError
)

// afdState is a tagged union mirroring the AFDState enum of the reference
// implementation: Initial, Accept(n), NonAccept(n), Error(n).
type afdState struct {
	kind stateKind
	code int
}

func initial() afdState           { return afdState{kind: stateInitial} }
func accept(code int) afdState    { return afdState{kind: stateAccept, code: code} }
func nonAccept(code int) afdState { return afdState{kind: stateNonAccept, code: code} }
func errState(code int) afdState  { return afdState{kind: stateError, code: code} }

// action tells the scanner what to do with the character that was just fed
// to the automaton.
type action int

const (
	actionIdle           action = iota // whitespace: drop the character, stay put
	actionStandard                     // append the character to the lexeme buffer
	actionGoBack                       // the character belongs to the next token; rewind the cursor
	actionClear                        // a comment just closed; discard the buffered lexeme
	actionShowErrMessage               // a lexical error occurred on this character
)

// afd is the lexical automaton. It is re-created for every token scanned;
// advance feeds it one rune at a time.
type afd struct {
	state afdState
	done  bool
	act   action
}

func newAFD() *afd {
	return &afd{state: initial(), act: actionIdle}
}

// advance consumes one input rune and updates the automaton's state, done
// flag, and pending action. It is a direct transcription of the reference
// AFD's transition table; state codes and error codes are the same ones
// named in that table.
func (a *afd) advance(c rune) {
	a.act = actionStandard

	switch a.state.kind {
	case stateInitial:
		switch {
		case isDigit(c):
			a.state = accept(1)
		case c == '"':
			a.state = nonAccept(7)
		case isLetter(c):
			a.state = accept(9)
		case c == '{':
			a.state = nonAccept(10)
		case c == '<':
			a.state = accept(13)
		case c == '>':
			a.state = accept(16)
		case c == '=':
			a.done = true
			a.state = accept(18)
		case c == '+' || c == '-' || c == '*' || c == '/':
			a.done = true
			a.state = accept(19)
		case c == '(':
			a.done = true
			a.state = accept(20)
		case c == ')':
			a.done = true
			a.state = accept(21)
		case c == ';':
			a.done = true
			a.state = accept(22)
		case c == ',':
			a.done = true
			a.state = accept(23)
		case c == '\n' || c == '\r' || c == ' ':
			a.state = initial()
			a.act = actionIdle
		case isValid(c):
			a.err(1)
		default:
			a.err(0)
		}

	case stateAccept:
		switch a.state.code {
		case 1:
			switch {
			case isDigit(c):
				a.state = accept(1)
			case c == '.':
				a.state = nonAccept(2)
			case c == 'e' || c == 'E':
				a.state = nonAccept(4)
			case isValid(c):
				a.end()
			default:
				a.err(0)
			}
		case 3:
			switch {
			case isDigit(c):
				a.state = accept(3)
			case c == 'e' || c == 'E':
				a.state = nonAccept(4)
			case isValid(c):
				a.end()
			default:
				a.err(0)
			}
		case 6:
			switch {
			case isDigit(c):
				a.state = accept(6)
			case isValid(c):
				a.end()
			default:
				a.err(0)
			}
		case 9:
			switch {
			case isDigit(c) || isLetter(c) || c == '_':
				a.state = accept(9)
			case isValid(c):
				a.end()
			default:
				a.err(0)
			}
		case 13:
			switch {
			case c == '=' || c == '>':
				a.done = true
				a.state = accept(15)
			case c == '-':
				a.done = true
				a.state = accept(14)
			case isValid(c):
				a.end()
			default:
				a.err(0)
			}
		case 16:
			switch {
			case c == '=':
				a.done = true
				a.state = accept(17)
			case isValid(c):
				a.end()
			default:
				a.err(0)
			}
		case 25:
			switch {
			case isDigit(c):
				a.state = accept(25)
			case isValid(c):
				a.end()
			default:
				a.err(0)
			}
		}

	case stateNonAccept:
		switch a.state.code {
		case 2:
			if isDigit(c) {
				a.state = accept(3)
			} else {
				a.err(2)
			}
		case 4:
			switch {
			case c == '-':
				a.state = nonAccept(5)
			case c == '+':
				a.state = nonAccept(24)
			case isDigit(c):
				a.state = accept(25)
			default:
				a.err(3)
			}
		case 5:
			if isDigit(c) {
				a.state = accept(6)
			} else {
				a.err(5)
			}
		case 7:
			switch {
			case c == '"':
				a.done = true
				a.state = accept(8)
			case isValid(c):
				a.state = nonAccept(7)
			default:
				a.err(0)
			}
		case 10:
			if c == '}' {
				a.state = initial()
				a.act = actionClear
			} else if isValid(c) {
				a.state = nonAccept(10)
			} else {
				a.err(0)
			}
		case 24:
			if isDigit(c) {
				a.state = accept(25)
			} else {
				a.err(4)
			}
		}
	}
}

func (a *afd) err(code int) {
	a.done = true
	a.state = errState(code)
	a.act = actionShowErrMessage
}

func (a *afd) end() {
	a.done = true
	a.act = actionGoBack
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isValid reports whether c belongs to the language's source alphabet, used
// to tell "character outside the alphabet entirely" (Error(0)) apart from
// "not the character this state wants, but still a legal follower"
// (Error(1), unrecognized token start).
func isValid(c rune) bool {
	switch {
	case isDigit(c), isLetter(c):
		return true
	}
	switch c {
	case ',', '.', ';', ':', '<', '>', '=', '(', ')', '[', ']', '{', '}',
		'+', '-', '*', '/', '!', '?', '\\', '"', '\'', '\n', '\r', ' ':
		return true
	}
	return false
}
