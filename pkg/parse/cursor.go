package parse

// EOF is the sentinel byte Peek returns past the end of the window.
const EOF byte = 0

// Cursor is an immutable half-open window [start, end) into the input
// text. All parsing state is the current position; advancing yields a new
// cursor instead of mutating the old one, so cursors are safe to copy and
// share freely. A cursor holds no heap state of its own.
type Cursor struct {
	text       string
	start, end int
}

func NewCursor(text string) Cursor {
	return Cursor{text: text, end: len(text)}
}

func (c Cursor) AtEnd() bool {
	return c.start >= c.end
}

// Peek returns the byte at offset i past the current position, or EOF if
// that would fall outside the window. It never panics.
func (c Cursor) Peek(i int) byte {
	if c.start+i >= c.end {
		return EOF
	}
	return c.text[c.start+i]
}

// Pos reports the absolute offset of the current position in the input.
func (c Cursor) Pos() int {
	return c.start
}

// Advance pairs value with a cursor moved n bytes forward, forming a
// successful Result. n must not exceed the remaining window; every
// primitive in this package upholds that.
func Advance[T any](c Cursor, value T, n int) Result[T] {
	return Success(value, Cursor{text: c.text, start: c.start + n, end: c.end})
}

// Result is the outcome of running a parser at a cursor: either a value
// plus the remainder cursor to continue from, or a dedicated failure
// state. Failure is an explicit tag, never a sentinel value, so a parser
// may legitimately succeed with the zero value of T.
type Result[T any] struct {
	value T
	rest  Cursor
	ok    bool
}

func Success[T any](value T, rest Cursor) Result[T] {
	return Result[T]{value: value, rest: rest, ok: true}
}

func Failure[T any]() Result[T] {
	return Result[T]{}
}

func (r Result[T]) Ok() bool {
	return r.ok
}

func (r Result[T]) Value() T {
	return r.value
}

// Rest returns the cursor a successful parse left off at. Meaningless on
// a failed result.
func (r Result[T]) Rest() Cursor {
	return r.rest
}
