package parse

import "testing"

func TestCursorPeek(t *testing.T) {
	c := NewCursor("ab")
	if c.Peek(0) != 'a' || c.Peek(1) != 'b' {
		t.Fatalf("peek got %q %q", c.Peek(0), c.Peek(1))
	}
	if c.Peek(2) != EOF || c.Peek(100) != EOF {
		t.Fatal("peek past end should return the sentinel")
	}
	if c.AtEnd() {
		t.Fatal("cursor with content reported end")
	}
	if !NewCursor("").AtEnd() {
		t.Fatal("empty cursor should be at end")
	}
}

func TestAdvance(t *testing.T) {
	c := NewCursor("abc")
	r := Advance(c, 'a', 1)
	if !r.Ok() || r.Value() != 'a' {
		t.Fatalf("advance result: ok=%v value=%q", r.Ok(), r.Value())
	}
	if r.Rest().Pos() != 1 || r.Rest().Peek(0) != 'b' {
		t.Fatalf("remainder at %d, next %q", r.Rest().Pos(), r.Rest().Peek(0))
	}
}

func TestFailureIsDistinctFromZeroSuccess(t *testing.T) {
	// A success carrying the zero value must still be distinguishable
	// from failure.
	ok := Success(byte(0), NewCursor(""))
	if !ok.Ok() {
		t.Fatal("zero-valued success reported as failure")
	}
	if Failure[byte]().Ok() {
		t.Fatal("failure reported as success")
	}
}

func TestChar(t *testing.T) {
	c := NewCursor("xy")
	if r := Char('x')(c); !r.Ok() || r.Value() != 'x' || r.Rest().Pos() != 1 {
		t.Fatalf("char match failed: %+v", r)
	}
	if Char('z')(c).Ok() {
		t.Fatal("char matched wrong byte")
	}
	if Char('x')(NewCursor("")).Ok() {
		t.Fatal("char matched at end of input")
	}
}

func TestAnyChar(t *testing.T) {
	if r := AnyChar()(NewCursor("q")); !r.Ok() || r.Value() != 'q' {
		t.Fatalf("anychar: %+v", r)
	}
	if AnyChar()(NewCursor("")).Ok() {
		t.Fatal("anychar matched at end of input")
	}
}

func TestRepeat(t *testing.T) {
	p := Repeat(Char('a'))
	r := p(NewCursor("aaab"))
	if !r.Ok() || len(r.Value()) != 3 {
		t.Fatalf("repeat got %v", r.Value())
	}
	if r.Rest().Peek(0) != 'b' {
		t.Fatal("repeat should stop at the first failure")
	}

	// zero matches is still a success
	r = p(NewCursor("bbb"))
	if !r.Ok() || len(r.Value()) != 0 || r.Rest().Pos() != 0 {
		t.Fatalf("empty repeat got %v at %d", r.Value(), r.Rest().Pos())
	}
}

func TestRepeatTerminatesOnZeroLengthMatch(t *testing.T) {
	// a parser that succeeds without consuming must not spin Repeat
	still := func(c Cursor) Result[byte] { return Success(byte('x'), c) }
	r := Repeat(Parser[byte](still))(NewCursor("abc"))
	if !r.Ok() || len(r.Value()) != 0 {
		t.Fatalf("repeat of zero-length parser got %v", r.Value())
	}
}

func TestRepeat1(t *testing.T) {
	p := Repeat1(Char('a'))
	if r := p(NewCursor("aa")); !r.Ok() || len(r.Value()) != 2 {
		t.Fatalf("repeat1 got %v", r.Value())
	}
	if p(NewCursor("b")).Ok() {
		t.Fatal("repeat1 should fail on zero matches")
	}
}

func TestAnd(t *testing.T) {
	p := And(Char('a'), Char('b'))
	r := p(NewCursor("ab"))
	if !r.Ok() || r.Value().First != 'a' || r.Value().Second != 'b' {
		t.Fatalf("and got %+v", r.Value())
	}
	if p(NewCursor("ac")).Ok() {
		t.Fatal("and should fail when the second parser fails")
	}
	if p(NewCursor("cb")).Ok() {
		t.Fatal("and should fail when the first parser fails")
	}
}

func TestOrTriesSecondFromOriginalPosition(t *testing.T) {
	// first alternative consumes 'a' then fails on 'b'; second must see
	// the input from the start again
	p := Or(Second(And(Char('a'), Char('x'))), Char('a'))
	r := p(NewCursor("ab"))
	if !r.Ok() || r.Value() != 'a' || r.Rest().Pos() != 1 {
		t.Fatalf("or fallback got %+v at %d", r.Value(), r.Rest().Pos())
	}
}

func TestOrOrderEncodesPrecedence(t *testing.T) {
	first := Map(Char('a'), func(byte) string { return "first" })
	second := Map(Char('a'), func(byte) string { return "second" })
	if r := Or(first, second)(NewCursor("a")); r.Value() != "first" {
		t.Fatalf("or picked %q", r.Value())
	}
}

func TestNot(t *testing.T) {
	p := Not(AnyChar(), Char('%'))
	if p(NewCursor("%x")).Ok() {
		t.Fatal("not should fail when the guard matches")
	}
	r := p(NewCursor("x%"))
	if !r.Ok() || r.Value() != 'x' || r.Rest().Pos() != 1 {
		t.Fatalf("not got %+v at %d", r.Value(), r.Rest().Pos())
	}
}

func TestNotDiscardsGuardConsumption(t *testing.T) {
	// guard consumes two bytes when it matches, but a failed guard must
	// leave the position untouched for p
	guard := And(Char('a'), Char('b'))
	p := Not(AnyChar(), guard)
	r := p(NewCursor("ac"))
	if !r.Ok() || r.Value() != 'a' || r.Rest().Pos() != 1 {
		t.Fatalf("not after failed guard: %+v at %d", r.Value(), r.Rest().Pos())
	}
}

func TestProjections(t *testing.T) {
	pair := And(Char('a'), Char('b'))
	if r := First(pair)(NewCursor("ab")); r.Value() != 'a' || r.Rest().Pos() != 2 {
		t.Fatalf("first got %q at %d", r.Value(), r.Rest().Pos())
	}
	if r := Second(pair)(NewCursor("ab")); r.Value() != 'b' || r.Rest().Pos() != 2 {
		t.Fatalf("second got %q at %d", r.Value(), r.Rest().Pos())
	}
}

func TestMapPropagatesFailure(t *testing.T) {
	called := false
	p := Map(Char('a'), func(b byte) string { called = true; return string(b) })
	if p(NewCursor("z")).Ok() || called {
		t.Fatal("map must propagate failure without calling f")
	}
}

func TestTextAndConcat(t *testing.T) {
	word := Text(Repeat1(Not(AnyChar(), Char(' '))))
	if r := word(NewCursor("hello world")); r.Value() != "hello" {
		t.Fatalf("text got %q", r.Value())
	}

	many := Concat(Repeat(word))
	if r := many(NewCursor("abc")); r.Value() != "abc" {
		t.Fatalf("concat got %q", r.Value())
	}
}
