package parse

import "testing"

func TestValueConsumesNothing(t *testing.T) {
	final := Value(42)(State{Input: "abc", Position: NewPosition("")})

	if final.Failed() {
		t.Fatalf("expected success, got %v", final.Error)
	}
	if final.Value != 42 {
		t.Errorf("expected value 42, got %v", final.Value)
	}
	if final.Input != "abc" {
		t.Errorf("expected input untouched, got %q", final.Input)
	}
}

func TestValueClearsError(t *testing.T) {
	failed := Fail("boom", "")(State{Position: NewPosition("")})
	final := Value("ok")(failed)

	if final.Failed() {
		t.Fatalf("expected error cleared, got %v", final.Error)
	}
}

func TestFailDefaults(t *testing.T) {
	final := Fail("", "")(State{Input: "anything", Position: NewPosition("")})

	if !final.Failed() {
		t.Fatal("expected failure")
	}
	if len(final.Error.Messages) != 1 || final.Error.Messages[0] != "parser error" {
		t.Errorf("expected default message, got %v", final.Error.Messages)
	}
	if final.Error.Kind != KindFailure {
		t.Errorf("expected kind %q, got %q", KindFailure, final.Error.Kind)
	}
}

func TestFailAccumulatesMessages(t *testing.T) {
	first := Fail("first", "")(State{Position: NewPosition("")})
	second := Fail("second", "")(first)

	if len(second.Error.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %v", second.Error.Messages)
	}
	if second.Error.Messages[0] != "first" || second.Error.Messages[1] != "second" {
		t.Errorf("expected messages in order, got %v", second.Error.Messages)
	}
}

func TestTokenConsumesOneRune(t *testing.T) {
	final := Token()(State{Input: "abc", Position: NewPosition("")})

	if final.Failed() {
		t.Fatalf("expected success, got %v", final.Error)
	}
	if final.Value != "a" {
		t.Errorf("expected value %q, got %v", "a", final.Value)
	}
	if final.Input != "bc" {
		t.Errorf("expected remaining %q, got %q", "bc", final.Input)
	}
	if final.Position.Column != 2 || final.Position.Line != 1 {
		t.Errorf("expected position 1:2, got %s", final.Position)
	}
}

func TestTokenOnEmptyInput(t *testing.T) {
	final := Token()(State{Input: "", Position: NewPosition("")})

	if !final.Failed() {
		t.Fatal("expected failure on empty input")
	}
	if final.Error.Kind != KindEOF {
		t.Errorf("expected kind %q, got %q", KindEOF, final.Error.Kind)
	}
	if final.Error.Messages[0] != "unexpected eof" {
		t.Errorf("expected eof message, got %v", final.Error.Messages)
	}
	if final.Error.Position.Line != 1 || final.Error.Position.Column != 1 {
		t.Errorf("expected failure at 1:1, got %s", final.Error.Position)
	}
}

func TestTokenNewlineAdvancesLine(t *testing.T) {
	final := Token()(State{Input: "\nx", Position: NewPosition("")})

	if final.Position.Line != 2 || final.Position.Column != 1 {
		t.Errorf("expected position 2:1 after newline, got %s", final.Position)
	}
}

func TestTokenMultibyteRune(t *testing.T) {
	final := Token()(State{Input: "äb", Position: NewPosition("")})

	if final.Value != "ä" {
		t.Errorf("expected value %q, got %v", "ä", final.Value)
	}
	if final.Input != "b" {
		t.Errorf("expected remaining %q, got %q", "b", final.Input)
	}
	if final.Position.Column != 2 {
		t.Errorf("expected one column per rune, got %s", final.Position)
	}
}

func TestEOFOnEmptyInput(t *testing.T) {
	final := EOF()(State{Input: "", Position: NewPosition("")})

	if final.Failed() {
		t.Fatalf("expected success, got %v", final.Error)
	}
	if final.Value != true {
		t.Errorf("expected value true, got %v", final.Value)
	}
}

func TestEOFOnRemainingInput(t *testing.T) {
	final := EOF()(State{Input: "x", Position: NewPosition("")})

	if !final.Failed() {
		t.Fatal("expected failure on remaining input")
	}
	if final.Error.Kind != KindExpectation {
		t.Errorf("expected kind %q, got %q", KindExpectation, final.Error.Kind)
	}
	if final.Input != "x" {
		t.Errorf("expected no consumption, got remaining %q", final.Input)
	}
}

func TestUserStateThreading(t *testing.T) {
	p := And(
		SetUserState(func(s any) any { return s.(int) + 1 }),
		Token(),
		UserState(),
	)
	value, err := Parse(p, "a", WithUserState(10))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if value != 11 {
		t.Errorf("expected user state 11, got %v", value)
	}
}
