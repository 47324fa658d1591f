package token_test

import (
	"testing"

	"lexa/internal/token"
)

// Полная таблица wire-кодов. Любое расхождение здесь — слом формата PIF.
func TestWireCodes(t *testing.T) {
	want := []struct {
		kind token.Kind
		code int64
	}{
		{token.Ident, 0},
		{token.ConstLit, 1},
		{token.KwInt, 2},
		{token.KwChar, 3},
		{token.KwString, 4},
		{token.KwBool, 5},
		{token.KwConst, 6},
		{token.KwFor, 7},
		{token.KwWhile, 8},
		{token.KwDo, 9},
		{token.KwIf, 10},
		{token.KwElse, 11},
		{token.KwCin, 12},
		{token.KwCout, 13},
		{token.KwReturn, 14},
		{token.KwMain, 15},
		{token.Semicolon, 16},
		{token.Comma, 17},
		{token.Dot, 18},
		{token.Plus, 19},
		{token.Star, 20},
		{token.LParen, 21},
		{token.RParen, 22},
		{token.LBracket, 23},
		{token.RBracket, 24},
		{token.LBrace, 25},
		{token.RBrace, 26},
		{token.Minus, 27},
		{token.Lt, 28},
		{token.Gt, 29},
		{token.Assign, 30},
		{token.EqEq, 31},
		{token.Colon, 32},
		{token.LtEq, 33},
		{token.GtEq, 34},
		{token.BangEq, 35},
		{token.AndAnd, 36},
		{token.OrOr, 37},
	}
	for _, tt := range want {
		if tt.kind.Code() != tt.code {
			t.Errorf("%v.Code() = %d, want %d", tt.kind, tt.kind.Code(), tt.code)
		}
	}
}

func TestKindFromCode_RoundTrip(t *testing.T) {
	for code := int64(0); code <= token.OrOr.Code(); code++ {
		kind, ok := token.KindFromCode(code)
		if !ok {
			t.Fatalf("KindFromCode(%d) rejected an in-range code", code)
		}
		if kind.Code() != code {
			t.Errorf("KindFromCode(%d).Code() = %d", code, kind.Code())
		}
	}
	for _, code := range []int64{-1, token.OrOr.Code() + 1, 100} {
		if _, ok := token.KindFromCode(code); ok {
			t.Errorf("KindFromCode(%d) accepted an out-of-range code", code)
		}
	}
}

func TestLookup_Catalog(t *testing.T) {
	tests := []struct {
		lexeme string
		kind   token.Kind
	}{
		{"int", token.KwInt},
		{"main", token.KwMain},
		{";", token.Semicolon},
		{"<=", token.LtEq},
		{"||", token.OrOr},
	}
	for _, tt := range tests {
		k, ok := token.Lookup(tt.lexeme)
		if !ok || k != tt.kind {
			t.Errorf("Lookup(%q) = %v, %v; want %v, true", tt.lexeme, k, ok, tt.kind)
		}
	}

	for _, lexeme := range []string{"", "Int", "INT", "foo", "42", "!", "<<", ">>"} {
		if _, ok := token.Lookup(lexeme); ok {
			t.Errorf("Lookup(%q) unexpectedly hit the catalog", lexeme)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	if k, ok := token.LookupKeyword("while"); !ok || k != token.KwWhile {
		t.Errorf("LookupKeyword(%q) = %v, %v", "while", k, ok)
	}
	// символы каталога — не ключевые слова
	if _, ok := token.LookupKeyword(";"); ok {
		t.Error("LookupKeyword accepted punctuation")
	}
}

func TestKindPredicates(t *testing.T) {
	if !token.Ident.HasSymbol() || !token.ConstLit.HasSymbol() {
		t.Error("Ident and ConstLit must carry symbols")
	}
	for _, k := range []token.Kind{token.KwInt, token.Semicolon, token.EOF, token.Invalid} {
		if k.HasSymbol() {
			t.Errorf("%v must not carry a symbol", k)
		}
	}
	if !token.KwInt.IsKeyword() || !token.KwMain.IsKeyword() {
		t.Error("KwInt..KwMain are keywords")
	}
	if token.Ident.IsKeyword() || token.Semicolon.IsKeyword() {
		t.Error("Ident and punctuation are not keywords")
	}
	if !token.Semicolon.IsPunctOrOp() || !token.OrOr.IsPunctOrOp() {
		t.Error("Semicolon..OrOr are punctuation/operators")
	}
	if token.KwInt.IsPunctOrOp() || token.EOF.IsPunctOrOp() {
		t.Error("keywords and EOF are not punctuation")
	}
}

func TestKindString(t *testing.T) {
	if token.KwCout.String() != "KwCout" {
		t.Errorf("KwCout.String() = %q", token.KwCout.String())
	}
	if token.Kind(200).String() != "Unknown" {
		t.Errorf("out-of-range kind String() = %q", token.Kind(200).String())
	}
}
