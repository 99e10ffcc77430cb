// Copyright (c) 2024 IBM Corp.
// All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lisp

import (
	"strings"
	"sync"

	C "github.com/fnparse-go/fnparse/charrule"
	Logging "github.com/fnparse-go/fnparse/logging"
	O "github.com/fnparse-go/fnparse/option"
	P "github.com/fnparse-go/fnparse/pair"
	R "github.com/fnparse-go/fnparse/rule"
	"github.com/fnparse-go/fnparse/stream"
)

var warn, _ = Logging.LoggingCallbacks()

// SetWarningLogger overrides the callback the grammar uses to report deprecated
// syntax (currently only the `^` meta prefix). Passing nil restores the default,
// which logs through the standard logger exactly as [Logging.LoggingCallbacks]
// configures it.
func SetWarningLogger(fn func(string, ...any)) {
	if fn == nil {
		warn, _ = Logging.LoggingCallbacks()
		return
	}
	warn = fn
}

var (
	grammarOnce    sync.Once
	formRule       R.Rule[rune]
	documentRul    R.Rule[rune]
	whitespaceRule R.Rule[rune]
)

func buildGrammar() {
	formFwd := R.NewForward[rune]()
	form := formFwd.Rule()

	// --- whitespace --------------------------------------------------------

	lineComment := R.Conc(R.Lit(';'), R.RepStar(C.AnythingExcept("non-newline", R.Lit('\n'))))
	discardForm := R.Conc(C.MapConc("#_"), form)
	wsUnit := R.Alt(R.Term(C.IsWhitespace), lineComment, discardForm)
	ws := R.RepPlus(wsUnit)
	wsOpt := R.RepStar(wsUnit)

	// --- symbols and keywords -----------------------------------------------

	letter := R.Term(C.IsLetter)
	symbolChar := R.Term(C.IsSymbolChar)
	nsChar := R.Term(func(c rune) bool { return c != '/' && C.IsSymbolChar(c) })

	normalSymbol := R.Semantics(
		R.Conc(letter, R.RepStar(symbolChar)),
		func(p any) any {
			items := p.([]any)
			return Symbol{Name: string(headRune(items[0])) + runesToString(items[1])}
		},
	)

	nsQualifiedSymbol := R.Semantics(
		R.Conc(letter, R.RepStar(nsChar), R.Lit('/'), R.RepPlus(symbolChar)),
		func(p any) any {
			items := p.([]any)
			ns := string(headRune(items[0])) + runesToString(items[1])
			name := runesToString(items[3])
			return Symbol{Namespace: ns, Name: name}
		},
	)

	divisionSymbol := R.ConstantSemantics(R.Lit('/'), Symbol{Name: "/"})

	symbolR := R.Alt(nsQualifiedSymbol, divisionSymbol, normalSymbol)
	symbolForm := R.Alt(nsQualifiedSymbol, normalSymbol)

	peculiarSymbol := R.SuffixConc(
		R.Alt(
			R.ConstantSemantics(C.MapConc("nil"), Nil{}),
			R.ConstantSemantics(C.MapConc("true"), Bool(true)),
			R.ConstantSemantics(C.MapConc("false"), Bool(false)),
		),
		formTerminator(),
	)

	keywordR := R.Semantics(
		R.PrefixConc(R.Lit(':'), symbolR),
		func(p any) any {
			sym := p.(Symbol)
			return Keyword{Namespace: sym.Namespace, Name: sym.Name}
		},
	)

	// --- characters ----------------------------------------------------------

	characterNames := []struct {
		name  string
		value rune
	}{
		{"newline", '\n'},
		{"space", ' '},
		{"tab", '\t'},
		{"backspace", '\b'},
		{"formfeed", '\f'},
		{"return", '\r'},
	}
	namedCharRules := make([]R.Rule[rune], 0, len(characterNames))
	for _, nc := range characterNames {
		namedCharRules = append(namedCharRules,
			R.SuffixConc(R.ConstantSemantics(C.MapConc(nc.name), Character(nc.value)), formTerminator()))
	}
	bareChar := R.Semantics(R.Anything[rune](), func(a any) any { return Character(a.(rune)) })
	characterForm := R.PrefixConc(R.Lit('\\'), R.Alt(append(namedCharRules, bareChar)...))

	// --- strings ---------------------------------------------------------------

	stringEscape := R.Semantics(
		R.PrefixConc(R.Lit('\\'), R.Alt(R.Lit('t'), R.Lit('n'), R.Lit('\\'), R.Lit('"'))),
		func(p any) any {
			switch p.(rune) {
			case 't':
				return '\t'
			case 'n':
				return '\n'
			default:
				return p
			}
		},
	)
	stringBodyChar := R.Alt(stringEscape, C.AntiLit('"'))
	stringForm := R.Semantics(
		R.CircumfixConc(R.Lit('"'), R.RepStar(stringBodyChar), R.Lit('"')),
		func(p any) any { return Str(runesToString(p)) },
	)

	// --- collections -------------------------------------------------------------

	formSeriesItem := R.SuffixConc(form, wsOpt)
	formSeries := R.PrefixConc(wsOpt, R.RepStar(formSeriesItem))

	listForm := R.Semantics(
		R.CircumfixConc(R.Lit('('), formSeries, R.Lit(')')),
		func(p any) any { return List(toAnySlice(p)) },
	)
	vectorForm := R.Semantics(
		R.CircumfixConc(R.Lit('['), formSeries, R.Lit(']')),
		func(p any) any { return Vector(toAnySlice(p)) },
	)
	mapForm := mapRule(R.CircumfixConc(R.Lit('{'), formSeries, R.Lit('}')))
	setInnerForm := R.Semantics(
		R.CircumfixConc(R.Lit('{'), formSeries, R.Lit('}')),
		func(p any) any { return Set(toAnySlice(p)) },
	)

	// --- prefix forms ---------------------------------------------------------

	quoteForm := R.Semantics(R.PrefixConc(R.Lit('\''), form), func(p any) any { return wrap(symQuote, p) })
	syntaxQuoteForm := R.Semantics(R.PrefixConc(R.Lit('`'), form), func(p any) any { return wrap(symSyntaxQuote, p) })
	unquoteSplicingForm := R.Semantics(R.PrefixConc(C.MapConc("~@"), form), func(p any) any { return wrap(symUnquoteSplicing, p) })
	unquoteForm := R.Semantics(R.PrefixConc(R.Lit('~'), form), func(p any) any { return wrap(symUnquote, p) })
	derefForm := R.Semantics(R.PrefixConc(R.Lit('@'), form), func(p any) any { return wrap(symDeref, p) })
	deprecatedMetaForm := R.Complex(func(b *R.Bindings[rune]) any {
		b.Bind("", R.Lit('^'))
		if b.Failed() {
			return nil
		}
		b.Bind("", R.Effects(func(stream.State[rune]) {
			warn("deprecated: `^` meta prefix, use #^ instead")
		}))
		inner := b.Bind("form", form)
		if b.Failed() {
			return nil
		}
		return wrap(symMeta, inner)
	})

	// --- dispatched `#` forms ---------------------------------------------------

	varForm := R.Semantics(R.PrefixConc(R.Lit('\''), form), func(p any) any { return wrap(symVar, p) })
	anonFnForm := R.Semantics(
		R.CircumfixConc(R.Lit('('), formSeries, R.Lit(')')),
		func(p any) any { return wrap(symMiniFn, toAnySlice(p)...) },
	)
	withMetaMetadata := R.Alt(
		mapForm,
		R.Semantics(keywordR, func(p any) any { return p.(Keyword).tagMap() }),
		R.Semantics(symbolForm, func(p any) any { return p.(Symbol).tagMap() }),
	)
	withMetaForm := R.Complex(func(b *R.Bindings[rune]) any {
		b.Bind("", R.Lit('^'))
		meta := b.Bind("meta", withMetaMetadata)
		b.Bind("", wsOpt)
		inner := b.Bind("form", form)
		if b.Failed() {
			return nil
		}
		return wrap(symWithMeta, inner, meta)
	})

	dispatched := R.PrefixConc(R.Lit('#'), R.Alt(setInnerForm, anonFnForm, varForm, withMetaForm))

	// --- number ------------------------------------------------------------------

	number := numberRule()

	// --- assembled form ------------------------------------------------------

	assembled := R.PrefixConc(wsOpt, R.Alt(
		listForm,
		vectorForm,
		mapForm,
		dispatched,
		stringForm,
		syntaxQuoteForm,
		unquoteSplicingForm,
		unquoteForm,
		quoteForm,
		derefForm,
		divisionSymbol,
		deprecatedMetaForm,
		characterForm,
		keywordR,
		peculiarSymbol,
		symbolForm,
		number,
	))
	formFwd.Set(assembled)

	document := R.Semantics(
		R.SuffixConc(formSeries, R.EndOfInput[rune]()),
		func(p any) any { return toAnySlice(p) },
	)

	formRule = form
	documentRul = document
	whitespaceRule = ws
}

func mapRule(body R.Rule[rune]) R.Rule[rune] {
	return R.New(func(s stream.State[rune]) (R.Outcome[rune], error) {
		out, err := body.Run(s)
		if err != nil {
			return out, err
		}
		p, ok := O.Unwrap(out)
		if !ok {
			return out, nil
		}
		items := toAnySlice(P.Head(p))
		if len(items)%2 != 0 {
			var zero R.Outcome[rune]
			return zero, errOddMap
		}
		entries := make(Map, 0, len(items)/2)
		for i := 0; i < len(items); i += 2 {
			entries = append(entries, MapEntry{Key: items[i], Value: items[i+1]})
		}
		return O.Some(P.MakePair[any, stream.State[rune]](entries, P.Tail(p))), nil
	})
}

func toAnySlice(product any) []any {
	items, _ := product.([]any)
	return items
}

func headRune(v any) rune {
	return v.(rune)
}

func runesToString(v any) string {
	items, ok := v.([]any)
	if !ok {
		return ""
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteRune(item.(rune))
	}
	return b.String()
}

// Form returns the top-level grammar rule for a single Lisp datum.
func Form() R.Rule[rune] {
	grammarOnce.Do(buildGrammar)
	return formRule
}

// Document returns the grammar rule for an entire document: a form-series followed by
// end-of-input, producing the ordered slice of top-level forms.
func Document() R.Rule[rune] {
	grammarOnce.Do(buildGrammar)
	return documentRul
}

// Whitespace returns the `ws` rule: one-or-more repetition of whitespace characters,
// line comments, and discard forms.
func Whitespace() R.Rule[rune] {
	grammarOnce.Do(buildGrammar)
	return whitespaceRule
}
