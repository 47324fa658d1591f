package driver

import (
	"fmt"

	"lexa/internal/diag"
	"lexa/internal/lexer"
	"lexa/internal/observ"
	"lexa/internal/pif"
	"lexa/internal/source"
	"lexa/internal/token"
)

// InvalidTokenError is the single failure kind of the analyzer: a lexeme matched
// neither the catalog nor any constant/identifier pattern. The first such lexeme
// aborts the whole run.
type InvalidTokenError struct {
	Lexeme string
	Span   source.Span
	Pos    source.LineCol
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token %q at %d:%d", e.Lexeme, e.Pos.Line, e.Pos.Col)
}

// AnalysisResult carries everything one run produces. Symbols and PIF are populated
// only on success; on an InvalidTokenError the tokens and the diagnostic bag survive
// for rendering, but no partial symbol table or PIF is handed out.
type AnalysisResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Symbols []string    // финальный in-order обход таблицы символов
	PIF     []pif.Entry // по одной записи на значимую лексему
	Bag     *diag.Bag
	Timing  *observ.Report
}

// Analyze loads a file from disk and runs the full pipeline over it.
func Analyze(path string, maxDiagnostics int) (*AnalysisResult, error) {
	fs := source.NewFileSet()
	timer := observ.NewTimer()

	ph := timer.Begin("load")
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	timer.End(ph, "")

	return analyzeFile(fs, fileID, maxDiagnostics, timer)
}

// AnalyzeSource runs the pipeline over an in-memory buffer (tests, stdin).
func AnalyzeSource(name string, src []byte, maxDiagnostics int) (*AnalysisResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return analyzeFile(fs, fileID, maxDiagnostics, observ.NewTimer())
}

// analyzeFile — это весь конвейер: лексер → классификатор → таблица символов → PIF.
// Однопоточный, без точек ожидания; либо доходит до конца, либо падает на первом
// невалидном токене.
func analyzeFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int, timer *observ.Timer) (*AnalysisResult, error) {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	builder := pif.NewBuilder()

	ph := timer.Begin("tokenize")
	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)

		if tok.Kind == token.Invalid {
			// fail-fast: первый невалидный токен прерывает анализ
			timer.End(ph, "aborted")
			pos, _ := fs.Resolve(tok.Span)
			report := timer.Report()
			res := &AnalysisResult{
				FileSet: fs,
				File:    file,
				Tokens:  tokens,
				Bag:     bag,
				Timing:  &report,
			}
			return res, &InvalidTokenError{Lexeme: tok.Text, Span: tok.Span, Pos: pos}
		}
		builder.Add(tok)
	}
	timer.End(ph, fmt.Sprintf("%d tokens", len(tokens)))

	// Таблица финальна: один обход решает ранги всех позиций сразу.
	ph = timer.Begin("pif")
	entries := builder.Finalize()
	symbols := builder.Table().InOrderKeys()
	timer.End(ph, fmt.Sprintf("%d symbols", len(symbols)))

	report := timer.Report()
	return &AnalysisResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Symbols: symbols,
		PIF:     entries,
		Bag:     bag,
		Timing:  &report,
	}, nil
}
