package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"lexa/internal/pif"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	pathStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
)

// FormatAnalysisPretty выводит итог анализа: таблицу символов в лексикографическом
// порядке (индекс строки и есть её ранг) и PIF по порядку лексем.
func FormatAnalysisPretty(w io.Writer, path string, symbols []string, entries []pif.Entry, opts PrettyOpts) error {
	header := func(s string) string { return s }
	if opts.Color {
		header = func(s string) string { return sectionStyle.Render(s) }
		path = pathStyle.Render(path)
	}

	fmt.Fprintf(w, "%s\n\n", path)

	fmt.Fprintf(w, "%s (%d)\n", header("symbol table"), len(symbols))
	for i, sym := range symbols {
		fmt.Fprintf(w, "%4d: %q\n", i, sym)
	}

	fmt.Fprintf(w, "\n%s (%d)\n", header("pif"), len(entries))
	for i, e := range entries {
		fmt.Fprintf(w, "%4d: (%2d, %3d)  %s\n", i, e.Kind.Code(), e.Index, e.Kind.String())
	}
	return nil
}

// PIFEntryJSON представляет одну запись PIF для JSON
type PIFEntryJSON struct {
	Kind  string `json:"kind"`
	Code  int64  `json:"code"`
	Index int64  `json:"index"`
}

// AnalysisJSON представляет корневую структуру JSON вывода анализа
type AnalysisJSON struct {
	Path    string         `json:"path"`
	Symbols []string       `json:"symbols"`
	PIF     []PIFEntryJSON `json:"pif"`
}

// FormatAnalysisJSON выводит итог анализа в JSON формате
func FormatAnalysisJSON(w io.Writer, path string, symbols []string, entries []pif.Entry) error {
	out := AnalysisJSON{
		Path:    path,
		Symbols: symbols,
		PIF:     make([]PIFEntryJSON, len(entries)),
	}
	if out.Symbols == nil {
		out.Symbols = []string{}
	}
	for i, e := range entries {
		out.PIF[i] = PIFEntryJSON{
			Kind:  e.Kind.String(),
			Code:  e.Kind.Code(),
			Index: e.Index,
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
