package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"lexa/internal/diag"
	"lexa/internal/lexer"
	"lexa/internal/pif"
	"lexa/internal/source"
	"lexa/internal/token"
)

// AnalyzeDirResult содержит результат анализа одного файла
type AnalyzeDirResult struct {
	Path    string        // Относительный путь к файлу
	FileID  source.FileID // ID файла в FileSet
	Symbols []string      // Финальная таблица символов (nil при ошибке)
	PIF     []pif.Entry   // Внутренняя форма программы (nil при ошибке)
	Bag     *diag.Bag     // Диагностики
	Err     error         // InvalidTokenError или nil
}

// listSourceFiles возвращает отсортированный список всех *.mc файлов в директории
func listSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".mc") {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// AnalyzeDir анализирует все *.mc файлы в директории параллельно. Каждый файл
// получает собственную таблицу символов и собственный PIF; невалидный токен в
// одном файле не останавливает остальные.
func AnalyzeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []AnalyzeDirResult, error) {
	// Собираем список файлов
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	if len(files) == 0 {
		return source.NewFileSet(), nil, nil
	}

	// Создаём FileSet и предзагружаем все файлы; после этой фазы FileSet
	// не мутирует и его можно читать из горутин без блокировок
	fileSet := source.NewFileSet()
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	// Настраиваем параллелизм
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]AnalyzeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				// Проверка отмены
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				bag := diag.NewBag(maxDiagnostics)

				// Проверяем ошибку загрузки
				if loadErr, hadError := loadErrors[path]; hadError {
					bag.Add(diag.Diagnostic{
						Severity: diag.SevError,
						Code:     diag.IOLoadFileError,
						Message:  "failed to load file: " + loadErr.Error(),
						Primary:  source.Span{},
					})
					results[i] = AnalyzeDirResult{
						Path: path,
						Bag:  bag,
						Err:  loadErr,
					}
					return nil
				}

				fileID := fileIDs[path]
				file := fileSet.Get(fileID)

				lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
				builder := pif.NewBuilder()

				res := AnalyzeDirResult{
					Path:   path,
					FileID: fileID,
					Bag:    bag,
				}

				for {
					tok := lx.Next()
					if tok.Kind == token.EOF {
						break
					}
					if tok.Kind == token.Invalid {
						pos, _ := fileSet.Resolve(tok.Span)
						res.Err = &InvalidTokenError{Lexeme: tok.Text, Span: tok.Span, Pos: pos}
						break
					}
					builder.Add(tok)
				}

				if res.Err == nil {
					res.PIF = builder.Finalize()
					res.Symbols = builder.Table().InOrderKeys()
				}

				// Сохраняем результат (мьютекс не нужен — индекс i уникален)
				results[i] = res
				return nil
			}
		}(i, path))
	}

	// Ждём завершения всех горутин
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	return fileSet, results, nil
}
