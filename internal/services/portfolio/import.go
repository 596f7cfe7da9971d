package portfolio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ImportFailure is one import row that could not be created.
type ImportFailure struct {
	Row    int    `json:"row"`
	Domain string `json:"domain"`
	Error  string `json:"error"`
}

type ImportResult struct {
	Imported []Created       `json:"imported"`
	Failed   []ImportFailure `json:"failed"`
}

// Partial reports whether some rows failed.
func (r ImportResult) Partial() bool { return len(r.Failed) > 0 }

// Import validates every row up front and rejects the whole payload when any
// row is malformed. Valid payloads are then created row by row; a failing row
// is reported and does not stop the others.
func (s *Service) Import(ctx context.Context, rows []NewDomain, actor *string) (ImportResult, error) {
	if len(rows) == 0 {
		return ImportResult{}, &ValidationError{Errors: []FieldError{{Message: "no rows to import"}}}
	}
	var errs []FieldError
	seen := make(map[string]int, len(rows))
	for i, row := range rows {
		name, _, rowErrs := row.validate()
		for _, fe := range rowErrs {
			fe.Row = i + 1
			errs = append(errs, fe)
		}
		if name == "" {
			continue
		}
		if first, dup := seen[name]; dup {
			errs = append(errs, FieldError{Row: i + 1, Field: "domain", Message: fmt.Sprintf("duplicates row %d", first)})
			continue
		}
		seen[name] = i + 1
	}
	if len(errs) > 0 {
		return ImportResult{}, &ValidationError{Errors: errs}
	}

	res := ImportResult{Imported: []Created{}, Failed: []ImportFailure{}}
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		created, err := s.CreateDomain(ctx, row, actor)
		if err != nil {
			var ve *ValidationError
			msg := err.Error()
			if errors.As(err, &ve) {
				msg = ve.Error()
			}
			res.Failed = append(res.Failed, ImportFailure{Row: i + 1, Domain: row.Name, Error: msg})
			log.WithFields(log.Fields{"row": i + 1, "domain": row.Name}).WithError(err).Warn("import row failed")
			continue
		}
		res.Imported = append(res.Imported, created)
	}
	log.WithFields(log.Fields{"imported": len(res.Imported), "failed": len(res.Failed)}).Info("domain import finished")
	return res, nil
}

// ReadSpreadsheet reads import rows from the first sheet of an xlsx
// workbook. The header row names the columns domain, client_id and status in
// any order; blank rows are ignored.
func ReadSpreadsheet(r io.Reader) ([]NewDomain, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errors.New("spreadsheet is empty")
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols["domain"]; !ok {
		return nil, errors.New("spreadsheet header has no domain column")
	}
	cell := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	out := make([]NewDomain, 0, len(rows)-1)
	for _, row := range rows[1:] {
		nd := NewDomain{Name: cell(row, "domain"), ClientID: cell(row, "client_id"), Status: cell(row, "status")}
		if nd == (NewDomain{}) {
			continue
		}
		out = append(out, nd)
	}
	return out, nil
}
