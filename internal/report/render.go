// Package report renders processed SDS batches into the six-sheet registry
// workbook: guide, reference tables, substance database, risk assessment,
// exposure registry, and action plan.
package report

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/chemledger/sdsforge/internal/locale"
	"github.com/chemledger/sdsforge/internal/risk"
	"github.com/chemledger/sdsforge/internal/schema"
	"github.com/chemledger/sdsforge/internal/sds"
)

const dateFormat = "2006.01.02"

// ErrRenderFailure marks fatal rendering problems. Unlike per-document
// failures it aborts the whole run; a partially written workbook is worse
// than none.
var ErrRenderFailure = errors.New("report rendering failed")

// ActionPlanThreshold is the minimum risk score that puts a substance on
// the action plan sheet.
const ActionPlanThreshold = 3

// Metadata carries the run-level values stamped into the workbook.
type Metadata struct {
	Evaluator  string
	EvalDate   time.Time
	ReviewDate time.Time
	Deadline   time.Time
	Language   string
}

// Renderer builds registry workbooks. A zero Renderer builds from scratch;
// set TemplatePath to fill into a pre-built workbook instead.
type Renderer struct {
	TemplatePath string
	Logger       *slog.Logger

	// Now is the clock used for the preparation date. Overridable in tests.
	Now func() time.Time
}

// Filename returns the conventional output filename for a language and
// timestamp.
func Filename(langCode string, t time.Time) string {
	return fmt.Sprintf("SDS_Database_%s_%s.xlsx", langCode, t.Format("20060102_1504"))
}

// Render builds the workbook for a batch. Records and assessments are
// parallel slices in submission order; a nil assessment means risk
// assessment failed or was skipped for that record.
func (r *Renderer) Render(records []sds.Record, assessments []*risk.Assessment, meta Metadata) ([]byte, error) {
	if len(records) != len(assessments) {
		return nil, fmt.Errorf("%w: %d records but %d assessments", ErrRenderFailure, len(records), len(assessments))
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	loc := locale.For(meta.Language)

	f, err := r.openWorkbook(loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	defer f.Close()

	st, err := newStyleSet(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}

	b := &book{f: f, st: st, loc: loc}
	b.guideSheet(len(records), now())
	b.referenceSheet()
	b.databaseSheet(records)
	b.riskSheet(records, assessments, meta)
	b.exposureSheet()
	b.actionSheet(records, assessments, meta)
	if b.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailure, b.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	logger.Info("workbook rendered",
		"language", loc.Code,
		"records", len(records),
		"bytes", buf.Len())
	return buf.Bytes(), nil
}

// openWorkbook starts from the template when configured, otherwise from an
// empty file, and guarantees all six localized sheets exist in order.
func (r *Renderer) openWorkbook(loc locale.Strings) (*excelize.File, error) {
	var f *excelize.File
	if r.TemplatePath != "" {
		var err error
		f, err = excelize.OpenFile(r.TemplatePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open template %s: %w", r.TemplatePath, err)
		}
	} else {
		f = excelize.NewFile()
		if err := f.SetSheetName("Sheet1", loc.SheetNames[0]); err != nil {
			return nil, err
		}
	}
	for i, name := range loc.SheetNames {
		idx, err := f.GetSheetIndex(name)
		if err != nil {
			return nil, err
		}
		if idx < 0 {
			if _, err := f.NewSheet(name); err != nil {
				return nil, err
			}
		}
		color := tabColors[i]
		if err := f.SetSheetProps(name, &excelize.SheetPropsOptions{TabColorRGB: &color}); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// book writes sheets and keeps the first error it hits.
type book struct {
	f   *excelize.File
	st  *styleSet
	loc locale.Strings
	err error
}

func (b *book) check(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

func (b *book) cell(sheet string, col, row int, value any, style int) {
	if b.err != nil {
		return
	}
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		b.err = err
		return
	}
	if err := b.f.SetCellValue(sheet, ref, value); err != nil {
		b.err = err
		return
	}
	if style != 0 {
		b.check(b.f.SetCellStyle(sheet, ref, ref, style))
	}
}

func (b *book) colWidth(sheet string, col int, width float64) {
	if b.err != nil {
		return
	}
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		b.err = err
		return
	}
	b.check(b.f.SetColWidth(sheet, name, name, width))
}

func (b *book) headerRow(sheet string, headers []string) {
	for ci, h := range headers {
		b.cell(sheet, ci+1, 1, h, b.st.header)
	}
}

func (b *book) filterAndFreeze(sheet string, cols int, topLeft string, xSplit int) {
	if b.err != nil {
		return
	}
	lastCol, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		b.err = err
		return
	}
	b.check(b.f.AutoFilter(sheet, fmt.Sprintf("A1:%s1", lastCol), nil))
	b.check(b.f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      xSplit,
		YSplit:      1,
		TopLeftCell: topLeft,
		ActivePane:  "bottomRight",
	}))
}

// guideSheet writes the first worksheet: title, legal background, sheet
// descriptions, and the markings legend.
func (b *book) guideSheet(processed int, now time.Time) {
	sheet := b.loc.SheetNames[0]
	type line struct {
		text string
		bold bool
	}
	lines := []line{
		{b.loc.MainTitle, true},
		{"", false},
		{b.loc.PreparedBy, false},
		{fmt.Sprintf("%s: %s", b.loc.PrepDate, now.Format(dateFormat)), false},
		{fmt.Sprintf("%s: %d", b.loc.ProcessedCount, processed), false},
		{"", false},
		{b.loc.LegalBG, true},
	}
	for _, ref := range b.loc.LegalRefs {
		lines = append(lines, line{ref, false})
	}
	lines = append(lines, line{"", false}, line{b.loc.SheetsContent, true})
	for i, desc := range b.loc.SheetDesc {
		lines = append(lines, line{fmt.Sprintf("%d. %s", i+1, desc), false})
	}
	lines = append(lines,
		line{"", false},
		line{b.loc.Markings, false},
		line{b.loc.EmptyCells, false})

	for ri, l := range lines {
		style := 0
		switch {
		case ri == 0:
			style = b.st.title
		case l.bold:
			style = b.st.bold
		}
		b.cell(sheet, 1, ri+1, l.text, style)
	}
	b.colWidth(sheet, 1, 120)
}

// referenceSheet writes the risk matrix, level legend, GHS pictogram table,
// and the probability/severity scales.
func (b *book) referenceSheet() {
	sheet := b.loc.SheetNames[1]

	b.cell(sheet, 1, 1, b.loc.RiskMatrixTitle, b.st.title)
	b.check(b.f.MergeCell(sheet, "A1", "E1"))

	// Matrix header row: blank corner plus severity labels.
	b.cell(sheet, 1, 3, "", b.st.center)
	for ci, h := range b.loc.Severity {
		b.cell(sheet, ci+2, 3, h, b.st.center)
	}
	// Probability rows, highest first, scores colored by band.
	for ri := 0; ri < 4; ri++ {
		prob := 4 - ri
		b.cell(sheet, 1, ri+4, b.loc.Probability[ri], b.st.center)
		for si := 1; si <= 4; si++ {
			score := prob * si
			b.cell(sheet, si+1, ri+4, score, b.bandStyle(risk.BandFor(score)))
		}
	}

	b.cell(sheet, 1, 9, b.loc.RiskLevelsTitle, b.st.bold)
	levelFills := [4]int{b.st.green, b.st.yellow, b.st.orange, b.st.red}
	for i, txt := range b.loc.RiskLevels {
		b.cell(sheet, 1, 10+i, txt, levelFills[i])
	}

	b.cell(sheet, 1, 15, b.loc.GHSTitle, b.st.bold)
	for i, code := range locale.GHSCodes {
		b.cell(sheet, 1, 16+i, code, b.st.bold)
		b.cell(sheet, 2, 16+i, b.loc.GHSSymbols[i], 0)
		b.cell(sheet, 3, 16+i, b.loc.GHSDesc[i], 0)
	}

	b.cell(sheet, 1, 26, b.loc.ProbScaleTitle, b.st.bold)
	for i, e := range b.loc.ProbScale {
		b.cell(sheet, 1, 27+i, e.Level, b.st.bold)
		b.cell(sheet, 2, 27+i, e.Description, 0)
	}
	b.cell(sheet, 1, 32, b.loc.SevScaleTitle, b.st.bold)
	for i, e := range b.loc.SevScale {
		b.cell(sheet, 1, 33+i, e.Level, b.st.bold)
		b.cell(sheet, 2, 33+i, e.Description, 0)
	}

	b.colWidth(sheet, 1, 40)
	b.colWidth(sheet, 2, 30)
	b.colWidth(sheet, 3, 50)
}

// databaseSheet writes the full 85-column registry, one row per record in
// submission order. Failed records keep their row: the error marker lands
// in the product-name column and the raw error in the notes column, so a
// failure can never silently shrink the registry.
func (b *book) databaseSheet(records []sds.Record) {
	sheet := b.loc.SheetNames[2]
	layout := schema.DatabaseLayout()

	b.headerRow(sheet, b.loc.DBHeaders)

	for ri, rec := range records {
		row := ri + 2
		failed := rec.Status != sds.StatusProcessed
		missing := make(map[string]bool, len(rec.MissingFields))
		for _, k := range rec.MissingFields {
			missing[k] = true
		}

		for ci, col := range layout {
			var value any
			style := b.st.normal
			switch col.Kind {
			case schema.ColSeq:
				value = ri + 1
			case schema.ColUseLocation:
				if !failed {
					value = b.loc.UseLocation
				}
			case schema.ColCompanyFills:
				if !failed {
					value = b.loc.CompanyFills
				}
			case schema.ColNotes:
				if failed {
					value = rec.Err
				}
			case schema.ColField:
				switch {
				case failed && col.Key == "product_name":
					value = b.loc.ErrorMarker
					style = b.st.redCell
				case failed:
					// leave the rest of the row empty
				case missing[col.Key] && !rec.Has(col.Key):
					value = "X"
					style = b.st.redCell
				default:
					value = rec.Value(col.Key)
				}
			}
			if value == nil {
				value = ""
			}
			b.cell(sheet, ci+1, row, value, style)
		}
	}

	for ci := 1; ci <= len(layout); ci++ {
		width := 12.0
		switch {
		case ci == 35 || ci == 36: // H and P statements
			width = 60
		case ci == 3: // trade name
			width = 30
		case ci > 5:
			width = 20
		}
		b.colWidth(sheet, ci, width)
	}
	b.filterAndFreeze(sheet, len(layout), "D2", 3)
}

// riskSheet writes the 29-column assessment sheet. Level cells are colored
// by matching the level text against the language's keyword table.
func (b *book) riskSheet(records []sds.Record, assessments []*risk.Assessment, meta Metadata) {
	sheet := b.loc.SheetNames[3]
	b.headerRow(sheet, b.loc.RiskHeaders)

	for ri, rec := range records {
		row := ri + 2
		a := assessments[ri]
		if a == nil {
			a = &risk.Assessment{}
		}

		mainComponent := a.MainHazardousComponent
		if mainComponent == "" {
			mainComponent = rec.Value("comp1_name")
		}
		exposureMode := a.ExposureMode
		if exposureMode == "" {
			exposureMode = rec.Value("exposure_routes")
		}

		values := []any{
			ri + 1,
			rec.Value("product_name"),
			mainComponent,
			rec.Value("clp_classification"),
			rec.Value("h_statements"),
			rec.Value("p_statements"),
			exposureMode,
			a.ExposureFrequency,
			a.ExposureDuration,
			a.AffectedBodyParts,
			a.ProtectionPresent,
			a.PPESpecification,
			intOrBlank(a.Probability),
			intOrBlank(a.Severity),
			intOrBlank(a.RiskScore),
			a.RiskLevel,
			a.RequiredAction,
			a.BEMRequired,
			a.ExposureRegistryRequired,
			meta.Deadline.Format(dateFormat),
			b.loc.Employer,
			intOrBlank(a.PostActionProbability),
			intOrBlank(a.PostActionSeverity),
			intOrBlank(a.ResidualRisk),
			a.ResidualRiskLevel,
			meta.Evaluator,
			meta.EvalDate.Format(dateFormat),
			meta.ReviewDate.Format(dateFormat),
			"",
		}
		for ci, v := range values {
			style := b.st.normal
			// level columns get band fills keyed off the label text
			if ci == 15 || ci == 24 {
				if s, ok := v.(string); ok {
					if fill := b.levelFill(s); fill != 0 {
						style = fill
					}
				}
			}
			b.cell(sheet, ci+1, row, v, style)
		}
	}

	for ci := 1; ci <= len(b.loc.RiskHeaders); ci++ {
		width := 12.0
		switch {
		case ci == 12: // PPE specification
			width = 60
		case ci == 5 || ci == 6: // H and P statements
			width = 50
		case ci > 3:
			width = 25
		}
		b.colWidth(sheet, ci, width)
	}
	b.filterAndFreeze(sheet, len(b.loc.RiskHeaders), "C2", 2)
}

// exposureSheet writes the employee exposure registry skeleton: headers and
// the fill-in note. Rows are the employer's to complete.
func (b *book) exposureSheet() {
	sheet := b.loc.SheetNames[4]
	b.headerRow(sheet, b.loc.ExpHeaders)

	b.cell(sheet, 1, 2, b.loc.ExpNote, b.st.note)
	if b.err == nil {
		lastCol, err := excelize.ColumnNumberToName(len(b.loc.ExpHeaders))
		if err != nil {
			b.err = err
			return
		}
		b.check(b.f.MergeCell(sheet, "A2", lastCol+"2"))
	}
	for ci := 1; ci <= len(b.loc.ExpHeaders); ci++ {
		b.colWidth(sheet, ci, 20)
	}
}

// actionSheet lists substances whose risk score reaches the action
// threshold, pre-filled with the required action and deadline.
func (b *book) actionSheet(records []sds.Record, assessments []*risk.Assessment, meta Metadata) {
	sheet := b.loc.SheetNames[5]
	b.headerRow(sheet, b.loc.ActionHeaders)

	row := 2
	for ri, rec := range records {
		a := assessments[ri]
		if a == nil || a.RiskScore < ActionPlanThreshold {
			continue
		}
		values := []any{
			row - 1,
			rec.Value("product_name"),
			a.RiskLevel,
			a.RequiredAction,
			b.loc.Employer,
			meta.Deadline.Format(dateFormat),
			b.loc.InProgress,
			"",
			"",
		}
		for ci, v := range values {
			b.cell(sheet, ci+1, row, v, b.st.normal)
		}
		row++
	}

	for ci := 1; ci <= len(b.loc.ActionHeaders); ci++ {
		width := 20.0
		if ci == 4 {
			width = 50
		}
		b.colWidth(sheet, ci, width)
	}
}

// levelFill returns the band fill style for level text, or 0 when the text
// matches no keyword. The longest matching keyword wins: band labels nest
// ("unacceptable" contains "acceptable", "elfogadhatatlan" contains
// "elfogadhat") and short keywords hide in unrelated words ("required"
// contains "red"). Ties go to the more severe band.
func (b *book) levelFill(level string) int {
	lower := strings.ToLower(level)
	kw := b.loc.Keywords
	bands := [4][]string{kw.Acceptable, kw.Tolerable, kw.Significant, kw.Unacceptable}
	styles := [4]int{b.st.greenCell, b.st.yellowCell, b.st.orangeCell, b.st.redCell}

	best, fill := 0, 0
	for i, keys := range bands {
		for _, k := range keys {
			k = strings.ToLower(k)
			if len(k) >= best && strings.Contains(lower, k) {
				best, fill = len(k), styles[i]
			}
		}
	}
	return fill
}

func (b *book) bandStyle(band risk.Band) int {
	switch band {
	case risk.BandAcceptable:
		return b.st.green
	case risk.BandTolerable:
		return b.st.yellow
	case risk.BandSignificant:
		return b.st.orange
	default:
		return b.st.red
	}
}

func intOrBlank(v int) any {
	if v == 0 {
		return ""
	}
	return v
}
