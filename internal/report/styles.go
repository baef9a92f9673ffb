package report

import "github.com/xuri/excelize/v2"

// Workbook palette. The four band colors double as the risk matrix legend.
const (
	colorDarkBlue = "1F4E79"
	colorGreen    = "C6EFCE"
	colorYellow   = "FFEB9C"
	colorOrange   = "F4B084"
	colorRed      = "FFC7CE"
)

// Sheet tab colors, in sheet order.
var tabColors = [6]string{"1F4E79", "7030A0", "00B050", "FF0000", "FFC000", "FF6600"}

// styleSet holds the style IDs registered on one workbook.
type styleSet struct {
	title      int // dark blue banner, large white bold
	header     int // dark blue column header
	bold       int
	normal     int // bordered data cell
	center     int // bordered centered cell
	note       int // red bold italic note row
	green      int
	yellow     int
	orange     int
	red        int
	greenCell  int // band fills on bordered data cells
	yellowCell int
	orangeCell int
	redCell    int
}

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	out := make([]excelize.Border, len(sides))
	for i, s := range sides {
		out[i] = excelize.Border{Type: s, Style: 1, Color: "000000"}
	}
	return out
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

func newStyleSet(f *excelize.File) (*styleSet, error) {
	s := &styleSet{}
	var err error

	register := func(dst *int, style *excelize.Style) {
		if err != nil {
			return
		}
		*dst, err = f.NewStyle(style)
	}

	register(&s.title, &excelize.Style{
		Fill: solidFill(colorDarkBlue),
		Font: &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
	})
	register(&s.header, &excelize.Style{
		Fill:      solidFill(colorDarkBlue),
		Font:      &excelize.Font{Bold: true, Size: 10, Color: "FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top", WrapText: true},
		Border:    thinBorder(),
	})
	register(&s.bold, &excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 10},
	})
	register(&s.normal, &excelize.Style{
		Font:      &excelize.Font{Size: 9},
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Border:    thinBorder(),
	})
	register(&s.center, &excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top", WrapText: true},
		Border:    thinBorder(),
	})
	register(&s.note, &excelize.Style{
		Font: &excelize.Font{Bold: true, Italic: true, Size: 10, Color: "FF0000"},
	})

	fills := []struct {
		plain, cell *int
		color       string
	}{
		{&s.green, &s.greenCell, colorGreen},
		{&s.yellow, &s.yellowCell, colorYellow},
		{&s.orange, &s.orangeCell, colorOrange},
		{&s.red, &s.redCell, colorRed},
	}
	for _, fl := range fills {
		register(fl.plain, &excelize.Style{
			Fill:      solidFill(fl.color),
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top", WrapText: true},
			Border:    thinBorder(),
		})
		register(fl.cell, &excelize.Style{
			Fill:      solidFill(fl.color),
			Font:      &excelize.Font{Size: 9},
			Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
			Border:    thinBorder(),
		})
	}

	if err != nil {
		return nil, err
	}
	return s, nil
}
