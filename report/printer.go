package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// printer keeps the first write error so report bodies can print unconditionally.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) banner(width int, title string) {
	rule := strings.Repeat("=", width)
	p.printf("%s\n%s\n%s\n", rule, title, rule)
}

// table renders rows through a right-aligned tabwriter.
func (p *printer) table(rows func(tw io.Writer)) {
	if p.err != nil {
		return
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	rows(tw)
	p.err = tw.Flush()
}
