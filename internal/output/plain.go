package output

import (
	"github.com/manav03panchal/murmur/internal/model"
)

// PlainFormatter prints tab-separated lines for scripts.
type PlainFormatter struct {
	*Formatter
}

// NewPlainFormatter creates a new plain formatter.
func NewPlainFormatter(f *Formatter) *PlainFormatter {
	return &PlainFormatter{Formatter: f}
}

// PrintEntry prints "id<TAB>createdAt<TAB>text".
func (p *PlainFormatter) PrintEntry(e model.Entry) {
	p.Printf("%d\t%s\t%s\n", e.ID, e.CreatedAt, e.Text)
}

// PrintEntries prints one entry per line.
func (p *PlainFormatter) PrintEntries(entries []model.Entry) {
	for _, e := range entries {
		p.PrintEntry(e)
	}
}
