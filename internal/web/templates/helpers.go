package templates

import (
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/streamstats/internal/util"
)

// writer accumulates the first write error so templates can stay linear.
type writer struct {
	w   io.Writer
	err error
}

func (hw *writer) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *writer) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *writer) printf(format string, args ...any) {
	hw.text(fmt.Sprintf(format, args...))
}

func (hw *writer) element(tag, class, body string) {
	hw.raw("<" + tag)
	if class != "" {
		hw.raw(` class="` + templ.EscapeString(class) + `"`)
	}
	hw.raw(">")
	hw.text(body)
	hw.raw("</" + tag + ">")
}

func formatDate(t time.Time) string {
	return util.FormatDateHuman(t)
}

func formatHours(h float64) string {
	return util.FormatHours(h)
}

func anchor(profile string) string {
	return "profile-" + util.Slug(profile)
}
