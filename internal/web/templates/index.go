package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Title is the dashboard heading.
const Title = "Netflix Streaming Behavior"

// Index renders the landing page. A non-empty Error is shown as a banner
// above the upload form.
func Index(p IndexPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &writer{w: w}
		hw.open(Title)
		hw.element("h1", "", Title)

		if p.Error != "" {
			hw.element("div", "error", p.Error)
		}

		hw.raw(`<div class="card">`)
		hw.element("p", "", "To see your own data follow these steps:")
		hw.raw("<ol>")
		hw.raw(`<li>Download your own Netflix data from <a href="https://www.netflix.com/account/getmyinfo">netflix.com/account/getmyinfo</a>.`)
		hw.element("p", "muted", "You have to request your dataset, confirm it via email and then about a day later you can download it from that site.")
		hw.raw("</li>")
		hw.element("li", "", "Unpack the zip file and find ViewingActivity.csv under the CONTENT_INTERACTION folder.")
		hw.element("li", "", "Upload ViewingActivity.csv below and every profile on the account is visualized.")
		hw.raw("</ol></div>")

		hw.raw(`<div class="card">`)
		hw.raw(`<form method="post" action="/upload" enctype="multipart/form-data">`)
		hw.raw(`<label for="file">Upload your CSV file</label> `)
		hw.raw(`<input type="file" id="file" name="file" accept=".csv,text/csv" required> `)
		hw.raw(`<button type="submit">Analyze</button></form>`)
		if p.MaxUploadMB > 0 {
			hw.raw(`<p class="muted">`)
			hw.printf("Files up to %d MB.", p.MaxUploadMB)
			hw.raw("</p>")
		}
		hw.raw(`<form class="inline" method="post" action="/example">`)
		hw.raw(`<button type="submit">Load Example Data</button></form>`)
		hw.raw("</div>")

		hw.close()
		return hw.err
	})
}
