package templates

const styles = `
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; margin: 0; background: #111827; color: #F3F4F6; }
main { max-width: 1100px; margin: 0 auto; padding: 2rem 1.5rem; }
h1 { color: #E50914; margin-bottom: 0.25rem; }
h2 { border-bottom: 1px solid #374151; padding-bottom: 0.4rem; margin-top: 2.5rem; }
a { color: #C084FC; }
.muted { color: #9CA3AF; }
.card { background: #1F2937; border-radius: 8px; padding: 1rem 1.25rem; margin: 1rem 0; }
.error { background: #7F1D1D; border: 1px solid #EF4444; border-radius: 8px; padding: 0.75rem 1rem; }
.notice { background: #14532D; border: 1px solid #22C55E; border-radius: 8px; padding: 0.75rem 1rem; }
.stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: 0.75rem; }
.stat-label { color: #9CA3AF; font-size: 0.8rem; }
.stat-value { font-size: 1.2rem; font-weight: 600; }
.chart { background: #FFFFFF; border-radius: 8px; padding: 0.5rem; margin: 1rem 0; overflow-x: auto; }
.chart img { max-width: 100%; height: auto; }
.empty { color: #6B7280; font-style: italic; }
table { border-collapse: collapse; width: 100%; font-size: 0.9rem; }
th, td { text-align: left; padding: 0.4rem 0.6rem; border-bottom: 1px solid #374151; }
button { background: #E50914; color: #FFFFFF; border: 0; border-radius: 6px; padding: 0.5rem 1rem; cursor: pointer; }
form.inline { display: inline; }
`

func (hw *writer) open(title string) {
	hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
	hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	hw.raw("<title>")
	hw.text(title)
	hw.raw("</title><style>" + styles + "</style></head><body><main>")
}

func (hw *writer) close() {
	hw.raw("</main></body></html>")
}
