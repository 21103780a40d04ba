package service

import (
	"html/template"
	"strings"
	"time"

	"github.com/finsight-app/finsight/domain"
)

// HTMLFormatter renders a report as a single self-contained document:
// styles are inlined and no external assets are referenced, so the export
// survives being mailed around or opened offline.
type HTMLFormatter struct {
	tmpl *template.Template
}

// NewHTMLFormatter creates an HTML formatter
func NewHTMLFormatter() *HTMLFormatter {
	funcs := template.FuncMap{
		"fraction": FormatScoreFraction,
	}
	return &HTMLFormatter{
		tmpl: template.Must(template.New("report").Funcs(funcs).Parse(reportTemplate)),
	}
}

// reportHTMLData is the payload handed to the template
type reportHTMLData struct {
	View        *domain.ReportView
	Filename    string
	GeneratedAt string
	ShareURL    string
	SharedView  bool
}

// Format renders the analysis result as a standalone HTML document
func (f *HTMLFormatter) Format(a *domain.Analysis, opts domain.RenderOptions) (string, error) {
	return f.FormatShared(a, opts, "", false)
}

// FormatShared renders the document with an optional share URL and the
// shared-view banner used by the public share page.
func (f *HTMLFormatter) FormatShared(a *domain.Analysis, opts domain.RenderOptions, shareURL string, sharedView bool) (string, error) {
	if a == nil || a.Result == nil {
		return "", domain.NewExportError("analysis has no result to export", nil)
	}

	data := reportHTMLData{
		View:        NewReportRenderer().Render(a.Result, opts),
		Filename:    a.Filename,
		GeneratedAt: time.Now().Format("2006-01-02 15:04"),
		ShareURL:    shareURL,
		SharedView:  sharedView,
	}

	var b strings.Builder
	if err := f.tmpl.Execute(&b, data); err != nil {
		return "", domain.NewExportError("failed to render HTML report", err)
	}
	return b.String(), nil
}

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>FinSight Report - {{.View.Company}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    line-height: 1.6;
    color: {{.View.Palette.Text}};
    background-color: {{.View.Palette.Background}};
}
.container { max-width: 860px; margin: 0 auto; padding: 24px 16px; }
.banner {
    background: {{.View.Palette.AccentLight}};
    color: {{.View.Palette.Accent}};
    border-radius: 10px;
    padding: 10px;
    text-align: center;
    font-size: 0.85em;
    font-weight: 600;
    margin-bottom: 16px;
}
.header { margin-bottom: 16px; }
.header h1 { font-size: 1.6em; letter-spacing: -0.5px; }
.header .subtitle { color: {{.View.Palette.TextSecondary}}; font-size: 0.9em; }
.card {
    background: {{.View.Palette.Card}};
    border-radius: 16px;
    padding: 20px;
    margin-bottom: 14px;
    box-shadow: 0 2px 8px rgba(0,0,0,0.06);
}
.card h2 { font-size: 1.0em; margin-bottom: 12px; }
.score-card { text-align: center; }
.score-label {
    font-size: 0.75em;
    font-weight: 600;
    letter-spacing: 1.5px;
    text-transform: uppercase;
    color: {{.View.Palette.TextSecondary}};
}
.score-value { font-size: 4em; font-weight: 800; line-height: 1.1; }
.score-max { font-size: 0.4em; color: {{.View.Palette.TextSecondary}}; }
.score-badge {
    display: inline-block;
    border-radius: 20px;
    padding: 4px 18px;
    font-weight: 700;
    margin-top: 8px;
}
.derivation {
    margin-top: 14px;
    background: {{.View.Palette.CardAlt}};
    border-radius: 10px;
    padding: 12px;
    font-size: 0.85em;
    color: {{.View.Palette.TextSecondary}};
    text-align: left;
}
.component {
    background: {{.View.Palette.CardAlt}};
    border-radius: 12px;
    padding: 12px;
    margin-bottom: 8px;
    text-align: left;
}
.component .row { display: flex; justify-content: space-between; margin-bottom: 6px; }
.component .category { font-size: 0.85em; font-weight: 700; }
.component .rating { font-size: 0.8em; font-weight: 700; }
.bar-bg {
    height: 6px;
    border-radius: 3px;
    overflow: hidden;
    background: {{.View.Palette.Border}};
}
.bar-fill { height: 6px; border-radius: 3px; }
.component .reasoning {
    font-size: 0.8em;
    color: {{.View.Palette.TextSecondary}};
    margin-top: 6px;
}
.metric-row {
    display: flex;
    justify-content: space-between;
    padding: 10px 0;
    border-bottom: 1px solid {{.View.Palette.Border}};
}
.metric-row:last-child { border-bottom: none; }
.metric-label { font-size: 0.9em; font-weight: 500; }
.metric-comment { font-size: 0.75em; color: {{.View.Palette.TextSecondary}}; font-style: italic; }
.metric-values { text-align: right; }
.metric-current { font-weight: 700; }
.metric-previous { font-size: 0.75em; color: {{.View.Palette.TextSecondary}}; }
.metric-change { font-size: 0.8em; font-weight: 600; }
.stats-grid { display: flex; flex-wrap: wrap; gap: 8px; margin-top: 12px; }
.stat-box {
    background: {{.View.Palette.CardAlt}};
    border-radius: 12px;
    padding: 12px;
    min-width: 30%;
    flex: 1;
    text-align: center;
}
.stat-value { font-weight: 700; color: {{.View.Palette.Accent}}; }
.stat-prev { font-size: 0.7em; color: {{.View.Palette.TextSecondary}}; }
.stat-label { font-size: 0.7em; color: {{.View.Palette.TextSecondary}}; margin-top: 4px; }
.badge {
    display: inline-block;
    border-radius: 8px;
    padding: 4px 10px;
    font-size: 0.8em;
    font-weight: 700;
    margin-bottom: 10px;
}
.note {
    background: {{.View.Palette.AccentLight}};
    border-radius: 10px;
    padding: 12px;
    margin-top: 10px;
    font-size: 0.9em;
}
.note .note-title { font-weight: 700; font-size: 0.85em; margin-bottom: 4px; }
.note ul { margin-left: 18px; }
.segment {
    background: {{.View.Palette.CardAlt}};
    border-radius: 10px;
    padding: 12px;
    margin-bottom: 8px;
}
.segment .name { font-weight: 700; font-size: 0.9em; margin-bottom: 4px; }
.segment .chips { display: flex; flex-wrap: wrap; gap: 8px; margin-bottom: 4px; }
.segment .chip {
    font-size: 0.75em;
    color: {{.View.Palette.Accent}};
    background: {{.View.Palette.AccentLight}};
    padding: 2px 8px;
    border-radius: 6px;
}
.segment .comment { font-size: 0.75em; color: {{.View.Palette.TextSecondary}}; font-style: italic; }
.list-item { display: flex; margin-bottom: 8px; }
.list-marker { font-weight: 700; margin-right: 10px; flex-shrink: 0; }
.footer {
    text-align: center;
    color: {{.View.Palette.TextSecondary}};
    font-size: 0.75em;
    margin: 24px 0;
}
.footer a { color: {{.View.Palette.Accent}}; }
</style>
</head>
<body>
<div class="container">

{{if .SharedView}}<div class="banner">Shared via FinSight · AI-Powered Financial Analysis</div>{{end}}

<div class="header">
    <h1>{{.View.Company}}</h1>
    {{if .View.Subtitle}}<div class="subtitle">{{.View.Subtitle}}</div>{{end}}
    {{if .View.Currency}}<div class="subtitle">{{.View.Currency}}</div>{{end}}
</div>

<div class="card score-card">
    <div class="score-label">Financial Health Score</div>
    <div class="score-value" style="color: {{.View.Score.Color}}">{{.View.Score.Value}}<span class="score-max">/100</span></div>
    {{if .View.Score.Label}}<div class="score-badge" style="color: {{.View.Score.Color}}; background: {{.View.Palette.CardAlt}}">{{.View.Score.Label}}</div>{{end}}
    {{if .View.Score.Derivation}}<div class="derivation">{{.View.Score.Derivation}}</div>{{end}}
    {{range .View.Breakdown}}
    <div class="component">
        <div class="row">
            <span class="category">{{.Category}}</span>
            <span class="rating" style="color: {{.Color}}">{{.Rating}} · {{fraction .Score .Max}}</span>
        </div>
        <div class="bar-bg"><div class="bar-fill" style="width: {{printf "%.1f" .BarWidth}}%; background: {{.Color}}"></div></div>
        {{if .Reasoning}}<div class="reasoning">{{.Reasoning}}</div>{{end}}
    </div>
    {{end}}
</div>

{{if .View.Summary}}
<div class="card">
    <h2>Executive Summary</h2>
    <p>{{.View.Summary}}</p>
</div>
{{end}}

{{if .View.Verdict}}
<div class="card">
    <h2>Plain English Verdict</h2>
    <div class="note">{{.View.Verdict}}</div>
</div>
{{end}}

{{if .View.Metrics}}
<div class="card">
    <h2>Key Financial Metrics</h2>
    {{range .View.Metrics}}
    <div class="metric-row">
        <div>
            <div class="metric-label">{{.Label}}</div>
            {{if .Comment}}<div class="metric-comment">{{.Comment}}</div>{{end}}
        </div>
        <div class="metric-values">
            <div class="metric-current">{{.Current}}</div>
            {{if .Previous}}<div class="metric-previous">vs {{.Previous}}</div>{{end}}
            {{if .Change}}<div class="metric-change" style="color: {{.TrendColor}}">{{.TrendGlyph}} {{.Change}}</div>{{end}}
        </div>
    </div>
    {{end}}
</div>
{{end}}

{{range .View.Sections}}
<div class="card">
    <h2>{{.Title}}</h2>
    {{if .Badge}}<div class="badge" style="color: {{.Badge.Color}}">{{.Badge.Label}}: {{.Badge.Value}}</div>{{end}}
    {{if .Body}}<p>{{.Body}}</p>{{end}}
    {{if .Stats}}
    <div class="stats-grid">
        {{range .Stats}}
        <div class="stat-box">
            <div class="stat-value"{{if .Color}} style="color: {{.Color}}"{{end}}>{{.Value}}</div>
            {{if .Previous}}<div class="stat-prev">vs {{.Previous}}</div>{{end}}
            <div class="stat-label">{{.Label}}</div>
        </div>
        {{end}}
    </div>
    {{end}}
    {{range .Notes}}
    <div class="note">
        <div class="note-title">{{.Title}}</div>
        {{if .Body}}<div>{{.Body}}</div>{{end}}
        {{if .Items}}
        <ul>
            {{range .Items}}<li>{{.}}</li>{{end}}
        </ul>
        {{end}}
    </div>
    {{end}}
</div>
{{end}}

{{if .View.Segments}}
<div class="card">
    <h2>Business Segments</h2>
    {{range .View.Segments}}
    <div class="segment">
        <div class="name">{{.Name}}</div>
        <div class="chips">
            {{range .Stats}}<span class="chip">{{.Label}}: {{.Value}}</span>{{end}}
        </div>
        {{if .Comment}}<div class="comment">{{.Comment}}</div>{{end}}
    </div>
    {{end}}
</div>
{{end}}

{{range .View.Lists}}
<div class="card">
    <h2>{{.Title}}</h2>
    {{$list := .}}
    {{range .Items}}
    <div class="list-item">
        <span class="list-marker" style="color: {{$list.Color}}">{{$list.Marker}}</span>
        <span>{{.}}</span>
    </div>
    {{end}}
</div>
{{end}}

<div class="footer">
    {{if .Filename}}Source document: {{.Filename}} · {{end}}Generated {{.GeneratedAt}} by FinSight
    {{if .ShareURL}}<br><a href="{{.ShareURL}}">View this analysis online</a>{{end}}
</div>

</div>
</body>
</html>
`
