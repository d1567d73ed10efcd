package rendering

import (
	"html/template"
	"strings"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/language"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

// Options selects the preview layout and directionality. Direction may be
// "ltr", "rtl", or empty to follow the document's detected language.
type Options struct {
	Layout    string
	Direction string
	Font      string
	Color     string
}

// Default style parameters.
const (
	defaultLayout = "classic"
	defaultFont   = "Helvetica, Arial, sans-serif"
	defaultColor  = "#1a1a2e"
)

// templateData is what the preview template consumes.
type templateData struct {
	Direction string
	Lang      string
	Layout    string
	Font      template.CSS
	Color     template.CSS
	Resume    *types.ResumeDocument
}

var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html dir="{{.Direction}}" lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<style>
body { font-family: {{.Font}}; color: {{.Color}}; }
.resume { max-width: 760px; margin: 0 auto; }
</style>
</head>
<body>
<div class="resume layout-{{.Layout}}">
{{with .Resume.Contact}}<header>
<h1>{{.Name}}</h1>
<p>{{.Email}}{{if .Phone}} &middot; {{.Phone}}{{end}}{{if .Location}} &middot; {{.Location}}{{end}}</p>
</header>{{end}}
{{if .Resume.Summary}}<section class="summary"><p>{{.Resume.Summary}}</p></section>{{end}}
{{if .Resume.Skills.Technical}}<section class="skills"><h2>Skills</h2>
<ul>{{range .Resume.Skills.Technical}}<li>{{.}}</li>{{end}}</ul>
</section>{{end}}
{{if .Resume.Experience}}<section class="experience"><h2>Experience</h2>
{{range .Resume.Experience}}<article>
<h3>{{.Title}}{{if .Company}} — {{.Company}}{{end}}</h3>
<ul>{{range .Achievements}}<li>{{.}}</li>{{end}}</ul>
</article>{{end}}
</section>{{end}}
{{if .Resume.Education}}<section class="education"><h2>Education</h2>
<ul>{{range .Resume.Education}}<li>{{.Degree}}{{if .Institution}}, {{.Institution}}{{end}}</li>{{end}}</ul>
</section>{{end}}
</div>
</body>
</html>
`))

// Render produces an HTML preview of the resume. The markup always carries a
// dir attribute consistent with the requested direction and a lang attribute
// consistent with the document's detected language.
func Render(resume *types.ResumeDocument, opts Options) (string, error) {
	detected := language.Detect(resume.PlainText())

	direction := opts.Direction
	if direction == "" {
		direction = "ltr"
		if detected.RTL {
			direction = "rtl"
		}
	}

	data := templateData{
		Direction: direction,
		Lang:      detected.Lang,
		Layout:    valueOr(opts.Layout, defaultLayout),
		Font:      template.CSS(valueOr(opts.Font, defaultFont)),
		Color:     template.CSS(valueOr(opts.Color, defaultColor)),
		Resume:    resume,
	}

	var out strings.Builder
	if err := previewTemplate.Execute(&out, data); err != nil {
		return "", &TemplateError{Message: "failed to execute preview template", Cause: err}
	}
	return out.String(), nil
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
