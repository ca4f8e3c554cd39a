// Package angular emits standalone Angular components using the built-in
// control flow syntax.
package angular

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/forgeui/internal/emitter"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
	"github.com/alexisbeaulieu97/forgeui/internal/render"
	"github.com/alexisbeaulieu97/forgeui/internal/style"
)

// Emitter generates Angular.
type Emitter struct {
	assets emitter.Assets
}

// New returns an Angular emitter.
func New(assets emitter.Assets) *Emitter {
	return &Emitter{assets: assets}
}

// Info describes the emitter.
func (e *Emitter) Info() emitter.Info {
	return emitter.Info{
		Name:       string(model.FrameworkAngular),
		Title:      "Angular",
		Version:    "1.0.0",
		APIVersion: "1.x",
		Extension:  ".component.ts",
		Language:   "typescript",
		Dependencies: map[string]string{
			"@angular/common":           "^17.0.0",
			"@angular/compiler":         "^17.0.0",
			"@angular/core":             "^17.0.0",
			"@angular/platform-browser": "^17.0.0",
			"rxjs":                      "~7.8.0",
			"tslib":                     "^2.6.0",
			"zone.js":                   "~0.14.2",
		},
		DevDependencies: map[string]string{
			"@angular-devkit/build-angular": "^17.0.0",
			"@angular/cli":                  "^17.0.0",
			"@angular/compiler-cli":         "^17.0.0",
			"typescript":                    "~5.2.2",
		},
		Scripts: map[string]string{
			"start": "ng serve",
			"build": "ng build",
		},
	}
}

var dialect = emitter.Dialect{
	Syntax:    style.SyntaxCSS,
	SelfClose: true,
	Text:      emitter.EscapeAngular,
	Value:     emitter.EscapeAngular,
	Style: func(t style.Translated) string {
		declarations := t.CSS()
		if declarations == "" {
			return ""
		}
		return `style="` + emitter.EscapeAngular(declarations) + `"`
	},
	Event: func(ev render.Event) string {
		switch ev.Action.Kind {
		case render.ActionSet:
			return fmt.Sprintf(`(click)="%s = %d"`, ev.Action.Var, ev.Action.Value)
		case render.ActionToggle:
			return `(click)="` + emitter.Toggle(ev.Action.Var) + `"`
		case render.ActionPrevent:
			return `(submit)="$event.preventDefault()"`
		default:
			return ""
		}
	},
	Cond: func(c render.Cond, _ int) ([]string, string, string) {
		return nil, fmt.Sprintf("@if (%s === %d) {", c.Var, c.Value), "}"
	},
}

// Render returns the template markup of one component.
func (e *Emitter) Render(c model.Component, theme model.Theme, _ model.CSSFramework) string {
	return emitter.RenderComponent(dialect, c, theme)
}

// Program returns app.component.ts with inline template and styles.
func (e *Emitter) Program(in emitter.Input) string {
	doc := emitter.Compose(in.Components, in.Theme)

	var b strings.Builder
	b.WriteString("import { Component, ViewEncapsulation } from '@angular/core';\n\n")
	b.WriteString("@Component({\n")
	b.WriteString("  selector: 'app-root',\n")
	b.WriteString("  standalone: true,\n")
	b.WriteString("  encapsulation: ViewEncapsulation.None,\n")
	b.WriteString("  template: `\n")
	b.WriteString(emitter.TemplateLiteral(doc.Markup(dialect, in.Theme, 2)) + "\n")
	b.WriteString("  `,\n")
	b.WriteString("  styles: [`\n")
	b.WriteString(emitter.TemplateLiteral(emitter.Indent(emitter.Stylesheet(doc, in.Theme, e.assets), 2)))
	b.WriteString("  `],\n")
	b.WriteString("})\n")
	writeClass(&b, doc)
	return b.String()
}

// Files returns an Angular CLI source layout.
func (e *Emitter) Files(in emitter.Input) []model.File {
	doc := emitter.Compose(in.Components, in.Theme)

	var component strings.Builder
	component.WriteString("import { Component, ViewEncapsulation } from '@angular/core';\n\n")
	component.WriteString("@Component({\n")
	component.WriteString("  selector: 'app-root',\n")
	component.WriteString("  standalone: true,\n")
	component.WriteString("  encapsulation: ViewEncapsulation.None,\n")
	component.WriteString("  templateUrl: './app.component.html',\n")
	component.WriteString("  styleUrls: ['./app.component.css'],\n")
	component.WriteString("})\n")
	writeClass(&component, doc)

	return []model.File{
		{Name: "src/index.html", Content: indexHTML(in.PageTitle())},
		{Name: "src/main.ts", Content: mainTS},
		{Name: "src/app/app.component.ts", Content: component.String()},
		{Name: "src/app/app.component.html", Content: doc.Markup(dialect, in.Theme, 0) + "\n"},
		{Name: "src/app/app.component.css", Content: emitter.Stylesheet(doc, in.Theme, e.assets)},
	}
}

const mainTS = `import { bootstrapApplication } from '@angular/platform-browser';
import { AppComponent } from './app/app.component';

bootstrapApplication(AppComponent).catch((err) => console.error(err));
`

func indexHTML(title string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
  <base href="/">
</head>
<body>
  <app-root></app-root>
</body>
</html>
`, emitter.EscapeHTML(title))
}

func writeClass(b *strings.Builder, doc emitter.Document) {
	if len(doc.State) == 0 {
		b.WriteString("export class AppComponent {}\n")
		return
	}
	b.WriteString("export class AppComponent {\n")
	for _, v := range doc.State {
		fmt.Fprintf(b, "  %s = %d;\n", v.Name, v.Initial)
	}
	b.WriteString("}\n")
}
