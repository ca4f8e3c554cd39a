package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/forgeui/internal/model"
	"github.com/alexisbeaulieu97/forgeui/internal/style"
)

var testTheme = model.Theme{
	ID:   "test",
	Name: "Test",
	Colors: model.Colors{
		Primary:       "#6366f1",
		Secondary:     "#8b5cf6",
		Accent:        "#ec4899",
		Background:    "#0f172a",
		Surface:       "#1e293b",
		Text:          "#f8fafc",
		TextSecondary: "#94a3b8",
	},
	Typography: model.Typography{FontFamily: "Inter, sans-serif"},
}

func component(t model.ComponentType, props map[string]any) model.Component {
	return model.RawComponent{
		ID:       "cmp-1",
		Type:     string(t),
		Props:    props,
		Position: model.Position{X: 10, Y: 20, Width: 300, Height: 120},
	}.Component()
}

func TestResolveWrapsBodyInPositionedRoot(t *testing.T) {
	t.Parallel()

	plan := Resolve(component(model.TypeButton, nil), testTheme, "c0")

	root := plan.Root
	require.Equal(t, "div", root.Tag)
	require.Equal(t, model.StyleMap{
		"position": "absolute",
		"left":     "10px",
		"top":      "20px",
		"width":    "300px",
		"height":   "120px",
	}, root.Style)

	id, ok := root.Attr("data-component-id")
	require.True(t, ok)
	require.Equal(t, "cmp-1", id)
	typ, _ := root.Attr("data-component-type")
	require.Equal(t, "button", typ)

	require.Len(t, root.Children, 1)
	require.Equal(t, "Button", root.Children[0].Text)
}

func TestResolveEveryTypeYieldsContent(t *testing.T) {
	t.Parallel()

	types := append(append([]model.ComponentType{}, model.KnownTypes...), "carousel", "")
	for _, typ := range types {
		typ := typ
		t.Run(string(typ), func(t *testing.T) {
			t.Parallel()

			plan := Resolve(component(typ, nil), testTheme, "c0")
			require.NotNil(t, plan.Root)
			require.Len(t, plan.Root.Children, 1)

			var text int
			plan.Root.Walk(func(n *Node) {
				if n.Text != "" || n.Void {
					text++
				}
			})
			require.Positive(t, text, "no visible content for %q", typ)
		})
	}
}

func TestResolveButtonUsesThemeTokensAndUserStyle(t *testing.T) {
	t.Parallel()

	c := component(model.TypeButton, map[string]any{"text": "Launch", "variant": "primary"})
	c.Style = model.StyleMap{"borderRadius": "0"}
	body := Resolve(c, testTheme, "c0").Root.Children[0]

	require.Equal(t, "Launch", body.Text)
	require.Equal(t, "$primary", body.Style["backgroundColor"])
	require.Equal(t, "0", body.Style["borderRadius"])
	require.Equal(t, &ClassIntent{Component: "button", Variant: "primary"}, body.Class)
}

func TestResolveButtonHrefAndDisabled(t *testing.T) {
	t.Parallel()

	link := Resolve(component(model.TypeButton, map[string]any{"href": "/docs"}), testTheme, "c0").Root.Children[0]
	require.Equal(t, "a", link.Tag)
	href, _ := link.Attr("href")
	require.Equal(t, "/docs", href)

	disabled := Resolve(component(model.TypeButton, map[string]any{"disabled": true}), testTheme, "c0").Root.Children[0]
	require.Contains(t, disabled.Attrs, Attr{Name: "disabled", Flag: true})
	require.Equal(t, "0.5", disabled.Style["opacity"])
}

func TestResolveFormFields(t *testing.T) {
	t.Parallel()

	body := Resolve(component(model.TypeForm, map[string]any{"fields": []any{"email", "message"}}), testTheme, "c0").Root.Children[0]

	require.Equal(t, []Event{{Name: "submit", Action: Action{Kind: ActionPrevent}}}, body.Events)

	var controls []*Node
	body.Walk(func(n *Node) {
		if n.Tag == "input" || n.Tag == "textarea" {
			controls = append(controls, n)
		}
	})
	require.Len(t, controls, 2)
	require.Equal(t, "input", controls[0].Tag)
	typ, _ := controls[0].Attr("type")
	require.Equal(t, "email", typ)
	require.Equal(t, "textarea", controls[1].Tag)

	labels := body.Find("label")
	require.Len(t, labels, 2)
	require.Equal(t, "Email", labels[0].Text)
	require.Equal(t, "Message", labels[1].Text)
}

func TestResolveFormLabelsKeepInnerCapitals(t *testing.T) {
	t.Parallel()

	body := Resolve(component(model.TypeForm, map[string]any{"fields": []any{"firstName", "phone number"}}), testTheme, "c0").Root.Children[0]

	labels := body.Find("label")
	require.Len(t, labels, 2)
	require.Equal(t, "FirstName", labels[0].Text)
	require.Equal(t, "Phone Number", labels[1].Text)
}

func TestResolveFormInputTypes(t *testing.T) {
	t.Parallel()

	body := Resolve(component(model.TypeForm, map[string]any{"fields": []any{"password", "name"}}), testTheme, "c0").Root.Children[0]
	inputs := body.Find("input")
	require.Len(t, inputs, 2)

	first, _ := inputs[0].Attr("type")
	second, _ := inputs[1].Attr("type")
	require.Equal(t, "password", first)
	require.Equal(t, "text", second)
}

func TestResolveTableKeepsUnevenRows(t *testing.T) {
	t.Parallel()

	body := Resolve(component(model.TypeTable, map[string]any{
		"headers": []any{"A", "B"},
		"rows":    []any{[]any{"1", "2"}, []any{"3"}},
	}), testTheme, "c0").Root.Children[0]

	require.Len(t, body.Find("th"), 2)
	rows := body.Find("tbody")[0].Children
	require.Len(t, rows, 2)
	require.Len(t, rows[0].Children, 2)
	require.Len(t, rows[1].Children, 1)
	require.Equal(t, "3", rows[1].Children[0].Text)
}

func TestResolveEmptyListsRenderEmptyContainers(t *testing.T) {
	t.Parallel()

	body := Resolve(component(model.TypeNavbar, map[string]any{"items": []any{}}), testTheme, "c0").Root.Children[0]
	require.Len(t, body.Children, 2)
	require.Empty(t, body.Children[1].Children)
	require.Empty(t, body.Find("a"))
}

func TestResolveTabsState(t *testing.T) {
	t.Parallel()

	plan := Resolve(component(model.TypeTabs, map[string]any{"tabs": []any{"One", "Two"}, "active": 1}), testTheme, "c3")
	require.Equal(t, []StateVar{{Name: "c3Tab", Initial: 1}}, plan.State)

	var panels []*Node
	plan.Root.Walk(func(n *Node) {
		if n.If != nil {
			panels = append(panels, n)
		}
	})
	require.Len(t, panels, 2)
	require.Equal(t, &Cond{Var: "c3Tab", Value: 0}, panels[0].If)
	require.Equal(t, "Content for One", panels[0].Text)
	require.Equal(t, &Cond{Var: "c3Tab", Value: 1}, panels[1].If)

	buttons := plan.Root.Find("button")
	require.Equal(t, Action{Kind: ActionSet, Var: "c3Tab", Value: 1}, buttons[1].Events[0].Action)
}

func TestResolveAccordionFirstItemOpen(t *testing.T) {
	t.Parallel()

	plan := Resolve(component(model.TypeAccordion, nil), testTheme, "c1")
	require.Equal(t, []StateVar{
		{Name: "c1Open0", Initial: 1},
		{Name: "c1Open1", Initial: 0},
		{Name: "c1Open2", Initial: 0},
	}, plan.State)

	header := plan.Root.Find("button")[0]
	require.Equal(t, Action{Kind: ActionToggle, Var: "c1Open0"}, header.Events[0].Action)
}

func TestResolveDismissibleAlert(t *testing.T) {
	t.Parallel()

	plan := Resolve(component(model.TypeAlert, map[string]any{"dismissible": true, "variant": "danger"}), testTheme, "c2")
	body := plan.Root.Children[0]

	require.Equal(t, []StateVar{{Name: "c2Visible", Initial: 1}}, plan.State)
	require.Equal(t, &Cond{Var: "c2Visible", Value: 1}, body.If)
	require.Equal(t, "4px solid #ef4444", body.Style["borderLeft"])

	closer := body.Find("button")
	require.Len(t, closer, 1)
	require.Equal(t, Action{Kind: ActionSet, Var: "c2Visible", Value: 0}, closer[0].Events[0].Action)

	plain := Resolve(component(model.TypeAlert, nil), testTheme, "c2")
	require.Empty(t, plain.State)
	require.Nil(t, plain.Root.Children[0].If)
}

func TestResolveProgressClamps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		props map[string]any
		want  string
	}{
		{props: nil, want: "50%"},
		{props: map[string]any{"value": "75"}, want: "75%"},
		{props: map[string]any{"value": 250}, want: "100%"},
		{props: map[string]any{"value": -5}, want: "0%"},
		{props: map[string]any{"value": 1, "max": 3}, want: "33.3%"},
	}
	for _, tc := range cases {
		body := Resolve(component(model.TypeProgress, tc.props), testTheme, "c0").Root.Children[0]
		bar := body.Children[0].Children[0]
		require.Equal(t, tc.want, bar.Style["width"])
	}

	hidden := Resolve(component(model.TypeProgress, map[string]any{"showValue": false}), testTheme, "c0").Root.Children[0]
	require.Len(t, hidden.Children, 1)
}

func TestResolveThemeEffects(t *testing.T) {
	t.Parallel()

	theme := testTheme
	theme.Effects = model.Effects{Glow: true, Glassmorphism: true, Neon: true}

	button := Resolve(component(model.TypeButton, nil), theme, "c0").Root.Children[0]
	require.Equal(t, "0 0 20px $primary", button.Style["boxShadow"])
	require.Equal(t, "0 0 10px $accent", button.Style["textShadow"])

	nav := Resolve(component(model.TypeNavbar, nil), theme, "c0").Root.Children[0]
	require.Equal(t, "blur(10px)", nav.Style["backdropFilter"])

	plain := Resolve(component(model.TypeButton, nil), testTheme, "c0").Root.Children[0]
	require.NotContains(t, plain.Style, "boxShadow")
	require.NotContains(t, plain.Style, "textShadow")
}

func TestResolveUserStyleOverridesEffects(t *testing.T) {
	t.Parallel()

	theme := testTheme
	theme.Effects.Glow = true
	c := component(model.TypeCard, nil)
	c.Style = model.StyleMap{"box-shadow": "none"}

	body := Resolve(c, theme, "c0").Root.Children[0]
	require.Equal(t, "none", body.Style["boxShadow"])
}

func TestResolveAnimations(t *testing.T) {
	t.Parallel()

	c := component(model.TypeText, nil)
	c.Animations = []model.Animation{{Name: "fadeIn", Duration: "0.5s"}, {Name: "pulse", Iteration: "infinite"}}

	plan := Resolve(c, testTheme, "c0")
	require.Equal(t, []string{"fadeIn", "pulse"}, plan.Animations)
	require.Equal(t, "fadeIn 0.5s ease 0s 1, pulse 1s ease 0s infinite", plan.Root.Children[0].Style["animation"])
}

func TestResolveUnknownType(t *testing.T) {
	t.Parallel()

	body := Resolve(component("carousel", map[string]any{"slides": 3}), testTheme, "c0").Root.Children[0]
	require.Equal(t, "Unknown component: carousel", body.Text)
}

func TestResolveAvatarInitials(t *testing.T) {
	t.Parallel()

	body := Resolve(component(model.TypeAvatar, map[string]any{"name": "ada lovelace byron"}), testTheme, "c0").Root.Children[0]
	require.Equal(t, "AL", body.Text)

	img := Resolve(component(model.TypeAvatar, map[string]any{"src": "a.png"}), testTheme, "c0").Root.Children[0]
	require.Equal(t, "img", img.Tag)
	require.True(t, img.Void)
}

func TestResolveDoesNotMutateComponent(t *testing.T) {
	t.Parallel()

	c := component(model.TypeButton, map[string]any{"text": "Go"})
	c.Style = model.StyleMap{"color": "red"}
	snapshot := c.Style.Clone()

	_ = Resolve(c, testTheme, "c0")
	require.Equal(t, snapshot, c.Style)
}

func TestScope(t *testing.T) {
	t.Parallel()

	require.Equal(t, "cHero1", Scope("hero-1"))
	require.Equal(t, "c01hxyz", Scope("01hxyz"))
	require.Equal(t, "c", Scope("--"))
}

func TestResolveUserShorthandsOverrideDefaults(t *testing.T) {
	t.Parallel()

	for _, typ := range []model.ComponentType{model.TypeButton, model.TypeCard, model.TypeForm} {
		typ := typ
		t.Run(string(typ), func(t *testing.T) {
			t.Parallel()

			c := model.RawComponent{
				ID:   "cmp-1",
				Type: string(typ),
				Style: map[string]any{
					"background": "red",
					"padding":    "4px",
					"border":     "3px dashed red",
				},
				Position: model.Position{Width: 300, Height: 120},
			}.Component()

			body := Resolve(c, testTheme, "c0").Root.Children[0]
			css := style.Resolve(body.Style, testTheme, style.SyntaxCSS).CSS()
			require.Contains(t, css, "background: red")
			require.Contains(t, css, "padding: 4px")
			require.Contains(t, css, "border: 3px dashed red")
			require.NotContains(t, css, "background-color")
			require.NotContains(t, css, "padding-top")
			require.NotContains(t, css, "border-color")
		})
	}
}
