package model

import "fmt"

// Props is the typed property record of a component. Each known component
// type has its own implementation; unrecognised types carry UnknownProps.
type Props interface {
	Kind() ComponentType
}

// ButtonProps configures a button. Defaults: text "Button", variant
// "primary", size "md".
type ButtonProps struct {
	Text     string `json:"text,omitempty" yaml:"text,omitempty"`
	Variant  string `json:"variant,omitempty" yaml:"variant,omitempty"`
	Size     string `json:"size,omitempty" yaml:"size,omitempty"`
	Href     string `json:"href,omitempty" yaml:"href,omitempty"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Kind reports a button.
func (ButtonProps) Kind() ComponentType { return TypeButton }

// WithDefaults fills unset fields: text "Button", variant "primary" and size "md".
func (p ButtonProps) WithDefaults() ButtonProps {
	p.Text = or(p.Text, "Button")
	p.Variant = or(p.Variant, "primary")
	switch p.Size {
	case "sm", "md", "lg":
	default:
		p.Size = "md"
	}
	return p
}

// NavbarProps configures a navigation bar.
type NavbarProps struct {
	Brand string   `json:"brand,omitempty" yaml:"brand,omitempty"`
	Items []string `json:"items,omitzero" yaml:"items,omitempty"`
}

// Kind reports a navbar.
func (NavbarProps) Kind() ComponentType { return TypeNavbar }

// WithDefaults fills unset fields: brand "Brand" and the Home, About, Services and Contact items.
func (p NavbarProps) WithDefaults() NavbarProps {
	p.Brand = or(p.Brand, "Brand")
	if p.Items == nil {
		p.Items = []string{"Home", "About", "Services", "Contact"}
	}
	return p
}

// AsideProps configures a sidebar menu.
type AsideProps struct {
	Title string   `json:"title,omitempty" yaml:"title,omitempty"`
	Items []string `json:"items,omitzero" yaml:"items,omitempty"`
}

// Kind reports an aside.
func (AsideProps) Kind() ComponentType { return TypeAside }

// WithDefaults fills unset fields: title "Menu" and the Dashboard, Settings and Profile items.
func (p AsideProps) WithDefaults() AsideProps {
	p.Title = or(p.Title, "Menu")
	if p.Items == nil {
		p.Items = []string{"Dashboard", "Settings", "Profile"}
	}
	return p
}

// HeroProps configures a hero banner. SecondaryCTA is optional.
type HeroProps struct {
	Title        string `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle     string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	CTAText      string `json:"ctaText,omitempty" yaml:"ctaText,omitempty"`
	SecondaryCTA string `json:"secondaryCta,omitempty" yaml:"secondaryCta,omitempty"`
	Align        string `json:"align,omitempty" yaml:"align,omitempty"`
}

// Kind reports a hero.
func (HeroProps) Kind() ComponentType { return TypeHero }

// WithDefaults fills unset fields: a welcome title and subtitle, CTA "Get Started" and centre alignment.
func (p HeroProps) WithDefaults() HeroProps {
	p.Title = or(p.Title, "Welcome")
	p.Subtitle = or(p.Subtitle, "Build something amazing")
	p.CTAText = or(p.CTAText, "Get Started")
	switch p.Align {
	case "left", "center", "right":
	default:
		p.Align = "center"
	}
	return p
}

// FooterProps configures a page footer.
type FooterProps struct {
	Text  string   `json:"text,omitempty" yaml:"text,omitempty"`
	Links []string `json:"links,omitzero" yaml:"links,omitempty"`
}

// Kind reports a footer.
func (FooterProps) Kind() ComponentType { return TypeFooter }

// WithDefaults fills unset fields: a copyright line and the Privacy and Terms links.
func (p FooterProps) WithDefaults() FooterProps {
	p.Text = or(p.Text, "© Company. All rights reserved.")
	if p.Links == nil {
		p.Links = []string{"Privacy", "Terms"}
	}
	return p
}

// CardProps configures a content card. Image and ButtonText are optional.
type CardProps struct {
	Title      string `json:"title,omitempty" yaml:"title,omitempty"`
	Content    string `json:"content,omitempty" yaml:"content,omitempty"`
	Image      string `json:"image,omitempty" yaml:"image,omitempty"`
	ButtonText string `json:"buttonText,omitempty" yaml:"buttonText,omitempty"`
}

// Kind reports a card.
func (CardProps) Kind() ComponentType { return TypeCard }

// WithDefaults fills unset fields: a placeholder title and body.
func (p CardProps) WithDefaults() CardProps {
	p.Title = or(p.Title, "Card Title")
	p.Content = or(p.Content, "Card content goes here.")
	return p
}

// InputProps configures a single form input. Label is optional.
type InputProps struct {
	Label       string `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	InputType   string `json:"inputType,omitempty" yaml:"inputType,omitempty"`
}

// Kind reports an input.
func (InputProps) Kind() ComponentType { return TypeInput }

// WithDefaults fills unset fields: placeholder "Enter text..." and input type "text".
func (p InputProps) WithDefaults() InputProps {
	p.Placeholder = or(p.Placeholder, "Enter text...")
	p.InputType = or(p.InputType, "text")
	return p
}

// TextProps configures a block of text.
type TextProps struct {
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
	Tag     string `json:"tag,omitempty" yaml:"tag,omitempty"`
}

// Kind reports a text.
func (TextProps) Kind() ComponentType { return TypeText }

// WithDefaults fills unset fields: content "Text" in a p tag.
func (p TextProps) WithDefaults() TextProps {
	p.Content = or(p.Content, "Text")
	switch p.Tag {
	case "h1", "h2", "h3", "h4", "h5", "h6", "p", "span":
	default:
		p.Tag = "p"
	}
	return p
}

// FormProps configures a form. Fields drive both labels and input kinds.
type FormProps struct {
	Title      string   `json:"title,omitempty" yaml:"title,omitempty"`
	Fields     []string `json:"fields,omitzero" yaml:"fields,omitempty"`
	SubmitText string   `json:"submitText,omitempty" yaml:"submitText,omitempty"`
}

// Kind reports a form.
func (FormProps) Kind() ComponentType { return TypeForm }

// WithDefaults fills unset fields: name, email and message fields and submit text "Submit".
func (p FormProps) WithDefaults() FormProps {
	if p.Fields == nil {
		p.Fields = []string{"name", "email", "message"}
	}
	p.SubmitText = or(p.SubmitText, "Submit")
	return p
}

// TableProps configures a data table. Rows may have any number of cells.
type TableProps struct {
	Headers []string   `json:"headers,omitzero" yaml:"headers,omitempty"`
	Rows    [][]string `json:"rows,omitzero" yaml:"rows,omitempty"`
}

// Kind reports a table.
func (TableProps) Kind() ComponentType { return TypeTable }

// WithDefaults fills unset fields: Name, Email and Role headers with one sample row.
func (p TableProps) WithDefaults() TableProps {
	if p.Headers == nil {
		p.Headers = []string{"Name", "Email", "Role"}
	}
	if p.Rows == nil {
		p.Rows = [][]string{{"John Doe", "john@example.com", "Admin"}}
	}
	return p
}

// GridProps configures a grid of cells.
type GridProps struct {
	Columns int      `json:"columns,omitempty" yaml:"columns,omitempty"`
	Gap     string   `json:"gap,omitempty" yaml:"gap,omitempty"`
	Items   []string `json:"items,omitzero" yaml:"items,omitempty"`
}

// Kind reports a grid.
func (GridProps) Kind() ComponentType { return TypeGrid }

// WithDefaults fills unset fields: three columns, a 16px gap and three items.
func (p GridProps) WithDefaults() GridProps {
	if p.Columns <= 0 {
		p.Columns = 3
	}
	p.Gap = or(p.Gap, "16px")
	if p.Items == nil {
		p.Items = []string{"Item 1", "Item 2", "Item 3"}
	}
	return p
}

// BadgeProps configures a small status label.
type BadgeProps struct {
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty"`
}

// Kind reports a badge.
func (BadgeProps) Kind() ComponentType { return TypeBadge }

// WithDefaults fills unset fields: text "Badge" and variant "primary".
func (p BadgeProps) WithDefaults() BadgeProps {
	p.Text = or(p.Text, "Badge")
	p.Variant = or(p.Variant, "primary")
	return p
}

// AlertProps configures an alert box.
type AlertProps struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Message     string `json:"message,omitempty" yaml:"message,omitempty"`
	Variant     string `json:"variant,omitempty" yaml:"variant,omitempty"`
	Dismissible bool   `json:"dismissible,omitempty" yaml:"dismissible,omitempty"`
}

// Kind reports an alert.
func (AlertProps) Kind() ComponentType { return TypeAlert }

// WithDefaults fills unset fields: message "This is an alert" and variant "info".
func (p AlertProps) WithDefaults() AlertProps {
	p.Message = or(p.Message, "This is an alert")
	p.Variant = or(p.Variant, "info")
	return p
}

// ProgressProps configures a progress bar. ShowValue is a pointer so an
// explicit false survives defaulting.
type ProgressProps struct {
	Value     *float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	ShowValue *bool    `json:"showValue,omitempty" yaml:"showValue,omitempty"`
}

// Kind reports a progress.
func (ProgressProps) Kind() ComponentType { return TypeProgress }

// WithDefaults fills unset fields: value 50 of 100 with the value shown.
func (p ProgressProps) WithDefaults() ProgressProps {
	if p.Value == nil {
		p.Value = ptr(50.0)
	}
	if p.Max == nil || *p.Max <= 0 {
		p.Max = ptr(100.0)
	}
	if p.ShowValue == nil {
		p.ShowValue = ptr(true)
	}
	return p
}

// Percent returns the progress as a percentage clamped to [0, 100].
func (p ProgressProps) Percent() float64 {
	d := p.WithDefaults()
	pct := *d.Value / *d.Max * 100
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}

// TabsProps configures a tab strip. Contents[i] is the panel text of Tabs[i].
type TabsProps struct {
	Tabs     []string `json:"tabs,omitzero" yaml:"tabs,omitempty"`
	Contents []string `json:"contents,omitzero" yaml:"contents,omitempty"`
	Active   int      `json:"active,omitempty" yaml:"active,omitempty"`
}

// Kind reports a tabs.
func (TabsProps) Kind() ComponentType { return TypeTabs }

// WithDefaults fills unset fields: three tabs with the first active.
func (p TabsProps) WithDefaults() TabsProps {
	if p.Tabs == nil {
		p.Tabs = []string{"Tab 1", "Tab 2", "Tab 3"}
	}
	if p.Active < 0 || p.Active >= len(p.Tabs) {
		p.Active = 0
	}
	return p
}

// Content returns the panel text for tab i.
func (p TabsProps) Content(i int) string {
	if i < len(p.Contents) && p.Contents[i] != "" {
		return p.Contents[i]
	}
	if i < len(p.Tabs) {
		return fmt.Sprintf("Content for %s", p.Tabs[i])
	}
	return ""
}

// AccordionItem is one collapsible section.
type AccordionItem struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// AccordionProps configures an accordion.
type AccordionProps struct {
	Items []AccordionItem `json:"items,omitzero" yaml:"items,omitempty"`
}

// Kind reports an accordion.
func (AccordionProps) Kind() ComponentType { return TypeAccordion }

// WithDefaults fills unset fields: three numbered sections.
func (p AccordionProps) WithDefaults() AccordionProps {
	if p.Items == nil {
		p.Items = []AccordionItem{
			{Title: "Section 1", Content: "Content for section 1"},
			{Title: "Section 2", Content: "Content for section 2"},
			{Title: "Section 3", Content: "Content for section 3"},
		}
	}
	return p
}

// ImageProps configures an image.
type ImageProps struct {
	Src string `json:"src,omitempty" yaml:"src,omitempty"`
	Alt string `json:"alt,omitempty" yaml:"alt,omitempty"`
	Fit string `json:"fit,omitempty" yaml:"fit,omitempty"`
}

// Kind reports an image.
func (ImageProps) Kind() ComponentType { return TypeImage }

// WithDefaults fills unset fields: a placeholder source, alt "Image" and fit "cover".
func (p ImageProps) WithDefaults() ImageProps {
	p.Src = or(p.Src, "https://via.placeholder.com/300x200")
	p.Alt = or(p.Alt, "Image")
	p.Fit = or(p.Fit, "cover")
	return p
}

// DividerProps configures a horizontal rule, optionally labelled.
type DividerProps struct {
	Label     string `json:"label,omitempty" yaml:"label,omitempty"`
	Thickness string `json:"thickness,omitempty" yaml:"thickness,omitempty"`
}

// Kind reports a divider.
func (DividerProps) Kind() ComponentType { return TypeDivider }

// WithDefaults fills unset fields: a 1px thickness.
func (p DividerProps) WithDefaults() DividerProps {
	p.Thickness = or(p.Thickness, "1px")
	return p
}

// AvatarProps configures a user avatar. Without Src the initials of Name are
// shown.
type AvatarProps struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Src  string `json:"src,omitempty" yaml:"src,omitempty"`
	Size string `json:"size,omitempty" yaml:"size,omitempty"`
}

// Kind reports an avatar.
func (AvatarProps) Kind() ComponentType { return TypeAvatar }

// WithDefaults fills unset fields: name "User" and size 48px.
func (p AvatarProps) WithDefaults() AvatarProps {
	p.Name = or(p.Name, "User")
	p.Size = or(p.Size, "48px")
	return p
}

// UnknownProps is carried by components whose type has no rendering rule.
type UnknownProps struct {
	Type ComponentType `json:"-" yaml:"-"`
}

// Kind reports the unrecognised type.
func (p UnknownProps) Kind() ComponentType { return p.Type }

func or(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func ptr[T any](v T) *T {
	return &v
}
