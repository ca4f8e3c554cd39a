package model

import (
	"fmt"
	"strconv"
	"strings"
)

// DecodeProps converts the builder's open prop bag into the typed record for
// t. Unknown keys are ignored; values of an unexpected type are coerced when
// the intent is obvious and otherwise treated as absent.
func DecodeProps(t ComponentType, raw map[string]any) Props {
	b := propBag(raw)
	switch t {
	case TypeButton:
		return ButtonProps{
			Text:     b.str("text"),
			Variant:  b.str("variant"),
			Size:     b.str("size"),
			Href:     b.str("href"),
			Disabled: b.boolean("disabled"),
		}
	case TypeNavbar:
		return NavbarProps{Brand: b.str("brand"), Items: b.strs("items")}
	case TypeAside:
		return AsideProps{Title: b.str("title"), Items: b.strs("items")}
	case TypeHero:
		return HeroProps{
			Title:        b.str("title"),
			Subtitle:     b.str("subtitle"),
			CTAText:      b.str("ctaText"),
			SecondaryCTA: b.str("secondaryCta"),
			Align:        b.str("align"),
		}
	case TypeFooter:
		return FooterProps{Text: b.str("text"), Links: b.strs("links")}
	case TypeCard:
		return CardProps{
			Title:      b.str("title"),
			Content:    b.str("content"),
			Image:      b.str("image"),
			ButtonText: b.str("buttonText"),
		}
	case TypeInput:
		return InputProps{
			Label:       b.str("label"),
			Placeholder: b.str("placeholder"),
			InputType:   b.str("inputType"),
		}
	case TypeText:
		return TextProps{Content: b.str("content"), Tag: b.str("tag")}
	case TypeForm:
		return FormProps{
			Title:      b.str("title"),
			Fields:     b.strs("fields"),
			SubmitText: b.str("submitText"),
		}
	case TypeTable:
		return TableProps{Headers: b.strs("headers"), Rows: b.rows("rows")}
	case TypeGrid:
		columns, _ := b.number("columns")
		return GridProps{Columns: int(columns), Gap: b.str("gap"), Items: b.strs("items")}
	case TypeBadge:
		return BadgeProps{Text: b.str("text"), Variant: b.str("variant")}
	case TypeAlert:
		return AlertProps{
			Title:       b.str("title"),
			Message:     b.str("message"),
			Variant:     b.str("variant"),
			Dismissible: b.boolean("dismissible"),
		}
	case TypeProgress:
		var p ProgressProps
		if v, ok := b.number("value"); ok {
			p.Value = ptr(v)
		}
		if v, ok := b.number("max"); ok {
			p.Max = ptr(v)
		}
		if _, ok := raw["showValue"]; ok {
			p.ShowValue = ptr(b.boolean("showValue"))
		}
		return p
	case TypeTabs:
		active, _ := b.number("active")
		return TabsProps{Tabs: b.strs("tabs"), Contents: b.strs("contents"), Active: int(active)}
	case TypeAccordion:
		return AccordionProps{Items: b.accordionItems("items")}
	case TypeImage:
		return ImageProps{Src: b.str("src"), Alt: b.str("alt"), Fit: b.str("fit")}
	case TypeDivider:
		return DividerProps{Label: b.str("label"), Thickness: b.str("thickness")}
	case TypeAvatar:
		return AvatarProps{Name: b.str("name"), Src: b.str("src"), Size: b.str("size")}
	default:
		return UnknownProps{Type: t}
	}
}

type propBag map[string]any

func (b propBag) str(key string) string {
	v, ok := b[key]
	if !ok {
		return ""
	}
	return scalarString(v)
}

func (b propBag) strs(key string) []string {
	v, ok := b[key]
	if !ok || v == nil {
		return nil
	}
	return stringList(v)
}

func (b propBag) rows(key string) [][]string {
	v, ok := b[key]
	if !ok || v == nil {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	rows := make([][]string, 0, len(list))
	for _, row := range list {
		rows = append(rows, stringList(row))
	}
	return rows
}

func (b propBag) accordionItems(key string) []AccordionItem {
	v, ok := b[key]
	if !ok || v == nil {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	items := make([]AccordionItem, 0, len(list))
	for _, entry := range list {
		switch e := entry.(type) {
		case map[string]any:
			item := propBag(e)
			items = append(items, AccordionItem{Title: item.str("title"), Content: item.str("content")})
		default:
			items = append(items, AccordionItem{Title: scalarString(e)})
		}
	}
	return items
}

func (b propBag) number(key string) (float64, bool) {
	switch v := b[key].(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func (b propBag) boolean(key string) bool {
	switch v := b[key].(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && parsed
	default:
		return false
	}
}

func stringList(v any) []string {
	switch list := v.(type) {
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, scalarString(item))
		}
		return out
	case []string:
		return append([]string{}, list...)
	case string:
		if strings.TrimSpace(list) == "" {
			return []string{}
		}
		parts := strings.Split(list, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(p))
		}
		return out
	default:
		return nil
	}
}

func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(s)
	}
}
