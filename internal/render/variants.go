package render

import "github.com/alexisbeaulieu97/forgeui/internal/model"

var paletteColors = map[string]string{
	"primary":   "$primary",
	"secondary": "$secondary",
	"accent":    "$accent",
	"success":   "#22c55e",
	"warning":   "#f59e0b",
	"danger":    "#ef4444",
	"error":     "#ef4444",
	"info":      "#3b82f6",
}

// variantColor maps a variant to its colour, falling back to the primary
// token.
func variantColor(variant string) string {
	if c, ok := paletteColors[variant]; ok {
		return c
	}
	return "$primary"
}

func variantStyle(variant string) model.StyleMap {
	switch variant {
	case "outline":
		return model.StyleMap{
			"backgroundColor": "transparent",
			"border":          "2px solid $primary",
			"color":           "$primary",
		}
	case "ghost":
		return model.StyleMap{
			"backgroundColor": "transparent",
			"color":           "$text",
		}
	default:
		return model.StyleMap{
			"backgroundColor": variantColor(variant),
			"color":           "#ffffff",
		}
	}
}
