package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// AttributeKind discriminates the closed set of attribute variants.
type AttributeKind string

const (
	AttributeText   AttributeKind = "text"
	AttributeSwatch AttributeKind = "swatch"
)

var (
	// ErrInvalidAttributeType is returned by NewAttribute for any type other
	// than "text" or "swatch". Unknown attribute types are rejected, they do
	// not fall back to a default variant.
	ErrInvalidAttributeType = errors.New("invalid attribute type")
	// ErrInvalidHexColor is returned when a swatch value does not normalize
	// to #rrggbb.
	ErrInvalidHexColor = errors.New("invalid hex color format")
)

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// AttributeItem is one selectable option of an attribute.
type AttributeItem struct {
	ID           string
	AttributeID  string
	DisplayValue string
	Value        string
}

func (i AttributeItem) Validate() bool {
	return i.ID != "" && i.AttributeID != "" && i.DisplayValue != "" && i.Value != ""
}

// Attribute is a configurable product attribute with per-kind behavior.
type Attribute struct {
	ID        string
	Name      string
	Kind      AttributeKind
	Items     []AttributeItem
	CreatedAt time.Time
}

// NewAttribute builds the variant for the given type string.
func NewAttribute(id, name, typ string) (Attribute, error) {
	switch typ {
	case "text":
		return Attribute{ID: id, Name: name, Kind: AttributeText}, nil
	case "swatch":
		return Attribute{ID: id, Name: name, Kind: AttributeSwatch}, nil
	default:
		return Attribute{}, fmt.Errorf("%w: %q", ErrInvalidAttributeType, typ)
	}
}

func (a Attribute) Type() string {
	return string(a.Kind)
}

func (a Attribute) Validate() bool {
	if a.ID == "" || a.Name == "" {
		return false
	}
	return a.Kind == AttributeText || a.Kind == AttributeSwatch
}

// ProcessValue normalizes a raw item value. Text values are trimmed; swatch
// values become lowercase #rrggbb, with a missing # prefixed. Normalization
// is idempotent.
func (a Attribute) ProcessValue(value string) (string, error) {
	switch a.Kind {
	case AttributeSwatch:
		v := strings.TrimSpace(value)
		if v != "" && v[0] != '#' {
			v = "#" + v
		}
		if !hexColorRe.MatchString(v) {
			return "", fmt.Errorf("%w: %q", ErrInvalidHexColor, v)
		}
		return strings.ToLower(v), nil
	default:
		return strings.TrimSpace(value), nil
	}
}

// FormatDisplayValue trims (text) or trims and capitalizes (swatch).
func (a Attribute) FormatDisplayValue(displayValue string) string {
	switch a.Kind {
	case AttributeSwatch:
		return capitalize(strings.TrimSpace(displayValue))
	default:
		return strings.TrimSpace(displayValue)
	}
}

// SupportsValue reports whether the value is acceptable for this kind.
func (a Attribute) SupportsValue(value string) bool {
	switch a.Kind {
	case AttributeSwatch:
		_, err := a.ProcessValue(value)
		return err == nil
	default:
		return strings.TrimSpace(value) != ""
	}
}

// InputType is the form control for this kind: "select" or "color".
func (a Attribute) InputType() string {
	switch a.Kind {
	case AttributeSwatch:
		return "color"
	default:
		return "select"
	}
}

// RenderForUI describes how the attribute is presented: a single-select
// button group for text, one colored square per item for swatches.
func (a Attribute) RenderForUI() map[string]interface{} {
	switch a.Kind {
	case AttributeSwatch:
		swatches := make([]map[string]interface{}, 0, len(a.Items))
		for _, item := range a.Items {
			dv := item.DisplayValue
			if dv == "" {
				dv = capitalize(item.Value)
			}
			swatches = append(swatches, map[string]interface{}{
				"value":        item.Value,
				"displayValue": dv,
				"hexColor":     item.Value,
				"cssStyle":     CSSStyle(item.Value),
				"available":    true,
			})
		}
		return map[string]interface{}{
			"type":          "swatch",
			"displayAs":     "swatches",
			"allowMultiple": false,
			"validation":    map[string]interface{}{"required": true, "type": "color"},
			"swatches":      swatches,
		}
	default:
		options := make([]map[string]interface{}, 0, len(a.Items))
		for _, item := range a.Items {
			dv := item.DisplayValue
			if dv == "" {
				dv = item.Value
			}
			options = append(options, map[string]interface{}{
				"value":        item.Value,
				"displayValue": dv,
				"available":    true,
			})
		}
		return map[string]interface{}{
			"type":          "text",
			"displayAs":     "buttons",
			"allowMultiple": false,
			"validation":    map[string]interface{}{"required": true, "type": "string"},
			"options":       options,
		}
	}
}

// IsSizeAttribute matches text attributes named "size" (any casing).
func (a Attribute) IsSizeAttribute() bool {
	return a.Kind == AttributeText && strings.ToLower(a.Name) == "size"
}

// IsCapacityAttribute matches text attributes named "capacity" (any casing).
func (a Attribute) IsCapacityAttribute() bool {
	return a.Kind == AttributeText && strings.ToLower(a.Name) == "capacity"
}

// IsColorAttribute is true for every swatch attribute.
func (a Attribute) IsColorAttribute() bool {
	return a.Kind == AttributeSwatch
}

// ColorPalette returns the hex values of a swatch attribute's items.
func (a Attribute) ColorPalette() []string {
	if a.Kind != AttributeSwatch {
		return nil
	}
	palette := make([]string, 0, len(a.Items))
	for _, item := range a.Items {
		palette = append(palette, item.Value)
	}
	return palette
}

// CSSStyle renders the inline style for a swatch color square.
func CSSStyle(colorValue string) string {
	return fmt.Sprintf("background-color: %s;", colorValue)
}
