package timing

import (
	"fmt"
	"strconv"
	"strings"
)

// Text renders the report emitted when a timer stops. It is a tagged
// variant: Template substitutes placeholders into a literal string, while
// TextFunc computes the whole report from the measured seconds.
type Text interface {
	Render(name string, seconds float64) string
}

// DefaultText is used by timers with no explicit Text.
var DefaultText Text = Template("Elapsed time: {:0.4f} seconds")

// Template is a literal report with placeholders in braces. The empty
// placeholder {} stands for the measured duration in seconds, optionally
// with a format spec such as {:.4f}. The named placeholders name, seconds,
// milliseconds and minutes are also understood, the numeric ones again with
// an optional spec: "{name}: {milliseconds:.0f} ms". Specs are numeric
// only; {name} is substituted verbatim and ignores any spec. Doubled braces
// escape to literal braces.
type Template string

// Render substitutes the duration and its derived fields into the template.
func (t Template) Render(name string, seconds float64) string {
	var b strings.Builder
	s := string(t)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '{' && i+1 < len(s) && s[i+1] == '{':
			b.WriteByte('{')
			i++
		case c == '}' && i+1 < len(s) && s[i+1] == '}':
			b.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(s[i:], '}')
			if end < 0 {
				// Unterminated placeholder; keep it visible.
				b.WriteString(s[i:])
				return b.String()
			}
			b.WriteString(expandField(s[i+1:i+end], name, seconds))
			i += end
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// expandField renders one placeholder body, e.g. "seconds:.2f" or ":0.4f".
func expandField(field, name string, seconds float64) string {
	key, spec, _ := strings.Cut(field, ":")
	var value float64
	switch key {
	case "", "seconds":
		value = seconds
	case "milliseconds":
		value = seconds * 1000
	case "minutes":
		value = seconds / 60
	case "name":
		// The name is not numeric; a spec on it is ignored.
		return name
	default:
		// Unknown field: reproduce it verbatim so mistakes are visible.
		return "{" + field + "}"
	}
	return formatSeconds(value, spec)
}

// formatSeconds applies a printf-style numeric spec (".4f", "0.2f", ".3e")
// to a value. An empty spec renders the shortest exact representation.
func formatSeconds(v float64, spec string) string {
	if spec == "" {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	switch verb := spec[len(spec)-1]; verb {
	case 'f', 'F', 'e', 'E', 'g', 'G':
		return fmt.Sprintf("%"+spec[:len(spec)-1]+string(verb), v)
	default:
		// Spec without an explicit verb, e.g. "{seconds:.3}".
		return fmt.Sprintf("%"+spec+"g", v)
	}
}

// TextFunc computes the full report from the measured seconds. The result
// is used verbatim.
type TextFunc func(seconds float64) string

// Render implements Text.
func (f TextFunc) Render(_ string, seconds float64) string {
	return f(seconds)
}

// InitialText renders the optional message emitted by Start, before any
// duration is known.
type InitialText interface {
	RenderInitial(name string) string
}

// DefaultInitialText announces the timer by name ("Timer fetch started"),
// or "Timer started" for anonymous timers.
var DefaultInitialText InitialText = initialDefault{}

type initialDefault struct{}

func (initialDefault) RenderInitial(name string) string {
	if name == "" {
		return "Timer started"
	}
	return "Timer " + name + " started"
}

// InitialTemplate is a literal start message; only {name} is substituted.
type InitialTemplate string

// RenderInitial implements InitialText.
func (t InitialTemplate) RenderInitial(name string) string {
	return strings.ReplaceAll(string(t), "{name}", name)
}

// InitialTextFunc computes the start message.
type InitialTextFunc func() string

// RenderInitial implements InitialText.
func (f InitialTextFunc) RenderInitial(string) string {
	return f()
}
