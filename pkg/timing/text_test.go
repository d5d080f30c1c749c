package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateRender(t *testing.T) {
	tests := []struct {
		name     string
		template Template
		timer    string
		seconds  float64
		want     string
	}{
		{"positional with spec", "{:.4f}", "", 0.1234, "0.1234"},
		{"positional zero padded", "Elapsed time: {:0.4f} seconds", "", 0.5, "Elapsed time: 0.5000 seconds"},
		{"bare positional", "{}", "", 0.5, "0.5"},
		{"seconds named", "{seconds:.2f}", "", 1.005, "1.00"},
		{"name and seconds", "{name}: {seconds:.2f}", "X", 1.005, "X: 1.00"},
		{"milliseconds", "{milliseconds:.0f} ms", "", 0.25, "250 ms"},
		{"minutes", "{minutes:.1f} minutes", "", 30, "0.5 minutes"},
		{"all fields", "{name} {seconds:.1f} {milliseconds:.1f} {minutes:.3f}", "n", 6, "n 6.0 6000.0 0.100"},
		{"escaped braces", "{{literal}} {:.1f}", "", 2, "{literal} 2.0"},
		{"unknown field kept", "{bogus} {:.1f}", "", 2, "{bogus} 2.0"},
		{"unterminated placeholder kept", "oops {seconds", "", 2, "oops {seconds"},
		{"no placeholders", "plain text", "", 2, "plain text"},
		{"spec without verb", "{seconds:.3}", "", 0.123456, "0.123"},
		{"spec on name ignored", "{name:>10}!", "X", 2, "X!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.template.Render(tt.timer, tt.seconds))
		})
	}
}

func TestTemplateRenderIsDeterministic(t *testing.T) {
	tmpl := Template("{name}: {seconds:.2f}")
	first := tmpl.Render("X", 1.005)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, tmpl.Render("X", 1.005))
	}
}

func TestDefaultText(t *testing.T) {
	assert.Equal(t, "Elapsed time: 0.1234 seconds", DefaultText.Render("ignored", 0.1234))
}

func TestTextFuncRender(t *testing.T) {
	text := TextFunc(func(seconds float64) string {
		return Template("Function: {:.0f}").Render("", seconds+1)
	})
	assert.Equal(t, "Function: 1", text.Render("ignored", 0.0004))
}

func TestInitialTextVariants(t *testing.T) {
	assert.Equal(t, "Timer started", DefaultInitialText.RenderInitial(""))
	assert.Equal(t, "Timer build started", DefaultInitialText.RenderInitial("build"))
	assert.Equal(t, "go build", InitialTemplate("go {name}").RenderInitial("build"))
	assert.Equal(t, "static", InitialTemplate("static").RenderInitial("build"))
	assert.Equal(t, "computed", InitialTextFunc(func() string { return "computed" }).RenderInitial("build"))
}
