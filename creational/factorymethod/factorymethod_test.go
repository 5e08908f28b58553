package factorymethod

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// countingButton records how often each method is called.
type countingButton struct {
	renders, clicks int
}

func (b *countingButton) Render(io.Writer)  { b.renders++ }
func (b *countingButton) OnClick(io.Writer) { b.clicks++ }

// spyCreator hands out a fixed button and counts hook invocations.
type spyCreator struct {
	button *countingButton
	calls  int
}

func (c *spyCreator) CreateButton() Button {
	c.calls++
	return c.button
}

// ── Template method ─────────────────────────────────────────────────────────

// TestRenderCallsHookAndButtonOnce verifies that Render calls the creation
// hook once and renders the created button once.
func TestRenderCallsHookAndButtonOnce(t *testing.T) {
	spy := &spyCreator{button: &countingButton{}}

	NewDialog(spy).Render(io.Discard)

	assert.Equal(t, 1, spy.calls)
	assert.Equal(t, 1, spy.button.renders)
	assert.Zero(t, spy.button.clicks)
}

// ── Platforms ───────────────────────────────────────────────────────────────

// TestPlatformDialogs checks that each dialog renders only its own platform's
// button.
func TestPlatformDialogs(t *testing.T) {
	tests := []struct {
		name   string
		dialog *Dialog
		want   string
	}{
		{name: "window", dialog: NewWindowDialog(), want: "윈도우 버튼 렌더링\n"},
		{name: "mac", dialog: NewMacDialog(), want: "맥 버튼 렌더링\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.dialog.Render(&buf)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

// TestCreatorsReturnOwnPlatform checks the concrete type each hook returns.
func TestCreatorsReturnOwnPlatform(t *testing.T) {
	assert.IsType(t, WindowButton{}, WindowDialog{}.CreateButton())
	assert.IsType(t, MacButton{}, MacDialog{}.CreateButton())
}

// TestOnClick checks the click lines.
func TestOnClick(t *testing.T) {
	var buf bytes.Buffer
	WindowButton{}.OnClick(&buf)
	MacButton{}.OnClick(&buf)

	assert.Equal(t, "윈도우 버튼 클릭\n맥 버튼 클릭\n", buf.String())
}

// TestDemoTranscript compares the full demo output.
func TestDemoTranscript(t *testing.T) {
	var buf bytes.Buffer
	Demo(&buf)

	assert.Equal(t, "윈도우 버튼 렌더링\n맥 버튼 렌더링\n", buf.String())
}
