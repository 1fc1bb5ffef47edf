package tt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/tmc/langchaingo/llms"

	"github.com/jmadeira/ragent"
)

// RenderPrompt renders a chat prompt as role-tagged text, one block per
// message. Used to make prompt mismatches readable as a line diff.
func RenderPrompt(prompt []llms.MessageContent) string {
	var sb strings.Builder
	for _, mc := range prompt {
		sb.WriteString("[" + string(mc.Role) + "]\n")
		for _, part := range mc.Parts {
			if tc, ok := part.(llms.TextContent); ok {
				sb.WriteString(tc.Text)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// AssertPromptEqual fails the test with a unified diff when the rendered
// prompts differ.
func AssertPromptEqual(t *testing.T, expected, actual []llms.MessageContent) {
	t.Helper()

	expectedText := RenderPrompt(expected)
	actualText := RenderPrompt(actual)
	if expectedText == actualText {
		return
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expectedText),
		B:        difflib.SplitLines(actualText),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		diff = fmt.Sprintf("(failed to diff: %v)", err)
	}
	t.Errorf("prompt mismatch:\n%s", diff)
}

// AssertMessageTexts fails the test unless the messages' text contents
// equal expected, in order.
func AssertMessageTexts(t *testing.T, expected []string, messages []ragent.Message) {
	t.Helper()

	actual := make([]string, 0, len(messages))
	for _, msg := range messages {
		actual = append(actual, ragent.TextContent(msg))
	}
	if len(expected) != len(actual) {
		t.Errorf("message count mismatch: expected %d, got %d (%q)",
			len(expected), len(actual), actual)
		return
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("message %d: expected %q, got %q", i, expected[i], actual[i])
		}
	}
}
