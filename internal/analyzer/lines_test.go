package analyzer

import "testing"

func TestCountLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"single no newline", "abc", 1},
		{"single with newline", "abc\n", 1},
		{"just newline", "\n", 1},
		{"two lines trailing content", "a\nb", 2},
		{"blank line in middle", "a\n\nb\n", 3},
		{"crlf", "a\r\nb\r\n", 2},
		{"bare cr", "a\rb", 2},
		{"cr then crlf", "a\r\r\nb", 3},
		{"form feed", "a\fb", 2},
		{"unicode separators", "a\u2028b\u2029c", 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountLines(tc.content); got != tc.want {
				t.Errorf("CountLines(%q) = %d, want %d", tc.content, got, tc.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	if got := Summarize("a\nb\nc"); got != "File with 3 lines." {
		t.Errorf("Summarize = %q", got)
	}
}
