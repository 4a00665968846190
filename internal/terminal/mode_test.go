package terminal

import "testing"

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "tab", want: ModeTab},
		{input: "window", want: ModeWindow},
		{input: "inplace", want: ModeInplace},
		{input: "echo", want: ModeEcho},
		{input: "vscode", want: ModeVSCode},
		{input: "cursor", want: ModeCursor},
		{input: "Tab", wantErr: true},
		{input: "terminal", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseMode(%q) = %q, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
