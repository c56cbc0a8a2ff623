package guide

import "testing"

func TestParseLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Label
	}{
		{
			name:     "english with japanese gloss",
			input:    "Rabanastre (ラバナスタ)",
			expected: Label{Raw: "Rabanastre (ラバナスタ)", En: "Rabanastre", Jp: "ラバナスタ"},
		},
		{
			name:     "japanese with english gloss",
			input:    "ポーション (Potion)",
			expected: Label{Raw: "ポーション (Potion)", En: "Potion", Jp: "ポーション"},
		},
		{
			name:     "plain english",
			input:    "Loot Alert:   Vault",
			expected: Label{Raw: "Loot Alert: Vault", En: "Loot Alert: Vault"},
		},
		{
			name:     "english parenthetical is not a gloss",
			input:    "Vault (Optional)",
			expected: Label{Raw: "Vault (Optional)", En: "Vault (Optional)"},
		},
		{
			name:     "plain japanese",
			input:    "王宮",
			expected: Label{Raw: "王宮", Jp: "王宮"},
		},
		{
			name:     "empty",
			input:    "  ",
			expected: Label{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLabel(tt.input); got != tt.expected {
				t.Errorf("ParseLabel(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLabelDisplay(t *testing.T) {
	tests := []struct {
		label    Label
		expected string
	}{
		{Label{Raw: "r", En: "e", Jp: "j"}, "e"},
		{Label{Raw: "r", Jp: "j"}, "r"},
		{Label{Jp: "j"}, "j"},
		{Label{}, ""},
	}
	for _, tt := range tests {
		if got := tt.label.Display(); got != tt.expected {
			t.Errorf("%+v.Display() = %q, want %q", tt.label, got, tt.expected)
		}
	}
}
