package langhint

import "testing"

func TestScript(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"123 !!", ""},
		{"hello world", "Latin"},
		{"привет мир", "Cyrillic"},
		{"こんにちは", "Hiragana"},
		{"你好世界", "Han"},
		{"안녕하세요", "Hangul"},
		{"hi 你好世界", "Han"},
	}
	for _, c := range cases {
		if got := Script(c.in); got != c.want {
			t.Errorf("Script(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPreset(t *testing.T) {
	if got := Preset("你好，世界。"); got != "cjk" {
		t.Fatalf("Preset(han) = %q", got)
	}
	if got := Preset("カタカナ"); got != "cjk" {
		t.Fatalf("Preset(katakana) = %q", got)
	}
	if got := Preset("hello, world"); got != "default" {
		t.Fatalf("Preset(latin) = %q", got)
	}
	if got := Preset(""); got != "default" {
		t.Fatalf("Preset(empty) = %q", got)
	}
}
