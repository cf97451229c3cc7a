package tools

import (
	"strings"
	"testing"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
)

var eastAsianChain = []encoding.Encoding{simplifiedchinese.GBK, simplifiedchinese.GB18030}

func TestDecodeWith(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{name: "empty", input: nil, want: ""},
		{name: "ascii", input: []byte("frame=1 fps=0.0"), want: "frame=1 fps=0.0"},
		{name: "utf8", input: []byte("编码错误: moov atom not found"), want: "编码错误: moov atom not found"},
		// "你好" in GBK; invalid as UTF-8, decodes via the East-Asian fallback.
		{name: "gbk", input: []byte{0xC4, 0xE3, 0xBA, 0xC3}, want: "你好"},
		// 0xFF is invalid in every chain member; the lossy last resort
		// substitutes it without failing.
		{name: "garbage", input: []byte{'A', 0xFF, 'B'}, want: "A�B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeWith(eastAsianChain, tt.input); got != tt.want {
				t.Fatalf("decodeWith(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeWithNilChainNeverFails(t *testing.T) {
	got := decodeWith(nil, []byte{0xFE, 0xFE, 0xFE})
	if got == "" {
		t.Fatal("lossy fallback returned empty output")
	}
	if !strings.Contains(got, "�") {
		t.Fatalf("expected replacement runes in %q", got)
	}
}

func TestDecodeOutputPassesThroughUTF8(t *testing.T) {
	in := "Invalid data found when processing input"
	if got := decodeOutput([]byte(in)); got != in {
		t.Fatalf("decodeOutput(%q) = %q", in, got)
	}
}

func TestLocaleEncodingName(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "lang_with_codeset", env: map[string]string{"LANG": "en_US.UTF-8"}, want: "UTF-8"},
		{name: "lc_all_wins", env: map[string]string{"LC_ALL": "zh_CN.GB2312", "LANG": "en_US.UTF-8"}, want: "GB2312"},
		{name: "lc_ctype_over_lang", env: map[string]string{"LC_CTYPE": "ja_JP.EUC-JP", "LANG": "C"}, want: "EUC-JP"},
		{name: "modifier_stripped", env: map[string]string{"LANG": "de_DE.ISO-8859-15@euro"}, want: "ISO-8859-15"},
		{name: "no_codeset", env: map[string]string{"LANG": "zh_CN"}, want: ""},
		{name: "posix", env: map[string]string{"LANG": "C"}, want: ""},
		{name: "unset", env: map[string]string{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }
			if got := localeEncodingName(getenv); got != tt.want {
				t.Fatalf("localeEncodingName = %q, want %q", got, tt.want)
			}
		})
	}
}
