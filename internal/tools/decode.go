package tools

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// External tools write stderr in whatever encoding the host locale dictates;
// Windows builds of exiftool in particular emit legacy code pages. Captured
// bytes are decoded through an ordered chain so diagnostics stay readable:
// strict UTF-8, the locale-preferred encoding, GBK, GB18030, then a lossy
// UTF-8 pass that substitutes invalid sequences. The chain can never fail.

var fallbackChain = sync.OnceValue(func() []encoding.Encoding {
	var chain []encoding.Encoding
	if name := localeEncodingName(os.Getenv); name != "" {
		if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
			chain = append(chain, enc)
		}
	}
	return append(chain, simplifiedchinese.GBK, simplifiedchinese.GB18030)
})

func decodeOutput(b []byte) string {
	return decodeWith(fallbackChain(), b)
}

func decodeWith(chain []encoding.Encoding, b []byte) string {
	if len(b) == 0 {
		return ""
	}
	if utf8.Valid(b) {
		return string(b)
	}
	for _, enc := range chain {
		if s, ok := tryDecode(enc, b); ok {
			return s
		}
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}

// tryDecode accepts a decode only when it introduced no replacement runes, so
// a wrong codec falls through instead of producing mojibake silently.
func tryDecode(enc encoding.Encoding, b []byte) (string, bool) {
	if enc == nil {
		return "", false
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}

// localeEncodingName extracts the codeset from the usual locale variables,
// e.g. "zh_CN.GB2312" -> "GB2312". LC_ALL wins over LC_CTYPE over LANG.
func localeEncodingName(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		locale := strings.TrimSpace(getenv(key))
		if locale == "" {
			continue
		}
		if i := strings.IndexByte(locale, '@'); i >= 0 {
			locale = locale[:i]
		}
		_, codeset, ok := strings.Cut(locale, ".")
		if !ok || codeset == "" {
			continue
		}
		return codeset
	}
	return ""
}
