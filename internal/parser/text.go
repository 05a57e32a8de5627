package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// TextParser handles plain text files. Uploads are not guaranteed to be
// UTF-8 (Polish CVs show up in windows-1250), so the byte stream is sniffed
// and transcoded first.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (string, error) {
	buffered := bufio.NewReader(r)
	peek, _ := buffered.Peek(1024)

	enc, _, _ := charset.DetermineEncoding(peek, "text/plain")
	decoded := enc.NewDecoder().Reader(buffered)

	data, err := io.ReadAll(decoded)
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text, nil
}
