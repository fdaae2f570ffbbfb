// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// wordsPerMinute is the assumed reading speed.
const wordsPerMinute = 200

// ReadingTime estimates minutes to read content, which may be HTML or
// plain text. The result is at least one minute.
func ReadingTime(content string) int {
	text := content
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(content)); err == nil {
		text = doc.Text()
	}
	words := len(strings.Fields(text))
	return max(1, (words+wordsPerMinute-1)/wordsPerMinute)
}
