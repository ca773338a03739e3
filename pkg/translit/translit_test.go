// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package translit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/chitalka/pkg/translit"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ascii_passthrough", "Leo Tolstoy", "Leo Tolstoy"},
		{"cyrillic_author", "Пушкин", "Pushkin"},
		{"cyrillic_title", "Война и мир", "Voyna i mir"},
		{"accented_latin", "Márquez", "Marquez"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translit.From(tt.input))
		})
	}
}
