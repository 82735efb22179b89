package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_matchAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected string
		typed    string
		want     bool
	}{
		{name: "first alternative", expected: "café / coffee", typed: "café", want: true},
		{name: "second alternative", expected: "café / coffee", typed: "coffee", want: true},
		{name: "wrong word", expected: "café / coffee", typed: "tea", want: false},
		{name: "case and spaces", expected: "Obrigado", typed: "  obrigado ", want: true},
		{name: "whole string is not an alternative", expected: "café / coffee", typed: "café / coffee", want: false},
		{name: "empty answer", expected: "casa", typed: "", want: false},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, matchAnswer(tt.expected, tt.typed))
		})
	}
}
