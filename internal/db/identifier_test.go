package db

import (
	"errors"
	"testing"

	"github.com/cso-genova/casa-listing-explorer/internal"
)

func TestNormalizeDatabaseName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"analytics", "md:analytics"},
		{"md:analytics", "md:analytics"},
		{"  test_cso_g  ", "md:test_cso_g"},
		{"md:", "md:"},
	}

	for _, tt := range tests {
		got, err := NormalizeDatabaseName(tt.input)
		if err != nil {
			t.Errorf("NormalizeDatabaseName(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeDatabaseName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeDatabaseNameEmpty(t *testing.T) {
	for _, input := range []string{"", "   "} {
		_, err := NormalizeDatabaseName(input)
		if err == nil {
			t.Errorf("NormalizeDatabaseName(%q) expected error, got nil", input)
			continue
		}
		if !errors.Is(err, &internal.ConfigError{}) {
			t.Errorf("NormalizeDatabaseName(%q) error = %v, want ConfigError", input, err)
		}
	}
}

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"test_cso_g.casa.vw_a_cgenova", `"test_cso_g"."casa"."vw_a_cgenova"`},
		{"casa", `"casa"`},
		{`"already"."quoted"`, `"already"."quoted"`},
		{"a..b", `"a"."b"`},
		{" spaced . parts ", `"spaced"."parts"`},
	}

	for _, tt := range tests {
		got, err := QuoteIdentifier(tt.input)
		if err != nil {
			t.Errorf("QuoteIdentifier(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("QuoteIdentifier(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestQuoteIdentifierEmpty(t *testing.T) {
	for _, input := range []string{"", "...", `""`} {
		_, err := QuoteIdentifier(input)
		if err == nil {
			t.Errorf("QuoteIdentifier(%q) expected error, got nil", input)
			continue
		}
		if !errors.Is(err, &internal.ConfigError{}) {
			t.Errorf("QuoteIdentifier(%q) error = %v, want ConfigError", input, err)
		}
	}
}
