package discovery

import (
	"reflect"
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()
	tests := []string{
		"/project/internal/extract/extractor_test.go",
		"/project/internal/discovery/scanner_test.go",
		"/project/internal/config/config_test.go",
	}

	cases := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{
			name:     "empty pattern keeps everything",
			pattern:  "",
			expected: tests,
		},
		{
			name:    "wildcard suffix",
			pattern: "*scanner_test.go",
			expected: []string{
				"/project/internal/discovery/scanner_test.go",
			},
		},
		{
			name:    "wildcard fragments",
			pattern: "*extract*",
			expected: []string{
				"/project/internal/extract/extractor_test.go",
			},
		},
		{
			name:    "plain substring",
			pattern: "config",
			expected: []string{
				"/project/internal/config/config_test.go",
			},
		},
		{
			name:     "no matches",
			pattern:  "*storage*",
			expected: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := filter.FilterByName(tests, tc.pattern)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}
