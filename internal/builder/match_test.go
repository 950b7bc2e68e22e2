package builder

import "testing"

func TestIsExcluded(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		excludes []string
		expected bool
	}{
		{"no excludes", "css/site.css", []string{}, false},
		{"exact match", "css/site.css", []string{"css/site.css"}, true},
		{"file name match", "css/site.css", []string{"site.css"}, true},
		{"wildcard match", "js/app.bundle.js", []string{"*.bundle.js"}, true},
		{"no match", "css/site.css", []string{"*.js"}, false},
		{"directory exclude", "js/app.js", []string{"js/*"}, true},
		{"recursive exclude", "js/vendor/jquery.js", []string{"**/vendor/*.js"}, true},
		{"recursive prefix", "css/print.css", []string{"css/**"}, true},
		{"recursive prefix no match", "js/print.js", []string{"css/**"}, false},
		{"multiple excludes match", "css/a.css", []string{"*.js", "a.*"}, true},
		{"multiple excludes no match", "css/a.css", []string{"*.js", "b.*"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsExcluded(tt.path, tt.excludes)
			if result != tt.expected {
				t.Errorf("IsExcluded(%q, %v) = %v, want %v", tt.path, tt.excludes, result, tt.expected)
			}
		})
	}
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		pattern  string
		expected bool
	}{
		{"exact match", "site.css", "site.css", true},
		{"wildcard extension", "css/site.css", "*.css", true},
		{"wildcard name", "css/site.css", "site.*", true},
		{"no match", "css/site.css", "*.js", false},
		{"recursive pattern", "css/theme/dark.css", "**/*.css", true},
		{"recursive with prefix", "css/theme/dark.css", "css/**/dark.css", true},
		{"prefix mismatch", "js/theme/dark.css", "css/**/*.css", false},
		{"path with directory", "js/app.js", "js/*.js", true},
		{"prefix is not a partial name", "cssx/a.css", "css/**", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := matchPattern(tt.path, tt.pattern)
			if result != tt.expected {
				t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.path, tt.pattern, result, tt.expected)
			}
		})
	}
}
