package flagx

import (
	"reflect"
	"testing"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", ":8080", "-x", "junk"},
			allowed: []string{"-a"},
			want:    []string{"-a", ":8080"},
		},
		{
			name:    "combined form",
			args:    []string{"-d=postgres://localhost/app", "-v"},
			allowed: []string{"-d"},
			want:    []string{"-d=postgres://localhost/app"},
		},
		{
			name:    "multiple allowed",
			args:    []string{"-a", ":8080", "-d", "dsn", "-other"},
			allowed: []string{"-a", "-d"},
			want:    []string{"-a", ":8080", "-d", "dsn"},
		},
		{
			name:    "flag without value before another flag",
			args:    []string{"-a", "-d", "dsn"},
			allowed: []string{"-a", "-d"},
			want:    []string{"-a", "-d", "dsn"},
		},
		{
			name:    "test runner flags dropped",
			args:    []string{"-test.v=true", "-test.run", "TestX"},
			allowed: []string{"-a", "-d"},
			want:    []string{},
		},
		{
			name:    "empty input",
			args:    nil,
			allowed: []string{"-a"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterArgs(%v, %v) = %v, want %v", tt.args, tt.allowed, got, tt.want)
			}
		})
	}
}
