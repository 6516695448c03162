package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain no rows", pgx.ErrNoRows, true},
		{"wrapped no rows", fmt.Errorf("get invoice: %w", pgx.ErrNoRows), true},
		{"double wrapped", fmt.Errorf("load: %w", fmt.Errorf("scan: %w", pgx.ErrNoRows)), true},
		{"other error", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
