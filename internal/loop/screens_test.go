package loop

import "testing"

func TestLivesIndicator(t *testing.T) {
	tests := []struct {
		lives int
		want  string
	}{
		{3, "◆ ◆ ◆"},
		{2, "◆ ◆ ◇"},
		{1, "◆ ◇ ◇"},
		{0, "◇ ◇ ◇"},
	}

	for _, tt := range tests {
		if got := livesIndicator(tt.lives, 3); got != tt.want {
			t.Errorf("livesIndicator(%d) = %q, want %q", tt.lives, got, tt.want)
		}
	}
}
