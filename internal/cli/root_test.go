package cli

import "testing"

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3")
	if version != "1.2.3" {
		t.Errorf("version = %q, want %q", version, "1.2.3")
	}
}
