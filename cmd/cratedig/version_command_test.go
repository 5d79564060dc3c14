package main

import "testing"

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runCLI(t, []string{"version"}, "")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	wantContains(t, stdout, "cratedig dev")
	wantContains(t, stdout, "commit: none")
}
