package commands

import "testing"

func TestRootCommandSet(t *testing.T) {
	root := New()

	want := map[string]bool{
		"ui":      false,
		"boards":  false,
		"posts":   false,
		"version": false,
	}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Fatalf("missing %q subcommand", name)
		}
	}
}

func TestPostsFlags(t *testing.T) {
	root := New()
	cmd, _, err := root.Find([]string{"posts"})
	if err != nil {
		t.Fatalf("find posts: %v", err)
	}
	for _, flag := range []string{"board", "all", "id"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Fatalf("posts missing --%s flag", flag)
		}
	}
}
