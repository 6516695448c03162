package migrations

import (
	"sort"
	"strconv"
	"strings"
	"testing"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := FS.ReadDir(".")
	if err != nil {
		t.Fatalf("reading embedded migrations: %v", err)
	}

	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		t.Fatal("no migration files embedded")
	}
	sort.Strings(names)

	for i, name := range names {
		prefix, _, ok := strings.Cut(name, "_")
		if !ok {
			t.Fatalf("migration %q has no numeric prefix", name)
		}
		n, err := strconv.Atoi(prefix)
		if err != nil || n != i+1 {
			t.Errorf("migration %q out of sequence, want prefix %03d", name, i+1)
		}

		data, err := FS.ReadFile(name)
		if err != nil {
			t.Fatalf("reading %q: %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("migration %q is empty", name)
		}
	}
}

// Proposal documents and email records hang off amc_proposals.proposalno by
// string value, so the schema has to keep that key unique or two proposals
// could share one history.
func TestProposalNumberIsUnique(t *testing.T) {
	data, err := FS.ReadFile("005_proposals.sql")
	if err != nil {
		t.Fatalf("reading proposals migration: %v", err)
	}
	ddl := strings.ToUpper(string(data))
	if !strings.Contains(ddl, "CREATE UNIQUE INDEX IF NOT EXISTS IDX_AMC_PROPOSALS_NUMBER ON AMC_PROPOSALS(PROPOSALNO)") {
		t.Fatal("amc_proposals.proposalno is not declared unique")
	}
}
